package main

import (
	"fmt"
	"os"

	"styleup-backend/internal/bootstrap"
	"styleup-backend/internal/shared/config"
	"styleup-backend/internal/shared/server"
	"styleup-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		telemetry.Error("server.error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	app, err := bootstrap.Build(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":         addr,
		"env":          cfg.Env,
		"llm_provider": cfg.LLMProvider,
		"storage":      storageKind(app),
	})
	return app.Router.Run(addr)
}

func storageKind(app *bootstrap.App) string {
	if app.DB != nil {
		return "postgres"
	}
	return "memory"
}
