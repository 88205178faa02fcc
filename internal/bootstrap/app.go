package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"styleup-backend/internal/chat"
	"styleup-backend/internal/llm"
	openai "styleup-backend/internal/llm/openai"
	"styleup-backend/internal/recommend"
	"styleup-backend/internal/shared/config"
	"styleup-backend/internal/shared/server"
	"styleup-backend/internal/shared/storage/db"
	"styleup-backend/internal/shared/telemetry"
	"styleup-backend/internal/users"
	"styleup-backend/internal/wardrobe"
)

// App holds shared dependencies and the router built from them.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	UsersRepo        users.Repo
	WardrobeRepo     wardrobe.Repo
	UsersService     *users.Service
	WardrobeService  *wardrobe.Service
	RecommendService *recommend.Service
	ChatService      *chat.Service
	Explainer        llm.Explainer
	UsersHandler     *users.Handler
	WardrobeHandler  *wardrobe.Handler
	RecommendHandler *recommend.Handler
	ChatHandler      *chat.Handler
}

// Option overrides a dependency before the router is built.
type Option func(*App)

// WithExplainer replaces the configured LLM explainer.
func WithExplainer(e llm.Explainer) Option {
	return func(a *App) { a.Explainer = e }
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	explainer, err := buildExplainer(cfg)
	if err != nil {
		return nil, err
	}
	app.Explainer = explainer

	for _, opt := range opts {
		opt(app)
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		Users:     app.UsersHandler,
		Wardrobe:  app.WardrobeHandler,
		Recommend: app.RecommendHandler,
		Chat:      app.ChatHandler,
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildExplainer(cfg config.Config) (llm.Explainer, error) {
	var (
		upstream llm.Explainer
		err      error
	)
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		upstream, err = openai.NewExplainer(openai.Options{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.LLMModel,
		})
	case config.ProviderAzure:
		upstream, err = openai.NewAzureExplainer(openai.AzureOptions{
			APIBase:    cfg.AzureAPIBase,
			APIKey:     cfg.AzureAPIKey,
			Deployment: cfg.AzureDeployment,
			APIVersion: cfg.AzureAPIVersion,
		})
	default:
		telemetry.Info("bootstrap.llm", map[string]any{"provider": config.ProviderTemplate})
		return llm.TemplateExplainer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("configure %s explainer: %w", cfg.LLMProvider, err)
	}
	telemetry.Info("bootstrap.llm", map[string]any{"provider": cfg.LLMProvider, "model": cfg.LLMModel})
	return llm.NewBreakerExplainer(upstream, llm.DefaultBreakerSettings()), nil
}

func buildServices(app *App) error {
	var userRepo users.Repo
	var wardrobeRepo wardrobe.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		wardrobeRepo = &wardrobe.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		wardrobeRepo = wardrobe.NewMemoryRepo()
	}

	userSvc := users.NewService(userRepo)
	wardrobeSvc := wardrobe.NewService(wardrobeRepo, userSvc)
	profiles := profileAdapter{users: userSvc}
	recommendSvc := recommend.NewService(profiles, wardrobeAdapter{wardrobe: wardrobeSvc})
	chatSvc := chat.NewService(profiles, app.Explainer)

	app.UsersRepo = userRepo
	app.WardrobeRepo = wardrobeRepo
	app.UsersService = userSvc
	app.WardrobeService = wardrobeSvc
	app.RecommendService = recommendSvc
	app.ChatService = chatSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.WardrobeHandler = wardrobe.NewHandler(wardrobeSvc)
	app.RecommendHandler = recommend.NewHandler(recommendSvc)
	app.ChatHandler = chat.NewHandler(chatSvc)

	if app.UsersHandler == nil || app.RecommendHandler == nil || app.ChatHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}

// profileAdapter serves user profiles to the recommend and chat services.
type profileAdapter struct {
	users *users.Service
}

func (a profileAdapter) lookup(ctx context.Context, userID string) (users.User, bool, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) || errors.Is(err, users.ErrInvalidInput) {
			return users.User{}, false, nil
		}
		return users.User{}, false, err
	}
	return user, true, nil
}

func (a profileAdapter) Preferences(ctx context.Context, userID string) (recommend.Preferences, error) {
	user, ok, err := a.lookup(ctx, userID)
	if err != nil {
		return recommend.Preferences{}, err
	}
	if !ok {
		return recommend.Preferences{}, recommend.ErrUserNotFound
	}
	return user.Preferences(), nil
}

func (a profileAdapter) Profile(ctx context.Context, userID string) (llm.Profile, error) {
	user, ok, err := a.lookup(ctx, userID)
	if err != nil {
		return llm.Profile{}, err
	}
	if !ok {
		return llm.Profile{}, chat.ErrUserNotFound
	}
	return llm.Profile{
		Name:           user.Name,
		HeightCm:       user.HeightCm,
		BodyType:       user.BodyType,
		Style:          user.Style,
		FavoriteColors: user.FavoriteColors,
	}, nil
}

type wardrobeAdapter struct {
	wardrobe *wardrobe.Service
}

func (a wardrobeAdapter) Items(ctx context.Context, userID string) ([]recommend.Item, error) {
	items, err := a.wardrobe.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wardrobe.Rankables(items), nil
}
