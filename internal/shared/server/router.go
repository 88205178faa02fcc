package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"styleup-backend/internal/chat"
	"styleup-backend/internal/recommend"
	"styleup-backend/internal/shared/config"
	"styleup-backend/internal/shared/metrics"
	"styleup-backend/internal/shared/server/middleware"
	"styleup-backend/internal/shared/server/respond"
	"styleup-backend/internal/users"
	"styleup-backend/internal/wardrobe"
)

const chatRateLimitGroup = "CHAT"

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config    config.Config
	Users     *users.Handler
	Wardrobe  *wardrobe.Handler
	Recommend *recommend.Handler
	Chat      *chat.Handler
	Limiter   *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.Users != nil {
		deps.Users.RegisterRoutes(api)
	}
	if deps.Wardrobe != nil {
		deps.Wardrobe.RegisterRoutes(api)
	}
	if deps.Recommend != nil {
		deps.Recommend.RegisterRoutes(api)
	}
	if deps.Chat != nil {
		deps.Chat.RegisterRoutes(api, middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: chatRateLimitGroup,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				chatRateLimitGroup: {
					Rate:  deps.Config.ChatRateLimitRPS,
					Burst: deps.Config.ChatRateLimitBurst,
				},
			},
		}))
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
