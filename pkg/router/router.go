package router

import (
	"character-chat-demo/backend/internal/api"
	"character-chat-demo/backend/pkg/config"
	"character-chat-demo/backend/pkg/di"
	"character-chat-demo/backend/pkg/errors"
	"character-chat-demo/backend/pkg/logger"
	"character-chat-demo/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	logger.SetGlobal(container.Logger)

	cfg := config.Get()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Logger first so every later middleware sees the request-scoped logger
	engine.Use(logger.Middleware(container.Logger))
	engine.Use(errors.ErrorHandler())
	engine.Use(errors.RecoveryWithLogger())
	engine.Use(middleware.Metrics())

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.Engine.Use(corsMiddleware(r.Config.Security.AllowedOrigins))

	r.setupHealthRoutes()
	r.Engine.GET("/metrics", middleware.MetricsHandler())

	userHandler := api.NewUserHandler(r.Container.UserService)
	characterHandler := api.NewCharacterHandler(r.Container.CharacterService)
	messageHandler := api.NewMessageHandler(r.Container.ChatService)
	imageHandler := api.NewImageHandler(r.Container.ImageService)

	// Every data route degrades to 503 while no store is configured
	data := r.Engine.Group("/")
	data.Use(middleware.RequireStore(r.Container.StoreAvailable))
	{
		data.POST("/users", userHandler.UpsertUser)
		data.GET("/users/:username", userHandler.GetUser)

		data.POST("/characters", characterHandler.CreateCharacter)
		data.GET("/characters", characterHandler.ListCharacters)

		data.POST("/chat/:character_id/messages", messageHandler.PostMessage)
		data.GET("/chat/:character_id/messages", messageHandler.GetMessages)

		data.POST("/images", imageHandler.GenerateImage)
	}
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, Authorization, Origin")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
