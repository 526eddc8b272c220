package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/kartiksrathod/Social-Media-sub000/internal/cache"
	"github.com/kartiksrathod/Social-Media-sub000/internal/handlers"
	"github.com/kartiksrathod/Social-Media-sub000/internal/middleware"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
	"github.com/kartiksrathod/Social-Media-sub000/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Social Media Backend",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("ALLOWED_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize database connection
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache (optional: presence and notification caches
	// degrade to no-ops without it)
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsedDB, err := strconv.Atoi(dbStr); err == nil {
			redisDB = parsedDB
		}
	}

	redisCache := cache.NewRedisCache(redisAddr, redisPassword, redisDB)
	if err := redisCache.Ping(); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
		redisCache = nil
	} else {
		log.Println("Redis cache connected successfully")
	}

	presenceCache := cache.NewPresenceCache(redisCache)
	notificationCache := cache.NewNotificationCache(redisCache)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize real-time layer: one registry per process, injected into
	// every collaborator
	registry := realtime.NewRegistry()
	rooms := realtime.NewRoomManager(registry)
	dispatcher := realtime.NewDispatcher(registry, rooms)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, notificationCache)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, notificationService, dispatcher)
	messageService := service.NewMessageService(messageRepo, conversationRepo, dispatcher)
	presenceService := service.NewPresenceService(userRepo, presenceCache)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	wsHandler := handlers.NewWebSocketHandler(registry, rooms, dispatcher, messageService, presenceService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	commentHandler := handlers.NewCommentHandler(commentService)
	messageHandler := handlers.NewMessageHandler(messageService)
	engagementHandler := handlers.NewEngagementHandler(notificationService, postRepo, userRepo)
	userHandler := handlers.NewUserHandler(userService)
	presenceHandler := handlers.NewPresenceHandler(presenceService, registry)

	// Protected routes
	api := app.Group("/api", middleware.OriginAllowed())
	protected := api.Group("/", middleware.AuthRequired())

	protected.Get("/users/me", userHandler.GetCurrentUser)
	protected.Get("/users/search", userHandler.SearchUsers)
	protected.Get("/users/online", presenceHandler.GetOnlineUsers)
	protected.Get("/users/:identifier", userHandler.GetUser)
	protected.Get("/users/:id/presence", presenceHandler.GetUserPresence)
	protected.Post("/users/:id/follow", engagementHandler.FollowUser)

	protected.Get("/notifications", notificationHandler.GetNotifications)
	protected.Get("/notifications/unread-count", notificationHandler.GetUnreadCount)
	protected.Post(
		"/notifications/read-all",
		limiter.New(limiter.Config{
			Max:        20,
			Expiration: time.Minute,
		}),
		notificationHandler.MarkAllRead,
	)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	protected.Get("/posts/:id/comments", commentHandler.GetComments)
	protected.Post("/posts/:id/comments", commentHandler.CreateComment)
	protected.Post("/posts/:id/like", engagementHandler.LikePost)
	protected.Put("/comments/:id", commentHandler.EditComment)
	protected.Delete("/comments/:id", commentHandler.DeleteComment)
	protected.Post("/comments/:id/reactions", commentHandler.ReactToComment)

	protected.Post("/conversations", messageHandler.StartConversation)
	protected.Get("/conversations", messageHandler.GetConversations)
	protected.Get("/conversations/:id/messages", messageHandler.GetMessages)
	protected.Post("/conversations/:id/messages", messageHandler.SendMessage)

	// WebSocket route (websocket upgrade needs special handling)
	app.Use(
		"/ws",
		middleware.OriginAllowed(),
		middleware.AuthRequired(),
		func(c *fiber.Ctx) error {
			// Upgrade to WebSocket
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		},
	)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"online": registry.Count(),
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
