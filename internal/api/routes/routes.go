package routes

import (
	"time"

	"wishlist-backend/internal/api/handlers"
	"wishlist-backend/internal/api/middleware"
	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/config"
	"wishlist-backend/internal/push"
	"wishlist-backend/internal/repository"
	"wishlist-backend/internal/service"
	"wishlist-backend/internal/stream"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries the long-lived components built in main and shared
// with background jobs
type Dependencies struct {
	Hub             *stream.Hub
	Notifier        *service.NotificationService
	BirthdayService *service.BirthdayService
}

// SetupRoutes configures all the routes for the application and returns the
// engine together with the shared dependencies
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *Dependencies, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	itemRepo := repository.NewItemRepository(db)
	soloClaimRepo := repository.NewSoloClaimRepository(db)
	splitRepo := repository.NewSplitClaimRepository(db)
	flagRepo := repository.NewOwnershipFlagRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	pushRepo := repository.NewPushSubscriptionRepository(db)

	// Notification fan-out and live delivery
	templates, err := service.LoadMessageTemplates(cfg.NotificationTemplatesPath)
	if err != nil {
		return nil, nil, err
	}

	hub := stream.NewHub()
	deliverers := []service.Deliverer{hub}

	var pushService *service.PushService
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		sender := push.NewSender(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubscriber)
		pushService = service.NewPushService(pushRepo, sender)
		deliverers = append(deliverers, pushService)
	}

	notifier := service.NewNotificationService(notificationRepo, userRepo, templates, deliverers...)

	// Services
	visibility := service.NewVisibilityService(wishlistRepo, itemRepo, friendshipRepo)
	userService := service.NewUserService(userRepo)
	friendshipService := service.NewFriendshipService(db, friendshipRepo, userRepo, notifier)
	wishlistService := service.NewWishlistService(db, wishlistRepo, itemRepo, soloClaimRepo, splitRepo, visibility)
	claimService := service.NewClaimService(db, soloClaimRepo, splitRepo, itemRepo, wishlistRepo, visibility)
	splitService := service.NewSplitService(db, splitRepo, soloClaimRepo, itemRepo, wishlistRepo, friendshipRepo, visibility, notifier)
	flagService := service.NewFlagService(db, flagRepo, soloClaimRepo, splitRepo, itemRepo, wishlistRepo, visibility, notifier)
	fulfillmentService := service.NewFulfillmentService(db, soloClaimRepo, splitRepo, itemRepo, wishlistRepo, notifier)

	// Auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, authService)
	friendshipHandler := handlers.NewFriendshipHandler(friendshipService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	claimHandler := handlers.NewClaimHandler(claimService, fulfillmentService)
	splitHandler := handlers.NewSplitHandler(splitService)
	flagHandler := handlers.NewFlagHandler(flagService)
	notificationHandler := handlers.NewNotificationHandler(notifier)

	// Health and operational routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", userHandler.Me)
		v1.PATCH("/me", userHandler.UpdateMe)

		friends := v1.Group("/friends")
		{
			friends.GET("", friendshipHandler.ListFriends)
			friends.POST("/requests", friendshipHandler.SendRequest)
			friends.POST("/requests/:id/respond", friendshipHandler.Respond)
		}

		wishlists := v1.Group("/wishlists")
		{
			wishlists.GET("", wishlistHandler.ListWishlists)
			wishlists.POST("", wishlistHandler.CreateWishlist)
			wishlists.GET("/:id", wishlistHandler.GetWishlist)
			wishlists.PATCH("/:id", wishlistHandler.UpdateWishlist)
			wishlists.GET("/:id/items", wishlistHandler.ListItems)
			wishlists.POST("/:id/items", wishlistHandler.AddItem)
		}

		items := v1.Group("/items")
		{
			items.DELETE("/:id", wishlistHandler.DeleteItem)
			items.POST("/:id/claim", claimHandler.CreateClaim)
			items.POST("/:id/split", splitHandler.InitiateSplit)
			items.POST("/:id/flag", flagHandler.CreateFlag)
			items.POST("/:id/received", claimHandler.MarkReceived)
			items.POST("/:id/purchased", claimHandler.MarkPurchased)
		}

		claims := v1.Group("/claims")
		{
			claims.GET("", claimHandler.ListMyClaims)
			claims.DELETE("/:id", claimHandler.CancelClaim)
		}

		splits := v1.Group("/splits")
		{
			splits.GET("/:id", splitHandler.GetSplit)
			splits.POST("/:id/join", splitHandler.JoinSplit)
			splits.POST("/:id/leave", splitHandler.LeaveSplit)
		}

		flags := v1.Group("/flags")
		{
			flags.POST("/:id/resolve", flagHandler.ResolveFlag)
			flags.DELETE("/:id", flagHandler.DeleteFlag)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/:id/archive", notificationHandler.Archive)
		}

		if pushService != nil {
			pushHandler := handlers.NewPushHandler(pushService)
			pushGroup := v1.Group("/push")
			{
				pushGroup.GET("/vapid-key", pushHandler.VAPIDKey)
				pushGroup.POST("/subscriptions", pushHandler.Subscribe)
				pushGroup.DELETE("/subscriptions", pushHandler.Unsubscribe)
			}
		}

		v1.GET("/stream", stream.Handler(hub, cfg.AllowedOrigins))
	}

	deps := &Dependencies{
		Hub:      hub,
		Notifier: notifier,
	}
	if cfg.BirthdaySweepMinutes > 0 {
		deps.BirthdayService = service.NewBirthdayService(db, userRepo, friendshipRepo,
			notificationRepo, notifier, time.Duration(cfg.BirthdaySweepMinutes)*time.Minute)
	}
	return router, deps, nil
}
