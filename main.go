package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"blogspace-be/internal/cache"
	"blogspace-be/internal/config"
	"blogspace-be/internal/controllers"
	"blogspace-be/internal/database"
	"blogspace-be/internal/jwt"
	"blogspace-be/internal/logger"
	"blogspace-be/internal/middleware"
	"blogspace-be/internal/repository"
	"blogspace-be/internal/service"
	"blogspace-be/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.New(logger.ConfigForEnvironment(cfg.Environment, cfg.LogLevel, cfg.LogFormat))
	defer func() { _ = zapLogger.Sync() }()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			zapLogger.Warn("Failed to connect to Redis. Continuing without cache.", zap.Error(err))
		} else {
			zapLogger.Info("Connected to Redis cache")
			cacheClient = client
			defer client.Close()
		}
	}

	// Initialize upload storage
	store, localStore, err := newStorage(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	questionCategoryRepo := repository.NewQuestionCategoryRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
		cfg.JWTIssuer,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	blogService := service.NewBlogService(blogRepo, categoryRepo, store, zapLogger)
	categoryService := service.NewCategoryService(categoryRepo, blogRepo, cacheClient, zapLogger)
	studyService := service.NewStudyService(questionCategoryRepo, questionRepo)
	profileService := service.NewProfileService(userRepo, store, zapLogger)

	// Initialize controllers
	maxUpload := int64(cfg.Storage.MaxUploadMB) << 20
	authController := controllers.NewAuthController(authService)
	blogController := controllers.NewBlogController(blogService, maxUpload)
	categoryController := controllers.NewCategoryController(categoryService)
	studyController := controllers.NewStudyController(studyService)
	profileController := controllers.NewProfileController(profileService, maxUpload)
	qrcodeController := controllers.NewQRCodeController(blogService, cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer generalRateLimiter.Stop()
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer authRateLimiter.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.MaxMultipartMemory = maxUpload
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		zapLogger.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	router.Use(
		middleware.RequestID(),
		logger.GinMiddleware(zapLogger),
		logger.Recovery(zapLogger),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Uploaded images for the local driver
	if localStore != nil {
		router.Static(localStore.PublicPath(), localStore.Dir())
	}

	requireAuth := middleware.AuthMiddleware(jwtService)

	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		{
			auth.POST("/register", authRateLimiter.LimitMiddleware(), authController.Register)
			auth.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)
			auth.GET("/me", requireAuth, authController.Me)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogController.ListBlogs)
			blogs.GET("/my-blogs", requireAuth, blogController.GetMyBlogs)
			blogs.GET("/:id", blogController.GetBlog)
			blogs.GET("/:id/qrcode", qrcodeController.GenerateQRCode)
			blogs.POST("", requireAuth, blogController.CreateBlog)
			blogs.PUT("/:id", requireAuth, blogController.UpdateBlog)
			blogs.DELETE("/:id", requireAuth, blogController.DeleteBlog)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryController.ListCategories)
			categories.GET("/:id", categoryController.GetCategory)
			categories.POST("", requireAuth, categoryController.CreateCategory)
			categories.PUT("/:id", requireAuth, categoryController.UpdateCategory)
			categories.DELETE("/:id", requireAuth, categoryController.DeleteCategory)
		}

		// Study material is private to its owner
		study := api.Group("/study")
		study.Use(requireAuth)
		{
			study.POST("/category", studyController.AddCategory)
			study.GET("/categories/:userId", studyController.ListCategories)
			study.POST("/question", studyController.AddQuestion)
			study.GET("/questions/:userId/:categoryId", studyController.ListQuestions)
			study.DELETE("/question/:id", studyController.DeleteQuestion)
		}

		user := api.Group("/user")
		user.Use(requireAuth)
		{
			user.GET("/profile", profileController.GetProfile)
			user.PUT("/profile", profileController.UpdateProfile)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
}

// newStorage picks the upload driver. The local store is also returned so its directory can be served.
func newStorage(cfg *config.Config, zapLogger *zap.Logger) (storage.Storage, *storage.LocalStorage, error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s3Store, err := storage.NewS3Storage(ctx, &cfg.Storage, zapLogger)
		if err != nil {
			return nil, nil, err
		}
		return s3Store, nil, nil
	}

	localStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.PublicPath, zapLogger)
	if err != nil {
		return nil, nil, err
	}
	return localStore, localStore, nil
}

func corsConfig(origins []string) cors.Config {
	conf := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	conf.ExposeHeaders = []string{middleware.RequestIDHeader}
	return conf
}
