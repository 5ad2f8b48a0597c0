package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	boardapp "github.com/talenttrek/backend/internal/application/board"
	filesapp "github.com/talenttrek/backend/internal/application/files"
	identityapp "github.com/talenttrek/backend/internal/application/identity"
	questionsapp "github.com/talenttrek/backend/internal/application/questions"
	"github.com/talenttrek/backend/internal/infrastructure/auth"
	"github.com/talenttrek/backend/internal/infrastructure/cache"
	"github.com/talenttrek/backend/internal/infrastructure/config"
	"github.com/talenttrek/backend/internal/infrastructure/logger"
	"github.com/talenttrek/backend/internal/infrastructure/persistence"
	"github.com/talenttrek/backend/internal/infrastructure/questiongen"
	"github.com/talenttrek/backend/internal/infrastructure/storage"
	"github.com/talenttrek/backend/internal/interfaces/http/handler"
	"github.com/talenttrek/backend/internal/interfaces/http/middleware"
	"github.com/talenttrek/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting TalentTrek Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	jobRepo := persistence.NewGormJobRepository(db.DB)
	applicationRepo := persistence.NewGormApplicationRepository(db.DB)

	// Redis backs token revocation and the question cache. When it is not
	// configured (or unreachable) the in-memory fallbacks keep a single
	// instance fully functional.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, falling back to in-memory stores", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
		}
	}
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	var tokenBlacklist auth.TokenBlacklist
	var questionCache questionsapp.QuestionCache
	if redisClient != nil {
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
		questionCache = cache.NewRedisQuestionCache(redisClient)
	} else {
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
		questionCache = cache.NewInMemoryQuestionCache()
	}

	// Object storage for resumes and profile photos
	var objectStorage filesapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ensureCtx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		objectStorage = s3Storage
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Warn("No storage bucket configured, uploads will use in-memory stub storage")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist, identityapp.DefaultAuthServiceConfig(), log)
	profileService := identityapp.NewProfileService(userRepo, log)
	companyService := boardapp.NewCompanyService(companyRepo, jobRepo, log)
	jobService := boardapp.NewJobService(jobRepo, companyRepo, log)
	applicationService := boardapp.NewApplicationService(applicationRepo, jobRepo, companyRepo, userRepo, log)
	uploadService := filesapp.NewUploadService(objectStorage, cfg.Uploads)
	questionGenerator := questiongen.NewClient(cfg.Questions, questiongen.WithLogger(log))
	questionService := questionsapp.NewQuestionService(questionGenerator, questionCache, cfg.Questions.CacheTTL, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	questionHandler := handler.NewQuestionHandler(questionService)
	systemHandler := handler.NewSystemHandler(db.DB, redisClient)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes.
	// Sign-up, sign-in, token refresh and the pre-signup resume upload are
	// public; everything else requires a valid access token.
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		SkipPaths: []string{
			"/api/v1/auth/signup",
			"/api/v1/auth/signin",
			"/api/v1/auth/refresh",
			"/api/v1/auth/signup/resume",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication and account routes
	authRoutes := router.NewGroup("/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/signup", authHandler.SignUp)
	authRoutes.POST("/signin", authHandler.SignIn)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/signout", authHandler.SignOut)
	authRoutes.POST("/signup/resume", uploadHandler.UploadSignupResume)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/me", profileHandler.UpdateProfile)
	authRoutes.PUT("/me/password", profileHandler.ChangePassword)

	// Authenticated file uploads
	uploadRoutes := router.NewGroup("/uploads")
	uploadRoutes.POST("/resume", uploadHandler.UploadResume)
	uploadRoutes.POST("/photo", uploadHandler.UploadPhoto)

	// Student routes: browse jobs, apply, track applications
	studentRoutes := router.NewGroup("/student")
	studentRoutes.Use(middleware.RequireStudent())
	studentRoutes.GET("/jobs", jobHandler.ListJobs)
	studentRoutes.GET("/jobs/:id", jobHandler.GetJob)
	studentRoutes.POST("/jobs/:id/apply", applicationHandler.Apply)
	studentRoutes.GET("/applications", applicationHandler.ListMyApplications)
	studentRoutes.DELETE("/applications/:id", applicationHandler.WithdrawApplication)
	studentRoutes.POST("/questions/generate", questionHandler.Generate)

	// Recruiter routes: companies, job postings, applicant review
	recruiterRoutes := router.NewGroup("/recruiter")
	recruiterRoutes.Use(middleware.RequireRecruiter())
	recruiterRoutes.GET("/dashboard", applicationHandler.Dashboard)
	recruiterRoutes.POST("/companies", companyHandler.CreateCompany)
	recruiterRoutes.GET("/companies", companyHandler.ListCompanies)
	recruiterRoutes.GET("/companies/:id", companyHandler.GetCompany)
	recruiterRoutes.PUT("/companies/:id", companyHandler.UpdateCompany)
	recruiterRoutes.DELETE("/companies/:id", companyHandler.DeleteCompany)
	recruiterRoutes.GET("/companies/:id/jobs", jobHandler.ListCompanyJobs)
	recruiterRoutes.POST("/jobs", jobHandler.PostJob)
	recruiterRoutes.PUT("/jobs/:id", jobHandler.UpdateJob)
	recruiterRoutes.DELETE("/jobs/:id", jobHandler.DeleteJob)
	recruiterRoutes.GET("/applications", applicationHandler.ListApplications)
	recruiterRoutes.PUT("/applications/:id/status", applicationHandler.UpdateApplicationStatus)

	// System routes
	systemRoutes := router.NewGroup("/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(uploadRoutes).
		Register(studentRoutes).
		Register(recruiterRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
