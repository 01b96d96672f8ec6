package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/careercopilot/backend/analyzer"
	"github.com/careercopilot/backend/auth"
	"github.com/careercopilot/backend/config"
	_ "github.com/careercopilot/backend/docs"
	"github.com/careercopilot/backend/groq"
	"github.com/careercopilot/backend/handlers"
	"github.com/careercopilot/backend/keypool"
	"github.com/careercopilot/backend/ratelimit"
	"github.com/careercopilot/backend/session"
	"github.com/careercopilot/backend/storage"
)

const version = "1.0.0"

// @title Career Copilot API
// @version 1.0
// @description AI-powered resume analysis backend with role fit scoring, learning roadmaps, cover letters and interview preparation.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@careercopilot.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client. Optional: without a project the app still
	// serves analyses, they just are not persisted.
	var firestoreClient *storage.FirestoreClient
	if cfg.ProjectID != "" {
		log.Println("Initializing Firestore client...")
		var err error
		firestoreClient, err = storage.NewFirestoreClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		log.Println("Firestore client initialized successfully")
	} else {
		log.Println("PROJECT_ID not set, persistence disabled")
	}

	// Initialize Cloud Storage client (optional, used for resume uploads)
	var storageClient *storage.CloudStorageClient
	if cfg.ResumeBucketName != "" {
		log.Println("Initializing Cloud Storage client...")
		var err error
		storageClient, err = storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
		}
		defer storageClient.Close()
		log.Println("Cloud Storage client initialized successfully")
	}

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Session store: Redis when configured, in-memory otherwise
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	var sessions session.Store
	if cfg.RedisAddr != "" {
		log.Printf("Connecting to Redis at %s...", cfg.RedisAddr)
		redisStore, err := session.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, sessionTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		sessions = session.NewMemoryStore(sessionTTL)
	}

	// Build the LLM pipeline: key pool -> Groq client -> executor -> analyzer.
	// Without API keys the analyzer serves deterministic demo results.
	var pool *keypool.Pool
	var resumeAnalyzer *analyzer.Analyzer
	if len(cfg.GroqAPIKeys) > 0 {
		pool = keypool.NewPool(cfg.GroqAPIKeys)
		executor := groq.NewExecutor(pool, groq.NewClient(cfg), time.Duration(cfg.CooldownSeconds)*time.Second)
		resumeAnalyzer = analyzer.NewAnalyzer(executor)
	} else {
		log.Println("No Groq API keys configured, running in demo mode")
		resumeAnalyzer = analyzer.NewAnalyzer(nil)
	}

	// Create handlers
	analyzeHandler := handlers.NewAnalyzeHandler(cfg, resumeAnalyzer, sessions, firestoreClient, storageClient)
	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService, googleAuthService)
	systemHandler := handlers.NewSystemHandler(pool, version)

	// Per-IP limiter for the expensive LLM-backed routes
	limiter := ratelimit.NewLimiter(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSeconds)*time.Second)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", systemHandler.Health)

	api := router.Group("/api")
	{
		// Auth endpoints need persistence for accounts
		if firestoreClient != nil {
			// Public
			authGroup := api.Group("/auth")
			{
				authGroup.POST("/register", authHandler.Register)
				authGroup.POST("/login", authHandler.Login)
				authGroup.POST("/google", authHandler.GoogleLogin)
			}

			// Protected (require authentication)
			authProtected := api.Group("/auth")
			authProtected.Use(auth.AuthMiddleware(jwtService))
			{
				authProtected.GET("/profile", authHandler.GetProfile)
				authProtected.PUT("/profile", authHandler.UpdateProfile)
				authProtected.GET("/analyses", authHandler.History)
				authProtected.DELETE("/account", authHandler.DeleteAccount)
			}
		}

		// Analysis pipeline (optional auth - persists results when logged in)
		api.POST("/analyze", limiter.Middleware(), auth.OptionalAuthMiddleware(jwtService), analyzeHandler.Analyze)
		api.GET("/results", analyzeHandler.Results)

		// Role resources built from the stored session
		api.GET("/jobs", analyzeHandler.Jobs)
		api.GET("/interview", limiter.Middleware(), analyzeHandler.Interview)

		// Cover letter generation and download
		api.POST("/cover-letter", limiter.Middleware(), analyzeHandler.CoverLetter)
		api.GET("/cover-letter/pdf", analyzeHandler.CoverLetterPDF)

		// Exports
		api.GET("/export/tsv", analyzeHandler.ExportTSV)
		api.GET("/report/pdf", analyzeHandler.ReportPDF)

		// Operational
		api.GET("/pool/stats", systemHandler.PoolStats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
