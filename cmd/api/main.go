package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "counselconnect/internal/handler/http"
	redisclient "counselconnect/internal/infrastructure/cache"
	"counselconnect/internal/infrastructure/config"
	database "counselconnect/internal/infrastructure/database"
	"counselconnect/internal/infrastructure/external_services"
	"counselconnect/internal/infrastructure/jwt"
	"counselconnect/internal/infrastructure/logger"
	passwordservice "counselconnect/internal/infrastructure/password_service"
	randomgenerator "counselconnect/internal/infrastructure/random_generator"
	"counselconnect/internal/infrastructure/repository/mongodb"
	"counselconnect/internal/infrastructure/store"
	"counselconnect/internal/infrastructure/uuidgen"
	"counselconnect/internal/infrastructure/validator"
	"counselconnect/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.NewConfig()
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET environment variables must be set")
	}

	appLogger, loggerCleanup, err := logger.NewZapLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer loggerCleanup()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(cfg.DBName)

	// Redis backs the read caches
	rdb := redisclient.NewRedisFromURL(context.Background(), cfg.RedisURL)
	defer redisclient.Close(rdb)
	cacheStore := store.NewRedisCacheStore(rdb)

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userCollection := db.Collection("users")
	userRepo := mongodb.NewMongoUserRepository(userCollection)
	tokenRepo := mongodb.NewTokenRepository(db.Collection("tokens"))
	blogRepo := mongodb.NewBlogRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	groupRepo := mongodb.NewGroupRepository(db)
	ratingRepo := mongodb.NewRatingRepository(db)
	chatRepo := mongodb.NewChatRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	jwtService := jwt.NewJWTService(jwtManager)
	mailService := external_services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	pageRepo := mongodb.NewPageRepository(db, uuidGenerator)
	aiService := external_services.NewGeminiAIService(cfg.AIServiceAPIKey)
	scraper := external_services.NewWebScraper()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(
		userRepo, tokenRepo, hasher, uuidGenerator, randomGenerator,
		mailService, jwtService, appValidator, appLogger,
		cfg.OTPExpiry, cfg.RefreshTokenExpiry,
	)
	blogUsecase := usecase.NewBlogUsecase(blogRepo, commentRepo, uuidGenerator, cacheStore, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, blogRepo, uuidGenerator, appLogger)
	groupUsecase := usecase.NewGroupUsecase(groupRepo, ratingRepo, userRepo, uuidGenerator, appLogger)
	chatUsecase := usecase.NewChatUsecase(chatRepo, groupRepo, userRepo, uuidGenerator, appLogger)
	dashboardUsecase := usecase.NewDashboardUsecase(userRepo, blogRepo, commentRepo, groupRepo, pageRepo, cacheStore, appLogger)
	aiUsecase := usecase.NewAIUseCase(aiService, scraper)

	// Dependency Injection: Handlers
	userHandler := handlerHttp.NewUserHandler(userUsecase)
	authHandler := handlerHttp.NewAuthHandler(userUsecase, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	blogHandler := handlerHttp.NewBlogHandler(blogUsecase, aiUsecase)
	commentHandler := handlerHttp.NewCommentHandler(commentUsecase)
	groupHandler := handlerHttp.NewGroupHandler(groupUsecase)
	chatHandler := handlerHttp.NewChatHandler(chatUsecase)
	dashboardHandler := handlerHttp.NewDashboardHandler(dashboardUsecase, blogUsecase)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	appRouter := handlerHttp.NewRouter(
		userUsecase,
		userHandler, authHandler, blogHandler, commentHandler,
		groupHandler, chatHandler, dashboardHandler,
		cfg.AllowedOrigins, cfg.RateLimitRPS,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
