package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mazboy1/frasa-backend/internal/handler/http"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/config"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/database"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/external_services"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/jwt"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/logger"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/repository/mongodb"
	"github.com/mazboy1/frasa-backend/internal/infrastructure/validator"
	"github.com/mazboy1/frasa-backend/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(appConfig.DBName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	classRepo := mongodb.NewClassRepository(db.Collection("classes"))
	cartRepo := mongodb.NewCartRepository(db.Collection("cart"))
	paymentRepo := mongodb.NewPaymentRepository(db.Collection("payment"))
	enrollmentRepo := mongodb.NewEnrollmentRepository(db.Collection("enrolled"))
	applicationRepo := mongodb.NewApplicationRepository(db.Collection("applied"))
	feedbackRepo := mongodb.NewFeedbackRepository(db.Collection("feedback"))

	if err := cartRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create cart indexes: %v", err)
	}

	// Dependency Injection: Services
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetTokenExpiry())
	tokenService := jwt.NewTokenService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	paymentGateway := external_services.NewStripeGateway(appConfig.PaymentSecret)

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, tokenService, appValidator, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, appValidator, appLogger)
	classUsecase := usecase.NewClassUsecase(classRepo, appLogger)
	cartUsecase := usecase.NewCartUsecase(cartRepo, classRepo, appLogger)
	checkoutUsecase := usecase.NewCheckoutUsecase(classRepo, cartRepo, paymentRepo, enrollmentRepo, paymentGateway, appLogger)
	statsUsecase := usecase.NewStatsUsecase(classRepo, userRepo, enrollmentRepo)
	applicationUsecase := usecase.NewApplicationUsecase(applicationRepo, appValidator)
	feedbackUsecase := usecase.NewFeedbackUsecase(feedbackRepo, classRepo, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		authUsecase, userUsecase, classUsecase, cartUsecase,
		checkoutUsecase, statsUsecase, applicationUsecase, feedbackUsecase,
		tokenService, userRepo, mongoClient,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
