package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/mergepost/mergepost-api/apps/api/handlers"
	awsclient "github.com/mergepost/mergepost-api/libs/go/client/aws"
	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/helpers"
	"github.com/mergepost/mergepost-api/libs/go/logger"
	"github.com/mergepost/mergepost-api/libs/go/middleware"
	"github.com/mergepost/mergepost-api/libs/go/services"
)

// Handler Definitions
var (
	recipientHandler *handlers.RecipientHandler
	campaignHandler  *handlers.CampaignHandler
	healthHandler    *handlers.HealthHandler

	// Services
	commonServices *handlers.CommonServices
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal // Default to local if not set
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Resend API Key ---
	// Deployed stages resolve the key through Secrets Manager; locally the
	// env fallback applies.
	var resendAPIKey string
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Warn("Failed to initialize AWS Secrets Manager client, using environment only", zap.Error(err))
		resendAPIKey = os.Getenv("RESEND_API_KEY")
	} else {
		resendAPIKey, err = secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		if err != nil {
			logger.Warn("Failed to get Resend API Key. Email delivery will fail until configured.", zap.Error(err))
			resendAPIKey = ""
		}
	}

	// Get additional configurations
	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "noreply@mergepost.dev"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Mergepost"
	}

	workerCount := constants.DefaultDispatchWorkers
	if raw := os.Getenv("DISPATCH_WORKER_COUNT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			logger.Warn("Invalid DISPATCH_WORKER_COUNT, using default",
				zap.String("value", raw),
				zap.Int("default", constants.DefaultDispatchWorkers))
		} else {
			workerCount = parsed
		}
	}

	// --- Services ---
	emailService := services.NewEmailService(resendAPIKey, fromEmail, fromName, logger.Log)
	sessionManager := services.NewSessionManager()
	dispatchService := services.NewDispatchService(emailService, workerCount)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		Sender:     emailService,
		Sessions:   sessionManager,
		Dispatcher: dispatchService,
		Logger:     logger.Log,
	})

	// API Handler initialization
	recipientHandler = handlers.NewRecipientHandler(commonServices)
	campaignHandler = handlers.NewCampaignHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(commonServices)
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Add basic request logging
	router.Use(middleware.RequestLoggingMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Transport health probe - independent of any batch
		v1.POST("/transport/test", healthHandler.TestTransport)

		// Recipient editing surface
		recipients := v1.Group("/recipients")
		{
			recipients.GET("", recipientHandler.ListRecipients)
			recipients.POST("", recipientHandler.AddRecipient)
			recipients.PUT("/:index", recipientHandler.UpdateRecipient)
			recipients.DELETE("/:index", recipientHandler.RemoveRecipient)
		}

		// Campaign submission and results
		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("/send", campaignHandler.SendCampaign)
			campaigns.GET("/results", campaignHandler.GetCampaignResults)
			campaigns.POST("/cancel", campaignHandler.CancelCampaign)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", constants.SessionIDHeader, "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Expose correlation ID so clients can report it back
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
