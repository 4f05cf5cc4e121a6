//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergepost/mergepost-api/apps/api/server"
	_ "github.com/mergepost/mergepost-api/docs" // This will be generated
	"github.com/mergepost/mergepost-api/libs/go/logger"
)

// @title           Mergepost API
// @version         1.0
// @description     Personalized bulk email composition and dispatch service

// @contact.name   API Support
// @contact.email  support@mergepost.dev

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	// Initialize your Gin router
	r := gin.Default()

	// Initialize Handlers (also initializes the logger)
	server.InitializeHandlers()

	// Initialize routes
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Add debug logging
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
