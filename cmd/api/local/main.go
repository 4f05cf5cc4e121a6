//go:build !lambda
// +build !lambda

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mergepost/mergepost-api/apps/api/server"
	_ "github.com/mergepost/mergepost-api/docs"
	"github.com/mergepost/mergepost-api/libs/go/logger"
)

func main() {

	err := godotenv.Load()
	if err != nil {
		// It's often okay if the .env file is missing, especially in production
		// where variables might be set directly in the environment.
		// Log it but don't necessarily stop the application.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	defer logger.Sync()

	log.Printf("Server starting on :8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
