package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"globalmart/config"
	"globalmart/libs"
	"globalmart/middleware"
	"globalmart/models"
	"globalmart/routes"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()

	storage, err := libs.NewBucketStorage(
		config.AppConfig.S3Endpoint,
		config.AppConfig.S3AccessKey,
		config.AppConfig.S3SecretKey,
		config.AppConfig.S3Bucket,
		config.AppConfig.S3UseSSL,
	)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
		mailer = nil
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, storage, mailer)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
