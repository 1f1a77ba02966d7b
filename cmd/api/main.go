package main

import (
	"log"
	"os"

	"erpoffice/config"
	"erpoffice/routes"
	"erpoffice/utils/fcm"
	"erpoffice/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	config.LoadEnv()

	if err := config.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	config.ConnectDB()
	storage.InitS3Client()

	if projectID := os.Getenv("FCM_PROJECT_ID"); projectID != "" {
		if err := fcm.Init(projectID); err != nil {
			log.Fatalf("fcm init error: %v", err)
		}
		go fcm.StartNotifierConsumer()
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Content-Type, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	routes.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 API running on :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
