package main

import (
	"log"

	"erpoffice/config"
	"erpoffice/models"
)

func main() {
	db := config.ConnectDB()

	err := db.AutoMigrate(
		&models.User{},
		&models.Attendance{},
		&models.Leave{},
		&models.Task{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("✅ Migration completed")
}
