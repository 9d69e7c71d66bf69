// Command-line tool to seed the extension whitelist with a default set.
package main

import (
	"fmt"
	"log"

	"datadrop-backend/internal/config"
	"datadrop-backend/internal/database"
	"datadrop-backend/internal/model"
)

var defaults = []model.AllowedFileType{
	{BaseURL: "https://datadrop.example.com/csv", FileType: "csv"},
	{BaseURL: "https://datadrop.example.com/pdf", FileType: "pdf"},
	{BaseURL: "https://datadrop.example.com/png", FileType: "png"},
	{BaseURL: "https://datadrop.example.com/jpg", FileType: "jpg"},
	{BaseURL: "https://datadrop.example.com/txt", FileType: "txt"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	var count int64
	if err := db.Model(&model.AllowedFileType{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count existing file types: %v", err)
	}
	if count > 0 {
		fmt.Printf("Whitelist already has %d entries, nothing to do.\n", count)
		return
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Fatalf("Failed to seed file types: %v", err)
	}

	fmt.Printf("Seeded %d default file types.\n", len(defaults))
}
