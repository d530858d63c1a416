// Command migrate applies the database schema.
package main

import (
	"log"

	"qenea/internal/config"
	"qenea/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Connect only automigrates outside production; force it here so the
	// command works in every environment.
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Database schema is up to date")
}
