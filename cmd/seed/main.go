// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"qenea/internal/config"
	"qenea/internal/database"
	"qenea/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numQuestions := flag.Int("questions", 200, "Number of questions to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (much faster for large datasets)")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible datasets (0 = from clock)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d questions, clean=%v\n", *numUsers, *numQuestions, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:     *numUsers,
		NumQuestions: *numQuestions,
		ShouldClean:  *shouldClean,
		SkipBcrypt:   *skipBcrypt,
		RandSeed:     *randSeed,
	}
	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
