package repository

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"qenea/internal/database"
	"qenea/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file:repotest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Repository tests skipped: sqlite unavailable: %v", err)
		os.Exit(0)
	}
	// SQLite's shared-cache in-memory mode rejects overlapping write
	// transactions with a table lock instead of waiting. One connection
	// queues them, so tests can still run real goroutine concurrency.
	if sqlDB, err := testDB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	os.Exit(m.Run())
}

// seedUser creates a user with a profile. Usernames are timestamped so tests
// never collide on the unique indexes.
func seedUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	user := &models.User{
		Username: fmt.Sprintf("%s_%d", prefix, ts),
		Email:    fmt.Sprintf("%s_%d@example.com", prefix, ts),
		Password: "x",
		Profile:  &models.Profile{Bio: "seeded"},
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// seedQuestion creates a question owned by the user.
func seedQuestion(t *testing.T, userID uint, title string) *models.Question {
	t.Helper()
	question := &models.Question{
		Title:       title,
		Description: "seeded question body",
		UserID:      userID,
	}
	if err := testDB.Create(question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return question
}
