package seed

import (
	"testing"

	"qenea/internal/database"
	"qenea/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestBuiltInTags(t *testing.T) {
	names, err := BuiltInTags()
	require.NoError(t, err)
	assert.NotEmpty(t, names)
	assert.Contains(t, names, "go")
}

func TestTagsSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Tags(db))
	var first int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&first).Error)
	assert.Greater(t, first, int64(0))

	require.NoError(t, Tags(db))
	var second int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestFactoryCreateUser(t *testing.T) {
	db := openTestDB(t)
	factory := NewFactory(db, Options{SkipBcrypt: true, RandSeed: 1})

	user, err := factory.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	require.NotNil(t, user.Profile)
	assert.NotZero(t, user.Profile.ID)
	assert.Equal(t, user.ID, user.Profile.UserID)
}

func TestFactoryCreateQuestionWithTags(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Tags(db))

	var tags []models.Tag
	require.NoError(t, db.Find(&tags).Error)

	factory := NewFactory(db, Options{SkipBcrypt: true, RandSeed: 2})
	user, err := factory.CreateUser()
	require.NoError(t, err)

	question, err := factory.CreateQuestion(user, tags)
	require.NoError(t, err)
	assert.NotZero(t, question.ID)
	assert.NotEmpty(t, question.Slug)
	assert.NotEmpty(t, question.Tags)
}

func TestSeedSmallDataset(t *testing.T) {
	db := openTestDB(t)

	opts := Options{
		NumUsers:     4,
		NumQuestions: 6,
		SkipBcrypt:   true,
		RandSeed:     42,
	}
	require.NoError(t, Seed(db, opts))

	var userCount, questionCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Question{}).Count(&questionCount).Error)
	assert.Equal(t, int64(4), userCount)
	assert.Equal(t, int64(6), questionCount)

	// No question may carry more than one accepted answer
	type row struct {
		QuestionID uint
		N          int
	}
	var rows []row
	require.NoError(t, db.Model(&models.Answer{}).
		Select("question_id AS question_id, COUNT(*) AS n").
		Where("is_accepted = ?", true).
		Group("question_id").
		Scan(&rows).Error)
	for _, r := range rows {
		assert.LessOrEqual(t, r.N, 1, "question %d has multiple accepted answers", r.QuestionID)
	}
}
