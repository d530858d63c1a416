// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"qenea/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	src := opts.RandSeed
	if src == 0 {
		src = time.Now().UnixNano()
	}
	gofakeit.Seed(src)
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(src))}
}

// pastTime spreads timestamps over the last opts.MaxDays days so seeded data
// does not all share one creation instant.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().Add(-back)
}

// CreateUser constructs and persists a sample user with a profile.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}
	user := &models.User{
		Username:  strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		IsActive:  true,
		Profile: &models.Profile{
			Bio:     gofakeit.Sentence(10),
			Gender:  genders[f.rng.Intn(len(genders))],
			Picture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		},
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// questionTitle produces something that reads like a real question.
func (f *Factory) questionTitle() string {
	templates := []string{
		"How do I %s a %s in %s?",
		"Why does my %s fail when I %s it?",
		"What is the idiomatic way to %s a %s?",
		"Is it safe to %s a %s concurrently?",
		"Best approach to %s %s data?",
	}
	verbs := []string{"parse", "serialize", "cache", "stream", "validate", "migrate", "profile", "paginate"}
	nouns := []string{"slice", "map", "struct", "goroutine", "transaction", "websocket", "middleware", "index"}
	langs := []string{"Go", "Python", "Rust", "SQL", "TypeScript"}

	tpl := templates[f.rng.Intn(len(templates))]
	switch strings.Count(tpl, "%s") {
	case 3:
		return fmt.Sprintf(tpl, verbs[f.rng.Intn(len(verbs))], nouns[f.rng.Intn(len(nouns))], langs[f.rng.Intn(len(langs))])
	default:
		return fmt.Sprintf(tpl, verbs[f.rng.Intn(len(verbs))], nouns[f.rng.Intn(len(nouns))])
	}
}

// CreateQuestion constructs and persists a question for the given user,
// attached to up to three existing tags.
func (f *Factory) CreateQuestion(user *models.User, tags []models.Tag, overrides ...func(*models.Question)) (*models.Question, error) {
	question := &models.Question{
		Title:       f.questionTitle(),
		Description: gofakeit.Paragraph(2, 4, 8, "\n\n"),
		UserID:      user.ID,
		CreatedAt:   f.pastTime(),
	}

	if len(tags) > 0 {
		count := 1 + f.rng.Intn(3)
		picked := make([]models.Tag, 0, count)
		seen := map[uint]struct{}{}
		for len(picked) < count && len(seen) < len(tags) {
			tag := tags[f.rng.Intn(len(tags))]
			if _, dup := seen[tag.ID]; dup {
				continue
			}
			seen[tag.ID] = struct{}{}
			picked = append(picked, tag)
		}
		question.Tags = picked
	}

	for _, override := range overrides {
		override(question)
	}

	if err := f.db.Create(question).Error; err != nil {
		return nil, fmt.Errorf("create seed question: %w", err)
	}
	return question, nil
}

// CreateAnswer persists an answer for the given question and user.
func (f *Factory) CreateAnswer(user *models.User, question *models.Question, overrides ...func(*models.Answer)) (*models.Answer, error) {
	answer := &models.Answer{
		QuestionID: question.ID,
		UserID:     user.ID,
		Content:    gofakeit.Paragraph(1, 3, 10, "\n"),
		CreatedAt:  f.pastTime(),
	}

	for _, override := range overrides {
		override(answer)
	}

	if err := f.db.Create(answer).Error; err != nil {
		return nil, fmt.Errorf("create seed answer: %w", err)
	}
	return answer, nil
}

// CreateComment persists a comment on a question or answer.
func (f *Factory) CreateComment(user *models.User, kind models.CommentableKind, targetID uint) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:     user.ID,
		TargetKind: kind,
		TargetID:   targetID,
		Content:    gofakeit.Sentence(12),
		CreatedAt:  f.pastTime(),
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create seed comment: %w", err)
	}
	return comment, nil
}

// CreateVote records a vote, skipping silently when the user already voted on
// the target.
func (f *Factory) CreateVote(user *models.User, kind models.VoteTargetKind, targetID uint, value int) error {
	vote := &models.Vote{
		UserID:     user.ID,
		TargetKind: kind,
		TargetID:   targetID,
		Value:      value,
	}
	err := f.db.Create(vote).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		return nil
	}
	return err
}

// CreateFollow records a follow edge between two profiles, skipping silently
// when the edge already exists.
func (f *Factory) CreateFollow(followerProfileID, followeeProfileID uint) error {
	follow := &models.Follow{
		FollowerID: followerProfileID,
		FolloweeID: followeeProfileID,
	}
	err := f.db.Create(follow).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		return nil
	}
	return err
}
