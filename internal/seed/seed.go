package seed

import (
	"fmt"
	"log"

	"qenea/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	NumQuestions int
	ShouldClean  bool
	// SkipBcrypt stores plaintext passwords, useful when seeding thousands
	// of users in development.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over this many past days.
	MaxDays int
	// RandSeed fixes the random source for reproducible datasets. Zero
	// means seed from the clock.
	RandSeed int64
}

// Seed populates the database with demo data: users with profiles, tagged
// questions, answers, comments, votes and a follow graph.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d questions...", opts.NumUsers, opts.NumQuestions)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	if err := Tags(db); err != nil {
		return fmt.Errorf("failed to seed built-in tags: %w", err)
	}

	var tags []models.Tag
	if err := db.Find(&tags).Error; err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d users created", len(users))

	if len(users) == 0 {
		log.Println("🎉 Database seeding completed (no users requested)")
		return nil
	}

	questions := make([]*models.Question, 0, opts.NumQuestions)
	for i := 0; i < opts.NumQuestions; i++ {
		asker := users[factory.rng.Intn(len(users))]
		question, err := factory.CreateQuestion(asker, tags)
		if err != nil {
			return fmt.Errorf("failed to create questions: %w", err)
		}
		questions = append(questions, question)
	}
	log.Printf("✓ %d questions created", len(questions))

	answers, err := seedAnswers(factory, users, questions)
	if err != nil {
		return err
	}
	log.Printf("✓ %d answers created", len(answers))

	commentCount, err := seedComments(factory, users, questions, answers)
	if err != nil {
		return err
	}
	log.Printf("✓ %d comments created", commentCount)

	voteCount, err := seedVotes(factory, users, questions, answers)
	if err != nil {
		return err
	}
	log.Printf("✓ %d votes recorded", voteCount)

	if err := seedFollows(factory, users); err != nil {
		return err
	}
	log.Println("✓ follow graph created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func seedAnswers(factory *Factory, users []*models.User, questions []*models.Question) ([]*models.Answer, error) {
	var answers []*models.Answer
	for _, question := range questions {
		n := factory.rng.Intn(4)
		for i := 0; i < n; i++ {
			responder := users[factory.rng.Intn(len(users))]
			answer, err := factory.CreateAnswer(responder, question)
			if err != nil {
				return nil, fmt.Errorf("failed to create answers: %w", err)
			}
			answers = append(answers, answer)
		}
		// Some askers mark one answer accepted
		if n > 0 && factory.rng.Intn(3) == 0 {
			accepted := answers[len(answers)-1]
			if err := factory.db.Model(accepted).Update("is_accepted", true).Error; err != nil {
				return nil, fmt.Errorf("failed to accept answer: %w", err)
			}
		}
	}
	return answers, nil
}

func seedComments(factory *Factory, users []*models.User, questions []*models.Question, answers []*models.Answer) (int, error) {
	count := 0
	for _, question := range questions {
		if factory.rng.Intn(2) == 0 {
			continue
		}
		commenter := users[factory.rng.Intn(len(users))]
		if _, err := factory.CreateComment(commenter, models.CommentableQuestion, question.ID); err != nil {
			return count, fmt.Errorf("failed to create comments: %w", err)
		}
		count++
	}
	for _, answer := range answers {
		if factory.rng.Intn(3) != 0 {
			continue
		}
		commenter := users[factory.rng.Intn(len(users))]
		if _, err := factory.CreateComment(commenter, models.CommentableAnswer, answer.ID); err != nil {
			return count, fmt.Errorf("failed to create comments: %w", err)
		}
		count++
	}
	return count, nil
}

func seedVotes(factory *Factory, users []*models.User, questions []*models.Question, answers []*models.Answer) (int, error) {
	count := 0
	vote := func(kind models.VoteTargetKind, targetID uint) error {
		voters := factory.rng.Intn(len(users) + 1)
		for i := 0; i < voters; i++ {
			voter := users[factory.rng.Intn(len(users))]
			value := models.VoteUp
			if factory.rng.Intn(5) == 0 {
				value = models.VoteDown
			}
			if err := factory.CreateVote(voter, kind, targetID, value); err != nil {
				return err
			}
			count++
		}
		return nil
	}

	for _, question := range questions {
		if err := vote(models.VoteTargetQuestion, question.ID); err != nil {
			return count, fmt.Errorf("failed to record votes: %w", err)
		}
	}
	for _, answer := range answers {
		if err := vote(models.VoteTargetAnswer, answer.ID); err != nil {
			return count, fmt.Errorf("failed to record votes: %w", err)
		}
	}
	return count, nil
}

func seedFollows(factory *Factory, users []*models.User) error {
	for _, follower := range users {
		n := factory.rng.Intn(4)
		for i := 0; i < n; i++ {
			followee := users[factory.rng.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			if follower.Profile == nil || followee.Profile == nil {
				continue
			}
			if err := factory.CreateFollow(follower.Profile.ID, followee.Profile.ID); err != nil {
				return fmt.Errorf("failed to create follow graph: %w", err)
			}
		}
	}
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE votes, comments, answers, question_tags, questions, tags, follows, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
