package repository

import (
	"context"
	"errors"
	"strings"

	"qenea/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListQuestionsOptions narrows and pages a question listing.
type ListQuestionsOptions struct {
	Limit  int
	Offset int
	// Tag filters to questions carrying the named tag.
	Tag string
	// Search matches against title, case-insensitively.
	Search string
	// UserID filters to one author.
	UserID uint
}

// QuestionRepository defines persistence operations for questions and tags.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question, tagNames []string) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	GetBySlug(ctx context.Context, slug string) (*models.Question, error)
	List(ctx context.Context, opts ListQuestionsOptions) ([]models.Question, int64, error)
	Update(ctx context.Context, question *models.Question, tagNames []string) error
	Delete(ctx context.Context, id uint) error
	ListTags(ctx context.Context, limit, offset int) ([]models.Tag, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository returns a new QuestionRepository implementation.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// upsertTags resolves tag names to rows, creating the missing ones. Names are
// slugified so "Go Modules" and "go-modules" land on the same tag.
func upsertTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		slug := models.Slugify(name)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		cleaned = append(cleaned, slug)
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	rows := make([]models.Tag, len(cleaned))
	for i, name := range cleaned {
		rows[i] = models.Tag{Name: name}
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}

	// Re-read to pick up IDs for rows that already existed.
	var tags []models.Tag
	if err := tx.Where("name IN ?", cleaned).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := upsertTags(tx, tagNames)
		if err != nil {
			return err
		}
		question.Tags = tags
		return tx.Create(question).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("question slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *questionRepository) annotated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Question{}).
		Select("questions.*, " +
			pointsColumn("questions", models.VoteTargetQuestion) + ", " +
			"(SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id AND answers.deleted_at IS NULL) AS answers_count").
		Preload("User").
		Preload("Tags")
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := r.annotated(ctx).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Question", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &question, nil
}

func (r *questionRepository) GetBySlug(ctx context.Context, slug string) (*models.Question, error) {
	var question models.Question
	if err := r.annotated(ctx).Where("questions.slug = ?", slug).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Question", slug)
		}
		return nil, models.NewInternalError(err)
	}
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context, opts ListQuestionsOptions) ([]models.Question, int64, error) {
	query := r.annotated(ctx)

	if opts.Tag != "" {
		query = query.
			Joins("JOIN question_tags qt ON qt.question_id = questions.id").
			Joins("JOIN tags ON tags.id = qt.tag_id").
			Where("tags.name = ?", models.Slugify(opts.Tag))
	}
	if opts.Search != "" {
		query = query.Where("LOWER(questions.title) LIKE ?", "%"+strings.ToLower(opts.Search)+"%")
	}
	if opts.UserID != 0 {
		query = query.Where("questions.user_id = ?", opts.UserID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var questions []models.Question
	if err := query.
		Order("questions.created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&questions).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return questions, total, nil
}

func (r *questionRepository) Update(ctx context.Context, question *models.Question, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tagNames != nil {
			tags, err := upsertTags(tx, tagNames)
			if err != nil {
				return err
			}
			if err := tx.Model(question).Association("Tags").Replace(tags); err != nil {
				return err
			}
			question.Tags = tags
		}
		return tx.Omit("Tags").Save(question).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("question slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Question{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *questionRepository) ListTags(ctx context.Context, limit, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
