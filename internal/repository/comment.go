package repository

import (
	"context"
	"errors"

	"qenea/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments on questions
// and answers.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByTarget(ctx context.Context, kind models.CommentableKind, targetID uint, limit, offset int) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	TargetExists(ctx context.Context, kind models.CommentableKind, targetID uint) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) annotated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("comments.*, " + pointsColumn("comments", models.VoteTargetComment)).
		Preload("User")
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.annotated(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByTarget(ctx context.Context, kind models.CommentableKind, targetID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.annotated(ctx).
		Where("comments.target_kind = ? AND comments.target_id = ?", kind, targetID).
		Order("comments.created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// TargetExists reports whether the commented entity is present and not
// soft-deleted.
func (r *commentRepository) TargetExists(ctx context.Context, kind models.CommentableKind, targetID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx)
	switch kind {
	case models.CommentableQuestion:
		query = query.Model(&models.Question{})
	case models.CommentableAnswer:
		query = query.Model(&models.Answer{})
	default:
		return false, models.NewValidationError("unknown comment target kind")
	}
	if err := query.Where("id = ?", targetID).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
