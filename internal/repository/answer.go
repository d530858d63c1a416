package repository

import (
	"context"
	"errors"

	"qenea/internal/models"

	"gorm.io/gorm"
)

// AnswerRepository defines persistence operations for answers, including the
// acceptance toggle.
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, error)
	Update(ctx context.Context, answer *models.Answer) error
	Delete(ctx context.Context, id uint) error
	ToggleAcceptance(ctx context.Context, answerID, actorID uint) (*models.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository returns a new AnswerRepository implementation.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) annotated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Select("answers.*, " + pointsColumn("answers", models.VoteTargetAnswer)).
		Preload("User")
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.annotated(ctx).First(&answer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Answer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

// ListByQuestion returns a question's answers with the accepted answer first,
// then by score, oldest first among ties.
func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.annotated(ctx).
		Where("answers.question_id = ?", questionID).
		Order("answers.is_accepted DESC, points DESC, answers.created_at ASC").
		Limit(limit).Offset(offset).
		Find(&answers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return answers, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *models.Answer) error {
	if err := r.db.WithContext(ctx).Save(answer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Answer{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ToggleAcceptance flips acceptance on the answer. Only the owner of the
// answer's question may toggle. Accepting an answer withdraws acceptance
// from any sibling, so a question never carries two accepted answers; the
// sibling rows are locked for the duration of the transaction.
func (r *answerRepository) ToggleAcceptance(ctx context.Context, answerID, actorID uint) (*models.Answer, error) {
	var answer models.Answer
	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&answer, answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Answer", answerID)
			}
			return err
		}

		var question models.Question
		if err := tx.First(&question, answer.QuestionID).Error; err != nil {
			return err
		}
		if question.UserID != actorID {
			return models.NewForbiddenError("only the question owner can accept an answer")
		}

		if answer.IsAccepted {
			answer.IsAccepted = false
			return tx.Model(&answer).Update("is_accepted", false).Error
		}

		// Withdraw acceptance from siblings before granting it here. The
		// UPDATE takes its own row locks.
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND is_accepted = ? AND id != ?", answer.QuestionID, true, answer.ID).
			Update("is_accepted", false).Error; err != nil {
			return err
		}
		answer.IsAccepted = true
		return tx.Model(&answer).Update("is_accepted", true).Error
	})
	if txErr != nil {
		return nil, wrapTxError(txErr)
	}
	return &answer, nil
}
