package service

import (
	"context"
	"strings"

	"qenea/internal/models"
	"qenea/internal/observability"
	"qenea/internal/repository"
)

// AnswerService provides answer business logic, including acceptance.
type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

// NewAnswerService returns a new AnswerService.
func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository, userRepo repository.UserRepository) *AnswerService {
	return &AnswerService{answerRepo: answerRepo, questionRepo: questionRepo, userRepo: userRepo}
}

// Create posts an answer to a question.
func (s *AnswerService) Create(ctx context.Context, userID, questionID uint, content string) (*models.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(ctx, answer.ID)
}

// GetByID fetches one answer.
func (s *AnswerService) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	return s.answerRepo.GetByID(ctx, id)
}

// ListByQuestion returns a question's answers, accepted answer first.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, error) {
	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.answerRepo.ListByQuestion(ctx, questionID, limit, offset)
}

// Update edits an answer. Only the owner or a superuser may edit.
func (s *AnswerService) Update(ctx context.Context, actorID, answerID uint, content string) (*models.Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, answer.UserID, "you do not own this answer"); err != nil {
		return nil, err
	}

	answer.Content = content
	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(ctx, answerID)
}

// Delete removes an answer. Only the owner or a superuser may delete.
func (s *AnswerService) Delete(ctx context.Context, actorID, answerID uint) error {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actorID, answer.UserID, "you do not own this answer"); err != nil {
		return err
	}
	return s.answerRepo.Delete(ctx, answerID)
}

// ToggleAcceptance flips acceptance on an answer. The check is strict: only
// the question owner may accept, superusers included only when they own the
// question. Accepting moves the mark off any previously accepted sibling.
func (s *AnswerService) ToggleAcceptance(ctx context.Context, actorID, answerID uint) (*models.Answer, error) {
	answer, err := s.answerRepo.ToggleAcceptance(ctx, answerID, actorID)
	if err != nil {
		return nil, err
	}

	outcome := "withdrawn"
	if answer.IsAccepted {
		outcome = "accepted"
	}
	observability.AcceptanceToggles.WithLabelValues(outcome).Inc()
	return s.answerRepo.GetByID(ctx, answerID)
}

func (s *AnswerService) authorize(ctx context.Context, actorID, ownerID uint, deny string) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperuser {
		return models.NewForbiddenError(deny)
	}
	return nil
}
