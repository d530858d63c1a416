package service

import (
	"context"
	"strings"

	"qenea/internal/models"
	"qenea/internal/repository"
	"qenea/internal/validation"
)

const maxQuestionTitleLen = 150

// QuestionService provides question and tag business logic.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

// CreateQuestionInput carries a new or edited question.
type CreateQuestionInput struct {
	Title       string
	Description string
	Tags        []string
}

// NewQuestionService returns a new QuestionService.
func NewQuestionService(questionRepo repository.QuestionRepository, userRepo repository.UserRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, userRepo: userRepo}
}

func (s *QuestionService) validateInput(in CreateQuestionInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return models.NewValidationError("title is required")
	}
	if len(in.Title) > maxQuestionTitleLen {
		return models.NewValidationError("title too long (max 150 characters)")
	}
	if strings.TrimSpace(in.Description) == "" {
		return models.NewValidationError("description is required")
	}
	for _, tag := range in.Tags {
		if err := validation.ValidateTag(models.Slugify(tag)); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return nil
}

// Create asks a new question, creating any missing tags on demand.
func (s *QuestionService) Create(ctx context.Context, userID uint, in CreateQuestionInput) (*models.Question, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	question := &models.Question{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		UserID:      userID,
	}
	if err := s.questionRepo.Create(ctx, question, in.Tags); err != nil {
		return nil, err
	}
	return s.questionRepo.GetByID(ctx, question.ID)
}

// GetBySlug fetches one question by its slug.
func (s *QuestionService) GetBySlug(ctx context.Context, slug string) (*models.Question, error) {
	return s.questionRepo.GetBySlug(ctx, slug)
}

// List pages through questions, optionally narrowed by tag, title search or
// author.
func (s *QuestionService) List(ctx context.Context, opts repository.ListQuestionsOptions) ([]models.Question, int64, error) {
	return s.questionRepo.List(ctx, opts)
}

// Update edits a question. Only the owner or a superuser may edit; a retitle
// regenerates the slug.
func (s *QuestionService) Update(ctx context.Context, actorID, questionID uint, in CreateQuestionInput) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, question.UserID); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	question.Title = strings.TrimSpace(in.Title)
	question.Description = in.Description
	if err := s.questionRepo.Update(ctx, question, in.Tags); err != nil {
		return nil, err
	}
	return s.questionRepo.GetByID(ctx, questionID)
}

// Delete soft-deletes a question. Only the owner or a superuser may delete.
func (s *QuestionService) Delete(ctx context.Context, actorID, questionID uint) error {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actorID, question.UserID); err != nil {
		return err
	}
	return s.questionRepo.Delete(ctx, questionID)
}

// ListTags pages through known tags.
func (s *QuestionService) ListTags(ctx context.Context, limit, offset int) ([]models.Tag, error) {
	return s.questionRepo.ListTags(ctx, limit, offset)
}

// authorize allows the owner and superusers through.
func (s *QuestionService) authorize(ctx context.Context, actorID, ownerID uint) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperuser {
		return models.NewForbiddenError("you do not own this question")
	}
	return nil
}
