package service

import (
	"context"
	"strings"

	"qenea/internal/models"
	"qenea/internal/repository"
)

const maxCommentLen = 10000

// CommentService provides comment business logic for questions and answers.
type CommentService struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, userRepo: userRepo}
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("content is required")
	}
	if len(content) > maxCommentLen {
		return models.NewValidationError("comment too long (max 10000 characters)")
	}
	return nil
}

// Create attaches a comment to a question or an answer.
func (s *CommentService) Create(ctx context.Context, userID uint, kind models.CommentableKind, targetID uint, content string) (*models.Comment, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown comment target kind")
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	exists, err := s.commentRepo.TargetExists(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError(string(kind), targetID)
	}

	comment := &models.Comment{
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
		Content:    content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListByTarget returns the comments attached to a question or answer, oldest
// first.
func (s *CommentService) ListByTarget(ctx context.Context, kind models.CommentableKind, targetID uint, limit, offset int) ([]models.Comment, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown comment target kind")
	}
	return s.commentRepo.ListByTarget(ctx, kind, targetID, limit, offset)
}

// Update edits a comment. Only the owner or a superuser may edit.
func (s *CommentService) Update(ctx context.Context, actorID, commentID uint, content string) (*models.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, comment.UserID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

// Delete removes a comment. Only the owner or a superuser may delete.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actorID, comment.UserID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}

func (s *CommentService) authorize(ctx context.Context, actorID, ownerID uint) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperuser {
		return models.NewForbiddenError("you do not own this comment")
	}
	return nil
}
