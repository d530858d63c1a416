package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qenea/internal/models"
)

func TestCommentServiceCreateRejectsBadKind(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopUserRepo())
	_, err := svc.Create(context.Background(), 1, "post", 2, "hello")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestCommentServiceCreateRejectsLongContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopUserRepo())
	_, err := svc.Create(context.Background(), 1, models.CommentableQuestion, 2, strings.Repeat("a", 10001))
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestCommentServiceCreateMissingTarget(t *testing.T) {
	repo := noopCommentRepo()
	repo.targetExistsFn = func(context.Context, models.CommentableKind, uint) (bool, error) {
		return false, nil
	}
	svc := NewCommentService(repo, noopUserRepo())

	_, err := svc.Create(context.Background(), 1, models.CommentableAnswer, 404, "hi")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not found app error, got %#v", err)
	}
}

func TestCommentServiceCreateSetsFields(t *testing.T) {
	repo := noopCommentRepo()
	var created *models.Comment
	repo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 4
		created = c
		return nil
	}
	svc := NewCommentService(repo, noopUserRepo())

	_, err := svc.Create(context.Background(), 7, models.CommentableQuestion, 2, "clarify please")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 || created.TargetKind != models.CommentableQuestion || created.TargetID != 2 {
		t.Fatalf("unexpected comment %+v", created)
	}
}

func TestCommentServiceUpdateForbiddenForStranger(t *testing.T) {
	repo := noopCommentRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 2}, nil
	}
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id}, nil
	}
	svc := NewCommentService(repo, users)

	_, err := svc.Update(context.Background(), 3, 1, "edited")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
}

func TestCommentServiceDeleteOwner(t *testing.T) {
	repo := noopCommentRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 3}, nil
	}
	deleted := false
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}
	svc := NewCommentService(repo, noopUserRepo())

	if err := svc.Delete(context.Background(), 3, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected repo delete")
	}
}
