package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qenea/internal/models"
)

func TestProfileServiceToggleFollowSelf(t *testing.T) {
	repo := noopProfileRepo()
	repo.getByUsernameFn = func(context.Context, string) (*models.Profile, error) {
		return &models.Profile{ID: 7, UserID: 7}, nil
	}
	repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 7, UserID: userID}, nil
	}
	svc := NewProfileService(repo)

	_, err := svc.ToggleFollow(context.Background(), 7, "self")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestProfileServiceToggleFollowReportsState(t *testing.T) {
	repo := noopProfileRepo()
	var follower, followee uint
	repo.toggleFollowFn = func(_ context.Context, followerID, followeeID uint) (bool, error) {
		follower, followee = followerID, followeeID
		return true, nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Profile, error) {
		return &models.Profile{ID: id, FollowersCount: 4}, nil
	}
	svc := NewProfileService(repo)

	result, err := svc.ToggleFollow(context.Background(), 3, "target")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if follower != 3 || followee != 99 {
		t.Fatalf("edge toggled between (%d,%d)", follower, followee)
	}
	if !result.Following || result.FollowersCount != 4 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestProfileServiceToggleFollowMissingTarget(t *testing.T) {
	repo := noopProfileRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.Profile, error) {
		return nil, models.NewNotFoundError("Profile", username)
	}
	svc := NewProfileService(repo)

	_, err := svc.ToggleFollow(context.Background(), 3, "ghost")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not found app error, got %#v", err)
	}
}

func TestProfileServiceUpdateValidation(t *testing.T) {
	svc := NewProfileService(noopProfileRepo())

	longBio := strings.Repeat("a", 251)
	_, err := svc.Update(context.Background(), 1, UpdateProfileInput{Bio: &longBio})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error for long bio, got %#v", err)
	}

	badGender := models.Gender("X")
	_, err = svc.Update(context.Background(), 1, UpdateProfileInput{Gender: &badGender})
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error for bad gender, got %#v", err)
	}
}

func TestProfileServiceUpdatePartial(t *testing.T) {
	repo := noopProfileRepo()
	stored := &models.Profile{ID: 1, UserID: 1, Bio: "old", Picture: "pic.png"}
	repo.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		copy := *stored
		return &copy, nil
	}
	repo.updateFn = func(_ context.Context, p *models.Profile) error {
		stored = p
		return nil
	}
	svc := NewProfileService(repo)

	bio := "new bio"
	_, err := svc.Update(context.Background(), 1, UpdateProfileInput{Bio: &bio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Bio != "new bio" {
		t.Fatalf("bio not updated: %q", stored.Bio)
	}
	if stored.Picture != "pic.png" {
		t.Fatalf("picture should be untouched: %q", stored.Picture)
	}
}
