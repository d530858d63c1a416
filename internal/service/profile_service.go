package service

import (
	"context"
	"time"

	"qenea/internal/models"
	"qenea/internal/observability"
	"qenea/internal/repository"
)

// ProfileService provides profile and follow graph business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// UpdateProfileInput carries editable profile fields. Nil pointers leave the
// stored value untouched.
type UpdateProfileInput struct {
	Bio         *string
	Gender      *models.Gender
	Picture     *string
	DateOfBirth *time.Time
}

// FollowResult reports the state of a follow edge after a toggle.
type FollowResult struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetByUsername fetches a profile by its owner's username.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return s.profileRepo.GetByUsername(ctx, username)
}

// GetByUserID fetches a profile by its owner's user ID.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// Update edits the caller's own profile.
func (s *ProfileService) Update(ctx context.Context, userID uint, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Bio != nil {
		if len(*in.Bio) > 250 {
			return nil, models.NewValidationError("bio too long (max 250 characters)")
		}
		profile.Bio = *in.Bio
	}
	if in.Gender != nil {
		switch *in.Gender {
		case models.GenderMale, models.GenderFemale, models.GenderOther, "":
			profile.Gender = *in.Gender
		default:
			return nil, models.NewValidationError("gender must be M, F or O")
		}
	}
	if in.Picture != nil {
		profile.Picture = *in.Picture
	}
	if in.DateOfBirth != nil {
		profile.DateOfBirth = in.DateOfBirth
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ToggleFollow flips whether the actor follows the named user. Following
// yourself is rejected rather than ignored so clients surface the mistake.
func (s *ProfileService) ToggleFollow(ctx context.Context, actorUserID uint, username string) (*FollowResult, error) {
	target, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	actor, err := s.profileRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if actor.ID == target.ID {
		return nil, models.NewValidationError("you cannot follow yourself")
	}

	following, err := s.profileRepo.ToggleFollow(ctx, actor.ID, target.ID)
	if err != nil {
		return nil, err
	}

	outcome := "unfollowed"
	if following {
		outcome = "followed"
	}
	observability.FollowToggles.WithLabelValues(outcome).Inc()

	refreshed, err := s.profileRepo.GetByID(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{Following: following, FollowersCount: refreshed.FollowersCount}, nil
}

// IsFollowing reports whether the actor follows the named user.
func (s *ProfileService) IsFollowing(ctx context.Context, actorUserID uint, username string) (bool, error) {
	target, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	actor, err := s.profileRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return false, err
	}
	return s.profileRepo.IsFollowing(ctx, actor.ID, target.ID)
}

// Followers lists the profiles following the named user.
func (s *ProfileService) Followers(ctx context.Context, username string, limit, offset int) ([]models.Profile, error) {
	target, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.ListFollowers(ctx, target.ID, limit, offset)
}

// Following lists the profiles the named user follows.
func (s *ProfileService) Following(ctx context.Context, username string, limit, offset int) ([]models.Profile, error) {
	target, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.ListFollowing(ctx, target.ID, limit, offset)
}
