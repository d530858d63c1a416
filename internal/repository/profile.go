package repository

import (
	"context"
	"errors"

	"qenea/internal/models"

	"gorm.io/gorm"
)

const profileCountsSelect = "profiles.*, " +
	"(SELECT COUNT(*) FROM follows WHERE follows.followee_id = profiles.id) AS followers_count, " +
	"(SELECT COUNT(*) FROM follows WHERE follows.follower_id = profiles.id) AS following_count"

// ProfileRepository defines persistence operations for profiles and the
// follow graph.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	ToggleFollow(ctx context.Context, followerID, followeeID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	ListFollowers(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error)
	ListFollowing(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Select(profileCountsSelect).
		Preload("User").
		First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Select(profileCountsSelect).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Select(profileCountsSelect).
		Preload("User").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("LOWER(users.username) = LOWER(?)", username).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", username)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).
		Model(profile).
		Select("Bio", "Gender", "Picture", "DateOfBirth").
		Updates(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ToggleFollow flips the follow edge from follower to followee. It returns
// true when the edge exists after the call. Concurrent toggles on the same
// pair collapse onto the unique index, so a duplicate insert is retried as a
// removal by the caller's next toggle rather than erroring the request.
func (r *profileRepository) ToggleFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var following bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			following = false
			return nil
		}
		edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := tx.Create(&edge).Error; err != nil {
			if isUniqueViolation(err) {
				// Lost the race to a concurrent follow; the edge exists.
				following = true
				return nil
			}
			return err
		}
		following = true
		return nil
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return following, nil
}

func (r *profileRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *profileRepository) ListFollowers(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = profiles.id").
		Where("follows.followee_id = ?", profileID).
		Order("follows.created_at DESC").
		Limit(limit).Offset(offset).
		Preload("User").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) ListFollowing(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followee_id = profiles.id").
		Where("follows.follower_id = ?", profileID).
		Order("follows.created_at DESC").
		Limit(limit).Offset(offset).
		Preload("User").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
