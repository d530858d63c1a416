package repository

import (
	"context"
	"errors"

	"qenea/internal/models"

	"gorm.io/gorm"
)

// VoteRepository defines persistence operations for votes. A user holds at
// most one vote per target; the toggle keeps the up and down sets disjoint.
type VoteRepository interface {
	Toggle(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint, value int) (*models.VoteState, error)
	GetUserVote(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint) (int, error)
	SumPoints(ctx context.Context, kind models.VoteTargetKind, targetID uint) (int, error)
	TargetExists(ctx context.Context, kind models.VoteTargetKind, targetID uint) (bool, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository returns a new VoteRepository implementation.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Toggle applies one vote press in a transaction:
//
//	no vote          -> insert value
//	same direction   -> remove the vote
//	opposite         -> switch the vote in place
//
// The unique index on (user, kind, target) absorbs concurrent inserts; a
// duplicate insert means another press of the same direction already landed,
// which the toggle semantics treat as "now remove it" on the next press, so
// the losing insert simply reports the stored state.
func (r *voteRepository) Toggle(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint, value int) (*models.VoteState, error) {
	if value != models.VoteUp && value != models.VoteDown {
		return nil, models.NewValidationError("vote value must be 1 or -1")
	}
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown vote target kind")
	}

	state := models.VoteState{TargetKind: kind, TargetID: targetID}
	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		err := lockForUpdate(tx).
			Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{UserID: userID, TargetKind: kind, TargetID: targetID, Value: value}
			if err := tx.Create(&vote).Error; err != nil {
				if isUniqueViolation(err) {
					state.UserVote = value
					return nil
				}
				return err
			}
			state.UserVote = value
		case err != nil:
			return err
		case existing.Value == value:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			state.UserVote = 0
		default:
			if err := tx.Model(&existing).Update("value", value).Error; err != nil {
				return err
			}
			state.UserVote = value
		}
		return nil
	})
	if txErr != nil {
		return nil, wrapTxError(txErr)
	}

	points, err := r.SumPoints(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	state.Points = points
	return &state, nil
}

func (r *voteRepository) GetUserVote(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint) (int, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return vote.Value, nil
}

func (r *voteRepository) SumPoints(ctx context.Context, kind models.VoteTargetKind, targetID uint) (int, error) {
	var points *int
	if err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("SUM(value)").
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Scan(&points).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	if points == nil {
		return 0, nil
	}
	return *points, nil
}

// TargetExists reports whether the voted entity is present and not
// soft-deleted.
func (r *voteRepository) TargetExists(ctx context.Context, kind models.VoteTargetKind, targetID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx)
	switch kind {
	case models.VoteTargetQuestion:
		query = query.Model(&models.Question{})
	case models.VoteTargetAnswer:
		query = query.Model(&models.Answer{})
	case models.VoteTargetComment:
		query = query.Model(&models.Comment{})
	default:
		return false, models.NewValidationError("unknown vote target kind")
	}
	if err := query.Where("id = ?", targetID).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
