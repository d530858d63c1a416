// Package service holds the business logic between handlers and repositories.
package service

import (
	"context"

	"qenea/internal/models"
	"qenea/internal/observability"
	"qenea/internal/repository"
)

// VoteService runs the vote toggle engine over questions, answers and
// comments.
type VoteService struct {
	voteRepo repository.VoteRepository
}

// NewVoteService returns a new VoteService.
func NewVoteService(voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{voteRepo: voteRepo}
}

// Toggle presses a vote button. Pressing the direction the user already holds
// removes the vote; pressing the opposite direction switches it; otherwise
// the vote is recorded. The returned state carries the user's vote after the
// press and the target's total points.
func (s *VoteService) Toggle(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint, value int) (*models.VoteState, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown vote target kind")
	}
	if value != models.VoteUp && value != models.VoteDown {
		return nil, models.NewValidationError("vote value must be 1 or -1")
	}

	exists, err := s.voteRepo.TargetExists(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError(string(kind), targetID)
	}

	state, err := s.voteRepo.Toggle(ctx, userID, kind, targetID, value)
	if err != nil {
		return nil, err
	}

	direction := "up"
	if value == models.VoteDown {
		direction = "down"
	}
	observability.VoteToggles.WithLabelValues(string(kind), direction).Inc()
	return state, nil
}

// StateOf reports vote state for a loaded entity, letting callers that
// already hold a Question, Answer or Comment skip naming the kind.
func (s *VoteService) StateOf(ctx context.Context, userID uint, target models.Votable) (*models.VoteState, error) {
	kind, targetID := target.VoteTarget()
	return s.State(ctx, userID, kind, targetID)
}

// State reports the target's points and the user's current vote without
// changing anything. userID may be zero for anonymous readers.
func (s *VoteService) State(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint) (*models.VoteState, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown vote target kind")
	}

	points, err := s.voteRepo.SumPoints(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	state := &models.VoteState{TargetKind: kind, TargetID: targetID, Points: points}
	if userID != 0 {
		vote, err := s.voteRepo.GetUserVote(ctx, userID, kind, targetID)
		if err != nil {
			return nil, err
		}
		state.UserVote = vote
	}
	return state, nil
}
