package server

import (
	"qenea/internal/models"

	"github.com/gofiber/fiber/v2"
)

// VoteHandler returns a handler that toggles a vote of the given direction on
// the given target kind. Pressing the same direction twice removes the vote;
// pressing the opposite direction switches it.
//
// @Summary Toggle a vote
// @Description Toggle an upvote or downvote on a question, answer, or comment
// @Tags votes
// @Produce json
// @Param id path int true "Target ID"
// @Success 200 {object} models.VoteState
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /questions/{id}/upvote [post]
func (s *Server) VoteHandler(kind models.VoteTargetKind, value int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return nil
		}
		targetID, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}

		state, err := s.voteService.Toggle(c.Context(), userID, kind, targetID, value)
		if err != nil {
			return respondError(c, err)
		}

		s.publishVoteEvent(c, kind, targetID, state)

		return c.JSON(state)
	}
}

// publishVoteEvent broadcasts updated points to clients watching the affected
// question page. Comment votes are not broadcast.
func (s *Server) publishVoteEvent(c *fiber.Ctx, kind models.VoteTargetKind, targetID uint, state *models.VoteState) {
	if s.notifier == nil {
		return
	}

	var questionID uint
	switch kind {
	case models.VoteTargetQuestion:
		questionID = targetID
	case models.VoteTargetAnswer:
		answer, err := s.answerService.GetByID(c.Context(), targetID)
		if err != nil {
			return
		}
		questionID = answer.QuestionID
	default:
		return
	}

	s.publishQuestionEvent(c.Context(), questionID, EventVoteUpdated, fiber.Map{
		"target_kind": kind,
		"target_id":   targetID,
		"points":      state.Points,
	})
}
