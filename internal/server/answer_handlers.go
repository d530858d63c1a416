package server

import (
	"qenea/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAnswer handles POST /api/questions/:id/answers
// @Summary Answer a question
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body object{content=string} true "Answer content"
// @Success 201 {object} models.Answer
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /questions/{id}/answers [post]
func (s *Server) CreateAnswer(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answer, err := s.answerService.Create(c.Context(), userID, questionID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	s.publishQuestionEvent(c.Context(), questionID, EventAnswerCreated, fiber.Map{
		"answer": answer,
	})

	return c.Status(fiber.StatusCreated).JSON(answer)
}

// GetAnswers handles GET /api/questions/:slug/answers
// @Summary List a question's answers
// @Description Answers ordered accepted-first, then by points
// @Tags answers
// @Produce json
// @Param slug path string true "Question slug"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{answers=[]models.Answer}
// @Failure 404 {object} object{error=string}
// @Router /questions/{slug}/answers [get]
func (s *Server) GetAnswers(c *fiber.Ctx) error {
	question, err := s.questionService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	page := parsePagination(c, 20)
	answers, err := s.answerService.ListByQuestion(c.Context(), question.ID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"answers": answers,
		"limit":   page.Limit,
		"offset":  page.Offset,
	})
}

// UpdateAnswer handles PUT /api/answers/:id
// @Summary Edit an answer
// @Description Only the answer owner or a superuser may edit
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Answer ID"
// @Param request body object{content=string} true "Answer content"
// @Success 200 {object} models.Answer
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /answers/{id} [put]
func (s *Server) UpdateAnswer(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answer, err := s.answerService.Update(c.Context(), userID, answerID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answer)
}

// DeleteAnswer handles DELETE /api/answers/:id
// @Summary Delete an answer
// @Description Only the answer owner or a superuser may delete
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /answers/{id} [delete]
func (s *Server) DeleteAnswer(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.answerService.Delete(c.Context(), userID, answerID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Answer deleted"})
}

// ToggleAnswerAcceptance handles POST /api/answers/:id/accept
// @Summary Toggle answer acceptance
// @Description Accept the answer, or withdraw acceptance if already accepted. Question owner only.
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} models.Answer
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /answers/{id}/accept [post]
func (s *Server) ToggleAnswerAcceptance(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	answerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	answer, err := s.answerService.ToggleAcceptance(c.Context(), userID, answerID)
	if err != nil {
		return respondError(c, err)
	}

	s.publishQuestionEvent(c.Context(), answer.QuestionID, EventAnswerAcceptanceChanged, fiber.Map{
		"answer_id": answer.ID,
		"accepted":  answer.IsAccepted,
	})
	if answer.IsAccepted && answer.UserID != userID {
		s.publishUserEvent(c.Context(), answer.UserID, EventAnswerAccepted, fiber.Map{
			"answer_id":   answer.ID,
			"question_id": answer.QuestionID,
		})
	}

	return c.JSON(answer)
}
