package server

import (
	"qenea/internal/models"
	"qenea/internal/repository"
	"qenea/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion handles POST /api/questions
// @Summary Ask a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body service.CreateQuestionInput true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Security BearerAuth
// @Router /questions [post]
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req service.CreateQuestionInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.Create(c.Context(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// GetQuestions handles GET /api/questions
// @Summary Browse questions
// @Description List questions, optionally filtered by tag, search term, or author
// @Tags questions
// @Produce json
// @Param tag query string false "Filter by tag"
// @Param search query string false "Search in titles"
// @Param user query int false "Filter by author user ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{questions=[]models.Question,total=int}
// @Router /questions [get]
func (s *Server) GetQuestions(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	opts := repository.ListQuestionsOptions{
		Limit:  page.Limit,
		Offset: page.Offset,
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}
	if userID := c.QueryInt("user", 0); userID > 0 {
		opts.UserID = uint(userID)
	}

	questions, total, err := s.questionService.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"questions": questions,
		"total":     total,
		"limit":     page.Limit,
		"offset":    page.Offset,
	})
}

// GetQuestionBySlug handles GET /api/questions/:slug
// @Summary Get a question by slug
// @Tags questions
// @Produce json
// @Param slug path string true "Question slug"
// @Success 200 {object} object{question=models.Question,user_vote=int}
// @Failure 404 {object} object{error=string}
// @Router /questions/{slug} [get]
func (s *Server) GetQuestionBySlug(c *fiber.Ctx) error {
	question, err := s.questionService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	// Surface the caller's own vote when a valid token is presented
	userVote := 0
	if viewerID, ok := s.optionalUserID(c); ok {
		state, verr := s.voteService.StateOf(c.Context(), viewerID, question)
		if verr == nil {
			userVote = state.UserVote
		}
	}

	return c.JSON(fiber.Map{
		"question":  question,
		"user_vote": userVote,
	})
}

// UpdateQuestion handles PUT /api/questions/:id
// @Summary Edit a question
// @Description Only the question owner or a superuser may edit
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body service.CreateQuestionInput true "Updated question"
// @Success 200 {object} models.Question
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /questions/{id} [put]
func (s *Server) UpdateQuestion(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.CreateQuestionInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.Update(c.Context(), userID, questionID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

// DeleteQuestion handles DELETE /api/questions/:id
// @Summary Delete a question
// @Description Only the question owner or a superuser may delete
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /questions/{id} [delete]
func (s *Server) DeleteQuestion(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.questionService.Delete(c.Context(), userID, questionID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Question deleted"})
}

// GetTags handles GET /api/tags
// @Summary List tags
// @Tags questions
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{tags=[]models.Tag}
// @Router /tags [get]
func (s *Server) GetTags(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	tags, err := s.questionService.ListTags(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"tags": tags})
}
