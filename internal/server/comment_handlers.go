package server

import (
	"qenea/internal/models"

	"github.com/gofiber/fiber/v2"
)

func parseCommentableKind(c *fiber.Ctx) (models.CommentableKind, error) {
	kind := models.CommentableKind(c.Params("kind"))
	if !kind.Valid() {
		respondError(c, models.NewValidationError("Comment target must be question or answer"))
		return "", errResponseWritten
	}
	return kind, nil
}

// CreateComment handles POST /api/comments/:kind/:id
// @Summary Comment on a question or answer
// @Tags comments
// @Accept json
// @Produce json
// @Param kind path string true "Target kind (question or answer)"
// @Param id path int true "Target ID"
// @Param request body object{content=string} true "Comment content"
// @Success 201 {object} models.Comment
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /comments/{kind}/{id} [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	kind, err := parseCommentableKind(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
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

	comment, err := s.commentService.Create(c.Context(), userID, kind, targetID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/comments/:kind/:id
// @Summary List comments on a question or answer
// @Tags comments
// @Produce json
// @Param kind path string true "Target kind (question or answer)"
// @Param id path int true "Target ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{comments=[]models.Comment}
// @Failure 400 {object} object{error=string}
// @Router /comments/{kind}/{id} [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	kind, err := parseCommentableKind(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	comments, err := s.commentService.ListByTarget(c.Context(), kind, targetID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments": comments,
		"limit":    page.Limit,
		"offset":   page.Offset,
	})
}

// UpdateComment handles PUT /api/comments/:id
// @Summary Edit a comment
// @Description Only the comment owner or a superuser may edit
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body object{content=string} true "Comment content"
// @Success 200 {object} models.Comment
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
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

	comment, err := s.commentService.Update(c.Context(), userID, commentID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete a comment
// @Description Only the comment owner or a superuser may delete
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.Delete(c.Context(), userID, commentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
