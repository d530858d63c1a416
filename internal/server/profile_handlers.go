package server

import (
	"time"

	"qenea/internal/models"
	"qenea/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/me
// @Summary Get own profile
// @Description Return the authenticated user's account and profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} object{error=string}
// @Security BearerAuth
// @Router /me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/me/profile
// @Summary Update own profile
// @Description Update bio, gender, picture, or date of birth; omitted fields are untouched
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body object{bio=string,gender=string,picture=string,date_of_birth=string} true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Security BearerAuth
// @Router /me/profile [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Bio         *string        `json:"bio"`
		Gender      *models.Gender `json:"gender"`
		Picture     *string        `json:"picture"`
		DateOfBirth *string        `json:"date_of_birth"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdateProfileInput{
		Bio:     req.Bio,
		Gender:  req.Gender,
		Picture: req.Picture,
	}
	if req.DateOfBirth != nil {
		dob, parseErr := time.Parse("2006-01-02", *req.DateOfBirth)
		if parseErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Date of birth must be YYYY-MM-DD"))
		}
		in.DateOfBirth = &dob
	}

	profile, err := s.profileService.Update(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetProfile handles GET /api/profiles/:username
// @Summary Get a profile by username
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.Profile
// @Failure 404 {object} object{error=string}
// @Router /profiles/{username} [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	profile, err := s.profileService.GetByUsername(c.Context(), username)
	if err != nil {
		return respondError(c, err)
	}

	// Include follow status when the caller is authenticated
	if viewerID, ok := s.optionalUserID(c); ok && viewerID != profile.UserID {
		following, ferr := s.profileService.IsFollowing(c.Context(), viewerID, username)
		if ferr == nil {
			return c.JSON(fiber.Map{
				"profile":   profile,
				"following": following,
			})
		}
	}
	return c.JSON(fiber.Map{"profile": profile})
}

// ToggleFollow handles POST /api/profiles/:username/follow
// @Summary Toggle following a profile
// @Description Follow the profile if not followed, unfollow it otherwise
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.FollowResult
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /profiles/{username}/follow [post]
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	result, err := s.profileService.ToggleFollow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetFollowStatus handles GET /api/profiles/:username/follow
// @Summary Check follow status
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} object{following=bool}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /profiles/{username}/follow [get]
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	following, err := s.profileService.IsFollowing(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /api/profiles/:username/followers
// @Summary List a profile's followers
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{followers=[]models.Profile}
// @Failure 404 {object} object{error=string}
// @Router /profiles/{username}/followers [get]
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	followers, err := s.profileService.Followers(c.Context(), c.Params("username"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"followers": followers,
		"limit":     page.Limit,
		"offset":    page.Offset,
	})
}

// GetFollowing handles GET /api/profiles/:username/following
// @Summary List profiles a user follows
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} object{following=[]models.Profile}
// @Failure 404 {object} object{error=string}
// @Router /profiles/{username}/following [get]
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	following, err := s.profileService.Following(c.Context(), c.Params("username"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": following,
		"limit":     page.Limit,
		"offset":    page.Offset,
	})
}
