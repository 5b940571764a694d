package handlers

import (
	"errors"

	"petcare-booking/internal/adapters/http/middleware"
	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/core/services"
	"petcare-booking/internal/pkg/pagination"
	"petcare-booking/internal/pkg/response"
	"petcare-booking/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile endpoints for clients and caretakers
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdateResponse is the body returned after a profile update
type UpdateResponse struct {
	Message string               `json:"message"`
	Updated *models.UserResponse `json:"updated"`
}

// Me returns the caller's profile
// @Summary Get own profile
// @Description Get the authenticated user's profile including cats
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.userService.GetProfile(c.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.Success(c, profile)
}

// AdminMe returns the caretaker's profile
// @Summary Get caretaker profile
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AdminProfile
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admin/me [get]
func (h *UserHandler) AdminMe(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.userService.GetAdminProfile(c.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		return response.InternalServerError(c, "Failed to get admin profile")
	}

	return response.Success(c, profile)
}

// UpdateProfile updates name, email and phone of the caller
// @Summary Update own profile
// @Description Used by both /user/update and /admin/update
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateProfileInput true "Fields to update"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /user/update [put]
// @Router /admin/update [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Context(), identity.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrEmailTaken):
			return response.BadRequest(c, "Email already in use")
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, UpdateResponse{
		Message: "Profile updated successfully",
		Updated: updated,
	})
}

// ChangePassword changes the caller's password
// @Summary Change password
// @Description Used by both /user/change-password and /admin/change-password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /user/change-password [put]
// @Router /admin/change-password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.ChangePasswordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.userService.ChangePassword(c.Context(), identity.UserID, &req); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrWrongPassword):
			return response.BadRequest(c, "Incorrect old password")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Message(c, "Password changed successfully")
}

// ListUsers lists every account (Admin only)
// @Summary List all users
// @Description Newest first. Optional paging sets X-Total-Count and X-Total-Pages.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.UserResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.userService.ListUsers(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	if params != nil {
		pagination.SetHeaders(c, params, result.Total)
	}
	return response.Success(c, result.Users)
}
