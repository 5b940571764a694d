package handlers

import (
	"errors"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/core/services"
	"petcare-booking/internal/pkg/response"
	"petcare-booking/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterResponse is the body returned by a successful registration
type RegisterResponse struct {
	Message string                  `json:"message"`
	User    *models.ProfileResponse `json:"user"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register a client account together with its cats
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} response.ErrorBody
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrEmailTaken):
			return response.BadRequest(c, "Email already registered")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password and receive a 7 day token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} response.ErrorBody
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.BadRequest(c, "User not found")
		case errors.Is(err, domain.ErrWrongPassword):
			return response.BadRequest(c, "Incorrect password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, result)
}
