package handlers

import (
	"errors"
	"strconv"

	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/core/services"
	"petcare-booking/internal/pkg/pagination"
	"petcare-booking/internal/pkg/response"
	"petcare-booking/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles the services (booking) endpoints
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Create books a slot for a client with a caretaker
// @Summary Create booking
// @Description Fails with 409 when another booking holds the same date and time
// @Tags Services
// @Accept json
// @Produce json
// @Param body body services.CreateBookingInput true "Booking data"
// @Success 201 {object} models.BookingResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /services [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req services.CreateBookingInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	booking, err := h.bookingService.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrCaretakerNotFound):
			return response.NotFound(c, "Caretaker not found")
		case errors.Is(err, domain.ErrSlotConflict):
			return response.Conflict(c, "This date and time is already booked")
		default:
			return response.InternalServerError(c, "Failed to create booking")
		}
	}

	return response.Created(c, booking.ToResponse())
}

// List lists every booking with both parties
// @Summary List bookings
// @Tags Services
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.BookingResponse
// @Failure 500 {object} response.ErrorBody
// @Router /services [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.bookingService.List(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list bookings")
	}

	return h.sendList(c, params, result, (*models.Booking).WithParties)
}

// ListByClient lists a client's bookings with the caretaker attached
// @Summary List bookings of a client
// @Tags Services
// @Produce json
// @Param userId path int true "Client ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.BookingResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /services/user/{userId} [get]
func (h *BookingHandler) ListByClient(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	params := pagination.GetParams(c)
	result, err := h.bookingService.ListByClient(c.Context(), userID, params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list bookings")
	}

	return h.sendList(c, params, result, (*models.Booking).WithCaretaker)
}

// ListByCaretaker lists the bookings a caretaker serves with the client attached
// @Summary List bookings of a caretaker
// @Tags Services
// @Produce json
// @Param adminId path int true "Caretaker ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.BookingResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /services/admin/{adminId} [get]
func (h *BookingHandler) ListByCaretaker(c *fiber.Ctx) error {
	adminID, err := parseID(c, "adminId")
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	params := pagination.GetParams(c)
	result, err := h.bookingService.ListByCaretaker(c.Context(), adminID, params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list bookings")
	}

	return h.sendList(c, params, result, (*models.Booking).WithClient)
}

// Conclude marks a booking as concluido
// @Summary Conclude booking
// @Tags Services
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} models.BookingResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /services/{id}/concluir [patch]
func (h *BookingHandler) Conclude(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid booking ID")
	}

	booking, err := h.bookingService.MarkConcluded(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return response.NotFound(c, "Booking not found")
		}
		return response.InternalServerError(c, "Failed to conclude booking")
	}

	return response.Success(c, booking.ToResponse())
}

func (h *BookingHandler) sendList(c *fiber.Ctx, params *pagination.Params, result *services.ListBookingsOutput, view func(*models.Booking) *models.BookingResponse) error {
	out := make([]*models.BookingResponse, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		out = append(out, view(b))
	}

	if params != nil {
		pagination.SetHeaders(c, params, result.Total)
	}
	return response.Success(c, out)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
