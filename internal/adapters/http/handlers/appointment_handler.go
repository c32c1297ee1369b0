package handlers

import (
	"errors"
	"strconv"
	"time"

	"evercare-dental/internal/core/services"
	"evercare-dental/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles appointment endpoints
type AppointmentHandler struct {
	apptService *services.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(apptService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptService: apptService}
}

// Create handles the public booking form
// @Summary Book an appointment
// @Description Book a time slot. The slot is held unless the appointment is cancelled.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param body body services.CreateInput true "Booking data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var input services.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	appt, err := h.apptService.Create(c.Context(), &input)
	if err != nil {
		var fieldErr *services.FieldError
		switch {
		case errors.As(err, &fieldErr):
			return response.ValidationError(c, fieldErr.Field, fieldErr.Message)
		case errors.Is(err, services.ErrSlotUnavailable):
			return response.Conflict(c, "This time slot has just been booked, please pick another")
		case errors.Is(err, services.ErrNotificationFailed):
			return response.Error(c, fiber.StatusBadGateway, "Booking could not be confirmed, please try again")
		default:
			return response.InternalServerError(c, "Failed to book appointment")
		}
	}

	return response.Created(c, "Appointment booked successfully", appt)
}

// List returns all appointments
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appts, err := h.apptService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load appointments")
	}
	return response.Success(c, "", appts)
}

// GetAvailability returns the slot grid for a date
// @Summary Slot availability
// @Description Return the slot grid for the requested date plus the bookable date window
// @Tags Appointments
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to the next open day"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments/availability [get]
func (h *AppointmentHandler) GetAvailability(c *fiber.Ctx) error {
	availability, err := h.apptService.GetAvailability(c.Context(), c.Query("date"), time.Now())
	if err != nil {
		var fieldErr *services.FieldError
		if errors.As(err, &fieldErr) {
			return response.ValidationError(c, fieldErr.Field, fieldErr.Message)
		}
		return response.InternalServerError(c, "Failed to load availability")
	}
	return response.Success(c, "", availability)
}

// ByMobile returns the history linked to a patient's mobile number
// @Summary Appointments by patient mobile
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param mobile path string true "Patient mobile number"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments/by-mobile/{mobile} [get]
func (h *AppointmentHandler) ByMobile(c *fiber.Ctx) error {
	appts, err := h.apptService.ListByPatientMobile(c.Context(), c.Params("mobile"))
	if err != nil {
		return response.InternalServerError(c, "Failed to load appointments")
	}
	return response.Success(c, "", appts)
}

// Update handles an admin edit
// @Summary Update appointment
// @Description Edit an appointment. A date or time change re-checks the slot guard.
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param body body services.UpdateInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	var input services.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	appt, err := h.apptService.Update(c.Context(), uint(id), &input)
	if err != nil {
		var fieldErr *services.FieldError
		switch {
		case errors.As(err, &fieldErr):
			return response.ValidationError(c, fieldErr.Field, fieldErr.Message)
		case errors.Is(err, services.ErrAppointmentNotFound):
			return response.NotFound(c, "Appointment not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Status must be confirmed, completed or cancelled")
		case errors.Is(err, services.ErrSlotUnavailable):
			return response.Conflict(c, "This time slot has just been booked, please pick another")
		default:
			return response.InternalServerError(c, "Failed to update appointment")
		}
	}

	return response.Success(c, "Appointment updated successfully", appt)
}

// Delete removes an appointment
// @Summary Delete appointment
// @Tags Appointments
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	if err := h.apptService.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete appointment")
	}

	return response.NoContent(c)
}
