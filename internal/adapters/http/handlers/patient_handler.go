package handlers

import (
	"errors"
	"strconv"

	"evercare-dental/internal/core/services"
	"evercare-dental/internal/pkg/pagination"
	"evercare-dental/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PatientHandler handles patient directory endpoints
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// Create adds a patient record
// @Summary Create patient
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PatientInput true "Patient data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var input services.PatientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	patient, err := h.patientService.Create(c.Context(), &input)
	if err != nil {
		var fieldErr *services.FieldError
		switch {
		case errors.As(err, &fieldErr):
			return response.ValidationError(c, fieldErr.Field, fieldErr.Message)
		case errors.Is(err, services.ErrMobileAlreadyUsed):
			return response.Conflict(c, "A patient with this mobile number already exists")
		default:
			return response.InternalServerError(c, "Failed to create patient")
		}
	}

	return response.Created(c, "Patient created successfully", patient)
}

// List returns patients with pagination
// @Summary List patients
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	patients, total, err := h.patientService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to load patients")
	}

	return response.Success(c, "", fiber.Map{
		"patients":   patients,
		"pagination": pagination.GetMeta(params, total),
	})
}

// Get returns one patient
// @Summary Get patient
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	patient, err := h.patientService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return response.NotFound(c, "Patient not found")
		}
		return response.InternalServerError(c, "Failed to load patient")
	}

	return response.Success(c, "", patient)
}

// GetByMobile returns one patient looked up by mobile number
// @Summary Get patient by mobile
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param mobile path string true "Patient mobile"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/by-mobile/{mobile} [get]
func (h *PatientHandler) GetByMobile(c *fiber.Ctx) error {
	patient, err := h.patientService.GetByMobile(c.Context(), c.Params("mobile"))
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return response.NotFound(c, "Patient not found")
		}
		return response.InternalServerError(c, "Failed to load patient")
	}

	return response.Success(c, "", patient)
}

// Update edits a patient record
// @Summary Update patient
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Param body body services.PatientInput true "Patient data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	var input services.PatientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	patient, err := h.patientService.Update(c.Context(), uint(id), &input)
	if err != nil {
		var fieldErr *services.FieldError
		switch {
		case errors.As(err, &fieldErr):
			return response.ValidationError(c, fieldErr.Field, fieldErr.Message)
		case errors.Is(err, services.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, services.ErrMobileAlreadyUsed):
			return response.Conflict(c, "A patient with this mobile number already exists")
		default:
			return response.InternalServerError(c, "Failed to update patient")
		}
	}

	return response.Success(c, "Patient updated successfully", patient)
}

// Delete removes a patient record
// @Summary Delete patient
// @Tags Patients
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	if err := h.patientService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return response.NotFound(c, "Patient not found")
		}
		return response.InternalServerError(c, "Failed to delete patient")
	}

	return response.NoContent(c)
}
