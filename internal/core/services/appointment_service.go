package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment errors
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("time slot is no longer available")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrNotificationFailed  = errors.New("confirmation message could not be sent")
)

var validStatuses = map[string]bool{
	models.StatusConfirmed: true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// AppointmentService handles appointment booking business logic
type AppointmentService struct {
	apptRepo repositories.AppointmentRepository
	schedule *ScheduleService
	notifier Notifier
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	apptRepo repositories.AppointmentRepository,
	schedule *ScheduleService,
	notifier Notifier,
) *AppointmentService {
	return &AppointmentService{
		apptRepo: apptRepo,
		schedule: schedule,
		notifier: notifier,
	}
}

// CreateInput represents a booking request
type CreateInput struct {
	FullName      string `json:"fullName"`
	Mobile        string `json:"mobile"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
	PatientMobile string `json:"patientMobile"`
}

// UpdateInput represents an admin edit. Nil fields are left unchanged.
type UpdateInput struct {
	FullName      *string `json:"fullName"`
	Mobile        *string `json:"mobile"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	PatientMobile *string `json:"patientMobile"`
}

// Create books a new appointment. The slot-uniqueness guard runs at
// the storage layer, so a stale client cannot double-book a slot.
func (s *AppointmentService) Create(ctx context.Context, input *CreateInput) (*models.Appointment, error) {
	if !validFullName(input.FullName) {
		return nil, fieldError("fullName", "Full name must be at least 6 characters, letters and spaces only")
	}
	if !phoneValid(input.Mobile) {
		return nil, fieldError("mobile", "Mobile must start with 010 and be 11 digits")
	}
	if input.Time == "" {
		return nil, fieldError("time", "Time is required")
	}
	if !s.schedule.ContainsSlot(input.Time) {
		return nil, fieldError("time", "Time is not a valid clinic slot")
	}

	date, err := s.schedule.NormalizeDate(input.Date)
	if err != nil {
		return nil, fieldError("date", "Date must be a valid calendar date")
	}
	closed, err := s.schedule.IsClosedDay(date)
	if err != nil {
		return nil, fieldError("date", "Date must be a valid calendar date")
	}
	if closed {
		return nil, fieldError("date", "The clinic is closed on this day")
	}

	patientMobile := input.PatientMobile
	if patientMobile == "" {
		patientMobile = input.Mobile
	}

	appt := &models.Appointment{
		BookingRef:    uuid.New().String(),
		FullName:      strings.TrimSpace(input.FullName),
		Mobile:        input.Mobile,
		Date:          date,
		Time:          input.Time,
		Status:        models.StatusConfirmed,
		Notes:         input.Notes,
		PatientMobile: patientMobile,
	}

	if err := s.apptRepo.CreateIfSlotFree(ctx, appt); err != nil {
		if errors.Is(err, repositories.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	if err := s.sendConfirmation(ctx, appt); err != nil {
		return nil, err
	}

	log.Printf("✅ Appointment booked: %s on %s %s (ref %s)", appt.FullName, appt.Date, appt.Time, appt.BookingRef)
	return appt, nil
}

// sendConfirmation applies the configured notification failure policy:
// by default a failed send is logged and the booking stands; in
// required mode the booking is undone and the error surfaces.
func (s *AppointmentService) sendConfirmation(ctx context.Context, appt *models.Appointment) error {
	err := s.notifier.SendBookingConfirmation(ctx, appt.Mobile, appt.FullName, appt.Date, appt.Time)
	if err == nil {
		return nil
	}

	if s.notifier.IsRequired() {
		if delErr := s.apptRepo.Delete(ctx, appt.ID); delErr != nil {
			log.Printf("❌ Failed to undo booking %d after notification failure: %v", appt.ID, delErr)
		}
		return ErrNotificationFailed
	}

	log.Printf("⚠️ WhatsApp confirmation failed for %s (booking kept): %v", appt.Mobile, err)
	return nil
}

// Update applies an admin edit under the same slot guard, excluding
// the appointment being edited from the conflict check.
func (s *AppointmentService) Update(ctx context.Context, id uint, input *UpdateInput) (*models.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if input.FullName != nil {
		if !validFullName(*input.FullName) {
			return nil, fieldError("fullName", "Full name must be at least 6 characters, letters and spaces only")
		}
		appt.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Mobile != nil {
		if !phoneValid(*input.Mobile) {
			return nil, fieldError("mobile", "Mobile must start with 010 and be 11 digits")
		}
		appt.Mobile = *input.Mobile
	}
	if input.Date != nil {
		date, err := s.schedule.NormalizeDate(*input.Date)
		if err != nil {
			return nil, fieldError("date", "Date must be a valid calendar date")
		}
		closed, err := s.schedule.IsClosedDay(date)
		if err != nil {
			return nil, fieldError("date", "Date must be a valid calendar date")
		}
		if closed {
			return nil, fieldError("date", "The clinic is closed on this day")
		}
		appt.Date = date
	}
	if input.Time != nil {
		if !s.schedule.ContainsSlot(*input.Time) {
			return nil, fieldError("time", "Time is not a valid clinic slot")
		}
		appt.Time = *input.Time
	}
	if input.Status != nil {
		if !validStatuses[*input.Status] {
			return nil, ErrInvalidStatus
		}
		appt.Status = *input.Status
	}
	if input.Notes != nil {
		appt.Notes = *input.Notes
	}
	if input.PatientMobile != nil {
		appt.PatientMobile = *input.PatientMobile
	}

	if err := s.apptRepo.UpdateIfSlotFree(ctx, appt); err != nil {
		if errors.Is(err, repositories.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	return appt, nil
}

// Delete removes an appointment
func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	return s.apptRepo.Delete(ctx, id)
}

// List returns all appointments
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.apptRepo.List(ctx)
}

// ListByPatientMobile returns the appointment history linked to a
// patient's mobile number.
func (s *AppointmentService) ListByPatientMobile(ctx context.Context, mobile string) ([]models.Appointment, error) {
	return s.apptRepo.ListByPatientMobile(ctx, mobile)
}

// Availability describes the booking options the server offers for
// one date, plus the overall bookable date window.
type Availability struct {
	Date        string       `json:"date"`
	Slots       []SlotStatus `json:"slots"`
	Dates       []string     `json:"dates"`
	DefaultDate string       `json:"defaultDate"`
}

// GetAvailability computes the slot grid for the requested date (the
// default date when empty) against the booked appointments.
func (s *AppointmentService) GetAvailability(ctx context.Context, date string, now time.Time) (*Availability, error) {
	if date == "" {
		date = s.schedule.DefaultDate(now)
	} else {
		normalized, err := s.schedule.NormalizeDate(date)
		if err != nil {
			return nil, fieldError("date", "Date must be a valid calendar date")
		}
		date = normalized
	}

	appts, err := s.apptRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:        date,
		Slots:       s.schedule.DayAvailability(appts, date),
		Dates:       s.schedule.AvailableDates(now),
		DefaultDate: s.schedule.DefaultDate(now),
	}, nil
}
