package repositories

import (
	"context"

	"evercare-dental/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PatientRepository defines patient repository interface
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	GetByMobile(ctx context.Context, mobile string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Patient, int64, error)
	// ExistsByMobile checks mobile uniqueness; excludeID skips the
	// patient being edited (0 excludes nothing).
	ExistsByMobile(ctx context.Context, mobile string, excludeID uint) (bool, error)
}

// AppointmentRepository defines appointment repository interface
type AppointmentRepository interface {
	// CreateIfSlotFree inserts the appointment unless another
	// non-cancelled appointment holds the same (date, time) slot.
	// Returns ErrSlotTaken on conflict. The check and the insert run
	// in one transaction with the matching rows locked.
	CreateIfSlotFree(ctx context.Context, appt *models.Appointment) error
	// UpdateIfSlotFree saves the appointment under the same guard,
	// excluding the appointment itself from the conflict check.
	UpdateIfSlotFree(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Appointment, error)
	ListByPatientMobile(ctx context.Context, mobile string) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByDateAndStatus(ctx context.Context, date, status string) ([]models.Appointment, error)
}
