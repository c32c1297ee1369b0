package repositories

import (
	"context"

	"evercare-dental/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// appointmentRepository implements AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// CreateIfSlotFree inserts the appointment under the slot-uniqueness
// guard. The SELECT ... FOR UPDATE serializes concurrent bookings of
// the same slot, so two clients racing past a client-side check cannot
// both commit.
func (r *appointmentRepository) CreateIfSlotFree(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := slotConflictCheck(tx, appt.Date, appt.Time, 0); err != nil {
			return err
		}
		return tx.Create(appt).Error
	})
}

// UpdateIfSlotFree saves the appointment under the slot-uniqueness
// guard, excluding the appointment itself from the conflict check.
func (r *appointmentRepository) UpdateIfSlotFree(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if appt.HoldsSlot() {
			if err := slotConflictCheck(tx, appt.Date, appt.Time, appt.ID); err != nil {
				return err
			}
		}
		return tx.Save(appt).Error
	})
}

// slotConflictCheck locks and counts non-cancelled appointments on the
// given slot. Must run inside a transaction.
func slotConflictCheck(tx *gorm.DB, date, timeSlot string, excludeID uint) error {
	var holders []models.Appointment
	query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ? AND time = ? AND status <> ?", date, timeSlot, models.StatusCancelled)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&holders).Error; err != nil {
		return err
	}
	if len(holders) > 0 {
		return ErrSlotTaken
	}
	return nil
}

// GetByID gets an appointment by ID
func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appt).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// Delete soft deletes an appointment
func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// List lists all appointments, soonest first
func (r *appointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).Order("date asc, time asc").Find(&appts).Error
	return appts, err
}

// ListByPatientMobile lists appointments linked to a patient's mobile
func (r *appointmentRepository) ListByPatientMobile(ctx context.Context, mobile string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_mobile = ?", mobile).
		Order("date asc, time asc").
		Find(&appts).Error
	return appts, err
}

// ListByDate lists appointments for one calendar date
func (r *appointmentRepository) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time asc").
		Find(&appts).Error
	return appts, err
}

// ListByDateAndStatus lists appointments for one date with a status
func (r *appointmentRepository) ListByDateAndStatus(ctx context.Context, date, status string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", date, status).
		Order("time asc").
		Find(&appts).Error
	return appts, err
}
