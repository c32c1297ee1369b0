package repositories

import (
	"context"

	"evercare-dental/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// patientRepository implements PatientRepository interface
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create creates a new patient record
func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// GetByID gets a patient by ID
func (r *patientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByMobile gets a patient by mobile number
func (r *patientRepository) GetByMobile(ctx context.Context, mobile string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Update updates a patient record
func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

// Delete soft deletes a patient. Appointments linked by mobile are
// left untouched.
func (r *patientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Patient{}, id).Error
}

// List lists patients with pagination
func (r *patientRepository) List(ctx context.Context, offset, limit int) ([]*models.Patient, int64, error) {
	var patients []*models.Patient
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("name asc").Find(&patients).Error; err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

// ExistsByMobile checks if another patient already uses this mobile
func (r *patientRepository) ExistsByMobile(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Patient{}).Where("mobile = ?", mobile)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
