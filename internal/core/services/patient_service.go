package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Patient errors
var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrMobileAlreadyUsed = errors.New("mobile number already belongs to another patient")
)

// PatientService handles patient directory business logic
type PatientService struct {
	patientRepo repositories.PatientRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repositories.PatientRepository) *PatientService {
	return &PatientService{patientRepo: patientRepo}
}

// PatientInput represents create/update payload for a patient record
type PatientInput struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Age    int    `json:"age"`
}

func (s *PatientService) validate(input *PatientInput) error {
	if !validPatientName(input.Name) {
		return fieldError("name", "Name must contain letters and spaces only")
	}
	if !phoneValid(input.Mobile) {
		return fieldError("mobile", "Mobile must start with 010 and be 11 digits")
	}
	if input.Age < 0 {
		return fieldError("age", "Age must be a non-negative number")
	}
	return nil
}

// Create adds a patient to the directory. Mobile is the natural key
// and must be unique.
func (s *PatientService) Create(ctx context.Context, input *PatientInput) (*models.Patient, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	taken, err := s.patientRepo.ExistsByMobile(ctx, input.Mobile, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrMobileAlreadyUsed
	}

	patient := &models.Patient{
		Name:   strings.TrimSpace(input.Name),
		Mobile: input.Mobile,
		Age:    input.Age,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	log.Printf("✅ Patient created: %s (%s)", patient.Name, patient.Mobile)
	return patient, nil
}

// GetByID fetches one patient
func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// GetByMobile fetches one patient by mobile number, the key that
// links patients to their appointment history.
func (s *PatientService) GetByMobile(ctx context.Context, mobile string) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// Update edits a patient record. The mobile-uniqueness check excludes
// the patient being edited.
func (s *PatientService) Update(ctx context.Context, id uint, input *PatientInput) (*models.Patient, error) {
	patient, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(input); err != nil {
		return nil, err
	}

	taken, err := s.patientRepo.ExistsByMobile(ctx, input.Mobile, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrMobileAlreadyUsed
	}

	patient.Name = strings.TrimSpace(input.Name)
	patient.Mobile = input.Mobile
	patient.Age = input.Age

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// Delete removes a patient. Appointments linked by mobile are kept.
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.patientRepo.Delete(ctx, id)
}

// List lists patients with pagination
func (s *PatientService) List(ctx context.Context, offset, limit int) ([]*models.Patient, int64, error) {
	return s.patientRepo.List(ctx, offset, limit)
}
