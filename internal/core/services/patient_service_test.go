package services

import (
	"context"
	"errors"
	"testing"

	"evercare-dental/internal/adapters/persistence/models"
)

func TestCreatePatient(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo)

	patient, err := svc.Create(context.Background(), &PatientInput{
		Name:   "Sara Ahmed",
		Mobile: "01012345678",
		Age:    34,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if patient.ID == 0 {
		t.Error("patient ID not assigned")
	}
}

func TestCreatePatientValidation(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())

	tests := []struct {
		name      string
		input     PatientInput
		wantField string
	}{
		{"empty name", PatientInput{Name: "", Mobile: "01012345678", Age: 30}, "name"},
		{"digits in name", PatientInput{Name: "Sara 99", Mobile: "01012345678", Age: 30}, "name"},
		{"bad mobile", PatientInput{Name: "Sara Ahmed", Mobile: "0101234", Age: 30}, "mobile"},
		{"negative age", PatientInput{Name: "Sara Ahmed", Mobile: "01012345678", Age: -1}, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.input)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Create() error = %v, want FieldError", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("field = %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestPatientMobileUniqueness(t *testing.T) {
	repo := newFakePatientRepo(
		models.Patient{ID: 1, Name: "Sara Ahmed", Mobile: "01012345678", Age: 34},
		models.Patient{ID: 2, Name: "Omar Khaled", Mobile: "01087654321", Age: 41},
	)
	svc := NewPatientService(repo)
	ctx := context.Background()

	t.Run("create with taken mobile", func(t *testing.T) {
		_, err := svc.Create(ctx, &PatientInput{Name: "Someone Else", Mobile: "01012345678", Age: 20})
		if !errors.Is(err, ErrMobileAlreadyUsed) {
			t.Errorf("Create() error = %v, want ErrMobileAlreadyUsed", err)
		}
	})

	t.Run("update onto another patient's mobile", func(t *testing.T) {
		_, err := svc.Update(ctx, 2, &PatientInput{Name: "Omar Khaled", Mobile: "01012345678", Age: 41})
		if !errors.Is(err, ErrMobileAlreadyUsed) {
			t.Errorf("Update() error = %v, want ErrMobileAlreadyUsed", err)
		}
	})

	t.Run("update keeping own mobile", func(t *testing.T) {
		patient, err := svc.Update(ctx, 1, &PatientInput{Name: "Sara A Mahmoud", Mobile: "01012345678", Age: 35})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if patient.Age != 35 {
			t.Errorf("age = %d, want 35", patient.Age)
		}
	})
}

func TestPatientNotFound(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo())
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 42); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByID() error = %v, want ErrPatientNotFound", err)
	}
	if _, err := svc.Update(ctx, 42, &PatientInput{Name: "Sara Ahmed", Mobile: "01012345678", Age: 30}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Update() error = %v, want ErrPatientNotFound", err)
	}
	if err := svc.Delete(ctx, 42); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Delete() error = %v, want ErrPatientNotFound", err)
	}
}

func TestGetPatientByMobile(t *testing.T) {
	svc := NewPatientService(newFakePatientRepo(
		models.Patient{ID: 1, Name: "Sara Ahmed", Mobile: "01012345678", Age: 30},
	))
	ctx := context.Background()

	patient, err := svc.GetByMobile(ctx, "01012345678")
	if err != nil {
		t.Fatalf("GetByMobile() error = %v", err)
	}
	if patient.Name != "Sara Ahmed" {
		t.Errorf("name = %q, want %q", patient.Name, "Sara Ahmed")
	}

	if _, err := svc.GetByMobile(ctx, "01099999999"); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByMobile() error = %v, want ErrPatientNotFound", err)
	}
}
