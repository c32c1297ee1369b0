package services

import (
	"fmt"
	"regexp"
	"strings"

	"evercare-dental/internal/pkg/phone"
)

// FieldError is a validation failure tied to one input field, so the
// client can surface the message inline next to that field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// fullNameRegex matches booking names: letters and spaces, at least
// six characters.
var fullNameRegex = regexp.MustCompile(`^[A-Za-z\s]{6,}$`)

// patientNameRegex matches directory names: letters and spaces,
// non-empty.
var patientNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]*$`)

func validFullName(name string) bool {
	return fullNameRegex.MatchString(strings.TrimSpace(name))
}

func validPatientName(name string) bool {
	return patientNameRegex.MatchString(strings.TrimSpace(name))
}

func phoneValid(mobile string) bool {
	return phone.IsValidMobile(mobile)
}
