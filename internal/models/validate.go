package models

import (
	"strings"
)

// Field names a validated task field
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldStatus      Field = "status"
	FieldDueDate     Field = "dueDate"
)

// Fields lists the validated fields in form order
func Fields() []Field {
	return []Field{FieldTitle, FieldDescription, FieldStatus, FieldDueDate}
}

// FieldErrors maps a field to its error message. Empty means valid.
type FieldErrors map[Field]string

// Valid reports whether no field failed
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Validate checks every required-field rule and reports all failures at once
func Validate(d Draft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = "Title is required."
	}
	if strings.TrimSpace(d.Description) == "" {
		errs[FieldDescription] = "Description is required."
	}
	if !d.Status.Valid() {
		errs[FieldStatus] = "Status is required."
	}
	if d.DueDate.IsZero() {
		errs[FieldDueDate] = "Due Date is required."
	}
	return errs
}

// ValidationError is returned when a draft fails Validate
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range Fields() {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, string(f)+": "+msg)
		}
	}
	return "invalid task: " + strings.Join(parts, "; ")
}

// Check returns a *ValidationError if d is invalid, nil otherwise
func Check(d Draft) error {
	if errs := Validate(d); !errs.Valid() {
		return &ValidationError{Fields: errs}
	}
	return nil
}
