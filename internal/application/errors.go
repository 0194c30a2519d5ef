package application

import (
	"errors"
	"fmt"

	"github.com/oksasatya/go-notes-api/pkg/validation"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrConflict           = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")

	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrNoteNotFound = fmt.Errorf("note %w", ErrNotFound)
)

// ValidationError describes user-correctable input. errors.Is(err, ErrValidation)
// holds for every ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var requiredMessages = map[string]string{
	"fullName":        "Full Name is required",
	"email":           "Email is required",
	"password":        "Password is required",
	"confirmPassword": "Confirm Password is required",
	"title":           "Title is required",
	"content":         "Content is required",
	"query":           "Search query is required",
}

// validate runs struct validation and converts the first failure into a
// ValidationError.
func validate(in any) error {
	err := validation.Struct(in)
	if err == nil {
		return nil
	}
	field, tag, ok := validation.FirstField(err)
	if !ok {
		return fmt.Errorf("validate input: %w", err)
	}
	if msg, known := requiredMessages[field]; known && tag == "required" {
		return &ValidationError{Field: field, Message: msg}
	}
	return &ValidationError{Field: field, Message: "Invalid " + field}
}
