package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/wagetrack/internal/logger"
)

var (
	// ErrInvalidInput is matched by every InputValidationError via errors.Is
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when an action does not apply to the current shift state
	ErrInvalidTransition = errors.New("invalid transition")
)

// InputValidationError describes a rejected setup field
type InputValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InputValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputValidationError builds an InputValidationError
func NewInputValidationError(field, value, reason string) error {
	return &InputValidationError{Field: field, Value: value, Reason: reason}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
