package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/kumi-math-service/internal/errors"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")

	// Domain specific errors
	ErrChildNotFound    = errors.New("child not found")
	ErrResultNotFound   = errors.New("result not found")
	ErrSessionNotFound  = errors.New("assessment session not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrNoResults        = errors.New("child has no assessment results")
	ErrSessionOwnership = errors.New("session belongs to a different child")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrChildNotFound) ||
		errors.Is(err, ErrResultNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrActivityNotFound) ||
		errors.Is(err, ErrNoResults)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, mastery.ErrInvalidInput) ||
		errors.Is(err, mastery.ErrUnknownConcept) ||
		errors.Is(err, quiz.ErrUnknownQuestion) ||
		errors.Is(err, quiz.ErrUnknownOption) {
		return true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}

// IsConflict checks if error is a state conflict on an existing resource
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrSessionOwnership) ||
		errors.Is(err, quiz.ErrSessionPaused) ||
		errors.Is(err, quiz.ErrSessionNotPaused) ||
		errors.Is(err, quiz.ErrSessionSubmitted) ||
		errors.Is(err, quiz.ErrSessionExpired)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}
