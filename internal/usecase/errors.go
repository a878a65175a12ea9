package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrClientDataNotFound   = errors.New("client data not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPolicyID      = errors.New("invalid policy id")
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrUnknownState         = errors.New("unknown policy state")
	ErrMissingClientData    = errors.New("missing client data")
	ErrMissingVehicleData   = errors.New("missing vehicle data")
	ErrMissingIntention     = errors.New("insurance intention not set")
	ErrUnknownInsuranceType = errors.New("unknown insurance type")
	ErrInvalidSelection     = errors.New("invalid quotation selection")
	ErrPaymentNotApproved   = errors.New("payment not approved")
	ErrPolicyNotIssued      = errors.New("policy issuance not recorded")
	ErrConflict             = errors.New("concurrent update conflict")
	ErrValidation           = errors.New("validation error")
	ErrCollaboratorFailed   = errors.New("external collaborator failed")
)

// ValidationError reports one malformed input. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err is one of the absent-record conditions, so
// callers can choose between create and 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPolicyNotFound) ||
		errors.Is(err, ErrClientDataNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsRetryable reports whether the caller should re-read and retry once.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}
