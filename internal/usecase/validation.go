package usecase

import (
	"strings"

	"aseguraopen/internal/domain/entities"
)

const (
	minNameLength  = 2
	minPhoneDigits = 8
)

// normalizeClientField validates value for f and returns the value to store.
func normalizeClientField(f entities.ClientField, value string) (string, error) {
	v := strings.TrimSpace(value)
	switch f {
	case entities.ClientFieldName:
		if len([]rune(v)) < minNameLength {
			return "", newValidationError(string(f), "must have at least 2 characters")
		}
	case entities.ClientFieldEmail:
		if !strings.Contains(v, "@") || !strings.Contains(v, ".") {
			return "", newValidationError(string(f), "must be a valid email")
		}
	case entities.ClientFieldPhone:
		digits := strings.NewReplacer(" ", "", "+", "", "-", "").Replace(v)
		if len(digits) < minPhoneDigits {
			return "", newValidationError(string(f), "must have at least 8 digits")
		}
	default:
		return "", newValidationError("field", "must be one of name, email, phone")
	}
	return v, nil
}

// validateClientData checks every required field, reporting the first
// missing one as ErrMissingClientData and the first malformed one as a
// ValidationError.
func validateClientData(c entities.ClientData) error {
	if missing := c.MissingFields(); len(missing) > 0 {
		return &missingClientDataError{fields: missing}
	}
	for _, f := range entities.ClientFields {
		if _, err := normalizeClientField(f, c.Field(f)); err != nil {
			return err
		}
	}
	return nil
}

type missingClientDataError struct {
	fields []entities.ClientField
}

func (e *missingClientDataError) Error() string {
	names := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		names = append(names, string(f))
	}
	return ErrMissingClientData.Error() + ": " + strings.Join(names, ", ")
}

func (e *missingClientDataError) Unwrap() error {
	return ErrMissingClientData
}
