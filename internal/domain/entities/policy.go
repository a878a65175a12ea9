package entities

import (
	"fmt"
	"strings"
	"time"
)

// PolicyState is the lifecycle stage of a policy.
//
// The string values are persisted and used by the assistant selection logic,
// so they must never change.

type PolicyState string

const (
	PolicyStateIntake    PolicyState = "intake"
	PolicyStateLoaded    PolicyState = "loaded"
	PolicyStateQuotation PolicyState = "quotation"
	PolicyStatePayment   PolicyState = "payment"
	PolicyStateIssued    PolicyState = "issued"
	PolicyStateCompleted PolicyState = "completed"
)

// ParsePolicyState accepts only the exact persisted values.
func ParsePolicyState(s string) (PolicyState, error) {
	switch st := PolicyState(s); st {
	case PolicyStateIntake, PolicyStateLoaded, PolicyStateQuotation,
		PolicyStatePayment, PolicyStateIssued, PolicyStateCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown policy state %q", s)
}

// InsuranceType is the product category the customer committed to.
type InsuranceType string

const (
	InsuranceTypeAuto InsuranceType = "auto"
	InsuranceTypeMoto InsuranceType = "moto"
)

// ParseInsuranceType normalizes case and surrounding spaces.
func ParseInsuranceType(s string) (InsuranceType, bool) {
	switch t := InsuranceType(strings.ToLower(strings.TrimSpace(s))); t {
	case InsuranceTypeAuto, InsuranceTypeMoto:
		return t, true
	}
	return "", false
}

// Policy is the central record of one customer's insurance application.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Version is incremented by every committed transition and acts as the
// compare-and-swap token together with State. InsuranceType is empty until
// Intention is set, and both are always written together.
type Policy struct {
	ID            string        `json:"id"`
	State         PolicyState   `json:"state"`
	Intention     bool          `json:"intention"`
	InsuranceType InsuranceType `json:"insurance_type,omitempty"`
	Version       int           `json:"version"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p Policy) IsCompleted() bool {
	return p.State == PolicyStateCompleted
}
