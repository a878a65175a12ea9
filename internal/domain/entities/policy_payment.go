package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome reported by the payment provider.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PolicyPayment tracks the payment link issued for the selected offer.
//
// Storage model (DynamoDB):
//   - PK: policy_id
//   - SK: id
//
// ProviderPayload keeps the last provider response for traceability.
type PolicyPayment struct {
	ID                string          `json:"id"`
	PolicyID          string          `json:"policy_id"`
	QuotationID       string          `json:"quotation_id"`
	Amount            float64         `json:"amount"`
	PreferenceID      string          `json:"preference_id,omitempty"`
	PaymentLink       string          `json:"payment_link,omitempty"`
	Status            PaymentStatus   `json:"payment_status"`
	ProviderPaymentID string          `json:"payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
