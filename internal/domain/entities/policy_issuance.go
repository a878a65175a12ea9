package entities

import (
	"encoding/json"
	"time"
)

// PolicyIssuance is the receipt returned by the external issuer.
//
// Storage model (DynamoDB):
//   - PK: policy_id (issued once per policy)
type PolicyIssuance struct {
	PolicyID          string          `json:"policy_id"`
	ExternalReference string          `json:"external_reference"`
	SentTo            string          `json:"sent_to,omitempty"`
	IssuerResponse    json.RawMessage `json:"issuer_response,omitempty"`
	IssuedAt          time.Time       `json:"issued_at"`
}
