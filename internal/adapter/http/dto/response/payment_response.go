package response

import (
	"encoding/json"
	"time"

	"aseguraopen/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	PolicyID          string          `json:"policy_id"`
	QuotationID       string          `json:"quotation_id"`
	Amount            float64         `json:"amount"`
	PreferenceID      string          `json:"preference_id,omitempty"`
	PaymentLink       string          `json:"payment_link,omitempty"`
	Status            string          `json:"payment_status"`
	ProviderPaymentID string          `json:"payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromPayment(p entities.PolicyPayment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID,
		PolicyID:          p.PolicyID,
		QuotationID:       p.QuotationID,
		Amount:            p.Amount,
		PreferenceID:      p.PreferenceID,
		PaymentLink:       p.PaymentLink,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if json.Valid(p.ProviderPayload) {
		resp.ProviderPayload = p.ProviderPayload
	}
	return resp
}

func FromPayments(ps []entities.PolicyPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type IssuanceResponse struct {
	PolicyID          string          `json:"policy_id"`
	ExternalReference string          `json:"external_reference"`
	SentTo            string          `json:"sent_to,omitempty"`
	IssuerResponse    json.RawMessage `json:"issuer_response,omitempty"`
	IssuedAt          time.Time       `json:"issued_at"`
}

func FromIssuance(i entities.PolicyIssuance) IssuanceResponse {
	resp := IssuanceResponse{
		PolicyID:          i.PolicyID,
		ExternalReference: i.ExternalReference,
		SentTo:            i.SentTo,
		IssuedAt:          i.IssuedAt,
	}
	if json.Valid(i.IssuerResponse) {
		resp.IssuerResponse = i.IssuerResponse
	}
	return resp
}
