package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentLinkRequest is what the payment provider needs to build a checkout
// link for one offer.
type PaymentLinkRequest struct {
	PolicyID    string
	QuotationID string
	Title       string
	Amount      float64
	PayerName   string
	PayerEmail  string
}

// PaymentLink is the provider's answer to a link request.
type PaymentLink struct {
	PreferenceID string
	URL          string
	Raw          json.RawMessage
}

// PaymentStatusQuery identifies a provider payment. ExternalReference and
// Amount are what the caller expects the payment to carry.
type PaymentStatusQuery struct {
	ProviderPaymentID string
	ExternalReference string
	Amount            float64
}

// PaymentStatus is the provider's view of one payment.
type PaymentStatus struct {
	Status            string
	ExternalReference string
	Amount            float64
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Calls are synchronous; callers bound them with a context deadline.
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLink, error)
	GetPaymentStatus(ctx context.Context, query PaymentStatusQuery) (PaymentStatus, error)
}
