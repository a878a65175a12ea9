package request

type GenerateQuotationsRequest struct {
	InsuranceType string `json:"insurance_type" binding:"required"`
}

// SelectQuotationRequest picks an offer by its 1-based position in the
// ascending-price list. Range checks belong to the use case.
type SelectQuotationRequest struct {
	Index int `json:"index"`
}

type ConfirmPaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}
