package response

import (
	"fmt"
	"time"

	"aseguraopen/internal/domain/entities"
)

// QuotationResponse carries the offer's position: Index is the value to send
// back when selecting it.
type QuotationResponse struct {
	Index          int       `json:"index,omitempty"`
	ID             string    `json:"id"`
	PolicyID       string    `json:"policy_id"`
	TemplateID     string    `json:"template_id"`
	CoverageType   string    `json:"coverage_type"`
	CoverageLevel  string    `json:"coverage_level"`
	MonthlyPremium float64   `json:"monthly_premium"`
	AnnualPremium  float64   `json:"annual_premium"`
	Deductible     float64   `json:"deductible"`
	RiskLevel      string    `json:"risk_level"`
	Selected       bool      `json:"selected"`
	Summary        string    `json:"summary"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromQuotation(o entities.QuotationOffer, index int) QuotationResponse {
	return QuotationResponse{
		Index:          index,
		ID:             o.ID,
		PolicyID:       o.PolicyID,
		TemplateID:     o.TemplateID,
		CoverageType:   o.CoverageType,
		CoverageLevel:  o.CoverageLevel,
		MonthlyPremium: o.MonthlyPremium,
		AnnualPremium:  o.AnnualPremium,
		Deductible:     o.Deductible,
		RiskLevel:      string(o.RiskLevel),
		Selected:       o.Selected,
		Summary:        Summary(o),
		CreatedAt:      o.CreatedAt,
	}
}

// FromQuotations numbers offers in the order given, starting at 1.
func FromQuotations(offers []entities.QuotationOffer) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(offers))
	for i, o := range offers {
		out = append(out, FromQuotation(o, i+1))
	}
	return out
}

// Summary renders an offer the way assistants quote it to the client.
func Summary(o entities.QuotationOffer) string {
	return fmt.Sprintf("%s - %s: $%.2f/mo, $%.2f/yr, deductible $%.2f",
		o.CoverageType, o.CoverageLevel, o.MonthlyPremium, o.AnnualPremium, o.Deductible)
}
