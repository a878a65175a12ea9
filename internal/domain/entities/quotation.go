package entities

import "time"

// QuotationTemplate is a static catalog entry used to price offers.
//
// Storage model (DynamoDB):
//   - PK: insurance_type
//   - SK: id (derived from insurance_type, coverage_type and coverage_level)
type QuotationTemplate struct {
	ID                 string        `json:"id"`
	InsuranceType      InsuranceType `json:"insurance_type"`
	CoverageType       string        `json:"coverage_type"`
	CoverageLevel      string        `json:"coverage_level"`
	BaseMonthlyPremium float64       `json:"base_monthly_premium"`
	Deductible         float64       `json:"deductible"`
	CreatedAt          time.Time     `json:"created_at"`
}

// RiskLevel is the underwriting bucket stamped on an offer.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// QuotationOffer is a concrete, priced quotation for one policy.
//
// Storage model (DynamoDB):
//   - PK: policy_id
//   - SK: id
//
// AnnualPremium is always MonthlyPremium * 12. At most one offer per policy
// has Selected set.
type QuotationOffer struct {
	ID             string    `json:"id"`
	PolicyID       string    `json:"policy_id"`
	VehicleID      string    `json:"vehicle_id"`
	TemplateID     string    `json:"template_id"`
	CoverageType   string    `json:"coverage_type"`
	CoverageLevel  string    `json:"coverage_level"`
	MonthlyPremium float64   `json:"monthly_premium"`
	AnnualPremium  float64   `json:"annual_premium"`
	Deductible     float64   `json:"deductible"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Selected       bool      `json:"selected"`
	CreatedAt      time.Time `json:"created_at"`
}
