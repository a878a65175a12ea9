package interfaces

import (
	"context"
	"encoding/json"
)

// IssuancePayload is the document transmitted to the external issuer.
type IssuancePayload struct {
	PolicyID  string            `json:"policy_id"`
	Client    IssuanceClient    `json:"client"`
	Vehicle   IssuanceVehicle   `json:"vehicle"`
	Insurance IssuanceInsurance `json:"insurance"`
}

type IssuanceClient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type IssuanceVehicle struct {
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Plate         string `json:"plate"`
	EngineNumber  string `json:"engine_number,omitempty"`
	ChassisNumber string `json:"chassis_number,omitempty"`
}

type IssuanceInsurance struct {
	Type           string  `json:"type"`
	CoverageType   string  `json:"coverage_type"`
	CoverageLevel  string  `json:"coverage_level"`
	MonthlyPremium float64 `json:"monthly_premium"`
	AnnualPremium  float64 `json:"annual_premium"`
	Deductible     float64 `json:"deductible"`
}

// IIssuerGateway transmits issued policies to the external issuer.
type IIssuerGateway interface {
	Issue(ctx context.Context, payload IssuancePayload) (reference string, response json.RawMessage, err error)
}
