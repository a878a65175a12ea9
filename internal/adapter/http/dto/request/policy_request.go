package request

import "strings"

type IntentionRequest struct {
	InsuranceType string `json:"insurance_type" binding:"required"`
}

// ClientFieldRequest saves one client attribute. Field is one of name, email
// or phone.
type ClientFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type VehicleDataRequest struct {
	Plate              string `json:"plate" binding:"required"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	EngineNumber       string `json:"engine_number"`
	ChassisNumber      string `json:"chassis_number"`
	EngineDisplacement int    `json:"engine_displacement"`
}

type TransitionRequest struct {
	ToState string `json:"to_state" binding:"required"`
	Reason  string `json:"reason"`
	Actor   string `json:"actor"`
}

// ResolveReason falls back to a generic reason when the caller sent none.
func (r TransitionRequest) ResolveReason() string {
	if v := strings.TrimSpace(r.Reason); v != "" {
		return v
	}
	return "requested via api"
}
