package response

import (
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
)

type PolicyResponse struct {
	ID            string    `json:"id"`
	State         string    `json:"state"`
	Intention     bool      `json:"intention"`
	InsuranceType string    `json:"insurance_type,omitempty"`
	Version       int       `json:"version"`
	Assistant     string    `json:"assistant,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	resp := PolicyResponse{
		ID:            p.ID,
		State:         string(p.State),
		Intention:     p.Intention,
		InsuranceType: string(p.InsuranceType),
		Version:       p.Version,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if a, err := lifecycle.Route(p.State); err == nil {
		resp.Assistant = string(a)
	}
	return resp
}

func FromPolicies(ps []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPolicy(p))
	}
	return out
}

type AssistantResponse struct {
	PolicyID  string `json:"policy_id"`
	State     string `json:"state"`
	Assistant string `json:"assistant"`
}

type ClientDataResponse struct {
	PolicyID      string    `json:"policy_id"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	MissingFields []string  `json:"missing_fields"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromClientData(c entities.ClientData) ClientDataResponse {
	missing := make([]string, 0, len(entities.ClientFields))
	for _, f := range c.MissingFields() {
		missing = append(missing, string(f))
	}
	return ClientDataResponse{
		PolicyID:      c.PolicyID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		MissingFields: missing,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromClients(cs []entities.ClientData) []ClientDataResponse {
	out := make([]ClientDataResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClientData(c))
	}
	return out
}

type VehicleDataResponse struct {
	ID                 string    `json:"id"`
	PolicyID           string    `json:"policy_id"`
	Plate              string    `json:"plate"`
	Make               string    `json:"make,omitempty"`
	Model              string    `json:"model,omitempty"`
	Year               int       `json:"year,omitempty"`
	EngineNumber       string    `json:"engine_number,omitempty"`
	ChassisNumber      string    `json:"chassis_number,omitempty"`
	EngineDisplacement int       `json:"engine_displacement,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromVehicleData(v entities.VehicleData) VehicleDataResponse {
	return VehicleDataResponse{
		ID:                 v.ID,
		PolicyID:           v.PolicyID,
		Plate:              v.Plate,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		EngineNumber:       v.EngineNumber,
		ChassisNumber:      v.ChassisNumber,
		EngineDisplacement: v.EngineDisplacement,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromVehicles(vs []entities.VehicleData) []VehicleDataResponse {
	out := make([]VehicleDataResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicleData(v))
	}
	return out
}
