package entities

import "time"

// VehicleData describes the insured vehicle.
//
// Storage model (DynamoDB):
//   - PK: policy_id (one vehicle per policy)
//
// Plate is required; the remaining attributes may be enriched later without
// changing the vehicle ID, which keeps previously generated offers linked.
type VehicleData struct {
	ID                 string    `json:"id"`
	PolicyID           string    `json:"policy_id"`
	Plate              string    `json:"plate"`
	Make               string    `json:"make,omitempty"`
	Model              string    `json:"model,omitempty"`
	Year               int       `json:"year,omitempty"`
	EngineNumber       string    `json:"engine_number,omitempty"`
	ChassisNumber      string    `json:"chassis_number,omitempty"`
	EngineDisplacement int       `json:"engine_displacement,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Enrich fills empty optional attributes of v from other. Identity and plate
// are kept.
func (v VehicleData) Enrich(other VehicleData) VehicleData {
	if v.Make == "" {
		v.Make = other.Make
	}
	if v.Model == "" {
		v.Model = other.Model
	}
	if v.Year == 0 {
		v.Year = other.Year
	}
	if v.EngineNumber == "" {
		v.EngineNumber = other.EngineNumber
	}
	if v.ChassisNumber == "" {
		v.ChassisNumber = other.ChassisNumber
	}
	if v.EngineDisplacement == 0 {
		v.EngineDisplacement = other.EngineDisplacement
	}
	return v
}
