package usecase

import "aseguraopen/internal/domain/entities"

// RiskAssessment is the underwriting input applied to a template's base
// premium.
type RiskAssessment struct {
	Factor float64
	Level  entities.RiskLevel
}

// RiskAssessor prices the risk of one policy and vehicle. It is the
// extension point for underwriting rules.
type RiskAssessor interface {
	Assess(policy entities.Policy, vehicle entities.VehicleData) RiskAssessment
}

// FlatRiskAssessor applies no adjustment.
type FlatRiskAssessor struct{}

func (FlatRiskAssessor) Assess(entities.Policy, entities.VehicleData) RiskAssessment {
	return RiskAssessment{Factor: 1.0, Level: entities.RiskLevelMedium}
}
