package interfaces

import (
	"context"

	"aseguraopen/internal/domain/entities"
)

// IVehicleDataRepository abstracts persistence for VehicleData (one per policy).

type IVehicleDataRepository interface {
	GetByPolicyID(ctx context.Context, policyID string) (entities.VehicleData, error)
	Save(ctx context.Context, v entities.VehicleData) (entities.VehicleData, error)
	List(ctx context.Context) ([]entities.VehicleData, error)
}
