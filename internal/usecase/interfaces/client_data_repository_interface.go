package interfaces

import (
	"context"

	"aseguraopen/internal/domain/entities"
)

// IClientDataRepository abstracts persistence for ClientData.
//
// SetFieldIfAbsent merges one field into the record (creating it when
// needed) and never overwrites a field that already holds a value.

type IClientDataRepository interface {
	GetByPolicyID(ctx context.Context, policyID string) (entities.ClientData, error)
	SetFieldIfAbsent(ctx context.Context, policyID string, field entities.ClientField, value string) (entities.ClientData, error)
	List(ctx context.Context) ([]entities.ClientData, error)
}
