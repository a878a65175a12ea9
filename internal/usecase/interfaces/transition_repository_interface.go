package interfaces

import (
	"context"

	"aseguraopen/internal/domain/entities"
)

// ITransitionRepository reads the audit trail. Writes only happen through
// IPolicyRepository.CommitTransition.

type ITransitionRepository interface {
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.StateTransition, error)
	List(ctx context.Context) ([]entities.StateTransition, error)
}
