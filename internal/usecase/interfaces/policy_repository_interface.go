package interfaces

import (
	"context"
	"errors"

	"aseguraopen/internal/domain/entities"
)

// ErrConditionFailed is returned by stores when a conditional write lost
// against a concurrent writer (the compare-and-swap did not match).
var ErrConditionFailed = errors.New("conditional write failed")

// IPolicyRepository abstracts persistence for Policy.
//
// Lookups return a zero-value Policy (empty ID) when the record is absent.
// CommitTransition applies the whole commit atomically: the state update,
// every audit record and any offer selection succeed together or not at all.

type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
	SetIntention(ctx context.Context, id string, insuranceType entities.InsuranceType) (entities.Policy, error)
	CommitTransition(ctx context.Context, commit entities.TransitionCommit) error
}
