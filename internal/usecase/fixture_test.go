package usecase

import (
	"context"
	"testing"

	"aseguraopen/internal/adapter/persistence/memory"
	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/infrastructure/locking"
	"aseguraopen/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type fixture struct {
	repos      Repositories
	policies   *PolicyUseCase
	lifecycle  *LifecycleUseCase
	quotations *QuotationUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	repos := Repositories{
		Policies:    s.Policies(),
		Clients:     s.Clients(),
		Vehicles:    s.Vehicles(),
		Quotations:  s.Quotations(),
		Templates:   s.Templates(),
		Transitions: s.Transitions(),
		Payments:    s.Payments(),
		Issuances:   s.Issuances(),
	}
	log := zap.NewNop()
	lc := NewLifecycleUseCase(repos, nil, log)
	f := &fixture{
		repos:      repos,
		policies:   NewPolicyUseCase(repos, log),
		lifecycle:  lc,
		quotations: NewQuotationUseCase(repos, lc, locking.NewLocalLocker(), nil, nil, log),
	}
	if _, err := f.quotations.SeedTemplates(context.Background()); err != nil {
		t.Fatalf("seed templates: %v", err)
	}
	return f
}

// loadedPolicy drives a new policy through intake with valid data and
// stops in the requested state (loaded or quotation).
func (f *fixture) loadedPolicy(t *testing.T, insuranceType string) entities.Policy {
	t.Helper()
	ctx := context.Background()
	p, err := f.policies.CreatePolicy(ctx)
	if err != nil {
		t.Fatalf("create policy: %v", err)
	}
	if _, err := f.policies.SetIntention(ctx, p.ID, insuranceType); err != nil {
		t.Fatalf("set intention: %v", err)
	}
	for field, value := range map[string]string{"name": "Ana Pérez", "email": "ana@example.com", "phone": "+54 11 5555-0000"} {
		if _, err := f.policies.SaveClientField(ctx, p.ID, field, value); err != nil {
			t.Fatalf("save %s: %v", field, err)
		}
	}
	if _, err := f.policies.SaveVehicleData(ctx, p.ID, VehicleInput{Plate: "ab123cd", Make: "Toyota", Model: "Corolla", Year: 2020}); err != nil {
		t.Fatalf("save vehicle: %v", err)
	}
	out, err := f.lifecycle.Transition(ctx, p.ID, entities.PolicyStateLoaded, "client data complete", "")
	if err != nil {
		t.Fatalf("transition loaded: %v", err)
	}
	return out.Policy
}

// conflictingPolicyRepo fails every commit as if another writer won.
type conflictingPolicyRepo struct {
	interfaces.IPolicyRepository
}

func (conflictingPolicyRepo) CommitTransition(context.Context, entities.TransitionCommit) error {
	return interfaces.ErrConditionFailed
}
