package usecase

import (
	"context"
	"sort"
	"strings"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"
)

// Repositories bundles the entity stores the core reads and writes.
type Repositories struct {
	Policies    interfaces.IPolicyRepository
	Clients     interfaces.IClientDataRepository
	Vehicles    interfaces.IVehicleDataRepository
	Quotations  interfaces.IQuotationRepository
	Templates   interfaces.ITemplateRepository
	Transitions interfaces.ITransitionRepository
	Payments    interfaces.IPolicyPaymentRepository
	Issuances   interfaces.IPolicyIssuanceRepository
}

func loadPolicy(ctx context.Context, repo interfaces.IPolicyRepository, policyID string) (entities.Policy, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policy{}, ErrInvalidPolicyID
	}
	p, err := repo.GetByID(ctx, policyID)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func selectedOffer(ctx context.Context, repo interfaces.IQuotationRepository, policyID string) (entities.QuotationOffer, bool, error) {
	offers, err := repo.ListByPolicyID(ctx, policyID)
	if err != nil {
		return entities.QuotationOffer{}, false, err
	}
	for _, o := range offers {
		if o.Selected {
			return o, true, nil
		}
	}
	return entities.QuotationOffer{}, false, nil
}

func latestPayment(payments []entities.PolicyPayment) (entities.PolicyPayment, bool) {
	if len(payments) == 0 {
		return entities.PolicyPayment{}, false
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, true
}

// sortTransitions orders by creation time; within a policy that matches
// sequence order.
func sortTransitions(ts []entities.StateTransition) {
	sort.SliceStable(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.PolicyID != b.PolicyID {
			return a.PolicyID < b.PolicyID
		}
		return a.Sequence < b.Sequence
	})
}

func sortBySequence(ts []entities.StateTransition) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Sequence < ts[j].Sequence })
}
