package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/infrastructure/metrics"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransitionOutcome is the result of a lifecycle request. Applied is false
// for no-ops (re-entrant target state or terminal policy); Transition is then
// the latest recorded transition, if any.
type TransitionOutcome struct {
	Policy     entities.Policy
	Transition entities.StateTransition
	Applied    bool
}

// ILifecycleUseCase is the single enforcement point for policy state changes.
//
// Every transition is checked for topology (only the immediate successor is
// reachable) and for the data guard of its target state before it is
// committed together with its audit record.

type ILifecycleUseCase interface {
	Transition(ctx context.Context, policyID string, to entities.PolicyState, reason, actor string) (TransitionOutcome, error)
	GetTransitions(ctx context.Context, policyID string) ([]entities.StateTransition, error)
	ListTransitions(ctx context.Context) ([]entities.StateTransition, error)
}

type LifecycleUseCase struct {
	repos   Repositories
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(repos Repositories, m *metrics.Metrics, log *zap.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{
		repos:   repos,
		metrics: m,
		log:     log.Named("lifecycle"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type transitionStep struct {
	to     entities.PolicyState
	reason string
	actor  string
}

func (u *LifecycleUseCase) Transition(ctx context.Context, policyID string, to entities.PolicyState, reason, actor string) (TransitionOutcome, error) {
	if _, err := entities.ParsePolicyState(string(to)); err != nil {
		return TransitionOutcome{}, fmt.Errorf("%w: %q", ErrUnknownState, to)
	}
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return TransitionOutcome{}, err
	}
	log := u.log.With(zap.String("policy_id", policy.ID), zap.String("from_state", string(policy.State)), zap.String("to_state", string(to)))
	log.Debug("[lifecycle][usecase] transition start")

	if policy.IsCompleted() || policy.State == to {
		log.Debug("[lifecycle][usecase] transition no-op")
		return u.noop(ctx, policy)
	}
	if !lifecycle.CanStep(policy.State, to) {
		log.Info("[lifecycle][usecase] transition rejected: illegal step")
		return TransitionOutcome{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, policy.State, to)
	}
	if err := u.checkGuard(ctx, policy, to); err != nil {
		log.Info("[lifecycle][usecase] transition rejected: guard", zap.Error(err))
		return TransitionOutcome{}, err
	}

	if strings.TrimSpace(actor) == "" {
		a, _ := lifecycle.Route(policy.State)
		actor = string(a)
	}
	commit := u.plan(policy, []transitionStep{{to: to, reason: strings.TrimSpace(reason), actor: actor}})
	if err := u.commit(ctx, "transition", commit); err != nil {
		log.Warn("[lifecycle][usecase] transition commit failed", zap.Error(err))
		return TransitionOutcome{}, err
	}
	log.Info("[lifecycle][usecase] transition committed", zap.Int("version", commit.ToVersion), zap.String("actor", actor))

	return TransitionOutcome{
		Policy:     applyCommit(policy, commit),
		Transition: commit.Transitions[0],
		Applied:    true,
	}, nil
}

func (u *LifecycleUseCase) noop(ctx context.Context, policy entities.Policy) (TransitionOutcome, error) {
	ts, err := u.repos.Transitions.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return TransitionOutcome{}, err
	}
	out := TransitionOutcome{Policy: policy}
	if len(ts) > 0 {
		sortBySequence(ts)
		out.Transition = ts[len(ts)-1]
	}
	return out, nil
}

// checkGuard evaluates the data precondition of entering to.
func (u *LifecycleUseCase) checkGuard(ctx context.Context, policy entities.Policy, to entities.PolicyState) error {
	switch to {
	case entities.PolicyStateLoaded:
		if !policy.Intention || policy.InsuranceType == "" {
			return ErrMissingIntention
		}
		client, err := u.repos.Clients.GetByPolicyID(ctx, policy.ID)
		if err != nil {
			return err
		}
		if client.PolicyID == "" {
			return fmt.Errorf("%w: no client data recorded", ErrMissingClientData)
		}
		return validateClientData(client)
	case entities.PolicyStateQuotation:
		return nil
	case entities.PolicyStatePayment:
		_, ok, err := selectedOffer(ctx, u.repos.Quotations, policy.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no quotation selected", ErrInvalidSelection)
		}
		return nil
	case entities.PolicyStateIssued:
		payments, err := u.repos.Payments.ListByPolicyID(ctx, policy.ID)
		if err != nil {
			return err
		}
		for _, p := range payments {
			if p.Status == entities.PaymentStatusApproved {
				return nil
			}
		}
		return ErrPaymentNotApproved
	case entities.PolicyStateCompleted:
		issuance, err := u.repos.Issuances.GetByPolicyID(ctx, policy.ID)
		if err != nil {
			return err
		}
		if issuance.PolicyID == "" {
			return ErrPolicyNotIssued
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownState, to)
}

// plan builds the commit for consecutive steps starting at policy's current
// state. Each step gets the next sequence number.
func (u *LifecycleUseCase) plan(policy entities.Policy, steps []transitionStep) entities.TransitionCommit {
	now := u.now()
	commit := entities.TransitionCommit{
		PolicyID:    policy.ID,
		FromState:   policy.State,
		FromVersion: policy.Version,
		UpdatedAt:   now,
	}
	from, version := policy.State, policy.Version
	for _, s := range steps {
		version++
		commit.Transitions = append(commit.Transitions, entities.StateTransition{
			ID:        uuid.NewString(),
			PolicyID:  policy.ID,
			Sequence:  version,
			FromState: from,
			ToState:   s.to,
			Reason:    s.reason,
			Actor:     s.actor,
			CreatedAt: now,
		})
		from = s.to
	}
	commit.ToState = from
	commit.ToVersion = version
	return commit
}

func (u *LifecycleUseCase) commit(ctx context.Context, operation string, commit entities.TransitionCommit) error {
	if err := u.repos.Policies.CommitTransition(ctx, commit); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			u.metrics.ObserveConflict(operation)
			return fmt.Errorf("%w: policy %s changed while in %s", ErrConflict, commit.PolicyID, commit.FromState)
		}
		return err
	}
	for _, t := range commit.Transitions {
		u.metrics.ObserveTransition(string(t.FromState), string(t.ToState))
	}
	return nil
}

func applyCommit(p entities.Policy, c entities.TransitionCommit) entities.Policy {
	p.State = c.ToState
	p.Version = c.ToVersion
	p.UpdatedAt = c.UpdatedAt
	return p
}

func (u *LifecycleUseCase) GetTransitions(ctx context.Context, policyID string) ([]entities.StateTransition, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return nil, err
	}
	ts, err := u.repos.Transitions.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	sortBySequence(ts)
	return ts, nil
}

func (u *LifecycleUseCase) ListTransitions(ctx context.Context) ([]entities.StateTransition, error) {
	ts, err := u.repos.Transitions.List(ctx)
	if err != nil {
		return nil, err
	}
	sortTransitions(ts)
	return ts, nil
}
