package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/infrastructure/metrics"
	"aseguraopen/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	issuanceLockTTL   = time.Minute
	issuanceLockScope = "issuance:"
)

// IIssuanceUseCase transmits a paid policy to the external issuer and
// completes it.
type IIssuanceUseCase interface {
	IssuePolicy(ctx context.Context, policyID string) (entities.PolicyIssuance, error)
	GetIssuance(ctx context.Context, policyID string) (entities.PolicyIssuance, error)
}

type IssuanceUseCase struct {
	repos     Repositories
	lifecycle ILifecycleUseCase
	issuer    interfaces.IIssuerGateway
	locker    interfaces.ILocker
	timeout   time.Duration
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

var _ IIssuanceUseCase = (*IssuanceUseCase)(nil)

func NewIssuanceUseCase(repos Repositories, lc ILifecycleUseCase, issuer interfaces.IIssuerGateway, locker interfaces.ILocker, timeout time.Duration, m *metrics.Metrics, log *zap.Logger) *IssuanceUseCase {
	return &IssuanceUseCase{
		repos:     repos,
		lifecycle: lc,
		issuer:    issuer,
		locker:    locker,
		timeout:   timeout,
		metrics:   m,
		log:       log.Named("issuance"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// IssuePolicy is safe to re-deliver: a receipt already on record is not
// transmitted again, only the pending transition is retried. Callers for the
// same policy are serialized, so the issuer sees one request per policy.
func (u *IssuanceUseCase) IssuePolicy(ctx context.Context, policyID string) (entities.PolicyIssuance, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	log := u.log.With(zap.String("policy_id", policy.ID))

	issuance, err := u.repos.Issuances.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	switch policy.State {
	case entities.PolicyStateIssued:
	case entities.PolicyStateCompleted:
		if issuance.PolicyID == "" {
			return entities.PolicyIssuance{}, ErrPolicyNotIssued
		}
		return issuance, nil
	default:
		return entities.PolicyIssuance{}, fmt.Errorf("%w: policy in %s cannot be issued", ErrInvalidTransition, policy.State)
	}

	unlock, err := u.locker.Lock(ctx, issuanceLockScope+policy.ID, issuanceLockTTL)
	if err != nil {
		return entities.PolicyIssuance{}, fmt.Errorf("acquire issuance lock: %w", err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			log.Warn("[issuance][usecase] release issuance lock failed", zap.Error(err))
		}
	}()

	// Re-read under the lock: a concurrent caller may have recorded it.
	if issuance, err = u.repos.Issuances.GetByPolicyID(ctx, policy.ID); err != nil {
		return entities.PolicyIssuance{}, err
	}
	if issuance.PolicyID == "" {
		issuance, err = u.transmit(ctx, policy)
		if err != nil {
			log.Warn("[issuance][usecase] transmission failed", zap.Error(err))
			return entities.PolicyIssuance{}, err
		}
		log.Info("[issuance][usecase] policy transmitted", zap.String("external_reference", issuance.ExternalReference))
	}

	if _, err := u.lifecycle.Transition(ctx, policy.ID, entities.PolicyStateCompleted,
		"policy issued and sent to client", string(lifecycle.AssistantIssuance)); err != nil {
		return issuance, err
	}
	return issuance, nil
}

func (u *IssuanceUseCase) transmit(ctx context.Context, policy entities.Policy) (entities.PolicyIssuance, error) {
	client, err := u.repos.Clients.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	if client.PolicyID == "" {
		return entities.PolicyIssuance{}, ErrMissingClientData
	}
	vehicle, err := u.repos.Vehicles.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	if vehicle.ID == "" {
		return entities.PolicyIssuance{}, ErrMissingVehicleData
	}
	offer, ok, err := selectedOffer(ctx, u.repos.Quotations, policy.ID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	if !ok {
		return entities.PolicyIssuance{}, fmt.Errorf("%w: no quotation selected", ErrInvalidSelection)
	}

	payload := interfaces.IssuancePayload{
		PolicyID: policy.ID,
		Client:   interfaces.IssuanceClient{Name: client.Name, Email: client.Email, Phone: client.Phone},
		Vehicle: interfaces.IssuanceVehicle{
			Make:          vehicle.Make,
			Model:         vehicle.Model,
			Year:          vehicle.Year,
			Plate:         vehicle.Plate,
			EngineNumber:  vehicle.EngineNumber,
			ChassisNumber: vehicle.ChassisNumber,
		},
		Insurance: interfaces.IssuanceInsurance{
			Type:           string(policy.InsuranceType),
			CoverageType:   offer.CoverageType,
			CoverageLevel:  offer.CoverageLevel,
			MonthlyPremium: offer.MonthlyPremium,
			AnnualPremium:  offer.AnnualPremium,
			Deductible:     offer.Deductible,
		},
	}

	if u.issuer == nil {
		return entities.PolicyIssuance{}, errors.New("issuer gateway not configured")
	}
	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	start := time.Now()
	ref, raw, err := u.issuer.Issue(cctx, payload)
	u.metrics.ObserveCollaborator("issuer", start, err)
	if err != nil {
		return entities.PolicyIssuance{}, fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}

	created, err := u.repos.Issuances.Create(ctx, entities.PolicyIssuance{
		PolicyID:          policy.ID,
		ExternalReference: ref,
		SentTo:            client.Email,
		IssuerResponse:    raw,
		IssuedAt:          u.now(),
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.PolicyIssuance{}, fmt.Errorf("%w: issuance already recorded", ErrConflict)
	}
	return created, err
}

func (u *IssuanceUseCase) GetIssuance(ctx context.Context, policyID string) (entities.PolicyIssuance, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	i, err := u.repos.Issuances.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	if i.PolicyID == "" {
		return entities.PolicyIssuance{}, ErrPolicyNotIssued
	}
	return i, nil
}
