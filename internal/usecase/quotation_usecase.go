package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"aseguraopen/internal/domain/catalog"
	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/infrastructure/metrics"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	monthsPerYear       = 12
	generationLockTTL   = 30 * time.Second
	generationLockScope = "quotations:"
)

// IQuotationUseCase is the quotation engine: offer generation from the
// template catalog, ordered reads and positional selection.
//
// Offers are always returned by ascending monthly premium; index 1 of
// SelectQuotation is the cheapest offer.

type IQuotationUseCase interface {
	SeedTemplates(ctx context.Context) (int, error)
	GenerateQuotations(ctx context.Context, policyID, insuranceType string) ([]entities.QuotationOffer, error)
	GetQuotations(ctx context.Context, policyID string) ([]entities.QuotationOffer, error)
	SelectQuotation(ctx context.Context, policyID string, index int) (entities.QuotationOffer, error)
	ListQuotations(ctx context.Context) ([]entities.QuotationOffer, error)
}

type QuotationUseCase struct {
	repos     Repositories
	lifecycle *LifecycleUseCase
	locker    interfaces.ILocker
	risk      RiskAssessor
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repos Repositories, lc *LifecycleUseCase, locker interfaces.ILocker, risk RiskAssessor, m *metrics.Metrics, log *zap.Logger) *QuotationUseCase {
	if risk == nil {
		risk = FlatRiskAssessor{}
	}
	return &QuotationUseCase{
		repos:     repos,
		lifecycle: lc,
		locker:    locker,
		risk:      risk,
		metrics:   m,
		log:       log.Named("quotation"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SeedTemplates stores the default catalog, skipping rows already present.
func (u *QuotationUseCase) SeedTemplates(ctx context.Context) (int, error) {
	templates := catalog.Default()
	now := u.now()
	for i := range templates {
		templates[i].CreatedAt = now
	}
	n, err := u.repos.Templates.Seed(ctx, templates)
	if err != nil {
		u.log.Error("[quotation][usecase] seed templates failed", zap.Error(err))
		return 0, err
	}
	u.log.Info("[quotation][usecase] templates seeded", zap.Int("inserted", n), zap.Int("catalog", len(templates)))
	return n, nil
}

func (u *QuotationUseCase) GenerateQuotations(ctx context.Context, policyID, insuranceType string) ([]entities.QuotationOffer, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return nil, err
	}
	log := u.log.With(zap.String("policy_id", policy.ID), zap.String("insurance_type", insuranceType))

	switch policy.State {
	case entities.PolicyStateIntake:
		return nil, fmt.Errorf("%w: quotations require a loaded policy", ErrInvalidTransition)
	case entities.PolicyStatePayment, entities.PolicyStateIssued, entities.PolicyStateCompleted:
		return u.GetQuotations(ctx, policy.ID)
	}

	t, ok := entities.ParseInsuranceType(insuranceType)
	if !ok || !catalog.Knows(t) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInsuranceType, insuranceType)
	}
	if policy.InsuranceType != "" && policy.InsuranceType != t {
		return nil, newValidationError("insurance_type", fmt.Sprintf("policy was opened for %s", policy.InsuranceType))
	}

	unlock, err := u.locker.Lock(ctx, generationLockScope+policy.ID, generationLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire generation lock: %w", err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			log.Warn("[quotation][usecase] release generation lock failed", zap.Error(err))
		}
	}()

	vehicle, err := u.repos.Vehicles.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	if vehicle.ID == "" {
		return nil, ErrMissingVehicleData
	}

	existing, err := u.repos.Quotations.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	var current []entities.QuotationOffer
	for _, o := range existing {
		if o.VehicleID == vehicle.ID {
			current = append(current, o)
		}
	}
	if len(current) > 0 {
		log.Debug("[quotation][usecase] offers already generated for vehicle", zap.Int("offers", len(current)))
		catalog.SortOffers(current)
		return current, nil
	}

	templates, err := u.repos.Templates.ListByInsuranceType(ctx, t)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: no templates stored for %s", ErrUnknownInsuranceType, t)
	}
	catalog.SortTemplates(templates)

	risk := u.risk.Assess(policy, vehicle)
	now := u.now()
	offers := make([]entities.QuotationOffer, 0, len(templates))
	for _, tpl := range templates {
		monthly := roundCents(tpl.BaseMonthlyPremium * risk.Factor)
		offers = append(offers, entities.QuotationOffer{
			ID:             uuid.NewString(),
			PolicyID:       policy.ID,
			VehicleID:      vehicle.ID,
			TemplateID:     tpl.ID,
			CoverageType:   tpl.CoverageType,
			CoverageLevel:  tpl.CoverageLevel,
			MonthlyPremium: monthly,
			AnnualPremium:  roundCents(monthly * monthsPerYear),
			Deductible:     tpl.Deductible,
			RiskLevel:      risk.Level,
			CreatedAt:      now,
		})
	}

	if err := u.repos.Quotations.CreateBatch(ctx, offers); err != nil {
		log.Error("[quotation][usecase] persist offers failed", zap.Error(err))
		return nil, err
	}
	u.metrics.ObserveOffers(string(t), len(offers))
	log.Info("[quotation][usecase] offers generated", zap.Int("offers", len(offers)), zap.Float64("risk_factor", risk.Factor))

	catalog.SortOffers(offers)
	return offers, nil
}

func (u *QuotationUseCase) GetQuotations(ctx context.Context, policyID string) ([]entities.QuotationOffer, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return nil, err
	}
	offers, err := u.repos.Quotations.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	catalog.SortOffers(offers)
	return offers, nil
}

// SelectQuotation marks the index-th cheapest offer selected and moves the
// policy to payment in the same write. From loaded, the quotation step is
// recorded too, so the audit trail stays gapless.
func (u *QuotationUseCase) SelectQuotation(ctx context.Context, policyID string, index int) (entities.QuotationOffer, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.QuotationOffer{}, err
	}
	log := u.log.With(zap.String("policy_id", policy.ID), zap.Int("index", index))

	offers, err := u.repos.Quotations.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.QuotationOffer{}, err
	}
	catalog.SortOffers(offers)

	if policy.IsCompleted() {
		for _, o := range offers {
			if o.Selected {
				return o, nil
			}
		}
		return entities.QuotationOffer{}, fmt.Errorf("%w: policy is completed", ErrInvalidSelection)
	}
	if index < 1 || index > len(offers) {
		return entities.QuotationOffer{}, fmt.Errorf("%w: choose between 1 and %d", ErrInvalidSelection, len(offers))
	}
	chosen := offers[index-1]

	switch policy.State {
	case entities.PolicyStateLoaded, entities.PolicyStateQuotation:
	case entities.PolicyStatePayment, entities.PolicyStateIssued:
		if chosen.Selected {
			return chosen, nil
		}
		return entities.QuotationOffer{}, fmt.Errorf("%w: a quotation was already selected", ErrInvalidTransition)
	default:
		return entities.QuotationOffer{}, fmt.Errorf("%w: policy in %s cannot select a quotation", ErrInvalidTransition, policy.State)
	}

	actor := string(lifecycle.AssistantQuotation)
	var steps []transitionStep
	for _, st := range lifecycle.Path(policy.State, entities.PolicyStatePayment) {
		reason := "quotation offers presented"
		if st == entities.PolicyStatePayment {
			reason = fmt.Sprintf("quotation selected: %s - %s", chosen.CoverageType, chosen.CoverageLevel)
		}
		steps = append(steps, transitionStep{to: st, reason: reason, actor: actor})
	}

	commit := u.lifecycle.plan(policy, steps)
	commit.SelectOfferID = chosen.ID
	for _, o := range offers {
		if o.Selected && o.ID != chosen.ID {
			commit.UnselectOfferIDs = append(commit.UnselectOfferIDs, o.ID)
		}
	}
	if err := u.lifecycle.commit(ctx, "select_quotation", commit); err != nil {
		log.Warn("[quotation][usecase] selection commit failed", zap.Error(err))
		return entities.QuotationOffer{}, err
	}
	log.Info("[quotation][usecase] quotation selected", zap.String("quotation_id", chosen.ID), zap.Float64("monthly_premium", chosen.MonthlyPremium))

	chosen.Selected = true
	return chosen, nil
}

func (u *QuotationUseCase) ListQuotations(ctx context.Context) ([]entities.QuotationOffer, error) {
	return u.repos.Quotations.List(ctx)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
