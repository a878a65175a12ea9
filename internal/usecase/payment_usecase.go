package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/infrastructure/metrics"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// amountTolerance absorbs float rounding between the stored premium and the
// provider's transaction amount.
const amountTolerance = 0.005

// IPolicyPaymentUseCase drives the payment stage: it requests a checkout link
// for the selected offer and confirms the provider's outcome.
//
// An approved confirmation moves the policy from payment to issued.
type IPolicyPaymentUseCase interface {
	CreatePaymentLink(ctx context.Context, policyID string) (entities.PolicyPayment, error)
	ConfirmPayment(ctx context.Context, policyID, providerPaymentID string) (entities.PolicyPayment, error)
	ListPayments(ctx context.Context, policyID string) ([]entities.PolicyPayment, error)
}

type PolicyPaymentUseCase struct {
	repos     Repositories
	lifecycle ILifecycleUseCase
	gateway   interfaces.IPaymentGateway
	timeout   time.Duration
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

var _ IPolicyPaymentUseCase = (*PolicyPaymentUseCase)(nil)

func NewPolicyPaymentUseCase(repos Repositories, lc ILifecycleUseCase, gateway interfaces.IPaymentGateway, timeout time.Duration, m *metrics.Metrics, log *zap.Logger) *PolicyPaymentUseCase {
	return &PolicyPaymentUseCase{
		repos:     repos,
		lifecycle: lc,
		gateway:   gateway,
		timeout:   timeout,
		metrics:   m,
		log:       log.Named("payment"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PolicyPaymentUseCase) CreatePaymentLink(ctx context.Context, policyID string) (entities.PolicyPayment, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	log := u.log.With(zap.String("policy_id", policy.ID))

	payments, err := u.repos.Payments.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	switch policy.State {
	case entities.PolicyStatePayment:
	case entities.PolicyStateIssued, entities.PolicyStateCompleted:
		return approvedPayment(payments)
	default:
		return entities.PolicyPayment{}, fmt.Errorf("%w: payment links are issued only in payment state", ErrInvalidTransition)
	}
	if latest, ok := latestPayment(payments); ok && latest.Status == entities.PaymentStatusPending && latest.PaymentLink != "" {
		log.Debug("[payment][usecase] reusing pending payment link", zap.String("payment_id", latest.ID))
		return latest, nil
	}

	offer, ok, err := selectedOffer(ctx, u.repos.Quotations, policy.ID)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	if !ok {
		return entities.PolicyPayment{}, fmt.Errorf("%w: no quotation selected", ErrInvalidSelection)
	}
	client, err := u.repos.Clients.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.PolicyPayment{}, errors.New("payment gateway not configured")
	}

	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	start := time.Now()
	link, err := u.gateway.CreatePaymentLink(cctx, interfaces.PaymentLinkRequest{
		PolicyID:    policy.ID,
		QuotationID: offer.ID,
		Title:       fmt.Sprintf("Seguro %s - %s %s", policy.InsuranceType, offer.CoverageType, offer.CoverageLevel),
		Amount:      offer.MonthlyPremium,
		PayerName:   client.Name,
		PayerEmail:  client.Email,
	})
	u.metrics.ObserveCollaborator("payment_link", start, err)
	if err != nil {
		log.Warn("[payment][usecase] payment link request failed", zap.Error(err))
		return entities.PolicyPayment{}, fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}

	now := u.now()
	created, err := u.repos.Payments.Create(ctx, entities.PolicyPayment{
		ID:              uuid.NewString(),
		PolicyID:        policy.ID,
		QuotationID:     offer.ID,
		Amount:          offer.MonthlyPremium,
		PreferenceID:    link.PreferenceID,
		PaymentLink:     link.URL,
		Status:          entities.PaymentStatusPending,
		ProviderPayload: link.Raw,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		log.Error("[payment][usecase] persist payment failed", zap.Error(err))
		return entities.PolicyPayment{}, err
	}
	log.Info("[payment][usecase] payment link created", zap.String("payment_id", created.ID), zap.String("preference_id", created.PreferenceID))
	return created, nil
}

func (u *PolicyPaymentUseCase) ConfirmPayment(ctx context.Context, policyID, providerPaymentID string) (entities.PolicyPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.PolicyPayment{}, newValidationError("payment_id", "is required")
	}
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	log := u.log.With(zap.String("policy_id", policy.ID), zap.String("provider_payment_id", providerPaymentID))

	payments, err := u.repos.Payments.ListByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	switch policy.State {
	case entities.PolicyStatePayment:
	case entities.PolicyStateIssued, entities.PolicyStateCompleted:
		return approvedPayment(payments)
	default:
		return entities.PolicyPayment{}, fmt.Errorf("%w: policy in %s has no payment to confirm", ErrInvalidTransition, policy.State)
	}
	latest, ok := latestPayment(payments)
	if !ok {
		return entities.PolicyPayment{}, ErrPaymentNotFound
	}
	if u.gateway == nil {
		return entities.PolicyPayment{}, errors.New("payment gateway not configured")
	}

	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	start := time.Now()
	result, err := u.gateway.GetPaymentStatus(cctx, interfaces.PaymentStatusQuery{
		ProviderPaymentID: providerPaymentID,
		ExternalReference: policy.ID,
		Amount:            latest.Amount,
	})
	u.metrics.ObserveCollaborator("payment_status", start, err)
	if err != nil {
		log.Warn("[payment][usecase] payment status request failed", zap.Error(err))
		return entities.PolicyPayment{}, fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}

	// A provider payment counts only for the policy it was created for.
	if result.ExternalReference != policy.ID {
		log.Warn("[payment][usecase] payment belongs to another reference", zap.String("external_reference", result.ExternalReference))
		return latest, fmt.Errorf("%w: payment %s does not reference this policy", ErrPaymentNotApproved, providerPaymentID)
	}
	if math.Abs(result.Amount-latest.Amount) > amountTolerance {
		log.Warn("[payment][usecase] payment amount mismatch", zap.Float64("paid", result.Amount), zap.Float64("expected", latest.Amount))
		return latest, fmt.Errorf("%w: paid %.2f, expected %.2f", ErrPaymentNotApproved, result.Amount, latest.Amount)
	}

	providerStatus := result.Status
	status := mapProviderStatus(providerStatus)
	updated, err := u.repos.Payments.UpdateStatus(ctx, policy.ID, latest.ID, status, providerPaymentID, result.Raw)
	if err != nil {
		return entities.PolicyPayment{}, err
	}
	if updated.ID == "" {
		return entities.PolicyPayment{}, ErrPaymentNotFound
	}
	if status != entities.PaymentStatusApproved {
		log.Info("[payment][usecase] payment not approved", zap.String("provider_status", providerStatus))
		return updated, fmt.Errorf("%w: provider status %q", ErrPaymentNotApproved, providerStatus)
	}

	if _, err := u.lifecycle.Transition(ctx, policy.ID, entities.PolicyStateIssued,
		"payment confirmed: "+providerPaymentID, string(lifecycle.AssistantPayment)); err != nil {
		return updated, err
	}
	log.Info("[payment][usecase] payment confirmed", zap.String("payment_id", updated.ID))
	return updated, nil
}

func (u *PolicyPaymentUseCase) ListPayments(ctx context.Context, policyID string) ([]entities.PolicyPayment, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return nil, err
	}
	return u.repos.Payments.ListByPolicyID(ctx, policy.ID)
}

func approvedPayment(payments []entities.PolicyPayment) (entities.PolicyPayment, error) {
	for _, p := range payments {
		if p.Status == entities.PaymentStatusApproved {
			return p, nil
		}
	}
	return entities.PolicyPayment{}, ErrPaymentNotFound
}

func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected":
		return entities.PaymentStatusRejected
	case "cancelled", "canceled", "refunded", "charged_back":
		return entities.PaymentStatusCancelled
	default:
		return entities.PaymentStatusPending
	}
}
