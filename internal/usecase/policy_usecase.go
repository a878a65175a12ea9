package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VehicleInput carries the vehicle attributes supplied by the caller. Only
// Plate is required.
type VehicleInput struct {
	Plate              string
	Make               string
	Model              string
	Year               int
	EngineNumber       string
	ChassisNumber      string
	EngineDisplacement int
}

// IPolicyUseCase exposes policy creation and intake data collection.
//
// Operations on a completed policy are no-ops that return the stored data.

type IPolicyUseCase interface {
	CreatePolicy(ctx context.Context) (entities.Policy, error)
	GetPolicy(ctx context.Context, policyID string) (entities.Policy, error)
	SetIntention(ctx context.Context, policyID, insuranceType string) (entities.Policy, error)
	SaveClientField(ctx context.Context, policyID, field, value string) (entities.ClientData, error)
	GetClientData(ctx context.Context, policyID string) (entities.ClientData, error)
	SaveVehicleData(ctx context.Context, policyID string, in VehicleInput) (entities.VehicleData, error)
	GetVehicleData(ctx context.Context, policyID string) (entities.VehicleData, error)
	RouteAssistant(ctx context.Context, policyID string) (lifecycle.Assistant, entities.Policy, error)
	ListPolicies(ctx context.Context) ([]entities.Policy, error)
	ListClients(ctx context.Context) ([]entities.ClientData, error)
	ListVehicles(ctx context.Context) ([]entities.VehicleData, error)
}

type PolicyUseCase struct {
	repos Repositories
	log   *zap.Logger
	now   func() time.Time
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repos Repositories, log *zap.Logger) *PolicyUseCase {
	return &PolicyUseCase{
		repos: repos,
		log:   log.Named("policy"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *PolicyUseCase) CreatePolicy(ctx context.Context) (entities.Policy, error) {
	now := u.now()
	p := entities.Policy{
		ID:        uuid.NewString(),
		State:     lifecycle.Initial,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repos.Policies.Create(ctx, p)
	if err != nil {
		u.log.Error("[policy][usecase] create failed", zap.Error(err))
		return entities.Policy{}, err
	}
	u.log.Info("[policy][usecase] policy created", zap.String("policy_id", created.ID))
	return created, nil
}

func (u *PolicyUseCase) GetPolicy(ctx context.Context, policyID string) (entities.Policy, error) {
	return loadPolicy(ctx, u.repos.Policies, policyID)
}

func (u *PolicyUseCase) SetIntention(ctx context.Context, policyID, insuranceType string) (entities.Policy, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.Policy{}, err
	}
	if policy.IsCompleted() {
		return policy, nil
	}
	t, ok := entities.ParseInsuranceType(insuranceType)
	if !ok {
		return entities.Policy{}, newValidationError("insurance_type", "must be auto or moto")
	}
	if policy.Intention && policy.InsuranceType == t {
		return policy, nil
	}
	if policy.State != entities.PolicyStateIntake {
		return entities.Policy{}, fmt.Errorf("%w: insurance type is fixed once the policy leaves intake", ErrInvalidTransition)
	}

	updated, err := u.repos.Policies.SetIntention(ctx, policy.ID, t)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Policy{}, fmt.Errorf("%w: policy %s left intake", ErrConflict, policy.ID)
		}
		return entities.Policy{}, err
	}
	u.log.Info("[policy][usecase] intention set", zap.String("policy_id", policy.ID), zap.String("insurance_type", string(t)))
	return updated, nil
}

func (u *PolicyUseCase) SaveClientField(ctx context.Context, policyID, field, value string) (entities.ClientData, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.ClientData{}, err
	}
	if policy.IsCompleted() {
		return u.repos.Clients.GetByPolicyID(ctx, policy.ID)
	}
	if !policy.Intention {
		return entities.ClientData{}, ErrMissingIntention
	}

	f := entities.ClientField(strings.ToLower(strings.TrimSpace(field)))
	normalized, err := normalizeClientField(f, value)
	if err != nil {
		return entities.ClientData{}, err
	}

	client, err := u.repos.Clients.SetFieldIfAbsent(ctx, policy.ID, f, normalized)
	if err != nil {
		u.log.Error("[policy][usecase] save client field failed", zap.String("policy_id", policy.ID), zap.String("field", string(f)), zap.Error(err))
		return entities.ClientData{}, err
	}
	if stored := client.Field(f); stored != normalized {
		u.log.Debug("[policy][usecase] client field already set; kept stored value", zap.String("policy_id", policy.ID), zap.String("field", string(f)))
	}
	return client, nil
}

func (u *PolicyUseCase) GetClientData(ctx context.Context, policyID string) (entities.ClientData, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.ClientData{}, err
	}
	c, err := u.repos.Clients.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.ClientData{}, err
	}
	if c.PolicyID == "" {
		return entities.ClientData{}, ErrClientDataNotFound
	}
	return c, nil
}

func (u *PolicyUseCase) SaveVehicleData(ctx context.Context, policyID string, in VehicleInput) (entities.VehicleData, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.VehicleData{}, err
	}
	existing, err := u.repos.Vehicles.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.VehicleData{}, err
	}
	if policy.IsCompleted() {
		return existing, nil
	}
	if !policy.Intention {
		return entities.VehicleData{}, ErrMissingIntention
	}

	plate := strings.ToUpper(strings.TrimSpace(in.Plate))
	if plate == "" {
		return entities.VehicleData{}, newValidationError("plate", "is required")
	}
	if in.Year != 0 && (in.Year < 1900 || in.Year > u.now().Year()+1) {
		return entities.VehicleData{}, newValidationError("year", "is out of range")
	}
	if in.EngineDisplacement < 0 {
		return entities.VehicleData{}, newValidationError("engine_displacement", "must not be negative")
	}

	now := u.now()
	incoming := entities.VehicleData{
		PolicyID:           policy.ID,
		Plate:              plate,
		Make:               strings.TrimSpace(in.Make),
		Model:              strings.TrimSpace(in.Model),
		Year:               in.Year,
		EngineNumber:       strings.TrimSpace(in.EngineNumber),
		ChassisNumber:      strings.TrimSpace(in.ChassisNumber),
		EngineDisplacement: in.EngineDisplacement,
		UpdatedAt:          now,
	}

	v := incoming
	if existing.ID != "" {
		if existing.Plate != plate {
			return entities.VehicleData{}, newValidationError("plate", "cannot change once saved")
		}
		v = existing.Enrich(incoming)
		v.UpdatedAt = now
	} else {
		v.ID = uuid.NewString()
		v.CreatedAt = now
	}

	saved, err := u.repos.Vehicles.Save(ctx, v)
	if err != nil {
		u.log.Error("[policy][usecase] save vehicle failed", zap.String("policy_id", policy.ID), zap.Error(err))
		return entities.VehicleData{}, err
	}
	u.log.Info("[policy][usecase] vehicle saved", zap.String("policy_id", policy.ID), zap.String("vehicle_id", saved.ID))
	return saved, nil
}

func (u *PolicyUseCase) GetVehicleData(ctx context.Context, policyID string) (entities.VehicleData, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return entities.VehicleData{}, err
	}
	v, err := u.repos.Vehicles.GetByPolicyID(ctx, policy.ID)
	if err != nil {
		return entities.VehicleData{}, err
	}
	if v.ID == "" {
		return entities.VehicleData{}, ErrMissingVehicleData
	}
	return v, nil
}

// RouteAssistant returns the assistant that owns the policy's current state.
func (u *PolicyUseCase) RouteAssistant(ctx context.Context, policyID string) (lifecycle.Assistant, entities.Policy, error) {
	policy, err := loadPolicy(ctx, u.repos.Policies, policyID)
	if err != nil {
		return "", entities.Policy{}, err
	}
	a, err := lifecycle.Route(policy.State)
	if err != nil {
		u.log.Error("[policy][usecase] stored state has no assistant", zap.String("policy_id", policy.ID), zap.String("state", string(policy.State)))
		return "", entities.Policy{}, fmt.Errorf("%w: %v", ErrUnknownState, err)
	}
	return a, policy, nil
}

func (u *PolicyUseCase) ListPolicies(ctx context.Context) ([]entities.Policy, error) {
	return u.repos.Policies.List(ctx)
}

func (u *PolicyUseCase) ListClients(ctx context.Context) ([]entities.ClientData, error) {
	return u.repos.Clients.List(ctx)
}

func (u *PolicyUseCase) ListVehicles(ctx context.Context) ([]entities.VehicleData, error) {
	return u.repos.Vehicles.List(ctx)
}
