// Package memory keeps every entity in process memory behind one mutex. It
// backs local runs (STORE_DRIVER=memory) and the usecase tests, and applies
// transition commits with the same all-or-nothing contract as DynamoDB.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"
)

type Store struct {
	mu          sync.Mutex
	policies    map[string]entities.Policy
	clients     map[string]entities.ClientData
	vehicles    map[string]entities.VehicleData
	offers      map[string]entities.QuotationOffer
	templates   map[string]entities.QuotationTemplate
	transitions map[string][]entities.StateTransition
	payments    map[string]entities.PolicyPayment
	issuances   map[string]entities.PolicyIssuance
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		policies:    map[string]entities.Policy{},
		clients:     map[string]entities.ClientData{},
		vehicles:    map[string]entities.VehicleData{},
		offers:      map[string]entities.QuotationOffer{},
		templates:   map[string]entities.QuotationTemplate{},
		transitions: map[string][]entities.StateTransition{},
		payments:    map[string]entities.PolicyPayment{},
		issuances:   map[string]entities.PolicyIssuance{},
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type PolicyRepository struct{ s *Store }
type ClientDataRepository struct{ s *Store }
type VehicleDataRepository struct{ s *Store }
type QuotationRepository struct{ s *Store }
type TemplateRepository struct{ s *Store }
type TransitionRepository struct{ s *Store }
type PaymentRepository struct{ s *Store }
type IssuanceRepository struct{ s *Store }

var (
	_ interfaces.IPolicyRepository         = PolicyRepository{}
	_ interfaces.IClientDataRepository     = ClientDataRepository{}
	_ interfaces.IVehicleDataRepository    = VehicleDataRepository{}
	_ interfaces.IQuotationRepository      = QuotationRepository{}
	_ interfaces.ITemplateRepository       = TemplateRepository{}
	_ interfaces.ITransitionRepository     = TransitionRepository{}
	_ interfaces.IPolicyPaymentRepository  = PaymentRepository{}
	_ interfaces.IPolicyIssuanceRepository = IssuanceRepository{}
)

func (s *Store) Policies() PolicyRepository { return PolicyRepository{s} }
func (s *Store) Clients() ClientDataRepository { return ClientDataRepository{s} }
func (s *Store) Vehicles() VehicleDataRepository { return VehicleDataRepository{s} }
func (s *Store) Quotations() QuotationRepository { return QuotationRepository{s} }
func (s *Store) Templates() TemplateRepository { return TemplateRepository{s} }
func (s *Store) Transitions() TransitionRepository { return TransitionRepository{s} }
func (s *Store) Payments() PaymentRepository { return PaymentRepository{s} }
func (s *Store) Issuances() IssuanceRepository { return IssuanceRepository{s} }

// Policies

func (r PolicyRepository) Create(_ context.Context, p entities.Policy) (entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.policies[p.ID]; ok {
		return entities.Policy{}, fmt.Errorf("policy %s: %w", p.ID, interfaces.ErrConditionFailed)
	}
	r.s.policies[p.ID] = p
	return p, nil
}

func (r PolicyRepository) GetByID(_ context.Context, id string) (entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.policies[id], nil
}

func (r PolicyRepository) List(_ context.Context) ([]entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Policy, 0, len(r.s.policies))
	for _, p := range r.s.policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r PolicyRepository) SetIntention(_ context.Context, id string, t entities.InsuranceType) (entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.policies[id]
	if !ok || p.State != entities.PolicyStateIntake {
		return entities.Policy{}, interfaces.ErrConditionFailed
	}
	p.Intention = true
	p.InsuranceType = t
	p.UpdatedAt = r.s.now()
	r.s.policies[id] = p
	return p, nil
}

func (r PolicyRepository) CommitTransition(_ context.Context, c entities.TransitionCommit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.policies[c.PolicyID]
	if !ok || p.State != c.FromState || p.Version != c.FromVersion {
		return interfaces.ErrConditionFailed
	}
	if c.SelectOfferID != "" {
		o, ok := r.s.offers[c.SelectOfferID]
		if !ok || o.PolicyID != c.PolicyID {
			return interfaces.ErrConditionFailed
		}
	}

	p.State = c.ToState
	p.Version = c.ToVersion
	p.UpdatedAt = c.UpdatedAt
	r.s.policies[p.ID] = p
	r.s.transitions[p.ID] = append(r.s.transitions[p.ID], c.Transitions...)
	for _, id := range c.UnselectOfferIDs {
		if o, ok := r.s.offers[id]; ok {
			o.Selected = false
			r.s.offers[id] = o
		}
	}
	if c.SelectOfferID != "" {
		o := r.s.offers[c.SelectOfferID]
		o.Selected = true
		r.s.offers[o.ID] = o
	}
	return nil
}

// Client data

func (r ClientDataRepository) GetByPolicyID(_ context.Context, policyID string) (entities.ClientData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.clients[policyID], nil
}

func (r ClientDataRepository) SetFieldIfAbsent(_ context.Context, policyID string, f entities.ClientField, value string) (entities.ClientData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	c, ok := r.s.clients[policyID]
	if !ok {
		c = entities.ClientData{ID: policyID, PolicyID: policyID, CreatedAt: now}
	}
	if c.Field(f) != "" {
		return c, nil
	}
	switch f {
	case entities.ClientFieldName:
		c.Name = value
	case entities.ClientFieldEmail:
		c.Email = value
	case entities.ClientFieldPhone:
		c.Phone = value
	default:
		return entities.ClientData{}, fmt.Errorf("unknown client field %q", f)
	}
	c.UpdatedAt = now
	r.s.clients[policyID] = c
	return c, nil
}

func (r ClientDataRepository) List(_ context.Context) ([]entities.ClientData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.ClientData, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PolicyID < out[j].PolicyID })
	return out, nil
}

// Vehicles

func (r VehicleDataRepository) GetByPolicyID(_ context.Context, policyID string) (entities.VehicleData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.vehicles[policyID], nil
}

func (r VehicleDataRepository) Save(_ context.Context, v entities.VehicleData) (entities.VehicleData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if prev, ok := r.s.vehicles[v.PolicyID]; ok && prev.ID != v.ID {
		return entities.VehicleData{}, fmt.Errorf("vehicle for policy %s: %w", v.PolicyID, interfaces.ErrConditionFailed)
	}
	r.s.vehicles[v.PolicyID] = v
	return v, nil
}

func (r VehicleDataRepository) List(_ context.Context) ([]entities.VehicleData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.VehicleData, 0, len(r.s.vehicles))
	for _, v := range r.s.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PolicyID < out[j].PolicyID })
	return out, nil
}

// Offers

func (r QuotationRepository) CreateBatch(_ context.Context, offers []entities.QuotationOffer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range offers {
		if _, ok := r.s.offers[o.ID]; ok {
			return fmt.Errorf("offer %s: %w", o.ID, interfaces.ErrConditionFailed)
		}
	}
	for _, o := range offers {
		r.s.offers[o.ID] = o
	}
	return nil
}

func (r QuotationRepository) ListByPolicyID(_ context.Context, policyID string) ([]entities.QuotationOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.QuotationOffer
	for _, o := range r.s.offers {
		if o.PolicyID == policyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r QuotationRepository) List(_ context.Context) ([]entities.QuotationOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.QuotationOffer, 0, len(r.s.offers))
	for _, o := range r.s.offers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PolicyID != out[j].PolicyID {
			return out[i].PolicyID < out[j].PolicyID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Templates

func (r TemplateRepository) Seed(_ context.Context, templates []entities.QuotationTemplate) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, t := range templates {
		if _, ok := r.s.templates[t.ID]; ok {
			continue
		}
		r.s.templates[t.ID] = t
		n++
	}
	return n, nil
}

func (r TemplateRepository) ListByInsuranceType(_ context.Context, t entities.InsuranceType) ([]entities.QuotationTemplate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.QuotationTemplate
	for _, tpl := range r.s.templates {
		if tpl.InsuranceType == t {
			out = append(out, tpl)
		}
	}
	return out, nil
}

// Transitions

func (r TransitionRepository) ListByPolicyID(_ context.Context, policyID string) ([]entities.StateTransition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]entities.StateTransition(nil), r.s.transitions[policyID]...), nil
}

func (r TransitionRepository) List(_ context.Context) ([]entities.StateTransition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.StateTransition
	for _, ts := range r.s.transitions {
		out = append(out, ts...)
	}
	return out, nil
}

// Payments

func (r PaymentRepository) Create(_ context.Context, p entities.PolicyPayment) (entities.PolicyPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[p.ID]; ok {
		return entities.PolicyPayment{}, fmt.Errorf("payment %s: %w", p.ID, interfaces.ErrConditionFailed)
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r PaymentRepository) ListByPolicyID(_ context.Context, policyID string) ([]entities.PolicyPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.PolicyPayment
	for _, p := range r.s.payments {
		if p.PolicyID == policyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r PaymentRepository) UpdateStatus(_ context.Context, policyID, id string, status entities.PaymentStatus, providerPaymentID string, payload json.RawMessage) (entities.PolicyPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok || p.PolicyID != policyID {
		return entities.PolicyPayment{}, nil
	}
	p.Status = status
	p.ProviderPaymentID = providerPaymentID
	if len(payload) > 0 {
		p.ProviderPayload = payload
	}
	p.UpdatedAt = r.s.now()
	r.s.payments[id] = p
	return p, nil
}

// Issuances

func (r IssuanceRepository) Create(_ context.Context, i entities.PolicyIssuance) (entities.PolicyIssuance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.issuances[i.PolicyID]; ok {
		return entities.PolicyIssuance{}, fmt.Errorf("issuance %s: %w", i.PolicyID, interfaces.ErrConditionFailed)
	}
	r.s.issuances[i.PolicyID] = i
	return i, nil
}

func (r IssuanceRepository) GetByPolicyID(_ context.Context, policyID string) (entities.PolicyIssuance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.issuances[policyID], nil
}
