package memory

import (
	"context"
	"testing"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPolicy(t *testing.T, s *Store, state entities.PolicyState, version int) entities.Policy {
	t.Helper()
	p, err := s.Policies().Create(context.Background(), entities.Policy{ID: "pol-1", State: state, Version: version})
	require.NoError(t, err)
	return p
}

func TestPolicyRepository_CreateDuplicate(t *testing.T) {
	s := NewStore()
	seedPolicy(t, s, entities.PolicyStateIntake, 0)

	_, err := s.Policies().Create(context.Background(), entities.Policy{ID: "pol-1"})
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
}

func TestPolicyRepository_SetIntention(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPolicy(t, s, entities.PolicyStateIntake, 0)

	p, err := s.Policies().SetIntention(ctx, "pol-1", entities.InsuranceTypeMoto)
	require.NoError(t, err)
	assert.True(t, p.Intention)
	assert.Equal(t, entities.InsuranceTypeMoto, p.InsuranceType)

	_, err = s.Policies().SetIntention(ctx, "missing", entities.InsuranceTypeAuto)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
}

func TestPolicyRepository_CommitTransition(t *testing.T) {
	ctx := context.Background()
	commit := entities.TransitionCommit{
		PolicyID:    "pol-1",
		FromState:   entities.PolicyStateIntake,
		FromVersion: 0,
		ToState:     entities.PolicyStateLoaded,
		ToVersion:   1,
		UpdatedAt:   time.Now().UTC(),
		Transitions: []entities.StateTransition{{ID: "tr-1", PolicyID: "pol-1", Sequence: 1, FromState: entities.PolicyStateIntake, ToState: entities.PolicyStateLoaded}},
	}

	t.Run("applies state and audit together", func(t *testing.T) {
		s := NewStore()
		seedPolicy(t, s, entities.PolicyStateIntake, 0)
		require.NoError(t, s.Policies().CommitTransition(ctx, commit))

		p, err := s.Policies().GetByID(ctx, "pol-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PolicyStateLoaded, p.State)
		assert.Equal(t, 1, p.Version)

		ts, err := s.Transitions().ListByPolicyID(ctx, "pol-1")
		require.NoError(t, err)
		assert.Len(t, ts, 1)
	})

	t.Run("stale version writes nothing", func(t *testing.T) {
		s := NewStore()
		seedPolicy(t, s, entities.PolicyStateIntake, 3)
		err := s.Policies().CommitTransition(ctx, commit)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

		ts, err := s.Transitions().ListByPolicyID(ctx, "pol-1")
		require.NoError(t, err)
		assert.Empty(t, ts)
	})

	t.Run("selection of a foreign offer writes nothing", func(t *testing.T) {
		s := NewStore()
		seedPolicy(t, s, entities.PolicyStateIntake, 0)
		require.NoError(t, s.Quotations().CreateBatch(ctx, []entities.QuotationOffer{{ID: "q-1", PolicyID: "other"}}))

		c := commit
		c.SelectOfferID = "q-1"
		assert.ErrorIs(t, s.Policies().CommitTransition(ctx, c), interfaces.ErrConditionFailed)

		p, err := s.Policies().GetByID(ctx, "pol-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PolicyStateIntake, p.State)
	})

	t.Run("moves the selection flag", func(t *testing.T) {
		s := NewStore()
		seedPolicy(t, s, entities.PolicyStateIntake, 0)
		require.NoError(t, s.Quotations().CreateBatch(ctx, []entities.QuotationOffer{
			{ID: "q-1", PolicyID: "pol-1", Selected: true},
			{ID: "q-2", PolicyID: "pol-1"},
		}))

		c := commit
		c.SelectOfferID = "q-2"
		c.UnselectOfferIDs = []string{"q-1"}
		require.NoError(t, s.Policies().CommitTransition(ctx, c))

		offers, err := s.Quotations().List(ctx)
		require.NoError(t, err)
		require.Len(t, offers, 2)
		assert.False(t, offers[0].Selected)
		assert.True(t, offers[1].Selected)
	})
}

func TestClientDataRepository_FirstWriteWins(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	c, err := s.Clients().SetFieldIfAbsent(ctx, "pol-1", entities.ClientFieldName, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)

	c, err = s.Clients().SetFieldIfAbsent(ctx, "pol-1", entities.ClientFieldName, "Bea")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)

	_, err = s.Clients().SetFieldIfAbsent(ctx, "pol-1", entities.ClientField("address"), "x")
	assert.Error(t, err)
}

func TestVehicleDataRepository_SaveKeepsIdentity(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Vehicles().Save(ctx, entities.VehicleData{ID: "veh-1", PolicyID: "pol-1", Plate: "AB123CD"})
	require.NoError(t, err)
	_, err = s.Vehicles().Save(ctx, entities.VehicleData{ID: "veh-2", PolicyID: "pol-1", Plate: "AB123CD"})
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
}

func TestQuotationRepository_CreateBatchAllOrNothing(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Quotations().CreateBatch(ctx, []entities.QuotationOffer{{ID: "q-1", PolicyID: "pol-1"}}))

	err := s.Quotations().CreateBatch(ctx, []entities.QuotationOffer{{ID: "q-2", PolicyID: "pol-1"}, {ID: "q-1", PolicyID: "pol-1"}})
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	offers, err := s.Quotations().ListByPolicyID(ctx, "pol-1")
	require.NoError(t, err)
	assert.Len(t, offers, 1)
}

func TestTemplateRepository_SeedSkipsExisting(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	tpls := []entities.QuotationTemplate{
		{ID: "t-1", InsuranceType: entities.InsuranceTypeAuto},
		{ID: "t-2", InsuranceType: entities.InsuranceTypeMoto},
	}
	n, err := s.Templates().Seed(ctx, tpls)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Templates().Seed(ctx, tpls)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	moto, err := s.Templates().ListByInsuranceType(ctx, entities.InsuranceTypeMoto)
	require.NoError(t, err)
	assert.Len(t, moto, 1)
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, err := s.Payments().Create(ctx, entities.PolicyPayment{ID: "pay-1", PolicyID: "pol-1", Status: entities.PaymentStatusPending})
	require.NoError(t, err)

	missing, err := s.Payments().UpdateStatus(ctx, "other", "pay-1", entities.PaymentStatusApproved, "123", nil)
	require.NoError(t, err)
	assert.Empty(t, missing.ID, "payment of another policy is not touched")

	p, err := s.Payments().UpdateStatus(ctx, "pol-1", "pay-1", entities.PaymentStatusApproved, "123", []byte(`{"status":"approved"}`))
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusApproved, p.Status)
	assert.Equal(t, "123", p.ProviderPaymentID)
	assert.JSONEq(t, `{"status":"approved"}`, string(p.ProviderPayload))
}

func TestIssuanceRepository_CreateOnce(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, err := s.Issuances().Create(ctx, entities.PolicyIssuance{PolicyID: "pol-1", ExternalReference: "ISS-1"})
	require.NoError(t, err)
	_, err = s.Issuances().Create(ctx, entities.PolicyIssuance{PolicyID: "pol-1", ExternalReference: "ISS-2"})
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	i, err := s.Issuances().GetByPolicyID(ctx, "pol-1")
	require.NoError(t, err)
	assert.Equal(t, "ISS-1", i.ExternalReference)
}
