package usecase

import (
	"context"
	"testing"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/usecase/interfaces"
	mock_interfaces "aseguraopen/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPolicyJourney_IntakeToCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	loaded := f.loadedPolicy(t, "auto")
	offers, err := f.quotations.GenerateQuotations(ctx, loaded.ID, "auto")
	require.NoError(t, err)
	require.Len(t, offers, 4)
	assert.Equal(t, 45.00, offers[0].MonthlyPremium)
	assert.Equal(t, 540.00, offers[0].AnnualPremium)

	chosen, err := f.quotations.SelectQuotation(ctx, loaded.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, offers[0].ID, chosen.ID)

	a, _, err := f.policies.RouteAssistant(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.AssistantPayment, a)

	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	issuer := mock_interfaces.NewMockIIssuerGateway(ctrl)
	gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(interfaces.PaymentLink{PreferenceID: "pref-1", URL: "https://mp/1"}, nil)
	gateway.EXPECT().GetPaymentStatus(gomock.Any(), gomock.Any()).Return(providerPayment("approved", loaded, chosen.MonthlyPremium), nil)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("ISS-9", nil, nil)

	payments := f.paymentUseCase(gateway)
	issuance := f.issuanceUseCase(issuer)

	_, err = payments.CreatePaymentLink(ctx, loaded.ID)
	require.NoError(t, err)
	_, err = payments.ConfirmPayment(ctx, loaded.ID, "mp-77")
	require.NoError(t, err)
	_, err = issuance.IssuePolicy(ctx, loaded.ID)
	require.NoError(t, err)

	ts, err := f.lifecycle.GetTransitions(ctx, loaded.ID)
	require.NoError(t, err)
	want := []struct{ from, to entities.PolicyState }{
		{entities.PolicyStateIntake, entities.PolicyStateLoaded},
		{entities.PolicyStateLoaded, entities.PolicyStateQuotation},
		{entities.PolicyStateQuotation, entities.PolicyStatePayment},
		{entities.PolicyStatePayment, entities.PolicyStateIssued},
		{entities.PolicyStateIssued, entities.PolicyStateCompleted},
	}
	require.Len(t, ts, len(want))
	for i, w := range want {
		assert.Equal(t, i+1, ts[i].Sequence)
		assert.Equal(t, w.from, ts[i].FromState)
		assert.Equal(t, w.to, ts[i].ToState)
	}

	a, final, err := f.policies.RouteAssistant(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.AssistantNone, a)
	assert.Equal(t, entities.PolicyStateCompleted, final.State)
	assert.Equal(t, 5, final.Version)

	t.Run("completed policy ignores mutations", func(t *testing.T) {
		p, err := f.policies.SetIntention(ctx, loaded.ID, "moto")
		require.NoError(t, err)
		assert.Equal(t, entities.InsuranceTypeAuto, p.InsuranceType)

		c, err := f.policies.SaveClientField(ctx, loaded.ID, "name", "Someone Else")
		require.NoError(t, err)
		assert.Equal(t, "Ana Pérez", c.Name)

		v, err := f.policies.SaveVehicleData(ctx, loaded.ID, VehicleInput{Plate: "ZZ000ZZ"})
		require.NoError(t, err)
		assert.Equal(t, "AB123CD", v.Plate)

		out, err := f.lifecycle.Transition(ctx, loaded.ID, entities.PolicyStateIntake, "", "")
		require.NoError(t, err)
		assert.False(t, out.Applied)
		assert.Equal(t, 5, out.Transition.Sequence)

		sel, err := f.quotations.SelectQuotation(ctx, loaded.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, chosen.ID, sel.ID)

		again, err := f.quotations.GenerateQuotations(ctx, loaded.ID, "auto")
		require.NoError(t, err)
		assert.Len(t, again, 4)

		after, err := f.lifecycle.GetTransitions(ctx, loaded.ID)
		require.NoError(t, err)
		assert.Len(t, after, 5)
	})
}
