package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/infrastructure/locking"
	"aseguraopen/internal/usecase/interfaces"
	mock_interfaces "aseguraopen/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// issuedPolicy pays for the cheapest offer through an approving gateway.
func (f *fixture) issuedPolicy(t *testing.T) entities.Policy {
	t.Helper()
	ctx := context.Background()
	p, offer := f.paymentPolicy(t)
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(interfaces.PaymentLink{PreferenceID: "pref-1", URL: "https://mp/1"}, nil)
	gateway.EXPECT().GetPaymentStatus(gomock.Any(), gomock.Any()).Return(providerPayment("approved", p, offer.MonthlyPremium), nil)

	uc := f.paymentUseCase(gateway)
	if _, err := uc.CreatePaymentLink(ctx, p.ID); err != nil {
		t.Fatalf("payment link: %v", err)
	}
	if _, err := uc.ConfirmPayment(ctx, p.ID, "pay-1"); err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	got, err := f.policies.GetPolicy(ctx, p.ID)
	if err != nil {
		t.Fatalf("get policy: %v", err)
	}
	return got
}

func (f *fixture) issuanceUseCase(issuer interfaces.IIssuerGateway) *IssuanceUseCase {
	return NewIssuanceUseCase(f.repos, f.lifecycle, issuer, locking.NewLocalLocker(), time.Second, nil, f.lifecycle.log)
}

func TestIssuanceUseCase_IssuePolicy_WrongState(t *testing.T) {
	f := newFixture(t)
	p, _ := f.paymentPolicy(t)

	_, err := f.issuanceUseCase(nil).IssuePolicy(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestIssuanceUseCase_IssuePolicy_IssuerFailure(t *testing.T) {
	f := newFixture(t)
	p := f.issuedPolicy(t)
	ctrl := gomock.NewController(t)
	issuer := mock_interfaces.NewMockIIssuerGateway(ctrl)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("", nil, errors.New("issuer down"))

	uc := f.issuanceUseCase(issuer)
	_, err := uc.IssuePolicy(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrCollaboratorFailed)

	_, err = uc.GetIssuance(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrPolicyNotIssued)

	got, err := f.policies.GetPolicy(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStateIssued, got.State)
}

func TestIssuanceUseCase_IssuePolicy_Completes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.issuedPolicy(t)
	ctrl := gomock.NewController(t)
	issuer := mock_interfaces.NewMockIIssuerGateway(ctrl)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload interfaces.IssuancePayload) (string, json.RawMessage, error) {
			assert.Equal(t, p.ID, payload.PolicyID)
			assert.Equal(t, "Ana Pérez", payload.Client.Name)
			assert.Equal(t, "AB123CD", payload.Vehicle.Plate)
			assert.Equal(t, "auto", payload.Insurance.Type)
			assert.Equal(t, 45.00, payload.Insurance.MonthlyPremium)
			assert.Equal(t, 540.00, payload.Insurance.AnnualPremium)
			return "ISS-42", json.RawMessage(`{"reference":"ISS-42"}`), nil
		}).Times(1)

	uc := f.issuanceUseCase(issuer)
	issuance, err := uc.IssuePolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ISS-42", issuance.ExternalReference)
	assert.Equal(t, "ana@example.com", issuance.SentTo)

	got, err := f.policies.GetPolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStateCompleted, got.State)

	again, err := uc.IssuePolicy(ctx, p.ID)
	require.NoError(t, err, "completed policies return the stored receipt")
	assert.Equal(t, issuance.ExternalReference, again.ExternalReference)

	stored, err := uc.GetIssuance(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ISS-42", stored.ExternalReference)
}

func TestIssuanceUseCase_IssuePolicy_RetriesPendingTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.issuedPolicy(t)
	_, err := f.repos.Issuances.Create(ctx, entities.PolicyIssuance{PolicyID: p.ID, ExternalReference: "ISS-1", IssuedAt: time.Now().UTC()})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	issuer := mock_interfaces.NewMockIIssuerGateway(ctrl)

	issuance, err := f.issuanceUseCase(issuer).IssuePolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ISS-1", issuance.ExternalReference, "receipt on record is not transmitted again")

	got, err := f.policies.GetPolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStateCompleted, got.State)
}

func TestIssuanceUseCase_IssuePolicy_ConcurrentCallersTransmitOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.issuedPolicy(t)
	ctrl := gomock.NewController(t)
	issuer := mock_interfaces.NewMockIIssuerGateway(ctrl)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interfaces.IssuancePayload) (string, json.RawMessage, error) {
			time.Sleep(20 * time.Millisecond)
			return "ISS-7", nil, nil
		}).Times(1)

	uc := f.issuanceUseCase(issuer)
	const callers = 4
	var wg sync.WaitGroup
	refs := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := uc.IssuePolicy(ctx, p.ID)
			assert.NoError(t, err)
			refs[i] = got.ExternalReference
		}(i)
	}
	wg.Wait()

	for _, ref := range refs {
		assert.Equal(t, "ISS-7", ref)
	}
	got, err := f.policies.GetPolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStateCompleted, got.State)

	ts, err := f.lifecycle.GetTransitions(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, ts, 5)
}

func TestIssuanceUseCase_IssuePolicy_RecordedElsewhereIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.issuedPolicy(t)
	ctrl := gomock.NewController(t)
	issuer := mock_interfaces.NewMockIIssuerGateway(ctrl)
	issuances := mock_interfaces.NewMockIPolicyIssuanceRepository(ctrl)

	issuances.EXPECT().GetByPolicyID(gomock.Any(), p.ID).Return(entities.PolicyIssuance{}, nil).Times(2)
	issuer.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("ISS-3", nil, nil)
	issuances.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(entities.PolicyIssuance{}, interfaces.ErrConditionFailed)

	repos := f.repos
	repos.Issuances = issuances
	uc := NewIssuanceUseCase(repos, f.lifecycle, issuer, locking.NewLocalLocker(), time.Second, nil, f.lifecycle.log)

	_, err := uc.IssuePolicy(ctx, p.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.True(t, IsRetryable(err))

	got, err := f.policies.GetPolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PolicyStateIssued, got.State)
}
