package payments

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"aseguraopen/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(Options{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMockGateway_CreatePaymentLink(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true}, zap.NewNop())
	require.NoError(t, err)

	link, err := g.CreatePaymentLink(context.Background(), interfaces.PaymentLinkRequest{
		PolicyID: "p1", QuotationID: "q1", Title: "Seguro auto", Amount: 45,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.PreferenceID, "mock-pref-"))
	assert.Equal(t, mockCheckoutURL+link.PreferenceID, link.URL)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(link.Raw, &raw))
	assert.Equal(t, "p1", raw["external_reference"])
}

func TestMockGateway_GetPaymentStatusApproves(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true}, zap.NewNop())
	require.NoError(t, err)

	status, err := g.GetPaymentStatus(context.Background(), interfaces.PaymentStatusQuery{
		ProviderPaymentID: "123", ExternalReference: "p1", Amount: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", status.Status)
	assert.Equal(t, "p1", status.ExternalReference)
	assert.Equal(t, 45.0, status.Amount)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(status.Raw, &raw))
	assert.Equal(t, "123", raw["id"])
	assert.Equal(t, "p1", raw["external_reference"])
}

func TestUnconfiguredGateway(t *testing.T) {
	g := &MercadoPagoGateway{log: zap.NewNop()}

	_, err := g.CreatePaymentLink(context.Background(), interfaces.PaymentLinkRequest{})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	_, err = g.GetPaymentStatus(context.Background(), interfaces.PaymentStatusQuery{ProviderPaymentID: "1"})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
