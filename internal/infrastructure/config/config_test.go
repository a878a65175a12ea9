package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "DYNAMODB_ENDPOINT", "MERCADOPAGO_ACCESS_TOKEN",
		"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "COLLABORATOR_TIMEOUT", "POLICIES_TABLE", "DYNAMODB_CREATE_TABLES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDynamoDB, cfg.StoreDriver)
	assert.Equal(t, "policies", cfg.Tables.Policies)
	assert.Equal(t, "state_transitions", cfg.Tables.Transitions)
	assert.True(t, cfg.PaymentGatewayMock, "no token means mock payments")
	assert.False(t, cfg.DynamoDB.CreateTables)
	assert.Equal(t, 10*time.Second, cfg.CollaboratorTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "false")
	t.Setenv("COLLABORATOR_TIMEOUT", "3s")
	t.Setenv("ISSUER_API_URL", "http://issuer.local/")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.True(t, cfg.DynamoDB.CreateTables, "local endpoint creates tables by default")
	assert.False(t, cfg.PaymentGatewayMock)
	assert.Equal(t, 3*time.Second, cfg.CollaboratorTimeout)
	assert.Equal(t, "http://issuer.local", cfg.IssuerAPIURL)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store", map[string]string{"STORE_DRIVER": "postgres"}},
		{"bad timeout", map[string]string{"COLLABORATOR_TIMEOUT": "soon"}},
		{"bad mock flag", map[string]string{"PAYMENT_GATEWAY_MOCK": "maybe"}},
		{"real gateway without token", map[string]string{"PAYMENT_GATEWAY_MOCK": "false", "MERCADOPAGO_ACCESS_TOKEN": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORE_DRIVER", "")
			t.Setenv("MERCADOPAGO_MOCK", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
