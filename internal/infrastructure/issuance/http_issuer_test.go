package issuance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"aseguraopen/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func samplePayload() interfaces.IssuancePayload {
	return interfaces.IssuancePayload{
		PolicyID: "p1",
		Client:   interfaces.IssuanceClient{Name: "Ana Perez", Email: "ana@example.com", Phone: "+54 11 5555 1234"},
		Vehicle:  interfaces.IssuanceVehicle{Make: "Toyota", Model: "Corolla", Year: 2020, Plate: "AB123CD"},
		Insurance: interfaces.IssuanceInsurance{
			Type: "auto", CoverageType: "Responsabilidad Civil", CoverageLevel: "Básica",
			MonthlyPremium: 45, AnnualPremium: 540, Deductible: 500,
		},
	}
}

func TestHTTPIssuer_MockMode(t *testing.T) {
	g := NewHTTPIssuer(Options{}, zap.NewNop())

	ref, raw, err := g.Issue(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "MOCK-"))
	assert.Contains(t, string(raw), `"policy_id":"p1"`)
}

func TestHTTPIssuer_PostsPayload(t *testing.T) {
	var got interfaces.IssuancePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/policies", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"reference":"POL-0001"}`))
	}))
	defer srv.Close()

	g := NewHTTPIssuer(Options{BaseURL: srv.URL, APIKey: "secret"}, zap.NewNop())
	ref, raw, err := g.Issue(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "POL-0001", ref)
	assert.JSONEq(t, `{"reference":"POL-0001"}`, string(raw))
	assert.Equal(t, samplePayload(), got)
}

func TestHTTPIssuer_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"policy_number":"P-9"}`))
	}))
	defer srv.Close()

	g := NewHTTPIssuer(Options{BaseURL: srv.URL}, zap.NewNop())
	ref, _, err := g.Issue(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "P-9", ref)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHTTPIssuer_ClientErrorIsFinal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"plate"}`))
	}))
	defer srv.Close()

	g := NewHTTPIssuer(Options{BaseURL: srv.URL}, zap.NewNop())
	_, _, err := g.Issue(context.Background(), samplePayload())
	assert.ErrorIs(t, err, ErrIssuerRejected)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
