package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"aseguraopen/internal/adapter/http/handlers/mocks"
	"aseguraopen/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Listings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	policies := mocks.NewMockIPolicyUseCase(ctrl)
	quotations := mocks.NewMockIQuotationUseCase(ctrl)
	lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
	h := NewAdminHandler(policies, quotations, lifecycle)

	r := gin.New()
	r.GET("/v1/policies", h.ListPolicies)
	r.GET("/v1/admin/clients", h.ListClients)
	r.GET("/v1/admin/vehicles", h.ListVehicles)
	r.GET("/v1/admin/quotations", h.ListQuotations)
	r.GET("/v1/admin/transitions", h.ListTransitions)

	policies.EXPECT().ListPolicies(gomock.Any()).Return([]entities.Policy{{ID: "a"}, {ID: "b"}}, nil)
	policies.EXPECT().ListClients(gomock.Any()).Return([]entities.ClientData{{PolicyID: "a"}}, nil)
	policies.EXPECT().ListVehicles(gomock.Any()).Return(nil, errors.New("scan failed"))
	quotations.EXPECT().ListQuotations(gomock.Any()).Return([]entities.QuotationOffer{{ID: "q-1"}}, nil)
	lifecycle.EXPECT().ListTransitions(gomock.Any()).Return(nil, nil)

	cases := []struct {
		path   string
		status int
		items  int
	}{
		{"/v1/policies", http.StatusOK, 2},
		{"/v1/admin/clients", http.StatusOK, 1},
		{"/v1/admin/vehicles", http.StatusInternalServerError, -1},
		{"/v1/admin/quotations", http.StatusOK, 1},
		{"/v1/admin/transitions", http.StatusOK, 0},
	}
	for _, tc := range cases {
		w := doJSON(r, http.MethodGet, tc.path, "")
		if w.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, w.Code)
		}
		if tc.items < 0 {
			continue
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid body %s", tc.path, w.Body.String())
		}
		if len(body) != tc.items {
			t.Fatalf("%s: expected %d items, got %d", tc.path, tc.items, len(body))
		}
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := doJSON(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
