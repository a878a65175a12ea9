package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aseguraopen/internal/adapter/http/handlers/mocks"
	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/domain/lifecycle"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPolicyRouter(t *testing.T) (*gin.Engine, *mocks.MockIPolicyUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPolicyUseCase(ctrl)
	h := NewPolicyHandler(uc)

	r := gin.New()
	r.POST("/v1/policies", h.CreatePolicy)
	r.GET("/v1/policies/:policy_id", h.GetPolicy)
	r.PUT("/v1/policies/:policy_id/intention", h.SetIntention)
	r.PATCH("/v1/policies/:policy_id/client-data", h.SaveClientField)
	r.GET("/v1/policies/:policy_id/client-data", h.GetClientData)
	r.PUT("/v1/policies/:policy_id/vehicle-data", h.SaveVehicleData)
	r.GET("/v1/policies/:policy_id/vehicle-data", h.GetVehicleData)
	r.GET("/v1/policies/:policy_id/assistant", h.GetAssistant)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPolicyHandler_CreatePolicy(t *testing.T) {
	r, uc := newPolicyRouter(t)
	now := time.Now().UTC()
	uc.EXPECT().CreatePolicy(gomock.Any()).Return(entities.Policy{ID: "pol-1", State: entities.PolicyStateIntake, CreatedAt: now, UpdatedAt: now}, nil)

	w := doJSON(r, http.MethodPost, "/v1/policies", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "pol-1" || body["state"] != "intake" || body["assistant"] != "IntakeAgent" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPolicyHandler_GetPolicy(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().GetPolicy(gomock.Any(), "missing").Return(entities.Policy{}, usecase.ErrPolicyNotFound)

		w := doJSON(r, http.MethodGet, "/v1/policies/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().GetPolicy(gomock.Any(), "pol-1").Return(entities.Policy{ID: "pol-1", State: entities.PolicyStatePayment, Version: 3}, nil)

		w := doJSON(r, http.MethodGet, "/v1/policies/pol-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPolicyHandler_SetIntention(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPolicyRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/policies/pol-1/intention", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("changed after intake", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().SetIntention(gomock.Any(), "pol-1", "moto").Return(entities.Policy{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPut, "/v1/policies/pol-1/intention", `{"insurance_type":"moto"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().SetIntention(gomock.Any(), "pol-1", "auto").Return(entities.Policy{ID: "pol-1", State: entities.PolicyStateIntake, Intention: true, InsuranceType: entities.InsuranceTypeAuto}, nil)

		w := doJSON(r, http.MethodPut, "/v1/policies/pol-1/intention", `{"insurance_type":"auto"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPolicyHandler_SaveClientField(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().SaveClientField(gomock.Any(), "pol-1", "email", "nope").
			Return(entities.ClientData{}, &usecase.ValidationError{Field: "email", Message: "must contain @ and ."})

		w := doJSON(r, http.MethodPatch, "/v1/policies/pol-1/client-data", `{"field":"email","value":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().SaveClientField(gomock.Any(), "pol-1", "name", "Ana").
			Return(entities.ClientData{PolicyID: "pol-1", Name: "Ana"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/policies/pol-1/client-data", `{"field":"name","value":"Ana"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		missing, _ := body["missing_fields"].([]any)
		if len(missing) != 2 {
			t.Fatalf("expected email and phone missing, got %s", w.Body.String())
		}
	})
}

func TestPolicyHandler_GetClientData(t *testing.T) {
	r, uc := newPolicyRouter(t)
	uc.EXPECT().GetClientData(gomock.Any(), "pol-1").Return(entities.ClientData{}, usecase.ErrClientDataNotFound)

	w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/client-data", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPolicyHandler_SaveVehicleData(t *testing.T) {
	t.Run("missing plate", func(t *testing.T) {
		r, _ := newPolicyRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/policies/pol-1/vehicle-data", `{"make":"Toyota"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPolicyRouter(t)
		uc.EXPECT().SaveVehicleData(gomock.Any(), "pol-1", usecase.VehicleInput{Plate: "ABC123", Make: "Toyota", Model: "Corolla", Year: 2020}).
			Return(entities.VehicleData{ID: "veh-1", PolicyID: "pol-1", Plate: "ABC123", Make: "Toyota", Model: "Corolla", Year: 2020}, nil)

		w := doJSON(r, http.MethodPut, "/v1/policies/pol-1/vehicle-data", `{"plate":"ABC123","make":"Toyota","model":"Corolla","year":2020}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPolicyHandler_GetVehicleData(t *testing.T) {
	r, uc := newPolicyRouter(t)
	uc.EXPECT().GetVehicleData(gomock.Any(), "pol-1").Return(entities.VehicleData{}, usecase.ErrMissingVehicleData)

	w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/vehicle-data", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPolicyHandler_GetAssistant(t *testing.T) {
	r, uc := newPolicyRouter(t)
	uc.EXPECT().RouteAssistant(gomock.Any(), "pol-1").
		Return(lifecycle.AssistantQuotation, entities.Policy{ID: "pol-1", State: entities.PolicyStateLoaded}, nil)

	w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/assistant", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["assistant"] != "QuotationAgent" || body["state"] != "loaded" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
