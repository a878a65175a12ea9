package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"aseguraopen/internal/adapter/http/handlers/mocks"
	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPolicyPaymentUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, zap.NewNop())

	r := gin.New()
	r.POST("/v1/policies/:policy_id/payments", h.CreatePaymentLink)
	r.GET("/v1/policies/:policy_id/payments", h.ListPayments)
	r.POST("/v1/policies/:policy_id/payments/confirm", h.ConfirmPayment)
	return r, uc
}

func TestPaymentHandler_CreatePaymentLink(t *testing.T) {
	t.Run("gateway failure", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreatePaymentLink(gomock.Any(), "pol-1").
			Return(entities.PolicyPayment{}, fmt.Errorf("%w: %v", usecase.ErrCollaboratorFailed, errors.New("timeout")))

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/payments", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreatePaymentLink(gomock.Any(), "pol-1").Return(entities.PolicyPayment{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/payments", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreatePaymentLink(gomock.Any(), "pol-1").Return(entities.PolicyPayment{
			ID: "pay-1", PolicyID: "pol-1", QuotationID: "q-1", Amount: 45, PaymentLink: "https://mp/checkout", Status: entities.PaymentStatusPending,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/payments", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_link"] != "https://mp/checkout" || body["payment_status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/payments/confirm", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "pol-1", "123").
			Return(entities.PolicyPayment{ID: "pay-1", Status: entities.PaymentStatusRejected}, usecase.ErrPaymentNotApproved)

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/payments/confirm", `{"payment_id":"123"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "PAYMENT_NOT_APPROVED" || body.Details["payment_status"] != "rejected" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("approved", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "pol-1", "123").
			Return(entities.PolicyPayment{ID: "pay-1", Status: entities.PaymentStatusApproved, ProviderPaymentID: "123"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/payments/confirm", `{"payment_id":"123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().ListPayments(gomock.Any(), "pol-1").Return(nil, usecase.ErrPolicyNotFound)

	w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/payments", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
