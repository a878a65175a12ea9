package handlers

import (
	"net/http"
	"testing"
	"time"

	"aseguraopen/internal/adapter/http/handlers/mocks"
	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newIssuanceRouter(t *testing.T) (*gin.Engine, *mocks.MockIIssuanceUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIIssuanceUseCase(ctrl)
	h := NewIssuanceHandler(uc)

	r := gin.New()
	r.POST("/v1/policies/:policy_id/issuance", h.IssuePolicy)
	r.GET("/v1/policies/:policy_id/issuance", h.GetIssuance)
	return r, uc
}

func TestIssuanceHandler_IssuePolicy(t *testing.T) {
	t.Run("not issued yet", func(t *testing.T) {
		r, uc := newIssuanceRouter(t)
		uc.EXPECT().IssuePolicy(gomock.Any(), "pol-1").Return(entities.PolicyIssuance{}, usecase.ErrInvalidTransition)

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/issuance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newIssuanceRouter(t)
		uc.EXPECT().IssuePolicy(gomock.Any(), "pol-1").
			Return(entities.PolicyIssuance{PolicyID: "pol-1", ExternalReference: "ISS-1", SentTo: "ana@example.com", IssuedAt: time.Now().UTC()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/policies/pol-1/issuance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestIssuanceHandler_GetIssuance(t *testing.T) {
	r, uc := newIssuanceRouter(t)
	uc.EXPECT().GetIssuance(gomock.Any(), "pol-1").Return(entities.PolicyIssuance{}, usecase.ErrPolicyNotIssued)

	w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/issuance", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
