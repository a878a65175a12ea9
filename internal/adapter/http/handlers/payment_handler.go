package handlers

import (
	"errors"
	"net/http"

	request "aseguraopen/internal/adapter/http/dto/request"
	response "aseguraopen/internal/adapter/http/dto/response"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles payment links and payment confirmation.

type PaymentHandler struct {
	usecase usecase.IPolicyPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPolicyPaymentUseCase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: log.Named("payment")}
}

func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	policyID := c.Param("policy_id")
	h.log.Debug("[payment][handler] create link start", zap.String("policy_id", policyID))

	p, err := h.usecase.CreatePaymentLink(c.Request.Context(), policyID)
	if err != nil {
		h.log.Info("[payment][handler] create link failed", zap.String("policy_id", policyID), zap.Error(err))
		writeError(c, mapUseCaseError(err))
		return
	}
	h.log.Info("[payment][handler] create link success", zap.String("policy_id", policyID), zap.String("payment_id", p.ID))
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// ConfirmPayment reports a non-approved provider outcome as 409 with the
// updated payment in the error details.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	policyID := c.Param("policy_id")
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.ConfirmPayment(c.Request.Context(), policyID, payload.PaymentID)
	if err != nil {
		h.log.Info("[payment][handler] confirm failed", zap.String("policy_id", policyID), zap.Error(err))
		appErr := mapUseCaseError(err)
		if errors.Is(err, usecase.ErrPaymentNotApproved) && p.ID != "" {
			appErr = appErr.WithDetail("payment_id", p.ID).WithDetail("payment_status", string(p.Status))
		}
		writeError(c, appErr)
		return
	}
	h.log.Info("[payment][handler] confirm success", zap.String("policy_id", policyID), zap.String("payment_id", p.ID))
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	ps, err := h.usecase.ListPayments(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(ps))
}
