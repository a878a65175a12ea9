package handlers

import (
	"net/http"

	request "aseguraopen/internal/adapter/http/dto/request"
	response "aseguraopen/internal/adapter/http/dto/response"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) GenerateQuotations(c *gin.Context) {
	var payload request.GenerateQuotationsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	offers, err := h.usecase.GenerateQuotations(c.Request.Context(), c.Param("policy_id"), payload.InsuranceType)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(offers))
}

func (h *QuotationHandler) GetQuotations(c *gin.Context) {
	offers, err := h.usecase.GetQuotations(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(offers))
}

func (h *QuotationHandler) SelectQuotation(c *gin.Context) {
	var payload request.SelectQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	offer, err := h.usecase.SelectQuotation(c.Request.Context(), c.Param("policy_id"), payload.Index)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(offer, payload.Index))
}
