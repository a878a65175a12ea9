package handlers

import (
	"errors"
	"net/http"

	response "aseguraopen/internal/adapter/http/dto/response"
	"aseguraopen/internal/usecase"
	"aseguraopen/pkg"

	"github.com/gin-gonic/gin"
)

type IssuanceHandler struct {
	usecase usecase.IIssuanceUseCase
}

func NewIssuanceHandler(uc usecase.IIssuanceUseCase) *IssuanceHandler {
	return &IssuanceHandler{usecase: uc}
}

func (h *IssuanceHandler) IssuePolicy(c *gin.Context) {
	i, err := h.usecase.IssuePolicy(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIssuance(i))
}

func (h *IssuanceHandler) GetIssuance(c *gin.Context) {
	i, err := h.usecase.GetIssuance(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPolicyNotIssued) {
			writeError(c, pkg.NewDomainErrorSimple("ISSUANCE_NOT_FOUND", "Issuance not found", http.StatusNotFound))
			return
		}
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIssuance(i))
}
