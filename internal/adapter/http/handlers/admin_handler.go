package handlers

import (
	"net/http"

	response "aseguraopen/internal/adapter/http/dto/response"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back-office listings across all policies.

type AdminHandler struct {
	policies   usecase.IPolicyUseCase
	quotations usecase.IQuotationUseCase
	lifecycle  usecase.ILifecycleUseCase
}

func NewAdminHandler(p usecase.IPolicyUseCase, q usecase.IQuotationUseCase, l usecase.ILifecycleUseCase) *AdminHandler {
	return &AdminHandler{policies: p, quotations: q, lifecycle: l}
}

func (h *AdminHandler) ListPolicies(c *gin.Context) {
	ps, err := h.policies.ListPolicies(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(ps))
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	cs, err := h.policies.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(cs))
}

func (h *AdminHandler) ListVehicles(c *gin.Context) {
	vs, err := h.policies.ListVehicles(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vs))
}

// ListQuotations returns offers of every policy; Index is omitted since
// positions only make sense per policy.
func (h *AdminHandler) ListQuotations(c *gin.Context) {
	offers, err := h.quotations.ListQuotations(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	out := make([]response.QuotationResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, response.FromQuotation(o, 0))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListTransitions(c *gin.Context) {
	ts, err := h.lifecycle.ListTransitions(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(ts))
}
