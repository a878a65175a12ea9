package handlers

import (
	"net/http"

	request "aseguraopen/internal/adapter/http/dto/request"
	response "aseguraopen/internal/adapter/http/dto/response"
	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LifecycleHandler exposes explicit state transitions and the audit trail.

type LifecycleHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewLifecycleHandler(uc usecase.ILifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc}
}

// Transition answers 200 for no-ops (applied=false) and 201 when a new
// audit record was written.
func (h *LifecycleHandler) Transition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	out, err := h.usecase.Transition(c.Request.Context(), c.Param("policy_id"),
		entities.PolicyState(payload.ToState), payload.ResolveReason(), payload.Actor)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	status := http.StatusOK
	if out.Applied {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromTransitionOutcome(out))
}

func (h *LifecycleHandler) GetTransitions(c *gin.Context) {
	ts, err := h.usecase.GetTransitions(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(ts))
}
