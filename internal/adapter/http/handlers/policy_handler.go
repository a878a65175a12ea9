package handlers

import (
	"errors"
	"net/http"

	request "aseguraopen/internal/adapter/http/dto/request"
	response "aseguraopen/internal/adapter/http/dto/response"
	"aseguraopen/internal/usecase"
	"aseguraopen/pkg"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles policy creation and intake data collection.

type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	p, err := h.usecase.CreatePolicy(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPolicy(p))
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	p, err := h.usecase.GetPolicy(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(p))
}

func (h *PolicyHandler) SetIntention(c *gin.Context) {
	var payload request.IntentionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.SetIntention(c.Request.Context(), c.Param("policy_id"), payload.InsuranceType)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(p))
}

func (h *PolicyHandler) SaveClientField(c *gin.Context) {
	var payload request.ClientFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	client, err := h.usecase.SaveClientField(c.Request.Context(), c.Param("policy_id"), payload.Field, payload.Value)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientData(client))
}

func (h *PolicyHandler) GetClientData(c *gin.Context) {
	client, err := h.usecase.GetClientData(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientData(client))
}

func (h *PolicyHandler) SaveVehicleData(c *gin.Context) {
	var payload request.VehicleDataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	v, err := h.usecase.SaveVehicleData(c.Request.Context(), c.Param("policy_id"), usecase.VehicleInput{
		Plate:              payload.Plate,
		Make:               payload.Make,
		Model:              payload.Model,
		Year:               payload.Year,
		EngineNumber:       payload.EngineNumber,
		ChassisNumber:      payload.ChassisNumber,
		EngineDisplacement: payload.EngineDisplacement,
	})
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicleData(v))
}

func (h *PolicyHandler) GetVehicleData(c *gin.Context) {
	v, err := h.usecase.GetVehicleData(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrMissingVehicleData) {
			writeError(c, pkg.NewDomainErrorSimple("VEHICLE_DATA_NOT_FOUND", "Vehicle data not found", http.StatusNotFound))
			return
		}
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicleData(v))
}

// GetAssistant tells the conversation layer which assistant owns the policy.
func (h *PolicyHandler) GetAssistant(c *gin.Context) {
	a, p, err := h.usecase.RouteAssistant(c.Request.Context(), c.Param("policy_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.AssistantResponse{PolicyID: p.ID, State: string(p.State), Assistant: string(a)})
}
