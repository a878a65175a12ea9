package routes

import (
	"aseguraopen/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicies = "/policies"
	PathAdmin    = "/admin"
)

func addPolicyRoutes(rg *gin.RouterGroup, h Handlers) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("", h.Policies.CreatePolicy)
		policies.GET("", h.Admin.ListPolicies)
		policies.GET("/:policy_id", h.Policies.GetPolicy)
		policies.GET("/:policy_id/assistant", h.Policies.GetAssistant)

		// Intake
		policies.PUT("/:policy_id/intention", h.Policies.SetIntention)
		policies.PATCH("/:policy_id/client-data", h.Policies.SaveClientField)
		policies.GET("/:policy_id/client-data", h.Policies.GetClientData)
		policies.PUT("/:policy_id/vehicle-data", h.Policies.SaveVehicleData)
		policies.GET("/:policy_id/vehicle-data", h.Policies.GetVehicleData)

		policies.POST("/:policy_id/quotations", h.Quotations.GenerateQuotations)
		policies.GET("/:policy_id/quotations", h.Quotations.GetQuotations)
		policies.POST("/:policy_id/quotations/select", h.Quotations.SelectQuotation)

		policies.POST("/:policy_id/transitions", h.Lifecycle.Transition)
		policies.GET("/:policy_id/transitions", h.Lifecycle.GetTransitions)

		policies.POST("/:policy_id/payments", h.Payments.CreatePaymentLink)
		policies.GET("/:policy_id/payments", h.Payments.ListPayments)
		policies.POST("/:policy_id/payments/confirm", h.Payments.ConfirmPayment)

		policies.POST("/:policy_id/issuance", h.Issuance.IssuePolicy)
		policies.GET("/:policy_id/issuance", h.Issuance.GetIssuance)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/clients", h.ListClients)
		admin.GET("/vehicles", h.ListVehicles)
		admin.GET("/quotations", h.ListQuotations)
		admin.GET("/transitions", h.ListTransitions)
	}
}
