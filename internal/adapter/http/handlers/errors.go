package handlers

import (
	"errors"
	"net/http"

	"aseguraopen/internal/usecase"
	"aseguraopen/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapUseCaseError translates use case failures into their HTTP form.
// Validation failures are 400, absent records 404, state and concurrency
// conflicts 409 and unmet preconditions 422.
func mapUseCaseError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid "+verr.Field+": "+verr.Message, http.StatusBadRequest).
			WithDetail("field", verr.Field)
	case errors.Is(err, usecase.ErrInvalidPolicyID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrUnknownState):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATE", "Unknown policy state", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownInsuranceType):
		return pkg.NewDomainErrorSimple("UNKNOWN_INSURANCE_TYPE", "Unknown insurance type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientDataNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_DATA_NOT_FOUND", "Client data not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Policy was modified concurrently, retry", http.StatusConflict).
			WithDetail("retryable", "true")
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Invalid state transition", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyNotIssued):
		return pkg.NewDomainErrorSimple("POLICY_NOT_ISSUED", "Policy issuance not recorded", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingIntention):
		return pkg.NewDomainErrorSimple("MISSING_INTENTION", "Insurance intention not set", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingClientData):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_DATA", "Client data incomplete", http.StatusUnprocessableEntity).
			WithDetail("reason", err.Error())
	case errors.Is(err, usecase.ErrMissingVehicleData):
		return pkg.NewDomainErrorSimple("MISSING_VEHICLE_DATA", "Vehicle data missing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSelection):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Invalid quotation selection", http.StatusUnprocessableEntity).
			WithDetail("reason", err.Error())
	case errors.Is(err, usecase.ErrCollaboratorFailed):
		return pkg.NewDomainError("COLLABORATOR_FAILED", "External service unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
