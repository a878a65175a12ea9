package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"aseguraopen/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Field: "email", Message: "must contain @ and ."}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid policy id", usecase.ErrInvalidPolicyID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown state", usecase.ErrUnknownState, http.StatusBadRequest, "UNKNOWN_STATE"},
		{"unknown insurance type", fmt.Errorf("%w: %q", usecase.ErrUnknownInsuranceType, "boat"), http.StatusBadRequest, "UNKNOWN_INSURANCE_TYPE"},
		{"policy not found", usecase.ErrPolicyNotFound, http.StatusNotFound, "POLICY_NOT_FOUND"},
		{"client data not found", usecase.ErrClientDataNotFound, http.StatusNotFound, "CLIENT_DATA_NOT_FOUND"},
		{"payment not found", usecase.ErrPaymentNotFound, http.StatusNotFound, "PAYMENT_NOT_FOUND"},
		{"conflict", usecase.ErrConflict, http.StatusConflict, "CONFLICT"},
		{"invalid transition", fmt.Errorf("%w: intake -> payment", usecase.ErrInvalidTransition), http.StatusConflict, "INVALID_TRANSITION"},
		{"payment not approved", usecase.ErrPaymentNotApproved, http.StatusConflict, "PAYMENT_NOT_APPROVED"},
		{"policy not issued", usecase.ErrPolicyNotIssued, http.StatusConflict, "POLICY_NOT_ISSUED"},
		{"missing intention", usecase.ErrMissingIntention, http.StatusUnprocessableEntity, "MISSING_INTENTION"},
		{"missing client data", fmt.Errorf("%w: email", usecase.ErrMissingClientData), http.StatusUnprocessableEntity, "MISSING_CLIENT_DATA"},
		{"missing vehicle data", usecase.ErrMissingVehicleData, http.StatusUnprocessableEntity, "MISSING_VEHICLE_DATA"},
		{"invalid selection", usecase.ErrInvalidSelection, http.StatusUnprocessableEntity, "INVALID_SELECTION"},
		{"collaborator", fmt.Errorf("%w: timeout", usecase.ErrCollaboratorFailed), http.StatusBadGateway, "COLLABORATOR_FAILED"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapUseCaseError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, appErr.Code)
			}
		})
	}
}

func TestMapUseCaseError_ValidationCarriesField(t *testing.T) {
	appErr := mapUseCaseError(&usecase.ValidationError{Field: "phone", Message: "too short"})
	if appErr.Details["field"] != "phone" {
		t.Fatalf("expected field detail, got %v", appErr.Details)
	}
	if errInvalidRequest.Details != nil {
		t.Fatalf("shared error must not be mutated")
	}
}
