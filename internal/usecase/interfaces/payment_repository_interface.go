package interfaces

import (
	"context"
	"encoding/json"

	"aseguraopen/internal/domain/entities"
)

// IPolicyPaymentRepository abstracts persistence for PolicyPayment.

type IPolicyPaymentRepository interface {
	Create(ctx context.Context, p entities.PolicyPayment) (entities.PolicyPayment, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.PolicyPayment, error)
	UpdateStatus(ctx context.Context, policyID, id string, status entities.PaymentStatus, providerPaymentID string, payload json.RawMessage) (entities.PolicyPayment, error)
}

// IPolicyIssuanceRepository abstracts persistence for PolicyIssuance.

type IPolicyIssuanceRepository interface {
	Create(ctx context.Context, i entities.PolicyIssuance) (entities.PolicyIssuance, error)
	GetByPolicyID(ctx context.Context, policyID string) (entities.PolicyIssuance, error)
}
