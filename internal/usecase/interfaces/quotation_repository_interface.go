package interfaces

import (
	"context"

	"aseguraopen/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for QuotationOffer.
//
// CreateBatch writes every offer or none. ListByPolicyID makes no ordering
// promise; callers sort.

type IQuotationRepository interface {
	CreateBatch(ctx context.Context, offers []entities.QuotationOffer) error
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.QuotationOffer, error)
	List(ctx context.Context) ([]entities.QuotationOffer, error)
}

// ITemplateRepository abstracts the static template table.
//
// Seed inserts the rows whose ID is not stored yet and reports how many were
// inserted.

type ITemplateRepository interface {
	Seed(ctx context.Context, templates []entities.QuotationTemplate) (int, error)
	ListByInsuranceType(ctx context.Context, t entities.InsuranceType) ([]entities.QuotationTemplate, error)
}
