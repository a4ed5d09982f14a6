package interfaces

import (
	"context"

	"cotafacil/internal/domain/entities"
)

// QuotationFilter narrows List results. Zero values mean "no filter".
type QuotationFilter struct {
	Status     entities.QuotationStatus
	CustomerID string
	Limit      int32
}

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// The quotation-service must be able to:
//   - create a draft when a seller starts a new quotation
//   - load and save the full aggregate (items and derived analysis are
//     embedded; there is no partial item persistence)
//   - delete drafts that were abandoned

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context, filter QuotationFilter) ([]entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}
