package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cotafacil/internal/domain/entities"
	"cotafacil/internal/domain/pricing"
	"cotafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound       = errors.New("quotation not found")
	ErrInvalidQuotationID      = errors.New("invalid quotation id")
	ErrInvalidQuotationTitle   = errors.New("invalid quotation title")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrQuotationNotEditable    = errors.New("quotation is not editable")
	ErrItemNotFound            = errors.New("line item not found")
)

// IQuotationUseCase exposes quotation lifecycle operations.
//
// Every item mutation recomputes the derived analysis (metrics, risk
// indicators, market comparisons) from scratch; nothing is patched
// incrementally.

type IQuotationUseCase interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error)
	Update(ctx context.Context, id string, update QuotationUpdate) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
	AddItem(ctx context.Context, quotationID string, item entities.LineItem) (entities.Quotation, error)
	UpdateItem(ctx context.Context, quotationID, itemID string, item entities.LineItem) (entities.Quotation, error)
	RemoveItem(ctx context.Context, quotationID, itemID string) (entities.Quotation, error)
}

// QuotationUpdate carries the mutable header fields of a quotation.
// Nil pointers leave the stored value untouched.
type QuotationUpdate struct {
	Title        *string
	Description  *string
	Notes        *string
	TargetMargin *float64
	ExpiresAt    *time.Time
}

type QuotationUseCase struct {
	repo       interfaces.IQuotationRepository
	marketData interfaces.IMarketDataProvider
	thresholds pricing.Thresholds
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, marketData interfaces.IMarketDataProvider, thresholds pricing.Thresholds) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, marketData: marketData, thresholds: thresholds}
}

func (u *QuotationUseCase) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	q.Title = strings.TrimSpace(q.Title)
	if q.Title == "" {
		return entities.Quotation{}, ErrInvalidQuotationTitle
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	if strings.TrimSpace(q.ReferenceID) == "" {
		q.ReferenceID = fmt.Sprintf("QT-%d", now.UnixMilli())
	}
	if q.Currency == "" {
		q.Currency = "BRL"
	}
	q.Status = entities.QuotationStatusDraft
	q.CreatedAt = now
	q.UpdatedAt = now
	q.SubmittedAt = nil

	if err := u.recompute(ctx, &q); err != nil {
		return entities.Quotation{}, err
	}
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.load(ctx, id)
}

func (u *QuotationUseCase) List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
	return u.repo.List(ctx, filter)
}

func (u *QuotationUseCase) Update(ctx context.Context, id string, update QuotationUpdate) (entities.Quotation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return entities.Quotation{}, ErrInvalidQuotationTitle
		}
		q.Title = title
	}
	if update.Description != nil {
		q.Description = *update.Description
	}
	if update.Notes != nil {
		q.Notes = *update.Notes
	}
	if update.TargetMargin != nil {
		q.TargetMargin = *update.TargetMargin
	}
	if update.ExpiresAt != nil {
		q.ExpiresAt = update.ExpiresAt
	}
	q.UpdatedAt = time.Now().UTC()

	return u.store(ctx, q)
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	q, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if !q.Editable() {
		return ErrQuotationNotEditable
	}
	return u.repo.Delete(ctx, q.ID)
}

func (u *QuotationUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.CanTransitionTo(status) {
		return entities.Quotation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, q.Status, status)
	}

	now := time.Now().UTC()
	if status == entities.QuotationStatusSubmitted && q.Status != entities.QuotationStatusSubmitted {
		q.SubmittedAt = &now
	}
	q.Status = status
	q.UpdatedAt = now

	return u.store(ctx, q)
}

func (u *QuotationUseCase) AddItem(ctx context.Context, quotationID string, item entities.LineItem) (entities.Quotation, error) {
	return u.mutateItems(ctx, quotationID, func(q *entities.Quotation) error {
		item.ID = uuid.NewString()
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return fmt.Errorf("%w: missing name", pricing.ErrInvalidLineItem)
		}
		if item.PriceSource == "" {
			item.PriceSource = entities.PriceSourceManual
		}
		q.Items = append(q.Items, item)
		return nil
	})
}

func (u *QuotationUseCase) UpdateItem(ctx context.Context, quotationID, itemID string, item entities.LineItem) (entities.Quotation, error) {
	return u.mutateItems(ctx, quotationID, func(q *entities.Quotation) error {
		for i := range q.Items {
			if q.Items[i].ID != itemID {
				continue
			}
			item.ID = itemID
			item.Name = strings.TrimSpace(item.Name)
			if item.Name == "" {
				item.Name = q.Items[i].Name
			}
			if item.PriceSource == "" {
				item.PriceSource = q.Items[i].PriceSource
			}
			q.Items[i] = item
			return nil
		}
		return ErrItemNotFound
	})
}

func (u *QuotationUseCase) RemoveItem(ctx context.Context, quotationID, itemID string) (entities.Quotation, error) {
	return u.mutateItems(ctx, quotationID, func(q *entities.Quotation) error {
		for i := range q.Items {
			if q.Items[i].ID == itemID {
				q.Items = append(q.Items[:i], q.Items[i+1:]...)
				return nil
			}
		}
		return ErrItemNotFound
	})
}

func (u *QuotationUseCase) mutateItems(ctx context.Context, quotationID string, mutate func(*entities.Quotation) error) (entities.Quotation, error) {
	q, err := u.load(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.Editable() {
		return entities.Quotation{}, ErrQuotationNotEditable
	}
	if err := mutate(&q); err != nil {
		return entities.Quotation{}, err
	}
	if err := u.recompute(ctx, &q); err != nil {
		return entities.Quotation{}, err
	}
	q.UpdatedAt = time.Now().UTC()
	return u.store(ctx, q)
}

// store writes the quotation back. The repository reports a quotation
// deleted between load and write as a zero value, which surfaces here
// as not-found rather than an empty success.
func (u *QuotationUseCase) store(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

// recompute regenerates metrics, comparisons and risk indicators from
// the current item list. Missing market reference data for an item is a
// skip, never a failure; a provider outage only costs comparisons.
func (u *QuotationUseCase) recompute(ctx context.Context, q *entities.Quotation) error {
	metrics, err := pricing.Analyze(q.Items)
	if err != nil {
		return err
	}
	q.Metrics = metrics

	comparisons := []entities.PriceComparison{}
	for i := range q.Items {
		avg := q.Items[i].MarketAveragePrice
		if avg <= 0 && u.marketData != nil {
			resolved, err := u.marketData.AverageUnitPrice(ctx, q.Items[i].Name)
			if err != nil {
				log.Printf("[quotation][usecase] market data lookup failed item=%q err=%v", q.Items[i].Name, err)
			} else {
				avg = resolved
				q.Items[i].MarketAveragePrice = resolved
			}
		}
		if c := pricing.CompareToMarket(q.Items[i], avg); c != nil {
			comparisons = append(comparisons, *c)
		}
	}
	q.PriceComparisons = comparisons
	q.RiskIndicators = pricing.EvaluateRisk(metrics, comparisons, u.thresholds)
	return nil
}

func (u *QuotationUseCase) load(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
