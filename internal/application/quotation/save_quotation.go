package quotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suryatek/quotation-api/internal/application/dto"
	"github.com/suryatek/quotation-api/internal/domain"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/domain/repository"
	"github.com/suryatek/quotation-api/internal/domain/tax"
	"github.com/suryatek/quotation-api/pkg/config"
	"github.com/suryatek/quotation-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// SaveQuotationUseCase creates and updates quotations: parses and validates
// the submitted items, recomputes every derived amount from the base fields,
// merges proposal overrides against the configured template and persists the
// whole set atomically.
type SaveQuotationUseCase struct {
	txRunner TxRunner
	repo     repository.QuotationRepository // pool-bound, reads outside the tx
	template []config.ProposalTemplateRow
	log      *logger.Logger
}

// NewSaveQuotationUseCase wires the use case.
func NewSaveQuotationUseCase(
	txRunner TxRunner,
	repo repository.QuotationRepository,
	template []config.ProposalTemplateRow,
	log *logger.Logger,
) *SaveQuotationUseCase {
	return &SaveQuotationUseCase{txRunner: txRunner, repo: repo, template: template, log: log}
}

// Create validates the request, computes totals and persists a new quotation.
// The quote number Q-<year>-<0-padded id> is assigned inside the same
// transaction, right after the header insert hands out the id.
func (uc *SaveQuotationUseCase) Create(ctx context.Context, in dto.SaveQuotationRequest) (*dto.QuotationResponse, error) {
	q, items, rows, err := uc.buildFromRequest(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		if err := repo.Create(q); err != nil {
			return err
		}
		q.QuoteNo = QuoteNo(q.QuoteDate, q.ID)
		if err := repo.SetQuoteNo(q.ID, q.QuoteNo); err != nil {
			return err
		}
		if err := repo.ReplaceItems(q.ID, items); err != nil {
			return err
		}
		return repo.ReplaceProposalRows(q.ID, rows)
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("save quotation")
		return nil, err
	}

	q.Items = items
	return toResponse(q, rows), nil
}

// Update rewrites an existing quotation. The quote number assigned at
// creation stays untouched even when the new quote date falls in a
// different year.
func (uc *SaveQuotationUseCase) Update(ctx context.Context, id int64, in dto.SaveQuotationRequest) (*dto.QuotationResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	q, items, rows, err := uc.buildFromRequest(in)
	if err != nil {
		return nil, err
	}
	q.ID = existing.ID
	q.QuoteNo = existing.QuoteNo
	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = time.Now()

	err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		if err := repo.Update(q); err != nil {
			return err
		}
		if err := repo.ReplaceItems(q.ID, items); err != nil {
			return err
		}
		return repo.ReplaceProposalRows(q.ID, rows)
	})
	if err != nil {
		uc.log.Error().Err(err).Int64("quotation_id", id).Msg("update quotation")
		return nil, err
	}

	q.Items = items
	return toResponse(q, rows), nil
}

// Get loads a quotation with its items and merged proposal rows.
func (uc *SaveQuotationUseCase) Get(ctx context.Context, id int64) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.GetItems(id)
	if err != nil {
		return nil, err
	}
	// Derived amounts are never trusted from storage.
	for i := range items {
		tax.Apply(&items[i])
	}
	q.Items = items

	stored, err := uc.repo.GetProposalRows(id)
	if err != nil {
		return nil, err
	}
	rows := mergeStoredRows(uc.template, stored)
	return toResponse(q, rows), nil
}

// List returns compact quotation rows, newest first.
func (uc *SaveQuotationUseCase) List(ctx context.Context, limit, offset int) ([]dto.QuotationListItem, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationListItem, 0, len(list))
	for _, q := range list {
		out = append(out, dto.QuotationListItem{
			ID:           q.ID,
			QuoteNo:      q.QuoteNo,
			QuoteDate:    q.QuoteDate.Format(dateLayout),
			CustomerName: q.CustomerName,
			GrandTotal:   q.GrandTotal,
		})
	}
	return out, nil
}

// QuoteNo formats the server-assigned quote number from the quote date's
// year and the header id, e.g. Q-2024-0007.
func QuoteNo(quoteDate time.Time, id int64) string {
	return fmt.Sprintf("Q-%s-%04d", quoteDate.Format("2006"), id)
}

// buildFromRequest validates and assembles the header, calculated items and
// merged proposal rows. No persistence happens here.
func (uc *SaveQuotationUseCase) buildFromRequest(in dto.SaveQuotationRequest) (*entity.Quotation, []entity.LineItem, []entity.ProposalRow, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, nil, nil, domain.ErrCustomerNameRequired
	}

	quoteDate := time.Now()
	if strings.TrimSpace(in.QuoteDate) != "" {
		d, err := time.Parse(dateLayout, strings.TrimSpace(in.QuoteDate))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: quote_date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		quoteDate = d
	}

	items, err := ParseItems(in.Items)
	if err != nil {
		return nil, nil, nil, err
	}
	rows := MergeProposalRows(uc.template, in.ProposalRows)
	summary := tax.Summarize(items)

	q := &entity.Quotation{
		QuoteDate:       quoteDate,
		CustomerName:    customerName,
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerGSTIN:   strings.TrimSpace(in.CustomerGSTIN),
		Notes:           in.Notes,
		Subtotal:        summary.Subtotal,
		CGSTTotal:       summary.CGSTTotal,
		SGSTTotal:       summary.SGSTTotal,
		GrandTotal:      summary.GrandTotal,
	}
	return q, items, rows, nil
}

func toResponse(q *entity.Quotation, rows []entity.ProposalRow) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:              q.ID,
		QuoteNo:         q.QuoteNo,
		QuoteDate:       q.QuoteDate.Format(dateLayout),
		CustomerName:    q.CustomerName,
		CustomerAddress: q.CustomerAddress,
		CustomerPhone:   q.CustomerPhone,
		CustomerEmail:   q.CustomerEmail,
		CustomerGSTIN:   q.CustomerGSTIN,
		Notes:           q.Notes,
		Subtotal:        q.Subtotal,
		CGSTTotal:       q.CGSTTotal,
		SGSTTotal:       q.SGSTTotal,
		GrandTotal:      q.GrandTotal,
		Items:           make([]dto.LineItemResponse, 0, len(q.Items)),
	}
	for _, it := range q.Items {
		resp.Items = append(resp.Items, dto.LineItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Name:        it.Name,
			Description: it.Description,
			HSNCode:     it.HSNCode,
			Unit:        it.Unit,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			GSTRate:     it.GSTRate,
			Taxable:     it.Taxable,
			CGST:        it.CGST,
			SGST:        it.SGST,
			Total:       it.Total,
		})
	}
	for _, r := range rows {
		resp.ProposalRows = append(resp.ProposalRows, dto.ProposalRowResponse{
			SrNo:          r.SrNo,
			Description:   r.Description,
			Unit:          r.Unit,
			Specification: r.Specification,
			Qty:           r.Qty,
			Make:          r.Make,
		})
	}
	return resp
}
