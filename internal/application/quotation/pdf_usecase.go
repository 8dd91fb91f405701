package quotation

import (
	"context"
	"fmt"

	"github.com/suryatek/quotation-api/internal/domain"
	"github.com/suryatek/quotation-api/internal/domain/repository"
	"github.com/suryatek/quotation-api/internal/domain/tax"
	"github.com/suryatek/quotation-api/pkg/config"
)

// PDFUseCase produces the downloadable proposal PDF for a saved quotation.
type PDFUseCase struct {
	repo      repository.QuotationRepository
	template  []config.ProposalTemplateRow
	generator ProposalPDFGenerator
}

// NewPDFUseCase wires the use case.
func NewPDFUseCase(
	repo repository.QuotationRepository,
	template []config.ProposalTemplateRow,
	generator ProposalPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{repo: repo, template: template, generator: generator}
}

// DownloadProposalPDF loads the quotation, recomputes all derived amounts
// from the persisted base fields and renders the document.
//
// Returns:
//   - (pdfBytes, filename, nil) on success
//   - domain.ErrNotFound when the quotation does not exist
func (uc *PDFUseCase) DownloadProposalPDF(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	q, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load quotation: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.repo.GetItems(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}
	// Recompute line amounts and totals from qty/unit_price/gst_rate; the
	// stored derived columns are display caches, never the source of truth.
	for i := range items {
		tax.Apply(&items[i])
	}
	summary := tax.Summarize(items)
	q.Items = items
	q.Subtotal = summary.Subtotal
	q.CGSTTotal = summary.CGSTTotal
	q.SGSTTotal = summary.SGSTTotal
	q.GrandTotal = summary.GrandTotal

	stored, err := uc.repo.GetProposalRows(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load proposal rows: %w", err)
	}
	rows := mergeStoredRows(uc.template, stored)

	pdfBytes, err = uc.generator.GenerateProposalPDF(ctx, q, rows)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generate: %w", err)
	}

	filename = fmt.Sprintf("quote-%d.pdf", q.ID)
	if q.QuoteNo != "" {
		filename = q.QuoteNo + ".pdf"
	}
	return pdfBytes, filename, nil
}
