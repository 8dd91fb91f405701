package repository

import "github.com/suryatek/quotation-api/internal/domain/entity"

// QuotationRepository persistence port for quotation headers, line items and
// proposal-row overrides. Items and proposal rows are replaced wholesale
// (delete then reinsert) so the persisted set always matches the header
// totals written in the same transaction.
type QuotationRepository interface {
	// Create inserts the header and assigns q.ID.
	Create(q *entity.Quotation) error
	// Update rewrites the editable header fields and totals. QuoteNo is not
	// touched: it is assigned once via SetQuoteNo and immutable afterwards.
	Update(q *entity.Quotation) error
	SetQuoteNo(id int64, quoteNo string) error
	GetByID(id int64) (*entity.Quotation, error)
	List(limit, offset int) ([]*entity.Quotation, error)

	ReplaceItems(quotationID int64, items []entity.LineItem) error
	GetItems(quotationID int64) ([]entity.LineItem, error)

	ReplaceProposalRows(quotationID int64, rows []entity.ProposalRow) error
	GetProposalRows(quotationID int64) ([]entity.ProposalRow, error)
}
