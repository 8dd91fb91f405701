package quotation

import (
	"context"

	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction with a repository bound
// to it. A save (header write + item replace + proposal replace) either
// fully commits or fully rolls back; a partial save would leave items whose
// totals no longer match the header.
type TxRunner interface {
	RunQuotation(ctx context.Context, fn func(repo repository.QuotationRepository) error) error
}

// ProposalPDFGenerator renders the full proposal document for a quotation.
type ProposalPDFGenerator interface {
	GenerateProposalPDF(ctx context.Context, q *entity.Quotation, rows []entity.ProposalRow) ([]byte, error)
}
