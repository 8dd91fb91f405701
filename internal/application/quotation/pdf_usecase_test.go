package quotation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatek/quotation-api/internal/domain"
	"github.com/suryatek/quotation-api/internal/domain/entity"
)

type fakeGenerator struct {
	lastQ    *entity.Quotation
	lastRows []entity.ProposalRow
}

func (g *fakeGenerator) GenerateProposalPDF(_ context.Context, q *entity.Quotation, rows []entity.ProposalRow) ([]byte, error) {
	g.lastQ = q
	g.lastRows = rows
	return []byte("%PDF-1.4 fake"), nil
}

func seedQuotation(t *testing.T, repo *fakeQuotationRepo, quoteNo string) int64 {
	t.Helper()
	q := &entity.Quotation{
		QuoteDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerName: "Acme",
	}
	require.NoError(t, repo.Create(q))
	if quoteNo != "" {
		require.NoError(t, repo.SetQuoteNo(q.ID, quoteNo))
	}
	require.NoError(t, repo.ReplaceItems(q.ID, []entity.LineItem{
		{Name: "Module", Qty: 10, UnitPrice: 12000, GSTRate: 12},
	}))
	return q.ID
}

func TestDownloadProposalPDF_NotFound(t *testing.T) {
	uc := NewPDFUseCase(newFakeRepo(), demoTemplate(), &fakeGenerator{})
	_, _, err := uc.DownloadProposalPDF(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadProposalPDF_FilenameFromQuoteNo(t *testing.T) {
	repo := newFakeRepo()
	id := seedQuotation(t, repo, "Q-2024-0001")
	gen := &fakeGenerator{}
	uc := NewPDFUseCase(repo, demoTemplate(), gen)

	out, filename, err := uc.DownloadProposalPDF(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Q-2024-0001.pdf", filename)
	assert.NotEmpty(t, out)
}

func TestDownloadProposalPDF_FallbackFilename(t *testing.T) {
	repo := newFakeRepo()
	id := seedQuotation(t, repo, "")
	uc := NewPDFUseCase(repo, demoTemplate(), &fakeGenerator{})

	_, filename, err := uc.DownloadProposalPDF(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "quote-1.pdf", filename)
}

func TestDownloadProposalPDF_RecomputesBeforeRender(t *testing.T) {
	repo := newFakeRepo()
	id := seedQuotation(t, repo, "Q-2024-0001")
	// Stored derived columns are stale on purpose.
	repo.items[id][0].Total = 1
	repo.headers[id].GrandTotal = 1
	gen := &fakeGenerator{}
	uc := NewPDFUseCase(repo, demoTemplate(), gen)

	_, _, err := uc.DownloadProposalPDF(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, gen.lastQ)
	assert.InDelta(t, 120000.0, gen.lastQ.Subtotal, 1e-9)
	assert.InDelta(t, 134400.0, gen.lastQ.GrandTotal, 1e-9)
	assert.InDelta(t, 134400.0, gen.lastQ.Items[0].Total, 1e-9)
}

func TestDownloadProposalPDF_MergesStoredOverrides(t *testing.T) {
	repo := newFakeRepo()
	id := seedQuotation(t, repo, "Q-2024-0001")
	require.NoError(t, repo.ReplaceProposalRows(id, []entity.ProposalRow{
		{Position: 0, SrNo: 2, Qty: "3", Make: "Sungrow"},
	}))
	gen := &fakeGenerator{}
	uc := NewPDFUseCase(repo, demoTemplate(), gen)

	_, _, err := uc.DownloadProposalPDF(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, gen.lastRows, len(demoTemplate()))
	assert.Equal(t, "3", gen.lastRows[1].Qty)
	assert.Equal(t, "Sungrow", gen.lastRows[1].Make)
	assert.Equal(t, "As per design", gen.lastRows[0].Qty)
}
