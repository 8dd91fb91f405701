package http

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatek/quotation-api/internal/application/quotation"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/domain/repository"
	"github.com/suryatek/quotation-api/pkg/logger"
)

// stubRepo serves a single quotation; everything else is a no-op.
type stubRepo struct {
	q     *entity.Quotation
	items []entity.LineItem
}

var _ repository.QuotationRepository = (*stubRepo)(nil)

func (r *stubRepo) Create(*entity.Quotation) error       { return nil }
func (r *stubRepo) SetQuoteNo(int64, string) error       { return nil }
func (r *stubRepo) Update(*entity.Quotation) error       { return nil }
func (r *stubRepo) List(int, int) ([]*entity.Quotation, error) {
	return nil, nil
}
func (r *stubRepo) GetByID(id int64) (*entity.Quotation, error) {
	if r.q != nil && r.q.ID == id {
		cp := *r.q
		return &cp, nil
	}
	return nil, nil
}
func (r *stubRepo) GetItems(int64) ([]entity.LineItem, error) { return r.items, nil }
func (r *stubRepo) ReplaceItems(int64, []entity.LineItem) error {
	return nil
}
func (r *stubRepo) ReplaceProposalRows(int64, []entity.ProposalRow) error {
	return nil
}
func (r *stubRepo) GetProposalRows(int64) ([]entity.ProposalRow, error) {
	return nil, nil
}

type stubGenerator struct{}

func (stubGenerator) GenerateProposalPDF(context.Context, *entity.Quotation, []entity.ProposalRow) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type stubTxRunner struct{ repo repository.QuotationRepository }

func (r *stubTxRunner) RunQuotation(_ context.Context, fn func(repo repository.QuotationRepository) error) error {
	return fn(r.repo)
}

func pdfApp(repo *stubRepo) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	save := quotation.NewSaveQuotationUseCase(&stubTxRunner{repo: repo}, repo, nil, log)
	pdfUC := quotation.NewPDFUseCase(repo, nil, stubGenerator{})
	h := NewQuotationHandler(save, pdfUC, log)

	app := fiber.New()
	app.Get("/quotations/:id/pdf", h.DownloadPDF)
	return app
}

func TestDownloadPDF_AttachmentHeaders(t *testing.T) {
	repo := &stubRepo{
		q: &entity.Quotation{
			ID:           7,
			QuoteNo:      "Q-2024-0007",
			QuoteDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CustomerName: "Acme",
		},
		items: []entity.LineItem{{Name: "Module", Qty: 1, UnitPrice: 100, GSTRate: 18}},
	}
	app := pdfApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/quotations/7/pdf", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="Q-2024-0007.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 stub", string(body))
}

func TestDownloadPDF_NotFound(t *testing.T) {
	app := pdfApp(&stubRepo{})
	resp, err := app.Test(httptest.NewRequest("GET", "/quotations/7/pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDownloadPDF_InvalidID(t *testing.T) {
	app := pdfApp(&stubRepo{})
	for _, id := range []string{"abc", "0", "-3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/quotations/"+id+"/pdf", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "id %q", id)
	}
}
