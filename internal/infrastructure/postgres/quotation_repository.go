package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implements QuotationRepository over PostgreSQL (usable with
// pool or tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository builds the adapter. Pass pool or tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create inserts the header and fills q.ID from the sequence.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	query := `
		INSERT INTO quotations (quote_date, customer_name, customer_address, customer_phone, customer_email, customer_gstin,
			notes, subtotal, cgst_total, sgst_total, grand_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		q.QuoteDate, q.CustomerName, q.CustomerAddress, q.CustomerPhone, q.CustomerEmail, q.CustomerGSTIN,
		q.Notes, q.Subtotal, q.CGSTTotal, q.SGSTTotal, q.GrandTotal, q.CreatedAt, q.UpdatedAt,
	).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// SetQuoteNo stamps the quote number once, right after the first insert.
// The WHERE guard keeps an already assigned number from ever changing.
func (r *QuotationRepo) SetQuoteNo(id int64, quoteNo string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET quote_no = $2 WHERE id = $1 AND quote_no IS NULL`,
		id, quoteNo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quote number already exists: %w", err)
		}
		return fmt.Errorf("set quote number: %w", err)
	}
	return nil
}

// Update rewrites the editable header fields and totals. quote_no is left
// alone on purpose.
func (r *QuotationRepo) Update(q *entity.Quotation) error {
	query := `
		UPDATE quotations
		SET quote_date       = $2,
		    customer_name    = $3,
		    customer_address = $4,
		    customer_phone   = $5,
		    customer_email   = $6,
		    customer_gstin   = $7,
		    notes            = $8,
		    subtotal         = $9,
		    cgst_total       = $10,
		    sgst_total       = $11,
		    grand_total      = $12,
		    updated_at       = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.QuoteDate, q.CustomerName, q.CustomerAddress, q.CustomerPhone, q.CustomerEmail, q.CustomerGSTIN,
		q.Notes, q.Subtotal, q.CGSTTotal, q.SGSTTotal, q.GrandTotal, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return nil
}

// GetByID loads one quotation header.
func (r *QuotationRepo) GetByID(id int64) (*entity.Quotation, error) {
	query := `
		SELECT id, COALESCE(quote_no, ''), quote_date, customer_name, customer_address, customer_phone,
		       customer_email, customer_gstin, notes, subtotal, cgst_total, sgst_total, grand_total,
		       created_at, updated_at
		FROM quotations WHERE id = $1`
	var q entity.Quotation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.QuoteNo, &q.QuoteDate, &q.CustomerName, &q.CustomerAddress, &q.CustomerPhone,
		&q.CustomerEmail, &q.CustomerGSTIN, &q.Notes, &q.Subtotal, &q.CGSTTotal, &q.SGSTTotal, &q.GrandTotal,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &q, nil
}

// List returns headers newest first.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT id, COALESCE(quote_no, ''), quote_date, customer_name, customer_address, customer_phone,
		       customer_email, customer_gstin, notes, subtotal, cgst_total, sgst_total, grand_total,
		       created_at, updated_at
		FROM quotations ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(
			&q.ID, &q.QuoteNo, &q.QuoteDate, &q.CustomerName, &q.CustomerAddress, &q.CustomerPhone,
			&q.CustomerEmail, &q.CustomerGSTIN, &q.Notes, &q.Subtotal, &q.CGSTTotal, &q.SGSTTotal, &q.GrandTotal,
			&q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// ReplaceItems deletes and reinserts the full item set for a quotation.
// Caller wraps this in the save transaction together with the header write.
func (r *QuotationRepo) ReplaceItems(quotationID int64, items []entity.LineItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1`, quotationID); err != nil {
		return fmt.Errorf("delete quotation items: %w", err)
	}
	query := `
		INSERT INTO quotation_items (id, quotation_id, product_id, position, name, description, hsn_code, unit,
			qty, unit_price, gst_rate, taxable, cgst, sgst, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		it.QuotationID = quotationID
		if _, err := r.q.Exec(ctx, query,
			it.ID, it.QuotationID, it.ProductID, it.Position, it.Name, it.Description, it.HSNCode, it.Unit,
			it.Qty, it.UnitPrice, it.GSTRate, it.Taxable, it.CGST, it.SGST, it.Total,
		); err != nil {
			return fmt.Errorf("insert quotation item: %w", err)
		}
	}
	return nil
}

// GetItems loads items ordered by position.
func (r *QuotationRepo) GetItems(quotationID int64) ([]entity.LineItem, error) {
	query := `
		SELECT id, quotation_id, product_id, position, name, description, hsn_code, unit,
		       qty, unit_price, gst_rate, taxable, cgst, sgst, total
		FROM quotation_items WHERE quotation_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var list []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(
			&it.ID, &it.QuotationID, &it.ProductID, &it.Position, &it.Name, &it.Description, &it.HSNCode, &it.Unit,
			&it.Qty, &it.UnitPrice, &it.GSTRate, &it.Taxable, &it.CGST, &it.SGST, &it.Total,
		); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ReplaceProposalRows deletes and reinserts the proposal overrides.
func (r *QuotationRepo) ReplaceProposalRows(quotationID int64, rows []entity.ProposalRow) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_proposal_rows WHERE quotation_id = $1`, quotationID); err != nil {
		return fmt.Errorf("delete proposal rows: %w", err)
	}
	query := `
		INSERT INTO quotation_proposal_rows (quotation_id, position, sr_no, qty, make)
		VALUES ($1, $2, $3, $4, $5)`
	for _, row := range rows {
		if _, err := r.q.Exec(ctx, query,
			quotationID, row.Position, row.SrNo, row.Qty, row.Make,
		); err != nil {
			return fmt.Errorf("insert proposal row: %w", err)
		}
	}
	return nil
}

// GetProposalRows loads the persisted qty/make overrides ordered by position.
// Structural fields (description, unit, specification) come from the live
// template at render time, not from storage.
func (r *QuotationRepo) GetProposalRows(quotationID int64) ([]entity.ProposalRow, error) {
	query := `
		SELECT quotation_id, position, sr_no, qty, make
		FROM quotation_proposal_rows WHERE quotation_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list proposal rows: %w", err)
	}
	defer rows.Close()
	var list []entity.ProposalRow
	for rows.Next() {
		var row entity.ProposalRow
		if err := rows.Scan(&row.QuotationID, &row.Position, &row.SrNo, &row.Qty, &row.Make); err != nil {
			return nil, fmt.Errorf("scan proposal row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
