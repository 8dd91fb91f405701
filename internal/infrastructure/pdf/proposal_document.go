package pdf

import (
	"context"
	"os"
	"strconv"

	"github.com/suryatek/quotation-api/internal/application/quotation"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/pkg/config"
	"github.com/suryatek/quotation-api/pkg/money"
)

var _ quotation.ProposalPDFGenerator = (*ProposalComposer)(nil)

// ProposalComposer assembles the full proposal document from a quotation and
// its merged proposal rows.
type ProposalComposer struct {
	cfg       *config.ProposalConfig
	newCanvas func() DocumentCanvas
}

// NewProposalComposer builds the composer on the gofpdf backend.
func NewProposalComposer(cfg *config.ProposalConfig) *ProposalComposer {
	return &ProposalComposer{
		cfg:       cfg,
		newCanvas: func() DocumentCanvas { return NewFpdfCanvas() },
	}
}

// GenerateProposalPDF renders the quotation into a PDF document.
func (g *ProposalComposer) GenerateProposalPDF(_ context.Context, q *entity.Quotation, rows []entity.ProposalRow) ([]byte, error) {
	c := g.newCanvas()
	g.compose(c, q, rows)
	return c.Bytes()
}

// compose draws every section in order on a forward-only y cursor. Tables
// paginate themselves; the letterhead, totals and notes blocks break pages
// explicitly when they would not fit.
func (g *ProposalComposer) compose(c Canvas, q *entity.Quotation, rows []entity.ProposalRow) {
	y := g.drawLetterhead(c, q)
	y = g.drawCustomerBlock(c, q, y+sectionGap)
	y = DrawTable(c, lineItemsTable(q), pageMarginX, y+sectionGap)
	y = g.drawTotals(c, q, y)
	for _, t := range g.auxTables(rows) {
		y = DrawTable(c, t, pageMarginX, y+sectionGap)
	}
	g.drawNotes(c, q, y+sectionGap)
}

func contentWidth(c Canvas) float64 {
	return c.PageWidth() - 2*pageMarginX
}

// drawLetterhead puts the company identity on the left and the document
// title with quote number and date on the right, separated by a rule.
func (g *ProposalComposer) drawLetterhead(c Canvas, q *entity.Quotation) float64 {
	x := pageMarginX
	y := topMargin
	width := contentWidth(c)
	company := g.cfg.Company

	textX := x
	logoBottom := y
	if company.LogoPath != "" {
		if _, err := os.Stat(company.LogoPath); err == nil {
			if err := c.Image(company.LogoPath, x, y, 70); err == nil {
				textX = x + 80
				logoBottom = y + 55
			}
		}
	}

	nameStyle := TextStyle{Size: 15, Bold: true}
	c.Text(textX, y, width/2, company.Name, nameStyle)
	left := y + nameStyle.LineHeight() + 2
	small := TextStyle{Size: 8.5}
	for _, s := range companyLines(company) {
		c.WrappedText(textX, left, width/2, s, small)
		left += c.MeasureWrapped(width/2, s, small)
	}

	title := TextStyle{Size: 13, Bold: true, Align: AlignRight}
	c.Text(x, y, width, "QUOTATION", title)
	right := y + title.LineHeight() + 2
	meta := TextStyle{Align: AlignRight}
	if q.QuoteNo != "" {
		c.Text(x, right, width, "Quote No: "+q.QuoteNo, meta)
		right += meta.LineHeight()
	}
	c.Text(x, right, width, "Date: "+q.QuoteDate.Format("02-01-2006"), meta)
	right += meta.LineHeight()

	bottom := left
	if right > bottom {
		bottom = right
	}
	if logoBottom > bottom {
		bottom = logoBottom
	}
	c.Line(x, bottom+6, x+width, bottom+6)
	return bottom + 8
}

func companyLines(p config.CompanyProfile) []string {
	var lines []string
	if p.Address != "" {
		lines = append(lines, p.Address)
	}
	contact := ""
	if p.Phone != "" {
		contact = "Phone: " + p.Phone
	}
	if p.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += "Email: " + p.Email
	}
	if contact != "" {
		lines = append(lines, contact)
	}
	if p.GSTIN != "" {
		lines = append(lines, "GSTIN: "+p.GSTIN)
	}
	return lines
}

func (g *ProposalComposer) drawCustomerBlock(c Canvas, q *entity.Quotation, y float64) float64 {
	x := pageMarginX
	width := contentWidth(c)
	bold := TextStyle{Bold: true}
	body := TextStyle{}

	c.Text(x, y, width, "To,", bold)
	y += bold.LineHeight()
	c.Text(x, y, width, q.CustomerName, bold)
	y += bold.LineHeight()

	var lines []string
	if q.CustomerAddress != "" {
		lines = append(lines, q.CustomerAddress)
	}
	contact := ""
	if q.CustomerPhone != "" {
		contact = "Phone: " + q.CustomerPhone
	}
	if q.CustomerEmail != "" {
		if contact != "" {
			contact += " | "
		}
		contact += "Email: " + q.CustomerEmail
	}
	if contact != "" {
		lines = append(lines, contact)
	}
	if q.CustomerGSTIN != "" {
		lines = append(lines, "GSTIN: "+q.CustomerGSTIN)
	}
	for _, s := range lines {
		c.WrappedText(x, y, width, s, body)
		y += c.MeasureWrapped(width, s, body)
	}
	return y
}

func lineItemsTable(q *entity.Quotation) Table {
	cols := []Column{
		{Key: "sr", Label: "Sr", Width: 28, Align: AlignCenter},
		{Key: "item", Label: "Item & Description", Width: 195},
		{Key: "hsn", Label: "HSN", Width: 50, Align: AlignCenter},
		{Key: "qty", Label: "Qty", Width: 40, Align: AlignRight},
		{Key: "unit", Label: "Unit", Width: 35, Align: AlignCenter},
		{Key: "rate", Label: "Rate", Width: 62, Align: AlignRight},
		{Key: "gst", Label: "GST %", Width: 40, Align: AlignRight},
		{Key: "amount", Label: "Amount", Width: 65, Align: AlignRight},
	}
	rows := make([]map[string]string, 0, len(q.Items))
	for i, it := range q.Items {
		itemText := it.Name
		if it.Description != "" {
			itemText += "\n" + it.Description
		}
		rows = append(rows, map[string]string{
			"sr":     strconv.Itoa(i + 1),
			"item":   itemText,
			"hsn":    it.HSNCode,
			"qty":    formatNumber(it.Qty),
			"unit":   it.Unit,
			"rate":   money.FormatINR(it.UnitPrice),
			"gst":    formatNumber(it.GSTRate) + "%",
			"amount": money.FormatINR(it.Total),
		})
	}
	return Table{Title: "Quotation Details", RepeatTitleOnBreak: true, Columns: cols, Rows: rows}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// drawTotals renders the summary box right-aligned under the items table.
// The four rows stay together on one page.
func (g *ProposalComposer) drawTotals(c Canvas, q *entity.Quotation, y float64) float64 {
	rows := []struct {
		label, value string
		bold         bool
	}{
		{"Subtotal", money.FormatINR(q.Subtotal), false},
		{"CGST", money.FormatINR(q.CGSTTotal), false},
		{"SGST", money.FormatINR(q.SGSTTotal), false},
		{"Grand Total", money.FormatINR(q.GrandTotal), true},
	}
	const rowH = 16.0
	if y+rowH*float64(len(rows)) > c.BottomLimit() {
		c.AddPage()
		y = topMargin
	}
	const labelW, valueW = 110.0, 95.0
	x := pageMarginX + contentWidth(c) - labelW - valueW
	for _, r := range rows {
		st := TextStyle{Align: AlignRight, Bold: r.bold}
		c.Rect(x, y, labelW, rowH, r.bold)
		c.Rect(x+labelW, y, valueW, rowH, r.bold)
		c.Text(x, y+2, labelW-cellPadX, r.label, st)
		c.Text(x+labelW, y+2, valueW-cellPadX, r.value, st)
		y += rowH
	}
	return y
}

// auxTables lists the auxiliary sections in document order, skipping any
// section with nothing to show.
func (g *ProposalComposer) auxTables(rows []entity.ProposalRow) []Table {
	var tables []Table
	if len(rows) > 0 {
		tables = append(tables, proposalItemsTable(rows))
	}
	if t, ok := sectionTable("Estimated Other Charges", g.cfg.OtherCharges, g.cfg.OtherChargesNote); ok {
		tables = append(tables, t)
	}
	if t, ok := sectionTable("Scope of Work", g.cfg.ScopeOfWork, ""); ok {
		tables = append(tables, t)
	}
	if t, ok := sectionTable("Terms & Conditions", g.cfg.Terms, ""); ok {
		tables = append(tables, t)
	}
	if t, ok := sectionTable("Warrantee", g.cfg.Warranty, ""); ok {
		tables = append(tables, t)
	}
	return tables
}

func proposalItemsTable(rows []entity.ProposalRow) Table {
	cols := []Column{
		{Key: "sr", Label: "Sr", Width: 30, Align: AlignCenter},
		{Key: "desc", Label: "Description", Width: 170},
		{Key: "unit", Label: "Unit", Width: 45, Align: AlignCenter},
		{Key: "spec", Label: "Specification", Width: 135},
		{Key: "qty", Label: "Qty", Width: 55, Align: AlignCenter},
		{Key: "make", Label: "Make", Width: 80},
	}
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]string{
			"sr":   strconv.Itoa(row.SrNo),
			"desc": row.Description,
			"unit": row.Unit,
			"spec": row.Specification,
			"qty":  row.Qty,
			"make": row.Make,
		})
	}
	return Table{Title: "Items Considered for Proposal", RepeatTitleOnBreak: true, Columns: cols, Rows: out}
}

// sectionTable builds a two-column label/remark table; the optional footer
// becomes a trailing full-width note row.
func sectionTable(title string, rows []config.SectionRow, footer string) (Table, bool) {
	if len(rows) == 0 {
		return Table{}, false
	}
	cols := []Column{
		{Key: "label", Label: "Particulars", Width: 345},
		{Key: "remark", Label: "Remarks", Width: 170},
	}
	out := make([]map[string]string, 0, len(rows)+1)
	for _, r := range rows {
		out = append(out, map[string]string{"label": r.Label, "remark": r.Remark})
	}
	if footer != "" {
		out = append(out, map[string]string{"label": footer})
	}
	return Table{Title: title, RepeatTitleOnBreak: true, Columns: cols, Rows: out}, true
}

func (g *ProposalComposer) drawNotes(c Canvas, q *entity.Quotation, y float64) {
	if q.Notes == "" {
		return
	}
	width := contentWidth(c)
	heading := TextStyle{Bold: true}
	body := TextStyle{}
	blockH := heading.LineHeight() + 2 + c.MeasureWrapped(width, q.Notes, body)
	if y+blockH > c.BottomLimit() {
		c.AddPage()
		y = topMargin
	}
	c.Text(pageMarginX, y, width, "Notes:", heading)
	y += heading.LineHeight() + 2
	c.WrappedText(pageMarginX, y, width, q.Notes, body)
}
