package pdf

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/phpdave11/gofpdf"
)

var _ DocumentCanvas = (*FpdfCanvas)(nil)

// FpdfCanvas is the production Canvas backed by gofpdf: A4 portrait, point
// units, Helvetica. Page breaks are owned by the callers, so auto break is
// off.
type FpdfCanvas struct {
	doc *gofpdf.Fpdf
}

// NewFpdfCanvas opens a document with the first page ready for drawing.
func NewFpdfCanvas() *FpdfCanvas {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMarginX, topMargin, pageMarginX)
	doc.SetAutoPageBreak(false, 0)
	doc.SetDrawColor(110, 110, 110)
	doc.AddPage()
	return &FpdfCanvas{doc: doc}
}

func (c *FpdfCanvas) PageWidth() float64 {
	w, _ := c.doc.GetPageSize()
	return w
}

func (c *FpdfCanvas) PageHeight() float64 {
	_, h := c.doc.GetPageSize()
	return h
}

func (c *FpdfCanvas) BottomLimit() float64 {
	return c.PageHeight() - bottomMargin
}

func (c *FpdfCanvas) AddPage() {
	c.doc.AddPage()
}

func (c *FpdfCanvas) setFont(st TextStyle) {
	style := ""
	if st.Bold {
		style = "B"
	}
	c.doc.SetFont("Helvetica", style, st.size())
}

func alignStr(a Align) string {
	if a == "" {
		return string(AlignLeft)
	}
	return string(a)
}

func (c *FpdfCanvas) Text(x, y, width float64, s string, st TextStyle) {
	c.setFont(st)
	c.doc.SetXY(x, y)
	c.doc.CellFormat(width, st.LineHeight(), s, "", 0, alignStr(st.Align), false, 0, "")
}

func (c *FpdfCanvas) WrappedText(x, y, width float64, s string, st TextStyle) {
	c.setFont(st)
	c.doc.SetXY(x, y)
	c.doc.MultiCell(width, st.LineHeight(), s, "", alignStr(st.Align), false)
}

func (c *FpdfCanvas) MeasureWrapped(width float64, s string, st TextStyle) float64 {
	if s == "" {
		return 0
	}
	c.setFont(st)
	lines := c.doc.SplitLines([]byte(s), width)
	n := len(lines)
	if n == 0 {
		n = 1
	}
	return float64(n) * st.LineHeight()
}

func (c *FpdfCanvas) Rect(x, y, w, h float64, shaded bool) {
	if shaded {
		c.doc.SetFillColor(232, 232, 232)
		c.doc.Rect(x, y, w, h, "FD")
		return
	}
	c.doc.Rect(x, y, w, h, "D")
}

func (c *FpdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.doc.Line(x1, y1, x2, y2)
}

// Image places the file scaled to width; height follows the aspect ratio.
func (c *FpdfCanvas) Image(path string, x, y, width float64) error {
	imgType := strings.TrimPrefix(filepath.Ext(path), ".")
	opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	c.doc.ImageOptions(path, x, y, width, 0, false, opts, 0, "")
	if c.doc.Err() {
		err := c.doc.Error()
		return fmt.Errorf("place image %s: %w", path, err)
	}
	return nil
}

// Bytes closes the document and returns the rendered PDF.
func (c *FpdfCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
