// Package pdf renders the quotation proposal document.
//
// Page layout (A4 portrait, point units):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LETTERHEAD: logo + company block   │  "QUOTATION" + no/date │
//	│  CUSTOMER: name / address / contact                          │
//	│  TABLE: Sr | Item | HSN | Qty | Unit | Rate | GST% | Amount  │
//	│  TOTALS: Subtotal / CGST / SGST / Grand Total (right)        │
//	│  TABLE: Items Considered for Proposal                        │
//	│  TABLE: Estimated Other Charges (+ footer note row)          │
//	│  TABLE: Scope of Work (skipped when empty)                   │
//	│  TABLE: Terms & Conditions                                   │
//	│  TABLE: Warrantee                                            │
//	│  NOTES: free text                                            │
//	└─────────────────────────────────────────────────────────────┘
//
// Every table goes through the same paginated renderer (DrawTable); the
// renderer and the composer only talk to the Canvas interface below, so the
// gofpdf backend can be swapped for a headless fake in tests.
package pdf

// Shared layout constants. The canvas is a forward-only paged surface;
// content flushed to an earlier page is never revised.
const (
	pageMarginX  = 40.0
	topMargin    = 40.0
	bottomMargin = 40.0

	minRowHeight = 24.0
	cellPadX     = 4.0
	cellPadY     = 6.0
	titleHeight  = 22.0
	sectionGap   = 18.0

	bodyFontSize   = 9.0
	headerFontSize = 9.0
	titleFontSize  = 10.0

	lineHeightFactor = 1.35
)

// Align is horizontal text alignment within a cell or text box.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// TextStyle font options for a piece of text. Zero Size means the body size.
type TextStyle struct {
	Size  float64
	Bold  bool
	Align Align
}

func (st TextStyle) size() float64 {
	if st.Size == 0 {
		return bodyFontSize
	}
	return st.Size
}

// LineHeight is the vertical advance for one text line in this style.
func (st TextStyle) LineHeight() float64 {
	return st.size() * lineHeightFactor
}

// Canvas is the page-aware drawing surface: place text and rectangles,
// measure wrapped text, request a new page. Coordinates are points from the
// top-left corner; y grows downward.
type Canvas interface {
	// PageWidth and PageHeight are the full page size.
	PageWidth() float64
	PageHeight() float64
	// BottomLimit is the lowest printable y (page height minus bottom margin).
	BottomLimit() float64
	// AddPage starts a new page; drawing continues there.
	AddPage()
	// Text draws a single line at (x, y) aligned within width.
	Text(x, y, width float64, s string, st TextStyle)
	// WrappedText draws s wrapped to width, top edge at y.
	WrappedText(x, y, width float64, s string, st TextStyle)
	// MeasureWrapped returns the height s occupies when wrapped to width.
	MeasureWrapped(width float64, s string, st TextStyle) float64
	// Rect draws a bordered rectangle, shaded light gray when asked.
	Rect(x, y, w, h float64, shaded bool)
	// Line draws a stroked line segment.
	Line(x1, y1, x2, y2 float64)
	// Image places the image file at (x, y) scaled to width, keeping ratio.
	Image(path string, x, y, width float64) error
}

// DocumentCanvas is a Canvas that can hand out the finished document.
type DocumentCanvas interface {
	Canvas
	Bytes() ([]byte, error)
}
