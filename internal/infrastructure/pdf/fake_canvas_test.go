package pdf

import (
	"math"
	"strings"
)

// fakeCanvas records drawing calls so layout logic can be asserted without a
// real PDF backend. Text measurement is deterministic: one character per 5
// points of width, 12 points per line.
type fakeCanvas struct {
	pageW, pageH float64
	pages        int
	texts        []fakeText
	rects        []fakeRect
}

type fakeText struct {
	page    int
	y       float64
	content string
	bold    bool
}

type fakeRect struct {
	page   int
	y, h   float64
	shaded bool
}

func newFakeCanvas(w, h float64) *fakeCanvas {
	return &fakeCanvas{pageW: w, pageH: h, pages: 1}
}

func (c *fakeCanvas) PageWidth() float64  { return c.pageW }
func (c *fakeCanvas) PageHeight() float64 { return c.pageH }
func (c *fakeCanvas) BottomLimit() float64 {
	return c.pageH - bottomMargin
}

func (c *fakeCanvas) AddPage() { c.pages++ }

func (c *fakeCanvas) Text(_, y, _ float64, s string, st TextStyle) {
	c.texts = append(c.texts, fakeText{page: c.pages, y: y, content: s, bold: st.Bold})
}

func (c *fakeCanvas) WrappedText(_, y, _ float64, s string, st TextStyle) {
	c.texts = append(c.texts, fakeText{page: c.pages, y: y, content: s, bold: st.Bold})
}

func (c *fakeCanvas) MeasureWrapped(width float64, s string, _ TextStyle) float64 {
	if s == "" {
		return 0
	}
	perLine := int(width / 5)
	if perLine < 1 {
		perLine = 1
	}
	lines := 0
	for _, seg := range strings.Split(s, "\n") {
		n := int(math.Ceil(float64(len(seg)) / float64(perLine)))
		if n < 1 {
			n = 1
		}
		lines += n
	}
	return float64(lines) * 12
}

func (c *fakeCanvas) Rect(_, y, _, h float64, shaded bool) {
	c.rects = append(c.rects, fakeRect{page: c.pages, y: y, h: h, shaded: shaded})
}

func (c *fakeCanvas) Line(_, _, _, _ float64) {}

func (c *fakeCanvas) Image(_ string, _, _, _ float64) error { return nil }

// countText counts exact draws of s across all pages.
func (c *fakeCanvas) countText(s string) int {
	n := 0
	for _, t := range c.texts {
		if t.content == s {
			n++
		}
	}
	return n
}

// textIndex is the draw-order index of the first exact occurrence of s, or -1.
func (c *fakeCanvas) textIndex(s string) int {
	for i, t := range c.texts {
		if t.content == s {
			return i
		}
	}
	return -1
}

// fakeDocCanvas lets the composer be driven end to end without gofpdf.
type fakeDocCanvas struct {
	*fakeCanvas
}

func (c *fakeDocCanvas) Bytes() ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
