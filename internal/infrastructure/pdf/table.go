package pdf

// Column describes one table column: a row key, a header label, a fixed
// width in points and the cell alignment.
type Column struct {
	Key   string
	Label string
	Width float64
	Align Align
}

// Table is one titled, bordered table. Rows are keyed by Column.Key; a
// missing key renders as an empty cell.
type Table struct {
	Title string
	// RepeatTitleOnBreak redraws the title bar on continuation pages.
	// The header row always repeats.
	RepeatTitleOnBreak bool
	Columns            []Column
	Rows               []map[string]string
}

// Width is the sum of all column widths.
func (t Table) Width() float64 {
	var w float64
	for _, col := range t.Columns {
		w += col.Width
	}
	return w
}

// DrawTable renders the table starting at (x, y) and returns the y cursor
// just below the last drawn row. Page breaks happen between rows, never
// inside one; the header (and optionally the title) is redrawn after each
// break. An empty table still gets its title and header so the section stays
// visible in the document.
func DrawTable(c Canvas, t Table, x, y float64) float64 {
	bottom := c.BottomLimit()
	headerH := headerHeight(c, t)

	// Keep the title and header together on one page.
	blockH := headerH
	if t.Title != "" {
		blockH += titleHeight
	}
	if y+blockH > bottom {
		c.AddPage()
		y = topMargin
	}
	if t.Title != "" {
		y = drawTitleBar(c, t, x, y)
	}
	y = drawHeaderRow(c, t, x, y)

	for _, row := range t.Rows {
		h := rowHeight(c, t.Columns, row)
		if y+h > bottom {
			c.AddPage()
			y = topMargin
			if t.Title != "" && t.RepeatTitleOnBreak {
				y = drawTitleBar(c, t, x, y)
			}
			y = drawHeaderRow(c, t, x, y)
		}
		drawRow(c, t.Columns, row, x, y, h)
		y += h
	}
	return y
}

func drawTitleBar(c Canvas, t Table, x, y float64) float64 {
	st := TextStyle{Size: titleFontSize, Bold: true, Align: AlignCenter}
	c.Rect(x, y, t.Width(), titleHeight, true)
	c.Text(x, y+(titleHeight-st.LineHeight())/2, t.Width(), t.Title, st)
	return y + titleHeight
}

func drawHeaderRow(c Canvas, t Table, x, y float64) float64 {
	h := headerHeight(c, t)
	cx := x
	for _, col := range t.Columns {
		st := TextStyle{Size: headerFontSize, Bold: true, Align: col.Align}
		c.Rect(cx, y, col.Width, h, true)
		c.WrappedText(cx+cellPadX, y+cellPadY, col.Width-2*cellPadX, col.Label, st)
		cx += col.Width
	}
	return y + h
}

func headerHeight(c Canvas, t Table) float64 {
	h := 0.0
	for _, col := range t.Columns {
		st := TextStyle{Size: headerFontSize, Bold: true, Align: col.Align}
		th := c.MeasureWrapped(col.Width-2*cellPadX, col.Label, st) + 2*cellPadY
		if th > h {
			h = th
		}
	}
	if h < minRowHeight {
		h = minRowHeight
	}
	return h
}

// rowHeight is the tallest wrapped cell plus padding, floored so short rows
// keep a consistent rhythm.
func rowHeight(c Canvas, cols []Column, row map[string]string) float64 {
	h := 0.0
	for _, col := range cols {
		st := TextStyle{Size: bodyFontSize, Align: col.Align}
		th := c.MeasureWrapped(col.Width-2*cellPadX, row[col.Key], st) + 2*cellPadY
		if th > h {
			h = th
		}
	}
	if h < minRowHeight {
		h = minRowHeight
	}
	return h
}

func drawRow(c Canvas, cols []Column, row map[string]string, x, y, h float64) {
	cx := x
	for _, col := range cols {
		st := TextStyle{Size: bodyFontSize, Align: col.Align}
		c.Rect(cx, y, col.Width, h, false)
		c.WrappedText(cx+cellPadX, y+cellPadY, col.Width-2*cellPadX, row[col.Key], st)
		cx += col.Width
	}
}
