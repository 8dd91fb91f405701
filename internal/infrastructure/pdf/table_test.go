package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 400x200 page gives a 160pt bottom bound, so min-height rows force page
// breaks quickly. The fake measures 12pt per line, which lands every plain
// row on the 24pt floor.
func oneColTable(title string, n int) Table {
	t := Table{
		Title:              title,
		RepeatTitleOnBreak: true,
		Columns:            []Column{{Key: "v", Label: "V", Width: 100}},
	}
	for i := 0; i < n; i++ {
		t.Rows = append(t.Rows, map[string]string{"v": "x"})
	}
	return t
}

func TestDrawTable_EmptyRowsStillDrawsTitleAndHeader(t *testing.T) {
	c := newFakeCanvas(400, 200)
	y := DrawTable(c, oneColTable("Charges", 0), pageMarginX, topMargin)

	assert.Equal(t, 1, c.pages)
	assert.Equal(t, 1, c.countText("Charges"))
	assert.Equal(t, 1, c.countText("V"))
	assert.InDelta(t, topMargin+titleHeight+minRowHeight, y, 0.001)
}

func TestDrawTable_PageBreakRepeatsTitleAndHeader(t *testing.T) {
	c := newFakeCanvas(400, 200)
	y := DrawTable(c, oneColTable("Charges", 5), pageMarginX, topMargin)

	require.Equal(t, 2, c.pages)
	assert.Equal(t, 2, c.countText("Charges"))
	assert.Equal(t, 2, c.countText("V"))
	assert.Equal(t, 5, c.countText("x"))
	assert.Less(t, y, c.BottomLimit())
}

func TestDrawTable_NoTitleRepeatKeepsHeaderRepeat(t *testing.T) {
	c := newFakeCanvas(400, 200)
	table := oneColTable("Charges", 5)
	table.RepeatTitleOnBreak = false
	DrawTable(c, table, pageMarginX, topMargin)

	require.Equal(t, 2, c.pages)
	assert.Equal(t, 1, c.countText("Charges"))
	assert.Equal(t, 2, c.countText("V"))
}

func TestDrawTable_TitleAndHeaderStayTogether(t *testing.T) {
	c := newFakeCanvas(400, 200)
	// Not enough room left for title plus header, so both move to a new page.
	DrawTable(c, oneColTable("Charges", 1), pageMarginX, 150)

	require.Equal(t, 2, c.pages)
	idx := c.textIndex("Charges")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, 2, c.texts[idx].page)
	assert.InDelta(t, float64(topMargin), c.texts[idx].y, titleHeight)
}

func TestDrawTable_MissingKeyRendersEmptyCell(t *testing.T) {
	c := newFakeCanvas(400, 200)
	table := Table{
		Columns: []Column{{Key: "v", Label: "V", Width: 100}},
		Rows:    []map[string]string{{"other": "ignored"}},
	}
	y := DrawTable(c, table, pageMarginX, topMargin)

	assert.GreaterOrEqual(t, c.countText(""), 1)
	assert.InDelta(t, topMargin+2*minRowHeight, y, 0.001)
}

func TestDrawTable_TallRowGetsWrappedHeight(t *testing.T) {
	c := newFakeCanvas(400, 200)
	long := "this cell is long enough to wrap across several measured lines of text"
	table := Table{
		Columns: []Column{{Key: "v", Label: "V", Width: 100}},
		Rows:    []map[string]string{{"v": long}},
	}
	y := DrawTable(c, table, pageMarginX, topMargin)

	wrapped := c.MeasureWrapped(100-2*cellPadX, long, TextStyle{})
	require.Greater(t, wrapped+2*cellPadY, float64(minRowHeight))
	assert.InDelta(t, topMargin+minRowHeight+wrapped+2*cellPadY, y, 0.001)
}

func TestDrawTable_RowsNeverSplitAcrossPages(t *testing.T) {
	c := newFakeCanvas(400, 200)
	DrawTable(c, oneColTable("Charges", 12), pageMarginX, topMargin)

	for _, r := range c.rects {
		assert.LessOrEqual(t, r.y+r.h, c.BottomLimit(), "rect overflows printable area")
		assert.GreaterOrEqual(t, r.y, float64(topMargin))
	}
}
