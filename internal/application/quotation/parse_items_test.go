package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatek/quotation-api/internal/domain"
)

func TestParseItems_MalformedPayload(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json", `{"name":"x"}`, `"just a string"`, "42"} {
		_, err := ParseItems([]byte(raw))
		assert.ErrorIs(t, err, domain.ErrMalformedItems, "payload %q", raw)
	}
}

func TestParseItems_EmptyArray(t *testing.T) {
	_, err := ParseItems([]byte(`[]`))
	assert.ErrorIs(t, err, domain.ErrNoItems)
}

func TestParseItems_AllBlankNames(t *testing.T) {
	raw := `[{"name":""},{"name":"   "},{"qty":"3"}]`
	_, err := ParseItems([]byte(raw))
	assert.ErrorIs(t, err, domain.ErrItemNameRequired)
}

func TestParseItems_DropsBlankRowsAndReassignsPositions(t *testing.T) {
	raw := `[
		{"name":"Module","qty":"2","unit_price":"100","gst_rate":"18"},
		{"name":"  "},
		{"name":"Inverter","qty":1,"unit_price":5000,"gst_rate":12}
	]`
	items, err := ParseItems([]byte(raw))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Module", items[0].Name)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, "Inverter", items[1].Name)
	assert.Equal(t, 1, items[1].Position)
}

func TestParseItems_ComputesLineAmounts(t *testing.T) {
	raw := `[{"name":"Module","qty":"2","unit_price":"100","gst_rate":"18"}]`
	items, err := ParseItems([]byte(raw))
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.InDelta(t, 200.0, it.Taxable, 1e-9)
	assert.InDelta(t, 18.0, it.CGST, 1e-9)
	assert.InDelta(t, 18.0, it.SGST, 1e-9)
	assert.InDelta(t, 236.0, it.Total, 1e-9)
}

func TestParseItems_LooseNumerics(t *testing.T) {
	raw := `[{"name":"A","qty":null,"unit_price":"abc","gst_rate":" 18 "},
		{"name":"B","qty":"2.5","unit_price":10.10,"gst_rate":12}]`
	items, err := ParseItems([]byte(raw))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Zero(t, items[0].Qty)
	assert.Zero(t, items[0].UnitPrice)
	assert.InDelta(t, 18.0, items[0].GSTRate, 1e-9)

	assert.InDelta(t, 2.5, items[1].Qty, 1e-9)
	assert.InDelta(t, 25.25, items[1].Taxable, 1e-9)
}

func TestParseItems_NegativesClampToZero(t *testing.T) {
	raw := `[{"name":"A","qty":-3,"unit_price":"-10","gst_rate":-18}]`
	items, err := ParseItems([]byte(raw))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Zero(t, items[0].Qty)
	assert.Zero(t, items[0].UnitPrice)
	assert.Zero(t, items[0].GSTRate)
	assert.Zero(t, items[0].Total)
}

func TestParseItems_BlankProductRefBecomesNil(t *testing.T) {
	raw := `[{"name":"A","product_id":"  "},{"name":"B","product_id":"abc-123"}]`
	items, err := ParseItems([]byte(raw))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Nil(t, items[0].ProductID)
	require.NotNil(t, items[1].ProductID)
	assert.Equal(t, "abc-123", *items[1].ProductID)
}
