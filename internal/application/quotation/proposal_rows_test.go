package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/pkg/config"
)

func demoTemplate() []config.ProposalTemplateRow {
	return []config.ProposalTemplateRow{
		{SrNo: 1, Description: "Solar PV Modules", Unit: "Nos", Specification: "540Wp", Qty: "As per design", Make: "Waaree"},
		{SrNo: 2, Description: "String Inverter", Unit: "Nos", Specification: "Dual MPPT", Qty: "1", Make: "Growatt"},
		{SrNo: 3, Description: "Mounting Structure", Unit: "Set", Specification: "HDG", Qty: "1", Make: "Suryatek"},
	}
}

func TestMergeProposalRows_EmptyTemplateYieldsNothing(t *testing.T) {
	rows := MergeProposalRows(nil, []byte(`[{"qty":"5","make":"X"}]`))
	assert.Nil(t, rows)
}

func TestMergeProposalRows_PositionalOverride(t *testing.T) {
	rows := MergeProposalRows(demoTemplate(), []byte(`[{"qty":"10","make":"Adani"}]`))
	require.Len(t, rows, 3)

	assert.Equal(t, "10", rows[0].Qty)
	assert.Equal(t, "Adani", rows[0].Make)
	assert.Equal(t, "Solar PV Modules", rows[0].Description)
	// Untouched rows keep their template defaults.
	assert.Equal(t, "1", rows[1].Qty)
	assert.Equal(t, "Growatt", rows[1].Make)
}

func TestMergeProposalRows_SrNoKeyedOverride(t *testing.T) {
	// The single override targets row 3 by serial number, not position 0.
	rows := MergeProposalRows(demoTemplate(), []byte(`[{"sr_no":3,"make":"Custom Fab"}]`))
	require.Len(t, rows, 3)

	assert.Equal(t, "Waaree", rows[0].Make)
	assert.Equal(t, "Custom Fab", rows[2].Make)
	// qty key absent, so the template default stands.
	assert.Equal(t, "1", rows[2].Qty)
}

func TestMergeProposalRows_MalformedDegradesToDefaults(t *testing.T) {
	for _, raw := range []string{"not json", `{"qty":"5"}`, `"x"`} {
		rows := MergeProposalRows(demoTemplate(), []byte(raw))
		require.Len(t, rows, 3, "payload %q", raw)
		assert.Equal(t, "As per design", rows[0].Qty, "payload %q", raw)
	}
}

func TestMergeProposalRows_ExtraOverridesIgnored(t *testing.T) {
	raw := `[{"qty":"1"},{"qty":"2"},{"qty":"3"},{"qty":"4"},{"qty":"5"}]`
	rows := MergeProposalRows(demoTemplate(), []byte(raw))
	require.Len(t, rows, 3)
	assert.Equal(t, "3", rows[2].Qty)
}

func TestMergeProposalRows_NumericValuesCoerced(t *testing.T) {
	rows := MergeProposalRows(demoTemplate(), []byte(`[{"qty":12,"make":42}]`))
	require.Len(t, rows, 3)
	assert.Equal(t, "12", rows[0].Qty)
	assert.Equal(t, "42", rows[0].Make)
}

func TestMergeStoredRows_KeyedBySrNoSurvivesReorder(t *testing.T) {
	stored := []entity.ProposalRow{
		{Position: 0, SrNo: 2, Qty: "2", Make: "Sungrow"},
	}
	// Template reordered since the quotation was saved.
	tpl := []config.ProposalTemplateRow{
		demoTemplate()[1], demoTemplate()[0], demoTemplate()[2],
	}
	rows := mergeStoredRows(tpl, stored)
	require.Len(t, rows, 3)

	assert.Equal(t, 2, rows[0].SrNo)
	assert.Equal(t, "2", rows[0].Qty)
	assert.Equal(t, "Sungrow", rows[0].Make)
	assert.Equal(t, "As per design", rows[1].Qty)
}

func TestMergeStoredRows_EmptyTemplateYieldsNothing(t *testing.T) {
	stored := []entity.ProposalRow{{SrNo: 1, Qty: "9"}}
	assert.Nil(t, mergeStoredRows(nil, stored))
}
