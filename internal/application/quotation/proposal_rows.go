package quotation

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/pkg/config"
)

// proposalOverride is one submitted override row. Only qty and make are
// user-editable; a nil pointer means the key was absent and the template
// default stands. sr_no is optional: when submitted rows carry it, the merge
// binds by serial number instead of array position, which survives template
// reordering between renders.
type proposalOverride struct {
	SrNo *looseInt    `json:"sr_no"`
	Qty  *looseString `json:"qty"`
	Make *looseString `json:"make"`
}

// looseString accepts a JSON string or number; anything else becomes "".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	*s = ""
	t := bytes.TrimSpace(b)
	if len(t) == 0 || string(t) == "null" {
		return nil
	}
	if t[0] == '"' {
		var str string
		if err := json.Unmarshal(t, &str); err != nil {
			return nil
		}
		*s = looseString(str)
		return nil
	}
	var v json.Number
	if err := json.Unmarshal(t, &v); err != nil {
		return nil
	}
	*s = looseString(v.String())
	return nil
}

// looseInt accepts a JSON integer or a quoted integer.
type looseInt int

func (i *looseInt) UnmarshalJSON(b []byte) error {
	*i = 0
	t := bytes.TrimSpace(b)
	if len(t) == 0 || string(t) == "null" {
		return nil
	}
	raw := string(t)
	if t[0] == '"' {
		var str string
		if err := json.Unmarshal(t, &str); err != nil {
			return nil
		}
		raw = strings.TrimSpace(str)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	*i = looseInt(v)
	return nil
}

// MergeProposalRows merges the configured template with submitted overrides.
//
// The section is template-driven: an empty template yields no rows no matter
// what was submitted, and the output length always equals the template
// length. A malformed or non-array submission degrades to template defaults;
// proposal overrides are soft input, unlike line items.
func MergeProposalRows(template []config.ProposalTemplateRow, submitted []byte) []entity.ProposalRow {
	if len(template) == 0 {
		return nil
	}

	var overrides []proposalOverride
	if len(bytes.TrimSpace(submitted)) > 0 {
		if err := json.Unmarshal(submitted, &overrides); err != nil {
			overrides = nil
		}
	}

	// Keyed lookup when any submitted row names its sr_no.
	var bySrNo map[int]proposalOverride
	for _, ov := range overrides {
		if ov.SrNo != nil {
			if bySrNo == nil {
				bySrNo = make(map[int]proposalOverride, len(overrides))
			}
			bySrNo[int(*ov.SrNo)] = ov
		}
	}

	rows := make([]entity.ProposalRow, 0, len(template))
	for i, tpl := range template {
		row := entity.ProposalRow{
			Position:      i,
			SrNo:          tpl.SrNo,
			Description:   tpl.Description,
			Unit:          tpl.Unit,
			Specification: tpl.Specification,
			Qty:           tpl.Qty,
			Make:          tpl.Make,
		}
		var ov *proposalOverride
		if bySrNo != nil {
			if o, ok := bySrNo[tpl.SrNo]; ok {
				ov = &o
			}
		} else if i < len(overrides) {
			ov = &overrides[i]
		}
		if ov != nil {
			if ov.Qty != nil {
				row.Qty = string(*ov.Qty)
			}
			if ov.Make != nil {
				row.Make = string(*ov.Make)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// mergeStoredRows re-applies persisted qty/make overrides onto the current
// template at render time. Stored rows are keyed by sr_no with a positional
// fallback, so a reordered template still lines up with old quotations.
func mergeStoredRows(template []config.ProposalTemplateRow, stored []entity.ProposalRow) []entity.ProposalRow {
	if len(template) == 0 {
		return nil
	}
	bySrNo := make(map[int]entity.ProposalRow, len(stored))
	for _, r := range stored {
		bySrNo[r.SrNo] = r
	}

	rows := make([]entity.ProposalRow, 0, len(template))
	for i, tpl := range template {
		row := entity.ProposalRow{
			Position:      i,
			SrNo:          tpl.SrNo,
			Description:   tpl.Description,
			Unit:          tpl.Unit,
			Specification: tpl.Specification,
			Qty:           tpl.Qty,
			Make:          tpl.Make,
		}
		if saved, ok := bySrNo[tpl.SrNo]; ok {
			row.Qty = saved.Qty
			row.Make = saved.Make
		} else if i < len(stored) && stored[i].SrNo == 0 {
			row.Qty = stored[i].Qty
			row.Make = stored[i].Make
		}
		rows = append(rows, row)
	}
	return rows
}
