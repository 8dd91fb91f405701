package quotation

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/suryatek/quotation-api/internal/domain"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/domain/tax"
)

// itemPayload mirrors the quotation form wire format. The form serializes
// numeric inputs as strings, older clients send numbers; looseFloat accepts
// both and coerces anything unparseable to 0.
type itemPayload struct {
	ProductID   *string    `json:"product_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	HSNCode     string     `json:"hsn_code"`
	Unit        string     `json:"unit"`
	Qty         looseFloat `json:"qty"`
	UnitPrice   looseFloat `json:"unit_price"`
	GSTRate     looseFloat `json:"gst_rate"`
}

// looseFloat decodes a JSON number, a quoted number, null or garbage; all
// non-numeric forms become 0. It never reports an error: item rows fail
// validation on structure and names, not on sloppy numerics.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	*f = 0
	s := bytes.TrimSpace(b)
	if len(s) == 0 || string(s) == "null" {
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(s, &str); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return nil
		}
		*f = looseFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(s, &v); err != nil {
		return nil
	}
	*f = looseFloat(v)
	return nil
}

// ParseItems turns the raw items payload into calculated line items.
//
// Hard failures, in order: domain.ErrMalformedItems when the payload is not
// a JSON array, domain.ErrNoItems when the array is empty, and
// domain.ErrItemNameRequired when no row has a non-blank name. Rows with a
// blank name are dropped from the result, but only after those checks ran:
// an all-blank submission is an error, not a silently empty quotation.
func ParseItems(raw []byte) ([]entity.LineItem, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ErrMalformedItems
	}
	var payload []itemPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, domain.ErrMalformedItems
	}

	items := make([]entity.LineItem, 0, len(payload))
	for _, p := range payload {
		it := entity.LineItem{
			ProductID:   normalizeRef(p.ProductID),
			Name:        p.Name,
			Description: p.Description,
			HSNCode:     p.HSNCode,
			Unit:        p.Unit,
			Qty:         clampNonNegative(float64(p.Qty)),
			UnitPrice:   clampNonNegative(float64(p.UnitPrice)),
			GSTRate:     clampNonNegative(float64(p.GSTRate)),
		}
		tax.Apply(&it)
		items = append(items, it)
	}

	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}
	named := false
	for _, it := range items {
		if strings.TrimSpace(it.Name) != "" {
			named = true
			break
		}
	}
	if !named {
		return nil, domain.ErrItemNameRequired
	}

	kept := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		it.Position = len(kept)
		kept = append(kept, it)
	}
	return kept, nil
}

func normalizeRef(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
