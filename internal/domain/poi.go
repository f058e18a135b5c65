package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// POI is a point-of-interest reference as delivered by the CMS. The known
// fields are decoded for lookups; the full upstream object is kept verbatim
// and re-emitted on marshal so view models carry every CMS attribute.
type POI struct {
	ID         int64  `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Label      string `json:"label"`
	Slug       string `json:"slug"`
	Type       string `json:"type,omitempty"`

	raw json.RawMessage
}

// poiFields mirrors POI without its methods to avoid recursive decoding.
type poiFields struct {
	ID         int64  `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Label      string `json:"label"`
	Slug       string `json:"slug"`
	Type       string `json:"type,omitempty"`
}

// UnmarshalJSON decodes the known fields and retains the raw object.
func (p *POI) UnmarshalJSON(b []byte) error {
	var f poiFields
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("decoding poi: %w", err)
	}
	*p = poiFieldsToPOI(f)
	p.raw = append(json.RawMessage(nil), b...)
	return nil
}

// MarshalJSON emits the retained upstream object when present.
func (p POI) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(poiFields{
		ID:         p.ID,
		DocumentID: p.DocumentID,
		Label:      p.Label,
		Slug:       p.Slug,
		Type:       p.Type,
	})
}

func poiFieldsToPOI(f poiFields) POI {
	return POI{
		ID:         f.ID,
		DocumentID: f.DocumentID,
		Label:      f.Label,
		Slug:       f.Slug,
		Type:       f.Type,
	}
}

// POIGuideItem is one entry of the poi-guides collection: a POI plus the
// optional code of the legacy third-party tour attached to it.
type POIGuideItem struct {
	ID             int64  `json:"id,omitempty"`
	LegacyTourCode string `json:"legacyTourCode,omitempty"`
	POI            POI    `json:"poi"`
}

// FlexString decodes a JSON string or number into its textual form. Legacy
// tour exports are inconsistent about identifier types.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decoding flex string: %w", err)
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decoding flex string: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// FlexInt decodes an integer that legacy exports may write as 1, 1.0 or "1".
// Anything else, fractional values included, decodes to 0 without error.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = 0
	var v float64
	switch r := gjson.ParseBytes(b); r.Type {
	case gjson.Number:
		v = r.Num
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return nil
		}
		v = n
	default:
		return nil
	}
	if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
		*f = FlexInt(v)
	}
	return nil
}
