package serializer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Number accepts a JSON number or a numeric string. Valid is false when the key was
// absent or null, or when the string spells NaN or an infinity.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number{Value: v, Valid: !math.IsNaN(v) && !math.IsInf(v, 0)}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number{Value: v, Valid: true}
	return nil
}
