package arr

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
)

// FromJSON decodes a JSON document into a container. Objects become *Map
// values with keys in document order, arrays become []any, integer literals
// become int (float64 when out of range) and other numbers float64.
func FromJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) any {
	switch {
	case r.IsObject():
		out := NewMap()
		r.ForEach(func(key, value gjson.Result) bool {
			out.Set(key.String(), fromResult(value))
			return true
		})
		return out
	case r.IsArray():
		out := make([]any, 0)
		r.ForEach(func(_, value gjson.Result) bool {
			out = append(out, fromResult(value))
			return true
		})
		return out
	}
	switch r.Type {
	case gjson.String:
		return r.String()
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if i, err := strconv.Atoi(r.Raw); err == nil {
			return i
		}
		return r.Float()
	}
	return nil
}

// ToJSON encodes a container as JSON. *Map values keep their key order.
func ToJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
