package batch

import (
	"encoding/json"
	"math"
)

// Payload carries entity-specific fields the core never interprets. The
// outbound adapter reads the keys it understands through the typed
// accessors below.
type Payload map[string]any

// String returns the value for key if it is a string.
func (p Payload) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Int returns the value for key as an int64. JSON numbers decode as float64,
// so whole-valued floats and json.Number are accepted as well as Go ints.
func (p Payload) Int(key string) (int64, bool) {
	switch v := p[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool returns the value for key if it is a bool.
func (p Payload) Bool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}
