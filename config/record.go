package config

import (
	"encoding/json"
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// Record is the flat key/value document holding collected deployment parameters.
// Values are scalars: string, int64, bool, or json.Number for integers that do not
// fit in 64 bits.
type Record map[string]any

// IsSet reports whether key holds a value. A missing key, nil and "" are unset;
// numbers and booleans are set whatever their value.
func (r Record) IsSet(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// String renders the value stored under key, or "" if it is unset.
func (r Record) String(key string) string {
	if !r.IsSet(key) {
		return ""
	}
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Merge returns old overlaid with new. Every key present in new replaces the one in
// old, empty values included; keys only in old are kept. Neither argument is modified.
func Merge(old, new Record) (Record, error) {
	merged := map[string]any{}
	maps.Copy(merged, old)

	if err := mergo.Merge(&merged, map[string]any(new), mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}
	return merged, nil
}

// normalize converts decoded json.Number values back into int64 where possible.
func normalize(r Record) Record {
	for k, v := range r {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			r[k] = i
		} else if f, err := n.Float64(); err == nil && !isIntegerLiteral(n) {
			r[k] = f
		}
	}
	return r
}

func isIntegerLiteral(n json.Number) bool {
	for _, c := range n.String() {
		if (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}
