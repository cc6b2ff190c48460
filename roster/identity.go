// Package roster resolves participant identity and occupancy for match
// payloads. The API it consumes spells the same concepts many different ways
// across endpoints and historical versions, so everything here works on plain
// map records probed through ranked key-path tables. Every function is pure:
// no I/O, no module state, inputs are never mutated.
package roster

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeIdentity canonicalizes a raw identifier into a comparable form:
// a finite float64 when the value is numeric (or a string that parses as a
// number), otherwise a trimmed lowercase string. The numeric preference is
// deliberate: one endpoint sends a player id as 42, another as "42", and the
// two must compare equal, while opaque string ids still compare
// case-insensitively. Returns false when the value carries no usable identity.
func NormalizeIdentity(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		return normalizeStringIdentity(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		return v, true
	case float32:
		return NormalizeIdentity(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		return normalizeStringIdentity(v.String())
	case bool:
		return nil, false
	default:
		if s, ok := value.(fmt.Stringer); ok {
			return normalizeStringIdentity(s.String())
		}
		return nil, false
	}
}

func normalizeStringIdentity(raw string) (interface{}, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return n, true
	}
	return strings.ToLower(trimmed), true
}

// IdentityKey renders a normalized identity as a map key. Numeric and string
// identities are prefixed separately so the number 1 never collides with an
// opaque id that happens to render as "1" after some other transformation.
func IdentityKey(value interface{}) (string, bool) {
	norm, ok := NormalizeIdentity(value)
	if !ok {
		return "", false
	}
	switch v := norm.(type) {
	case float64:
		return "n:" + strconv.FormatFloat(v, 'f', -1, 64), true
	case string:
		return "s:" + v, true
	}
	return "", false
}

// IDsMatch reports whether two raw identifiers denote the same entity.
// Unresolvable identifiers match nothing, including themselves when nil.
func IDsMatch(a, b interface{}) bool {
	keyA, okA := IdentityKey(a)
	if !okA {
		return false
	}
	keyB, okB := IdentityKey(b)
	return okB && keyA == keyB
}

// ExtractIdentity returns the first key path in keyPaths whose resolved value
// normalizes to a usable identifier, or nil when none does. Paths may be flat
// keys or dotted paths into nested objects; missing intermediates are skipped.
func ExtractIdentity(record map[string]interface{}, keyPaths []string) interface{} {
	if record == nil {
		return nil
	}
	for _, path := range keyPaths {
		raw, ok := lookupPath(record, path)
		if !ok {
			continue
		}
		if norm, ok := NormalizeIdentity(raw); ok {
			return norm
		}
	}
	return nil
}

// lookupPath walks a dotted path through nested map records.
func lookupPath(record map[string]interface{}, path string) (interface{}, bool) {
	current := record
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// FormatIdentity renders a normalized identity for display ("Player 42",
// log lines). Integral numbers drop their fraction.
func FormatIdentity(value interface{}) string {
	norm, ok := NormalizeIdentity(value)
	if !ok {
		return ""
	}
	switch v := norm.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}
	return ""
}
