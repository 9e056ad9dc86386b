// Package derived computes every view the app renders from the raw category
// and entry collections: normalized references, filtered entry lists, balance
// and monthly aggregates, usage counts and the delete guard. Everything here
// is a pure function over the collections it is handed; nothing touches the
// database or keeps state between calls.
package derived

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// jsObjectPlaceholder is what a default JS object stringifies to. Upstream
// serializers have been observed leaking it, so it never counts as an id.
const jsObjectPlaceholder = "[object Object]"

// HexIDConverter is implemented by driver-native id wrappers that can render
// themselves as a hex string.
type HexIDConverter interface {
	ToHexString() string
}

// NormalizeID canonicalizes any of the known category-reference shapes into a
// single comparable key. It accepts a plain string id, a number, an object
// with `_id` or `id` (recursively), a driver wrapper carrying `$oid` or a
// hex-string conversion, or anything with a meaningful string conversion.
// Unrecognized shapes yield "", which never equals a legitimate id.
//
// Every cross-reference in the app (aggregation joins, filter matching, usage
// counting) must run both sides through this function; comparing a raw
// reference against a normalized one silently breaks the join.
func NormalizeID(ref any) string {
	switch v := ref.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return strings.TrimSpace(v.String())
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	obj, isObject := ref.(map[string]any)
	if isObject {
		if oid, ok := obj["$oid"].(string); ok {
			return strings.TrimSpace(oid)
		}
	}

	if converter, ok := ref.(HexIDConverter); ok {
		return strings.TrimSpace(converter.ToHexString())
	}

	if isObject {
		if id, ok := obj["_id"]; ok {
			return NormalizeID(id)
		}
		if id, ok := obj["id"]; ok {
			return NormalizeID(id)
		}
	}

	// A Stringer is the Go analogue of an overridden toString.
	if stringer, ok := ref.(fmt.Stringer); ok {
		converted := strings.TrimSpace(stringer.String())
		if converted == jsObjectPlaceholder {
			return ""
		}
		return converted
	}

	return ""
}
