package derived

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type hexWrapper struct{ hex string }

func (w hexWrapper) ToHexString() string { return w.hex }

type stringerWrapper struct{ value string }

func (w stringerWrapper) String() string { return w.value }

func TestNormalizeID_AllReferenceShapesAgree(t *testing.T) {
	const id = "64f1b2c3d4e5f60718293a4b"

	shapes := []any{
		id,
		"  " + id + "  ",
		map[string]any{"_id": id},
		map[string]any{"id": id},
		map[string]any{"$oid": id},
		map[string]any{"_id": map[string]any{"$oid": id}},
		hexWrapper{hex: id},
		stringerWrapper{value: id},
	}

	for _, shape := range shapes {
		assert.Equal(t, id, NormalizeID(shape), "shape %#v should normalize to the raw id", shape)
	}
}

func TestNormalizeID_Numbers(t *testing.T) {
	assert.Equal(t, "42", NormalizeID(42))
	assert.Equal(t, "42", NormalizeID(int64(42)))
	assert.Equal(t, "42", NormalizeID(float64(42)))
	assert.Equal(t, "42.5", NormalizeID(42.5))
	assert.Equal(t, "42", NormalizeID(json.Number("42")))
}

func TestNormalizeID_UnrecognizedShapesYieldEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeID(nil))
	assert.Equal(t, "", NormalizeID(true))
	assert.Equal(t, "", NormalizeID([]any{"a", "b"}))
	assert.Equal(t, "", NormalizeID(map[string]any{"title": "Mercado"}))
	assert.Equal(t, "", NormalizeID(struct{ Name string }{Name: "x"}))
}

func TestNormalizeID_DefaultObjectStringIsRejected(t *testing.T) {
	assert.Equal(t, "", NormalizeID(stringerWrapper{value: "[object Object]"}))
}

func TestNormalizeID_OidWinsOverNestedIDs(t *testing.T) {
	ref := map[string]any{
		"$oid": "aaa",
		"_id":  "bbb",
		"id":   "ccc",
	}
	assert.Equal(t, "aaa", NormalizeID(ref))
}

func TestNormalizeID_UnderscoreIDWinsOverID(t *testing.T) {
	ref := map[string]any{
		"_id": "bbb",
		"id":  "ccc",
	}
	assert.Equal(t, "bbb", NormalizeID(ref))
}
