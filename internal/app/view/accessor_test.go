package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibe_tracker/internal/domain/entity"
)

func TestFirstNonEmpty_SkipsEmptyValues(t *testing.T) {
	item := entity.RawItem{"name": "", "collectionName": "Series A"}

	v, ok := FirstNonEmpty(item, Field("name"), Field("collectionName"))
	require.True(t, ok)
	assert.Equal(t, "Series A", v)
}

func TestFirstPresent_KeepsZero(t *testing.T) {
	item := entity.RawItem{"tokenId": json.Number("0"), "id": "abc"}

	v, ok := FirstPresent(item, Field("tokenId"), Field("id"))
	require.True(t, ok)
	assert.Equal(t, "0", ToString(v))
}

func TestNested(t *testing.T) {
	item := entity.RawItem{"metadata": map[string]any{"image": "https://img/1.png", "deep": map[string]any{"x": 1}}}

	assert.Equal(t, "https://img/1.png", StringOf(item, "", Nested("metadata", "image")))
	assert.Equal(t, "1", StringOf(item, "", Nested("metadata", "deep", "x")))
	_, ok := Nested("metadata", "image", "nope")(item)
	assert.False(t, ok)
	_, ok = Nested("missing", "image")(item)
	assert.False(t, ok)
}

func TestExtractList(t *testing.T) {
	arr := []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}, "skip-me"}

	assert.Len(t, ExtractList(map[string]any{"data": arr}), 2)
	assert.Len(t, ExtractList(arr), 2)
	assert.Empty(t, ExtractList(map[string]any{"success": true}))
	assert.Empty(t, ExtractList("not json"))
	assert.Empty(t, ExtractList(nil))
}

func TestToFloat_RejectsNonFinite(t *testing.T) {
	_, ok := ToFloat("NaN")
	assert.False(t, ok)
	_, ok = ToFloat("+Inf")
	assert.False(t, ok)
	_, ok = ToFloat(true)
	assert.False(t, ok)
	f, ok := ToFloat(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)
}
