package docstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEqual_StrictAcrossKinds(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same strings", String("a"), String("a"), true},
		{"different strings", String("a"), String("b"), false},
		{"same numbers", Number(1), Number(1), true},
		{"number vs numeric string", Number(1), String("1"), false},
		{"bool vs number", Bool(true), Number(1), false},
		{"null vs null", Null(), Null(), true},
		{"null vs string", Null(), String(""), false},
		{"string arrays equal", StringArray([]string{"a", "b"}), StringArray([]string{"a", "b"}), true},
		{"string arrays order matters", StringArray([]string{"b", "a"}), StringArray([]string{"a", "b"}), false},
		{"number arrays equal", NumberArray([]float64{1, 2}), NumberArray([]float64{1, 2}), true},
		{"empty arrays different kinds", StringArray(nil), NumberArray(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestValueContains(t *testing.T) {
	arr := StringArray([]string{"a", "b"})
	assert.True(t, arr.Contains(String("a")))
	assert.False(t, arr.Contains(String("c")))
	assert.False(t, arr.Contains(Number(1)))

	nums := NumberArray([]float64{1, 2})
	assert.True(t, nums.Contains(Number(2)))
	assert.False(t, nums.Contains(String("2")))

	assert.False(t, String("ab").Contains(String("a")), "non-array never contains")
	assert.False(t, Null().Contains(Null()))
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(int64(7))
	require.NoError(t, err)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, 7.0, n)

	v, err = FromAny([]any{"x", "y"})
	require.NoError(t, err)
	ss, ok := v.AsStringArray()
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, ss)

	v, err = FromAny([]any{1.0, 2.0})
	require.NoError(t, err)
	ns, ok := v.AsNumberArray()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, ns)

	_, err = FromAny([]any{"x", 1.0})
	assert.Error(t, err)

	_, err = FromAny(map[string]any{})
	assert.Error(t, err)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := Document{
		ID: "doc-1",
		Fields: Fields{
			"email":     String("a@x.com"),
			"age":       Number(30),
			"verified":  Bool(true),
			"nickname":  Null(),
			"tags":      StringArray([]string{"vip"}),
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "doc-1", decoded.ID)
	assert.True(t, decoded.Get("email").Equal(String("a@x.com")))
	assert.True(t, decoded.Get("age").Equal(Number(30)))
	assert.True(t, decoded.Get("verified").Equal(Bool(true)))
	assert.True(t, decoded.Get("tags").Equal(StringArray([]string{"vip"})))
}

func TestDocumentGetAndProject(t *testing.T) {
	doc := Document{ID: "d1", Fields: Fields{"a": Number(1), "b": String("x")}}

	assert.True(t, doc.Get("_id").Equal(String("d1")))
	assert.True(t, doc.Get("missing").IsNull())

	projected := doc.Project([]string{"a"})
	assert.Equal(t, "d1", projected.ID)
	assert.True(t, projected.Get("a").Equal(Number(1)))
	_, hasB := projected.Fields["b"]
	assert.False(t, hasB)

	full := doc.Project(nil)
	assert.Len(t, full.Fields, 2)
}
