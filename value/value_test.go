package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjrsjz/fJson/value"
)

func TestKeywordValue(t *testing.T) {
	tests := []struct {
		lexeme string
		want   value.Value
		ok     bool
	}{
		{"true", value.Boolean(true), true},
		{"TRUE", value.Boolean(true), true},
		{"false", value.Boolean(false), true},
		{"null", value.Null{}, true},
		{"None", value.Null{}, true},
		{"banana", nil, false},
	}
	for _, tt := range tests {
		got, ok := value.KeywordValue(tt.lexeme)
		assert.Equal(t, tt.ok, ok)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestEqualIsTypeStrict(t *testing.T) {
	assert.True(t, value.Equal(value.Integer(1), value.Integer(1)))
	assert.False(t, value.Equal(value.Integer(1), value.Float(1.0)), "Integer and Float are distinct variants")
}

func TestEqualNested(t *testing.T) {
	a := value.List{value.Integer(1), value.String("x")}
	b := value.List{value.Integer(1), value.String("x")}
	c := value.List{value.Integer(1), value.String("y")}
	assert.True(t, value.Equal(a, b))
	assert.False(t, value.Equal(a, c))
}

func TestSetAddDedupes(t *testing.T) {
	s := value.NewSet()
	require.NoError(t, s.Add(value.Integer(1)))
	require.NoError(t, s.Add(value.Integer(1)))
	require.NoError(t, s.Add(value.Integer(2)))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(value.Integer(1)))
	assert.False(t, s.Contains(value.Integer(3)))
}

func TestSetAddRejectsUnhashable(t *testing.T) {
	s := value.NewSet()
	err := s.Add(value.List{value.Integer(1)})
	assert.Error(t, err)
}

func TestSetEqualityIgnoresOrder(t *testing.T) {
	a := value.NewSet()
	require.NoError(t, a.Add(value.Integer(1)))
	require.NoError(t, a.Add(value.Integer(2)))

	b := value.NewSet()
	require.NoError(t, b.Add(value.Integer(2)))
	require.NoError(t, b.Add(value.Integer(1)))

	assert.True(t, value.Equal(a, b))
}

func TestStringifyKey(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.String("a"), "a"},
		{value.Integer(42), "42"},
		{value.Boolean(true), "true"},
		{value.Null{}, "null"},
		{value.Identifier("foo"), "foo"},
	}
	for _, tt := range tests {
		got, err := value.Stringify(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestStringifyRejectsUnstringifiable(t *testing.T) {
	_, err := value.Stringify(value.List{})
	assert.Error(t, err)
}

func TestHashKeyTuple(t *testing.T) {
	k1, err := value.HashKey(value.Tuple{value.Integer(1), value.String("a")})
	require.NoError(t, err)
	k2, err := value.HashKey(value.Tuple{value.Integer(1), value.String("a")})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	_, err = value.HashKey(value.Tuple{value.List{}})
	assert.Error(t, err, "a tuple containing an unhashable element is itself unhashable")
}
