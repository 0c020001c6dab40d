package swapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"172", ptr(172.0)},
		{"1,358", ptr(1358.0)},
		{" 0.75 ", ptr(0.75)},
		{"1e3", ptr(1000.0)},
		{"unknown", nil},
		{"Unknown", nil},
		{"n/a", nil},
		{"none", nil},
		{"", nil},
		{"30-165", nil},
		{"NaN", nil},
		{"indefinite", nil},
	}
	for _, tt := range tests {
		got := ParseNumber(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "ParseNumber(%q)", tt.in)
			continue
		}
		require.NotNil(t, got, "ParseNumber(%q)", tt.in)
		assert.Equal(t, *tt.want, *got, "ParseNumber(%q)", tt.in)
	}
}

func TestParseInt(t *testing.T) {
	got := ParseInt("10465")
	require.NotNil(t, got)
	assert.Equal(t, int32(10465), *got)

	got = ParseInt("1.5")
	require.NotNil(t, got)
	assert.Equal(t, int32(1), *got)

	assert.Nil(t, ParseInt("200000000000"))
	assert.Nil(t, ParseInt("unknown"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"arid", "temperate"}, SplitList("arid, temperate"))
	assert.Equal(t, []string{"Gary Kurtz", "Rick McCallum"}, SplitList("Gary Kurtz, Rick McCallum"))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b ,"))
	assert.Empty(t, SplitList(""))
}

func ptr(f float64) *float64 {
	return &f
}
