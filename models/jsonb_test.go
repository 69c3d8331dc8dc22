package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONColumnsScan(t *testing.T) {
	t.Run("string from sqlite", func(t *testing.T) {
		var s StringList
		require.NoError(t, s.Scan(`["a","b"]`))
		assert.Equal(t, StringList{"a", "b"}, s)
	})

	t.Run("bytes from postgres", func(t *testing.T) {
		var d DimensionList
		require.NoError(t, d.Scan([]byte(`[{"label":"Head height","symbol":"k","value":"5.3"}]`)))
		assert.Equal(t, DimensionList{{Label: "Head height", Symbol: "k", Value: "5.3"}}, d)
	})

	t.Run("null gives empty", func(t *testing.T) {
		var f FinishImageMap
		require.NoError(t, f.Scan(nil))
		assert.NotNil(t, f)
		assert.Empty(t, f)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var s SpecificationList
		assert.Error(t, s.Scan(42))
	})
}

func TestJSONColumnsValueNeverNull(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	v, err = FinishImageMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)

	v, err = SpecificationList{{Key: "Standard", Value: "DIN 933"}}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"Standard","value":"DIN 933"}]`, string(v.([]byte)))
}
