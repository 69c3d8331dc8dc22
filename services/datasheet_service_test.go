package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durable-fastener/durable-cms-backend/catalog"
)

func TestRenderDatasheet(t *testing.T) {
	s := newTestServices(t, nil, nil)

	req := hexBolt()
	req.HeadType = "Hex"
	req.Specifications = []catalog.Specification{{Key: "Standard", Value: "DIN 933"}}
	req.DimensionalSpecifications = []catalog.Dimension{{Label: "Head height", Symbol: "k", Value: "5.3"}}
	_, err := s.Products.Create(ctx(), req)
	require.NoError(t, err)

	p, data, err := s.Datasheets.Render(ctx(), "hex-head-bolt")
	require.NoError(t, err)
	assert.Equal(t, "Hex Head Bolt", p.Name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, _, err = s.Datasheets.Render(ctx(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
