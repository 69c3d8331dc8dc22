package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "drywall-screw-3-zinc", Slugify("Drywall Screw #3 (Zinc)"))
	assert.Equal(t, "m4-x-25mm", Slugify("  M4 x 25mm!! "))
	assert.Equal(t, "", Slugify("###"))
}

func TestProductSlug(t *testing.T) {
	assert.Equal(t, "custom-slug", ProductSlug(" custom-slug ", "Ignored Name"))
	assert.Equal(t, "hex-bolt", ProductSlug("", "Hex Bolt"))
}
