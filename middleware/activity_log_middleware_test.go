package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/durable-fastener/durable-cms-backend/models"
)

func TestExtractResource(t *testing.T) {
	cases := []struct {
		path     string
		resource string
		table    string
		found    bool
	}{
		{"/api/v1/admin/products/0190c0de", models.ResourceTypeProduct, "products", true},
		{"/api/v1/admin/enquiries/0190c0de/status", models.ResourceTypeEnquiry, "enquiries", true},
		{"/api/v1/admin/categories/0190c0de/sub-categories", models.ResourceTypeCategory, "sub_categories", true},
		{"/api/v1/admin/site-links/whatsapp", models.ResourceTypeSiteLink, "site_links", true},
		{"/api/v1/admin/uploads", models.ResourceTypeMedia, "", true},
		{"/api/v1/admin/logout", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			spec, ok := extractResource(tc.path)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.resource, spec.resourceType)
			assert.Equal(t, tc.table, spec.table)
		})
	}
}

func TestResourceNamePrefersFirstSnapshot(t *testing.T) {
	spec := pathToResource["products"]
	after := map[string]interface{}{"name": "Hex Bolt v2"}
	before := map[string]interface{}{"name": "Hex Bolt"}

	assert.Equal(t, "Hex Bolt v2", resourceName(spec, after, before))
	assert.Equal(t, "Hex Bolt", resourceName(spec, nil, before))
	assert.Equal(t, "", resourceName(pathToResource["site-content"], before))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", toString("abc"))
	assert.Equal(t, "abc", toString([]byte("abc")))
	assert.Equal(t, "1.5", toString(1.5))
	assert.Equal(t, "42", toString(int64(42)))
	assert.Equal(t, "true", toString(true))
}
