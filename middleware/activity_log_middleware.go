package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
	"github.com/durable-fastener/durable-cms-backend/utils"
)

// CreatedResourceKey is set by create handlers to the new record's key so
// the activity entry can point at it.
const CreatedResourceKey = "createdResourceID"

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

type resourceSpec struct {
	resourceType string
	table        string // empty when there is no row to snapshot
	keyColumn    string
	nameField    string
	fixedKey     string // singleton rows addressed without a path param
}

// pathToResource maps admin URL segments to the resource they write.
var pathToResource = map[string]resourceSpec{
	"categories":       {models.ResourceTypeCategory, "categories", "id", "name", ""},
	"sub-categories":   {models.ResourceTypeCategory, "sub_categories", "id", "name", ""},
	"child-categories": {models.ResourceTypeCategory, "child_categories", "id", "name", ""},
	"products":         {models.ResourceTypeProduct, "products", "id", "name", ""},
	"jobs":             {models.ResourceTypeJob, "jobs", "id", "title", ""},
	"job-attributes":   {models.ResourceTypeJobAttribute, "job_attributes", "id", "value", ""},
	"blogs":            {models.ResourceTypeBlog, "blogs", "id", "title", ""},
	"enquiries":        {models.ResourceTypeEnquiry, "enquiries", "id", "email", ""},
	"gallery":          {models.ResourceTypeGallery, "life_gallery", "id", "title", ""},
	"site-content":     {models.ResourceTypeSiteContent, "site_content", "id", "", strconv.Itoa(models.SiteContentID)},
	"menu-items":       {models.ResourceTypeMenuItem, "menu_items", "id", "label", ""},
	"site-links":       {models.ResourceTypeSiteLink, "site_links", "key_name", "key_name", ""},
	"uploads":          {models.ResourceTypeMedia, "", "", "", ""},
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   models.ActionCreate,
	http.MethodPatch:  models.ActionUpdate,
	http.MethodPut:    models.ActionUpdate,
	http.MethodDelete: models.ActionDelete,
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records every admin write with before/after
// snapshots of the affected row. Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware(db *gorm.DB, activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, ok := methodToActionVerb[c.Request.Method]
		if !ok {
			c.Next()
			return
		}

		adminID, _ := c.Get(AdminIDKey)
		id, ok := adminID.(uuid.UUID)
		if !ok {
			config.Log.Warn("[activity-logging] admin info not in context")
			c.Next()
			return
		}
		adminEmail := c.GetString(AdminEmailKey)

		spec, ok := extractResource(c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}
		if spec.resourceType == models.ResourceTypeMedia {
			verb = models.ActionUpload
		}
		action := models.ActionName(verb, spec.resourceType)

		resourceID := spec.fixedKey
		if resourceID == "" && c.Request.Method != http.MethodPost {
			resourceID = firstParam(c, "id", "key")
		}

		var before map[string]interface{}
		if c.Request.Method != http.MethodPost && resourceID != "" {
			before = snapshot(db, spec, resourceID)
		}

		c.Next()

		if created := c.GetString(CreatedResourceKey); created != "" {
			resourceID = created
		}

		req := services.LogActivityRequest{
			AdminID:      id,
			AdminEmail:   adminEmail,
			Action:       action,
			ResourceType: spec.resourceType,
			ResourceID:   resourceID,
			IPAddress:    utils.GetClientIP(c),
			UserAgent:    c.GetHeader("User-Agent"),
		}

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			var after map[string]interface{}
			if resourceID != "" && c.Request.Method != http.MethodDelete {
				after = snapshot(db, spec, resourceID)
			}
			req.ResourceName = resourceName(spec, after, before)
			req.Changes = services.CreateChanges(before, after)
			req.Status = models.StatusSuccess
		} else {
			req.ResourceName = resourceName(spec, before)
			req.Status = models.StatusFailed
			req.ErrorMessage = "Request failed with status " + http.StatusText(status)
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()
		activity.LogActivity(ctx, req)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResource walks the path from the end and returns the first segment
// that names a resource, e.g. "/api/v1/admin/enquiries/<id>/status" gives
// enquiries.
func extractResource(path string) (resourceSpec, bool) {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if spec, ok := pathToResource[parts[i]]; ok {
			return spec, true
		}
	}
	return resourceSpec{}, false
}

func firstParam(c *gin.Context, names ...string) string {
	for _, n := range names {
		if v := c.Param(n); v != "" {
			return v
		}
	}
	return ""
}

// snapshot loads the row as a column map. Missing rows give nil.
func snapshot(db *gorm.DB, spec resourceSpec, key string) map[string]interface{} {
	if spec.table == "" {
		return nil
	}
	ctx, cancel := config.WithTimeout()
	defer cancel()

	row := map[string]interface{}{}
	err := db.WithContext(ctx).Table(spec.table).Where(spec.keyColumn+" = ?", key).Take(&row).Error
	if err != nil {
		config.Log.Debug("[activity-logging] snapshot miss",
			zap.String("table", spec.table),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}

// resourceName reads the name field from the first non-nil snapshot.
func resourceName(spec resourceSpec, rows ...map[string]interface{}) string {
	if spec.nameField == "" {
		return ""
	}
	for _, row := range rows {
		if v, ok := row[spec.nameField]; ok && v != nil {
			return toString(v)
		}
	}
	return ""
}

// toString converts any value to string
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
