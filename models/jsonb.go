package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/durable-fastener/durable-cms-backend/catalog"
)

// ═══════════════════════════════════════════════════════════
// JSONB column types
// ═══════════════════════════════════════════════════════════

type (
	StringList        []string
	SpecificationList []catalog.Specification
	DimensionList     []catalog.Dimension
	FinishImageMap    map[string]string
)

// scanJSON decodes a JSON column. Postgres hands back []byte, SQLite may
// hand back string.
func scanJSON(value any, dest any, name string) error {
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("failed to scan %s: unsupported type %T", name, value)
	}
}

func (s *StringList) Scan(value any) error {
	*s = make(StringList, 0)
	if value == nil {
		return nil
	}
	return scanJSON(value, s, "StringList")
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(s))
}

func (s *SpecificationList) Scan(value any) error {
	*s = make(SpecificationList, 0)
	if value == nil {
		return nil
	}
	return scanJSON(value, s, "SpecificationList")
}

func (s SpecificationList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]catalog.Specification{})
	}
	return json.Marshal([]catalog.Specification(s))
}

func (d *DimensionList) Scan(value any) error {
	*d = make(DimensionList, 0)
	if value == nil {
		return nil
	}
	return scanJSON(value, d, "DimensionList")
}

func (d DimensionList) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal([]catalog.Dimension{})
	}
	return json.Marshal([]catalog.Dimension(d))
}

func (f *FinishImageMap) Scan(value any) error {
	*f = make(FinishImageMap)
	if value == nil {
		return nil
	}
	return scanJSON(value, f, "FinishImageMap")
}

func (f FinishImageMap) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(map[string]string(f))
}
