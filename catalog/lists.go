package catalog

import (
	"encoding/json"
	"strings"
)

type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Dimension struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
	Value  string `json:"value"`
}

type Application struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// applicationEntry decodes one stored application, which is either a bare
// string (older rows) or a {name, image} object.
type applicationEntry struct {
	app Application
	ok  bool
}

func (e *applicationEntry) UnmarshalJSON(data []byte) error {
	e.ok = false
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		e.app, e.ok = Application{Name: name}, true
		return nil
	}

	var obj struct {
		Name  string  `json:"name"`
		Image *string `json:"image"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	e.app = Application{Name: obj.Name}
	if obj.Image != nil {
		e.app.Image = *obj.Image
	}
	e.ok = true
	return nil
}

// NormalizeApplications converts the stored applications column into the
// current {name, image} shape. Strings become {name, ""}; objects keep their
// name and image; anything else is dropped. A non-array value yields an
// empty list.
func NormalizeApplications(raw []byte) []Application {
	out := make([]Application, 0)
	var entries []applicationEntry
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return out
	}
	for _, e := range entries {
		if e.ok {
			out = append(out, e.app)
		}
	}
	return out
}

// CleanSpecifications drops rows missing a key or value and trims the rest.
func CleanSpecifications(specs []Specification) []Specification {
	out := make([]Specification, 0, len(specs))
	for _, s := range specs {
		s.Key, s.Value = strings.TrimSpace(s.Key), strings.TrimSpace(s.Value)
		if s.Key == "" || s.Value == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// CleanDimensions drops rows missing a label or value. Symbol is optional.
func CleanDimensions(dims []Dimension) []Dimension {
	out := make([]Dimension, 0, len(dims))
	for _, d := range dims {
		d.Label, d.Symbol, d.Value = strings.TrimSpace(d.Label), strings.TrimSpace(d.Symbol), strings.TrimSpace(d.Value)
		if d.Label == "" || d.Value == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}

// CleanApplications drops applications without a name.
func CleanApplications(apps []Application) []Application {
	out := make([]Application, 0, len(apps))
	for _, a := range apps {
		a.Name, a.Image = strings.TrimSpace(a.Name), strings.TrimSpace(a.Image)
		if a.Name == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}
