package catalog

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// SizeRow is one entry of the size axis.
type SizeRow struct {
	Diameter string `json:"diameter"`
	Length   string `json:"length"`
}

// FinishRow is one entry of the finish axis. Uploading is editor state only.
type FinishRow struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Uploading bool   `json:"uploading,omitempty"`
}

// Variant is a single diameter/length/finish combination.
type Variant struct {
	Diameter string `json:"diameter"`
	Length   string `json:"length"`
	Finish   string `json:"finish"`
}

func validSizes(sizes []SizeRow) []SizeRow {
	seen := make(map[SizeRow]bool)
	out := make([]SizeRow, 0, len(sizes))
	for _, s := range sizes {
		row := SizeRow{Diameter: strings.TrimSpace(s.Diameter), Length: strings.TrimSpace(s.Length)}
		if row.Diameter == "" && row.Length == "" {
			continue
		}
		if seen[row] {
			continue
		}
		seen[row] = true
		out = append(out, row)
	}
	return out
}

func validFinishes(finishes []FinishRow) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(finishes))
	for _, f := range finishes {
		name := strings.TrimSpace(f.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Reconcile turns the two editor axes into the full variant set that replaces
// whatever is stored for the product. Sizes with a diameter or a length and
// finishes with a name are kept (duplicates collapse to the first row). Both
// axes present gives the cross product; one axis alone is emitted with the
// other axis blank; no valid rows gives no variants.
func Reconcile(sizes []SizeRow, finishes []FinishRow) []Variant {
	vs := validSizes(sizes)
	vf := validFinishes(finishes)

	switch {
	case len(vs) > 0 && len(vf) > 0:
		out := make([]Variant, 0, len(vs)*len(vf))
		for _, s := range vs {
			for _, f := range vf {
				out = append(out, Variant{Diameter: s.Diameter, Length: s.Length, Finish: f})
			}
		}
		return out
	case len(vs) > 0:
		out := make([]Variant, 0, len(vs))
		for _, s := range vs {
			out = append(out, Variant{Diameter: s.Diameter, Length: s.Length})
		}
		return out
	case len(vf) > 0:
		out := make([]Variant, 0, len(vf))
		for _, f := range vf {
			out = append(out, Variant{Finish: f})
		}
		return out
	default:
		return []Variant{}
	}
}

// FinishImageMap derives the finish name to image lookup stored on the
// product. Finishes without an image are left out.
func FinishImageMap(finishes []FinishRow) map[string]string {
	out := make(map[string]string)
	for _, f := range finishes {
		name := strings.TrimSpace(f.Name)
		image := strings.TrimSpace(f.Image)
		if name != "" && image != "" {
			out[name] = image
		}
	}
	return out
}

// AxesFromVariants rebuilds the editor axes from stored variants, keeping the
// first-seen order. Each axis falls back to a single blank row.
func AxesFromVariants(variants []Variant, finishImages map[string]string) ([]SizeRow, []FinishRow) {
	sizes := make([]SizeRow, 0)
	seenSize := make(map[SizeRow]bool)
	finishes := make([]FinishRow, 0)
	seenFinish := make(map[string]bool)

	for _, v := range variants {
		if v.Diameter != "" || v.Length != "" {
			row := SizeRow{Diameter: v.Diameter, Length: v.Length}
			if !seenSize[row] {
				seenSize[row] = true
				sizes = append(sizes, row)
			}
		}
		if v.Finish != "" && !seenFinish[v.Finish] {
			seenFinish[v.Finish] = true
			finishes = append(finishes, FinishRow{Name: v.Finish, Image: finishImages[v.Finish]})
		}
	}

	if len(sizes) == 0 {
		sizes = []SizeRow{{}}
	}
	if len(finishes) == 0 {
		finishes = []FinishRow{{}}
	}
	return sizes, finishes
}

// Diameters returns the distinct non-blank diameters in ascending order.
func Diameters(variants []Variant) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range variants {
		if v.Diameter == "" || seen[v.Diameter] {
			continue
		}
		seen[v.Diameter] = true
		out = append(out, v.Diameter)
	}
	sort.Strings(out)
	return out
}

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

func parseLeadingInt(s string) (int, bool) {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, false
	}
	return n, true
}

// lengthLess orders tokens by their leading integer. Tokens without one sort
// after numeric tokens; ties fall back to plain string order.
func lengthLess(a, b string) bool {
	na, okA := parseLeadingInt(a)
	nb, okB := parseLeadingInt(b)
	switch {
	case okA && okB:
		if na != nb {
			return na < nb
		}
	case okA != okB:
		return okA
	}
	return a < b
}

// Lengths returns the length tokens available for a diameter. Stored lengths
// may be comma-joined, so they are split and flattened before de-duplication.
func Lengths(variants []Variant, diameter string) []string {
	if diameter == "" {
		return []string{}
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range variants {
		if v.Diameter != diameter || v.Length == "" {
			continue
		}
		for _, token := range strings.Split(v.Length, ",") {
			token = strings.TrimSpace(token)
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			out = append(out, token)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return lengthLess(out[i], out[j]) })
	return out
}

// Finishes returns the finishes offered for a diameter and length token, in
// first-seen order. A variant qualifies when its length equals the token or
// contains it, which covers comma-joined lengths.
func Finishes(variants []Variant, diameter, length string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range variants {
		if v.Diameter != diameter {
			continue
		}
		if v.Length != length && (v.Length == "" || !strings.Contains(v.Length, length)) {
			continue
		}
		if v.Finish == "" || seen[v.Finish] {
			continue
		}
		seen[v.Finish] = true
		out = append(out, v.Finish)
	}
	return out
}

// DisplayImages prepends the selected finish's image to the gallery. A
// finish without an image leaves the gallery untouched.
func DisplayImages(images []string, finishImages map[string]string, finish string) []string {
	out := make([]string, 0, len(images)+1)
	if finish != "" {
		if img := finishImages[finish]; img != "" {
			out = append(out, img)
		}
	}
	return append(out, images...)
}

// Selection is the shopper's current choice on the product page.
type Selection struct {
	Diameter string `json:"diameter" form:"diameter"`
	Length   string `json:"length" form:"length"`
	Finish   string `json:"finish" form:"finish"`
}

// Options is everything the product page needs to render the selectors.
type Options struct {
	Diameters []string  `json:"diameters"`
	Lengths   []string  `json:"lengths"`
	Finishes  []string  `json:"finishes"`
	Selected  Selection `json:"selected"`
	Images    []string  `json:"images"`
}

// SelectOptions walks diameter, then length, then finish. A missing or
// unavailable diameter or length falls back to the first available option;
// an unavailable finish is cleared.
func SelectOptions(variants []Variant, images []string, finishImages map[string]string, sel Selection) Options {
	opts := Options{Diameters: Diameters(variants)}

	if !slices.Contains(opts.Diameters, sel.Diameter) {
		sel.Diameter = ""
		if len(opts.Diameters) > 0 {
			sel.Diameter = opts.Diameters[0]
		}
	}

	opts.Lengths = Lengths(variants, sel.Diameter)
	if !slices.Contains(opts.Lengths, sel.Length) {
		sel.Length = ""
		if len(opts.Lengths) > 0 {
			sel.Length = opts.Lengths[0]
		}
	}

	opts.Finishes = Finishes(variants, sel.Diameter, sel.Length)
	if !slices.Contains(opts.Finishes, sel.Finish) {
		sel.Finish = ""
	}

	opts.Selected = sel
	opts.Images = DisplayImages(images, finishImages, sel.Finish)
	return opts
}
