package catalog

import (
	"regexp"
	"strings"
)

// MaterialRow is one material with its grade list, e.g. "Mild Steel" / "1022".
type MaterialRow struct {
	Name   string `json:"name"`
	Grades string `json:"grades"`
}

const materialSeparator = " | "

var (
	gradedMaterial = regexp.MustCompile(`(?i)^(.*?)\s*\(Grade\s*([^)]*)\)$`)
	gradeFragment  = regexp.MustCompile(`\(Grade.*?\)`)
)

// EncodeMaterials renders rows as `Name (Grade g) | Name`. Rows without a
// name are dropped.
func EncodeMaterials(rows []MaterialRow) string {
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if grades := strings.TrimSpace(r.Grades); grades != "" {
			parts = append(parts, name+" (Grade "+grades+")")
			continue
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, materialSeparator)
}

// DecodeMaterials parses a stored material string back into rows. Pipes
// outside parentheses separate materials; text without such a pipe is
// treated as a legacy comma-separated list (commas inside a grade group are
// kept, so "Steel (Grade 1022, 1018)" stays one row). Decoding never fails: blank input
// yields one blank row and unrecognised parts keep their text as the name.
func DecodeMaterials(text string) []MaterialRow {
	if strings.TrimSpace(text) == "" {
		return []MaterialRow{{}}
	}

	parts := splitOutsideParens(text, '|')
	if len(parts) == 1 {
		parts = splitOutsideParens(text, ',')
	}

	rows := make([]MaterialRow, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if m := gradedMaterial.FindStringSubmatch(part); m != nil {
			rows = append(rows, MaterialRow{Name: strings.TrimSpace(m[1]), Grades: strings.TrimSpace(m[2])})
			continue
		}
		rows = append(rows, MaterialRow{Name: strings.TrimSpace(stripFirst(gradeFragment, part))})
	}
	if len(rows) == 0 {
		return []MaterialRow{{}}
	}
	return rows
}

// splitOutsideParens splits s on sep wherever the separator is not followed
// by a ")" before the next "(" (that is, it is not inside a group).
func splitOutsideParens(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != sep || insideGroup(s[i+1:]) {
			continue
		}
		parts = append(parts, s[start:i])
		start = i + 1
	}
	return append(parts, s[start:])
}

func insideGroup(rest string) bool {
	if idx := strings.IndexAny(rest, "()"); idx >= 0 {
		return rest[idx] == ')'
	}
	return false
}

func stripFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
