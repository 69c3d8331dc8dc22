// Package jobcodec converts the structured job-posting editor fields to the
// description HTML that is stored, and recovers them from that HTML when a
// posting is edited again.
package jobcodec

import "strings"

// Item is one bullet of a list section.
type Item struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (i Item) blank() bool {
	return strings.TrimSpace(i.Title) == "" && strings.TrimSpace(i.Detail) == ""
}

// Fields are the editor fields that only live inside the description HTML.
type Fields struct {
	Intro            string `json:"intro"`
	WorkingHours     string `json:"working_hours"`
	Commitment       string `json:"commitment"`
	Address          string `json:"address"`
	MapsLink         string `json:"maps_link"`
	Responsibilities []Item `json:"responsibilities"`
	Qualifications   []Item `json:"qualifications"`
	Benefits         []Item `json:"benefits"`
}

func blankList() []Item {
	return []Item{{}}
}

// Blank returns the empty editor state with one blank row per list.
func Blank() Fields {
	return Fields{
		Responsibilities: blankList(),
		Qualifications:   blankList(),
		Benefits:         blankList(),
	}
}
