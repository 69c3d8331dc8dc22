package jobcodec

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxListLookahead is how many siblings after a heading are scanned for its <ul>.
const maxListLookahead = 5

type document struct {
	root     *html.Node
	headings []*html.Node
}

func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H3, atom.H4, atom.H5, atom.Strong:
		return true
	}
	return false
}

func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func find(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent concatenates every text node below n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// introText is textContent with <br> turned back into newlines.
func introText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		switch {
		case c.Type == html.TextNode:
			sb.WriteString(c.Data)
		case c.Type == html.ElementNode && c.DataAtom == atom.Br:
			sb.WriteString("\n")
		}
		return true
	})
	lines := strings.Split(sb.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// heading returns the first heading-like element, in document order, whose
// text contains keyword case-insensitively.
func (d *document) heading(keyword string) *html.Node {
	keyword = strings.ToLower(keyword)
	for _, h := range d.headings {
		if strings.Contains(strings.ToLower(textContent(h)), keyword) {
			return h
		}
	}
	return nil
}

// scalar reads the value that follows a heading: the next element when it is
// a paragraph, otherwise the text of the very next node.
func (d *document) scalar(keyword string) string {
	h := d.heading(keyword)
	if h == nil {
		return ""
	}
	if next := nextElementSibling(h); next != nil && next.DataAtom == atom.P {
		return strings.TrimSpace(textContent(next))
	}
	if h.NextSibling != nil {
		return strings.TrimSpace(textContent(h.NextSibling))
	}
	return ""
}

// firstScalar tries each keyword in turn until one yields a value.
func (d *document) firstScalar(keywords ...string) string {
	for _, k := range keywords {
		if v := d.scalar(k); v != "" {
			return v
		}
	}
	return ""
}

func (d *document) list(keyword string) []Item {
	h := d.heading(keyword)
	if h == nil {
		return blankList()
	}

	next := nextElementSibling(h)
	for attempts := 0; next != nil && next.DataAtom != atom.Ul && attempts < maxListLookahead; attempts++ {
		next = nextElementSibling(next)
	}
	if next == nil || next.DataAtom != atom.Ul {
		return blankList()
	}

	items := make([]Item, 0)
	for _, li := range elementChildren(next) {
		items = append(items, parseItem(li))
	}
	if len(items) == 0 {
		return blankList()
	}
	return items
}

// parseItem splits a list entry into title and detail. An emphasised
// <strong> holds the title; without one the text is split on its first colon.
func parseItem(li *html.Node) Item {
	full := textContent(li)

	if strong := find(li, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.Strong }); strong != nil {
		strongText := textContent(strong)
		title := strings.TrimSpace(strings.TrimSuffix(strongText, ":"))
		detail := strings.Replace(full, strongText, "", 1)
		detail = strings.TrimSpace(strings.TrimPrefix(detail, ":"))
		return Item{Title: title, Detail: detail}
	}

	if title, detail, ok := strings.Cut(full, ":"); ok {
		return Item{Title: strings.TrimSpace(title), Detail: strings.TrimSpace(detail)}
	}
	return Item{Detail: strings.TrimSpace(full)}
}

// Decompile recovers editor fields from description HTML. It is a heuristic:
// the first heading containing a keyword wins and anything that cannot be
// found comes back blank. It never fails.
func Decompile(description string) Fields {
	root, err := html.Parse(strings.NewReader(description))
	if err != nil {
		return Blank()
	}

	d := &document{root: root}
	walk(root, func(n *html.Node) bool {
		if isHeading(n) {
			d.headings = append(d.headings, n)
		}
		return true
	})

	f := Fields{
		WorkingHours:     d.scalar("Working"),
		Commitment:       d.firstScalar("Commitment", "Bond"),
		Address:          d.firstScalar("Location", "Address"),
		Responsibilities: d.list("Responsibilities"),
		Qualifications:   d.list("Qualification"),
		Benefits:         d.list("Benefit"),
	}

	if a := find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.A && strings.Contains(getAttr(n, "href"), "maps")
	}); a != nil {
		f.MapsLink = getAttr(a, "href")
	}

	intro := find(root, func(n *html.Node) bool { return n.Type == html.ElementNode && hasClass(n, "job-intro") })
	var introP *html.Node
	if intro != nil {
		introP = find(intro, func(n *html.Node) bool { return n != intro && n.DataAtom == atom.P })
	}
	if introP == nil {
		introP = find(root, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.P })
	}
	if introP != nil {
		f.Intro = introText(introP)
	}

	return f
}
