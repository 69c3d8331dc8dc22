package jobcodec

import (
	"bytes"
	"html/template"
	"strings"
)

const descriptionLayout = `
<div class="job-intro mb-8">
  <p class="text-gray-700 text-lg leading-relaxed">{{.Intro}}</p>
</div>

<div class="grid grid-cols-1 md:grid-cols-2 gap-4 mb-8">
  <div class="bg-gray-50 p-5 rounded-xl border border-gray-100">
    <h4 class="font-bold text-gray-900 flex items-center gap-2 mb-2">⏰ Working Hours</h4>
    <p class="text-gray-700 font-medium">{{.WorkingHours}}</p>
  </div>
  <div class="bg-yellow-50 p-5 rounded-xl border border-yellow-100">
    <h4 class="font-bold text-yellow-900 flex items-center gap-2 mb-2">🤝 Commitment</h4>
    <p class="text-yellow-800 font-medium">{{.Commitment}}</p>
  </div>
</div>

<div class="mb-10">
  <h3 class="text-xl font-bold text-gray-900 mb-3 flex items-center gap-2">📍 Office Location</h3>
  <p class="text-gray-600 whitespace-pre-line leading-relaxed">{{.Address}}</p>
  {{- if .MapsLink}}
  <a href="{{.MapsLink}}" target="_blank" class="inline-flex items-center gap-2 mt-4 text-blue-600 font-bold hover:underline bg-blue-50 px-4 py-2 rounded-lg transition-colors">👉 View on Google Maps</a>
  {{- end}}
</div>

<hr class="border-gray-100 my-8"/>

<div class="mb-10">
  <h3 class="text-xl font-bold text-gray-900 mb-6 flex items-center gap-2"><span class="text-green-600">✅</span> Key Responsibilities</h3>
  <ul class="space-y-3">{{template "items" .Responsibilities}}
  </ul>
</div>

<div class="mb-10">
  <h3 class="text-xl font-bold text-gray-900 mb-6 flex items-center gap-2"><span class="text-blue-600">🎓</span> Qualifications Required</h3>
  <ul class="space-y-3">{{template "items" .Qualifications}}
  </ul>
</div>

<div class="mb-10">
  <h3 class="text-xl font-bold text-gray-900 mb-6 flex items-center gap-2"><span class="text-yellow-500">⭐</span> Benefits &amp; Growth</h3>
  <ul class="space-y-3">{{template "items" .Benefits}}
  </ul>
</div>

<div class="mt-8 p-4 bg-yellow-50 border border-yellow-200 rounded-lg text-sm text-yellow-800 italic flex gap-3 items-start">
  <span class="text-xl">💡</span>
  <span>Note: Job responsibilities may evolve based on company requirements and candidate ability.</span>
</div>
{{define "items"}}{{range .}}
    <li class="flex items-start gap-3 mb-2">
      <span class="mt-2 w-1.5 h-1.5 rounded-full bg-gray-400 flex-shrink-0"></span>
      <span class="text-gray-700 leading-relaxed">{{if .Title}}<strong class="text-gray-900 font-bold">{{.Title}}:</strong> {{end}}{{.Detail}}</span>
    </li>{{end}}{{end}}`

var descriptionTemplate = template.Must(template.New("description").Parse(descriptionLayout))

type view struct {
	Intro            template.HTML
	WorkingHours     string
	Commitment       string
	Address          string
	MapsLink         string
	Responsibilities []Item
	Qualifications   []Item
	Benefits         []Item
}

func renderItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.blank() {
			continue
		}
		out = append(out, Item{Title: strings.TrimSpace(it.Title), Detail: strings.TrimSpace(it.Detail)})
	}
	return out
}

// introHTML escapes each intro line and joins the lines with <br/>.
func introHTML(intro string) template.HTML {
	lines := strings.Split(strings.ReplaceAll(intro, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = template.HTMLEscapeString(l)
	}
	return template.HTML(strings.Join(lines, "<br/>"))
}

// Compile renders the fields into the description HTML in a fixed order:
// intro, working hours and commitment, office location with an optional maps
// link, then the responsibilities, qualifications and benefits lists. List
// rows with neither title nor detail are dropped.
func Compile(f Fields) string {
	v := view{
		Intro:            introHTML(f.Intro),
		WorkingHours:     f.WorkingHours,
		Commitment:       f.Commitment,
		Address:          f.Address,
		MapsLink:         strings.TrimSpace(f.MapsLink),
		Responsibilities: renderItems(f.Responsibilities),
		Qualifications:   renderItems(f.Qualifications),
		Benefits:         renderItems(f.Benefits),
	}

	var buf bytes.Buffer
	_ = descriptionTemplate.Execute(&buf, v)
	return buf.String()
}
