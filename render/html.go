package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/hupe1980/phonogo/inventory"
)

var funcs = template.FuncMap{
	"join": func(ss []string) string { return strings.Join(ss, ", ") },
}

const fragmentTmpl = `{{define "table"}}<table>
{{range .Grid}}<tr>
{{range .}}    <td>{{.}}</td>
{{end}}</tr>
{{end}}</table>

{{end}}{{define "fragment"}}<div><h1>{{.Name}}</h1>
{{- if .Consonants}}<h2>Consonants</h2>
{{- range .Consonants}}<h3>{{.Heading}}</h3>{{template "table" .Table}}{{end}}
{{- end}}
{{- if .Vowels}}<h2>Vowels</h2>
{{- range .Vowels}}<h3>{{.Heading}}</h3>{{template "table" .Table}}{{end}}
{{- end}}
{{- if .Apical}}<h3>Apical vowels:</h3><p>{{join .Apical}}</p>{{end}}
{{- if .Diphthongs}}<h3>Diphthongs:</h3><p>{{join .Diphthongs}}</p>{{end}}
{{- if .Triphthongs}}<h3>Triphthongs:</h3><p>{{join .Triphthongs}}</p>{{end -}}
</div>{{end}}`

const documentTmpl = `{{define "document"}}<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{range .Inventories}}{{template "fragment" .}}
{{end}}</body>
</html>
{{end}}`

var tmpl = template.Must(template.Must(template.New("render").Funcs(funcs).Parse(fragmentTmpl)).Parse(documentTmpl))

// HTML writes inv as an embeddable <div> fragment.
func HTML(w io.Writer, inv *inventory.Inventory) error {
	if inv == nil {
		return fmt.Errorf("render: nil inventory")
	}
	return tmpl.ExecuteTemplate(w, "fragment", inv)
}

// Document writes a complete HTML page holding one fragment per inventory.
func Document(w io.Writer, title string, invs ...*inventory.Inventory) error {
	for _, inv := range invs {
		if inv == nil {
			return fmt.Errorf("render: nil inventory")
		}
	}
	return tmpl.ExecuteTemplate(w, "document", struct {
		Title       string
		Inventories []*inventory.Inventory
	}{title, invs})
}
