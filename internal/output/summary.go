package output

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const summaryTemplate = `{{ style "success" "Setup completed successfully" }}
{{- if .Renamed }}

{{ style "header" "Renamed" }}
  Project: {{ style "noun" .OldName }} -> {{ style "noun" .NewName }}
  Bundle:  {{ style "noun" .BundleID }}
  Folders: {{ .RenamedFolders | join ", " | default "none" }}
  Files:   {{ .RewrittenFiles }} updated
  Caches:  {{ .RemovedCaches | join ", " | default "none" }}
{{- else if .RenameSkipped }}

{{ style "subtle" (printf "Rename skipped: %s" .RenameSkipped) }}
{{- end }}
{{- if .InstallSkipped }}

{{ style "subtle" "Dependency installation skipped" }}
{{- else if .Steps }}

{{ style "header" "Installed" }}
{{- range .Steps }}
  - {{ . }}
{{- end }}
{{- end }}

Run your app with:
  iOS:     {{ style "noun" "yarn ios" }}
  Android: {{ style "noun" "yarn android" }}
`

// Report is the data rendered into the final summary.
type Report struct {
	Renamed        bool
	RenameSkipped  string
	OldName        string
	NewName        string
	BundleID       string
	RenamedFolders []string
	RewrittenFiles int
	RemovedCaches  []string

	Steps          []string
	InstallSkipped bool
}

var summary = template.Must(template.New("summary").Funcs(sprig.TxtFuncMap()).Funcs(template.FuncMap{
	"style": func(name, s string) string { return s },
}).Parse(summaryTemplate))

// RenderSummary renders report. When styled is false the output carries no
// escape sequences.
func RenderSummary(report Report, styled bool) (string, error) {
	tmpl, err := summary.Clone()
	if err != nil {
		return "", fmt.Errorf("failed to clone summary template: %w", err)
	}

	if styled {
		tmpl.Funcs(template.FuncMap{
			"style": func(name, s string) string {
				style, ok := styles[name]
				if !ok {
					return s
				}
				return style.Render(s)
			},
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}

	return buf.String(), nil
}
