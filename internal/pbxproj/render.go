package pbxproj

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed project.pbxproj.tmpl
var skeleton string

//go:embed settings.tmpl
var settingsBlock string

var projectTmpl = template.Must(
	template.Must(template.New("pbxproj").Funcs(template.FuncMap{
		"quote":       Quote,
		"quoteAlways": QuoteAlways,
	}).Parse(skeleton)).New("settings").Parse(settingsBlock),
)

// Render writes g as a project.pbxproj document: every section of the
// fixed skeleton, with g's files listed in the build file, file reference,
// main group and Sources phase sections.
func Render(w io.Writer, g *Graph, s Settings) error {
	data := struct {
		*Graph
		Settings Settings
	}{g, s}
	if err := projectTmpl.ExecuteTemplate(w, "pbxproj", data); err != nil {
		return fmt.Errorf("render pbxproj: %w", err)
	}
	return nil
}
