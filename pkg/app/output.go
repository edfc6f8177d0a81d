package app

import (
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// printOutput renders v with the Go template format (sprig functions available), or as YAML
// when format is empty.
func printOutput(w io.Writer, v interface{}, format string) error {
	if format == "" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode output")
		}
		return enc.Close()
	}

	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return errors.Wrap(err, "invalid --format template")
	}
	if err := tmpl.Execute(w, v); err != nil {
		return errors.Wrap(err, "failed to render --format template")
	}
	return nil
}
