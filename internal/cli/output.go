package cli

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// printer renders command results as text, JSON or YAML.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(format string, w io.Writer) *printer {
	return &printer{format: format, w: w}
}

// print writes v in the configured format; text delegates to the
// command-specific formatter.
func (p *printer) print(v interface{}, text func(w io.Writer) error) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(p.w)
	}
}

// urlResult is the structured form of commands that yield an image URL.
type urlResult struct {
	URL string `json:"url" yaml:"url"`
}

func (p *printer) printURL(url string) error {
	return p.print(urlResult{URL: url}, func(w io.Writer) error {
		_, err := io.WriteString(w, url+"\n")
		return err
	})
}
