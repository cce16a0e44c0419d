package sigdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/norio-nomura/lazyseq/pkg/accum"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

// Format selects how Render prints signatures.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the formats Render accepts.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown format %q: must be one of %v", s, Formats)
	}
	return f, nil
}

// Render writes sigs to w in the given format. Doc lines are written only when withDoc is set.
func Render(w io.Writer, format Format, sigs []Signature, withDoc bool) error {
	if !withDoc {
		sigs = accum.Collect(xiter.Map(slices.Values(sigs), func(s Signature, _ int) Signature {
			s.Doc = ""
			return s
		}))
	}
	switch format {
	case FormatText:
		_, err := io.WriteString(w, renderText(sigs))
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(accum.Collect(slices.Values(sigs)), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(accum.Collect(slices.Values(sigs))); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	}
	return fmt.Errorf("unknown format %q: must be one of %v", format, Formats)
}

// renderText prints a "package" header whenever the package changes, then one "func" line per signature.
func renderText(sigs []Signature) string {
	var b strings.Builder
	for i, sig := range xiter.Enumerate(slices.Values(sigs)) {
		if i == 0 || sigs[i-1].Package != sig.Package {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "package %s\n\n", sig.Package)
		}
		if sig.Doc != "" {
			fmt.Fprintf(&b, "// %s\n", sig.Doc)
		}
		fmt.Fprintf(&b, "func %s\n", sig.Text)
	}
	return b.String()
}
