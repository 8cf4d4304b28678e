// Package render writes a resolved inputs record in the formats consumed by
// downstream pipeline steps.
package render

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pipeline-inputs/internal/inputs"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatEnv  = "env"
)

// newDelimiter returns the terminator of a multiline value block. It is
// random per write so input values cannot predict it.
var newDelimiter = func() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate delimiter: %w", err)
	}
	return "ghadelimiter_" + hex.EncodeToString(buf), nil
}

// Supported reports whether format can be passed to Write.
func Supported(format string) bool {
	switch format {
	case FormatJSON, FormatYAML, FormatEnv:
		return true
	default:
		return false
	}
}

// Write renders in to w using format (json, yaml or env).
func Write(w io.Writer, in inputs.Inputs, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(in); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(in); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	case FormatEnv:
		return writeEnv(w, in)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// writeEnv emits key=value lines in field table order. Values spanning
// several lines use the key<<DELIMITER block form of step output files,
// with a fresh delimiter for every block.
func writeEnv(w io.Writer, in inputs.Inputs) error {
	for _, spec := range inputs.Fields() {
		value, ok := in.Value(spec.Key)
		if !ok {
			return fmt.Errorf("no value for input %s", spec.Key)
		}
		text := formatValue(value)

		var err error
		if strings.ContainsAny(text, "\r\n") {
			delimiter, derr := newDelimiter()
			if derr != nil {
				return derr
			}
			if strings.Contains(text, delimiter) {
				return fmt.Errorf("value of input %s contains the output delimiter", spec.Key)
			}
			_, err = fmt.Fprintf(w, "%s<<%s\n%s\n%s\n", spec.Key, delimiter, text, delimiter)
		} else {
			_, err = fmt.Fprintf(w, "%s=%s\n", spec.Key, text)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", spec.Key, err)
		}
	}
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case inputs.Integer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Fields renders the field table as a human-readable table.
func Fields(specs []inputs.FieldSpec) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Group", "Key", "Kind", "Default"})

	for _, spec := range specs {
		def := "(required)"
		if !spec.Required {
			def = strconv.Quote(fmt.Sprint(spec.Default))
		}
		tw.AppendRow(table.Row{spec.Group, spec.Key, spec.Kind.String(), def})
	}

	return tw.Render()
}
