package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ggcadres/gg-cadres/cadre"
)

// Format is a structured text format for specs and results.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var validFormats = map[Format]bool{
	FormatYAML: true, FormatTOML: true, FormatJSON: true,
}

// ParseFormat parses a format name; the empty string means YAML.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatYAML, nil
	}
	f := Format(strings.ToLower(s))
	if f == "yml" {
		f = FormatYAML
	}
	if !validFormats[f] {
		return "", fmt.Errorf("unknown format %q; valid: yaml, toml, json", s)
	}
	return f, nil
}

// FormatFromPath picks a format from a file extension, defaulting to YAML.
// JSON documents are valid YAML, so ".json" specs go through the YAML decoder.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}
	return FormatYAML
}

// cadreDocument wraps cadres for TOML, which has no top-level arrays.
type cadreDocument struct {
	Cadres [][]string `toml:"cadres"`
}

// MarshalCadres renders cadres as one document. YAML and JSON output is a
// sequence of sequences; TOML output is a single "cadres" array.
func MarshalCadres(cadres []cadre.Cadre, format Format) ([]byte, error) {
	plain := make([][]string, 0, len(cadres))
	for _, c := range cadres {
		plain = append(plain, []string(c))
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(plain, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("JSON marshal failed: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cadreDocument{Cadres: plain}); err != nil {
			return nil, fmt.Errorf("TOML marshal failed: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(plain)
		if err != nil {
			return nil, fmt.Errorf("YAML marshal failed: %w", err)
		}
		return data, nil
	}
}

// WriteCadres renders cadres completely before writing, so w receives either
// the whole document or nothing.
func WriteCadres(w io.Writer, cadres []cadre.Cadre, format Format) error {
	data, err := MarshalCadres(cadres, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ReadCadres parses a document written by WriteCadres.
func ReadCadres(r io.Reader, format Format) ([]cadre.Cadre, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading cadres: %w", err)
	}
	var plain [][]string
	switch format {
	case FormatTOML:
		var doc cadreDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing cadres: %w", err)
		}
		plain = doc.Cadres
	default:
		if err := yaml.Unmarshal(data, &plain); err != nil {
			return nil, fmt.Errorf("parsing cadres: %w", err)
		}
	}
	cadres := make([]cadre.Cadre, 0, len(plain))
	for _, c := range plain {
		cadres = append(cadres, cadre.Cadre(c))
	}
	return cadres, nil
}
