package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"label-sync/core/reconcile"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
)

// hexColor matches a six digit hex color with an optional leading '#'.
var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Format is a manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file or object name.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes and validates a manifest. source names the origin in errors.
func Parse(source string, data []byte, format Format) ([]reconcile.Label, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, reconcile.NewConfigurationError(source, "manifest is empty", nil)
	}

	var labels []reconcile.Label
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &labels)
	default:
		err = json.Unmarshal(data, &labels)
	}
	if err != nil {
		return nil, reconcile.NewConfigurationError(source, fmt.Sprintf("malformed %s", format), err)
	}

	if err := Validate(source, labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// Validate checks names and colors and rejects case-insensitive duplicates.
func Validate(source string, labels []reconcile.Label) error {
	fold := cases.Fold()
	seen := make(map[string]string, len(labels))
	var problems []string

	for i, l := range labels {
		if strings.TrimSpace(l.Name) == "" {
			problems = append(problems, fmt.Sprintf("entry %d: name is required", i))
			continue
		}
		if !hexColor.MatchString(l.Color) {
			problems = append(problems, fmt.Sprintf("%q: color %q is not a 6 digit hex value", l.Name, l.Color))
		}

		key := fold.String(l.Name)
		if first, ok := seen[key]; ok {
			problems = append(problems, fmt.Sprintf("%q: duplicates %q", l.Name, first))
			continue
		}
		seen[key] = l.Name
	}

	if len(problems) > 0 {
		return reconcile.NewConfigurationError(source, strings.Join(problems, "; "), nil)
	}
	return nil
}
