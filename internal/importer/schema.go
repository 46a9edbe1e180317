package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SubmissionSchema is the file format for a submission that is reviewed
// outside the interactive form.
type SubmissionSchema struct {
	Name            string          `json:"name" yaml:"name"`
	Variant         string          `json:"variant,omitempty" yaml:"variant,omitempty"`
	Roles           TextList        `json:"roles,omitempty" yaml:"roles,omitempty"`
	Entities        TextList        `json:"entities,omitempty" yaml:"entities,omitempty"`
	Functionalities TextList        `json:"functionalities,omitempty" yaml:"functionalities,omitempty"`
	APIIssues       TextList        `json:"api_issues,omitempty" yaml:"api_issues,omitempty"`
	BackendIssues   TextList        `json:"backend_issues,omitempty" yaml:"backend_issues,omitempty"`
	Explanation     string          `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Deadline        string          `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	User            *PresenceImport `json:"user,omitempty" yaml:"user,omitempty"`
	Security        *PresenceImport `json:"security,omitempty" yaml:"security,omitempty"`
	Verdict         string          `json:"verdict,omitempty" yaml:"verdict,omitempty"`
}

// PresenceImport records whether a required entity is mentioned. Explicit
// defaults to true and Implicit to false when omitted.
type PresenceImport struct {
	Explicit *bool `json:"explicit,omitempty" yaml:"explicit,omitempty"`
	Implicit *bool `json:"implicit,omitempty" yaml:"implicit,omitempty"`
}

// TextList is a list field given either as one newline-delimited string or
// as a list of strings.
type TextList []string

// Text joins the entries back into newline-delimited form text.
func (l TextList) Text() string {
	return strings.Join(l, "\n")
}

// splitText splits newline-delimited form text, accepting CRLF line endings.
func splitText(s string) TextList {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func (l *TextList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = splitText(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*l = items
	return nil
}

func (l *TextList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = splitText(s)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
}

// Format is the encoding of a submission file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported submission file %q (expected .json, .yaml or .yml)", path)
}

// LoadSubmissionSchema reads and parses a submission file.
func LoadSubmissionSchema(path string) (*SubmissionSchema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSubmissionSchema(data, format)
}

// ParseSubmissionSchema decodes data in the given format. Unknown keys are
// rejected so typos in field names do not silently drop input.
func ParseSubmissionSchema(data []byte, format Format) (*SubmissionSchema, error) {
	var schema SubmissionSchema
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing submission file: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing submission file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &schema, nil
}
