package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies an on-disk encoding for a roster.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from a file extension.
// Anything that is not .json is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses a roster document.
// An empty document decodes to an empty roster.
func Decode(data []byte, format Format) (*Roster, error) {
	var employees []Employee
	if len(bytes.TrimSpace(data)) == 0 {
		return &Roster{Employees: []Employee{}}, nil
	}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &employees); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &employees); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	if employees == nil {
		employees = []Employee{}
	}
	return &Roster{Employees: employees}, nil
}

// Encode serializes a roster.
// Records keep their slice order. Skills are always written, empty as [].
// JSON output uses four-space indentation.
func Encode(r *Roster, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		employees := make([]Employee, len(r.Employees))
		for i, e := range r.Employees {
			if e.Skills == nil {
				e.Skills = []string{}
			}
			employees[i] = e
		}
		data, err := json.MarshalIndent(employees, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(buildRosterNode(r))
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// buildRosterNode creates a yaml.Node tree for a Roster with stable key order.
func buildRosterNode(r *Roster) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	if len(r.Employees) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for i := range r.Employees {
		seq.Content = append(seq.Content, buildEmployeeNode(&r.Employees[i]))
	}
	return seq
}

// buildEmployeeNode creates a yaml.Node for an Employee.
func buildEmployeeNode(e *Employee) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addIntField(node, "id", e.ID)
	addStringField(node, "name", e.Name)
	addStringField(node, "position", e.Position)
	addFloatField(node, "salary", e.Salary)
	addStringSliceField(node, "skills", e.Skills)

	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(value), Tag: "!!int"},
	)
}

// addFloatField writes whole amounts without a fraction (1500, not 1500.0).
// Non-finite values use the YAML spellings so they decode again.
func addFloatField(node *yaml.Node, key string, value float64) {
	var text string
	switch {
	case math.IsNaN(value):
		text = ".nan"
	case math.IsInf(value, 1):
		text = ".inf"
	case math.IsInf(value, -1):
		text = "-.inf"
	default:
		text = strconv.FormatFloat(value, 'f', -1, 64)
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: text},
	)
}

func addStringSliceField(node *yaml.Node, key string, values []string) {
	seqNode := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range values {
		seqNode.Content = append(seqNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: v, Tag: "!!str"},
		)
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		seqNode,
	)
}
