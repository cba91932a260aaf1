package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses GraphData from YAML (a JSON document is valid YAML too),
// normalizes adjacency and validates node references.
func Decode(data []byte) (*GraphData, error) {
	var g GraphData
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("core: decode graph: %w", err)
	}
	g.Normalize()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &g, nil
}

// LoadFile reads a .yaml, .yml or .json graph file.
func LoadFile(path string) (*GraphData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("core: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var g GraphData
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("core: decode %s: %w", path, err)
		}
		g.Normalize()
		if err := g.Validate(); err != nil {
			return nil, err
		}
		return &g, nil
	}

	return Decode(data)
}
