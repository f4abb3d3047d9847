package anatomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// jsonRegistry matches the body_metadata.json schema emitted by the
// export pipeline.
type jsonRegistry struct {
	Version    string                   `json:"version"`
	Region     string                   `json:"region"`
	Structures map[string]jsonStructure `json:"structures"`
}

type jsonStructure struct {
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Layer   int        `json:"layer"`
	Regions []string   `json:"regions"`
	Center  [3]float64 `json:"center"`
}

// LoadRegistry reads a registry JSON file. The file is assumed
// pre-validated by the export pipeline; entries with an unknown type
// degrade to Other and layers clamp into [0, MaxLayer].
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("anatomy: read %s: %w", path, err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes registry JSON bytes.
func ParseRegistry(data []byte) (*Registry, error) {
	var raw jsonRegistry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("anatomy: parse registry: %w", err)
	}

	reg := &Registry{
		Structures: make(map[string]*StructureMetadata, len(raw.Structures)),
		Version:    raw.Version,
		Region:     raw.Region,
	}
	for key, js := range raw.Structures {
		name := js.Name
		if name == "" {
			name = key
		}
		layer := js.Layer
		if layer < 0 {
			layer = 0
		}
		if layer > MaxLayer {
			layer = MaxLayer
		}
		reg.Structures[key] = &StructureMetadata{
			Key:         key,
			DisplayName: name,
			Type:        ParseType(js.Type),
			Layer:       layer,
			Regions:     js.Regions,
			Center:      r3.Vec{X: js.Center[0], Y: js.Center[1], Z: js.Center[2]},
		}
	}
	return reg, nil
}

// IncompletePair describes a bilateral structure with only one side
// present in the registry.
type IncompletePair struct {
	Base    string
	Found   string // key of the side that exists
	Missing string // "left" or "right"
}

// ValidateBilateral checks that every _l entry has its _r partner and
// vice versa. Incomplete pairs are diagnostics for the export
// pipeline, not load errors — the viewer renders whatever exists.
func (r *Registry) ValidateBilateral() []IncompletePair {
	var out []IncompletePair
	for key := range r.Structures {
		switch {
		case strings.HasSuffix(key, "_l"):
			if _, ok := r.Structures[key[:len(key)-2]+"_r"]; !ok {
				out = append(out, IncompletePair{Base: key[:len(key)-2], Found: key, Missing: "right"})
			}
		case strings.HasSuffix(key, "_r"):
			if _, ok := r.Structures[key[:len(key)-2]+"_l"]; !ok {
				out = append(out, IncompletePair{Base: key[:len(key)-2], Found: key, Missing: "left"})
			}
		}
	}
	return out
}
