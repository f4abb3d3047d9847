package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// jsonManifest matches the scene manifest dumped after glTF export:
// a flat list of mesh nodes with names, translations and (optionally)
// local vertex positions.
type jsonManifest struct {
	Meshes []jsonMesh `json:"meshes"`
}

type jsonMesh struct {
	Name        string       `json:"name"`
	Translation [3]float64   `json:"translation"`
	Vertices    [][3]float32 `json:"vertices"`
}

// LoadManifest reads a scene manifest JSON file. Nameless entries are
// skipped; they can never resolve.
func LoadManifest(path string) ([]Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var raw jsonManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	meshes := make([]Mesh, 0, len(raw.Meshes))
	for i, jm := range raw.Meshes {
		if jm.Name == "" {
			continue
		}
		meshes = append(meshes, Mesh{
			Name:        jm.Name,
			Translation: r3.Vec{X: jm.Translation[0], Y: jm.Translation[1], Z: jm.Translation[2]},
			Verts:       jm.Vertices,
			Handle:      i,
		})
	}
	return meshes, nil
}
