package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/config"
	"anatomy-engine/internal/resolve"
	"anatomy-engine/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	registryPath := flag.String("registry", "", "Path to registry JSON (default: data/body_metadata.json)")
	scenePath := flag.String("scene", "", "Path to scene manifest JSON (default: data/scene_manifest.json)")
	dataDir := flag.String("data", "", "Path to data directory (default: auto-detect)")
	verbose := flag.Bool("v", false, "List every resolved structure")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		DataDir:  *dataDir,
		Registry: *registryPath,
		Scene:    *scenePath,
	})

	reg, err := anatomy.LoadRegistry(cfg.RegistryJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading registry: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Registry: %d structures (version %s, region %s)\n", reg.Len(), reg.Version, reg.Region)

	if pairs := reg.ValidateBilateral(); len(pairs) > 0 {
		fmt.Printf("Incomplete bilateral pairs: %d\n", len(pairs))
		for _, p := range pairs {
			fmt.Printf("  - %s: missing %s side (found %s)\n", p.Base, p.Missing, p.Found)
		}
	}

	meshes, err := scene.LoadManifest(cfg.SceneJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scene: %d meshes\n", len(meshes))

	idx := resolve.BuildIndex(reg)
	resolved, rep := resolve.Pass(meshes, reg, idx)

	fmt.Printf("\nResolution report:\n")
	fmt.Printf("  Matched:    %d\n", rep.Matched)
	fmt.Printf("  Unmatched:  %d\n", rep.Unmatched)
	fmt.Printf("  Filtered:   %d\n", rep.Filtered)
	fmt.Printf("  Duplicates: %d\n", rep.Duplicates)

	if len(rep.UnmatchedNames) > 0 {
		fmt.Printf("\nUnmatched meshes:\n")
		for _, name := range rep.UnmatchedNames {
			fmt.Printf("  - %s\n", name)
		}
	}

	typeCounts := make(map[anatomy.StructureType]int)
	for i := range resolved {
		typeCounts[resolved[i].Meta.Type]++
	}
	fmt.Printf("\nType distribution:\n")
	for _, t := range anatomy.AllTypes() {
		if typeCounts[t] > 0 {
			fmt.Printf("  %-10s %d\n", t, typeCounts[t])
		}
	}

	if *verbose {
		sort.Slice(resolved, func(i, j int) bool {
			return resolved[i].Meta.Key < resolved[j].Meta.Key
		})
		fmt.Printf("\nResolved structures:\n")
		for i := range resolved {
			r := &resolved[i]
			fmt.Printf("  %-40s -> %s (type=%s layer=%d)\n",
				r.MeshName, r.Meta.Key, r.Meta.Type, r.Meta.Layer)
		}
	}
}
