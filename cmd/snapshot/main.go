package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/batch"
	"anatomy-engine/internal/config"
	"anatomy-engine/internal/resolve"
	"anatomy-engine/internal/scene"
	"anatomy-engine/internal/snapshot"
	"anatomy-engine/internal/visibility"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	dataDir := flag.String("data", "", "Path to data directory (default: auto-detect)")
	outputDir := flag.String("output", "", "Output directory (default: data/snapshots)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	sweep := flag.Bool("sweep", false, "Render one snapshot per peel depth and per type")
	peel := flag.Int("peel", 0, "Peel depth 0-3 for a single snapshot")
	query := flag.String("search", "", "Search query")
	isolate := flag.Bool("isolate", false, "Search isolation mode (requires -search)")
	peeled := flag.String("peeled", "", "Comma-separated keys to manually peel")

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
		DataDir:   *dataDir,
		OutputDir: *outputDir,
		Workers:   *workers,
	})

	reg, err := anatomy.LoadRegistry(cfg.RegistryJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading registry: %v\n", err)
		os.Exit(1)
	}
	meshes, err := scene.LoadManifest(cfg.SceneJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	idx := resolve.BuildIndex(reg)
	resolved, rep := resolve.Pass(meshes, reg, idx)
	fmt.Printf("Resolved %d/%d meshes (%d unmatched, %d filtered, %d duplicate)\n",
		rep.Matched, rep.Total, rep.Unmatched, rep.Filtered, rep.Duplicates)

	if *sweep {
		jobs := batch.SweepJobs(resolved)
		fmt.Printf("Rendering %d snapshots with %d workers...\n", len(jobs), cfg.Workers)
		start := time.Now()
		results := batch.Run(batch.Config{
			OutputDir:   cfg.OutputDir,
			RenderSize:  cfg.RenderSize,
			Supersample: cfg.Supersample,
			Workers:     cfg.Workers,
		}, resolved, jobs)

		failed := 0
		for _, r := range results {
			if !r.Success {
				failed++
				fmt.Fprintf(os.Stderr, "  %s: %s\n", r.Name, r.Error)
			}
		}
		if err := batch.WriteManifest(cfg.OutputDir, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		}
		fmt.Printf("Done: %d/%d in %.1fs -> %s\n",
			len(results)-failed, len(results), time.Since(start).Seconds(), cfg.OutputDir)
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	state := visibility.NewState()
	for i := 0; i < *peel; i++ {
		state.PeelDeeper()
	}
	for _, key := range strings.Split(*peeled, ",") {
		if key = strings.TrimSpace(key); key != "" {
			state.TogglePeel(key)
		}
	}
	if *query != "" {
		state.SetQuery(*query)
		state.SetIsolation(*isolate)
		if !anyMatch(resolved, *query) {
			for _, s := range visibility.Suggest(reg, *query, 3) {
				fmt.Printf("No match for %q; did you mean %q?\n", *query, s)
			}
		}
	}

	img := snapshot.Render(resolved, state, cfg.RenderSize, cfg.Supersample)

	outPath := filepath.Join(cfg.OutputDir, "snapshot.webp")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "WebP encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", outPath)
}

func anyMatch(resolved []resolve.Resolved, query string) bool {
	for i := range resolved {
		if visibility.Matches(resolved[i].Meta, query) {
			return true
		}
	}
	return false
}
