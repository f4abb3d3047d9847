// Package config loads CLI tool settings from a JSON file with
// flag-based overrides and zero-value defaulting.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and snapshot settings.
type Config struct {
	// Paths
	DataDir      string `json:"data_dir"`
	RegistryJSON string `json:"registry_json"`
	SceneJSON    string `json:"scene_json"`
	OutputDir    string `json:"output_dir"`

	// Snapshot settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	WebPQuality int `json:"webp_quality"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DataDir   string
	Registry  string
	Scene     string
	OutputDir string
	Workers   int
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.Registry != "" {
		c.RegistryJSON = flags.Registry
	}
	if flags.Scene != "" {
		c.SceneJSON = flags.Scene
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.DataDir == "" {
		c.DataDir = detectDataDir()
	}

	// Resolve relative paths against the data dir
	if c.DataDir != "" {
		if c.RegistryJSON == "" {
			c.RegistryJSON = filepath.Join(c.DataDir, "body_metadata.json")
		} else if !filepath.IsAbs(c.RegistryJSON) {
			c.RegistryJSON = filepath.Join(c.DataDir, c.RegistryJSON)
		}

		if c.SceneJSON == "" {
			c.SceneJSON = filepath.Join(c.DataDir, "scene_manifest.json")
		} else if !filepath.IsAbs(c.SceneJSON) {
			c.SceneJSON = filepath.Join(c.DataDir, c.SceneJSON)
		}

		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(c.DataDir, "snapshots")
		}
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func detectDataDir() string {
	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir)} {
			if _, err := os.Stat(filepath.Join(base, "data", "body_metadata.json")); err == nil {
				return filepath.Join(base, "data")
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, "data", "body_metadata.json")); err == nil {
		return filepath.Join(cwd, "data")
	}

	return ""
}
