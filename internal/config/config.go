package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"sheetfuse/domain/core"
	"sheetfuse/domain/table"
)

// Config holds a consolidation run's settings. Values come from the
// environment (SHEETFUSE_*), optionally seeded by a YAML file; CLI flags
// override both.
type Config struct {
	SourceDir     string   `yaml:"source_dir"`
	OutputPath    string   `yaml:"output_path"`
	Policy        string   `yaml:"policy"`
	IncludeHidden bool     `yaml:"include_hidden"`
	StrictDecode  bool     `yaml:"strict_decode"`
	Extensions    []string `yaml:"extensions"`
	Verbose       bool     `yaml:"verbose"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		OutputPath: "merged.xlsx",
		Policy:     "union",
	}
}

// LoadFile merges a YAML config file into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// FromEnv overlays SHEETFUSE_* environment variables onto c.
func (c *Config) FromEnv() {
	if v := os.Getenv("SHEETFUSE_SOURCE_DIR"); v != "" {
		c.SourceDir = v
	}
	if v := os.Getenv("SHEETFUSE_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("SHEETFUSE_POLICY"); v != "" {
		c.Policy = v
	}
	if v := os.Getenv("SHEETFUSE_INCLUDE_HIDDEN"); v != "" {
		c.IncludeHidden = parseBool(v)
	}
	if v := os.Getenv("SHEETFUSE_STRICT_DECODE"); v != "" {
		c.StrictDecode = parseBool(v)
	}
	if v := os.Getenv("SHEETFUSE_EXTENSIONS"); v != "" {
		c.Extensions = splitList(v)
	}
}

// Validate performs the configuration checks that must fail before any file
// is processed.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return core.NewSourceDirError("", "source directory not set")
	}
	info, err := os.Stat(c.SourceDir)
	if err != nil {
		return core.NewSourceDirError(c.SourceDir, err.Error())
	}
	if !info.IsDir() {
		return core.NewSourceDirError(c.SourceDir, "not a directory")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path not set", core.ErrOutputPath)
	}
	if _, err := c.ParsedPolicy(); err != nil {
		return err
	}
	return nil
}

// ParsedPolicy resolves the configured policy spelling.
func (c *Config) ParsedPolicy() (table.Policy, error) {
	return table.ParsePolicy(c.Policy)
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
