// Package config handles ubiq project configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project config file looked up at the project root.
const FileName = "ubiq.toml"

// ErrGlossaryNotFound is returned when no glossary candidate exists.
var ErrGlossaryNotFound = fmt.Errorf("glossary not found: %w", fs.ErrNotExist)

// Config is the project configuration. It is built once at startup and passed
// explicitly to every component.
type Config struct {
	// Root is the project root every relative path resolves against.
	Root string `toml:"-"`

	// GlossaryPaths are glossary candidates in order of preference. The first
	// is the current location, later entries are legacy fallbacks.
	GlossaryPaths []string `toml:"glossary_paths"`

	// ScanDirs are the documentation roots scanned for term usage.
	ScanDirs []string `toml:"scan_dirs"`

	// Exclude holds glob patterns (slash-separated, relative to Root) that
	// the scanner and the nav checker skip.
	Exclude []string `toml:"exclude"`

	// StoplistExtra adds entries to the built-in stoplist.
	StoplistExtra []string `toml:"stoplist_extra"`

	// LinkTarget is the relative glossary URL used when inserting links.
	LinkTarget string `toml:"link_target"`

	Generate GenerateConfig `toml:"generate"`
	Nav      NavConfig      `toml:"nav"`
}

// GenerateConfig configures the glossary generator.
type GenerateConfig struct {
	BusinessDir string `toml:"business_dir"`
	ContextsDir string `toml:"contexts_dir"`
	Output      string `toml:"output"`
}

// NavConfig configures the mkdocs navigation checker.
type NavConfig struct {
	MkDocs  string `toml:"mkdocs"`
	DocsDir string `toml:"docs_dir"`
}

// Default returns the built-in configuration rooted at root.
func Default(root string) *Config {
	cfg := &Config{Root: root}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if len(c.GlossaryPaths) == 0 {
		c.GlossaryPaths = []string{
			"DDD_Artefacts/docs/ubiquitous-language/glossary.md",
			"DDD_Artefacts/docs/v2/ubiquitous-language/glossary.md",
		}
	}
	if len(c.ScanDirs) == 0 {
		c.ScanDirs = []string{
			"DDD_Artefacts/docs/business-model",
			"DDD_Artefacts/docs/domain-knowledge/bounded-contexts",
		}
	}
	if c.LinkTarget == "" {
		c.LinkTarget = "../ubiquitous-language/guidelines/glossary.md"
	}
	if c.Generate.BusinessDir == "" {
		c.Generate.BusinessDir = "business-model"
	}
	if c.Generate.ContextsDir == "" {
		c.Generate.ContextsDir = "DDD_Artefacts/docs/v2/domain-knowledge/core-contexts"
	}
	if c.Generate.Output == "" {
		c.Generate.Output = "DDD_Artefacts/docs/v2/ubiquitous-language/guidelines/glossary.md"
	}
	if c.Nav.MkDocs == "" {
		c.Nav.MkDocs = "mkdocs.yml"
	}
	if c.Nav.DocsDir == "" {
		c.Nav.DocsDir = "DDD_Artefacts/docs"
	}
}

// Load reads the project configuration.
//
// If path is empty, <root>/ubiq.toml is used when present and built-in
// defaults otherwise. An explicit path must exist.
func Load(root, path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join(root, FileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return Default(root), nil
		}
	}
	return LoadFrom(root, path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(root, path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Root = root
	cfg.applyDefaults()
	return &cfg, nil
}

// Resolve turns a config-relative path into a path under Root.
func (c *Config) Resolve(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// GlossaryPath returns the first glossary candidate that exists.
// fallback reports whether a legacy candidate was chosen.
func (c *Config) GlossaryPath() (path string, fallback bool, err error) {
	for i, candidate := range c.GlossaryPaths {
		resolved := c.Resolve(candidate)
		if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
			return resolved, i > 0, nil
		}
	}
	tried := make([]string, 0, len(c.GlossaryPaths))
	for _, candidate := range c.GlossaryPaths {
		tried = append(tried, c.Resolve(candidate))
	}
	return "", false, fmt.Errorf("%w (tried %s)", ErrGlossaryNotFound, strings.Join(tried, ", "))
}

// ScanRoots returns the resolved documentation roots.
func (c *Config) ScanRoots() []string {
	roots := make([]string, 0, len(c.ScanDirs))
	for _, d := range c.ScanDirs {
		roots = append(roots, c.Resolve(d))
	}
	return roots
}
