package wildpat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"sigs.k8s.io/yaml"
)

// ConfigEnv names the environment variable that overrides DefaultConfigPath.
const ConfigEnv = "WILDPAT_CONFIG"

// TemplateConfig is a named template in a Config.
type TemplateConfig struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

// Config describes a Set: its options, inline templates and template list
// files to include.
type Config struct {
	// Marker is the wildcard marker as a one-byte string. Empty selects DefaultMarker.
	Marker string `json:"marker,omitempty"`

	// MaxOutputLen limits Format output; 0 selects DefaultMaxOutputLen.
	MaxOutputLen int `json:"maxOutputLen,omitempty"`

	// Prefilter enables glob prefiltering in the Set.
	Prefilter bool `json:"prefilter,omitempty"`

	// Templates are added first, in order.
	Templates []TemplateConfig `json:"templates,omitempty"`

	// Includes are URLs or paths of template lists, loaded after Templates.
	Includes []string `json:"includes,omitempty"`
}

// LoadConfig reads and validates a YAML or JSON config from URL.
// URL may be any location supported by afs; plain paths are local files.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", URL, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", URL, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML or JSON config document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the marker and that template names are unique and non-empty.
func (c *Config) Validate() error {
	if _, err := MarkerFromString(c.Marker); err != nil {
		return err
	}

	var errs []error
	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		switch {
		case t.Name == "":
			errs = append(errs, fmt.Errorf("templates[%d]: name is empty", i))
		case seen[t.Name]:
			errs = append(errs, fmt.Errorf("templates[%d]: %w: %s", i, ErrDuplicateName, t.Name))
		}
		seen[t.Name] = true
	}
	return errors.Join(errs...)
}

// Options returns the pattern options described by the config.
func (c *Config) Options() (Options, error) {
	marker, err := MarkerFromString(c.Marker)
	if err != nil {
		return Options{}, err
	}
	return Options{Marker: marker, MaxOutputLen: c.MaxOutputLen}.withDefaults(), nil
}

// NewSet builds a Set from the config. Includes are downloaded with afs and
// parsed as template lists; their warnings go to the returned slice unless
// handler is non-nil.
func (c *Config) NewSet(ctx context.Context, handler WarningHandler) (*Set, []ParseWarning, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, nil, err
	}

	set := NewSetWithOptions(SetOptions{Pattern: opts, Prefilter: c.Prefilter})
	if handler != nil {
		set.SetWarningHandler(handler)
	}

	for _, t := range c.Templates {
		if err := set.Add(t.Name, t.Template); err != nil {
			return nil, nil, err
		}
	}

	fs := afs.New()
	var warnings []ParseWarning
	for _, URL := range c.Includes {
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, nil, fmt.Errorf("reading template list %s: %w", URL, err)
		}
		warnings = append(warnings, set.AddTemplates(data)...)
	}
	return set, warnings, nil
}

// DefaultConfigPath determines where the config is expected.
// The path is resolved in order:
//
//  1. $WILDPAT_CONFIG (with ~ expanded)
//  2. $XDG_CONFIG_HOME/wildpat/config.yaml (if XDG_CONFIG_HOME is set)
//  3. ~/.config/wildpat/config.yaml
//
// The file is not required to exist.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return expandTilde(p)
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wildpat", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config", "wildpat", "config.yaml"), nil
}

// expandTilde expands ~ and ~user prefixes in a path.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	userPart, rest := path, ""
	if i := strings.IndexByte(path, '/'); i >= 0 {
		userPart, rest = path[:i], path[i:]
	}

	if userPart == "~" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		return dir + rest, nil
	}

	u, err := user.Lookup(userPart[1:])
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", userPart, err)
	}
	return u.HomeDir + rest, nil
}
