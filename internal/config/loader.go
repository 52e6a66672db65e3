package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/spamscan/internal/filter"
)

const (
	// DefaultConfigFile is the default configuration file name.
	DefaultConfigFile = ".spamscan"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .spamscan configuration file.
type File struct {
	Client   ClientSection   `yaml:"client,omitempty"`
	Server   ServerSection   `yaml:"server,omitempty"`
	Evaluate EvaluateSection `yaml:"evaluate,omitempty"`
	Filter   filter.Rules    `yaml:"filter,omitempty"`
}

// ClientSection configures the classification client.
type ClientSection struct {
	Endpoint    string        `yaml:"endpoint,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	Proxy       string        `yaml:"proxy,omitempty"`
	UserAgent   string        `yaml:"userAgent,omitempty"`
	MaxBodySize int64         `yaml:"maxBodySize,omitempty"`
}

// ServerSection configures the local classification service.
type ServerSection struct {
	Addr           string   `yaml:"addr,omitempty"`
	MaxConns       int      `yaml:"maxConns,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// EvaluateSection configures dataset evaluation.
type EvaluateSection struct {
	Concurrency int `yaml:"concurrency,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .spamscan in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .spamscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	cwd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	return findConfigFile(configPath, cwd, XDGConfigDir(), home)
}

func findConfigFile(configPath, cwd, xdgDir, home string) string {
	if configPath != "" {
		if exists(configPath) {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd != "" {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if xdgDir != "" {
		candidates = append(candidates, filepath.Join(xdgDir, XDGConfigFile))
	}
	if home != "" {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, c := range candidates {
		if exists(c) {
			return c
		}
	}
	return ""
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
