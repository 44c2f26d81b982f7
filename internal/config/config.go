// Package config provides configuration management for the ado-mcp server.
//
// Configuration controls:
//   - Capability mode (readonly vs full): determines which tools are exposed
//   - Prompt registration: whether static prompt templates are served
//
// Configuration can be loaded from a JSON file or use sensible defaults.
// The readonly mode exposes only query/read tools, while full mode also
// enables the mutating tools (create, update, comment, link).
//
// Credentials are never part of the config file: the personal access token
// and organization URL are resolved from the process environment on each
// tool invocation (see the azdo package).
package config

import (
	"encoding/json"
	"os"
)

// CapabilityMode defines the level of Azure DevOps capabilities exposed
type CapabilityMode string

const (
	ModeReadOnly CapabilityMode = "readonly" // Only read/query tools
	ModeFull     CapabilityMode = "full"     // All tools enabled
)

// Config holds the server configuration
type Config struct {
	// Capability levels
	Mode CapabilityMode `json:"mode"`

	// EnablePrompts controls registration of static prompt templates
	EnablePrompts bool `json:"enablePrompts"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:          ModeFull,
		EnablePrompts: true,
	}
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CanMutate returns true if work-item mutating tools are enabled
func (c *Config) CanMutate() bool {
	return c.Mode == ModeFull
}
