package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var DefaultConfig = &Config{
	ListenHost: "0.0.0.0",
	Port:       10000,
	Webroot:    "webroot",
}

type Config struct {
	// The address the listening socket binds to.
	ListenHost string `yaml:"listen_host,omitempty"`
	// The TCP port to listen on.
	Port int `yaml:"port,omitempty"`
	// The directory all served content lives under.
	Webroot string `yaml:"webroot,omitempty"`
	// Whether to enable verbose logging.
	Verbose bool `yaml:"verbose,omitempty"`
	// Whether to emit logs as JSON.
	LogJSON bool `yaml:"log_json,omitempty"`
	// Optional log file; logs go to stderr when empty.
	LogFile string `yaml:"log_file,omitempty"`
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenHost, c.Port)
}

// Load reads the YAML config at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := *DefaultConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %v", err)
	}
	if err := yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %v", err)
	}
	return &cfg, nil
}
