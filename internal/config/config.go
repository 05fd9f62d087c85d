// Package config loads the serving configuration for the kolam commands
// from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends the serve command can wire.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Server holds everything the serve command needs to wire the HTTP API.
type Server struct {
	Listen      string   `yaml:"listen" json:"listen"`
	Store       string   `yaml:"store" json:"store"`
	File        File     `yaml:"file" json:"file"`
	Redis       Redis    `yaml:"redis" json:"redis"`
	Palette     string   `yaml:"palette" json:"palette"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`
	Metrics     bool     `yaml:"metrics" json:"metrics"`
}

// File configures the filesystem-backed pattern store.
type File struct {
	// Dir is where pattern files go; empty picks the adapter default.
	Dir string `yaml:"dir" json:"dir"`
}

// Redis configures the redis-backed pattern store.
type Redis struct {
	Address  string `yaml:"address" json:"address"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	// TTL is a Go duration string ("24h"); empty keeps patterns forever.
	TTL string `yaml:"ttl" json:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() Server {
	return Server{
		Listen:  ":8080",
		Store:   StoreMemory,
		Palette: "classic",
		Metrics: true,
		Redis: Redis{
			Address: "localhost:6379",
		},
	}
}

// Load reads a configuration file (YAML or JSON, by extension) merged over
// Default, so absent keys keep their default values. An empty path returns
// Default unchanged.
func Load(path string) (Server, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks for values the serve command cannot act on.
func (c Server) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want %s, %s or %s)", c.Store, StoreMemory, StoreFile, StoreRedis)
	}
	if _, err := c.Redis.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses the TTL field. Empty means no expiration.
func (r Redis) TTLDuration() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid redis ttl: %w", err)
	}
	return d, nil
}
