package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the runtime settings: struct defaults first, environment
// variables on top (REDIS_ADDR, HTTP_ADDR, FRONTEND_DIR).
type Config struct {
	RedisAddr   string `koanf:"redis_addr"`
	HTTPAddr    string `koanf:"http_addr"`
	FrontendDir string `koanf:"frontend_dir"`
}

func defaultConfig() *Config {
	return &Config{
		RedisAddr:   "localhost:6379",
		HTTPAddr:    ":9090",
		FrontendDir: "frontend",
	}
}

// LoadConfig builds the configuration from defaults overridden by the
// environment.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// REDIS_ADDR -> redis_addr, etc.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
