package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type TOMLLoader struct{}

func (l *TOMLLoader) CanLoad(path string) bool {
	return GetConfigFileExtension(path) == ".toml"
}

func (l *TOMLLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	data = []byte(expandEnvVars(string(data)))

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing TOML config file: %w", err)
	}

	return &config, nil
}
