package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type JSONLoader struct{}

func (l *JSONLoader) CanLoad(path string) bool {
	return GetConfigFileExtension(path) == ".json"
}

func (l *JSONLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	data = []byte(expandEnvVars(string(data)))

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing JSON config file: %w", err)
	}

	return &config, nil
}
