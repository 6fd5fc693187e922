package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Loader parses one config file format.
type Loader interface {
	Load(path string) (*Config, error)
	CanLoad(path string) bool
}

// LoaderRegistry dispatches a config file to the loader that handles its
// format.
type LoaderRegistry struct {
	loaders []Loader
}

func NewLoaderRegistry() *LoaderRegistry {
	return &LoaderRegistry{
		loaders: []Loader{
			&YAMLLoader{},
			&TOMLLoader{},
			&JSONLoader{},
		},
	}
}

func (r *LoaderRegistry) Load(path string) (*Config, error) {
	for _, loader := range r.loaders {
		if loader.CanLoad(path) {
			cfg, err := loader.Load(path)
			if err != nil {
				return nil, fmt.Errorf("loading config with %T: %w", loader, err)
			}

			cfg.setDefaults()

			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid configuration: %w", err)
			}

			return cfg, nil
		}
	}

	return nil, fmt.Errorf("no loader found for file: %s", path)
}

// GetConfigFileExtension returns the lowercased extension of path.
func GetConfigFileExtension(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(ext)
}

// IsSupportedConfigFile reports whether a loader exists for path.
func IsSupportedConfigFile(path string) bool {
	switch GetConfigFileExtension(path) {
	case ".yaml", ".yml", ".toml", ".json":
		return true
	default:
		return false
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$(\w+)`)

// expandEnvVars substitutes ${VAR} and $VAR references with environment
// values. Unset variables are left as-is.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimPrefix(match, "${")
		varName = strings.TrimPrefix(varName, "$")
		varName = strings.TrimSuffix(varName, "}")

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}
