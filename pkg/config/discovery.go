package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigFileNames lists the file names DiscoverConfig probes for,
// in precedence order.
var DefaultConfigFileNames = []string{
	"stylebook.yaml",
	"stylebook.yml",
	"stylebook.toml",
	"stylebook.json",
	"stylebook.config.yaml",
	"stylebook.config.yml",
	"stylebook.config.toml",
	"stylebook.config.json",
}

// DiscoverConfig finds a config file. If startPath names an existing file
// it is used directly; otherwise the default file names are probed in the
// start directory and then in each parent directory up to the root.
func DiscoverConfig(startPath string) (string, error) {
	if startPath != "" && fileExists(startPath) {
		return startPath, nil
	}

	dir := "."
	if startPath != "" {
		dir = filepath.Dir(startPath)
	}

	for {
		for _, name := range DefaultConfigFileNames {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir || parent == "." {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no configuration file found")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
