// Package cli implements the stylebook command-line interface.
//
// Commands load the built-in presets plus any presets defined in a
// discovered (or explicitly given) stylebook config file, then list,
// inspect, check or export them. Logging goes through charmbracelet/log
// at info level, or debug with --verbose; the logger travels on the
// command context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plotkit/stylebook/pkg/config"
	"github.com/plotkit/stylebook/pkg/style"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the stylebook CLI and returns an error if any command
// fails.
func Execute() error {
	var (
		verbose bool
		cfgFile string
	)

	root := &cobra.Command{
		Use:          "stylebook",
		Short:        "Stylebook manages named plotting style presets",
		Long:         `Stylebook holds a validated registry of named plotting style presets (line widths, fonts, tick geometry, color cycles) and exports them in the flat key/value form a rendering engine consumes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stylebook %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: auto-discover stylebook.{yaml,yml,toml,json})")

	root.AddCommand(newListCmd(&cfgFile))
	root.AddCommand(newShowCmd(&cfgFile))
	root.AddCommand(newCheckCmd())
	root.AddCommand(newExportCmd(&cfgFile))

	return root.ExecuteContext(context.Background())
}

// buildRegistry returns the built-in registry with any config-file presets
// applied on top. An explicit cfgFile must exist; an auto-discovered one
// is optional.
func buildRegistry(ctx context.Context, cfgFile string) (*style.Registry, error) {
	logger := loggerFromContext(ctx)
	reg := style.DefaultRegistry()

	path := cfgFile
	if path == "" {
		discovered, err := config.DiscoverConfig("")
		if err != nil {
			logger.Debug("no config file found, using built-in presets only")
			return reg, nil
		}
		path = discovered
	}

	logger.Debug("loading config", "path", path)
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Apply(reg); err != nil {
		return nil, fmt.Errorf("applying config %s: %w", path, err)
	}

	logger.Debug("registry ready", "presets", len(reg.Names()))
	return reg, nil
}
