package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotkit/stylebook/pkg/config"
	"github.com/plotkit/stylebook/pkg/style"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a preset config file against the option schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			cfg, err := config.LoadFile(path)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), styleError.Render(iconError+" "+path))
				return err
			}

			// Apply against a registry with the built-ins so inherit
			// references resolve the same way they do at load time.
			reg := style.DefaultRegistry()
			if err := cfg.Apply(reg); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), styleError.Render(iconError+" "+path))
				return err
			}

			logger.Debug("config valid", "path", path, "presets", len(cfg.Presets))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d preset(s))\n",
				styleSuccess.Render(iconSuccess), path, len(cfg.Presets))
			return nil
		},
	}
}
