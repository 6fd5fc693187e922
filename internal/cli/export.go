package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plotkit/stylebook/internal/export"
)

func newExportCmd(cfgFile *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <preset>",
		Short: "Export a preset in the form a rendering engine consumes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			reg, err := buildRegistry(cmd.Context(), *cfgFile)
			if err != nil {
				return err
			}

			preset, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer file.Close()
				w = file
			}

			if err := export.Write(w, preset, f); err != nil {
				return fmt.Errorf("exporting preset %q: %w", preset.Name(), err)
			}

			if output != "" {
				logger.Info("exported preset", "name", preset.Name(), "format", f, "file", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "rc", "output format: rc, json, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
