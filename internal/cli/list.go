package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered preset names in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cmd.Context(), *cfgFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Presets"))
			for _, name := range reg.Names() {
				preset, err := reg.Get(name)
				if err != nil {
					return err
				}

				line := "  " + styleName.Render(name)
				if cycle, ok := preset.ColorCycle(); ok {
					line += "  " + renderSwatches(cycle)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
