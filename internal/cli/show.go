package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <preset>",
		Short: "Show all options of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cmd.Context(), *cfgFile)
			if err != nil {
				return err
			}

			preset, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			keys := preset.Keys()
			width := 0
			for _, key := range keys {
				if len(key) > width {
					width = len(key)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(preset.Name()))
			for _, key := range keys {
				v, _ := preset.Lookup(key)
				fmt.Fprintln(out, "  "+renderOption(key, v, width))
			}
			if cycle, ok := preset.ColorCycle(); ok {
				fmt.Fprintln(out, "  "+styleKey.Render("palette")+"  "+renderSwatches(cycle))
			}
			return nil
		},
	}
}
