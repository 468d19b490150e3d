package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/erronaut"
	"pkt.systems/erronaut/theme"
)

func newThemesCmd() *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List colour themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.Names() {
				if !preview {
					fmt.Fprintln(out, name)
					continue
				}
				c := erronaut.NewConsoleWithOptions(out, erronaut.Options{
					ForceColor:       true,
					Width:            48,
					DisableTimestamp: true,
					DisableLocation:  true,
					Theme:            theme.ByName(name),
				})
				c.Info(name, "usage", "--theme "+name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "render a sample panel per theme")
	return cmd
}
