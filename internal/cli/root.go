package cli

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pkt.systems/erronaut"
	"pkt.systems/erronaut/theme"
)

type rootFlags struct {
	theme      string
	width      int
	noColor    bool
	forceColor bool
	utc        bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "erronaut",
		Short: "erronaut – diagnostic panels for the terminal",
		Long: "erronaut prints info, warning, debug and error panels and shows how " +
			"panics and unhandled errors are intercepted.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				logger.SetLevel(clog.DebugLevel)
			}
			opts := erronaut.Options{
				NoColor:    flags.noColor,
				ForceColor: flags.forceColor,
				Width:      flags.width,
				UTC:        flags.utc,
			}
			if flags.theme != "" {
				opts.Theme = theme.ByName(flags.theme)
			}
			erronaut.SetDefault(erronaut.ConsoleFromEnv(
				erronaut.WithEnvOptions(opts),
				erronaut.WithEnvWriter(cmd.OutOrStdout()),
			))
			logger.Debug("console ready", "theme", flags.theme, "width", flags.width)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.theme, "theme", "", "colour theme (see `erronaut themes`)")
	pf.IntVar(&flags.width, "width", 0, "panel width in columns (0 = terminal width)")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colour")
	pf.BoolVar(&flags.forceColor, "force-color", false, "emit colour even when not writing to a terminal")
	pf.BoolVar(&flags.utc, "utc", false, "print timestamps in UTC")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log what the command is doing")

	cmd.AddCommand(
		newDemoCmd(),
		newPanicCmd(),
		newTimerCmd(),
		newThemesCmd(),
	)
	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
