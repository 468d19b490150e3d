package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/erronaut"
)

func newPanicCmd() *cobra.Command {
	var (
		goroutine bool
		policy    string
	)
	cmd := &cobra.Command{
		Use:   "panic [message]",
		Short: "Panic and let the interceptor print it",
		Long: "panic raises a panic below erronaut.Recover. The panel is printed and " +
			"the panic continues, so the process exits the way an uncaught panic " +
			"does. With --goroutine the panic happens on a goroutine started with " +
			"Go and --policy decides whether it is swallowed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := "something went badly wrong"
			if len(args) == 1 {
				msg = args[0]
			}
			if !goroutine {
				defer erronaut.Recover()
				explode(msg)
				return nil
			}
			p, ok := erronaut.ParsePanicPolicy(policy)
			if !ok {
				return fmt.Errorf("unknown panic policy %q", policy)
			}
			in := erronaut.NewInterceptor(erronaut.WithPanicPolicy(p))
			logger.Debug("starting goroutine", "policy", p)
			<-in.Go(func() {
				explode(msg)
			})
			logger.Info("goroutine finished", "policy", p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&goroutine, "goroutine", false, "panic on a goroutine started with erronaut.Go")
	cmd.Flags().StringVar(&policy, "policy", "repanic", "goroutine panic policy: repanic or continue")
	return cmd
}

func explode(msg string) {
	panic(msg)
}
