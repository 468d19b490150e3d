package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/erronaut"
)

func newTimerCmd() *cobra.Command {
	var (
		interval time.Duration
		ticks    int
		policy   string
	)
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a ticker whose callback panics",
		Long: "timer calls a callback every --interval. Every other tick panics with " +
			"an erronaut error. With --policy continue the ticker keeps going; with " +
			"repanic the first failure ends the process.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks <= 0 {
				return fmt.Errorf("--ticks must be positive, got %d", ticks)
			}
			p, ok := erronaut.ParsePanicPolicy(policy)
			if !ok {
				return fmt.Errorf("unknown panic policy %q", policy)
			}
			in := erronaut.NewInterceptor(erronaut.WithPanicPolicy(p))
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			n := 0
			done := in.Every(ctx, interval, func() {
				if ctx.Err() != nil {
					return
				}
				n++
				logger.Debug("tick", "n", n)
				if n >= ticks {
					cancel()
				}
				if n%2 == 1 {
					panic(erronaut.New("tick failed", "tick", n))
				}
			})
			<-done
			logger.Info("ticker stopped", "ticks", n)
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 200*time.Millisecond, "tick interval")
	cmd.Flags().IntVar(&ticks, "ticks", 4, "number of ticks before stopping")
	cmd.Flags().StringVar(&policy, "policy", "continue", "panic policy: repanic or continue")
	return cmd
}
