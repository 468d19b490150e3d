package cli

import (
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/erronaut"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print one panel of every kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			erronaut.Info("listening", "addr", ":8080", "tls", false)
			erronaut.Warn("cache nearly full", "used", "92%", "limit", "1GiB")
			erronaut.Debug("request", "took", 42*time.Millisecond, "headers", map[string]any{
				"accept":     "application/json",
				"user-agent": "erronaut",
			})
			err := fetch()
			logger.Debug("demo error constructed", "err", err)
			return nil
		},
	}
}

// fetch fails the way a remote call would.
func fetch() error {
	return erronaut.New("timeout", "code", 504, "details", erronaut.Group("host", "api", "attempt", 3))
}
