package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletmon/internal/monitor"

	"github.com/urfave/cli/v3"
)

// startPipelineCommand runs the monitoring pipeline until SIGINT, SIGTERM or
// the cancellation of ctx.
//
// Usage example:
//
//	walletmon start
func startPipelineCommand(mon monitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the monitoring pipeline: block scanner, decode worker, price and wallet refreshes.",
		Usage:       "Runs the pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := mon.Start(ctx); err != nil {
				return err
			}
			defer mon.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return nil
		},
	}
}
