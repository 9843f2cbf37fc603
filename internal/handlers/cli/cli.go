// Package cli is the command-line entrypoint of walletmon.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/walletmon/internal/monitor"
	"github.com/gabapcia/walletmon/internal/retryqueue"
	"github.com/gabapcia/walletmon/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Run builds the walletmon command tree and executes it with os.Args.
//
// Commands:
//
//   - `start`: runs the monitoring pipeline until interrupted.
//   - `watch`: registers a wallet or adds subscribers to it.
//   - `unwatch`: unregisters a wallet.
//   - `wallets`: lists the registered wallets.
//   - `dead-letters`: lists the jobs that exhausted their retries.
func Run(ctx context.Context, wr walletregistry.Service, mon monitor.Service, dl retryqueue.DeadLetterStorage) error {
	return newApp(wr, mon, dl).Run(ctx, os.Args)
}

func newApp(wr walletregistry.Service, mon monitor.Service, dl retryqueue.DeadLetterStorage) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletmon",
		Description:           "Watches wallets on an EVM chain, records their trades and reports daily commissions.",
		Usage:                 "walletmon [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(mon),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			listWalletsCommand(wr),
			listDeadLettersCommand(dl),
		},
	}
}
