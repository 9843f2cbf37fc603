package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gabapcia/walletmon/internal/walletregistry"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// startWatchingWalletCommand registers a wallet. Repeating it for an address
// already watched updates the metadata and adds the new chats.
//
// Usage example:
//
//	walletmon watch --address 0xABC... --name desk --volume 5000 --chat 12345
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet to be monitored for trades.",
		Usage:       "Registers a wallet address for watching. Address and name are required.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Display name used in notifications",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "ticker",
				Usage: "Token ticker the wallet trades (optional)",
			},
			&cli.StringFlag{
				Name:  "volume",
				Usage: "Target daily volume in USD",
				Value: "0",
			},
			&cli.StringSliceFlag{
				Name:  "chat",
				Usage: "Chat id to notify, repeatable",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			volume, err := decimal.NewFromString(c.String("volume"))
			if err != nil {
				return fmt.Errorf("invalid volume %q: %w", c.String("volume"), err)
			}

			return wr.StartWatching(ctx, walletregistry.Wallet{
				Address:        c.String("address"),
				Name:           c.String("name"),
				TokenTicker:    c.String("ticker"),
				DailyVolumeUSD: volume,
				Chats:          c.StringSlice("chat"),
			})
		},
	}
}

// stopWatchingWalletCommand unregisters a wallet.
//
// Usage example:
//
//	walletmon unwatch --address 0xABC...
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from being monitored.",
		Usage:       "Stops watching a wallet address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return wr.StopWatching(ctx, c.String("address"))
		},
	}
}

func listWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "wallets",
		Description: "List the registered wallets.",
		Usage:       "Prints every watched wallet with its subscribers.",
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := wr.ListWallets(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ADDRESS\tNAME\tTICKER\tDAILY VOLUME USD\tCHATS")
			for _, wallet := range wallets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					wallet.Address,
					wallet.Name,
					wallet.TokenTicker,
					wallet.DailyVolumeUSD.StringFixed(2),
					strings.Join(wallet.Chats, ","),
				)
			}

			return w.Flush()
		},
	}
}
