package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/walletmon/internal/retryqueue"

	"github.com/urfave/cli/v3"
)

// listDeadLettersCommand prints the newest dead-lettered jobs.
//
// Usage example:
//
//	walletmon dead-letters --limit 50
func listDeadLettersCommand(dl retryqueue.DeadLetterStorage) *cli.Command {
	return &cli.Command{
		Name:        "dead-letters",
		Description: "List the jobs that exhausted their retries.",
		Usage:       "Prints dead-lettered jobs, newest first.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries, 0 for all",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			letters, err := dl.ListDeadLetters(ctx, int64(c.Int("limit")))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DEAD LETTERED AT\tKIND\tTX HASH\tADDRESS\tATTEMPTS\tERROR")
			for _, l := range letters {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					l.DeadLetteredAt.UTC().Format(time.RFC3339),
					l.Job.Kind,
					l.Job.TxHash,
					l.Job.Address,
					l.Job.Attempts,
					l.Error,
				)
			}

			return w.Flush()
		},
	}
}
