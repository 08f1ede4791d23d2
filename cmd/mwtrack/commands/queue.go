package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func queueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "List actions recorded while offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := appCtx.Offline.Queue().Pending()
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("no pending actions")
				return nil
			}
			for _, a := range pending {
				at := time.UnixMilli(a.Timestamp).Format(time.DateTime)
				fmt.Printf("%s  %s  %s %s\n", a.ID, at, a.Method, a.URL)
			}
			return nil
		},
	}
	cmd.AddCommand(queueDrainCmd(), queueClearCmd())
	return cmd
}

func queueDrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drain",
		Short: "Replay pending actions if the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.API.Ping(cmd.Context()); err != nil {
				return err
			}
			report, err := appCtx.Offline.Drain(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("sent %d, dropped %d\n", report.Sent, report.Dropped)
			return nil
		},
	}
}

func queueClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard all pending actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Offline.Queue().Clear(); err != nil {
				return err
			}
			fmt.Println("queue cleared")
			return nil
		},
	}
}
