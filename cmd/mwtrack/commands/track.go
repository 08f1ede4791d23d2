package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Fetch the tracking log once and announce new updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Poller()
			if err != nil {
				return err
			}
			res, err := p.Poll(cmd.Context())
			if err != nil {
				return err
			}
			last, err := p.LastSeen()
			if err != nil {
				return err
			}
			fmt.Printf("%s (last seen %d)\n", res, last)
			return nil
		},
	}
}

func watchCmd() *cobra.Command {
	var poll time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll tracking updates and connectivity until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("interval") {
				appCtx.Config.PollInterval = poll
			}
			if _, err := appCtx.Auth.Current(); err != nil {
				return err
			}
			fmt.Printf("watching every %s, press Ctrl+C to stop\n", appCtx.Config.PollInterval)
			return appCtx.Watch(cmd.Context())
		},
	}
	cmd.Flags().DurationVar(&poll, "interval", 0, "tracking poll interval (default from config)")
	return cmd
}
