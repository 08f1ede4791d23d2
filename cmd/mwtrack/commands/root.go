package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mwtrack/internal/api"
	"mwtrack/internal/app"
	"mwtrack/internal/services/auth"
)

var appCtx *app.Wire

func Execute() error {
	root := &cobra.Command{
		Use:           "mwtrack",
		Short:         "Storefront and order tracking client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level, _ := cfg.Level()
			app.InitLogger(os.Stderr, level)

			appCtx, err = app.NewWire(cfg, os.Stdout)
			return err
		},
	}

	app.RegisterFlags(root.PersistentFlags())
	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(),
		productsCmd(), productCmd(),
		cartCmd(), ordersCmd(),
		trackCmd(), queueCmd(), watchCmd(),
		webCmd(), langCmd(), themeCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		if cerr := appCtx.Close(); cerr != nil {
			slog.Warn("close failed", "err", cerr)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
	}
	return err
}

// describe prefers the backend's own message for rejected requests.
func describe(err error) string {
	switch {
	case errors.Is(err, api.ErrUnreachable):
		return "the server is unreachable, check your connection"
	case errors.Is(err, auth.ErrNotSignedIn):
		return "not signed in, run: mwtrack login"
	}
	return api.Message(err, err.Error())
}

func currentUserID() (string, error) {
	u, err := appCtx.Auth.Current()
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
