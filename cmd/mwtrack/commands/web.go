package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
	"mwtrack/internal/webview"
)

func webCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Print storefront page URLs and the scripts injected into them",
	}
	cmd.AddCommand(
		webDashboardCmd(),
		webOrderCmd("order", "Print the detail page of an order", orderDetailPage),
		webOrderCmd("tracking", "Print the tracking page of an order", trackingPage),
		webScriptCmd(),
		webSupportCmd(),
	)
	return cmd
}

func orderDetailPage(userID string, order domain.OrderNumber) string {
	return appCtx.Pages.OrderDetailURL(userID, order)
}

func trackingPage(userID string, order domain.OrderNumber) string {
	return appCtx.Pages.TrackingURL(userID, order)
}

func webDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard page for the current language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID()
			if err != nil {
				return err
			}
			prefix := i18n.URLPrefix(appCtx.I18n.Language())
			fmt.Println(appCtx.Pages.DashboardURL(prefix, userID))
			return nil
		},
	}
}

func webOrderCmd(use, short string, page func(string, domain.OrderNumber) string) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   use + " <order-number>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID()
			if err != nil {
				return err
			}
			target := page(userID, domain.OrderNumber(args[0]))
			if reset {
				fmt.Println(webview.RedirectScript(target))
				return nil
			}
			fmt.Println(target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "print the script that navigates an open page back to this URL")
	return cmd
}

func webScriptCmd() *cobra.Command {
	var css bool
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Print the styling script for the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := appCtx.Theme.Palette()
			render := webview.InjectedScript
			if css {
				render = webview.CSS
			}
			out, err := render(palette)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&css, "css", false, "print only the stylesheet")
	return cmd
}

func webSupportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "support",
		Short: "Print the support chat link",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(webview.SupportLink())
		},
	}
}
