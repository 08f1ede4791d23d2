package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
	"mwtrack/internal/theme"
)

func langCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or change the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, l := range i18n.Supported {
					fmt.Printf("%s  %s (%s)\n", l, i18n.Name(l), i18n.Region(l))
				}
				return nil
			}
			if len(args) == 1 {
				lang, err := i18n.Parse(args[0])
				if err != nil {
					return err
				}
				if err := appCtx.I18n.Set(lang); err != nil {
					return err
				}
			}
			cur := appCtx.I18n.Language()
			fmt.Printf("%s  %s\n", cur, i18n.Name(cur))
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the supported languages")
	return cmd
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.Light), string(domain.Dark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if args[0] == "toggle" {
					if _, err := appCtx.Theme.Toggle(); err != nil {
						return err
					}
				} else {
					t, err := theme.Parse(args[0])
					if err != nil {
						return err
					}
					if err := appCtx.Theme.Set(t); err != nil {
						return err
					}
				}
			}
			p := appCtx.Theme.Palette()
			fmt.Printf("%s (background %s, text %s, primary %s)\n", appCtx.Theme.Theme(), p.Background, p.Text, p.Primary)
			return nil
		},
	}
}
