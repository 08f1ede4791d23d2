package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := appCtx.Auth.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s <%s>\n", u.Name, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session and cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Auth.SignOut(); err != nil {
				return err
			}
			fmt.Println("signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := appCtx.Auth.Current()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
			if len(u.GroupTitles) > 0 {
				fmt.Printf("groups: %s\n", strings.Join(u.GroupTitles, ", "))
			}
			return nil
		},
	}
}
