package cmd

import (
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if admin, _ := cmd.Flags().GetBool("admin"); admin {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			_, err = a.Profile.AdminLogin(cmd.Context(), username, password)
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		_, err = a.Profile.Login(cmd.Context(), email, password)
		return err
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Email address")
	loginCmd.Flags().String("password", "", "Password")
	loginCmd.Flags().Bool("admin", false, "Log in to the admin dashboard")
	loginCmd.Flags().String("username", "", "Admin username (with --admin)")
}
