package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		interests, _ := cmd.Flags().GetStringSlice("interest")
		weeklyTime, _ := cmd.Flags().GetInt("weekly-hours")
		goals, _ := cmd.Flags().GetStringSlice("goal")

		_, err = a.Profile.Signup(cmd.Context(), profile.SignupInput{
			Name:       name,
			Email:      email,
			Password:   password,
			Interests:  interests,
			WeeklyTime: weeklyTime,
			Goals:      goals,
		})
		return err
	},
}

func init() {
	signupCmd.Flags().String("name", "", "Display name")
	signupCmd.Flags().String("email", "", "Email address")
	signupCmd.Flags().String("password", "", "Password")
	signupCmd.Flags().StringSlice("interest", nil, "Skill you want to learn (repeatable)")
	signupCmd.Flags().Int("weekly-hours", 0, "Hours per week you plan to spend")
	signupCmd.Flags().StringSlice("goal", nil, "Learning goal (repeatable)")
}
