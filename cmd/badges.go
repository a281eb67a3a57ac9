package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/ui/theme"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show the badges you have earned",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		u := a.Profile.Current()
		if u == nil {
			return profile.ErrUnauthenticated
		}

		if len(u.Badges) == 0 {
			fmt.Println(theme.Hint.Render("No badges yet. Complete modules and keep your streak going!"))
			return nil
		}
		for _, b := range u.Badges {
			fmt.Printf("%s %s  %s\n",
				b.Type.Icon(),
				theme.Label.Render(b.Name),
				theme.Subtitle.Render(b.DateEarned.Format("2006-01-02")))
			fmt.Printf("   %s\n", theme.Body.Render(b.Description))
		}
		return nil
	},
}
