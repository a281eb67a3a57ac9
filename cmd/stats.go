package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishantk77/skillpath-ascend-together/internal/level"
	"github.com/nishantk77/skillpath-ascend-together/internal/profile"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
	"github.com/nishantk77/skillpath-ascend-together/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, level, streak, and per-skill progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		u := a.Profile.Current()
		if u == nil {
			return profile.ErrUnauthenticated
		}

		fmt.Println(theme.Title.Render(u.Name))
		fmt.Printf("%s %d  %s\n",
			theme.Label.Render("Level"), level.Level(u.XP),
			theme.Subtitle.Render(fmt.Sprintf("%d/%d XP to next level", level.Progress(u.XP), level.XPPerLevel)))
		fmt.Printf("%s %s\n", theme.Label.Render("Total XP"), theme.XPBadge.Render(fmt.Sprintf("%d", u.XP)))
		fmt.Printf("%s %d days (longest %d)\n", theme.Label.Render("Streak"), u.CurrentStreak, u.LongestStreak)
		fmt.Printf("%s %d\n", theme.Label.Render("Modules completed"), u.CompletedModules)

		skills, err := a.Progress.Skills(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(theme.Label.Render("Skills"))
		for _, s := range skills {
			st := s.Stats()
			fmt.Printf("  %-20s %d/%d modules (%.0f%%)\n", s.Name, st.Completed, st.Total, st.Percent)
		}

		if n, _ := cmd.Flags().GetInt("history"); n > 0 {
			events, err := a.Store.EventRepo().QueryXP(ctx, store.QueryOpts{Limit: n})
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(theme.Label.Render("Recent XP"))
			for _, e := range events {
				fmt.Printf("  %s  %s %s\n",
					e.Timestamp.Format("2006-01-02 15:04"),
					theme.XPBadge.Render(fmt.Sprintf("+%d", e.Points)),
					e.Reason)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("history", 0, "Also show the last N XP awards")
}
