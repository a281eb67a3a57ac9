package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nishantk77/skillpath-ascend-together/internal/app"
	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
	"github.com/nishantk77/skillpath-ascend-together/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "skillpath",
	Short: "Learn skills, earn XP, keep your streak alive",
	Long: "SkillPath is a terminal learning companion. Browse curated skill\n" +
		"paths, work through their modules week by week, and track XP, levels,\n" +
		"badges, and daily streaks as you go.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLPATH_DB env var)")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(discussCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// toastNotifier prints each service notification as a styled line, the
// terminal analog of the web app's toasts.
func toastNotifier() notify.Notifier {
	return notify.Func(func(title, detail string) {
		if detail == "" {
			fmt.Println(theme.Toast.Render(title))
			return
		}
		fmt.Println(theme.Toast.Render(title) + " " + theme.Subtitle.Render(detail))
	})
}

// openApp opens the store and services for a command. When a session is
// active it also records today's login for streak purposes; the streak
// logic compares calendar days, so running several commands in one day
// counts once.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	a, err := app.Open(cmd.Context(), dbPath, toastNotifier())
	if err != nil {
		return nil, err
	}

	if a.Profile.IsAuthenticated() {
		if err := a.Profile.UpdateStreak(cmd.Context()); err != nil {
			fmt.Fprintln(os.Stderr, "warning: streak update failed:", err)
		}
	}
	return a, nil
}
