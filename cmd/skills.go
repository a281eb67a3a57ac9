package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/nishantk77/skillpath-ascend-together/internal/catalog"
	"github.com/nishantk77/skillpath-ascend-together/internal/ui/theme"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [skill-id]",
	Short: "Browse the skill catalog",
	Long: "Without arguments, lists every skill with its completion stats.\n" +
		"With a skill ID, shows the skill's modules week by week, including\n" +
		"each module's resources and XP reward.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		if len(args) == 1 {
			skill, err := a.Progress.Skill(ctx, args[0])
			if err != nil {
				return err
			}
			printSkillDetail(skill)
			return nil
		}

		var skills []catalog.Skill
		switch {
		case flagBool(cmd, "recommended"):
			skills, err = a.Progress.Recommended(ctx)
		case flagBool(cmd, "in-progress"):
			skills, err = a.Progress.InProgress(ctx)
		default:
			skills, err = a.Progress.Skills(ctx)
		}
		if err != nil {
			return err
		}

		if len(skills) == 0 {
			fmt.Println(theme.Hint.Render("No skills match. Try `skillpath skills` for the full catalog."))
			return nil
		}
		for _, s := range skills {
			printSkillSummary(&s)
		}
		return nil
	},
}

func init() {
	skillsCmd.Flags().Bool("recommended", false, "Only skills matching your interests")
	skillsCmd.Flags().Bool("in-progress", false, "Only skills you have started")
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func printSkillSummary(s *catalog.Skill) {
	st := s.Stats()
	fmt.Printf("%s  %s\n", theme.Title.Render(s.Name), theme.Subtitle.Render("("+s.ID+")"))
	fmt.Printf("  %s · %d weeks · %d/%d modules (%.0f%%)\n",
		s.Difficulty, s.EstimatedWeeks, st.Completed, st.Total, st.Percent)
	fmt.Printf("  %s\n", theme.Body.Render(s.Description))
}

func printSkillDetail(s *catalog.Skill) {
	printSkillSummary(s)
	fmt.Println()
	for _, m := range s.Modules {
		fmt.Printf("  Week %d  %s %s  %s\n",
			m.Week,
			statusStyle(m.Status).Render(statusMark(m.Status)),
			theme.Label.Render(m.Title),
			theme.XPBadge.Render(fmt.Sprintf("+%d XP", m.XPReward)))
		fmt.Printf("          %s  (%s, ~%dh)\n",
			theme.Subtitle.Render(m.Description), m.ID, m.EstimatedHours)
		for _, r := range m.Resources {
			fmt.Printf("          - %s (%s, %dm) by %s\n",
				r.Title, r.Type, r.EstimatedMinutes, r.Creator)
		}
	}
}

func statusMark(s catalog.Status) string {
	switch s {
	case catalog.StatusCompleted:
		return "[x]"
	case catalog.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func statusStyle(s catalog.Status) lipgloss.Style {
	switch s {
	case catalog.StatusCompleted:
		return theme.Done
	case catalog.StatusInProgress:
		return theme.Active
	default:
		return theme.Pending
	}
}
