package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishantk77/skillpath-ascend-together/internal/store"
	"github.com/nishantk77/skillpath-ascend-together/internal/ui/theme"
)

var discussCmd = &cobra.Command{
	Use:   "discuss",
	Short: "Read and post module discussions",
}

var discussListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discussion threads",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		var threads []store.Discussion
		skillID, _ := cmd.Flags().GetString("skill")
		moduleID, _ := cmd.Flags().GetString("module")
		switch {
		case moduleID != "":
			threads, err = a.Discussions.ForModule(ctx, moduleID)
		case skillID != "":
			threads, err = a.Discussions.ForSkill(ctx, skillID)
		default:
			threads, err = a.Discussions.All(ctx)
		}
		if err != nil {
			return err
		}

		if len(threads) == 0 {
			fmt.Println(theme.Hint.Render("No discussions yet. Start one with `skillpath discuss new`."))
			return nil
		}
		for _, d := range threads {
			printThread(&d)
		}
		return nil
	},
}

var discussNewCmd = &cobra.Command{
	Use:   "new <skill-id> <module-id>",
	Short: "Start a discussion thread on a module",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		title, _ := cmd.Flags().GetString("title")
		content, _ := cmd.Flags().GetString("content")
		_, err = a.Discussions.AddDiscussion(cmd.Context(), args[0], args[1], title, content)
		return err
	},
}

var discussReplyCmd = &cobra.Command{
	Use:   "reply <discussion-id>",
	Short: "Reply to a discussion thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		content, _ := cmd.Flags().GetString("content")
		_, err = a.Discussions.AddReply(cmd.Context(), args[0], content)
		return err
	},
}

func init() {
	discussListCmd.Flags().String("skill", "", "Only threads for this skill")
	discussListCmd.Flags().String("module", "", "Only threads for this module")
	discussNewCmd.Flags().String("title", "", "Thread title")
	discussNewCmd.Flags().String("content", "", "Thread body")
	discussReplyCmd.Flags().String("content", "", "Reply body")

	discussCmd.AddCommand(discussListCmd)
	discussCmd.AddCommand(discussNewCmd)
	discussCmd.AddCommand(discussReplyCmd)
}

func printThread(d *store.Discussion) {
	fmt.Printf("%s  %s\n", theme.Label.Render(d.Title), theme.Subtitle.Render("("+d.ID+")"))
	fmt.Printf("  %s in %s/%s on %s\n",
		d.UserName, d.SkillID, d.ModuleID, d.CreatedAt.Format("2006-01-02"))
	fmt.Printf("  %s\n", theme.Body.Render(d.Content))
	for _, r := range d.Replies {
		fmt.Printf("    ↳ %s: %s\n", r.UserName, r.Content)
	}
}
