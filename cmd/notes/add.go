package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"noteflow/pkg/models"
)

var (
	addManual   bool
	addCategory string
	addTags     string
	addYes      bool
)

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Capture a new note",
	Long: `Capture a new note. By default the content is sent to Gemini for
classification and the suggested title, category and tags are shown for
confirmation before saving. With --manual (or with AI disabled in the
config) the note saves immediately using the given category and tags.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := strings.Join(args, " ")
		orch := newOrchestrator()

		if addManual || !cfg.Notes.AIEnabled {
			note, err := orch.SubmitManual(content, models.Category(addCategory), addTags)
			if err != nil {
				fatal("error saving note", err)
			}

			meta := note.Category.Meta()
			fmt.Printf("saved %s %s [%s]\n", meta.Symbol, note.Title, note.ID)
			return
		}

		sub, err := orch.Submit(content)
		if err != nil {
			fatal("error submitting note", err)
		}

		for p := range sub.Progress() {
			fmt.Printf("\ranalyzing... %3d%%", p)
		}
		fmt.Println()

		<-sub.Done()

		result := sub.Result()
		if result == nil {
			fatal("error analyzing note", fmt.Errorf("submission was discarded"))
		}

		meta := result.Category.Meta()
		fmt.Printf("category: %s %s\n", meta.Symbol, meta.Label)
		fmt.Printf("title:    %s\n", result.Title)
		fmt.Printf("tags:     %s\n", strings.Join(result.Tags, " "))
		if result.Summary != "" {
			fmt.Printf("summary:  %s\n", result.Summary)
		}
		if result.Degraded() {
			fmt.Printf("analysis degraded (%s); defaults shown above\n", result.Err)
		}

		if !addYes && !confirm("save this note? [y/N] ") {
			orch.Discard(sub)
			fmt.Println("discarded")
			return
		}

		note, err := orch.Confirm(sub)
		if err != nil {
			fatal("error saving note", err)
		}

		fmt.Printf("saved %s %s [%s]\n", meta.Symbol, note.Title, note.ID)
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&addManual, "manual", false, "Skip AI classification")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category for --manual (code, link, todo, idea, reference, other)")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags for --manual")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Save without asking for confirmation")
}
