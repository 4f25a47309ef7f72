package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteflow/pkg/firestore"
	"noteflow/pkg/models"
)

var (
	editTitle     string
	editContent   string
	editCategory  string
	editTags      string
	editSummary   string
	editReanalyze bool
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Replace a note's editable fields",
	Long: `Replace a note's editable fields. Unset flags fall back to the
note's stored values, so a single field can be changed in isolation.
With --reanalyze the content is re-classified first and the suggested
title, category, tags and summary replace the current ones; explicit
flags still win over stored values before the analysis runs.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := firestore.Get().Note(args[0])
		if err != nil {
			fatal("error loading note", err)
		}

		title := note.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		content := note.Content
		if cmd.Flags().Changed("content") {
			content = editContent
		}
		category := note.Category
		if cmd.Flags().Changed("category") {
			category = models.ParseCategory(editCategory)
		}
		tags := note.Tags
		if cmd.Flags().Changed("tags") {
			tags = models.ParseTags(editTags)
		}
		summary := note.Summary
		if cmd.Flags().Changed("summary") {
			summary = editSummary
		}

		if editReanalyze {
			result, err := newOrchestrator().Reanalyze(content)
			if err != nil {
				fatal("error analyzing note", err)
			}

			// absent fields keep their current values
			if result.Title != "" {
				title = result.Title
			}
			if result.Category.Valid() {
				category = result.Category
			}
			if len(result.Tags) > 0 {
				tags = result.Tags
			}
			if result.Summary != "" {
				summary = result.Summary
			}
		}

		if err := newView().Edit(note.ID, title, content, category, tags, summary); err != nil {
			fatal("error updating note", err)
		}

		fmt.Printf("updated %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
	editCmd.Flags().StringVar(&editTags, "tags", "", "New comma-separated tags")
	editCmd.Flags().StringVar(&editSummary, "summary", "", "New summary")
	editCmd.Flags().BoolVar(&editReanalyze, "reanalyze", false, "Re-run AI classification on the content before saving")
}
