package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"noteflow/pkg/models"
)

var (
	listCategory  string
	listTag       string
	listSearch    string
	listFavorite  bool
	listDate      string
	listSort      string
	listAscending bool
	listPages     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes under the active filters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		view := newView()
		feed := view.Feed()

		filter := feed.Filter()
		if listCategory != "" && listCategory != string(models.CategoryAll) {
			filter.Category = models.ParseCategory(listCategory)
		}
		filter.Tag = listTag
		filter.SearchQuery = listSearch
		filter.FavoriteOnly = listFavorite
		filter.SortBy = listSort
		if listAscending {
			filter.SortOrder = models.SortAscending
		}
		if listDate != "" {
			day, err := time.ParseInLocation("2006-01-02", listDate, time.Local)
			if err != nil {
				fatal("error parsing date", err)
			}
			filter.SelectedDate = &day
		}
		feed.SetFilter(filter)

		if err := feed.Refresh(); err != nil {
			fatal("error loading notes", err)
		}

		for page := 1; page < listPages && feed.HasMore(); page++ {
			if err := feed.LoadMore(); err != nil {
				fatal("error loading notes", err)
			}
		}

		for _, note := range view.Notes() {
			printNote(note)
		}

		fmt.Printf("%d of %d notes loaded", feed.Loaded(), feed.Total())
		if feed.HasMore() {
			fmt.Print(" (more available)")
		}
		fmt.Println()
	},
}

func printNote(note *models.Note) {
	star := " "
	if note.IsFavorite {
		star = "★"
	}

	meta := note.Category.Meta()
	fmt.Printf("%s %s %s [%s] %s\n", star, meta.Symbol, note.Title, note.ID, note.CreatedAt.Local().Format("2006-01-02 15:04"))
	if len(note.Tags) > 0 {
		fmt.Printf("      %s\n", strings.Join(note.Tags, " "))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter loaded notes by text")
	listCmd.Flags().BoolVar(&listFavorite, "favorite", false, "Only favorited notes")
	listCmd.Flags().StringVar(&listDate, "date", "", "Only notes created on this day (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listSort, "sort", models.SortByCreatedAt, "Sort field (created_at, updated_at, title)")
	listCmd.Flags().BoolVar(&listAscending, "asc", false, "Sort ascending")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "Number of pages to load")
}
