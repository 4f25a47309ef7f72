package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"noteflow/pkg/models"
)

var countsMonth string

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show note counts per category, optionally per day of a month",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		view := newView()

		counts, err := view.CategoryCounts()
		if err != nil {
			fatal("error counting notes", err)
		}

		fmt.Printf("전체: %d\n", counts.All)
		for _, category := range models.Categories() {
			meta := category.Meta()
			fmt.Printf("%s %s: %d\n", meta.Symbol, meta.Label, counts.ByCategory[category])
		}

		if countsMonth == "" {
			return
		}

		month, err := time.ParseInLocation("2006-01", countsMonth, time.Local)
		if err != nil {
			fatal("error parsing month", err)
		}

		days, err := view.CalendarCounts(month.Year(), month.Month())
		if err != nil {
			fatal("error counting notes by day", err)
		}

		keys := make([]string, 0, len(days))
		for day := range days {
			keys = append(keys, day)
		}
		sort.Strings(keys)

		fmt.Println()
		for _, day := range keys {
			fmt.Printf("%s: %d\n", day, days[day])
		}
	},
}

func init() {
	rootCmd.AddCommand(countsCmd)
	countsCmd.Flags().StringVar(&countsMonth, "month", "", "Also show per-day counts for this month (YYYY-MM)")
}
