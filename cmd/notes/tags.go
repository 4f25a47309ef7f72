package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag across the owner's notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tags, err := newView().Tags()
		if err != nil {
			fatal("error listing tags", err)
		}

		for _, tag := range tags {
			fmt.Println(tag)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
