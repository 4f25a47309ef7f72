package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteflow/pkg/firestore"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite [id]",
	Short: "Toggle a note's favorite flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fs := firestore.Get()

		note, err := fs.Note(args[0])
		if err != nil {
			fatal("error loading note", err)
		}

		next := !note.IsFavorite
		if err := fs.SetNoteFavorite(note.ID, next); err != nil {
			fatal("error toggling favorite", err)
		}

		if next {
			fmt.Printf("★ %s\n", note.Title)
		} else {
			fmt.Printf("☆ %s\n", note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
