package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteflow/pkg/firestore"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := firestore.Get().DeleteNote(args[0]); err != nil {
			fatal("error deleting note", err)
		}

		fmt.Printf("deleted %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
