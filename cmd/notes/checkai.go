package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noteflow/pkg/gemini"
)

var checkAIText string

var checkAICmd = &cobra.Command{
	Use:   "check-ai",
	Short: "Verify the Gemini credential with a sample classification",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := gemini.NewClient(cfg)

		if !client.HasValidCredential() {
			fatal("error checking credential", fmt.Errorf("gemini api key is not configured"))
		}

		result, err := client.Classify(checkAIText)
		if err != nil {
			fatal("error classifying sample", err)
		}

		meta := result.Category.Meta()
		fmt.Printf("category: %s %s\n", meta.Symbol, meta.Label)
		fmt.Printf("title:    %s\n", result.Title)
		fmt.Printf("tags:     %s\n", strings.Join(result.Tags, " "))
		if result.Summary != "" {
			fmt.Printf("summary:  %s\n", result.Summary)
		}

		if result.Degraded() {
			fmt.Printf("classification degraded, %s\n", result.Err)
			return
		}

		fmt.Println("gemini responded with a full classification")
	},
}

func init() {
	rootCmd.AddCommand(checkAICmd)
	checkAICmd.Flags().StringVar(&checkAIText, "text", "React Hook에 대해 공부한 내용을 정리했다", "Sample text to classify")
}
