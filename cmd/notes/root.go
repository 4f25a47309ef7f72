package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noteflow/pkg/analysis"
	"noteflow/pkg/browse"
	"noteflow/pkg/config"
	"noteflow/pkg/firestore"
	"noteflow/pkg/gemini"
	"noteflow/pkg/log"
	"noteflow/pkg/notify"
)

const defaultConfigFilename = "config.yaml"

var (
	configFilename string

	cfg      *config.Config
	notifier notify.Notifier
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Capture and browse personal notes with AI classification",
	Long: `notes captures quick memos, classifies them into categories with
Gemini and stores them per user in Firestore. Browsing supports category,
tag, favorite, date and text filters over paginated results.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var err error
		cfg, err = config.ReadConfig(configFilename)
		if err != nil {
			fatal("error reading config", err)
		}

		initializeLogger(ctx, cfg)
		initializeSession(cfg)
		initializeFirestore(ctx, cfg)
		notifier = initializeNotifier(ctx, cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = notifier.Close()
		_ = firestore.Get().Close()
		log.Logger().Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFilename, "config", "c", defaultConfigFilename, "Config file")
}

func newOrchestrator() *analysis.Orchestrator {
	return analysis.NewOrchestrator(gemini.NewClient(cfg), firestore.Get(), notifier)
}

func newView() *browse.View {
	return browse.NewView(firestore.Get(), notifier, cfg.Notes.PageSize)
}
