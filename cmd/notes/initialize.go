package main

import (
	"context"
	"fmt"

	"noteflow/pkg/config"
	"noteflow/pkg/firestore"
	"noteflow/pkg/log"
	"noteflow/pkg/notify"
	"noteflow/pkg/session"
)

const logID = "notes"

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if cfg.GoogleCloud.ProjectID == "" {
		log.InitializeStdoutLogger()
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, logID)
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func initializeSession(cfg *config.Config) {
	_, err := session.Initialize(cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing session, %s", err))
	}
}

func initializeFirestore(ctx context.Context, cfg *config.Config) {
	_, err := firestore.Initialize(ctx, cfg, session.Get())
	if err != nil {
		panic(fmt.Errorf("error initializing firestore, %s", err))
	}
}

func initializeNotifier(ctx context.Context, cfg *config.Config) notify.Notifier {
	if cfg.Notifications.Topic == "" {
		return notify.InitializeLogOnly()
	}

	n, err := notify.InitializePubSub(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing notifications, %s", err))
	}

	return n
}
