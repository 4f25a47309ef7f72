package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"noteflow/pkg/config"
	"noteflow/pkg/session"
)

var instance *Firestore

// Firestore is the remote note store, scoped to the authenticated owner.
// Every operation resolves the owner through the session first and fails
// with models.ErrUnauthenticated before touching the store when no owner
// session is active.
type Firestore struct {
	ctx     context.Context
	cfg     *config.Config
	client  *firestore.Client
	session *session.Session
}

func Get() *Firestore {
	if instance == nil {
		panic("firestore is not initialized")
	}

	return instance
}

func Initialize(ctx context.Context, cfg *config.Config, s *session.Session) (*Firestore, error) {
	if instance != nil {
		return instance, nil
	}

	client, err := firestore.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating firestore client, %s", err)
	}

	instance = &Firestore{
		ctx:     ctx,
		cfg:     cfg,
		client:  client,
		session: s,
	}

	return instance, nil
}

func (fs *Firestore) Close() error {
	return fs.client.Close()
}

func (fs *Firestore) owner() (string, error) {
	return fs.session.CurrentOwnerID()
}
