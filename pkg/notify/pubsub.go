package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"noteflow/pkg/config"
	"noteflow/pkg/log"
)

// InitializePubSub routes notifications to a pub/sub topic, where the
// notification UI picks them up.
func InitializePubSub(ctx context.Context, cfg *config.Config) (Notifier, error) {
	if instance != nil {
		return instance, nil
	}

	client, err := pubsub.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating pubsub client, %s", err)
	}

	topic := client.Topic(cfg.Notifications.Topic)
	if topic == nil {
		return nil, fmt.Errorf("invalid topic, %s", cfg.Notifications.Topic)
	}

	instance = &pubsubNotifier{
		ctx:    ctx,
		client: client,
		topic:  topic,
	}

	return instance, nil
}

type pubsubNotifier struct {
	ctx    context.Context
	client *pubsub.Client
	topic  *pubsub.Topic
}

type notification struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

func (n *pubsubNotifier) Notify(kind Kind, message string) {
	logger := log.Logger()

	data, err := json.Marshal(notification{Kind: kind, Message: message, At: time.Now()})
	if err != nil {
		logger.Errorf("error serializing notification, %s", err)
		return
	}

	// fire and forget; the publish result is intentionally not awaited
	_ = n.topic.Publish(n.ctx, &pubsub.Message{
		Data: data,
	})

	logger.Debugf("notified [%s] %s", kind, message)
}

func (n *pubsubNotifier) Close() error {
	n.topic.Stop()
	return n.client.Close()
}
