package log

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"

	"noteflow/pkg/config"
)

// InitializeGCPLogger backs the logger with Google Cloud Logging. Every
// entry is also echoed to stdout so local runs stay readable.
func InitializeGCPLogger(ctx context.Context, cfg *config.Config, logID string) (Log, error) {
	if logger != nil {
		return logger, nil
	}

	client, err := logging.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, fmt.Errorf("error creating logging client")
	}

	logger = &gcpLogger{
		ctx:    ctx,
		client: client,
		logger: client.Logger(logID),
	}

	return logger, nil
}

type gcpLogger struct {
	ctx    context.Context
	client *logging.Client
	logger *logging.Logger
}

func (gl *gcpLogger) Close() error {
	return gl.client.Close()
}

func (gl *gcpLogger) Logf(severity Severity, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	gl.logger.Log(logging.Entry{Payload: message, Severity: logging.Severity(severity)})
	fmt.Printf("%s [%s] %s\n", timestamp(), marker(severity), message)
}

func (gl *gcpLogger) Debugf(format string, args ...any) {
	gl.Logf(Debug, format, args...)
}

func (gl *gcpLogger) Infof(format string, args ...any) {
	gl.Logf(Info, format, args...)
}

func (gl *gcpLogger) Noticef(format string, args ...any) {
	gl.Logf(Notice, format, args...)
}

func (gl *gcpLogger) Warningf(format string, args ...any) {
	gl.Logf(Warning, format, args...)
}

func (gl *gcpLogger) Errorf(format string, args ...any) {
	gl.Logf(Error, format, args...)
}

func (gl *gcpLogger) Criticalf(format string, args ...any) {
	gl.Logf(Critical, format, args...)
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}
