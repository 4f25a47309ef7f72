package notify

import "noteflow/pkg/log"

// InitializeLogOnly routes notifications to the logger, for credential-less
// runs and for tests.
func InitializeLogOnly() Notifier {
	if instance != nil {
		return instance
	}

	instance = &logNotifier{}
	return instance
}

type logNotifier struct{}

func (n *logNotifier) Notify(kind Kind, message string) {
	logger := log.Logger()

	switch kind {
	case KindError:
		logger.Errorf("%s", message)
	case KindWarning:
		logger.Warningf("%s", message)
	default:
		logger.Infof("%s", message)
	}
}

func (n *logNotifier) Close() error {
	return nil
}
