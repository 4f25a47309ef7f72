package notify

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notifier delivers user-facing notifications. Delivery is fire and
// forget: callers never block on or inspect the outcome.
type Notifier interface {
	Notify(kind Kind, message string)
	Close() error
}

var instance Notifier

func Get() Notifier {
	if instance == nil {
		panic("notifier is not initialized")
	}

	return instance
}

func Success(message string) {
	Get().Notify(KindSuccess, message)
}

func Error(message string) {
	Get().Notify(KindError, message)
}

func Warning(message string) {
	Get().Notify(KindWarning, message)
}

func Info(message string) {
	Get().Notify(KindInfo, message)
}
