package log

type Severity int

const (
	Debug    Severity = 100 // Debug or trace information
	Info     Severity = 200 // Routine information, such as ongoing status
	Notice   Severity = 300 // Normal but significant events, such as start up or shut down
	Warning  Severity = 400 // Warning events might cause problems
	Error    Severity = 500 // Error events are likely to cause problems
	Critical Severity = 600 // Critical events cause more severe problems or outages
)

type Log interface {
	Close() error
	Logf(severity Severity, format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Noticef(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Criticalf(format string, args ...any)
}

var logger Log = nil

func Logger() Log {
	if logger == nil {
		panic("logger is not initialized")
	}

	return logger
}

func marker(severity Severity) string {
	switch severity {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Notice:
		return "N"
	case Warning:
		return "W"
	case Error:
		return "E"
	case Critical:
		return "X"
	}
	return "-"
}
