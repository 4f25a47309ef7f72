package log

import "fmt"

// InitializeStdoutLogger backs the logger with plain stdout output, for
// runs without Google Cloud credentials and for tests.
func InitializeStdoutLogger() Log {
	if logger != nil {
		return logger
	}

	logger = &stdoutLogger{}
	return logger
}

type stdoutLogger struct{}

func (sl *stdoutLogger) Close() error {
	return nil
}

func (sl *stdoutLogger) Logf(severity Severity, format string, args ...any) {
	fmt.Printf("%s [%s] %s\n", timestamp(), marker(severity), fmt.Sprintf(format, args...))
}

func (sl *stdoutLogger) Debugf(format string, args ...any) {
	sl.Logf(Debug, format, args...)
}

func (sl *stdoutLogger) Infof(format string, args ...any) {
	sl.Logf(Info, format, args...)
}

func (sl *stdoutLogger) Noticef(format string, args ...any) {
	sl.Logf(Notice, format, args...)
}

func (sl *stdoutLogger) Warningf(format string, args ...any) {
	sl.Logf(Warning, format, args...)
}

func (sl *stdoutLogger) Errorf(format string, args ...any) {
	sl.Logf(Error, format, args...)
}

func (sl *stdoutLogger) Criticalf(format string, args ...any) {
	sl.Logf(Critical, format, args...)
}
