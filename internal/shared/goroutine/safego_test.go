package goroutine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"unibot/internal/shared/logger"
)

type captureLogger struct {
	errored chan string
}

func (l *captureLogger) Debug(msg string, args ...any) {}
func (l *captureLogger) Info(msg string, args ...any)  {}
func (l *captureLogger) Warn(msg string, args ...any)  {}
func (l *captureLogger) Error(msg string, args ...any) {}

func (l *captureLogger) Debugw(msg string, keysAndValues ...any) {}
func (l *captureLogger) Infow(msg string, keysAndValues ...any)  {}
func (l *captureLogger) Warnw(msg string, keysAndValues ...any)  {}
func (l *captureLogger) Errorw(msg string, keysAndValues ...any) {
	l.errored <- msg
}

func (l *captureLogger) With(args ...any) logger.Interface { return l }
func (l *captureLogger) Named(name string) logger.Interface { return l }

func TestSafeGo_RunsFunction(t *testing.T) {
	done := make(chan struct{})
	SafeGo(&captureLogger{errored: make(chan string, 1)}, "work", func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background task never ran")
	}
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	log := &captureLogger{errored: make(chan string, 1)}
	SafeGo(log, "boom", func() {
		panic("kaboom")
	})

	select {
	case msg := <-log.errored:
		assert.Equal(t, "recovered panic in background task", msg)
	case <-time.After(time.Second):
		t.Fatal("panic was not logged")
	}
}
