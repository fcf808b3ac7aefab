// Package goroutine keeps background work from taking the bot down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"unibot/internal/shared/logger"
)

// SafeGo starts fn on its own goroutine and turns a panic into an error
// log entry with the stack attached. Update handling and the HTTP server
// run through this so one bad update cannot kill the polling loop.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Errorw("recovered panic in background task",
				"task", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}()
		fn()
	}()
}
