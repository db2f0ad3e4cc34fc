// Package serial opens NMEA receivers attached to a serial port.
package serial

import (
	"context"
	"io"
	"os"
)

// DefaultBaud is the NMEA 0183 standard rate.
const DefaultBaud = 4800

// Open opens path in raw 8N1 mode at baud. Only Linux is supported.
func Open(path string, baud int) (*os.File, error) {
	return openSerial(path, baud)
}

// CloseOnDone closes c when ctx is cancelled so that a blocked read
// returns. The returned function stops the watcher.
func CloseOnDone(ctx context.Context, c io.Closer) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()
	return func() { close(done) }
}
