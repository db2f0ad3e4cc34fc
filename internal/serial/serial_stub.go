//go:build !linux

package serial

import (
	"fmt"
	"os"
)

func openSerial(path string, baud int) (*os.File, error) {
	return nil, fmt.Errorf("serial ports are not supported on this platform")
}
