//go:build linux

package serial

import (
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestBaudToUnix(t *testing.T) {
	cases := map[int]uint32{
		4800:   unix.B4800,
		9600:   unix.B9600,
		38400:  unix.B38400,
		115200: unix.B115200,
	}
	for baud, want := range cases {
		got, err := baudToUnix(baud)
		if err != nil || got != want {
			t.Fatalf("baudToUnix(%d) = %v,%v", baud, got, err)
		}
	}
	if _, err := baudToUnix(1234); err == nil {
		t.Fatalf("expected error for unsupported baud")
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing"), DefaultBaud); err == nil {
		t.Fatalf("expected error for missing device")
	}
	if _, err := Open("/dev/null", 1234); err == nil {
		t.Fatalf("expected error for unsupported baud")
	}
}
