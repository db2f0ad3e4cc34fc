package serial

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type closer struct{ closed atomic.Bool }

func (c *closer) Close() error {
	c.closed.Store(true)
	return nil
}

func TestCloseOnDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &closer{}
	stop := CloseOnDone(ctx, c)
	defer stop()
	cancel()
	deadline := time.Now().Add(time.Second)
	for !c.closed.Load() {
		if time.Now().After(deadline) {
			t.Fatalf("closer not called after cancel")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCloseOnDoneStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &closer{}
	stop := CloseOnDone(ctx, c)
	stop()
	time.Sleep(10 * time.Millisecond)
	if c.closed.Load() {
		t.Fatalf("closer must not be called after stop")
	}
}
