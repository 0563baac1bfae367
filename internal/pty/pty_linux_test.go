//go:build linux

package pty

import (
	"testing"
	"time"
)

func TestChannelForwardsWrites(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Stop()

	if _, err := c.Slave().WriteString("hello\r\n"); err != nil {
		t.Fatalf("write to slave: %v", err)
	}

	select {
	case chunk := <-c.Out():
		if chunk == "" {
			t.Error("expected non-empty chunk")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for forwarded output")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c.Stop()
	c.Stop()
}
