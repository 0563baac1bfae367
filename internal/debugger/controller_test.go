//go:build linux

package debugger

import (
	"testing"

	"github.com/jdb-go/jdb/internal/config"
	"github.com/jdb-go/jdb/internal/jdberr"
)

func newTestController() *Controller {
	return New(config.Options{})
}

func TestCreateBreakpointRejectsDuplicateAddress(t *testing.T) {
	c := newTestController()
	if _, err := c.CreateBreakpoint(0x1000); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := c.CreateBreakpoint(0x1000)
	if err == nil {
		t.Fatal("expected a duplicate error on the second create at the same address")
	}
	if !jdberr.IsDuplicate(err) {
		t.Errorf("expected a duplicate error, got %v", err)
	}
	if len(c.breakpoints) != 1 {
		t.Errorf("expected exactly one breakpoint to survive, got %d", len(c.breakpoints))
	}
}

func TestDeleteUnknownBreakpointFails(t *testing.T) {
	c := newTestController()
	err := c.DeleteBreakpoint(999)
	if err == nil {
		t.Fatal("expected not-found error deleting an unknown id")
	}
	if !jdberr.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestNewBreakpointDefaultsEnabled(t *testing.T) {
	c := newTestController()
	id, err := c.CreateBreakpoint(0x2000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	site := c.breakpoints[id]
	if !site.IsEnabled() {
		t.Error("a newly created breakpoint should default to enabled")
	}
}

func TestDisableThenEnableWithNoLiveInferior(t *testing.T) {
	c := newTestController()
	id, err := c.CreateBreakpoint(0x3000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.DisableBreakpoint(id); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if c.breakpoints[id].IsEnabled() {
		t.Error("expected disabled")
	}
	if err := c.EnableBreakpoint(id); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !c.breakpoints[id].IsEnabled() {
		t.Error("expected enabled again")
	}
}

func TestReadRegisterWithoutSnapshotReturnsNotOK(t *testing.T) {
	c := newTestController()
	_, ok := c.ReadRegister(0)
	if ok {
		t.Error("expected ok=false when no snapshot has been taken")
	}
}

func TestDestroyWithNoInferiorIsNoOp(t *testing.T) {
	c := newTestController()
	if err := c.Destroy(); err != nil {
		t.Errorf("Destroy on a fresh controller should be a no-op, got %v", err)
	}
}

func TestLastNLogLinesEmpty(t *testing.T) {
	c := newTestController()
	if got := c.LastNLogLines(5); got != nil {
		t.Errorf("expected nil for an empty ring, got %v", got)
	}
}

func TestLastNLogLinesClampsToAvailable(t *testing.T) {
	c := newTestController()
	c.output = []string{"a", "b", "c"}
	got := c.LastNLogLines(10)
	if len(got) != 3 {
		t.Errorf("expected 3 lines, got %d", len(got))
	}
}
