package breakpoint

import "testing"

func TestNewSiteIDsAreMonotonicAndUnique(t *testing.T) {
	a := NewSite(0x1000)
	b := NewSite(0x2000)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct ids, got %d and %d", a.ID(), b.ID())
	}
	if b.ID() <= a.ID() {
		t.Errorf("expected monotonically increasing ids, got %d then %d", a.ID(), b.ID())
	}
}

func TestNewSiteStartsEnabledButNotInstalled(t *testing.T) {
	s := NewSite(0x1000)
	if !s.IsEnabled() {
		t.Error("a new site should default to enabled")
	}
	if s.IsInstalled() {
		t.Error("a new site should not yet be installed in any tracee")
	}
	if _, ok := s.SavedByte(); ok {
		t.Error("an uninstalled site should have no saved byte")
	}
}

func TestSetEnabledIsIndependentOfInstalled(t *testing.T) {
	s := NewSite(0x1000)
	s.SetEnabled(false)
	if s.IsEnabled() {
		t.Error("expected disabled after SetEnabled(false)")
	}
	if s.IsInstalled() {
		t.Error("SetEnabled should not touch installed state")
	}
}

func TestMarkInstalledUninstalled(t *testing.T) {
	s := NewSite(0x1000)
	s.MarkInstalled(0x90)
	if !s.IsInstalled() {
		t.Error("expected installed after markInstalled")
	}
	saved, ok := s.SavedByte()
	if !ok || saved != 0x90 {
		t.Errorf("SavedByte() = (%x, %v), want (0x90, true)", saved, ok)
	}
	s.MarkUninstalled()
	if s.IsInstalled() {
		t.Error("expected not installed after markUninstalled")
	}
}

func TestAtAddressAndInRange(t *testing.T) {
	s := NewSite(0x2000)
	if !s.AtAddress(0x2000) {
		t.Error("AtAddress(0x2000) should be true")
	}
	if s.AtAddress(0x2001) {
		t.Error("AtAddress(0x2001) should be false")
	}
	if !s.InRange(0x1000, 0x3000) {
		t.Error("expected 0x2000 to be in [0x1000, 0x3000)")
	}
	if s.InRange(0x2000, 0x3000) == false {
		t.Error("InRange should be inclusive of low bound")
	}
	if s.InRange(0x1000, 0x2000) {
		t.Error("InRange should be exclusive of high bound")
	}
}
