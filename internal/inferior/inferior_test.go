//go:build linux

package inferior

import "testing"

func TestPatchedWordPreservesUpperBytes(t *testing.T) {
	word := uint64(0x1122334455667788)
	patched := (word &^ 0xFF) | 0xCC
	if patched != 0x11223344556677CC {
		t.Fatalf("patched = %#x, want %#x", patched, uint64(0x11223344556677CC))
	}
	if got := (patched &^ 0xFF) | uint64(byte(word)); got != word {
		t.Errorf("restored = %#x, want original %#x", got, word)
	}
}

func TestNewInferiorHasEmptySiteMap(t *testing.T) {
	inf := New(1234, nil)
	if inf.Pid != 1234 {
		t.Errorf("Pid = %d, want 1234", inf.Pid)
	}
	if len(inf.sites) != 0 {
		t.Errorf("expected no breakpoint sites on a fresh Inferior, got %d", len(inf.sites))
	}
}
