// Package breakpoint defines the stoppoint identity and address types
// shared by every kind of breakpoint site, independent of how a site is
// physically enabled against a tracee.
package breakpoint

import (
	"fmt"
	"sync/atomic"
)

// ID identifies one stoppoint for the lifetime of a debug session. IDs are
// never reused, even after their site is removed.
type ID int32

var nextID int32

func newID() ID {
	return ID(atomic.AddInt32(&nextID, 1))
}

// VirtualAddress is an address in the tracee's address space.
type VirtualAddress uint64

func (a VirtualAddress) String() string { return fmt.Sprintf("0x%x", uint64(a)) }

// Add returns the address offset by n bytes.
func (a VirtualAddress) Add(n int64) VirtualAddress {
	return VirtualAddress(int64(a) + n)
}

// INT3 is the x86 one-byte breakpoint trap instruction software breakpoints
// patch into the tracee's code.
const INT3 byte = 0xCC

// Site is one software breakpoint. Enabled tracks user intent — whether
// this breakpoint should take effect — independent of Installed, which
// tracks whether INT3 is physically patched into some live tracee's memory
// right now: a breakpoint can be Enabled with no tracee attached, in which
// case it gets installed the next time one launches.
type Site struct {
	id        ID
	addr      VirtualAddress
	enabled   bool
	installed bool
	savedByte byte
}

// NewSite allocates a site at addr, enabled by default and not yet
// installed in any tracee.
func NewSite(addr VirtualAddress) *Site {
	return &Site{id: newID(), addr: addr, enabled: true}
}

func (s *Site) ID() ID                  { return s.id }
func (s *Site) Address() VirtualAddress { return s.addr }
func (s *Site) IsEnabled() bool         { return s.enabled }
func (s *Site) IsInstalled() bool       { return s.installed }

// SetEnabled updates user intent only; it does not touch tracee memory.
// The caller is responsible for installing/uninstalling the site in any
// live tracee to match.
func (s *Site) SetEnabled(enabled bool) { s.enabled = enabled }

// AtAddress reports whether this site sits exactly at addr.
func (s *Site) AtAddress(addr VirtualAddress) bool { return s.addr == addr }

// InRange reports whether this site's address falls in [low, high).
func (s *Site) InRange(low, high VirtualAddress) bool {
	return low <= s.addr && s.addr < high
}

// MarkInstalled and MarkUninstalled are called by the inferior package once
// the INT3 patch has actually been written/restored in tracee memory.
func (s *Site) MarkInstalled(saved byte) {
	s.installed = true
	s.savedByte = saved
}

func (s *Site) MarkUninstalled() {
	s.installed = false
}

// SavedByte returns the original byte INT3 overwrote, valid only while
// IsInstalled is true.
func (s *Site) SavedByte() (byte, bool) {
	if !s.installed {
		return 0, false
	}
	return s.savedByte, true
}
