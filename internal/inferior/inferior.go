//go:build linux

// Package inferior owns a single live tracee: its pid, its PTY, and the set
// of software breakpoints currently patched into its text memory.
package inferior

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"github.com/jdb-go/jdb/internal/breakpoint"
	"github.com/jdb-go/jdb/internal/jdberr"
	"github.com/jdb-go/jdb/internal/pty"
)

// Inferior tracks everything the tracer needs about one tracee beyond its
// register state: which pid it is, the terminal it's attached to, and which
// addresses currently have a software breakpoint's INT3 patched in.
type Inferior struct {
	Pid   int
	PTY   *pty.Channel // nil for an attached (not launched) tracee
	sites map[breakpoint.ID]byte
}

// New wraps a traced pid, optionally owning its PTY.
func New(pid int, p *pty.Channel) *Inferior {
	return &Inferior{Pid: pid, PTY: p, sites: make(map[breakpoint.ID]byte)}
}

// EnableBreakpointSite patches INT3 over the byte at site.Address(), saving
// the original byte so DisableBreakpointSite can restore it later. A no-op
// if the site is already installed in this tracee.
func (inf *Inferior) EnableBreakpointSite(site *breakpoint.Site) error {
	if site.IsInstalled() {
		return nil
	}

	addr := uintptr(site.Address())
	word, err := peekWord(inf.Pid, addr)
	if err != nil {
		return err
	}

	saved := byte(word)
	patched := (word &^ 0xFF) | uint64(breakpoint.INT3)
	if err := pokeWord(inf.Pid, addr, patched); err != nil {
		return err
	}

	inf.sites[site.ID()] = saved
	site.MarkInstalled(saved)
	return nil
}

// DisableBreakpointSite restores the byte EnableBreakpointSite saved. A
// no-op if the site isn't currently installed in this tracee.
func (inf *Inferior) DisableBreakpointSite(site *breakpoint.Site) error {
	if !site.IsInstalled() {
		return nil
	}

	saved, ok := inf.sites[site.ID()]
	if !ok {
		return jdberr.NewStateError("breakpoint site has no saved byte to restore")
	}

	addr := uintptr(site.Address())
	word, err := peekWord(inf.Pid, addr)
	if err != nil {
		return err
	}

	restored := (word &^ 0xFF) | uint64(saved)
	if err := pokeWord(inf.Pid, addr, restored); err != nil {
		return err
	}

	delete(inf.sites, site.ID())
	site.MarkUninstalled()
	return nil
}

func peekWord(pid int, addr uintptr) (uint64, error) {
	var buf [8]byte
	n, err := unix.PtracePeekData(pid, addr, buf[:])
	if err != nil {
		return 0, jdberr.NewSyscallError("PTRACE_PEEKDATA", err)
	}
	if n != len(buf) {
		return 0, jdberr.NewSyscallError("PTRACE_PEEKDATA", unix.EIO)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func pokeWord(pid int, addr uintptr, word uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], word)
	n, err := unix.PtracePokeData(pid, addr, buf[:])
	if err != nil {
		return jdberr.NewSyscallError("PTRACE_POKEDATA", err)
	}
	if n != len(buf) {
		return jdberr.NewSyscallError("PTRACE_POKEDATA", unix.EIO)
	}
	return nil
}
