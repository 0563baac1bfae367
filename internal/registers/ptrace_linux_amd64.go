//go:build linux && amd64

package registers

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Request numbers golang.org/x/sys/unix doesn't name as constants: it wraps
// GETREGS/SETREGS/PEEKDATA/POKEDATA but not the four below.
const (
	ptracePeekUser  = 3
	ptracePokeUser  = 6
	ptraceGetFPRegs = 14
	ptraceSetFPRegs = 15
)

func ptracePeekUserWord(pid int, addr uintptr) (uint64, error) {
	var data uint64
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, ptracePeekUser, uintptr(pid), addr, uintptr(unsafe.Pointer(&data)), 0, 0)
	if errno != 0 {
		return 0, errno
	}
	return data, nil
}

func ptracePokeUserWord(pid int, addr uintptr, data uint64) error {
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, ptracePokeUser, uintptr(pid), addr, uintptr(data), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func ptraceGetFPRegsRaw(pid int) (fpRegs, error) {
	var regs fpRegs
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, ptraceGetFPRegs, uintptr(pid), 0, uintptr(unsafe.Pointer(&regs)), 0, 0)
	if errno != 0 {
		return fpRegs{}, errno
	}
	return regs, nil
}

func ptraceSetFPRegsRaw(pid int, regs fpRegs) error {
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, ptraceSetFPRegs, uintptr(pid), 0, uintptr(unsafe.Pointer(&regs)), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
