//go:build linux && amd64

package registers

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jdb-go/jdb/internal/jdberr"
)

// Snapshot is a point-in-time, typed read/write view over one stopped
// tracee's registers: the general-purpose set, the FXSAVE floating-point
// set, and the eight hardware debug registers. Reads are served from the
// in-memory copy; writes flush only the affected bank back to the kernel.
type Snapshot struct {
	pid   int
	gpr   unix.PtraceRegs
	fpr   fpRegs
	debug [8]uint64
}

// ReadAll pulls a fresh snapshot of pid's registers. pid must be a stopped
// tracee (e.g. just reported via waitpid).
func ReadAll(pid int) (*Snapshot, error) {
	s := &Snapshot{pid: pid}

	if err := unix.PtraceGetRegs(pid, &s.gpr); err != nil {
		return nil, jdberr.NewSyscallError("PTRACE_GETREGS", err)
	}

	fpr, err := ptraceGetFPRegsRaw(pid)
	if err != nil {
		return nil, jdberr.NewSyscallError("PTRACE_GETFPREGS", err)
	}
	s.fpr = fpr

	for i := 0; i < len(s.debug); i++ {
		word, err := ptracePeekUserWord(pid, uintptr(debugBaseOffset+i*debugStride))
		if err != nil {
			return nil, jdberr.NewSyscallError("PTRACE_PEEKUSR", err)
		}
		s.debug[i] = word
	}

	return s, nil
}

func gprBytes(gpr *unix.PtraceRegs) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(gpr)), unsafe.Sizeof(*gpr))
}

func fprBytes(fpr *fpRegs) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(fpr)), unsafe.Sizeof(*fpr))
}

// fprSlotOffset returns an ST/MM/XMM slot's byte offset within fpRegs
// itself (not the wider "user" composite offsetOf computes).
func fprSlotOffset(loc Location) int {
	base := stSpaceOffset
	if loc.Field == "xmm" {
		base = xmmSpaceOffset
	}
	return base + loc.Slot*regBankStride
}

// Read decodes one register's current value out of the snapshot.
func (s *Snapshot) Read(r Register) (Value, error) {
	info, ok := Lookup(r)
	if !ok {
		return Value{}, jdberr.NewNotFoundError("register not in catalog")
	}

	switch info.Type {
	case TypeGPR, TypeSubGPR:
		b := gprBytes(&s.gpr)
		off := gprFieldOffset(info.Loc.Field) + info.Width.SubOffset()
		return valueFromBytes(info.Format, b[off:off+info.Size]), nil
	case TypeFPR:
		b := fprBytes(&s.fpr)
		var off int
		if info.Loc.Kind == LocFPRWord {
			off = fpWordOffset(info.Loc.Field)
		} else {
			off = fprSlotOffset(info.Loc)
		}
		return valueFromBytes(info.Format, b[off:off+info.Size]), nil
	case TypeDebug:
		return Uint64Value(s.debug[info.Loc.Slot]), nil
	default:
		return Value{}, jdberr.NewBadConversionError("unsupported register type")
	}
}

// Write stores v into the snapshot and flushes the owning bank (GPR set, FPR
// set, or a single debug register) back to pid via ptrace. A value whose
// format differs from the register's declared format is rejected with
// BadConversionError.
func (s *Snapshot) Write(r Register, v Value) error {
	info, ok := Lookup(r)
	if !ok {
		return jdberr.NewNotFoundError("register not in catalog")
	}
	if v.Format() != info.Format {
		return jdberr.NewBadConversionError("value format does not match the register's format")
	}

	switch info.Type {
	case TypeGPR, TypeSubGPR:
		b := gprBytes(&s.gpr)
		off := gprFieldOffset(info.Loc.Field) + info.Width.SubOffset()
		copy(b[off:off+info.Size], v.Bytes())
		if err := unix.PtraceSetRegs(s.pid, &s.gpr); err != nil {
			return jdberr.NewSyscallError("PTRACE_SETREGS", err)
		}
		return nil
	case TypeFPR:
		b := fprBytes(&s.fpr)
		var off int
		if info.Loc.Kind == LocFPRWord {
			off = fpWordOffset(info.Loc.Field)
		} else {
			off = fprSlotOffset(info.Loc)
		}
		copy(b[off:off+info.Size], v.Bytes())
		if err := ptraceSetFPRegsRaw(s.pid, s.fpr); err != nil {
			return jdberr.NewSyscallError("PTRACE_SETFPREGS", err)
		}
		return nil
	case TypeDebug:
		word := v.Uint64()
		s.debug[info.Loc.Slot] = word
		if err := ptracePokeUserWord(s.pid, uintptr(debugBaseOffset+info.Loc.Slot*debugStride), word); err != nil {
			return jdberr.NewSyscallError("PTRACE_POKEUSR", err)
		}
		return nil
	default:
		return jdberr.NewBadConversionError("unsupported register type")
	}
}

// PC returns the program counter (rip), the register the breakpoint and
// single-step machinery consult most often.
func (s *Snapshot) PC() uint64 { return s.gpr.Rip }

// SetPC rewinds/advances the program counter without touching any other
// register, the adjustment made after stepping back over a breakpoint's
// INT3.
func (s *Snapshot) SetPC(pc uint64) error {
	s.gpr.Rip = pc
	if err := unix.PtraceSetRegs(s.pid, &s.gpr); err != nil {
		return jdberr.NewSyscallError("PTRACE_SETREGS", err)
	}
	return nil
}
