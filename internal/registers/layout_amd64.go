//go:build linux && amd64

package registers

import (
	"reflect"

	"golang.org/x/sys/unix"
)

// fpRegs mirrors struct user_fpregs_struct (the x86_64 FXSAVE layout the
// kernel exposes via PTRACE_GETFPREGS/PTRACE_SETFPREGS). golang.org/x/sys/unix
// does not export a named type for it the way it does unix.PtraceRegs, so we
// declare our own with an identical field layout.
type fpRegs struct {
	Cwd      uint16
	Swd      uint16
	Ftw      uint16
	Fop      uint16
	Rip      uint64
	Rdp      uint64
	Mxcsr    uint32
	MxcrMask uint32
	StSpace  [32]uint32 // ST0-ST7 / MM0-MM7, 16 bytes (4 words) each
	XmmSpace [64]uint32 // XMM0-XMM15, 16 bytes (4 words) each
	Padding  [24]uint32
}

// Byte offsets of the sub-structures within Linux's struct user on x86_64:
//
//	struct user {
//	    struct user_regs_struct regs;     // offset 0,   size 216
//	    int u_fpvalid;                    // offset 216
//	    struct user_fpregs_struct i387;   // offset 224, size 512
//	    ... u_tsize, u_dsize, u_ssize, start_code, start_stack, signal, ...
//	    unsigned long u_debugreg[8];      // offset 848
//	};
const (
	gprBaseOffset   = 0
	fpBaseOffset    = 224
	debugBaseOffset = 848

	stSpaceOffset  = 32  // offset of st_space within user_fpregs_struct
	xmmSpaceOffset = 160 // offset of xmm_space within user_fpregs_struct

	regBankStride = 16 // stride between ST/MM/XMM slots
	debugStride   = 8  // stride between debug register slots
)

func gprFieldOffset(field string) int {
	t := reflect.TypeOf(unix.PtraceRegs{})
	f, ok := t.FieldByName(field)
	if !ok {
		panic("registers: unknown PtraceRegs field " + field)
	}
	return int(f.Offset)
}

func fpWordOffset(field string) int {
	t := reflect.TypeOf(fpRegs{})
	f, ok := t.FieldByName(field)
	if !ok {
		panic("registers: unknown fpRegs field " + field)
	}
	return int(f.Offset)
}

// offsetOf computes a declaration's byte offset within the "user"
// composite: field offset plus sub-struct base, array slot stride, and the
// +1 high-byte adjustment.
func offsetOf(loc Location, width Width) int {
	switch loc.Kind {
	case LocGPR:
		return gprBaseOffset + gprFieldOffset(loc.Field) + width.SubOffset()
	case LocFPRWord:
		return fpBaseOffset + fpWordOffset(loc.Field)
	case LocFPRSlot:
		base := stSpaceOffset
		if loc.Field == "xmm" {
			base = xmmSpaceOffset
		}
		return fpBaseOffset + base + loc.Slot*regBankStride
	case LocDebug:
		return debugBaseOffset + loc.Slot*debugStride
	default:
		panic("registers: unknown location kind")
	}
}
