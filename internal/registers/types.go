// Package registers describes every register and subregister a tracee
// exposes: where its bytes live inside the kernel's register save areas, and
// a point-in-time, typed read/write view over one stopped tracee.
//
// The catalog is architecture-scoped; this file holds the shape shared by
// every architecture, catalog_<arch>.go holds the declarations themselves.
package registers

import "fmt"

// Register is an opaque, architecture-scoped identifier for one supported
// register or subregister.
type Register int

// Width is the native bit-width of a register or subregister, including the
// two 8-bit aliases (high byte vs low byte of the parent 64-bit register).
type Width int

const (
	W8H  Width = iota // high byte of a 64-bit GPR (AH, BH, CH, DH)
	W8L               // low byte
	W16
	W32
	W64
	W80  // x87 extended precision (ST0-ST7)
	W128 // XMM
)

// Bits returns the register width in bits.
func (w Width) Bits() int {
	switch w {
	case W8H, W8L:
		return 8
	case W16:
		return 16
	case W32:
		return 32
	case W64:
		return 64
	case W80:
		return 80
	case W128:
		return 128
	default:
		return 0
	}
}

// Bytes returns the size in bytes of a register's value: width/8, except
// W80 which rounds up to 10 bytes.
func (w Width) Bytes() int {
	if w == W80 {
		return 10
	}
	return w.Bits() / 8
}

// SubOffset is the +1 byte adjustment applied to the high-byte subregister
// aliases (AH/BH/CH/DH); zero for every other width.
func (w Width) SubOffset() int {
	if w == W8H {
		return 1
	}
	return 0
}

// RegType is the broad grouping assigned to each register, used for
// display/filtering and to pick the read/write strategy (bulk regset vs.
// per-word peek/poke).
type RegType int

const (
	TypeGPR RegType = iota
	TypeSubGPR
	TypeFPR
	TypeDebug
)

// LocationKind distinguishes where a register's bytes live within the
// kernel-exported "user" composite.
type LocationKind int

const (
	// LocGPR: a named field of the general-purpose register struct.
	LocGPR LocationKind = iota
	// LocFPRWord: a named field of the floating-point register struct
	// (FCW/FSW/FTW/FOP).
	LocFPRWord
	// LocFPRSlot: an indexed slot of the floating-point register struct's
	// ST/MM/XMM array, stride 16 bytes.
	LocFPRSlot
	// LocDebug: an indexed slot of the eight debug registers, stride 8
	// bytes.
	LocDebug
)

// Location identifies where a register's bytes live, independent of its
// computed byte Offset (which Info.Offset caches).
type Location struct {
	Kind  LocationKind
	Field string // struct field name for LocGPR/LocFPRWord; "st" or "xmm" bank for LocFPRSlot
	Slot  int    // array index, for LocFPRSlot/LocDebug
}

// Format selects which Value variant a register's contents decode to.
type Format int

const (
	FmtUint8 Format = iota
	FmtUint16
	FmtUint32
	FmtUint64
	FmtInt8
	FmtInt16
	FmtInt32
	FmtInt64
	FmtFloat32
	FmtFloat64
	FmtLongDouble
	FmtByte64
	FmtByte128
)

// Info is the fully derived, immutable metadata for one register: the
// RegisterCatalog's output.
type Info struct {
	Register Register
	Name     string
	DwarfID  int // -1 if none
	Loc      Location
	Offset   int // byte offset within the "user" composite
	Size     int // bytes
	Width    Width
	Type     RegType
	Format   Format
}

func (i Info) String() string {
	return fmt.Sprintf("%s(offset=%d,size=%d)", i.Name, i.Offset, i.Size)
}

// decl is the raw, unpositioned description of one catalog entry; each
// architecture's catalog_<arch>.go builds Info.Offset from Loc and Width at
// init time.
type decl struct {
	reg    Register
	name   string
	dwarf  int
	loc    Location
	width  Width
	rtype  RegType
	format Format
}
