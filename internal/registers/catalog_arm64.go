//go:build linux && arm64

package registers

// A minimal aarch64 catalog: the 31 general-purpose Xn registers, the
// program counter, and the stack pointer. FPU/SIMD (Vn) and debug
// breakpoint/watchpoint registers are not yet cataloged on this
// architecture.
const (
	X0 Register = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29 // frame pointer
	X30 // link register
	SP
	PC
)

var arm64Decls = []decl{
	{X0, "x0", 0, Location{Kind: LocGPR, Field: "Regs", Slot: 0}, W64, TypeGPR, FmtUint64},
	{X1, "x1", 1, Location{Kind: LocGPR, Field: "Regs", Slot: 1}, W64, TypeGPR, FmtUint64},
	{X2, "x2", 2, Location{Kind: LocGPR, Field: "Regs", Slot: 2}, W64, TypeGPR, FmtUint64},
	{X3, "x3", 3, Location{Kind: LocGPR, Field: "Regs", Slot: 3}, W64, TypeGPR, FmtUint64},
	{X4, "x4", 4, Location{Kind: LocGPR, Field: "Regs", Slot: 4}, W64, TypeGPR, FmtUint64},
	{X5, "x5", 5, Location{Kind: LocGPR, Field: "Regs", Slot: 5}, W64, TypeGPR, FmtUint64},
	{X6, "x6", 6, Location{Kind: LocGPR, Field: "Regs", Slot: 6}, W64, TypeGPR, FmtUint64},
	{X7, "x7", 7, Location{Kind: LocGPR, Field: "Regs", Slot: 7}, W64, TypeGPR, FmtUint64},
	{X8, "x8", 8, Location{Kind: LocGPR, Field: "Regs", Slot: 8}, W64, TypeGPR, FmtUint64},
	{X9, "x9", 9, Location{Kind: LocGPR, Field: "Regs", Slot: 9}, W64, TypeGPR, FmtUint64},
	{X10, "x10", 10, Location{Kind: LocGPR, Field: "Regs", Slot: 10}, W64, TypeGPR, FmtUint64},
	{X11, "x11", 11, Location{Kind: LocGPR, Field: "Regs", Slot: 11}, W64, TypeGPR, FmtUint64},
	{X12, "x12", 12, Location{Kind: LocGPR, Field: "Regs", Slot: 12}, W64, TypeGPR, FmtUint64},
	{X13, "x13", 13, Location{Kind: LocGPR, Field: "Regs", Slot: 13}, W64, TypeGPR, FmtUint64},
	{X14, "x14", 14, Location{Kind: LocGPR, Field: "Regs", Slot: 14}, W64, TypeGPR, FmtUint64},
	{X15, "x15", 15, Location{Kind: LocGPR, Field: "Regs", Slot: 15}, W64, TypeGPR, FmtUint64},
	{X16, "x16", 16, Location{Kind: LocGPR, Field: "Regs", Slot: 16}, W64, TypeGPR, FmtUint64},
	{X17, "x17", 17, Location{Kind: LocGPR, Field: "Regs", Slot: 17}, W64, TypeGPR, FmtUint64},
	{X18, "x18", 18, Location{Kind: LocGPR, Field: "Regs", Slot: 18}, W64, TypeGPR, FmtUint64},
	{X19, "x19", 19, Location{Kind: LocGPR, Field: "Regs", Slot: 19}, W64, TypeGPR, FmtUint64},
	{X20, "x20", 20, Location{Kind: LocGPR, Field: "Regs", Slot: 20}, W64, TypeGPR, FmtUint64},
	{X21, "x21", 21, Location{Kind: LocGPR, Field: "Regs", Slot: 21}, W64, TypeGPR, FmtUint64},
	{X22, "x22", 22, Location{Kind: LocGPR, Field: "Regs", Slot: 22}, W64, TypeGPR, FmtUint64},
	{X23, "x23", 23, Location{Kind: LocGPR, Field: "Regs", Slot: 23}, W64, TypeGPR, FmtUint64},
	{X24, "x24", 24, Location{Kind: LocGPR, Field: "Regs", Slot: 24}, W64, TypeGPR, FmtUint64},
	{X25, "x25", 25, Location{Kind: LocGPR, Field: "Regs", Slot: 25}, W64, TypeGPR, FmtUint64},
	{X26, "x26", 26, Location{Kind: LocGPR, Field: "Regs", Slot: 26}, W64, TypeGPR, FmtUint64},
	{X27, "x27", 27, Location{Kind: LocGPR, Field: "Regs", Slot: 27}, W64, TypeGPR, FmtUint64},
	{X28, "x28", 28, Location{Kind: LocGPR, Field: "Regs", Slot: 28}, W64, TypeGPR, FmtUint64},
	{X29, "x29", 29, Location{Kind: LocGPR, Field: "Regs", Slot: 29}, W64, TypeGPR, FmtUint64},
	{X30, "x30", 30, Location{Kind: LocGPR, Field: "Regs", Slot: 30}, W64, TypeGPR, FmtUint64},
	{SP, "sp", 31, Location{Kind: LocGPR, Field: "Sp"}, W64, TypeGPR, FmtUint64},
	{PC, "pc", 32, Location{Kind: LocGPR, Field: "Pc"}, W64, TypeGPR, FmtUint64},
}

var (
	catalogByRegister = map[Register]Info{}
	catalogByName     = map[string]Info{}
)

func init() {
	for _, d := range arm64Decls {
		info := Info{
			Register: d.reg,
			Name:     d.name,
			DwarfID:  d.dwarf,
			Loc:      d.loc,
			Size:     d.width.Bytes(),
			Width:    d.width,
			Type:     d.rtype,
			Format:   d.format,
		}
		catalogByRegister[d.reg] = info
		catalogByName[d.name] = info
	}
}

// Lookup returns a register's catalog entry by identifier.
func Lookup(r Register) (Info, bool) {
	info, ok := catalogByRegister[r]
	return info, ok
}

// ByName looks up a register's catalog entry by its assembly mnemonic.
func ByName(name string) (Info, bool) {
	info, ok := catalogByName[name]
	return info, ok
}

// All returns every declared register's catalog entry, in declaration order.
func All() []Info {
	out := make([]Info, 0, len(arm64Decls))
	for _, d := range arm64Decls {
		out = append(out, catalogByRegister[d.reg])
	}
	return out
}

// ByDwarf looks up the register whose DWARF register number is id.
func ByDwarf(id int) (Info, bool) {
	for _, info := range catalogByRegister {
		if info.DwarfID == id {
			return info, true
		}
	}
	return Info{}, false
}
