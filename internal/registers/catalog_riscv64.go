//go:build linux && riscv64

package registers

// A minimal riscv64 catalog: five general-purpose registers (ra, sp, fp,
// a0, a1) and the program counter. The other xN registers, floating-point
// (fN) and debug registers are not cataloged on this architecture.
const (
	X1 Register = iota // return address
	X2                 // stack pointer
	X8                 // frame pointer
	X10
	X11
	PC
)

var riscv64Decls = []decl{
	{X1, "ra", -1, Location{Kind: LocGPR, Field: "Regs", Slot: 1}, W64, TypeGPR, FmtUint64},
	{X2, "sp", -1, Location{Kind: LocGPR, Field: "Regs", Slot: 2}, W64, TypeGPR, FmtUint64},
	{X8, "fp", -1, Location{Kind: LocGPR, Field: "Regs", Slot: 8}, W64, TypeGPR, FmtUint64},
	{X10, "a0", -1, Location{Kind: LocGPR, Field: "Regs", Slot: 10}, W64, TypeGPR, FmtUint64},
	{X11, "a1", -1, Location{Kind: LocGPR, Field: "Regs", Slot: 11}, W64, TypeGPR, FmtUint64},
	{PC, "pc", -1, Location{Kind: LocGPR, Field: "Pc"}, W64, TypeGPR, FmtUint64},
}

var (
	catalogByRegister = map[Register]Info{}
	catalogByName     = map[string]Info{}
)

func init() {
	for _, d := range riscv64Decls {
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
	out := make([]Info, 0, len(riscv64Decls))
	for _, d := range riscv64Decls {
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
