//go:build linux && amd64

package registers

// Register identifiers for x86-64. Values are stable for the lifetime of a
// process but not across architectures.
const (
	RAX Register = iota
	RBX
	RCX
	RDX
	RSI
	RDI
	RBP
	RSP
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	RIP
	EFLAGS
	CS
	FS
	GS
	SS
	DS
	ES
	ORIG_RAX
	FS_BASE
	GS_BASE

	EAX
	EBX
	ECX
	EDX
	ESI
	EDI
	EBP
	ESP
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	AX
	BX
	CX
	DX
	SI
	DI
	BP
	SP
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	AL
	BL
	CL
	DL
	SIL
	DIL
	BPL
	SPL
	R8B
	R9B
	R10B
	R11B
	R12B
	R13B
	R14B
	R15B

	AH
	BH
	CH
	DH

	FCW
	FSW
	FTW
	FOP

	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7

	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15

	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
)

var amd64Decls = []decl{
	// 64-bit general purpose registers, in DWARF register-number order.
	{RAX, "rax", 0, Location{Kind: LocGPR, Field: "Rax"}, W64, TypeGPR, FmtUint64},
	{RDX, "rdx", 1, Location{Kind: LocGPR, Field: "Rdx"}, W64, TypeGPR, FmtUint64},
	{RCX, "rcx", 2, Location{Kind: LocGPR, Field: "Rcx"}, W64, TypeGPR, FmtUint64},
	{RBX, "rbx", 3, Location{Kind: LocGPR, Field: "Rbx"}, W64, TypeGPR, FmtUint64},
	{RSI, "rsi", 4, Location{Kind: LocGPR, Field: "Rsi"}, W64, TypeGPR, FmtUint64},
	{RDI, "rdi", 5, Location{Kind: LocGPR, Field: "Rdi"}, W64, TypeGPR, FmtUint64},
	{RBP, "rbp", 6, Location{Kind: LocGPR, Field: "Rbp"}, W64, TypeGPR, FmtUint64},
	{RSP, "rsp", 7, Location{Kind: LocGPR, Field: "Rsp"}, W64, TypeGPR, FmtUint64},
	{R8, "r8", 8, Location{Kind: LocGPR, Field: "R8"}, W64, TypeGPR, FmtUint64},
	{R9, "r9", 9, Location{Kind: LocGPR, Field: "R9"}, W64, TypeGPR, FmtUint64},
	{R10, "r10", 10, Location{Kind: LocGPR, Field: "R10"}, W64, TypeGPR, FmtUint64},
	{R11, "r11", 11, Location{Kind: LocGPR, Field: "R11"}, W64, TypeGPR, FmtUint64},
	{R12, "r12", 12, Location{Kind: LocGPR, Field: "R12"}, W64, TypeGPR, FmtUint64},
	{R13, "r13", 13, Location{Kind: LocGPR, Field: "R13"}, W64, TypeGPR, FmtUint64},
	{R14, "r14", 14, Location{Kind: LocGPR, Field: "R14"}, W64, TypeGPR, FmtUint64},
	{R15, "r15", 15, Location{Kind: LocGPR, Field: "R15"}, W64, TypeGPR, FmtUint64},
	{RIP, "rip", 16, Location{Kind: LocGPR, Field: "Rip"}, W64, TypeGPR, FmtUint64},
	{EFLAGS, "eflags", 49, Location{Kind: LocGPR, Field: "Eflags"}, W64, TypeGPR, FmtUint64},
	{CS, "cs", 51, Location{Kind: LocGPR, Field: "Cs"}, W64, TypeGPR, FmtUint64},
	{FS, "fs", 54, Location{Kind: LocGPR, Field: "Fs"}, W64, TypeGPR, FmtUint64},
	{GS, "gs", 55, Location{Kind: LocGPR, Field: "Gs"}, W64, TypeGPR, FmtUint64},
	{SS, "ss", 52, Location{Kind: LocGPR, Field: "Ss"}, W64, TypeGPR, FmtUint64},
	{DS, "ds", 53, Location{Kind: LocGPR, Field: "Ds"}, W64, TypeGPR, FmtUint64},
	{ES, "es", 50, Location{Kind: LocGPR, Field: "Es"}, W64, TypeGPR, FmtUint64},
	{ORIG_RAX, "orig_rax", -1, Location{Kind: LocGPR, Field: "Orig_rax"}, W64, TypeGPR, FmtInt64},
	{FS_BASE, "fs_base", 58, Location{Kind: LocGPR, Field: "Fs_base"}, W64, TypeGPR, FmtUint64},
	{GS_BASE, "gs_base", 59, Location{Kind: LocGPR, Field: "Gs_base"}, W64, TypeGPR, FmtUint64},

	// 32-bit subregisters (low dword of the same GPR).
	{EAX, "eax", -1, Location{Kind: LocGPR, Field: "Rax"}, W32, TypeSubGPR, FmtUint32},
	{EBX, "ebx", -1, Location{Kind: LocGPR, Field: "Rbx"}, W32, TypeSubGPR, FmtUint32},
	{ECX, "ecx", -1, Location{Kind: LocGPR, Field: "Rcx"}, W32, TypeSubGPR, FmtUint32},
	{EDX, "edx", -1, Location{Kind: LocGPR, Field: "Rdx"}, W32, TypeSubGPR, FmtUint32},
	{ESI, "esi", -1, Location{Kind: LocGPR, Field: "Rsi"}, W32, TypeSubGPR, FmtUint32},
	{EDI, "edi", -1, Location{Kind: LocGPR, Field: "Rdi"}, W32, TypeSubGPR, FmtUint32},
	{EBP, "ebp", -1, Location{Kind: LocGPR, Field: "Rbp"}, W32, TypeSubGPR, FmtUint32},
	{ESP, "esp", -1, Location{Kind: LocGPR, Field: "Rsp"}, W32, TypeSubGPR, FmtUint32},
	{R8D, "r8d", -1, Location{Kind: LocGPR, Field: "R8"}, W32, TypeSubGPR, FmtUint32},
	{R9D, "r9d", -1, Location{Kind: LocGPR, Field: "R9"}, W32, TypeSubGPR, FmtUint32},
	{R10D, "r10d", -1, Location{Kind: LocGPR, Field: "R10"}, W32, TypeSubGPR, FmtUint32},
	{R11D, "r11d", -1, Location{Kind: LocGPR, Field: "R11"}, W32, TypeSubGPR, FmtUint32},
	{R12D, "r12d", -1, Location{Kind: LocGPR, Field: "R12"}, W32, TypeSubGPR, FmtUint32},
	{R13D, "r13d", -1, Location{Kind: LocGPR, Field: "R13"}, W32, TypeSubGPR, FmtUint32},
	{R14D, "r14d", -1, Location{Kind: LocGPR, Field: "R14"}, W32, TypeSubGPR, FmtUint32},
	{R15D, "r15d", -1, Location{Kind: LocGPR, Field: "R15"}, W32, TypeSubGPR, FmtUint32},

	// 16-bit subregisters.
	{AX, "ax", -1, Location{Kind: LocGPR, Field: "Rax"}, W16, TypeSubGPR, FmtUint16},
	{BX, "bx", -1, Location{Kind: LocGPR, Field: "Rbx"}, W16, TypeSubGPR, FmtUint16},
	{CX, "cx", -1, Location{Kind: LocGPR, Field: "Rcx"}, W16, TypeSubGPR, FmtUint16},
	{DX, "dx", -1, Location{Kind: LocGPR, Field: "Rdx"}, W16, TypeSubGPR, FmtUint16},
	{SI, "si", -1, Location{Kind: LocGPR, Field: "Rsi"}, W16, TypeSubGPR, FmtUint16},
	{DI, "di", -1, Location{Kind: LocGPR, Field: "Rdi"}, W16, TypeSubGPR, FmtUint16},
	{BP, "bp", -1, Location{Kind: LocGPR, Field: "Rbp"}, W16, TypeSubGPR, FmtUint16},
	{SP, "sp", -1, Location{Kind: LocGPR, Field: "Rsp"}, W16, TypeSubGPR, FmtUint16},
	{R8W, "r8w", -1, Location{Kind: LocGPR, Field: "R8"}, W16, TypeSubGPR, FmtUint16},
	{R9W, "r9w", -1, Location{Kind: LocGPR, Field: "R9"}, W16, TypeSubGPR, FmtUint16},
	{R10W, "r10w", -1, Location{Kind: LocGPR, Field: "R10"}, W16, TypeSubGPR, FmtUint16},
	{R11W, "r11w", -1, Location{Kind: LocGPR, Field: "R11"}, W16, TypeSubGPR, FmtUint16},
	{R12W, "r12w", -1, Location{Kind: LocGPR, Field: "R12"}, W16, TypeSubGPR, FmtUint16},
	{R13W, "r13w", -1, Location{Kind: LocGPR, Field: "R13"}, W16, TypeSubGPR, FmtUint16},
	{R14W, "r14w", -1, Location{Kind: LocGPR, Field: "R14"}, W16, TypeSubGPR, FmtUint16},
	{R15W, "r15w", -1, Location{Kind: LocGPR, Field: "R15"}, W16, TypeSubGPR, FmtUint16},

	// 8-bit low-byte subregisters.
	{AL, "al", -1, Location{Kind: LocGPR, Field: "Rax"}, W8L, TypeSubGPR, FmtUint8},
	{BL, "bl", -1, Location{Kind: LocGPR, Field: "Rbx"}, W8L, TypeSubGPR, FmtUint8},
	{CL, "cl", -1, Location{Kind: LocGPR, Field: "Rcx"}, W8L, TypeSubGPR, FmtUint8},
	{DL, "dl", -1, Location{Kind: LocGPR, Field: "Rdx"}, W8L, TypeSubGPR, FmtUint8},
	{SIL, "sil", -1, Location{Kind: LocGPR, Field: "Rsi"}, W8L, TypeSubGPR, FmtUint8},
	{DIL, "dil", -1, Location{Kind: LocGPR, Field: "Rdi"}, W8L, TypeSubGPR, FmtUint8},
	{BPL, "bpl", -1, Location{Kind: LocGPR, Field: "Rbp"}, W8L, TypeSubGPR, FmtUint8},
	{SPL, "spl", -1, Location{Kind: LocGPR, Field: "Rsp"}, W8L, TypeSubGPR, FmtUint8},
	{R8B, "r8b", -1, Location{Kind: LocGPR, Field: "R8"}, W8L, TypeSubGPR, FmtUint8},
	{R9B, "r9b", -1, Location{Kind: LocGPR, Field: "R9"}, W8L, TypeSubGPR, FmtUint8},
	{R10B, "r10b", -1, Location{Kind: LocGPR, Field: "R10"}, W8L, TypeSubGPR, FmtUint8},
	{R11B, "r11b", -1, Location{Kind: LocGPR, Field: "R11"}, W8L, TypeSubGPR, FmtUint8},
	{R12B, "r12b", -1, Location{Kind: LocGPR, Field: "R12"}, W8L, TypeSubGPR, FmtUint8},
	{R13B, "r13b", -1, Location{Kind: LocGPR, Field: "R13"}, W8L, TypeSubGPR, FmtUint8},
	{R14B, "r14b", -1, Location{Kind: LocGPR, Field: "R14"}, W8L, TypeSubGPR, FmtUint8},
	{R15B, "r15b", -1, Location{Kind: LocGPR, Field: "R15"}, W8L, TypeSubGPR, FmtUint8},

	// 8-bit high-byte subregisters; only rax/rbx/rcx/rdx have these aliases.
	{AH, "ah", -1, Location{Kind: LocGPR, Field: "Rax"}, W8H, TypeSubGPR, FmtUint8},
	{BH, "bh", -1, Location{Kind: LocGPR, Field: "Rbx"}, W8H, TypeSubGPR, FmtUint8},
	{CH, "ch", -1, Location{Kind: LocGPR, Field: "Rcx"}, W8H, TypeSubGPR, FmtUint8},
	{DH, "dh", -1, Location{Kind: LocGPR, Field: "Rdx"}, W8H, TypeSubGPR, FmtUint8},

	// FPU control words.
	{FCW, "fcw", 65, Location{Kind: LocFPRWord, Field: "Cwd"}, W16, TypeFPR, FmtUint16},
	{FSW, "fsw", 66, Location{Kind: LocFPRWord, Field: "Swd"}, W16, TypeFPR, FmtUint16},
	{FTW, "ftw", -1, Location{Kind: LocFPRWord, Field: "Ftw"}, W16, TypeFPR, FmtUint16},
	{FOP, "fop", -1, Location{Kind: LocFPRWord, Field: "Fop"}, W16, TypeFPR, FmtUint16},

	// x87 80-bit extended-precision stack registers.
	{ST0, "st0", 33, Location{Kind: LocFPRSlot, Field: "st", Slot: 0}, W80, TypeFPR, FmtLongDouble},
	{ST1, "st1", 34, Location{Kind: LocFPRSlot, Field: "st", Slot: 1}, W80, TypeFPR, FmtLongDouble},
	{ST2, "st2", 35, Location{Kind: LocFPRSlot, Field: "st", Slot: 2}, W80, TypeFPR, FmtLongDouble},
	{ST3, "st3", 36, Location{Kind: LocFPRSlot, Field: "st", Slot: 3}, W80, TypeFPR, FmtLongDouble},
	{ST4, "st4", 37, Location{Kind: LocFPRSlot, Field: "st", Slot: 4}, W80, TypeFPR, FmtLongDouble},
	{ST5, "st5", 38, Location{Kind: LocFPRSlot, Field: "st", Slot: 5}, W80, TypeFPR, FmtLongDouble},
	{ST6, "st6", 39, Location{Kind: LocFPRSlot, Field: "st", Slot: 6}, W80, TypeFPR, FmtLongDouble},
	{ST7, "st7", 40, Location{Kind: LocFPRSlot, Field: "st", Slot: 7}, W80, TypeFPR, FmtLongDouble},

	// MMX registers alias the low 64 bits of the same ST slots.
	{MM0, "mm0", 41, Location{Kind: LocFPRSlot, Field: "st", Slot: 0}, W64, TypeFPR, FmtByte64},
	{MM1, "mm1", 42, Location{Kind: LocFPRSlot, Field: "st", Slot: 1}, W64, TypeFPR, FmtByte64},
	{MM2, "mm2", 43, Location{Kind: LocFPRSlot, Field: "st", Slot: 2}, W64, TypeFPR, FmtByte64},
	{MM3, "mm3", 44, Location{Kind: LocFPRSlot, Field: "st", Slot: 3}, W64, TypeFPR, FmtByte64},
	{MM4, "mm4", 45, Location{Kind: LocFPRSlot, Field: "st", Slot: 4}, W64, TypeFPR, FmtByte64},
	{MM5, "mm5", 46, Location{Kind: LocFPRSlot, Field: "st", Slot: 5}, W64, TypeFPR, FmtByte64},
	{MM6, "mm6", 47, Location{Kind: LocFPRSlot, Field: "st", Slot: 6}, W64, TypeFPR, FmtByte64},
	{MM7, "mm7", 48, Location{Kind: LocFPRSlot, Field: "st", Slot: 7}, W64, TypeFPR, FmtByte64},

	// SSE registers.
	{XMM0, "xmm0", 17, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 0}, W128, TypeFPR, FmtByte128},
	{XMM1, "xmm1", 18, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 1}, W128, TypeFPR, FmtByte128},
	{XMM2, "xmm2", 19, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 2}, W128, TypeFPR, FmtByte128},
	{XMM3, "xmm3", 20, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 3}, W128, TypeFPR, FmtByte128},
	{XMM4, "xmm4", 21, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 4}, W128, TypeFPR, FmtByte128},
	{XMM5, "xmm5", 22, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 5}, W128, TypeFPR, FmtByte128},
	{XMM6, "xmm6", 23, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 6}, W128, TypeFPR, FmtByte128},
	{XMM7, "xmm7", 24, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 7}, W128, TypeFPR, FmtByte128},
	{XMM8, "xmm8", 25, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 8}, W128, TypeFPR, FmtByte128},
	{XMM9, "xmm9", 26, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 9}, W128, TypeFPR, FmtByte128},
	{XMM10, "xmm10", 27, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 10}, W128, TypeFPR, FmtByte128},
	{XMM11, "xmm11", 28, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 11}, W128, TypeFPR, FmtByte128},
	{XMM12, "xmm12", 29, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 12}, W128, TypeFPR, FmtByte128},
	{XMM13, "xmm13", 30, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 13}, W128, TypeFPR, FmtByte128},
	{XMM14, "xmm14", 31, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 14}, W128, TypeFPR, FmtByte128},
	{XMM15, "xmm15", 32, Location{Kind: LocFPRSlot, Field: "xmm", Slot: 15}, W128, TypeFPR, FmtByte128},

	// Hardware debug/watchpoint registers.
	{DR0, "dr0", -1, Location{Kind: LocDebug, Slot: 0}, W64, TypeDebug, FmtUint64},
	{DR1, "dr1", -1, Location{Kind: LocDebug, Slot: 1}, W64, TypeDebug, FmtUint64},
	{DR2, "dr2", -1, Location{Kind: LocDebug, Slot: 2}, W64, TypeDebug, FmtUint64},
	{DR3, "dr3", -1, Location{Kind: LocDebug, Slot: 3}, W64, TypeDebug, FmtUint64},
	{DR4, "dr4", -1, Location{Kind: LocDebug, Slot: 4}, W64, TypeDebug, FmtUint64},
	{DR5, "dr5", -1, Location{Kind: LocDebug, Slot: 5}, W64, TypeDebug, FmtUint64},
	{DR6, "dr6", -1, Location{Kind: LocDebug, Slot: 6}, W64, TypeDebug, FmtUint64},
	{DR7, "dr7", -1, Location{Kind: LocDebug, Slot: 7}, W64, TypeDebug, FmtUint64},
}

var (
	catalogByRegister = map[Register]Info{}
	catalogByName     = map[string]Info{}
)

func init() {
	for _, d := range amd64Decls {
		info := Info{
			Register: d.reg,
			Name:     d.name,
			DwarfID:  d.dwarf,
			Loc:      d.loc,
			Offset:   offsetOf(d.loc, d.width),
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
	out := make([]Info, 0, len(amd64Decls))
	for _, d := range amd64Decls {
		out = append(out, catalogByRegister[d.reg])
	}
	return out
}

// ByDwarf looks up the register whose DWARF register number is id. DWARF
// numbering has no entry for ORIG_RAX, FTW, FOP, the debug registers, or
// any subregister alias; those are unreachable through this lookup.
func ByDwarf(id int) (Info, bool) {
	if id < 0 {
		return Info{}, false
	}
	for _, info := range catalogByRegister {
		if info.DwarfID == id {
			return info, true
		}
	}
	return Info{}, false
}
