package registers

import "testing"

func TestWidthBytesRounding(t *testing.T) {
	cases := []struct {
		w    Width
		want int
	}{
		{W8H, 1},
		{W8L, 1},
		{W16, 2},
		{W32, 4},
		{W64, 8},
		{W80, 10}, // extended precision rounds up from 80 bits
		{W128, 16},
	}
	for _, c := range cases {
		if got := c.w.Bytes(); got != c.want {
			t.Errorf("Width(%d).Bytes() = %d, want %d", c.w, got, c.want)
		}
	}
}

func TestCatalogSizeMatchesWidth(t *testing.T) {
	for _, info := range All() {
		wantBits := info.Width.Bits()
		gotBits := info.Size * 8
		if info.Width == W80 {
			if info.Size != 10 {
				t.Errorf("%s: size = %d bytes, want 10 for W80", info.Name, info.Size)
			}
			continue
		}
		if gotBits != wantBits {
			t.Errorf("%s: size*8 = %d bits, want %d", info.Name, gotBits, wantBits)
		}
	}
}

func TestLookupAndByNameAgree(t *testing.T) {
	rax, ok := Lookup(RAX)
	if !ok {
		t.Fatal("RAX not in catalog")
	}
	byName, ok := ByName("rax")
	if !ok {
		t.Fatal("\"rax\" not in catalog")
	}
	if rax != byName {
		t.Errorf("Lookup(RAX) = %+v, ByName(\"rax\") = %+v", rax, byName)
	}
}

func TestHighByteOffsetIsLowBytePlusOne(t *testing.T) {
	al, ok := ByName("al")
	if !ok {
		t.Fatal("\"al\" not in catalog")
	}
	ah, ok := ByName("ah")
	if !ok {
		t.Fatal("\"ah\" not in catalog")
	}
	if ah.Offset != al.Offset+1 {
		t.Errorf("ah.Offset = %d, want al.Offset+1 = %d", ah.Offset, al.Offset+1)
	}
}

func TestByDwarfRoundTrips(t *testing.T) {
	info, ok := Lookup(RDI)
	if !ok {
		t.Fatal("RDI not in catalog")
	}
	got, ok := ByDwarf(info.DwarfID)
	if !ok {
		t.Fatalf("ByDwarf(%d) not found", info.DwarfID)
	}
	if got.Register != RDI {
		t.Errorf("ByDwarf(%d) = %s, want rdi", info.DwarfID, got.Name)
	}
}
