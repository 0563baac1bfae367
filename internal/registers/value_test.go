package registers

import "testing"

func TestValueBytesRoundTrip(t *testing.T) {
	cases := []Value{
		Uint8Value(0xAB),
		Int8Value(-5),
		Uint16Value(0xBEEF),
		Int16Value(-1234),
		Uint32Value(0xDEADBEEF),
		Int32Value(-100000),
		Uint64Value(0x1122334455667788),
		Int64Value(-1),
		Float32Value(3.5),
		Float64Value(-2.25),
		LongDoubleValue([10]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		Byte64Value([8]byte{1, 2, 3, 4, 5, 6, 7, 8}),
		Byte128Value([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}),
	}
	for _, v := range cases {
		got := valueFromBytes(v.Format(), v.Bytes())
		if got.Bytes() == nil || string(got.Bytes()) != string(v.Bytes()) {
			t.Errorf("format %d: round trip mismatch: got %v, want %v", v.Format(), got.Bytes(), v.Bytes())
		}
	}
}

func TestInt64ConversionErrors(t *testing.T) {
	if _, err := Float64Value(1.5).Int64(); err == nil {
		t.Error("Int64() on a float value should fail")
	}
	if _, err := Byte128Value([16]byte{}).Int64(); err == nil {
		t.Error("Int64() on a byte-blob value should fail")
	}
	got, err := Int64Value(-42).Int64()
	if err != nil {
		t.Fatalf("Int64() on an int64 value: %v", err)
	}
	if got != -42 {
		t.Errorf("Int64() = %d, want -42", got)
	}
}

func TestInt64SignExtendsSubWordVariants(t *testing.T) {
	cases := []struct {
		v    Value
		want int64
	}{
		{Int8Value(-1), -1},
		{Int16Value(-1), -1},
		{Int32Value(-1), -1},
		{Int8Value(-128), -128},
		{Int16Value(-32768), -32768},
		{Int32Value(-2147483648), -2147483648},
		{Uint8Value(0xFF), 255},
	}
	for _, tc := range cases {
		got, err := tc.v.Int64()
		if err != nil {
			t.Fatalf("Int64() on format %d: %v", tc.v.Format(), err)
		}
		if got != tc.want {
			t.Errorf("Int64() on format %d = %d, want %d", tc.v.Format(), got, tc.want)
		}
	}
}
