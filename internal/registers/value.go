package registers

import (
	"encoding/binary"
	"math"

	"github.com/jdb-go/jdb/internal/jdberr"
)

// Value is a register's contents in its native representation, tagged with
// the Format it was decoded as. The variant in play is always the one
// Lookup(register).Format declares.
type Value struct {
	format Format
	bits   uint64   // backing store for all Uint*/Int*/Float32/Float64 variants
	b10    [10]byte // LongDouble
	b8     [8]byte  // Byte64
	b16    [16]byte // Byte128
}

func (v Value) Format() Format { return v.format }

func Uint8Value(x uint8) Value   { return Value{format: FmtUint8, bits: uint64(x)} }
func Uint16Value(x uint16) Value { return Value{format: FmtUint16, bits: uint64(x)} }
func Uint32Value(x uint32) Value { return Value{format: FmtUint32, bits: uint64(x)} }
func Uint64Value(x uint64) Value { return Value{format: FmtUint64, bits: x} }
func Int8Value(x int8) Value     { return Value{format: FmtInt8, bits: uint64(uint8(x))} }
func Int16Value(x int16) Value   { return Value{format: FmtInt16, bits: uint64(uint16(x))} }
func Int32Value(x int32) Value   { return Value{format: FmtInt32, bits: uint64(uint32(x))} }
func Int64Value(x int64) Value   { return Value{format: FmtInt64, bits: uint64(x)} }

func Float32Value(x float32) Value {
	return Value{format: FmtFloat32, bits: uint64(math.Float32bits(x))}
}

func Float64Value(x float64) Value {
	return Value{format: FmtFloat64, bits: math.Float64bits(x)}
}

func LongDoubleValue(b [10]byte) Value { return Value{format: FmtLongDouble, b10: b} }
func Byte64Value(b [8]byte) Value      { return Value{format: FmtByte64, b8: b} }
func Byte128Value(b [16]byte) Value    { return Value{format: FmtByte128, b16: b} }

// Uint64 returns the raw 64-bit backing word for integer/float variants,
// regardless of sign or width; used internally when encoding for a write.
func (v Value) Uint64() uint64 { return v.bits }

// Bytes renders the value as a little-endian byte slice sized to its
// declared format, for writing into a register's backing buffer.
func (v Value) Bytes() []byte {
	switch v.format {
	case FmtUint8, FmtInt8:
		return []byte{byte(v.bits)}
	case FmtUint16, FmtInt16:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(v.bits))
		return b
	case FmtUint32, FmtInt32, FmtFloat32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v.bits))
		return b
	case FmtUint64, FmtInt64, FmtFloat64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, v.bits)
		return b
	case FmtLongDouble:
		return append([]byte(nil), v.b10[:]...)
	case FmtByte64:
		return append([]byte(nil), v.b8[:]...)
	case FmtByte128:
		return append([]byte(nil), v.b16[:]...)
	default:
		return nil
	}
}

// valueFromBytes decodes raw little-endian bytes into a Value of the given
// format, the inverse of Bytes. Used by Snapshot.Read.
func valueFromBytes(format Format, b []byte) Value {
	switch format {
	case FmtUint8:
		return Uint8Value(b[0])
	case FmtInt8:
		return Int8Value(int8(b[0]))
	case FmtUint16:
		return Uint16Value(binary.LittleEndian.Uint16(b))
	case FmtInt16:
		return Int16Value(int16(binary.LittleEndian.Uint16(b)))
	case FmtUint32:
		return Uint32Value(binary.LittleEndian.Uint32(b))
	case FmtInt32:
		return Int32Value(int32(binary.LittleEndian.Uint32(b)))
	case FmtUint64:
		return Uint64Value(binary.LittleEndian.Uint64(b))
	case FmtInt64:
		return Int64Value(int64(binary.LittleEndian.Uint64(b)))
	case FmtFloat32:
		return Float32Value(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case FmtFloat64:
		return Float64Value(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	case FmtLongDouble:
		var a [10]byte
		copy(a[:], b)
		return LongDoubleValue(a)
	case FmtByte64:
		var a [8]byte
		copy(a[:], b)
		return Byte64Value(a)
	case FmtByte128:
		var a [16]byte
		copy(a[:], b)
		return Byte128Value(a)
	default:
		return Value{}
	}
}

// Int64 converts an integer-variant Value to a signed 64-bit, pointer-sized
// integer. Floats and byte blobs have no defined conversion and report
// BadConversionError.
func (v Value) Int64() (int64, error) {
	switch v.format {
	case FmtUint8, FmtUint16, FmtUint32, FmtUint64:
		return int64(v.bits), nil
	case FmtInt8:
		return int64(int8(v.bits)), nil
	case FmtInt16:
		return int64(int16(v.bits)), nil
	case FmtInt32:
		return int64(int32(v.bits)), nil
	case FmtInt64:
		return int64(v.bits), nil
	case FmtFloat32, FmtFloat64:
		return 0, jdberr.NewBadConversionError("cannot convert floating point register value to int64")
	default:
		return 0, jdberr.NewBadConversionError("cannot convert byte-blob register value to int64")
	}
}
