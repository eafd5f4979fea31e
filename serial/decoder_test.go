package serial_test

import (
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"testing"

	sderrors "github.com/averbraeck/djutils-sub014/errors"
	"github.com/averbraeck/djutils-sub014/serial"
	"github.com/averbraeck/djutils-sub014/serial/endian"
)

// Test-side encoding helpers (big-endian unless noted).

func be32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

func be64(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func bef32(f float32) []byte {
	return be32(math.Float32bits(f))
}

func bef64(f float64) []byte {
	return be64(math.Float64bits(f))
}

func field(tag byte, payload ...[]byte) []byte {
	out := []byte{tag}
	for _, p := range payload {
		out = append(out, p...)
	}
	return out
}

// feedAll runs a whole stream through dec, draining whenever output is
// ready, and returns the concatenated text.
func feedAll(t *testing.T, dec *serial.Decoder, data []byte) string {
	t.Helper()
	var parts []string
	for _, b := range data {
		ready, _ := dec.Feed(b)
		if ready {
			parts = append(parts, dec.Drain())
		}
	}
	if tail := dec.Drain(); tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, "\n")
}

func newBig() *serial.Decoder {
	return serial.NewDecoder(serial.Standard(), endian.Big)
}

func TestScalarInt32(t *testing.T) {
	out := feedAll(t, newBig(), field(serial.FieldInt32, []byte{0x00, 0x00, 0x00, 0x2A}))
	if !strings.Contains(out, "Int32") || !strings.Contains(out, "42") {
		t.Errorf("output %q, want Int32 and 42", out)
	}
}

func TestScalarPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  []string
	}{
		{"byte hex", field(serial.FieldByte8, []byte{0xAB}), []string{"Byte8", "ab"}},
		{"short", field(serial.FieldShort16, []byte{0xFF, 0xFE}), []string{"Short16", "-2"}},
		{"long", field(serial.FieldLong64, be64(uint64(1234567890123))), []string{"Long64", "1234567890123"}},
		{"float", field(serial.FieldFloat32, bef32(1.5)), []string{"Float32", "1.500000"}},
		{"double", field(serial.FieldDouble64, bef64(-2.25)), []string{"Double64", "-2.250000"}},
		{"bool true", field(serial.FieldBoolean8, []byte{0x01}), []string{"Boolean8", "true"}},
		{"bool false", field(serial.FieldBoolean8, []byte{0x00}), []string{"Boolean8", "false"}},
		{"char printable", field(serial.FieldChar8, []byte{'Z'}), []string{"Char8", "Z"}},
		{"char masked", field(serial.FieldChar8, []byte{0x07}), []string{"Char8", "."}},
		{"char16", field(serial.FieldChar16, []byte{0x00, 'A'}), []string{"Char16", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := feedAll(t, newBig(), tt.bytes)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q, missing %q", out, w)
				}
			}
		})
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32} {
		out := feedAll(t, newBig(), field(serial.FieldInt32, be32(uint32(v))))
		want := fmt.Sprintf("%d", v)
		if !strings.Contains(out, want) {
			t.Errorf("value %d: output %q, missing %q", v, out, want)
		}
	}
}

func TestFloatArray(t *testing.T) {
	data := field(serial.FieldFloat32Array, be32(2), bef32(1.0), bef32(2.0))
	out := feedAll(t, newBig(), data)

	for _, w := range []string{"length 2", "1.000000", "2.000000"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
	if strings.Index(out, "1.000000") > strings.Index(out, "2.000000") {
		t.Errorf("output %q: elements out of order", out)
	}
}

func TestMatrixShape(t *testing.T) {
	rows, cols := uint32(3), uint32(4)
	payload := [][]byte{be32(rows), be32(cols)}
	val := int32(10)
	for i := uint32(0); i < rows*cols; i++ {
		payload = append(payload, be32(uint32(val)))
		val++
	}
	out := feedAll(t, newBig(), field(serial.FieldInt32Matrix, payload...))

	if !strings.Contains(out, "height 3, width 4") {
		t.Fatalf("output %q, missing shape header", out)
	}
	// All 12 elements present, traversed row-major.
	prev := -1
	for v := 10; v < 22; v++ {
		idx := strings.Index(out, fmt.Sprintf(" %d", v))
		if idx < 0 {
			t.Fatalf("output %q, missing element %d", out, v)
		}
		if idx < prev {
			t.Errorf("element %d appears before its predecessor", v)
		}
		prev = idx
	}
}

func TestString8(t *testing.T) {
	out := feedAll(t, newBig(), field(serial.FieldString8, be32(2), []byte("AB")))
	if !strings.Contains(out, "String8") || !strings.Contains(out, "AB") {
		t.Errorf("output %q, want String8 and AB", out)
	}
}

func TestString8NonPrintable(t *testing.T) {
	chars := []byte{0x00, 0x1F, 0x7F, 0x20, 0xFF}
	out := feedAll(t, newBig(), field(serial.FieldString8, be32(uint32(len(chars))), chars))

	if got := strings.Count(out, "."); got != len(chars) {
		t.Errorf("output %q: %d masked characters, want %d", out, got, len(chars))
	}
}

func TestString16(t *testing.T) {
	// Letters pass the predicate, digits are masked.
	data := field(serial.FieldString16, be32(3),
		[]byte{0x00, 'A'}, []byte{0x00, 'B'}, []byte{0x00, '1'})
	out := feedAll(t, newBig(), data)
	if !strings.Contains(out, "AB.") {
		t.Errorf("output %q, want AB.", out)
	}
}

func TestStringArray(t *testing.T) {
	data := field(serial.FieldString8Array, be32(2),
		be32(2), []byte("hi"),
		be32(2), []byte("yo"))
	out := feedAll(t, newBig(), data)

	for _, w := range []string{"String8Array", "length 2", "hi", "yo"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
}

func TestStringMatrix(t *testing.T) {
	data := field(serial.FieldString8Matrix, be32(2), be32(2),
		be32(1), []byte("a"),
		be32(1), []byte("b"),
		be32(1), []byte("c"),
		be32(1), []byte("d"))
	out := feedAll(t, newBig(), data)

	if !strings.Contains(out, "height 2, width 2") {
		t.Errorf("output %q, missing shape", out)
	}
	for _, w := range []string{"a", "b", "c", "d"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing cell %q", out, w)
		}
	}
}

func TestUnitScalar(t *testing.T) {
	data := field(serial.FieldDoubleUnit,
		[]byte{serial.UnitLength, 1}, // kilometer
		bef64(42.0))
	out := feedAll(t, newBig(), data)

	if !strings.Contains(out, "42.000000km") {
		t.Errorf("output %q, want 42.000000km with no embedded space", out)
	}
}

func TestUnitArray(t *testing.T) {
	data := field(serial.FieldFloatUnitArray,
		be32(2),
		[]byte{serial.UnitDuration, 0}, // second
		bef32(1.5), bef32(2.5))
	out := feedAll(t, newBig(), data)

	for _, w := range []string{"length 2", "1.500000s", "2.500000s"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
}

func TestColumnUnitIsolation(t *testing.T) {
	// 2x3 column-vector array where each column has its own unit.
	data := field(serial.FieldDoubleUnitColumnArray,
		be32(2), be32(3),
		[]byte{serial.UnitLength, 0},   // column 0: meter
		[]byte{serial.UnitDuration, 0}, // column 1: second
		[]byte{serial.UnitSpeed, 1},    // column 2: kilometer per hour
		bef64(1), bef64(2), bef64(3),
		bef64(4), bef64(5), bef64(6))
	out := feedAll(t, newBig(), data)

	want := []string{
		"1.000000m", "2.000000s", "3.000000km/h",
		"4.000000m", "5.000000s", "6.000000km/h",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
	// No value may pick up a neighboring column's unit.
	for _, bad := range []string{"1.000000s", "2.000000m", "5.000000km/h"} {
		if strings.Contains(out, bad) {
			t.Errorf("output %q, contains cross-column rendering %q", out, bad)
		}
	}
}

func TestUnknownTag(t *testing.T) {
	dec := newBig()

	ready, err := dec.Feed(0x7F)
	if !ready {
		t.Fatal("expected output ready after unknown tag")
	}
	if !stderrors.Is(err, &sderrors.Error{Phase: sderrors.PhaseDecode, Kind: sderrors.KindUnknownTag}) {
		t.Errorf("expected unknown_tag error, got %v", err)
	}
	out := dec.Drain()
	if !strings.Contains(out, "bad field type") {
		t.Errorf("output %q, missing error text", out)
	}

	// Decoder is back at the tag state: the next byte starts a field.
	out = feedAll(t, dec, field(serial.FieldInt32, be32(7)))
	if !strings.Contains(out, "Int32") || !strings.Contains(out, "7") {
		t.Errorf("output %q: decoder did not resynchronize", out)
	}
}

func TestUnknownUnit(t *testing.T) {
	dec := newBig()
	data := field(serial.FieldFloatUnit, []byte{0x60, 0x00})

	var lastErr error
	for _, b := range data {
		_, err := dec.Feed(b)
		if err != nil {
			lastErr = err
		}
	}
	if !stderrors.Is(lastErr, &sderrors.Error{Phase: sderrors.PhaseDecode, Kind: sderrors.KindUnknownUnit}) {
		t.Errorf("expected unknown_unit error, got %v", lastErr)
	}
	if out := dec.Drain(); !strings.Contains(out, "unknown unit") {
		t.Errorf("output %q, missing error text", out)
	}
}

func TestHighBitMasked(t *testing.T) {
	data := field(serial.FieldInt32|0x80, be32(9))
	out := feedAll(t, newBig(), data)
	if !strings.Contains(out, "Int32") || !strings.Contains(out, "9") {
		t.Errorf("output %q: high bit not masked", out)
	}
}

func TestZeroLengthArray(t *testing.T) {
	dec := newBig()
	data := field(serial.FieldInt32Array, be32(0))

	var ready bool
	for _, b := range data {
		ready, _ = dec.Feed(b)
	}
	if !ready {
		t.Fatal("zero-length array should complete the field")
	}
	if out := dec.Drain(); !strings.Contains(out, "length 0") {
		t.Errorf("output %q, missing length 0", out)
	}
}

func TestZeroLengthUnitArray(t *testing.T) {
	// The unit descriptor follows the length header even when the
	// array is empty; it must be consumed, not left for the next tag.
	var data []byte
	data = append(data, field(serial.FieldFloatUnitArray, be32(0), []byte{serial.UnitLength, 0})...)
	data = append(data, field(serial.FieldInt32, be32(7))...)

	dec := newBig()
	var completions int
	var parts []string
	for _, b := range data {
		ready, err := dec.Feed(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ready {
			completions++
			parts = append(parts, dec.Drain())
		}
	}
	if completions != 2 {
		t.Fatalf("got %d field completions, want 2", completions)
	}
	out := strings.Join(parts, "\n")
	for _, w := range []string{"FloatUnitArray", "length 0", "Int32", "7"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
}

func TestZeroRowColumnArray(t *testing.T) {
	// Zero rows, two columns: the column-unit table is still on the
	// wire, one pair per column.
	data := field(serial.FieldDoubleUnitColumnArray,
		be32(0), be32(2),
		[]byte{serial.UnitLength, 0},
		[]byte{serial.UnitDuration, 0})
	data = append(data, field(serial.FieldBoolean8, []byte{1})...)

	out := feedAll(t, newBig(), data)
	for _, w := range []string{"height 0, width 2", "Boolean8", "true"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
}

func TestZeroColumnColumnArray(t *testing.T) {
	// Zero columns means an empty unit table, so the field ends right
	// after the shape header.
	data := field(serial.FieldDoubleUnitColumnArray, be32(3), be32(0))
	data = append(data, field(serial.FieldInt32, be32(5))...)

	out := feedAll(t, newBig(), data)
	for _, w := range []string{"height 3, width 0", "Int32", "5"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
}

func TestZeroShapeUnitMatrix(t *testing.T) {
	data := field(serial.FieldFloatUnitMatrix,
		be32(0), be32(4),
		[]byte{serial.UnitSpeed, 0})
	data = append(data, field(serial.FieldInt32, be32(11))...)

	out := feedAll(t, newBig(), data)
	for _, w := range []string{"height 0, width 4", "Int32", "11"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q, missing %q", out, w)
		}
	}
}

func TestEmptyString(t *testing.T) {
	dec := newBig()
	data := field(serial.FieldString8, be32(0))

	var ready bool
	for _, b := range data {
		ready, _ = dec.Feed(b)
	}
	if !ready {
		t.Fatal("empty string should complete the field")
	}
}

func TestLittleEndian(t *testing.T) {
	dec := serial.NewDecoder(serial.Standard(), endian.Little)
	data := field(serial.FieldInt32, []byte{0x2A, 0x00, 0x00, 0x00})
	out := feedAll(t, dec, data)
	if !strings.Contains(out, "42") {
		t.Errorf("output %q, want 42", out)
	}
}

func TestConsecutiveFields(t *testing.T) {
	var data []byte
	data = append(data, field(serial.FieldInt32, be32(1))...)
	data = append(data, field(serial.FieldString8, be32(2), []byte("ok"))...)
	data = append(data, field(serial.FieldBoolean8, []byte{1})...)

	dec := newBig()
	var completions int
	for _, b := range data {
		ready, err := dec.Feed(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ready {
			completions++
			out := dec.Drain()
			if out == "" {
				t.Error("ready with empty drain")
			}
		}
	}
	if completions != 3 {
		t.Errorf("got %d field completions, want 3", completions)
	}
}

func TestLineWidthBound(t *testing.T) {
	// A long array forces the output to wrap.
	payload := [][]byte{be32(40)}
	for i := 0; i < 40; i++ {
		payload = append(payload, be64(uint64(1234567890123+i)))
	}
	data := field(serial.FieldLong64Array, payload...)

	dec := newBig()
	var all []string
	for _, b := range data {
		ready, _ := dec.Feed(b)
		if ready {
			all = append(all, strings.Split(dec.Drain(), "\n")...)
		}
	}
	all = append(all, strings.Split(dec.Drain(), "\n")...)

	if len(all) < 2 {
		t.Fatalf("expected wrapped output, got %d lines", len(all))
	}
	for _, line := range all {
		if len(line) > dec.MaxLineWidth() {
			t.Errorf("line %q exceeds width %d", line, dec.MaxLineWidth())
		}
	}
}

func TestPending(t *testing.T) {
	dec := newBig()
	if dec.Pending() {
		t.Error("fresh decoder should not be pending")
	}
	dec.Feed(serial.FieldInt32)
	if !dec.Pending() {
		t.Error("decoder should be pending after a tag byte")
	}
	for _, b := range be32(1) {
		dec.Feed(b)
	}
	if dec.Pending() {
		t.Error("decoder should be idle after a complete field")
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := newBig().MaxLineWidth(); got != 80 {
		t.Errorf("MaxLineWidth: got %d, want 80", got)
	}
}
