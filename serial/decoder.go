package serial

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	sderrors "github.com/averbraeck/djutils-sub014/errors"
	"github.com/averbraeck/djutils-sub014/serial/endian"
)

// maxLineWidth bounds drained output lines, sized for a side-by-side
// hex/text inspection pane.
const maxLineWidth = 80

// accumulatorSize is the widest sub-value the decoder ever buffers: an
// 8-byte shape header or an 8-byte double. The column-unit table is
// read one 2-byte pair per round, so it never needs more.
const accumulatorSize = 8

// phase is the decoder's current state. phaseTag is the resting state
// between fields; every other phase accumulates bytes until the current
// sub-value is complete.
type phase byte

const (
	phaseTag          phase = iota // awaiting a field type tag
	phaseShape                     // 4- or 8-byte array/matrix shape header
	phaseUnit                      // 2-byte shared unit descriptor
	phaseColumnUnit                // 2-byte unit descriptor for one column
	phaseStringHeader              // 4-byte character count
	phaseChar                      // one 8- or 16-bit character
	phaseElement                   // one fixed-width element value
)

// Decoder reconstructs a textual description of each field in a wire
// stream, one byte at a time. One Decoder handles one stream; it keeps
// no shared state, so concurrent streams get one Decoder each.
type Decoder struct {
	catalog Catalog
	num     endian.Decoder

	phase phase
	desc  *Serializer

	buf  [accumulatorSize]byte
	need int
	fill int

	rows, cols uint32
	row, col   uint32

	charCount uint32
	charIdx   uint32

	unit     *Unit
	colUnits []*Unit

	offset int

	lines []string
	cur   strings.Builder
	ready bool
}

// NewDecoder creates a Decoder using the given catalog for tag and unit
// lookups and the given byte order for multi-byte quantities.
func NewDecoder(catalog Catalog, num endian.Decoder) *Decoder {
	return &Decoder{catalog: catalog, num: num, phase: phaseTag}
}

// MaxLineWidth returns the maximum length of a drained output line.
// Single tokens longer than the width are never split.
func (d *Decoder) MaxLineWidth() int {
	return maxLineWidth
}

// Feed consumes one byte of the stream. The returned boolean reports
// that output is ready to be drained. The returned error classifies an
// unknown tag or unit code; the decoder has already recovered (the
// error text is in the output and the next byte is read as a fresh
// tag), so callers may ignore it.
func (d *Decoder) Feed(b byte) (bool, error) {
	var err error
	if d.phase == phaseTag {
		err = d.beginField(b)
	} else {
		if d.fill < d.need {
			d.buf[d.fill] = b
		}
		// The cursor advances even past the logical end; excess
		// bytes are dropped rather than treated as an error.
		d.fill++
		if d.fill >= d.need {
			err = d.completeElement()
		}
	}
	d.offset++
	return d.ready, err
}

// Pending reports whether a field is partially decoded, i.e. the next
// byte will not be interpreted as a type tag.
func (d *Decoder) Pending() bool {
	return d.phase != phaseTag
}

// Drain returns the accumulated output and empties the buffer. Between
// fields everything is returned; mid-field only full lines are, so an
// in-progress fragment is never torn.
func (d *Decoder) Drain() string {
	if d.phase == phaseTag && d.cur.Len() > 0 {
		d.lines = append(d.lines, d.cur.String())
		d.cur.Reset()
	}
	out := strings.Join(d.lines, "\n")
	d.lines = nil
	d.ready = false
	return out
}

// beginField interprets b as a field type tag and arms the accumulator
// for the first sub-value of the field's protocol.
func (d *Decoder) beginField(b byte) error {
	code := b & 0x7F // high bit reserved
	s := d.catalog.Serializer(code)
	if s == nil {
		err := sderrors.UnknownTag(d.offset, code)
		d.emit(fmt.Sprintf("Error: bad field type 0x%02x, resynchronizing.", code))
		d.finishField()
		return err
	}

	d.desc = s
	d.emit(s.Name + ":")

	switch s.Kind {
	case KindFixedPrimitive:
		d.arm(phaseElement, s.Elem.Size())
	case KindUnitScalar:
		d.arm(phaseUnit, 2)
	case KindStringScalar:
		d.arm(phaseStringHeader, 4)
	case KindPlainArray, KindUnitArray, KindStringArray:
		d.arm(phaseShape, 4)
	case KindPlainMatrix, KindUnitMatrix, KindStringMatrix, KindColumnVectorArray:
		d.arm(phaseShape, 8)
	default:
		err := sderrors.InvalidData(sderrors.PhaseDecode,
			fmt.Sprintf("descriptor %q has unsupported kind %v", s.Name, s.Kind))
		d.emit(fmt.Sprintf("Error: unsupported field kind %v, resynchronizing.", s.Kind))
		d.finishField()
		return err
	}
	return nil
}

// completeElement dispatches on the phase whose sub-value just filled
// the accumulator and decides the next phase, or ends the field.
func (d *Decoder) completeElement() error {
	switch d.phase {
	case phaseShape:
		return d.readShape()
	case phaseUnit:
		return d.readUnit()
	case phaseColumnUnit:
		return d.readColumnUnit()
	case phaseStringHeader:
		d.readStringHeader()
		return nil
	case phaseChar:
		d.readChar()
		return nil
	default:
		d.readElement()
		return nil
	}
}

// readShape parses the 1-D length or 2-D height/width header and arms
// for the unit round, the first string cell, or the first element.
func (d *Decoder) readShape() error {
	if d.need == 8 {
		d.rows = d.num.Uint32(d.buf[:], 0)
		d.cols = d.num.Uint32(d.buf[:], 4)
		d.emit(fmt.Sprintf("height %d, width %d:", d.rows, d.cols))
	} else {
		d.rows = 1
		d.cols = d.num.Uint32(d.buf[:], 0)
		d.emit(fmt.Sprintf("length %d:", d.cols))
	}
	d.row, d.col = 0, 0

	// Unit descriptors are on the wire even for an empty shape, so the
	// unit round still runs before an empty field can finish.
	empty := d.rows == 0 || d.cols == 0

	switch d.desc.Kind {
	case KindUnitArray, KindUnitMatrix:
		d.arm(phaseUnit, 2)
	case KindColumnVectorArray:
		if d.cols == 0 {
			d.finishField()
			return nil
		}
		d.colUnits = make([]*Unit, 0, d.cols)
		d.arm(phaseColumnUnit, 2)
	case KindStringArray, KindStringMatrix:
		if empty {
			d.finishField()
			return nil
		}
		d.arm(phaseStringHeader, 4)
	default:
		if empty {
			d.finishField()
			return nil
		}
		d.arm(phaseElement, d.desc.Elem.Size())
	}
	return nil
}

// readUnit resolves the shared unit descriptor for unit-bearing scalars,
// arrays and matrices, then arms for element data.
func (d *Decoder) readUnit() error {
	u := d.catalog.Unit(d.buf[0], d.buf[1])
	if u == nil {
		err := sderrors.UnknownUnit(d.offset, d.buf[0], d.buf[1])
		d.emit(fmt.Sprintf("Error: unknown unit type 0x%02x display 0x%02x, resynchronizing.",
			d.buf[0], d.buf[1]))
		d.finishField()
		return err
	}
	d.unit = u
	if d.desc.Kind != KindUnitScalar && (d.rows == 0 || d.cols == 0) {
		d.finishField()
		return nil
	}
	d.arm(phaseElement, d.desc.Elem.Size())
	return nil
}

// readColumnUnit resolves the unit for the next column of a
// column-vector array, one pair per round.
func (d *Decoder) readColumnUnit() error {
	u := d.catalog.Unit(d.buf[0], d.buf[1])
	if u == nil {
		err := sderrors.UnknownUnit(d.offset, d.buf[0], d.buf[1])
		d.emit(fmt.Sprintf("Error: unknown unit 0x%02x 0x%02x for column %d, resynchronizing.",
			d.buf[0], d.buf[1], len(d.colUnits)))
		d.finishField()
		return err
	}
	d.colUnits = append(d.colUnits, u)
	if uint32(len(d.colUnits)) < d.cols {
		d.arm(phaseColumnUnit, 2)
		return nil
	}
	if d.rows == 0 {
		d.finishField()
		return nil
	}
	d.arm(phaseElement, d.desc.Elem.Size())
	return nil
}

// readStringHeader parses the character count of the current string
// value, which is the whole field for scalar strings or one cell of a
// string array/matrix.
func (d *Decoder) readStringHeader() {
	d.charCount = d.num.Uint32(d.buf[:], 0)
	d.charIdx = 0
	if d.charCount == 0 {
		d.finishString()
		return
	}
	d.arm(phaseChar, d.desc.Elem.Size())
}

// readChar renders one character of the current string value. The
// first character of a string is space-separated from what precedes it;
// the rest run together.
func (d *Decoder) readChar() {
	if d.charIdx == 0 {
		d.emit(d.renderChar())
	} else {
		d.emitValue(d.renderChar())
	}
	d.charIdx++
	if d.charIdx >= d.charCount {
		d.finishString()
		return
	}
	d.arm(phaseChar, d.desc.Elem.Size())
}

// finishString ends the current string value: the field for a scalar
// string, otherwise one cell of the outer array/matrix.
func (d *Decoder) finishString() {
	if d.desc.Kind == KindStringScalar {
		d.finishField()
		return
	}
	if d.advanceCell() {
		d.finishField()
		return
	}
	d.arm(phaseStringHeader, 4)
}

// readElement renders one primitive or unit-bearing value and either
// re-arms for the next element or ends the field.
func (d *Decoder) readElement() {
	d.emit(d.renderValue())

	switch d.desc.Kind {
	case KindFixedPrimitive, KindUnitScalar:
		d.finishField()
		return
	}
	if d.advanceCell() {
		d.finishField()
		return
	}
	d.arm(phaseElement, d.desc.Elem.Size())
}

// advanceCell moves the row-major traversal cursor one cell and reports
// whether the last cell has been consumed.
func (d *Decoder) advanceCell() bool {
	d.col++
	if d.col >= d.cols {
		d.col = 0
		d.row++
	}
	return d.row >= d.rows
}

// renderValue formats the just-completed element per the rendering
// policy: decimal integers, fixed-precision floats, hex bytes, and
// number-then-symbol for unit-bearing values.
func (d *Decoder) renderValue() string {
	switch d.desc.Elem {
	case ElemInt8:
		return fmt.Sprintf("%02x", d.buf[0])
	case ElemInt16:
		return strconv.FormatInt(int64(d.num.Int16(d.buf[:], 0)), 10)
	case ElemInt32:
		return strconv.FormatInt(int64(d.num.Int32(d.buf[:], 0)), 10)
	case ElemInt64:
		return strconv.FormatInt(d.num.Int64(d.buf[:], 0), 10)
	case ElemFloat32:
		return d.renderQuantity(float64(d.num.Float32(d.buf[:], 0)))
	case ElemFloat64:
		return d.renderQuantity(d.num.Float64(d.buf[:], 0))
	case ElemBool:
		// The trailing separator comes from emit, not the token.
		if d.buf[0] != 0 {
			return "true"
		}
		return "false"
	case ElemChar8, ElemChar16:
		return d.renderChar()
	default:
		return "?"
	}
}

// renderQuantity appends the field's unit symbol, or the current
// column's symbol for column-vector arrays, directly after the numeral.
func (d *Decoder) renderQuantity(v float64) string {
	txt := strconv.FormatFloat(v, 'f', 6, 64)
	if d.colUnits != nil {
		return txt + d.colUnits[d.col].Symbol
	}
	if d.unit != nil {
		return txt + d.unit.Symbol
	}
	return txt
}

// renderChar masks non-displayable characters as '.'. 8-bit characters
// use the printable ASCII range; 16-bit characters use the Unicode
// letter predicate (cosmetic only, the choice does not affect framing).
func (d *Decoder) renderChar() string {
	if d.desc.Elem == ElemChar16 {
		r := d.num.Char16(d.buf[:], 0)
		if unicode.IsLetter(r) {
			return string(r)
		}
		return "."
	}
	c := d.buf[0]
	if c >= 33 && c <= 126 {
		return string(rune(c))
	}
	return "."
}

// arm points the accumulator at the next expected sub-value.
func (d *Decoder) arm(p phase, width int) {
	d.phase = p
	d.need = width
	d.fill = 0
}

// finishField resets all per-field state so the next byte is read as a
// fresh type tag, and marks the output ready.
func (d *Decoder) finishField() {
	d.phase = phaseTag
	d.desc = nil
	d.need, d.fill = 0, 0
	d.rows, d.cols, d.row, d.col = 0, 0, 0, 0
	d.charCount, d.charIdx = 0, 0
	d.unit = nil
	d.colUnits = nil
	d.ready = true
}

// emit appends a fragment to the output, separated from the previous
// one by a space, wrapping to a new line when the fragment would not
// fit within the display width.
func (d *Decoder) emit(frag string) {
	sep := 0
	if d.cur.Len() > 0 {
		sep = 1
	}
	if d.cur.Len() > 0 && d.cur.Len()+sep+len(frag) > maxLineWidth {
		d.lines = append(d.lines, d.cur.String())
		d.cur.Reset()
		d.ready = true
		sep = 0
	}
	if sep == 1 {
		d.cur.WriteByte(' ')
	}
	d.cur.WriteString(frag)
}

// emitValue appends element text without inserting a separator, so
// string characters run together; it still wraps at the display width.
func (d *Decoder) emitValue(frag string) {
	if d.cur.Len() > 0 && d.cur.Len()+len(frag) > maxLineWidth {
		d.lines = append(d.lines, d.cur.String())
		d.cur.Reset()
		d.ready = true
	}
	d.cur.WriteString(frag)
}
