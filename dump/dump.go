// Package dump renders a serial wire stream as a side-by-side
// hex/decoded listing for inspection.
//
// Dumper implements io.Writer: every byte written is fed through a
// serial.Decoder, and each output row pairs the raw hex bytes with the
// decoded field text produced from them:
//
//	00000000  02 00 00 00 2a                                    Int32: 42
//
// Rows break at a fixed number of hex bytes or at a field boundary,
// whichever comes first, so decoded text always appears on the row
// where its field ended.
package dump

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/averbraeck/djutils-sub014/serial"
	"github.com/averbraeck/djutils-sub014/serial/endian"
)

// defaultBytesPerRow is sized so the hex column plus an 80-column
// decoded line fit a wide terminal.
const defaultBytesPerRow = 16

// Dumper writes a hex/decoded dump of a serial wire stream to an
// io.Writer. Create with New; the zero value is not usable.
type Dumper struct {
	dec *serial.Decoder
	w   io.Writer

	bytesPerRow int
	offset      int
	rowStart    int
	rowLen      int
	hex         strings.Builder
	fields      int
}

// New creates a Dumper decoding with the given catalog and byte order,
// writing dump rows to w.
func New(w io.Writer, catalog serial.Catalog, num endian.Decoder) *Dumper {
	return &Dumper{
		dec:         serial.NewDecoder(catalog, num),
		w:           w,
		bytesPerRow: defaultBytesPerRow,
	}
}

// WithBytesPerRow sets the number of hex bytes per row, for narrow
// displays. Values below 1 are ignored.
func (d *Dumper) WithBytesPerRow(n int) *Dumper {
	if n >= 1 {
		d.bytesPerRow = n
	}
	return d
}

// Fields returns the number of completed fields (including failed
// ones) seen so far.
func (d *Dumper) Fields() int {
	return d.fields
}

// Write feeds p through the decoder, emitting dump rows as they
// complete. It always consumes all of p unless the underlying writer
// fails.
func (d *Dumper) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := d.writeByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (d *Dumper) writeByte(b byte) error {
	if d.rowLen == 0 {
		d.rowStart = d.offset
	}
	fmt.Fprintf(&d.hex, "%02x ", b)
	d.rowLen++

	ready, derr := d.dec.Feed(b)
	d.offset++
	if derr != nil {
		Logger().Warn("decode error",
			zap.Int("offset", d.offset-1),
			zap.Error(derr))
	}

	if ready {
		text := d.dec.Drain()
		// Output can also become ready on a line wrap mid-field;
		// only a decoder back at the tag state ends a field.
		if !d.dec.Pending() {
			d.fields++
			Logger().Debug("field complete",
				zap.Int("end", d.offset),
				zap.String("text", text))
		}
		return d.flushRow(text)
	}
	if d.rowLen >= d.bytesPerRow {
		return d.flushRow("")
	}
	return nil
}

// Flush writes any pending hex row. Text for a field still in progress
// stays buffered in the decoder, since its framing cannot complete.
func (d *Dumper) Flush() error {
	if d.rowLen == 0 {
		return nil
	}
	return d.flushRow(d.dec.Drain())
}

func (d *Dumper) flushRow(text string) error {
	lines := []string{""}
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	hexWidth := d.bytesPerRow * 3
	if _, err := fmt.Fprintf(d.w, "%08x  %-*s  %s\n", d.rowStart, hexWidth, strings.TrimRight(d.hex.String(), " "), lines[0]); err != nil {
		return err
	}
	// Continuation lines of a wrapped decoded field keep the text
	// column alignment.
	for _, more := range lines[1:] {
		if _, err := fmt.Fprintf(d.w, "%8s  %-*s  %s\n", "", hexWidth, "", more); err != nil {
			return err
		}
	}

	d.hex.Reset()
	d.rowLen = 0
	return nil
}
