// Package serial provides streaming decoding of the djutils typed,
// self-describing serialization wire format.
//
// The format carries no stream-level framing: every field starts with a
// one-byte type tag whose descriptor determines the shape of the
// payload that follows (fixed-width primitive, length-prefixed array,
// height/width-prefixed matrix, length-prefixed string, or a value
// tagged with a physical unit). The schema is discovered one tag at a
// time; nothing needs to be known in advance.
//
// # Decoding
//
// Decoder is a byte-at-a-time state machine that reconstructs a
// human-readable description of each field for inspection and
// debugging. It never buffers a whole message; only the current
// fixed-width sub-value is accumulated.
//
//	dec := serial.NewDecoder(serial.Standard(), endian.Big)
//	for _, b := range stream {
//	    ready, _ := dec.Feed(b)
//	    if ready {
//	        fmt.Println(dec.Drain())
//	    }
//	}
//
// Malformed input (unknown tags, unknown unit codes) is reported as
// "Error: ..." text embedded in the output and decoding continues with
// the next byte; since the format is not self-clocking, the remainder
// of a corrupted stream is best-effort only.
//
// # Catalogs
//
// Tag-to-descriptor and unit-code-to-unit lookups go through the
// Catalog interface. Standard() returns the built-in table; LoadCatalog
// overlays application-specific field types and units from a YAML file.
//
// # Wire format per field
//
//	[1 byte: type tag, high bit reserved]
//	  fixed-size primitive:      [N bytes: value]
//	  plain array:               [4 bytes: length][N*length bytes]
//	  plain matrix:              [4 bytes: rows][4 bytes: cols][N*rows*cols bytes]
//	  unit-bearing array/matrix: [shape][2 bytes: unit][N*count bytes]
//	  scalar with unit:          [2 bytes: unit][N bytes: value]
//	  string (8/16-bit):         [4 bytes: char count][count * (1|2) bytes]
//	  string array/matrix:       [shape][per cell: char count + chars]
//	  column-vector array:       [4 bytes: rows][4 bytes: cols]
//	                             [per column: 2 bytes unit][rows*cols*(4|8) bytes]
//
// Multi-byte quantities use the byte order of the endian.Decoder passed
// to NewDecoder.
package serial
