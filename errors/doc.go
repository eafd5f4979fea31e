// Package errors provides structured error types for the serial
// decoding toolkit.
//
// Every classified failure carries a Phase (where in processing it
// happened) and a Kind (what went wrong), so callers can match on
// error categories with errors.Is instead of string inspection.
//
// The streaming decoder never aborts on a classified failure; the
// returned error is advisory and the same information is embedded in
// the decoder's text output.
package errors
