// Package a1 converts between spreadsheet A1 references ("$C$7", "B2:D9")
// and row/column coordinates, and between column numbers and their letters.
//
// Rows and columns are 1-based throughout. Columns run from 1 ("A") to
// MaxColumn ("XFD"); rows run from 1 to MaxRow on every platform.
//
// Every parser comes in two forms that accept exactly the same inputs: one
// returning an error (ParseAddress, ParseRange, ColumnNumber) and one
// returning ok (TryParseAddress, TryParseRange, TryColumnNumber). The Scan
// functions parse a prefix of a span and report where they stopped, leaving
// the rest of the input to the caller.
package a1
