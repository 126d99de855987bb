package a1

import (
	"fmt"
	"math"
	"sync/atomic"
)

// MaxColumn is the highest column number a worksheet can address ("XFD").
const MaxColumn = 16384

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// columnNames memoizes ColumnName results. Slots are written at most once
// with a deterministic value, so racing writers are harmless.
var columnNames [MaxColumn]atomic.Pointer[string]

// ColumnName converts a 1-based column number to its letters (1 → A, 27 → AA,
// 16384 → XFD).
func ColumnName(n int) (string, error) {
	if n < 1 || n > MaxColumn {
		return "", fmt.Errorf("column %d: %w: must be between 1 and %d", n, ErrOutOfRange, MaxColumn)
	}

	slot := &columnNames[n-1]
	if name := slot.Load(); name != nil {
		return *name, nil
	}

	name := columnName(n)
	slot.Store(&name)
	return name, nil
}

// MustColumnName is like ColumnName but panics if n is out of range.
func MustColumnName(n int) string {
	name, err := ColumnName(n)
	if err != nil {
		panic(err)
	}
	return name
}

// A..Z     = 1..26
// AA..ZZ   = 27..702
// AAA..XFD = 703..16384
func columnName(n int) string {
	size := 1
	switch {
	case n >= 703:
		size = 3
	case n >= 27:
		size = 2
	}

	buf := make([]byte, size)
	i := size
	for n > 0 {
		n--
		i--
		buf[i] = alphabet[n%len(alphabet)]
		n /= len(alphabet)
	}
	return string(buf)
}

// ColumnNumber converts column letters to a 1-based column number. Letters
// are case-insensitive. The result is not checked against MaxColumn; only a
// run of letters too long to fit an int is reported as out of range.
func ColumnNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("column letters: %w", ErrEmptyInput)
	}

	stop, n := ScanColumn(s, 0, len(s))
	if stop != len(s) {
		return 0, fmt.Errorf("column letters %q: %w %q at offset %d", s, ErrInvalidCharacter, s[stop], stop)
	}
	if n == math.MaxInt {
		return 0, fmt.Errorf("column letters %q: %w", s, ErrOutOfRange)
	}
	return n, nil
}

// TryColumnNumber is like ColumnNumber but reports failure with ok instead
// of an error.
func TryColumnNumber(s string) (n int, ok bool) {
	stop, n := ScanColumn(s, 0, len(s))
	if n == 0 || n == math.MaxInt || stop != len(s) {
		return 0, false
	}
	return n, true
}

// ScanColumn reads as many ASCII letters as possible from s[start:end] and
// returns the offset it stopped at and the accumulated column number, which
// is 0 when no letter was read. A value too large for an int saturates at
// math.MaxInt; scanning still consumes the remaining letters.
func ScanColumn(s string, start, end int) (stop, n int) {
	checkSpan(s, start, end)

	const limit = (math.MaxInt - len(alphabet)) / len(alphabet)

	mult := 1
	i := start
	for ; i < end; i++ {
		ch := s[i] &^ 0x20 // fold to upper case
		if ch < 'A' || ch > 'Z' {
			break
		}
		switch {
		case n == math.MaxInt:
		case n > limit:
			n = math.MaxInt
		default:
			n = n*mult + int(ch-'A') + 1
		}
		mult = len(alphabet)
	}
	return i, n
}

func checkSpan(s string, start, end int) {
	if start < 0 || end > len(s) || start > end {
		panic(fmt.Sprintf("a1: span [%d:%d] out of range for string of length %d", start, end, len(s)))
	}
}
