package a1

import (
	"fmt"
	"strconv"
	"strings"
)

// Traits records which axes of an Address are anchored with "$".
type Traits uint8

const (
	AbsoluteRow Traits = 1 << iota // "$" before the row digits
	AbsoluteCol                    // "$" before the column letters

	Relative Traits = 0
	Absolute Traits = AbsoluteRow | AbsoluteCol
)

// Address is a single cell reference such as "B7" or "$B$7".
//
// Address values are comparable; two addresses are equal when they name the
// same cell with the same anchors. The zero Address is the relative A1.
type Address struct {
	// zero-based so the zero value is A1
	row, col int
	traits   Traits
}

// NewAddress returns the address of the 1-based row and col.
func NewAddress(row, col int, traits Traits) (Address, error) {
	if col < 1 || col > MaxColumn {
		return Address{}, fmt.Errorf("column %d: %w", col, ErrOutOfRange)
	}
	if row < 1 || row > MaxRow {
		return Address{}, fmt.Errorf("row %d: %w", row, ErrOutOfRange)
	}
	return Address{row: row - 1, col: col - 1, traits: traits & Absolute}, nil
}

// MustAddress is like NewAddress but panics on an out of range coordinate.
func MustAddress(row, col int, traits Traits) Address {
	a, err := NewAddress(row, col, traits)
	if err != nil {
		panic(err)
	}
	return a
}

// Row returns the 1-based row.
func (a Address) Row() int { return a.row + 1 }

// Col returns the 1-based column.
func (a Address) Col() int { return a.col + 1 }

func (a Address) RowCol() RowCol { return RowCol{Row: a.Row(), Col: a.Col()} }
func (a Address) Traits() Traits { return a.traits }
func (a Address) IsRowAbs() bool { return a.traits&AbsoluteRow != 0 }
func (a Address) IsColAbs() bool { return a.traits&AbsoluteCol != 0 }

// MakeAbsolute returns a copy of a with both axes anchored.
func (a Address) MakeAbsolute() Address {
	a.traits = Absolute
	return a
}

// MakeRelative returns a copy of a with no anchors.
func (a Address) MakeRelative() Address {
	a.traits = Relative
	return a
}

// String formats a in A1 style with upper case column letters.
func (a Address) String() string {
	var b strings.Builder
	b.Grow(1 + 3 + 1 + 7)
	if a.IsColAbs() {
		b.WriteByte('$')
	}
	b.WriteString(MustColumnName(a.Col()))
	if a.IsRowAbs() {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(a.Row()))
	return b.String()
}

// FormatAddress formats the 1-based row and col in A1 style, putting "$"
// before each anchored axis. It panics if the coordinate is out of range.
func FormatAddress(row, col int, rowAbs, colAbs bool) string {
	var traits Traits
	if rowAbs {
		traits |= AbsoluteRow
	}
	if colAbs {
		traits |= AbsoluteCol
	}
	return MustAddress(row, col, traits).String()
}

// ParseAddress parses a cell reference such as "C7", "$C$7" or "c$7". The
// whole of s must be consumed.
func ParseAddress(s string) (Address, error) {
	a, ok := TryParseAddress(s)
	if !ok {
		return Address{}, fmt.Errorf("%q: %w", s, ErrMalformedAddress)
	}
	return a, nil
}

// TryParseAddress is like ParseAddress but reports failure with ok.
func TryParseAddress(s string) (Address, bool) {
	stop, a, ok := ScanAddress(s, 0, len(s))
	if !ok || stop != len(s) {
		return Address{}, false
	}
	return a, true
}

// ScanAddress parses one cell reference at the start of s[start:end] and
// returns the offset just past it. Input after the reference is left for
// the caller. When ok is false, stop is the offset where scanning gave up.
//
// ScanAddress panics unless 0 <= start <= end <= len(s).
func ScanAddress(s string, start, end int) (stop int, a Address, ok bool) {
	checkSpan(s, start, end)

	var traits Traits
	i := start
	if i < end && s[i] == '$' {
		traits |= AbsoluteCol
		i++
	}

	i, col := ScanColumn(s, i, end)
	if col == 0 {
		return i, Address{}, false
	}
	if i == end || (s[i] != '$' && !isDigit(s[i])) {
		return i, Address{}, false
	}
	if col > MaxColumn {
		return i, Address{}, false
	}

	if s[i] == '$' {
		traits |= AbsoluteRow
		i++
	}

	i, row, ok := scanRow(s, i, end)
	if !ok || row < 1 {
		return i, Address{}, false
	}

	return i, Address{row: row - 1, col: col - 1, traits: traits}, true
}
