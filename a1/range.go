package a1

import "fmt"

// Range is a pair of addresses written "From:To". The ends are kept in the
// order they were given; "C5:A1" is a valid range.
type Range struct {
	From Address
	To   Address
}

// String formats r as "From:To", or as a single address when both ends are
// the same.
func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return r.From.String() + ":" + r.To.String()
}

// Bounds returns the top-left and bottom-right corners of the rectangle r
// covers, whatever order its ends were written in.
func (r Range) Bounds() (topLeft, bottomRight RowCol) {
	a, b := r.From.RowCol(), r.To.RowCol()
	return RowCol{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)},
		RowCol{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
}

// Contains reports whether rc lies inside r.
func (r Range) Contains(rc RowCol) bool {
	tl, br := r.Bounds()
	return rc.In(tl, br)
}

// Size returns the number of rows and columns r covers.
func (r Range) Size() Size {
	tl, br := r.Bounds()
	size, _ := tl.Size(br) // bounds are ordered
	return size
}

// RangeErrorKind says which part of a range failed to parse.
type RangeErrorKind int

const (
	// FirstAddressInvalid means the address before the colon is malformed.
	FirstAddressInvalid RangeErrorKind = iota + 1
	// MissingSeparator means a valid first address is followed by something
	// other than a colon.
	MissingSeparator
	// SecondAddressInvalid means the address after the colon is malformed.
	SecondAddressInvalid
	// TrailingContent means input remains after a valid second address.
	TrailingContent
)

func (k RangeErrorKind) String() string {
	switch k {
	case FirstAddressInvalid:
		return "first address invalid"
	case MissingSeparator:
		return "missing separator"
	case SecondAddressInvalid:
		return "second address invalid"
	case TrailingContent:
		return "trailing content"
	default:
		return fmt.Sprintf("RangeErrorKind(%d)", int(k))
	}
}

// RangeError describes why and where a range failed to parse.
type RangeError struct {
	Kind  RangeErrorKind
	Pos   int // 1-based position where scanning stopped
	Input string
}

func (e *RangeError) Error() string {
	switch e.Kind {
	case FirstAddressInvalid:
		return fmt.Sprintf("The first address in the range '%s' is not a valid A1 cell reference style. Parsing failed at position %d.", e.Input, e.Pos)
	case MissingSeparator:
		return fmt.Sprintf("The separator at position %d in the range '%s' must be a colon (:).", e.Pos, e.Input)
	case SecondAddressInvalid:
		return fmt.Sprintf("The second address in the range '%s' is not a valid A1 cell reference style. Parsing failed at position %d.", e.Input, e.Pos)
	case TrailingContent:
		return fmt.Sprintf("The range '%s' is incorrectly terminated at position %d.", e.Input, e.Pos)
	default:
		return fmt.Sprintf("The range '%s' is invalid at position %d.", e.Input, e.Pos)
	}
}

func (e *RangeError) Unwrap() error { return ErrMalformedRange }

// ParseRange parses "A1:B2" style ranges. A lone address yields a range
// whose ends are equal. Failures are returned as *RangeError.
func ParseRange(s string) (Range, error) {
	r, err := scanRange(s)
	if err != nil {
		return Range{}, err
	}
	return r, nil
}

// TryParseRange is like ParseRange but reports failure with ok.
func TryParseRange(s string) (Range, bool) {
	r, err := scanRange(s)
	return r, err == nil
}

// TryParseRangeOr returns the range s denotes, or fallback if s is not a
// valid range.
func TryParseRangeOr(s string, fallback Range) Range {
	if r, ok := TryParseRange(s); ok {
		return r
	}
	return fallback
}

// MustParseRange is like ParseRange but panics on malformed input.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

func scanRange(s string) (Range, *RangeError) {
	i, from, ok := ScanAddress(s, 0, len(s))
	if !ok {
		return Range{}, &RangeError{Kind: FirstAddressInvalid, Pos: i + 1, Input: s}
	}
	if i == len(s) {
		return Range{From: from, To: from}, nil
	}
	if s[i] != ':' {
		return Range{}, &RangeError{Kind: MissingSeparator, Pos: i + 1, Input: s}
	}

	i, to, ok := ScanAddress(s, i+1, len(s))
	if !ok {
		return Range{}, &RangeError{Kind: SecondAddressInvalid, Pos: i + 1, Input: s}
	}
	if i < len(s) {
		return Range{}, &RangeError{Kind: TrailingContent, Pos: i + 1, Input: s}
	}
	return Range{From: from, To: to}, nil
}
