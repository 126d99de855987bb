package a1

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		s                      string
		col1, row1, col2, row2 int
	}{
		{"A1", 1, 1, 1, 1},
		{"B1", 2, 1, 2, 1},
		{"C5", 3, 5, 3, 5},
		{"AA1", 27, 1, 27, 1},
		{"GHI43", 4949, 43, 4949, 43},
		{"A1:C5", 1, 1, 3, 5},
		{"C5:A1", 3, 5, 1, 1},
		{"B3:G5", 2, 3, 7, 5},
		{"$a$1:c$5", 1, 1, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			r, err := ParseRange(tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.col1, r.From.Col())
			assert.Equal(t, tt.row1, r.From.Row())
			assert.Equal(t, tt.col2, r.To.Col())
			assert.Equal(t, tt.row2, r.To.Row())

			probe, ok := TryParseRange(tt.s)
			assert.True(t, ok)
			if diff := cmp.Diff(r, probe, cmp.AllowUnexported(Address{})); diff != "" {
				t.Errorf("TryParseRange(%q) mismatch (-want +got):\n%s", tt.s, diff)
			}
		})
	}
}

func TestParseRangeSingleAddress(t *testing.T) {
	r, err := ParseRange("$B$2")
	require.NoError(t, err)

	want := Range{From: MustAddress(2, 2, Absolute), To: MustAddress(2, 2, Absolute)}
	if diff := cmp.Diff(want, r, cmp.AllowUnexported(Address{})); diff != "" {
		t.Errorf("ParseRange mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "$B$2", r.String())
}

func TestParseRangeKeepsOrder(t *testing.T) {
	r := MustParseRange("C5:A1")
	assert.Equal(t, "C5:A1", r.String())

	tl, br := r.Bounds()
	assert.Equal(t, RowCol{Row: 1, Col: 1}, tl)
	assert.Equal(t, RowCol{Row: 5, Col: 3}, br)
	assert.Equal(t, Size{Height: 5, Width: 3}, r.Size())
	assert.True(t, r.Contains(RowCol{Row: 3, Col: 2}))
	assert.False(t, r.Contains(RowCol{Row: 6, Col: 2}))
}

func TestRangeBoundsMixedCorners(t *testing.T) {
	r := MustParseRange("A5:C1")
	tl, br := r.Bounds()
	assert.Equal(t, RowCol{Row: 1, Col: 1}, tl)
	assert.Equal(t, RowCol{Row: 5, Col: 3}, br)
}

func TestParseRangeErrors(t *testing.T) {
	const (
		badFirst  = "The first address in the range '?' is not a valid A1 cell reference style. Parsing failed at position #."
		badSecond = "The second address in the range '?' is not a valid A1 cell reference style. Parsing failed at position #."
		badSep    = "The separator at position # in the range '?' must be a colon (:)."
		badEnd    = "The range '?' is incorrectly terminated at position #."
	)

	tests := []struct {
		s        string
		kind     RangeErrorKind
		pos      int
		template string
	}{
		{"", FirstAddressInvalid, 1, badFirst},
		{"FOO", FirstAddressInvalid, 4, badFirst},
		{"X", FirstAddressInvalid, 2, badFirst},
		{"42", FirstAddressInvalid, 1, badFirst},
		{":B42", FirstAddressInvalid, 1, badFirst},
		{"A:B42", FirstAddressInvalid, 2, badFirst},
		{"1:B42", FirstAddressInvalid, 1, badFirst},
		{"A1:", SecondAddressInvalid, 4, badSecond},
		{"A1:B", SecondAddressInvalid, 5, badSecond},
		{"A1:42", SecondAddressInvalid, 4, badSecond},
		{"TEST42", FirstAddressInvalid, 5, badFirst},
		{"A1:TEST42", SecondAddressInvalid, 8, badSecond},
		{"A1 B42", MissingSeparator, 3, badSep},
		{"A1;B42", MissingSeparator, 3, badSep},
		{"A1:B42!", TrailingContent, 7, badEnd},
		{"A1:B2:C3", TrailingContent, 6, badEnd},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			_, err := ParseRange(tt.s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRange)

			var rerr *RangeError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.kind, rerr.Kind)
			assert.Equal(t, tt.pos, rerr.Pos)
			assert.Equal(t, tt.s, rerr.Input)

			msg := strings.NewReplacer("?", tt.s, "#", strconv.Itoa(tt.pos)).Replace(tt.template)
			assert.Equal(t, msg, err.Error())

			_, ok := TryParseRange(tt.s)
			assert.False(t, ok)
		})
	}
}

func TestTryParseRangeOr(t *testing.T) {
	fallback := MustParseRange("Z9")
	assert.Equal(t, fallback, TryParseRangeOr("A1:", fallback))
	assert.Equal(t, MustParseRange("A1:B2"), TryParseRangeOr("a1:b2", fallback))
	assert.Panics(t, func() { MustParseRange("A1 B42") })
}

func TestRangeErrorKindString(t *testing.T) {
	assert.Equal(t, "missing separator", MissingSeparator.String())
	assert.Equal(t, "RangeErrorKind(0)", RangeErrorKind(0).String())
}
