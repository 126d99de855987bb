package a1

import "errors"

var (
	// ErrOutOfRange is returned for a column outside [1, MaxColumn] or a
	// row below 1.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidCharacter is returned when column letters contain anything
	// other than A-Z or a-z.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrEmptyInput is returned when column letters are empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrMalformedAddress is returned when a cell reference cannot be parsed.
	ErrMalformedAddress = errors.New("not a valid A1 cell reference style")
	// ErrMalformedRange is wrapped by every *RangeError.
	ErrMalformedRange = errors.New("not a valid A1 range")
	// ErrNegativeSpan is returned by RowCol.Size when the other corner lies
	// above or to the left.
	ErrNegativeSpan = errors.New("negative span")
)
