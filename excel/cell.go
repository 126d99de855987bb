package excel

import "github.com/orayew2002/rast-a1/a1"

// CellName converts 0-based row and column indices to an Excel cell reference (e.g. 0,0 → "A1").
func CellName(row, col int) string {
	return AddressAt(row, col).String()
}

// IndexToColumn converts a 0-based column index to Excel column letters (0→A, 25→Z, 26→AA).
// It panics if the index is beyond the last worksheet column.
func IndexToColumn(n int) string {
	return a1.MustColumnName(n + 1)
}

// ColumnToIndex converts Excel column letters to a 0-based column index (A→0, AA→26).
func ColumnToIndex(letters string) (int, error) {
	n, err := a1.ColumnNumber(letters)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// AddressAt returns the relative address of the cell at 0-based row and col,
// the indices excelize's GetRows and GetCols iterate with.
func AddressAt(row, col int) a1.Address {
	return a1.MustAddress(row+1, col+1, a1.Relative)
}

// RangeAt returns the range between two cells given by 0-based indices.
func RangeAt(row1, col1, row2, col2 int) a1.Range {
	return a1.Range{From: AddressAt(row1, col1), To: AddressAt(row2, col2)}
}
