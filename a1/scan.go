package a1

import "math"

// MaxRow is the largest row number an Address can hold.
const MaxRow = math.MaxInt32

// scanRow reads decimal digits from s[start:end]. ok is false when there
// are no digits or the value exceeds MaxRow; in both cases stop still points
// past every digit that was consumed.
func scanRow(s string, start, end int) (stop, n int, ok bool) {
	overflow := false
	i := start
	for ; i < end; i++ {
		d := int(s[i]) - '0'
		if d < 0 || d > 9 {
			break
		}
		if overflow {
			continue
		}
		// checked before multiplying so a 32-bit int cannot wrap
		if n > (MaxRow-d)/10 {
			overflow = true
			continue
		}
		n = n*10 + d
	}
	return i, n, i > start && !overflow
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
