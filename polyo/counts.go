package polyo

import (
	"io"
	"strconv"
	"strings"
)

// FixedPolyominoes lists the number of fixed polyominoes with n cells, for n = 1, 2, 3, ..
//
// See OEIS A001168.
var FixedPolyominoes = Counts{
	1, 2, 6, 19, 63, 216, 760, 2725, 9910, 36446,
	135268, 505861, 1903890, 7204874, 27394666, 104592937,
	400795844, 1540820542, 5940738676, 22964779660,
}

// ReferenceCounts returns the first maxSize known terms, or nil if maxSize is out of the known range.
func ReferenceCounts(maxSize int) Counts {
	if maxSize < 1 || maxSize > len(FixedPolyominoes) {
		return nil
	}
	return append(Counts{}, FixedPolyominoes[:maxSize]...)
}

// MaxSize returns the largest polyomino size these counts cover.
func (C Counts) MaxSize() int {
	return len(C)
}

// ForSize returns the count of polyominoes with exactly n cells (0 if out of range).
func (C Counts) ForSize(n int) int64 {
	if n < 1 || n > len(C) {
		return 0
	}
	return C[n-1]
}

// Add accumulates src into C element-wise.  src must not be longer than C.
func (C Counts) Add(src Counts) {
	for i, ci := range src {
		C[i] += ci
	}
}

func (C Counts) Total() int64 {
	total := int64(0)
	for _, ci := range C {
		total += ci
	}
	return total
}

func (C Counts) IsEqual(other Counts) bool {
	if len(C) != len(other) {
		return false
	}
	for i, ci := range C {
		if other[i] != ci {
			return false
		}
	}
	return true
}

// IsNonDecreasing reports if no entry is smaller than its predecessor.
func (C Counts) IsNonDecreasing() bool {
	for i := 1; i < len(C); i++ {
		if C[i] < C[i-1] {
			return false
		}
	}
	return true
}

// WriteAsString writes C as a bracketed, space-separated list, e.g. "[1 2 6 19]"
func (C Counts) WriteAsString(out io.Writer) {
	var scrap [24]byte
	buf := append(scrap[:0], '[')
	out.Write(buf)
	for i, ci := range C {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, ci, 10)
		out.Write(buf)
	}
	out.Write([]byte{']'})
}

func (C Counts) String() string {
	b := strings.Builder{}
	b.Grow(8 * len(C))
	C.WriteAsString(&b)
	return b.String()
}
