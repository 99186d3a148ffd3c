package libpolyo

import (
	"io"
	"sort"
	"strings"

	"github.com/2x3systems/polyo/polyo"
)

// Shape is a polyomino in canonic form: cells sorted via Cell.Compare and translated so the
// lowest row and leftmost column are both 0.  Two fixed polyominoes are the same iff their Shapes are equal.
type Shape []polyo.Cell

// NormalizeShape returns the canonic form of the given cells (the input is not modified).
func NormalizeShape(cells []polyo.Cell) Shape {
	S := make(Shape, len(cells))
	copy(S, cells)
	S.normalize()
	return S
}

func (S Shape) normalize() {
	if len(S) == 0 {
		return
	}
	minX, minY := S[0].X, S[0].Y
	for _, c := range S[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	for i, c := range S {
		S[i] = c.Translate(-minX, -minY)
	}
	sort.Slice(S, func(i, j int) bool {
		return S[i].Compare(S[j]) < 0
	})
}

// NumCells returns the number of cells in this polyomino
func (S Shape) NumCells() int {
	return len(S)
}

func (S Shape) Contains(c polyo.Cell) bool {
	i := sort.Search(len(S), func(i int) bool {
		return S[i].Compare(c) >= 0
	})
	return i < len(S) && S[i] == c
}

func (S Shape) IsEqual(other Shape) bool {
	if len(S) != len(other) {
		return false
	}
	for i, c := range S {
		if other[i] != c {
			return false
		}
	}
	return true
}

// IsConnected reports if every cell can be reached from every other through shared edges.
func (S Shape) IsConnected() bool {
	if len(S) == 0 {
		return false
	}

	reached := make([]bool, len(S))
	reached[0] = true
	queue := append(make([]int, 0, len(S)), 0)
	numReached := 1

	for len(queue) > 0 {
		ci := S[queue[0]]
		queue = queue[1:]
		for j, cj := range S {
			if !reached[j] && ci.IsAdjacent(cj) {
				reached[j] = true
				numReached++
				queue = append(queue, j)
			}
		}
	}
	return numReached == len(S)
}

// Span returns the width and height of the bounding box of this Shape.
func (S Shape) Span() (width, height int) {
	for _, c := range S {
		if c.X+1 > width {
			width = c.X + 1
		}
		if c.Y+1 > height {
			height = c.Y + 1
		}
	}
	return width, height
}

// IsEncodable reports if AppendEncoding yields a unique key for this Shape:
// at most polyo.MaxSizeLimit cells, all within a polyo.MaxSizeLimit square.
//
// Every connected canonic Shape of up to polyo.MaxSizeLimit cells is encodable.
func (S Shape) IsEncodable() bool {
	width, height := S.Span()
	return len(S) <= polyo.MaxSizeLimit && width <= polyo.MaxSizeLimit && height <= polyo.MaxSizeLimit
}

// AppendEncoding appends a compact binary key for this Shape:
//
//	NumCells, [NumCells](X, Y)
//
// Coordinates are written as single bytes, so the key is only unique if S.IsEncodable().
func (S Shape) AppendEncoding(out []byte) []byte {
	out = append(out, byte(len(S)))
	for _, c := range S {
		out = append(out, byte(c.X), byte(c.Y))
	}
	return out
}

// WriteAsString writes the cells of this Shape in the form accepted by ParseShape, e.g. "(0,0) (1,0) (0,1)"
func (S Shape) WriteAsString(out io.Writer) {
	for i, c := range S {
		if i > 0 {
			io.WriteString(out, " ")
		}
		io.WriteString(out, c.String())
	}
}

func (S Shape) String() string {
	b := strings.Builder{}
	b.Grow(8 * len(S))
	S.WriteAsString(&b)
	return b.String()
}
