package polyo

import (
	"fmt"
)

const (

	// MaxSizeLimit is the largest maximal polyomino size a Counter accepts.
	// Canonic shape coordinates must fit in a byte.
	MaxSizeLimit = 32
)

// Cell is a unit square of the square lattice, addressed by its integer coordinates.
type Cell struct {
	X int
	Y int
}

// Origin is the seed cell every enumeration is rooted at.
var Origin = Cell{0, 0}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Cell) Translate(dx, dy int) Cell {
	return Cell{c.X + dx, c.Y + dy}
}

// ManhattanDistance returns the number of unit steps between c and target.
func (c Cell) ManhattanDistance(target Cell) int {
	return absInt(target.X-c.X) + absInt(target.Y-c.Y)
}

// IsAdjacent reports if c and other share an edge (4-neighbor adjacency).
func (c Cell) IsAdjacent(other Cell) bool {
	return c.ManhattanDistance(other) == 1
}

// Compare orders cells by row (Y) and then by column (X).
func (c Cell) Compare(other Cell) int {
	if c.Y != other.Y {
		if c.Y < other.Y {
			return -1
		}
		return 1
	}
	if c.X != other.X {
		if c.X < other.X {
			return -1
		}
		return 1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Lattice is the graph capability a Counter needs: a finite, undirected region of the square lattice.
//
// Once built, a Lattice is read-only and may be shared by any number of readers.
type Lattice interface {

	// AddNode adds the given cell (no-op if already present).
	AddNode(c Cell)

	// AddEdge connects a and b, adding either cell if not present (no-op if already connected).
	AddEdge(a, b Cell)

	// AddPath adds each given cell and connects each consecutive pair.
	AddPath(path ...Cell)

	// HasNode reports if the given cell is present.
	HasNode(c Cell) bool

	// HasEdge reports if a and b are connected.
	HasEdge(a, b Cell) bool

	// Neighbors returns the cells connected to c, in the order their edges were added.
	// The returned slice is owned by the Lattice and must not be modified.
	Neighbors(c Cell) []Cell

	// NumNodes returns the number of cells present.
	NumNodes() int

	// Nodes returns all cells present, sorted via Cell.Compare.
	Nodes() []Cell
}

// ShapeVisitor is called each time a new polyomino is counted.
//
// shape lists the cells of the polyomino in the order they were added and is only valid for the duration of the call.
type ShapeVisitor func(shape []Cell)

// CountOpts specifies params for a polyomino count
type CountOpts struct {
	CheckRestore bool         // if set, the shared search state is verified after every step
	OnShape      ShapeVisitor // optional -- called with each polyomino as it is counted
}

// Counts holds the number of fixed polyominoes by size, where Counts[i] is the count for polyominoes of i+1 cells.
type Counts []int64
