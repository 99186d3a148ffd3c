package libpolyo

import (
	"bufio"
	"io"

	"github.com/2x3systems/polyo/polyo"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// NewLattice returns an empty adjacency-list polyo.Lattice.
func NewLattice() polyo.Lattice {
	return &latticeGraph{
		index: make(map[polyo.Cell]int32),
		order: redblacktree.Tree{
			Comparator: func(A, B interface{}) int {
				return A.(polyo.Cell).Compare(B.(polyo.Cell))
			},
		},
	}
}

// BuildLattice returns a lattice that contains every cell any polyomino of up to maxSize cells rooted at the origin can occupy.
//
// Polyominoes grow upward and rightward from the origin: row 0 holds x = 0 .. maxSize-1 and row y holds
// |x| <= maxSize-1-y, so the region is half of a diamond.
func BuildLattice(maxSize int) polyo.Lattice {
	lat := NewLattice()
	BuildLatticeInto(lat, maxSize)
	return lat
}

// BuildLatticeInto lays out the half-diamond region for maxSize into the given lattice.
func BuildLatticeInto(lat polyo.Lattice, maxSize int) {
	if maxSize < 1 {
		return
	}

	path := make([]polyo.Cell, 0, 2*maxSize)

	// Row 0 holds no cell left of the origin
	for x := 0; x < maxSize; x++ {
		node := polyo.Cell{X: x, Y: 0}
		lat.AddNode(node)
		path = append(path, node)
	}
	lat.AddPath(path...)

	// Rows above narrow by one cell on each side
	for y := 1; y < maxSize; y++ {
		path = path[:0]
		for x := -(maxSize - 1 - y); x < maxSize-y; x++ {
			node := polyo.Cell{X: x, Y: y}
			lat.AddNode(node)
			path = append(path, node)
		}
		lat.AddPath(path...)
	}

	// Vertical edges can only be added once every row is present
	for x := -maxSize; x < maxSize; x++ {
		path = path[:0]
		for y := -maxSize; y < maxSize; y++ {
			node := polyo.Cell{X: x, Y: y}
			if lat.HasNode(node) {
				path = append(path, node)
			}
		}
		lat.AddPath(path...)
	}
}

// WriteLattice draws the cells of the given lattice as rows of text, top row first.
//
// Each present cell is drawn as '#' (the origin as 'o') and each absent cell within the bounding box as '.'.
func WriteLattice(out io.Writer, lat polyo.Lattice) error {
	nodes := lat.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	minX, maxX := nodes[0].X, nodes[0].X
	for _, c := range nodes[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
	}

	// Nodes are sorted by row, so each row is a contiguous run
	var rows [][]polyo.Cell
	for i, c := range nodes {
		if i == 0 || c.Y != nodes[i-1].Y {
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], c)
	}

	w := bufio.NewWriter(out)
	line := make([]byte, 0, maxX-minX+2)
	blankLine := func() {
		line = line[:0]
		for x := minX; x <= maxX; x++ {
			line = append(line, '.')
		}
	}
	for ri := len(rows) - 1; ri >= 0; ri-- {
		row := rows[ri]
		if ri < len(rows)-1 {
			for y := rows[ri+1][0].Y - 1; y > row[0].Y; y-- {
				blankLine()
				w.Write(append(line, '\n'))
			}
		}
		blankLine()
		for _, c := range row {
			ch := byte('#')
			if c == polyo.Origin {
				ch = 'o'
			}
			line[c.X-minX] = ch
		}
		line = append(line, '\n')
		w.Write(line)
	}
	return w.Flush()
}

type latticeGraph struct {
	index map[polyo.Cell]int32 // cell => index into adj
	adj   [][]polyo.Cell       // neighbors of each cell in edge insertion order
	order redblacktree.Tree    // sorted cell index
}

func (lat *latticeGraph) AddNode(c polyo.Cell) {
	lat.nodeIndex(c)
}

func (lat *latticeGraph) nodeIndex(c polyo.Cell) int32 {
	idx, exists := lat.index[c]
	if !exists {
		idx = int32(len(lat.adj))
		lat.index[c] = idx
		lat.adj = append(lat.adj, make([]polyo.Cell, 0, 4))
		lat.order.Put(c, idx)
	}
	return idx
}

func (lat *latticeGraph) AddEdge(a, b polyo.Cell) {
	ai := lat.nodeIndex(a)
	bi := lat.nodeIndex(b)
	if a == b || lat.HasEdge(a, b) {
		return
	}
	lat.adj[ai] = append(lat.adj[ai], b)
	lat.adj[bi] = append(lat.adj[bi], a)
}

func (lat *latticeGraph) AddPath(path ...polyo.Cell) {
	for i, c := range path {
		if i == 0 {
			lat.AddNode(c)
			continue
		}
		lat.AddEdge(path[i-1], c)
	}
}

func (lat *latticeGraph) HasNode(c polyo.Cell) bool {
	_, exists := lat.index[c]
	return exists
}

func (lat *latticeGraph) HasEdge(a, b polyo.Cell) bool {
	idx, exists := lat.index[a]
	if !exists {
		return false
	}
	for _, ni := range lat.adj[idx] {
		if ni == b {
			return true
		}
	}
	return false
}

func (lat *latticeGraph) Neighbors(c polyo.Cell) []polyo.Cell {
	idx, exists := lat.index[c]
	if !exists {
		return nil
	}
	return lat.adj[idx]
}

func (lat *latticeGraph) NumNodes() int {
	return len(lat.adj)
}

func (lat *latticeGraph) Nodes() []polyo.Cell {
	nodes := make([]polyo.Cell, 0, lat.order.Size())
	itr := lat.order.Iterator()
	for itr.Next() {
		nodes = append(nodes, itr.Key().(polyo.Cell))
	}
	return nodes
}
