package libpolyo

import "github.com/2x3systems/polyo/polyo"

// cellStack is a LIFO of cells where every push is undone by a matching pop or truncate.
type cellStack struct {
	cells []polyo.Cell
}

func (stk *cellStack) Len() int {
	return len(stk.cells)
}

func (stk *cellStack) At(i int) polyo.Cell {
	return stk.cells[i]
}

func (stk *cellStack) Push(c polyo.Cell) {
	stk.cells = append(stk.cells, c)
}

func (stk *cellStack) Pop() polyo.Cell {
	N := len(stk.cells) - 1
	c := stk.cells[N]
	stk.cells = stk.cells[:N]
	return c
}

func (stk *cellStack) Top() (polyo.Cell, bool) {
	N := len(stk.cells)
	if N == 0 {
		return polyo.Cell{}, false
	}
	return stk.cells[N-1], true
}

// Truncate pops every cell above the given height.
func (stk *cellStack) Truncate(height int) {
	stk.cells = stk.cells[:height]
}

// Snapshot appends the current contents to dst.
func (stk *cellStack) Snapshot(dst []polyo.Cell) []polyo.Cell {
	return append(dst[:0], stk.cells...)
}

func (stk *cellStack) Matches(snapshot []polyo.Cell) bool {
	if len(snapshot) != len(stk.cells) {
		return false
	}
	for i, c := range snapshot {
		if stk.cells[i] != c {
			return false
		}
	}
	return true
}
