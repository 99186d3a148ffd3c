package libpolyo

import (
	"strings"
	"time"

	"github.com/2x3systems/polyo/polyo"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// CountFixed counts the fixed polyominoes of every size from 1 to maxSize using Redelmeier's algorithm.
//
// The returned Counts has length maxSize, where Counts[i] is the number of polyominoes with i+1 cells.
func CountFixed(maxSize int, opts polyo.CountOpts) (polyo.Counts, error) {
	if err := checkMaxSize(maxSize); err != nil {
		return nil, err
	}
	ctr, err := NewCounter(BuildLattice(maxSize), maxSize)
	if err != nil {
		return nil, err
	}
	return ctr.Count(opts)
}

func checkMaxSize(maxSize int) error {
	if maxSize < 1 || maxSize > polyo.MaxSizeLimit {
		return errors.Wrapf(polyo.ErrBadMaxSize, "maximal size must be in 1..%d (got %d)", polyo.MaxSizeLimit, maxSize)
	}
	return nil
}

// Counter enumerates polyominoes over a read-only lattice.
//
// The untried queue and the added stack are shared by every frame of the search.  A frame consumes
// the queue by advancing its own cursor, so entries below a frame's cursor are never touched, and
// every cell a frame appends or pushes is removed before that frame's iteration completes.
//
// A Counter is not safe for concurrent use, but many Counters can share one lattice.
type Counter struct {
	lat     polyo.Lattice
	maxSize int
	opts    polyo.CountOpts
	err     error

	untried cellStack           // frontier cells not yet decided
	added   cellStack           // cells of the polyomino being grown
	inShape map[polyo.Cell]bool // membership of added
	scratch []polyo.Counts      // per-depth count vectors
}

// NewCounter returns a Counter for polyominoes of up to maxSize cells over the given lattice.
//
// The lattice is expected to come from BuildLattice(n) for some n >= maxSize.
func NewCounter(lat polyo.Lattice, maxSize int) (*Counter, error) {
	if lat == nil {
		return nil, polyo.ErrNilLattice
	}
	if err := checkMaxSize(maxSize); err != nil {
		return nil, err
	}

	ctr := &Counter{
		lat:     lat,
		maxSize: maxSize,
		inShape: make(map[polyo.Cell]bool, maxSize),
		scratch: make([]polyo.Counts, maxSize),
	}
	ctr.untried.cells = make([]polyo.Cell, 0, 4*maxSize)
	ctr.added.cells = make([]polyo.Cell, 0, maxSize)
	for i := range ctr.scratch {
		ctr.scratch[i] = make(polyo.Counts, maxSize)
	}
	return ctr, nil
}

// MaxSize returns the largest polyomino size this Counter counts.
func (ctr *Counter) MaxSize() int {
	return ctr.maxSize
}

// Added returns the cells of the polyomino currently being grown (empty when no count is in progress).
func (ctr *Counter) Added() []polyo.Cell {
	return ctr.added.cells
}

// Untried returns the current untried queue (empty when no count is in progress).
func (ctr *Counter) Untried() []polyo.Cell {
	return ctr.untried.cells
}

// Count runs a full enumeration seeded at the origin and returns the number of polyominoes of each size.
func (ctr *Counter) Count(opts polyo.CountOpts) (polyo.Counts, error) {
	if ctr.untried.Len() != 0 || ctr.added.Len() != 0 {
		return nil, errors.Wrap(polyo.ErrStateNotRestored, "counter has leftover state from a previous count")
	}
	if !ctr.lat.HasNode(polyo.Origin) {
		return nil, polyo.ErrMissingOrigin
	}

	ctr.opts = opts
	ctr.err = nil

	startTime := time.Now()
	klog.V(2).Infof("counting fixed polyominoes up to size %d over %d lattice cells", ctr.maxSize, ctr.lat.NumNodes())
	if klog.V(3) {
		b := strings.Builder{}
		WriteLattice(&b, ctr.lat)
		klog.Infof("lattice:\n%s", b.String())
	}

	ctr.untried.Push(polyo.Origin)
	counts := append(polyo.Counts{}, ctr.countFrom(0, 0)...)
	ctr.untried.Truncate(0)

	if ctr.err != nil {
		ctr.added.Truncate(0)
		for c := range ctr.inShape {
			delete(ctr.inShape, c)
		}
		return nil, ctr.err
	}

	klog.V(2).Infof("counted %d fixed polyominoes up to size %d in %v", counts.Total(), ctr.maxSize, time.Since(startTime))
	return counts, nil
}

// countFrom consumes the untried queue from the given cursor to its current end, extending the polyomino by
// each cell in turn, and returns the number of polyominoes found, indexed by size - 1.
//
// The returned vector is scratch storage owned by this depth; it is only valid until the next call at this depth.
func (ctr *Counter) countFrom(depth, head int) polyo.Counts {
	counts := ctr.scratch[depth]
	for i := range counts {
		counts[i] = 0
	}

	var (
		untriedBefore []polyo.Cell
		addedBefore   []polyo.Cell
	)

	for cursor := head; cursor < ctr.untried.Len() && ctr.err == nil; cursor++ {
		if depth == 0 && ctr.opts.CheckRestore {
			untriedBefore = ctr.untried.Snapshot(untriedBefore)
			addedBefore = ctr.added.Snapshot(addedBefore)
		}

		c := ctr.untried.At(cursor)
		prior := ctr.added.Len()

		committed := false
		if !ctr.inShape[c] {
			ctr.added.Push(c)
			ctr.inShape[c] = true
			committed = true
			counts[depth]++
			if ctr.opts.OnShape != nil {
				ctr.opts.OnShape(ctr.added.cells)
			}
		}

		if depth+1 < ctr.maxSize {
			mark := ctr.untried.Len()
			for _, n := range ctr.lat.Neighbors(c) {
				if ctr.isClearOf(n, ctr.added.cells[:prior]) {
					ctr.untried.Push(n)
				}
			}
			height := ctr.untried.Len()

			counts.Add(ctr.countFrom(depth+1, cursor+1))

			if ctr.opts.CheckRestore && ctr.untried.Len() != height {
				ctr.fail(depth, "untried queue height %d after recursion, expected %d", ctr.untried.Len(), height)
			}
			ctr.untried.Truncate(mark)
		}

		if committed {
			if ctr.opts.CheckRestore {
				if top, _ := ctr.added.Top(); top != c || ctr.added.Len() != prior+1 {
					ctr.fail(depth, "added stack top is %v at height %d, expected %v at height %d", top, ctr.added.Len(), c, prior+1)
				}
			}
			delete(ctr.inShape, ctr.added.Pop())
		}

		if depth == 0 && ctr.opts.CheckRestore {
			if !ctr.untried.Matches(untriedBefore) {
				ctr.fail(depth, "untried queue changed across iteration for %v", c)
			} else if !ctr.added.Matches(addedBefore) {
				ctr.fail(depth, "added stack changed across iteration for %v", c)
			}
		}
	}

	return counts
}

// isClearOf reports if n may join the untried queue: it must not be, nor border, any cell already fixed in the polyomino.
func (ctr *Counter) isClearOf(n polyo.Cell, fixed []polyo.Cell) bool {
	for _, cell := range fixed {
		if n == cell || ctr.lat.HasEdge(n, cell) {
			return false
		}
	}
	return true
}

func (ctr *Counter) fail(depth int, format string, args ...interface{}) {
	if ctr.err != nil {
		return
	}
	ctr.err = errors.Wrapf(polyo.ErrStateNotRestored, "depth %d: "+format, append([]interface{}{depth}, args...)...)
	klog.Warningf("%v", ctr.err)
}
