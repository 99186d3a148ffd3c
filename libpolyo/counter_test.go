package libpolyo_test

import (
	"testing"

	"github.com/2x3systems/polyo/libpolyo"
	"github.com/2x3systems/polyo/polyo"
	"github.com/pkg/errors"
)

var gT *testing.T

func TestCountFixed(t *testing.T) {
	gT = t
	for maxSize := 1; maxSize <= 10; maxSize++ {
		checkCounts(maxSize, polyo.CountOpts{
			CheckRestore: maxSize <= 8,
		})
	}
}

func checkCounts(maxSize int, opts polyo.CountOpts) polyo.Counts {
	counts, err := libpolyo.CountFixed(maxSize, opts)
	if err != nil {
		gT.Fatalf("maxSize %d: %v", maxSize, err)
	}
	if want := polyo.ReferenceCounts(maxSize); !counts.IsEqual(want) {
		gT.Fatalf("maxSize %d: should be:\n    %v\ngot:\n    %v", maxSize, want, counts)
	}
	if !counts.IsNonDecreasing() {
		gT.Fatalf("maxSize %d: counts decrease: %v", maxSize, counts)
	}
	return counts
}

func TestCountScenarios(t *testing.T) {
	scenarios := []struct {
		maxSize int
		counts  polyo.Counts
	}{
		{1, polyo.Counts{1}},
		{2, polyo.Counts{1, 2}},
		{4, polyo.Counts{1, 2, 6, 19}},
		{8, polyo.Counts{1, 2, 6, 19, 63, 216, 760, 2725}},
	}
	for _, sc := range scenarios {
		counts, err := libpolyo.CountFixed(sc.maxSize, polyo.CountOpts{})
		if err != nil {
			t.Fatal(err)
		}
		if !counts.IsEqual(sc.counts) {
			t.Fatalf("maxSize %d: got %v, expected %v", sc.maxSize, counts, sc.counts)
		}
	}
}

func TestCountIdempotent(t *testing.T) {
	first, err := libpolyo.CountFixed(7, polyo.CountOpts{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := libpolyo.CountFixed(7, polyo.CountOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if !first.IsEqual(second) {
		t.Fatalf("%v != %v", first, second)
	}

	// Reusing a Counter must give the same result and leave no state behind
	ctr, err := libpolyo.NewCounter(libpolyo.BuildLattice(7), 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		counts, err := ctr.Count(polyo.CountOpts{CheckRestore: true})
		if err != nil {
			t.Fatal(err)
		}
		if !counts.IsEqual(first) {
			t.Fatalf("pass %d: got %v, expected %v", i, counts, first)
		}
		if len(ctr.Added()) != 0 || len(ctr.Untried()) != 0 {
			t.Fatalf("pass %d: leftover state: added %v, untried %v", i, ctr.Added(), ctr.Untried())
		}
	}
}

func TestCountOverLargerLattice(t *testing.T) {
	lat := libpolyo.BuildLattice(9)
	for maxSize := 1; maxSize <= 6; maxSize++ {
		ctr, err := libpolyo.NewCounter(lat, maxSize)
		if err != nil {
			t.Fatal(err)
		}
		counts, err := ctr.Count(polyo.CountOpts{})
		if err != nil {
			t.Fatal(err)
		}
		if !counts.IsEqual(polyo.ReferenceCounts(maxSize)) {
			t.Fatalf("maxSize %d: got %v", maxSize, counts)
		}
	}
}

func TestCountVisitsEveryShape(t *testing.T) {
	visits := make(polyo.Counts, 6)
	counts, err := libpolyo.CountFixed(6, polyo.CountOpts{
		OnShape: func(shape []polyo.Cell) {
			visits[len(shape)-1]++
			if shape[0] != polyo.Origin {
				t.Errorf("shape %v is not rooted at the origin", shape)
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !visits.IsEqual(counts) {
		t.Fatalf("visited %v, counted %v", visits, counts)
	}
}

func TestCountBadArgs(t *testing.T) {
	for _, maxSize := range []int{0, -1, polyo.MaxSizeLimit + 1} {
		if _, err := libpolyo.CountFixed(maxSize, polyo.CountOpts{}); !errors.Is(err, polyo.ErrBadMaxSize) {
			t.Fatalf("maxSize %d: expected ErrBadMaxSize, got %v", maxSize, err)
		}
	}
	if _, err := libpolyo.NewCounter(nil, 3); !errors.Is(err, polyo.ErrNilLattice) {
		t.Fatalf("expected ErrNilLattice, got %v", err)
	}

	ctr, err := libpolyo.NewCounter(libpolyo.NewLattice(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ctr.Count(polyo.CountOpts{}); !errors.Is(err, polyo.ErrMissingOrigin) {
		t.Fatalf("expected ErrMissingOrigin, got %v", err)
	}
}

func TestCheckRestoreDetectsCorruption(t *testing.T) {
	ctr, err := libpolyo.NewCounter(libpolyo.BuildLattice(4), 4)
	if err != nil {
		t.Fatal(err)
	}

	corrupted := false
	_, err = ctr.Count(polyo.CountOpts{
		CheckRestore: true,
		OnShape: func(shape []polyo.Cell) {
			if !corrupted && len(shape) == 2 {
				shape[1] = polyo.Cell{X: 99, Y: 99}
				corrupted = true
			}
		},
	})
	if !errors.Is(err, polyo.ErrStateNotRestored) {
		t.Fatalf("expected ErrStateNotRestored, got %v", err)
	}

	// A failed count must not poison the next one
	counts, err := ctr.Count(polyo.CountOpts{CheckRestore: true})
	if err != nil {
		t.Fatal(err)
	}
	if !counts.IsEqual(polyo.Counts{1, 2, 6, 19}) {
		t.Fatalf("got %v", counts)
	}
}
