package libpolyo

import (
	"testing"

	"github.com/2x3systems/polyo/polyo"
	"github.com/pkg/errors"
)

func TestShapeSet(t *testing.T) {
	set := NewShapeSet()
	defer set.Close()

	tryAdd := func(S Shape) bool {
		added, err := set.TryAdd(S)
		if err != nil {
			t.Fatalf("%v: %v", S, err)
		}
		return added
	}

	exprs := []string{
		"(0,0)",
		"(0,0) (1,0)",
		"(0,0) (0,1)",
		"(0,0) (1,0) (1,1)",
	}
	for _, expr := range exprs {
		S, err := ParseShape(expr)
		if err != nil {
			t.Fatal(err)
		}
		if !tryAdd(S) {
			t.Fatalf("%q should have been added", expr)
		}
		if tryAdd(S) {
			t.Fatalf("%q should already be present", expr)
		}
	}

	// A translated copy is the same fixed polyomino
	S, _ := ParseShape("(5,5) (6,5) (6,6)")
	if tryAdd(S) {
		t.Fatal("translated shape should already be present")
	}
	if set.Len() != int64(len(exprs)) {
		t.Fatalf("got %d", set.Len())
	}

	set.Close()
	if set.Len() != 0 || !tryAdd(S) {
		t.Fatal("Close should empty the set")
	}
}

func TestShapeSetRejectsUnencodable(t *testing.T) {
	set := NewShapeSet()
	defer set.Close()

	// Byte truncation would make these collide as (0,0) (44,0) and (0,0) (0,44)
	for _, S := range []Shape{
		NormalizeShape([]polyo.Cell{{X: 0, Y: 0}, {X: 300, Y: 0}}),
		NormalizeShape([]polyo.Cell{{X: 0, Y: 0}, {X: 0, Y: 300}}),
	} {
		added, err := set.TryAdd(S)
		if !errors.Is(err, polyo.ErrBadShapeExpr) || added {
			t.Fatalf("%v: expected ErrBadShapeExpr, got %v (added %v)", S, err, added)
		}
	}
	if set.Len() != 0 {
		t.Fatalf("got %d", set.Len())
	}

	// The widest encodable shape is a straight line of polyo.MaxSizeLimit cells
	line := make([]polyo.Cell, polyo.MaxSizeLimit)
	for i := range line {
		line[i] = polyo.Cell{X: i}
	}
	if added, err := set.TryAdd(NormalizeShape(line)); err != nil || !added {
		t.Fatalf("line of %d: %v (added %v)", len(line), err, added)
	}
}

func TestAuditFixed(t *testing.T) {
	for maxSize := 1; maxSize <= 7; maxSize++ {
		counts, aud, err := AuditFixed(maxSize)
		if err != nil {
			t.Fatalf("maxSize %d: %v", maxSize, err)
		}
		if !counts.IsEqual(polyo.ReferenceCounts(maxSize)) {
			t.Fatalf("maxSize %d: got %v", maxSize, counts)
		}
		if aud.NumDistinct() != counts.Total() {
			t.Fatalf("maxSize %d: %d distinct shapes, %d counted", maxSize, aud.NumDistinct(), counts.Total())
		}
		aud.Close()
	}

	if _, _, err := AuditFixed(0); !errors.Is(err, polyo.ErrBadMaxSize) {
		t.Fatalf("expected ErrBadMaxSize, got %v", err)
	}
}

func TestAuditorFailures(t *testing.T) {
	{
		aud := NewAuditor(3)
		aud.Visit([]polyo.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
		aud.Visit([]polyo.Cell{{X: 4, Y: 2}, {X: 5, Y: 2}})
		if err := aud.Err(); !errors.Is(err, polyo.ErrDuplicateShape) {
			t.Fatalf("expected ErrDuplicateShape, got %v", err)
		}
		if !aud.Tallies().IsEqual(polyo.Counts{0, 1, 0}) {
			t.Fatalf("got %v", aud.Tallies())
		}
		aud.Close()
	}
	{
		aud := NewAuditor(3)
		aud.Visit([]polyo.Cell{{X: 0, Y: 0}, {X: 2, Y: 0}})
		if err := aud.Err(); !errors.Is(err, polyo.ErrDisconnectedShape) {
			t.Fatalf("expected ErrDisconnectedShape, got %v", err)
		}
		aud.Close()
	}
	{
		aud := NewAuditor(1)
		aud.Visit([]polyo.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
		if err := aud.Err(); !errors.Is(err, polyo.ErrBadMaxSize) {
			t.Fatalf("expected ErrBadMaxSize, got %v", err)
		}
		aud.Close()
	}
}
