package libpolyo

import (
	"github.com/2x3systems/polyo/polyo"
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// ShapeSet is a set of fixed polyominoes, keyed by their canonic Shape.
//
// Shapes that differ only by translation are the same member.
type ShapeSet interface {

	// TryAdd adds S and returns true, or returns false if S is already a member.
	//
	// An error is returned if S is not encodable (see Shape.IsEncodable) or the backing store fails.
	TryAdd(S Shape) (bool, error)

	// Len returns the number of members.
	Len() int64

	// Close releases the backing store and empties this set; a later TryAdd starts a new, empty set.
	Close()
}

// NewShapeSet returns an empty ShapeSet backed by an in-memory badger LSM, opened on first use.
func NewShapeSet() ShapeSet {
	return &shapeSet{}
}

type shapeSet struct {
	db     *badger.DB
	count  int64
	keyBuf []byte
}

func (set *shapeSet) open() error {
	if set.db != nil {
		return nil
	}

	dbOpts := badger.DefaultOptions("").WithInMemory(true)
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	db, err := badger.Open(dbOpts)
	if err != nil {
		return errors.Wrap(err, "opening shape set")
	}
	set.db = db
	return nil
}

func (set *shapeSet) TryAdd(S Shape) (bool, error) {
	if !S.IsEncodable() {
		return false, errors.Wrapf(polyo.ErrBadShapeExpr, "shape %v is too large to encode", S)
	}
	if err := set.open(); err != nil {
		return false, err
	}

	set.keyBuf = S.AppendEncoding(set.keyBuf[:0])

	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(set.keyBuf)
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(append([]byte{}, set.keyBuf...), nil)
	})
	if err != nil {
		return false, errors.Wrapf(err, "adding shape %v", S)
	}

	if added {
		set.count++
	}
	return added, nil
}

func (set *shapeSet) Len() int64 {
	return set.count
}

func (set *shapeSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
	set.count = 0
}

// Auditor checks every polyomino emitted by a Counter: each must be edge-connected and distinct from all others.
//
// Auditor.Visit is a polyo.ShapeVisitor; pass it via polyo.CountOpts.OnShape.  Like the Counter that calls it,
// an Auditor is not safe for concurrent use.
type Auditor struct {
	set     ShapeSet
	tallies polyo.Counts
	err     error
}

// NewAuditor returns an Auditor for polyominoes of up to maxSize cells.
func NewAuditor(maxSize int) *Auditor {
	return &Auditor{
		set:     NewShapeSet(),
		tallies: make(polyo.Counts, maxSize),
	}
}

// Visit audits the given polyomino.
func (aud *Auditor) Visit(cells []polyo.Cell) {
	S := NormalizeShape(cells)
	n := S.NumCells()
	if n < 1 || n > len(aud.tallies) {
		aud.setErr(errors.Wrapf(polyo.ErrBadMaxSize, "shape %v has %d cells", S, n))
		return
	}
	if !S.IsConnected() {
		aud.setErr(errors.Wrapf(polyo.ErrDisconnectedShape, "shape %v", S))
		return
	}
	added, err := aud.set.TryAdd(S)
	if err != nil {
		aud.setErr(err)
		return
	}
	if !added {
		aud.setErr(errors.Wrapf(polyo.ErrDuplicateShape, "shape %v", S))
		return
	}
	aud.tallies[n-1]++
}

func (aud *Auditor) setErr(err error) {
	klog.Warningf("audit: %v", err)
	if aud.err == nil {
		aud.err = err
	}
}

// Tallies returns the number of distinct polyominoes seen, by size.
func (aud *Auditor) Tallies() polyo.Counts {
	return append(polyo.Counts{}, aud.tallies...)
}

// NumDistinct returns the number of distinct polyominoes seen.
func (aud *Auditor) NumDistinct() int64 {
	return aud.set.Len()
}

// Err returns the first failure seen, if any.
func (aud *Auditor) Err() error {
	return aud.err
}

// Close releases the Auditor's shape set.
func (aud *Auditor) Close() {
	aud.set.Close()
}

// AuditFixed counts polyominoes up to maxSize while auditing every shape emitted,
// and verifies the distinct shape tallies agree with the returned counts.
func AuditFixed(maxSize int) (polyo.Counts, *Auditor, error) {
	if err := checkMaxSize(maxSize); err != nil {
		return nil, nil, err
	}

	aud := NewAuditor(maxSize)
	counts, err := CountFixed(maxSize, polyo.CountOpts{
		CheckRestore: true,
		OnShape:      aud.Visit,
	})
	if err == nil {
		err = aud.Err()
	}
	if err == nil && !counts.IsEqual(aud.Tallies()) {
		err = errors.Wrapf(polyo.ErrDuplicateShape, "counted %v but found %v distinct", counts, aud.Tallies())
	}
	if err != nil {
		aud.Close()
		return nil, nil, err
	}
	return counts, aud, nil
}
