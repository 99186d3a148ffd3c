package polyo

import "errors"

// Errors
var (
	ErrBadMaxSize        = errors.New("bad maximal polyomino size")
	ErrBadSizeRange      = errors.New("bad polyomino size range")
	ErrStateNotRestored  = errors.New("search state was not restored")
	ErrDuplicateShape    = errors.New("polyomino counted more than once")
	ErrDisconnectedShape = errors.New("polyomino is not edge-connected")
	ErrBadShapeExpr      = errors.New("bad polyomino shape expression")
	ErrNilLattice        = errors.New("nil lattice")
	ErrMissingOrigin     = errors.New("lattice does not contain the origin")
)
