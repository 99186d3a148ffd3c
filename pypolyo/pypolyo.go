package pypolyo

import (
	"github.com/2x3systems/polyo/libpolyo"
	"github.com/2x3systems/polyo/polyo"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2026.1"
)

// Arg 1 (int): maximal polyomino size
func py_count(module py.Object, args py.Tuple) (py.Object, error) {
	maxSize, err := parseMaxSize(args)
	if err != nil {
		return nil, err
	}

	counts, err := libpolyo.CountFixed(maxSize, polyo.CountOpts{})
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return countsTuple(counts), nil
}

// Arg 1 (int): maximal polyomino size
func py_reference(module py.Object, args py.Tuple) (py.Object, error) {
	maxSize, err := parseMaxSize(args)
	if err != nil {
		return nil, err
	}

	counts := polyo.ReferenceCounts(maxSize)
	if counts == nil {
		return nil, py.ExceptionNewf(py.ValueError, "no reference counts for size %d", maxSize)
	}
	return countsTuple(counts), nil
}

// Arg 1 (int): maximal polyomino size
//
// Returns the number of distinct polyominoes seen by an audited count.
func py_audit(module py.Object, args py.Tuple) (py.Object, error) {
	maxSize, err := parseMaxSize(args)
	if err != nil {
		return nil, err
	}

	_, aud, err := libpolyo.AuditFixed(maxSize)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	defer aud.Close()
	return py.Int(aud.NumDistinct()), nil
}

// Arg 1 (str): shape expression, e.g. "(0,0) (1,0)"
//
// Returns the canonic form of the shape as a str.
func py_normalize(module py.Object, args py.Tuple) (py.Object, error) {
	var shapeExpr py.Object
	err := py.ParseTuple(args, "s", &shapeExpr)
	if err != nil {
		return nil, err
	}

	S, err := libpolyo.ParseShape(string(shapeExpr.(py.String)))
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.String(S.String()), nil
}

func parseMaxSize(args py.Tuple) (int, error) {
	var maxSize py.Object
	err := py.ParseTuple(args, "i", &maxSize)
	if err != nil {
		return 0, err
	}
	return int(maxSize.(py.Int)), nil
}

func countsTuple(counts polyo.Counts) py.Tuple {
	tuple := make(py.Tuple, len(counts))
	for i, ci := range counts {
		tuple[i] = py.Int(ci)
	}
	return tuple
}

func init() {
	methods := []*py.Method{
		py.MustNewMethod("count", py_count, 0, "count(n) -> number of fixed polyominoes of each size 1..n"),
		py.MustNewMethod("reference", py_reference, 0, "reference(n) -> known fixed polyomino counts for sizes 1..n"),
		py.MustNewMethod("audit", py_audit, 0, "audit(n) -> number of distinct polyominoes of up to n cells, verified"),
		py.MustNewMethod("normalize", py_normalize, 0, "normalize(expr) -> canonic form of a shape expression"),
	}

	globals := py.StringDict{
		"LIB_VERSION": py.String(LIB_VERSION),
		"MAX_SIZE":    py.Int(polyo.MaxSizeLimit),
	}

	py.RegisterModule(&py.ModuleImpl{
		Info: py.ModuleInfo{
			Name: "_polyo",
			Doc:  "fixed polyomino enumeration gpython module",
		},
		Methods: methods,
		Globals: globals,
	})
}
