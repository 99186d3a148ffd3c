package libpolyo

import (
	"github.com/2x3systems/polyo/polyo"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// ShapeExpr is a list of cells, e.g. "(0,0) (1,0) (-1,1)"
type ShapeExpr struct {
	Cells []*CellExpr `parser:"@@*"`
}

type CellExpr struct {
	XSign string `parser:"\"(\" @\"-\"?"`
	X     int    `parser:"@Int \",\""`
	YSign string `parser:"@\"-\"?"`
	Y     int    `parser:"@Int \")\""`
}

// SizeRangeExpr is either a single maximal size ("8") or an inclusive range of sizes ("3..8").
type SizeRangeExpr struct {
	Lo int  `parser:"@Int"`
	Hi *int `parser:"( \"..\" @Int )?"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Punct", Pattern: `[-(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	parseShapeExpr     = participle.MustBuild[ShapeExpr](participle.Lexer(exprLexer), participle.Elide("Whitespace"))
	parseSizeRangeExpr = participle.MustBuild[SizeRangeExpr](participle.Lexer(exprLexer), participle.Elide("Whitespace"))
)

func (expr *CellExpr) Cell() polyo.Cell {
	c := polyo.Cell{X: expr.X, Y: expr.Y}
	if expr.XSign == "-" {
		c.X = -c.X
	}
	if expr.YSign == "-" {
		c.Y = -c.Y
	}
	return c
}

// ParseShape reads a list of cells and returns its canonic Shape.
//
// The cells must be distinct but need not be connected; see Shape.IsConnected.
func ParseShape(shapeExpr string) (Shape, error) {
	expr, err := parseShapeExpr.ParseString("", shapeExpr)
	if err != nil {
		return nil, errors.Wrap(polyo.ErrBadShapeExpr, err.Error())
	}
	if len(expr.Cells) == 0 {
		return nil, errors.Wrap(polyo.ErrBadShapeExpr, "no cells")
	}
	if len(expr.Cells) > polyo.MaxSizeLimit {
		return nil, errors.Wrapf(polyo.ErrBadShapeExpr, "more than %d cells", polyo.MaxSizeLimit)
	}

	cells := make([]polyo.Cell, 0, len(expr.Cells))
	seen := make(map[polyo.Cell]struct{}, len(expr.Cells))
	for _, ci := range expr.Cells {
		c := ci.Cell()
		if _, dupe := seen[c]; dupe {
			return nil, errors.Wrapf(polyo.ErrBadShapeExpr, "cell %v appears more than once", c)
		}
		seen[c] = struct{}{}
		cells = append(cells, c)
	}

	S := NormalizeShape(cells)
	if !S.IsEncodable() {
		width, height := S.Span()
		return nil, errors.Wrapf(polyo.ErrBadShapeExpr, "spans %dx%d cells, exceeding %d", width, height, polyo.MaxSizeLimit)
	}
	return S, nil
}

// ParseSizeRange reads "N" or "lo..hi" and returns the inclusive range of polyomino sizes it denotes ("N" denotes 1..N).
func ParseSizeRange(sizeExpr string) (lo, hi int, err error) {
	expr, err := parseSizeRangeExpr.ParseString("", sizeExpr)
	if err != nil {
		return 0, 0, errors.Wrap(polyo.ErrBadSizeRange, err.Error())
	}

	if expr.Hi == nil {
		lo, hi = 1, expr.Lo
	} else {
		lo, hi = expr.Lo, *expr.Hi
	}

	if lo < 1 || hi < lo || hi > polyo.MaxSizeLimit {
		return 0, 0, errors.Wrapf(polyo.ErrBadSizeRange, "%q must lie within 1..%d", sizeExpr, polyo.MaxSizeLimit)
	}
	return lo, hi, nil
}
