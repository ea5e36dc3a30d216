package animation

import (
	"math"

	"github.com/go-drift/motion/pkg/errors"
)

// lutSize is the x-axis resolution of a Bezier lookup table. The table
// holds lutSize+1 samples at uniformly spaced x positions in [0, 1].
const lutSize = 600

// fractions is the number of parametric sample intervals taken along the
// true curve before re-resampling onto the uniform x grid.
const fractions = 600

// ControlPoint is one control point of a Bezier curve.
type ControlPoint struct {
	X, Y float64
}

// Bezier evaluates an N-point Bezier curve through a precomputed lookup
// table, built once at construction and immutable thereafter. Evaluation
// is a single table read.
type Bezier struct {
	table [lutSize + 1]float64
}

// NewBezier builds the lookup table for the curve through the given
// control points. At least two points are required. The first and last
// points are typically anchored at (0,0) and (1,1) so the curve maps the
// full progress range.
//
// The table is built in two passes: the Bernstein form of the curve is
// sampled at fractions+1 uniform parameter values, then those samples
// are walked from t=1 down to t=0, writing linearly interpolated y
// values into every grid cell each segment spans. Where the control
// polygon makes x(t) double back, the lowest-t crossing is written last
// and wins. Custom polygons with loops in x(t) are resolved by that same
// overwrite order, which is deliberate but otherwise unspecified.
func NewBezier(points []ControlPoint) (*Bezier, error) {
	if len(points) < 2 {
		return nil, errors.New("animation.NewBezier", errors.KindCurve,
			"need at least 2 control points, got %d", len(points))
	}

	n := len(points) - 1
	binom := binomialRow(n)

	type sample struct{ x, y float64 }
	samples := make([]sample, fractions+1)
	for k := 0; k <= fractions; k++ {
		t := float64(k) / fractions
		var x, y float64
		for i, p := range points {
			w := binom[i] * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
			x += w * p.X
			y += w * p.Y
		}
		samples[k] = sample{x: x, y: y}
	}

	b := &Bezier{}
	for k := fractions; k > 0; k-- {
		hi := samples[k]
		lo := samples[k-1]
		i0 := gridIndex(hi.x)
		i1 := gridIndex(lo.x)
		step := 1
		if i1 < i0 {
			step = -1
		}
		for j := i0; ; j += step {
			f := 0.0
			if i1 != i0 {
				f = float64(j-i0) / float64(i1-i0)
			}
			b.table[j] = hi.y + (lo.y-hi.y)*f
			if j == i1 {
				break
			}
		}
	}
	return b, nil
}

// Evaluate returns the table entry nearest x. Inputs outside [0, 1]
// clamp to the table bounds. No interpolation is performed at query
// time; the error bound is the 1/lutSize x resolution of the table.
func (b *Bezier) Evaluate(x float64) float64 {
	return b.table[gridIndex(x)]
}

// gridIndex maps an x position to its lookup table index.
func gridIndex(x float64) int {
	i := int(math.Round(x * lutSize))
	if i < 0 {
		return 0
	}
	if i > lutSize {
		return lutSize
	}
	return i
}

// binomialRow returns the coefficients C(n, 0) .. C(n, n).
func binomialRow(n int) []float64 {
	row := make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		row[i] = row[i-1] * float64(n-i+1) / float64(i)
	}
	return row
}
