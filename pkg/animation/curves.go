package animation

// Easing curves transform linear animation progress into natural-feeling
// motion.
//
// A curve maps a progress value x in [0, 1] to an eased output value.
// The standard CSS timing functions are available as package variables:
// [Linear], [EaseIn], [EaseOut], [EaseInOut]. Use [CubicBezier] or
// [NewBezier] to build custom curves.

// Curve maps a normalized progress value in [0, 1] to an eased value.
type Curve interface {
	Evaluate(x float64) float64
}

// Point is a curve with a constant output regardless of input.
type Point struct {
	// Y is the fixed output value.
	Y float64
}

// Evaluate returns the fixed output value.
func (p Point) Evaluate(float64) float64 { return p.Y }

// Line is a linear curve through two endpoints.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Evaluate linearly interpolates x along the line. A degenerate line
// (X1 == X2) always evaluates to Y2.
func (l Line) Evaluate(x float64) float64 {
	if l.X1 == l.X2 {
		return l.Y2
	}
	return l.Y1 + (x-l.X1)*(l.Y2-l.Y1)/(l.X2-l.X1)
}

// Linear is the identity curve (no easing).
var Linear Curve = Line{X1: 0, Y1: 0, X2: 1, Y2: 1}

// EaseIn starts slowly and accelerates.
// Equivalent to CSS ease-in, cubic-bezier(0.42, 0, 1, 1).
var EaseIn = mustBezier(0.42, 0, 1, 1)

// EaseOut starts quickly and decelerates.
// Equivalent to CSS ease-out, cubic-bezier(0, 0, 0.58, 1).
var EaseOut = mustBezier(0, 0, 0.58, 1)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out, cubic-bezier(0.42, 0, 0.58, 1).
var EaseInOut = mustBezier(0.42, 0, 0.58, 1)

// CubicBezier builds a four-point Bezier curve matching CSS
// cubic-bezier(). The parameters are the two inner control points; the
// curve is anchored at (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) (*Bezier, error) {
	return NewBezier([]ControlPoint{
		{X: 0, Y: 0},
		{X: x1, Y: y1},
		{X: x2, Y: y2},
		{X: 1, Y: 1},
	})
}

func mustBezier(x1, y1, x2, y2 float64) *Bezier {
	b, err := CubicBezier(x1, y1, x2, y2)
	if err != nil {
		panic(err)
	}
	return b
}
