package animation

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tween interpolates between Begin and End values based on animation
// progress. It maps the 0-1 eased value delivered by an [Animation] to
// any value range or type. Use the helper constructors ([TweenFloat64],
// [TweenColor]) for common types, or build custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the
	// begin value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor blends two colors in RGB space.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for color values.
func TweenColor(begin, end colorful.Color) *Tween[colorful.Color] {
	return &Tween[colorful.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
