package rose

import (
	"math"

	"honnef.co/go/curve"
)

// Default curve parameters.
const (
	DefaultK      = 7
	DefaultA      = 1.0
	DefaultPoints = 3000
)

// viewMargin is the space left around the rose in curve units.
const viewMargin = 0.1

// Params describes a rose curve r = A·cos(K·θ) sampled at Points
// uniformly spaced values of θ over [0, 2π].
//
// Params are not validated: degenerate values produce degenerate
// geometry (A = 0 collapses to the origin, K = 0 is a circle of radius A).
type Params struct {
	K      int     // petal multiplier
	A      float64 // scale
	Points int     // sampling resolution
}

// DefaultParams returns the parameters of a seven petal unit rose.
func DefaultParams() Params {
	return Params{K: DefaultK, A: DefaultA, Points: DefaultPoints}
}

// Extent returns the half-width of a square viewport that frames the whole
// curve with a small margin.
func (p Params) Extent() float64 {
	a := math.Abs(p.A)
	if math.IsNaN(a) || math.IsInf(a, 0) {
		a = DefaultA
	}
	return a + viewMargin
}

// Radius returns r(θ) = A·cos(K·θ). The value is negative on the half
// of each cycle where the point is reflected through the origin.
func (p Params) Radius(theta float64) float64 {
	return p.A * math.Cos(float64(p.K)*theta)
}

// At returns the point of the curve at parameter θ.
func (p Params) At(theta float64) curve.Point {
	r := p.Radius(theta)
	return curve.Pt(r*math.Cos(theta), r*math.Sin(theta))
}

// Theta returns the parameter of sample i out of n over [0, 2π].
// The last sample is exactly 2π.
func Theta(i, n int) float64 {
	if n <= 1 || i <= 0 {
		return 0
	}
	if i >= n-1 {
		return 2 * math.Pi
	}
	return float64(i) * (2 * math.Pi / float64(n-1))
}

// Sample computes the ordered point sequence of the curve described by p.
//
// The result has max(p.Points, 0) elements. A single point is sampled
// at θ = 0. Non-finite parameters propagate into the coordinates.
func Sample(p Params) []curve.Point {
	n := max(p.Points, 0)
	pts := make([]curve.Point, n)
	for i := range pts {
		pts[i] = p.At(Theta(i, n))
	}
	return pts
}

// PetalCount returns the number of visually distinct petals of a rose
// with multiplier k: k when k is odd, 2k when k is even. A rose with
// k = 0 is a circle and has no petals.
func PetalCount(k int) int {
	k = absInt(k)
	if k%2 == 1 {
		return k
	}
	return 2 * k
}

// SymmetryAngle returns the smallest rotation that maps the rose onto
// itself: 2π/k for odd k, π/k for even k. It returns 0 for k = 0,
// whose circle is invariant under every rotation.
func SymmetryAngle(k int) float64 {
	n := PetalCount(k)
	if n == 0 {
		return 0
	}
	return 2 * math.Pi / float64(n)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
