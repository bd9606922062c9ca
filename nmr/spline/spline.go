package spline

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSizeMismatch is returned when x and y differ in length.
var ErrSizeMismatch = errors.New("spline: x and y length mismatch")

// ErrTooFewPoints is returned for fewer than 2 data points.
var ErrTooFewPoints = errors.New("spline: need at least 2 data points")

// ErrNotIncreasing is returned when x is not strictly increasing.
var ErrNotIncreasing = errors.New("spline: x values must be strictly increasing")

const (
	// CrossingSamples is the number of equally spaced probes FindCrossings
	// places across its search range before bisection refinement. Crossings
	// narrower than one probe interval can be missed.
	CrossingSamples = 1000

	// BisectionIterations bounds the refinement loop per sign-change bracket.
	BisectionIterations = 50

	crossingValueTol   = 1e-8
	crossingBracketTol = 1e-10
)

// Spline is a natural cubic spline over a sampled curve. The zero value is
// an empty, not-computed spline; queries on it return 0.
type Spline struct {
	x, y []float64

	// Per-interval polynomial coefficients. Interval i covers
	// [x[i], x[i+1]] with S_i(v) = y[i] + b[i]*dx + c[i]*dx^2 + d[i]*dx^3,
	// dx = v - x[i]. The last slot mirrors the previous interval.
	b, c, d []float64

	computed bool
}

// New creates an empty spline.
func New() *Spline {
	return &Spline{}
}

// Computed reports whether the spline holds valid coefficients. Evaluate,
// EvaluateDerivative and FindCrossings return neutral zero results until
// Compute has succeeded; callers that must distinguish "zero" from "not
// ready" check this first.
func (s *Spline) Computed() bool {
	return s.computed
}

// Compute fits a natural cubic spline through the given points. x must be
// strictly increasing and match y in length; on a validation error the
// spline is left not computed. Two points reduce to linear interpolation.
// For n >= 3 points the interior second derivatives are obtained from the
// standard tridiagonal system with zero second derivative at both endpoints.
func (s *Spline) Compute(x, y []float64) error {
	if err := validate(x, y); err != nil {
		s.computed = false
		return err
	}

	n := len(x)
	s.x = append(s.x[:0], x...)
	s.y = append(s.y[:0], y...)
	s.b = make([]float64, n)
	s.c = make([]float64, n)
	s.d = make([]float64, n)

	if n == 2 {
		slope := (y[1] - y[0]) / (x[1] - x[0])
		s.b[0] = slope
		s.b[1] = slope
		s.computed = true

		return nil
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	m, err := solveSecondDerivatives(h, y)
	if err != nil {
		s.computed = false
		return err
	}

	for i := 0; i < n-1; i++ {
		s.d[i] = (m[i+1] - m[i]) / (6 * h[i])
		s.c[i] = m[i] / 2
		s.b[i] = (y[i+1]-y[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6
	}

	// Mirror the last interval so the final node carries usable
	// coefficients.
	s.b[n-1] = s.b[n-2]
	s.c[n-1] = s.c[n-2]
	s.d[n-1] = s.d[n-2]

	s.computed = true

	return nil
}

func validate(x, y []float64) error {
	if len(x) != len(y) {
		return ErrSizeMismatch
	}

	if len(x) < 2 {
		return ErrTooFewPoints
	}

	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return ErrNotIncreasing
		}
	}

	return nil
}

// solveSecondDerivatives solves the natural-spline tridiagonal system for
// the interior second derivatives and returns the full vector including the
// zero boundary values.
func solveSecondDerivatives(h, y []float64) ([]float64, error) {
	n := len(y)
	m := n - 2

	a := mat.NewDense(m, m, nil)
	rhs := mat.NewVecDense(m, nil)

	for i := 0; i < m; i++ {
		if i > 0 {
			a.Set(i, i-1, h[i])
		}

		a.Set(i, i, 2*(h[i]+h[i+1]))

		if i < m-1 {
			a.Set(i, i+1, h[i+1])
		}

		rhs.SetVec(i, 6*((y[i+2]-y[i+1])/h[i+1]-(y[i+1]-y[i])/h[i]))
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, rhs); err != nil {
		return nil, fmt.Errorf("spline: solve tridiagonal system: %w", err)
	}

	full := make([]float64, n)
	for i := 0; i < m; i++ {
		full[i+1] = sol.AtVec(i)
	}

	return full, nil
}

// Evaluate returns the spline value at xv, or 0 when not computed.
// Positions outside the sampled range use the boundary interval's
// polynomial.
func (s *Spline) Evaluate(xv float64) float64 {
	if !s.computed || len(s.x) == 0 {
		return 0
	}

	i := s.interval(xv)
	dx := xv - s.x[i]

	return s.y[i] + dx*(s.b[i]+dx*(s.c[i]+dx*s.d[i]))
}

// EvaluateDerivative returns the first derivative at xv, or 0 when not
// computed.
func (s *Spline) EvaluateDerivative(xv float64) float64 {
	if !s.computed || len(s.x) == 0 {
		return 0
	}

	i := s.interval(xv)
	dx := xv - s.x[i]

	return s.b[i] + dx*(2*s.c[i]+dx*3*s.d[i])
}

// interval finds the index of the interval containing xv by binary search.
// Out-of-range positions map to the boundary intervals.
func (s *Spline) interval(xv float64) int {
	n := len(s.x)

	if xv <= s.x[0] {
		return 0
	}

	if xv >= s.x[n-1] {
		return n - 2
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xv < s.x[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo
}

// FindCrossings returns the x positions in [xMin, xMax] where the spline
// equals targetY, in ascending order. The range is probed at
// CrossingSamples equally spaced points; each sign change is refined by
// bisection. Returns nil when the spline is not computed.
func (s *Spline) FindCrossings(targetY, xMin, xMax float64) []float64 {
	if !s.computed || len(s.x) == 0 {
		return nil
	}

	var crossings []float64

	step := (xMax - xMin) / CrossingSamples
	prevX := xMin
	prevVal := s.Evaluate(xMin) - targetY

	for i := 1; i <= CrossingSamples; i++ {
		currX := xMin + float64(i)*step
		currVal := s.Evaluate(currX) - targetY

		if prevVal*currVal < 0 {
			crossings = append(crossings, s.bisect(targetY, prevX, currX, prevVal))
		}

		prevX = currX
		prevVal = currVal
	}

	return crossings
}

// bisect refines a crossing inside a sign-change bracket. It stops early
// when the residual or the bracket width is small enough, otherwise it
// returns the bracket midpoint after the iteration budget.
func (s *Spline) bisect(targetY, lo, hi, fLo float64) float64 {
	for it := 0; it < BisectionIterations; it++ {
		mid := (lo + hi) / 2
		fMid := s.Evaluate(mid) - targetY

		if math.Abs(fMid) < crossingValueTol || math.Abs(hi-lo) < crossingBracketTol {
			return mid
		}

		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}

	return (lo + hi) / 2
}
