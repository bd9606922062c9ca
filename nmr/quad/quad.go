package quad

import (
	"errors"
	"math"
)

// ErrNotComputed is returned when the model has no valid coefficients.
var ErrNotComputed = errors.New("quad: model not computed")

// ErrUnknownMethod is returned for an unrecognized method selector.
var ErrUnknownMethod = errors.New("quad: unknown integration method")

// Model is the curve surface the engine integrates. A spline satisfies it.
type Model interface {
	// Evaluate returns the curve value at x.
	Evaluate(x float64) float64
	// Computed reports whether the curve is ready for queries.
	Computed() bool
}

// Method selects a quadrature algorithm. The numeric values are part of
// the analysis configuration format.
type Method int

// Available integration methods.
const (
	MethodNewtonCotes Method = iota
	MethodRomberg
	MethodAdaptive
	MethodGaussLegendre
)

// String returns the method's display name.
func (m Method) String() string {
	switch m {
	case MethodNewtonCotes:
		return "Newton-Cotes"
	case MethodRomberg:
		return "Romberg"
	case MethodAdaptive:
		return "Adaptive Quadrature"
	case MethodGaussLegendre:
		return "Gauss-Legendre Quadrature"
	default:
		return "Unknown"
	}
}

// Integrate computes the definite integral of m over [a, b] with the
// selected method. tolerance is ignored by the fixed Gauss-Legendre rule.
func Integrate(m Model, method Method, a, b, tolerance float64) (float64, error) {
	switch method {
	case MethodNewtonCotes:
		return NewtonCotes(m, a, b, tolerance)
	case MethodRomberg:
		return Romberg(m, a, b, tolerance)
	case MethodAdaptive:
		return Adaptive(m, a, b, tolerance)
	case MethodGaussLegendre:
		return GaussLegendre64(m, a, b)
	default:
		return 0, ErrUnknownMethod
	}
}

const (
	// maxDoublings bounds the Newton-Cotes subdivision loop; the interval
	// count reaches 2^21 before giving up.
	maxDoublings = 20

	// maxRombergLevels bounds the extrapolation table depth.
	maxRombergLevels = 15
)

// NewtonCotes integrates with the composite Simpson's rule, doubling the
// subinterval count until two successive estimates differ by less than
// tolerance. The last estimate is returned even when not converged.
func NewtonCotes(m Model, a, b, tolerance float64) (float64, error) {
	if !m.Computed() {
		return 0, ErrNotComputed
	}

	n := 2 // Simpson needs an even interval count.
	prev := 0.0
	integral := 0.0

	for iter := 0; iter < maxDoublings; iter++ {
		h := (b - a) / float64(n)
		sum := m.Evaluate(a) + m.Evaluate(b)

		for i := 1; i < n; i += 2 {
			sum += 4 * m.Evaluate(a+float64(i)*h)
		}

		for i := 2; i < n; i += 2 {
			sum += 2 * m.Evaluate(a+float64(i)*h)
		}

		integral = h / 3 * sum

		if iter > 0 && math.Abs(integral-prev) < tolerance {
			return integral, nil
		}

		prev = integral
		n *= 2
	}

	return integral, nil
}

// Romberg integrates by Richardson extrapolation of the trapezoidal rule.
// The triangular table grows one row per level; the diagonal is compared
// against the previous diagonal entry for convergence. The deepest
// diagonal entry is returned when the level budget runs out.
func Romberg(m Model, a, b, tolerance float64) (float64, error) {
	if !m.Computed() {
		return 0, ErrNotComputed
	}

	table := make([][]float64, 0, maxRombergLevels)

	for i := 0; i < maxRombergLevels; i++ {
		row := make([]float64, i+1)
		row[0] = trapezoid(m, a, b, 1<<i)

		for j := 1; j <= i; j++ {
			factor := math.Pow(4, float64(j))
			row[j] = (factor*row[j-1] - table[i-1][j-1]) / (factor - 1)
		}

		table = append(table, row)

		if i > 0 && math.Abs(row[i]-table[i-1][i-1]) < tolerance {
			return row[i], nil
		}
	}

	last := maxRombergLevels - 1

	return table[last][last], nil
}

func trapezoid(m Model, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := 0.5 * (m.Evaluate(a) + m.Evaluate(b))

	for i := 1; i < n; i++ {
		sum += m.Evaluate(a + float64(i)*h)
	}

	return h * sum
}

// Adaptive integrates with recursive Simpson bisection. Each interval is
// accepted when the whole-interval and split estimates agree within
// tolerance after division by the Richardson factor 15 (fixed for
// Simpson's rule); accepted intervals receive the extrapolated correction.
// Rejected intervals recurse on both halves with tolerance halved.
func Adaptive(m Model, a, b, tolerance float64) (float64, error) {
	if !m.Computed() {
		return 0, ErrNotComputed
	}

	fa := m.Evaluate(a)
	fb := m.Evaluate(b)
	fMid := m.Evaluate((a + b) / 2)

	return adaptiveStep(m, a, b, tolerance, fa, fb, fMid), nil
}

func adaptiveStep(m Model, a, b, tolerance, fa, fb, fMid float64) float64 {
	mid := (a + b) / 2
	h := b - a

	whole := h / 6 * (fa + 4*fMid + fb)

	fLeft := m.Evaluate((a + mid) / 2)
	fRight := m.Evaluate((mid + b) / 2)

	left := h / 12 * (fa + 4*fLeft + fMid)
	right := h / 12 * (fMid + 4*fRight + fb)
	split := left + right

	if math.Abs(split-whole)/15 < tolerance {
		return split + (split-whole)/15
	}

	return adaptiveStep(m, a, mid, tolerance/2, fa, fMid, fLeft) +
		adaptiveStep(m, mid, b, tolerance/2, fMid, fb, fRight)
}

// GaussLegendre64 integrates with the fixed 64-point Gauss-Legendre rule,
// exact to floating precision for polynomials of degree <= 63. The rule
// performs exactly 64 evaluations; there is no convergence loop and no
// tolerance parameter.
func GaussLegendre64(m Model, a, b float64) (float64, error) {
	if !m.Computed() {
		return 0, ErrNotComputed
	}

	mid := (a + b) / 2
	half := (b - a) / 2
	sum := 0.0

	// Legendre nodes are symmetric about 0; each tabulated node is used at
	// both +node and -node.
	for i := range gauss64Nodes {
		offset := half * gauss64Nodes[i]
		sum += gauss64Weights[i] * (m.Evaluate(mid+offset) + m.Evaluate(mid-offset))
	}

	return half * sum, nil
}
