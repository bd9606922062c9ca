// Package signal synthesizes spectra for tests, examples and demos.
package signal

import (
	"math"
	"math/rand"
)

// Line describes one Lorentzian spectral line.
type Line struct {
	Center    float64
	HalfWidth float64
	Amplitude float64
}

// Generator creates deterministic synthetic spectra.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured spectrum generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Linspace returns n equally spaced values spanning [lo, hi] inclusive.
// Returns nil for n < 2.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return nil
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	for i := range out {
		out[i] = lo + float64(i)*step
	}

	out[n-1] = hi

	return out
}

// Lorentzian evaluates an amplitude-normalized Lorentzian line shape:
// the value is Amplitude at Center and half that at Center±HalfWidth.
func Lorentzian(x float64, line Line) float64 {
	u := (x - line.Center) / line.HalfWidth
	return line.Amplitude / (1 + u*u)
}

// Spectrum synthesizes intensities over x as a sum of the given lines
// plus seeded uniform noise in [-noise, noise].
func (g *Generator) Spectrum(x []float64, lines []Line, noise float64) []float64 {
	out := make([]float64, len(x))
	rng := rand.New(rand.NewSource(g.seed))

	for i, xv := range x {
		v := 0.0
		for _, line := range lines {
			v += Lorentzian(xv, line)
		}

		if noise > 0 {
			v += noise * (2*rng.Float64() - 1)
		}

		out[i] = v
	}

	return out
}

// Triangle returns intensities over x forming a triangular bump of the
// given height centered at center with the given half-width, clamped to
// zero outside the bump.
func Triangle(x []float64, center, halfWidth, height float64) []float64 {
	out := make([]float64, len(x))

	for i, xv := range x {
		v := height * (1 - math.Abs(xv-center)/halfWidth)
		if v < 0 {
			v = 0
		}

		out[i] = v
	}

	return out
}
