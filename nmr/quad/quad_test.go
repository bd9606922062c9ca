package quad

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-nmr/internal/testutil"
)

// funcModel adapts an analytic function to the Model interface so the
// methods can be validated against known integrals.
type funcModel struct {
	f        func(float64) float64
	computed bool
}

func (m funcModel) Evaluate(x float64) float64 { return m.f(x) }
func (m funcModel) Computed() bool             { return m.computed }

func analytic(f func(float64) float64) funcModel {
	return funcModel{f: f, computed: true}
}

func TestAllMethodsOnCubic(t *testing.T) {
	m := analytic(func(x float64) float64 { return x*x*x - 2*x*x + 3 })

	// Integral of x^3 - 2x^2 + 3 over [0, 2].
	want := 4.0 - 16.0/3 + 6

	for _, tc := range []struct {
		name   string
		method Method
	}{
		{name: "newton-cotes", method: MethodNewtonCotes},
		{name: "romberg", method: MethodRomberg},
		{name: "adaptive", method: MethodAdaptive},
		{name: "gauss-legendre", method: MethodGaussLegendre},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Integrate(m, tc.method, 0, 2, 1e-10)
			if err != nil {
				t.Fatalf("Integrate: %v", err)
			}

			testutil.RequireNear(t, got, want, 1e-9)
		})
	}
}

func TestAllMethodsOnSine(t *testing.T) {
	m := analytic(math.Sin)

	for _, tc := range []struct {
		name   string
		method Method
	}{
		{name: "newton-cotes", method: MethodNewtonCotes},
		{name: "romberg", method: MethodRomberg},
		{name: "adaptive", method: MethodAdaptive},
		{name: "gauss-legendre", method: MethodGaussLegendre},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Integrate(m, tc.method, 0, math.Pi, 1e-10)
			if err != nil {
				t.Fatalf("Integrate: %v", err)
			}

			testutil.RequireNear(t, got, 2, 1e-8)
		})
	}
}

func TestGaussLegendreHighDegreePolynomial(t *testing.T) {
	// The 64-point rule integrates polynomials of degree <= 63 exactly.
	m := analytic(func(x float64) float64 { return math.Pow(x, 63) })

	got, err := GaussLegendre64(m, 0, 1)
	if err != nil {
		t.Fatalf("GaussLegendre64: %v", err)
	}

	testutil.RequireNear(t, got, 1.0/64, 1e-13)
}

func TestGaussLegendreFixedEvaluationCount(t *testing.T) {
	count := 0
	m := funcModel{
		f:        func(x float64) float64 { count++; return x },
		computed: true,
	}

	if _, err := GaussLegendre64(m, -3, 7); err != nil {
		t.Fatalf("GaussLegendre64: %v", err)
	}

	if count != 64 {
		t.Fatalf("got %d evaluations, want 64", count)
	}
}

func TestNotComputedModel(t *testing.T) {
	m := funcModel{f: math.Sin}

	for _, method := range []Method{MethodNewtonCotes, MethodRomberg, MethodAdaptive, MethodGaussLegendre} {
		got, err := Integrate(m, method, 0, 1, 1e-8)
		if !errors.Is(err, ErrNotComputed) {
			t.Fatalf("%v: got error %v, want ErrNotComputed", method, err)
		}

		if got != 0 {
			t.Fatalf("%v: got %v, want 0", method, got)
		}
	}
}

func TestUnknownMethod(t *testing.T) {
	m := analytic(math.Sin)

	got, err := Integrate(m, Method(99), 0, 1, 1e-8)
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("got error %v, want ErrUnknownMethod", err)
	}

	if got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestMethodString(t *testing.T) {
	for _, tc := range []struct {
		method Method
		want   string
	}{
		{method: MethodNewtonCotes, want: "Newton-Cotes"},
		{method: MethodRomberg, want: "Romberg"},
		{method: MethodAdaptive, want: "Adaptive Quadrature"},
		{method: MethodGaussLegendre, want: "Gauss-Legendre Quadrature"},
		{method: Method(42), want: "Unknown"},
	} {
		if got := tc.method.String(); got != tc.want {
			t.Fatalf("Method(%d).String() = %q, want %q", int(tc.method), got, tc.want)
		}
	}
}

func TestRombergMatchesSampledTrapezoidal(t *testing.T) {
	f := func(x float64) float64 { return 1 / (1 + x*x) }
	m := analytic(f)

	got, err := Romberg(m, 0, 1, 1e-12)
	if err != nil {
		t.Fatalf("Romberg: %v", err)
	}

	// Independent reference: gonum's trapezoidal rule over a dense grid.
	const n = 100001

	xs := make([]float64, n)
	fs := make([]float64, n)

	for i := range xs {
		xs[i] = float64(i) / (n - 1)
		fs[i] = f(xs[i])
	}

	ref := integrate.Trapezoidal(xs, fs)

	testutil.RequireNear(t, got, ref, 1e-8)
	testutil.RequireNear(t, got, math.Pi/4, 1e-10)
}
