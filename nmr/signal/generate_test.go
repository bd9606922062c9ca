package signal

import (
	"testing"

	"github.com/cwbudde/algo-nmr/internal/testutil"
)

func TestLinspace(t *testing.T) {
	got := Linspace(0, 4, 5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2, 3, 4}, 1e-12)

	got = Linspace(-1, 1, 3)
	testutil.RequireSliceNearlyEqual(t, got, []float64{-1, 0, 1}, 1e-12)

	if Linspace(0, 1, 1) != nil {
		t.Fatal("Linspace with n < 2 should return nil")
	}
}

func TestLinspaceHitsEndpointExactly(t *testing.T) {
	got := Linspace(0, 0.3, 7)

	if got[len(got)-1] != 0.3 {
		t.Fatalf("last value %v, want exactly 0.3", got[len(got)-1])
	}
}

func TestLorentzianShape(t *testing.T) {
	line := Line{Center: 2, HalfWidth: 0.5, Amplitude: 8}

	testutil.RequireNear(t, Lorentzian(2, line), 8, 1e-12)
	testutil.RequireNear(t, Lorentzian(2.5, line), 4, 1e-12)
	testutil.RequireNear(t, Lorentzian(1.5, line), 4, 1e-12)
}

func TestSpectrumDeterministic(t *testing.T) {
	x := Linspace(0, 10, 101)
	lines := []Line{{Center: 3, HalfWidth: 0.2, Amplitude: 5}}

	a := NewGenerator(WithSeed(7)).Spectrum(x, lines, 0.1)
	b := NewGenerator(WithSeed(7)).Spectrum(x, lines, 0.1)
	testutil.RequireSliceNearlyEqual(t, a, b, 0)
	testutil.RequireFinite(t, a)

	c := NewGenerator(WithSeed(8)).Spectrum(x, lines, 0.1)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}

	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestSpectrumWithoutNoise(t *testing.T) {
	x := []float64{1, 2, 3}
	lines := []Line{{Center: 2, HalfWidth: 1, Amplitude: 4}}

	got := NewGenerator().Spectrum(x, lines, 0)
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 4, 2}, 1e-12)
}

func TestTriangle(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}

	got := Triangle(x, 2, 2, 1)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0.5, 0, 0}, 1e-12)
}
