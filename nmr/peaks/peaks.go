package peaks

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-nmr/nmr/quad"
)

// ErrNotComputed is returned when the curve has no valid coefficients.
var ErrNotComputed = errors.New("peaks: curve not computed")

// ErrEmptyData is returned for empty sample arrays.
var ErrEmptyData = errors.New("peaks: empty sample data")

// ErrSizeMismatch is returned when x and y differ in length.
var ErrSizeMismatch = errors.New("peaks: x and y length mismatch")

// zeroSuppressionWindow drops peaks centered within this distance of
// 0 ppm, where the TMS reference line sits after calibration. The
// comparison is strict, so a peak at exactly 0.02 is kept.
const zeroSuppressionWindow = 0.02

// Curve is the interpolant surface peak detection consumes.
type Curve interface {
	quad.Model

	// FindCrossings returns ascending x positions in [xMin, xMax] where
	// the curve equals targetY.
	FindCrossings(targetY, xMin, xMax float64) []float64
}

// Peak is one quantified spectral peak. Begin and End are the baseline
// crossings delimiting the region, Location is their midpoint (not the x
// of the maximum), Maximum the largest sample intensity inside the region,
// Area the curve integral over [Begin, End], and Hydrogens the relative
// abundance after normalization.
type Peak struct {
	Begin     float64
	End       float64
	Location  float64
	Maximum   float64
	Area      float64
	Hydrogens int
}

// Detect locates peak regions above baseline. The curve's baseline
// crossings over the sampled x-range delimit candidate regions; a domain
// edge sitting above baseline is treated as a synthetic crossing so peaks
// extending past the data are not lost. A crossing pair is accepted when
// the curve exceeds baseline at the pair midpoint and at least one sample
// inside the pair exceeds baseline. Fewer than two crossings yield an
// empty list, not an error.
func Detect(curve Curve, x, y []float64, baseline float64) ([]Peak, error) {
	if !curve.Computed() {
		return nil, ErrNotComputed
	}

	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptyData
	}

	if len(x) != len(y) {
		return nil, ErrSizeMismatch
	}

	xMin, xMax := x[0], x[0]
	for _, v := range x[1:] {
		if v < xMin {
			xMin = v
		}

		if v > xMax {
			xMax = v
		}
	}

	crossings := curve.FindCrossings(baseline, xMin, xMax)

	if len(crossings) > 0 && curve.Evaluate(xMin) > baseline {
		crossings = append([]float64{xMin}, crossings...)
	}

	if len(crossings) > 0 && curve.Evaluate(xMax) > baseline {
		crossings = append(crossings, xMax)
	}

	if len(crossings) < 2 {
		return nil, nil
	}

	sort.Float64s(crossings)

	var out []Peak

	for i := 0; i+1 < len(crossings); i++ {
		begin := crossings[i]
		end := crossings[i+1]
		location := (begin + end) / 2

		if curve.Evaluate(location) <= baseline {
			// Valley pair between a down-crossing and the next up-crossing.
			continue
		}

		// The maximum comes from the actual samples, not the curve.
		maximum := baseline
		found := false

		for j := range x {
			if x[j] >= begin && x[j] <= end && y[j] > maximum {
				maximum = y[j]
				found = true
			}
		}

		if !found {
			continue
		}

		if math.Abs(location) < zeroSuppressionWindow {
			continue
		}

		out = append(out, Peak{
			Begin:    begin,
			End:      end,
			Location: location,
			Maximum:  maximum,
		})
	}

	return out, nil
}

// Integrate fills each peak's Area with the integral of m over
// [Begin, End] using the selected method. A failing peak keeps area 0 and
// integration continues with the remaining peaks; the joined per-peak
// errors are returned after the batch completes.
func Integrate(list []Peak, m quad.Model, method quad.Method, tolerance float64) error {
	var errs []error

	for i := range list {
		area, err := quad.Integrate(m, method, list[i].Begin, list[i].End, tolerance)
		if err != nil {
			list[i].Area = 0
			errs = append(errs, fmt.Errorf("peaks: peak %d [%g, %g]: %w", i+1, list[i].Begin, list[i].End, err))

			continue
		}

		list[i].Area = area
	}

	return errors.Join(errs...)
}

// Quantify sets each peak's Hydrogens to its area divided by the smallest
// positive area, rounded to the nearest integer. Peaks with area <= 0 are
// excluded from the minimum search but still normalized. When no peak has
// positive area all counts stay 0; an empty list is a no-op.
func Quantify(list []Peak) {
	if len(list) == 0 {
		return
	}

	minArea := 0.0
	for _, p := range list {
		if p.Area > 0 && (minArea == 0 || p.Area < minArea) {
			minArea = p.Area
		}
	}

	if minArea == 0 {
		for i := range list {
			list[i].Hydrogens = 0
		}

		return
	}

	for i := range list {
		list[i].Hydrogens = int(math.Round(list[i].Area / minArea))
	}
}
