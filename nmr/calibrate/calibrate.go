// Package calibrate shifts a spectrum so the TMS reference line sits at
// 0 ppm.
package calibrate

// ShiftTMS locates the TMS reference line, the local maximum above
// baseline with the most positive chemical shift, and shifts x in place
// so that line sits at 0. The applied shift is returned. With no sample
// above baseline the first sample's position is used, and mismatched or
// empty input applies no shift.
func ShiftTMS(x, y []float64, baseline float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}

	tmsX := x[0]
	tmsY := y[0]

	for i := range x {
		if y[i] <= baseline {
			continue
		}

		if i > 0 && y[i] < y[i-1] {
			continue
		}

		if i < len(x)-1 && y[i] < y[i+1] {
			continue
		}

		// The most positive shift wins; >= keeps a later candidate at the
		// same position.
		if (x[i] > tmsX || y[i] > tmsY) && x[i] >= tmsX {
			tmsX = x[i]
			tmsY = y[i]
		}
	}

	for i := range x {
		x[i] -= tmsX
	}

	return tmsX
}
