// Package filter provides the smoothing filters applied to raw spectrum
// intensities before spline fitting: a multi-pass boxcar moving average
// and a quadratic Savitzky-Golay convolution. Both reflect indices at the
// data boundaries.
package filter

// Boxcar applies passes of a size-wide moving average. An even or
// non-positive size and a non-positive pass count leave the data
// unchanged. The input is never modified.
func Boxcar(data []float64, size, passes int) []float64 {
	result := append([]float64(nil), data...)

	if size <= 0 || len(data) == 0 {
		return result
	}

	for p := 0; p < passes; p++ {
		result = boxcarPass(result, size)
	}

	return result
}

func boxcarPass(data []float64, size int) []float64 {
	n := len(data)
	out := make([]float64, n)
	halfWidth := (size - 1) / 2

	for i := range data {
		sum := 0.0
		for j := -halfWidth; j <= halfWidth; j++ {
			sum += data[reflect(i+j, n)]
		}

		out[i] = sum / float64(size)
	}

	return out
}

// SavitzkyGolay applies passes of quadratic Savitzky-Golay smoothing.
// Coefficient tables exist for sizes 5, 11 and 17 (Savitzky & Golay,
// Anal. Chem. 36, 1627, 1964); any other size falls back to 5. The input
// is never modified.
func SavitzkyGolay(data []float64, size, passes int) []float64 {
	result := append([]float64(nil), data...)

	if len(data) == 0 {
		return result
	}

	kernel, norm := sgKernel(size)

	for p := 0; p < passes; p++ {
		result = convolvePass(result, kernel, norm)
	}

	return result
}

func sgKernel(size int) ([]float64, float64) {
	switch size {
	case 11:
		return []float64{-36, 9, 44, 69, 84, 89, 84, 69, 44, 9, -36}, 429
	case 17:
		return []float64{
			-21, -6, 7, 18, 27, 34, 39, 42, 43,
			42, 39, 34, 27, 18, 7, -6, -21,
		}, 323
	default:
		return []float64{-3, 12, 17, 12, -3}, 35
	}
}

func convolvePass(data, kernel []float64, norm float64) []float64 {
	n := len(data)
	out := make([]float64, n)
	halfWidth := (len(kernel) - 1) / 2

	for i := range data {
		sum := 0.0
		for j := -halfWidth; j <= halfWidth; j++ {
			sum += kernel[j+halfWidth] * data[reflect(i+j, n)]
		}

		out[i] = sum / norm
	}

	return out
}

// reflect mirrors an out-of-range index back into [0, n). Indices that
// remain out of range after one reflection clamp to the nearest boundary.
func reflect(idx, n int) int {
	if idx < 0 {
		idx = -idx
	}

	if idx >= n {
		idx = 2*n - idx - 2
	}

	if idx < 0 {
		idx = 0
	}

	if idx >= n {
		idx = n - 1
	}

	return idx
}
