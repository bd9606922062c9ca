// Package specio reads and writes the plain-text spectrum formats used by
// the analysis pipeline: two whitespace-separated columns for x/y data,
// plus spline-curve and peak-table dumps for plotting.
package specio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-nmr/nmr/peaks"
	"github.com/cwbudde/algo-nmr/nmr/quad"
)

// ErrNoData is returned when a data file contains no parseable points.
var ErrNoData = errors.New("specio: no data points")

// ReadXY reads a two-column spectrum file. Blank lines and lines starting
// with '#' are skipped, as are lines whose first two fields do not parse
// as numbers. The returned pairs are sorted ascending by x.
func ReadXY(path string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("specio: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		xv, errX := strconv.ParseFloat(fields[0], 64)
		yv, errY := strconv.ParseFloat(fields[1], 64)

		if errX != nil || errY != nil {
			continue
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("specio: read %s: %w", path, err)
	}

	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoData, path)
	}

	sortByX(x, y)

	return x, y, nil
}

// sortByX reorders both slices so x ascends, keeping pairs together.
func sortByX(x, y []float64) {
	if sort.Float64sAreSorted(x) {
		return
	}

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	sortedX := make([]float64, len(x))
	sortedY := make([]float64, len(y))

	for i, j := range idx {
		sortedX[i] = x[j]
		sortedY[i] = y[j]
	}

	copy(x, sortedX)
	copy(y, sortedY)
}

// WriteXY writes a two-column spectrum file with an optional '#' header.
func WriteXY(path string, x, y []float64, header string) error {
	if len(x) != len(y) {
		return errors.New("specio: x and y length mismatch")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("specio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if header != "" {
		fmt.Fprintf(w, "# %s\n", header)
	}

	for i := range x {
		fmt.Fprintf(w, "%.6f %.6f\n", x[i], y[i])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("specio: write %s: %w", path, err)
	}

	return nil
}

// WriteCurve samples a computed curve at n equally spaced positions in
// [xMin, xMax] and writes the result as a two-column file for plotting.
func WriteCurve(path string, curve quad.Model, xMin, xMax float64, n int) error {
	if !curve.Computed() {
		return errors.New("specio: curve not computed")
	}

	if n < 2 {
		return errors.New("specio: need at least 2 sample points")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("specio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Cubic spline evaluated at %d points\n", n)

	dx := (xMax - xMin) / float64(n-1)
	for i := 0; i < n; i++ {
		x := xMin + float64(i)*dx
		fmt.Fprintf(w, "%.6f %.6f\n", x, curve.Evaluate(x))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("specio: write %s: %w", path, err)
	}

	return nil
}

// WritePeaks writes the peak table in the plotting format: one line per
// peak with index, begin, end, location, maximum, area and hydrogens.
func WritePeaks(path string, list []peaks.Peak, baseline float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("specio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# Peak data for plotting")
	fmt.Fprintln(w, "# Format: peak_number begin end location maximum area hydrogens")
	fmt.Fprintf(w, "# Baseline: %g\n", baseline)

	for i, p := range list {
		fmt.Fprintf(w, "%d %.12f %.12f %.12f %.12f %.10e %d\n",
			i+1, p.Begin, p.End, p.Location, p.Maximum, p.Area, p.Hydrogens)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("specio: write %s: %w", path, err)
	}

	return nil
}
