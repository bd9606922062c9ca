// Package peaks extracts quantified peaks from a spline-fitted spectrum.
//
// Extraction runs in three discrete passes. [Detect] locates peak regions
// from baseline-crossing pairs of the fitted curve, [Integrate] computes
// each region's area with a selectable quadrature method, and [Quantify]
// converts areas into relative hydrogen counts normalized to the smallest
// positive peak. Peaks are reported in ascending order of their begin
// crossing.
package peaks
