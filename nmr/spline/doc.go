// Package spline implements natural cubic spline interpolation over
// sampled spectra.
//
// A [Spline] is built once from a sorted x/y point set and is read-only
// afterwards. It offers value and derivative evaluation at arbitrary
// positions (extrapolating with the boundary polynomials outside the
// sampled range) and a sampling-based horizontal-line crossing finder
// used for baseline analysis.
package spline
