// Package quad provides definite integration of a computed spectrum model
// by four selectable quadrature methods:
//
//   - [NewtonCotes]:     composite Simpson's rule with interval doubling
//   - [Romberg]:         trapezoidal rule with Richardson extrapolation
//   - [Adaptive]:        recursive Simpson bisection with error control
//   - [GaussLegendre64]: fixed 64-point Gauss-Legendre rule
//
// The [Method] enum selects the algorithm at run time via [Integrate].
// All methods require a computed [Model] and agree on smooth integrands to
// within a small multiple of the requested tolerance.
package quad
