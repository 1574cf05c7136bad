// Package radial evaluates the analytic radial wavefunction R_{nl}(r) of
// the hydrogen atom in atomic units (ℏ = m_e = e = 4πε₀ = 1, a₀ = 1):
//
//	ρ(r) = 2r / (n·a₀)
//	norm = sqrt( (2/(n·a₀))³ · (n−l−1)! / (2n·(n+l)!) )
//	R(r) = norm · exp(−ρ/2) · ρ^l · L_{n−l−1}^{(2l+1)}(ρ)
//
// The factorial ratio is computed in log space via math.Lgamma so the
// normalization constant stays finite and accurate for large n, and the
// generalized Laguerre polynomial is evaluated with the stable three-term
// recurrence rather than an expanded-coefficient form.
package radial

import (
	"errors"
	"fmt"
	"math"

	"github.com/atomphys/hydrogen/entity"
)

// BohrRadius is the length scale a₀, fixed to 1 in atomic units.
const BohrRadius = 1.0

// Domain errors for evaluation inputs.
var (
	// ErrNonPositiveRadius indicates a grid point outside (0, ∞).
	ErrNonPositiveRadius = errors.New("radial: radius must be strictly positive")

	// ErrLengthMismatch indicates input slices of differing lengths.
	ErrLengthMismatch = errors.New("radial: slices must have equal length")
)

// Evaluate computes R_{nl}(r) pointwise over the radial grid r.
// The state is revalidated so Evaluate is safe as a standalone API:
// invalid quantum numbers fail fast instead of surfacing as a
// negative-argument gamma deep in the normalization.
func Evaluate(st entity.State, r []float64) ([]float64, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	n := float64(st.N)
	degree := st.N - st.L - 1
	alpha := float64(2*st.L + 1)
	norm := normalization(st.N, st.L)

	out := make([]float64, len(r))
	for i, ri := range r {
		if ri <= 0 {
			return nil, fmt.Errorf("%w: r[%d] = %g", ErrNonPositiveRadius, i, ri)
		}
		rho := 2 * ri / (n * BohrRadius)
		out[i] = norm * math.Exp(-rho/2) * math.Pow(rho, float64(st.L)) * Laguerre(degree, alpha, rho)
	}
	return out, nil
}

// Density derives the probability density r²·R(r)² for a spherical shell
// at each grid point.
func Density(r, wave []float64) ([]float64, error) {
	if len(r) != len(wave) {
		return nil, fmt.Errorf("%w: len(r)=%d, len(R)=%d", ErrLengthMismatch, len(r), len(wave))
	}
	out := make([]float64, len(r))
	for i := range r {
		out[i] = r[i] * r[i] * wave[i] * wave[i]
	}
	return out, nil
}

// Laguerre evaluates the generalized Laguerre polynomial L_k^(α)(x) via
// the three-term recurrence
//
//	(i+1)·L_{i+1}^(α) = (2i+1+α−x)·L_i^(α) − (i+α)·L_{i−1}^(α)
//
// with L₀ = 1 and L₁ = 1+α−x. The degree k must be non-negative.
func Laguerre(k int, alpha, x float64) float64 {
	if k == 0 {
		return 1
	}
	prev, cur := 1.0, 1+alpha-x
	for i := 1; i < k; i++ {
		prev, cur = cur, ((float64(2*i+1)+alpha-x)*cur-(float64(i)+alpha)*prev)/float64(i+1)
	}
	return cur
}

// normalization computes sqrt((2/(n·a₀))³ · (n−l−1)!/(2n·(n+l)!)) with the
// factorials as log-gammas. Both gamma arguments are positive integers for
// any validated state, so the Lgamma signs are always +1.
func normalization(n, l int) float64 {
	lgNum, _ := math.Lgamma(float64(n - l))     // (n−l−1)!
	lgDen, _ := math.Lgamma(float64(n + l + 1)) // (n+l)!
	logNorm := 3*math.Log(2/(float64(n)*BohrRadius)) + lgNum - math.Log(2*float64(n)) - lgDen
	return math.Exp(logNorm / 2)
}
