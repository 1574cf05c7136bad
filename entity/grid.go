package entity

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/atomphys/hydrogen/entity/parameters"
)

// ErrTooFewPoints indicates a grid configuration with fewer than two points.
var ErrTooFewPoints = errors.New("entity: radial grid needs at least two points")

// RadialGrid builds the sampling grid for a state with principal quantum
// number n: params.Points uniformly spaced radii from params.RMin to
// params.RMaxFactor·n², strictly increasing. The upper bound grows as n²
// so the grid captures the bulk of the probability mass for higher shells.
func RadialGrid(params *parameters.Parameters, n int) ([]float64, error) {
	if params.Points < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, params.Points)
	}
	rMax := params.RMaxFactor * float64(n*n)
	r := floats.Span(make([]float64, params.Points), params.RMin, rMax)
	// Span rounds the last point through the step computation; pin it.
	r[len(r)-1] = rMax
	return r, nil
}
