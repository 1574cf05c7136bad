package parameters

import (
	"github.com/atomphys/hydrogen/entity/format"
)

// Parameters configures the radial grid and the output surface.
type Parameters struct {
	Format     format.Format
	Points     int
	RMin       float64
	RMaxFactor float64
}

// Default returns the reference configuration: 1000 grid points from
// 0.01 Bohr radii out to 30·n², rendered as HTML.
func Default() *Parameters {
	return &Parameters{
		Format:     format.HTML,
		Points:     1000,
		RMin:       0.01,
		RMaxFactor: 30,
	}
}
