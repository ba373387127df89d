package layout

import (
	"github.com/matzehuels/floorplan/pkg/errors"
)

// ScaleToFit scales items by one common factor so they sum to span.
//
// Proportions between items are kept; their relation to any other dimension
// is not, so a room may come out taller or squatter than planned. The scaled
// items and the factor are returned. A non-positive sum is a configuration
// error, since no factor can make it fit.
func ScaleToFit(items []float64, span float64) ([]float64, float64, error) {
	var sum float64
	for _, v := range items {
		sum += v
	}
	if sum <= 0 {
		return nil, 0, errors.Configuration("", "planned heights sum to %g, nothing to scale", sum)
	}

	factor := span / sum
	out := make([]float64, len(items))
	for i, v := range items {
		out[i] = v * factor
	}
	return out, factor, nil
}
