package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// deltaGridPoints is the fixed resolution of the common distance grid,
// balancing client rendering cost against fidelity. It never scales
// with input size.
const deltaGridPoints = 200

// ComputeDelta resamples both drivers' speed traces onto a common
// distance grid (200 evenly spaced points from 0 to maxDistance
// inclusive) and returns the per-point difference, trace1 minus trace2.
// Any interpolation failure (empty or non-monotonic distances) omits
// the whole curve rather than returning a partial one.
func ComputeDelta(trace1, trace2 *model.SpeedTrace, maxDistance float64) *model.DeltaCurve {
	grid := make([]float64, deltaGridPoints)
	floats.Span(grid, 0, maxDistance)

	speed1, err := resample(grid, trace1.Distance, trace1.Speed)
	if err != nil {
		log.Warn("failed to calculate delta",
			log.String("driver", trace1.Driver), log.ErrorField(err))
		return nil
	}
	speed2, err := resample(grid, trace2.Distance, trace2.Speed)
	if err != nil {
		log.Warn("failed to calculate delta",
			log.String("driver", trace2.Driver), log.ErrorField(err))
		return nil
	}
	delta := make([]float64, len(grid))
	floats.SubTo(delta, speed1, speed2)
	return &model.DeltaCurve{
		Distance: grid,
		Delta:    delta,
		Driver1:  trace1.Driver,
		Driver2:  trace2.Driver,
	}
}

// resample evaluates a piecewise-linear fit of (xs, ys) on the grid.
// Grid points outside the observed range clamp to the boundary value,
// no extrapolation.
func resample(grid, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("distance/speed length mismatch: %d vs %d",
			len(xs), len(ys))
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	low, high := xs[0], xs[len(xs)-1]
	out := make([]float64, len(grid))
	for i, x := range grid {
		if x < low {
			x = low
		} else if x > high {
			x = high
		}
		out[i] = pl.Predict(x)
	}
	return out, nil
}
