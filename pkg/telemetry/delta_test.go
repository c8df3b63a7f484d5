//nolint:funlen // ok for tests
package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

func TestComputeDelta(t *testing.T) {
	t.Run("constant speeds give constant delta", func(t *testing.T) {
		trace1 := &model.SpeedTrace{
			Driver:   "VER",
			Distance: []float64{0, 100, 200},
			Speed:    []float64{250, 250, 250},
		}
		trace2 := &model.SpeedTrace{
			Driver:   "LEC",
			Distance: []float64{0, 100, 200},
			Speed:    []float64{240, 240, 240},
		}
		got := ComputeDelta(trace1, trace2, 200)
		assert.NotNil(t, got)
		assert.Len(t, got.Distance, 200)
		assert.Len(t, got.Delta, 200)
		assert.Equal(t, 0.0, got.Distance[0])
		assert.Equal(t, 200.0, got.Distance[len(got.Distance)-1])
		for i, d := range got.Delta {
			assert.True(t, almostEqual(d, 10.0), "point %d: got %f", i, d)
		}
	})

	t.Run("grid beyond the shorter trace clamps to its last value", func(t *testing.T) {
		trace1 := &model.SpeedTrace{
			Driver:   "VER",
			Distance: []float64{0, 100, 200},
			Speed:    []float64{250, 250, 250},
		}
		// trace2 ends at 90m with a final speed of 200
		trace2 := &model.SpeedTrace{
			Driver:   "LEC",
			Distance: []float64{0, 45, 90},
			Speed:    []float64{240, 220, 200},
		}
		got := ComputeDelta(trace1, trace2, 200)
		assert.NotNil(t, got)
		// past 90m trace2 is held at 200, so the delta settles at 50
		last := got.Delta[len(got.Delta)-1]
		assert.True(t, almostEqual(last, 50.0), "got %f", last)
	})

	t.Run("mismatched series lengths omit the curve", func(t *testing.T) {
		trace1 := &model.SpeedTrace{
			Driver:   "VER",
			Distance: []float64{0, 100},
			Speed:    []float64{250},
		}
		trace2 := &model.SpeedTrace{
			Driver:   "LEC",
			Distance: []float64{0, 100},
			Speed:    []float64{240, 240},
		}
		assert.Nil(t, ComputeDelta(trace1, trace2, 100))
	})

	t.Run("single sample trace omits the curve", func(t *testing.T) {
		trace1 := &model.SpeedTrace{
			Driver:   "VER",
			Distance: []float64{0},
			Speed:    []float64{250},
		}
		trace2 := &model.SpeedTrace{
			Driver:   "LEC",
			Distance: []float64{0, 100},
			Speed:    []float64{240, 240},
		}
		assert.Nil(t, ComputeDelta(trace1, trace2, 100))
	})
}
