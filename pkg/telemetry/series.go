package telemetry

import (
	"math"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// FloatSeries extracts a channel as float64 values. An absent channel
// yields an empty slice; the caller decides whether that means
// "unsupported" or "optional, omit". Missing readings (NaN) become 0;
// zero is a valid no-signal default for throttle/brake/gear and this
// behavior is kept for compatibility with existing clients.
func FloatSeries(tab *model.RawTelemetry, name string) []float64 {
	col, ok := tab.Column(name)
	if !ok {
		return []float64{}
	}
	out := make([]float64, len(col))
	for i, v := range col {
		if math.IsNaN(v) {
			v = 0
		}
		out[i] = v
	}
	return out
}

// IntSeries extracts a channel as integers (gear, DRS). Values are
// truncated, not rounded, after the zero-fill.
func IntSeries(tab *model.RawTelemetry, name string) []int {
	col, ok := tab.Column(name)
	if !ok {
		return []int{}
	}
	out := make([]int, len(col))
	for i, v := range col {
		if math.IsNaN(v) {
			v = 0
		}
		out[i] = int(v)
	}
	return out
}

// DeriveDistance computes a cumulative distance channel (meters) by
// trapezoidal integration of speed (km/h) over the sample timestamps.
// Used when the raw table carries no distance channel of its own.
func DeriveDistance(tab *model.RawTelemetry) []float64 {
	speed := FloatSeries(tab, model.ChannelSpeed)
	if len(speed) == 0 {
		return []float64{}
	}
	times := tab.TimeSeconds()
	out := make([]float64, len(speed))
	for i := 1; i < len(speed); i++ {
		dt := times[i] - times[i-1]
		if dt < 0 {
			dt = 0
		}
		avgMS := (speed[i] + speed[i-1]) / 2 / 3.6
		out[i] = out[i-1] + avgMS*dt
	}
	return out
}
