//nolint:funlen // ok for tests
package telemetry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

func TestFloatSeries(t *testing.T) {
	tab := &model.RawTelemetry{
		Columns: map[string][]float64{
			model.ChannelSpeed:    {200, math.NaN(), 300},
			model.ChannelThrottle: {100, 50, math.NaN()},
		},
	}
	tests := []struct {
		name    string
		channel string
		want    []float64
	}{
		{
			name:    "missing readings become zero",
			channel: model.ChannelSpeed,
			want:    []float64{200, 0, 300},
		},
		{
			name:    "trailing missing reading",
			channel: model.ChannelThrottle,
			want:    []float64{100, 50, 0},
		},
		{
			name:    "absent channel yields empty slice",
			channel: model.ChannelBrake,
			want:    []float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FloatSeries(tab, tt.channel)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FloatSeries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntSeries(t *testing.T) {
	tab := &model.RawTelemetry{
		Columns: map[string][]float64{
			model.ChannelGear: {6.0, 7.9, math.NaN(), 8.1},
		},
	}
	tests := []struct {
		name    string
		channel string
		want    []int
	}{
		{
			name:    "values are truncated not rounded",
			channel: model.ChannelGear,
			want:    []int{6, 7, 0, 8},
		},
		{
			name:    "absent channel yields empty slice",
			channel: model.ChannelDRS,
			want:    []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntSeries(tab, tt.channel)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IntSeries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveDistance(t *testing.T) {
	// constant 180 km/h is 50 m/s, so each second covers 50m
	tab := &model.RawTelemetry{
		Time: durations(0, 1, 2, 3),
		Columns: map[string][]float64{
			model.ChannelSpeed: {180, 180, 180, 180},
		},
	}
	got := DeriveDistance(tab)
	want := []float64{0, 50, 100, 150}
	if diff := cmp.Diff(want, got, approxFloats()); diff != "" {
		t.Errorf("DeriveDistance() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveDistanceTrapezoid(t *testing.T) {
	// 0 to 36 km/h over one second averages 5 m/s
	tab := &model.RawTelemetry{
		Time: durations(0, 1),
		Columns: map[string][]float64{
			model.ChannelSpeed: {0, 36},
		},
	}
	got := DeriveDistance(tab)
	want := []float64{0, 5}
	if diff := cmp.Diff(want, got, approxFloats()); diff != "" {
		t.Errorf("DeriveDistance() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveDistanceNoSpeed(t *testing.T) {
	tab := &model.RawTelemetry{Time: durations(0, 1)}
	if got := DeriveDistance(tab); len(got) != 0 {
		t.Errorf("DeriveDistance() = %v, want empty", got)
	}
}
