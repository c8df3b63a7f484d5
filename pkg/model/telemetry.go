package model

import "time"

// Channel names of the raw telemetry table. The upstream data source
// ships these as named columns; anything else is carried along but not
// interpreted.
const (
	ChannelDistance = "Distance"
	ChannelSpeed    = "Speed"
	ChannelThrottle = "Throttle"
	ChannelBrake    = "Brake"
	ChannelGear     = "nGear"
	ChannelRPM      = "RPM"
	ChannelDRS      = "DRS"
)

// RawTelemetry is a table of telemetry samples: one session-relative
// timestamp per row plus named numeric columns of the same length.
// Missing readings inside a column are NaN; a column can be absent
// entirely. Consumers must tolerate both.
type RawTelemetry struct {
	// Time holds the sample timestamps (duration since session start),
	// ordered ascending.
	Time []time.Duration `json:"time"`
	// Columns maps channel name to per-sample values, each the same
	// length as Time.
	Columns map[string][]float64 `json:"columns"`
}

func (t *RawTelemetry) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Time)
}

// Column returns the named channel values, or false when the channel is
// not part of the table.
func (t *RawTelemetry) Column(name string) ([]float64, bool) {
	if t == nil || t.Columns == nil {
		return nil, false
	}
	vals, ok := t.Columns[name]
	return vals, ok
}

// TimeSeconds returns the sample timestamps converted to seconds.
func (t *RawTelemetry) TimeSeconds() []float64 {
	out := make([]float64, len(t.Time))
	for i, ts := range t.Time {
		out[i] = ts.Seconds()
	}
	return out
}
