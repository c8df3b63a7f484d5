package model

import "time"

// Lap is one completed circuit traversal by one driver. Timing fields
// are optional; a nil duration means the timing source did not record a
// value (deleted lap, red flag, missing transponder data).
type Lap struct {
	Driver string `json:"driver"`
	// LapNumber is unique per driver within a session, always >= 1.
	// Zero marks a lap row without a usable lap number.
	LapNumber      int            `json:"lapNumber"`
	LapTime        *time.Duration `json:"lapTime,omitempty"`
	Sector1Time    *time.Duration `json:"sector1Time,omitempty"`
	Sector2Time    *time.Duration `json:"sector2Time,omitempty"`
	Sector3Time    *time.Duration `json:"sector3Time,omitempty"`
	Compound       string         `json:"compound,omitempty"`
	IsPersonalBest bool           `json:"isPersonalBest"`

	// Telemetry is the lap's raw sensor table, nil when none was
	// recorded. Populated lazily by the session provider.
	Telemetry *RawTelemetry `json:"telemetry,omitempty"`
}
