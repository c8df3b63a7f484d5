package model

// Derived, client-facing types. All of them are built once by the
// telemetry processor and immutable afterwards.

// LapSummary is the timing summary of a single lap. Optional fields are
// nil when the source lap has no value; they serialize as absent.
type LapSummary struct {
	LapNumber      int      `json:"lap_number"`
	Driver         string   `json:"driver"`
	LapTimeSeconds *float64 `json:"lap_time_seconds,omitempty"`
	// LapTimeStr is LapTimeSeconds rendered as M:SS.mmm, e.g. "1:23.456".
	LapTimeStr     *string  `json:"lap_time_str,omitempty"`
	Sector1Time    *float64 `json:"sector_1_time,omitempty"`
	Sector2Time    *float64 `json:"sector_2_time,omitempty"`
	Sector3Time    *float64 `json:"sector_3_time,omitempty"`
	Compound       *string  `json:"compound,omitempty"`
	IsPersonalBest bool     `json:"is_personal_best"`
}

// NormalizedTelemetry is the client-ready form of one lap's telemetry.
// All non-nil sequences have identical length (the sample count of the
// source table). Time is re-based to lap-relative seconds, first sample
// exactly 0. RPM and DRS stay nil when the source table has no such
// channel; they are never zero-filled to fake presence.
type NormalizedTelemetry struct {
	Time     []float64 `json:"time"`
	Distance []float64 `json:"distance"`
	Speed    []float64 `json:"speed"`
	Throttle []float64 `json:"throttle"`
	Brake    []float64 `json:"brake"`
	Gear     []int     `json:"gear"`
	RPM      []float64 `json:"rpm,omitempty"`
	DRS      []int     `json:"drs,omitempty"`
}

// SpeedTrace is one driver's distance-indexed telemetry selected for a
// multi-driver comparison.
type SpeedTrace struct {
	Driver    string    `json:"driver"`
	Team      string    `json:"team"`
	LapNumber int       `json:"lap_number"`
	LapTime   *float64  `json:"lap_time"`
	Distance  []float64 `json:"distance"`
	Speed     []float64 `json:"speed"`
	Throttle  []float64 `json:"throttle"`
	Brake     []float64 `json:"brake"`
	Color     string    `json:"color"`
}

// DeltaCurve is the speed difference between two drivers resampled onto
// a common distance grid (Driver1 minus Driver2).
type DeltaCurve struct {
	Distance []float64 `json:"distance"`
	Delta    []float64 `json:"delta"`
	Driver1  string    `json:"driver1"`
	Driver2  string    `json:"driver2"`
}

// SpeedTraceResult is the aligner output. Delta is only present for
// exactly two traces; Error carries the message for the "no usable
// traces" outcome.
type SpeedTraceResult struct {
	Traces      []SpeedTrace `json:"traces"`
	MaxDistance float64      `json:"max_distance"`
	Delta       *DeltaCurve  `json:"delta,omitempty"`
	CircuitInfo *CircuitInfo `json:"circuit_info,omitempty"`
	SessionInfo SessionInfo  `json:"session_info"`
	Error       string       `json:"error,omitempty"`
}

// Comparison is the result of comparing two drivers on the same lap
// number. Either driver's parts may be nil independently; DeltaSeconds
// is only set when both lap times are known (positive: Driver1 slower).
type Comparison struct {
	Driver1      string               `json:"driver1"`
	Driver2      string               `json:"driver2"`
	LapNumber    int                  `json:"lap_number"`
	Lap1         *LapSummary          `json:"driver1_lap,omitempty"`
	Lap2         *LapSummary          `json:"driver2_lap,omitempty"`
	Telemetry1   *NormalizedTelemetry `json:"driver1_telemetry,omitempty"`
	Telemetry2   *NormalizedTelemetry `json:"driver2_telemetry,omitempty"`
	DeltaSeconds *float64             `json:"delta_time,omitempty"`
}
