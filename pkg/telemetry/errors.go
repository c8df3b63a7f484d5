package telemetry

import (
	"errors"
	"fmt"
)

// ErrNoTelemetry is returned by the session provider when a lap has no
// recorded telemetry table. Callers treat it as "not found", not as a
// processing failure.
var ErrNoTelemetry = errors.New("no telemetry recorded for lap")

// MetadataExtractionError marks a matched lap row whose required fields
// are missing or malformed. Fatal to the single lookup only.
type MetadataExtractionError struct {
	Driver string
	Reason string
}

func (e *MetadataExtractionError) Error() string {
	return fmt.Sprintf("lap metadata extraction failed for %s: %s", e.Driver, e.Reason)
}

// TelemetryProcessingError marks a telemetry table that exists but
// cannot be converted. Unlike the "not found" cases this is raised to
// the caller, never silently turned into an empty result.
type TelemetryProcessingError struct {
	Driver    string
	LapNumber int
	Err       error
}

func (e *TelemetryProcessingError) Error() string {
	return fmt.Sprintf("telemetry processing failed for %s lap %d: %v",
		e.Driver, e.LapNumber, e.Err)
}

func (e *TelemetryProcessingError) Unwrap() error { return e.Err }
