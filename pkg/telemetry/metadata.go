package telemetry

import (
	"fmt"
	"time"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// ExtractLapSummary derives the timing summary of a single lap row.
// The lap number is the only required field; everything else degrades
// to an absent value.
func ExtractLapSummary(lap *model.Lap, driver string) (*model.LapSummary, error) {
	if lap.LapNumber <= 0 {
		return nil, &MetadataExtractionError{
			Driver: driver,
			Reason: "lap number missing or not numeric",
		}
	}
	ret := &model.LapSummary{
		LapNumber:      lap.LapNumber,
		Driver:         driver,
		IsPersonalBest: lap.IsPersonalBest,
	}
	if lap.LapTime != nil {
		secs := lap.LapTime.Seconds()
		formatted := FormatLapTime(secs)
		ret.LapTimeSeconds = &secs
		ret.LapTimeStr = &formatted
	}
	ret.Sector1Time = sectorSeconds(lap.Sector1Time)
	ret.Sector2Time = sectorSeconds(lap.Sector2Time)
	ret.Sector3Time = sectorSeconds(lap.Sector3Time)
	if lap.Compound != "" {
		compound := lap.Compound
		ret.Compound = &compound
	}
	return ret, nil
}

// sector times convert independently; one missing sector does not
// block the others.
func sectorSeconds(d *time.Duration) *float64 {
	if d == nil {
		return nil
	}
	secs := d.Seconds()
	return &secs
}

// FormatLapTime renders a lap time in seconds as M:SS.mmm with
// zero-padded seconds, e.g. 83.456 -> "1:23.456".
func FormatLapTime(seconds float64) string {
	minutes := int(seconds) / 60
	rem := seconds - float64(minutes)*60
	return fmt.Sprintf("%d:%06.3f", minutes, rem)
}
