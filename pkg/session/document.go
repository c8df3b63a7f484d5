package session

import (
	"math"
	"time"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// wire format of the upstream session documents. Durations come as
// seconds, missing values as null. The DTOs exist so JSON null handling
// stays at the boundary; the in-memory model uses durations and NaN.
type (
	sessionDoc struct {
		Year      int               `json:"year"`
		EventName string            `json:"eventName"`
		Name      string            `json:"name"`
		Teams     map[string]string `json:"teams"`
		Circuit   *circuitDoc       `json:"circuit"`
		Laps      []lapDoc          `json:"laps"`
	}
	circuitDoc struct {
		Corners  []cornerDoc `json:"corners"`
		Rotation float64     `json:"rotation"`
	}
	cornerDoc struct {
		Number   int     `json:"number"`
		Distance float64 `json:"distance"`
	}
	lapDoc struct {
		Driver         string        `json:"driver"`
		LapNumber      int           `json:"lapNumber"`
		LapTime        *float64      `json:"lapTime"`
		Sector1Time    *float64      `json:"sector1Time"`
		Sector2Time    *float64      `json:"sector2Time"`
		Sector3Time    *float64      `json:"sector3Time"`
		Compound       string        `json:"compound"`
		IsPersonalBest bool          `json:"isPersonalBest"`
		Telemetry      *telemetryDoc `json:"telemetry"`
	}
	telemetryDoc struct {
		// Time holds seconds since session start, one entry per sample.
		Time []float64 `json:"time"`
		// Channels maps channel name to per-sample values; null marks a
		// missing reading.
		Channels map[string][]*float64 `json:"channels"`
	}
)

func (d *sessionDoc) toModel() *model.Session {
	ret := &model.Session{
		Year:      d.Year,
		EventName: d.EventName,
		Name:      d.Name,
		Teams:     d.Teams,
		Laps:      make([]model.Lap, 0, len(d.Laps)),
	}
	if d.Circuit != nil {
		circuit := &model.CircuitInfo{
			Corners:  make([]model.Corner, 0, len(d.Circuit.Corners)),
			Rotation: d.Circuit.Rotation,
		}
		for _, c := range d.Circuit.Corners {
			circuit.Corners = append(circuit.Corners,
				model.Corner{Number: c.Number, Distance: c.Distance})
		}
		ret.Circuit = circuit
	}
	for i := range d.Laps {
		ret.Laps = append(ret.Laps, d.Laps[i].toModel())
	}
	return ret
}

func (d *lapDoc) toModel() model.Lap {
	ret := model.Lap{
		Driver:         d.Driver,
		LapNumber:      d.LapNumber,
		LapTime:        secondsToDuration(d.LapTime),
		Sector1Time:    secondsToDuration(d.Sector1Time),
		Sector2Time:    secondsToDuration(d.Sector2Time),
		Sector3Time:    secondsToDuration(d.Sector3Time),
		Compound:       d.Compound,
		IsPersonalBest: d.IsPersonalBest,
	}
	if d.Telemetry != nil {
		ret.Telemetry = d.Telemetry.toModel()
	}
	return ret
}

func (d *telemetryDoc) toModel() *model.RawTelemetry {
	ret := &model.RawTelemetry{
		Time:    make([]time.Duration, len(d.Time)),
		Columns: make(map[string][]float64, len(d.Channels)),
	}
	for i, secs := range d.Time {
		ret.Time[i] = time.Duration(secs * float64(time.Second))
	}
	for name, vals := range d.Channels {
		col := make([]float64, len(vals))
		for i, v := range vals {
			if v == nil {
				col[i] = math.NaN()
			} else {
				col[i] = *v
			}
		}
		ret.Columns[name] = col
	}
	return ret
}

func secondsToDuration(secs *float64) *time.Duration {
	if secs == nil {
		return nil
	}
	d := time.Duration(*secs * float64(time.Second))
	return &d
}
