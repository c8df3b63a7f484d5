package sampledata

import (
	"time"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

func durPtr(secs float64) *time.Duration {
	d := time.Duration(secs * float64(time.Second))
	return &d
}

// SampleSession returns a small but complete session: two drivers with
// telemetry, one lap without a table, a circuit and a team mapping.
func SampleSession() *model.Session {
	return &model.Session{
		Year:      2024,
		EventName: "Bahrain Grand Prix",
		Name:      "Q",
		Teams: map[string]string{
			"VER": "Red Bull Racing Honda RBPT",
			"LEC": "Ferrari",
		},
		Circuit: &model.CircuitInfo{
			Corners: []model.Corner{
				{Number: 1, Distance: 120.5},
				{Number: 2, Distance: 340.2},
			},
			Rotation: 92.0,
		},
		Laps: []model.Lap{
			{
				Driver:         "VER",
				LapNumber:      10,
				LapTime:        durPtr(83.456),
				Sector1Time:    durPtr(28.1),
				Sector2Time:    durPtr(35.2),
				Sector3Time:    durPtr(20.156),
				Compound:       "SOFT",
				IsPersonalBest: true,
				Telemetry:      VerTelemetry(),
			},
			{
				Driver:      "VER",
				LapNumber:   11,
				LapTime:     durPtr(84.012),
				Sector1Time: durPtr(28.3),
				Compound:    "SOFT",
			},
			{
				Driver:         "LEC",
				LapNumber:      10,
				LapTime:        durPtr(83.901),
				Sector1Time:    durPtr(28.2),
				Sector2Time:    durPtr(35.4),
				Sector3Time:    durPtr(20.301),
				Compound:       "MEDIUM",
				IsPersonalBest: true,
				Telemetry:      LecTelemetry(),
			},
		},
	}
}

// VerTelemetry carries all supported channels including the optional
// RPM and DRS. Timestamps are session-relative on purpose.
func VerTelemetry() *model.RawTelemetry {
	return &model.RawTelemetry{
		Time: []time.Duration{
			100 * time.Second,
			100*time.Second + 500*time.Millisecond,
			101 * time.Second,
			101*time.Second + 500*time.Millisecond,
			102 * time.Second,
		},
		Columns: map[string][]float64{
			model.ChannelDistance: {0, 50, 100, 150, 200},
			model.ChannelSpeed:    {200, 250, 300, 280, 260},
			model.ChannelThrottle: {100, 100, 80, 60, 100},
			model.ChannelBrake:    {0, 0, 20, 40, 0},
			model.ChannelGear:     {6, 7, 8, 7, 7},
			model.ChannelRPM:      {11000, 11500, 12000, 11800, 11600},
			model.ChannelDRS:      {0, 0, 12, 12, 0},
		},
	}
}

// LecTelemetry covers a shorter lap without the optional channels.
func LecTelemetry() *model.RawTelemetry {
	return &model.RawTelemetry{
		Time: []time.Duration{
			200 * time.Second,
			200*time.Second + 500*time.Millisecond,
			201 * time.Second,
			201*time.Second + 500*time.Millisecond,
			202 * time.Second,
		},
		Columns: map[string][]float64{
			model.ChannelDistance: {0, 45, 90, 135, 180},
			model.ChannelSpeed:    {195, 240, 290, 275, 255},
			model.ChannelThrottle: {100, 95, 80, 70, 100},
			model.ChannelBrake:    {0, 0, 25, 35, 0},
			model.ChannelGear:     {6, 7, 8, 7, 7},
		},
	}
}

// SampleSessionJSON is the upstream wire form of SampleSession, used by
// loader and HTTP tests.
func SampleSessionJSON() []byte {
	return []byte(`{
  "year": 2024,
  "eventName": "Bahrain Grand Prix",
  "name": "Q",
  "teams": {
    "VER": "Red Bull Racing Honda RBPT",
    "LEC": "Ferrari"
  },
  "circuit": {
    "corners": [
      {"number": 1, "distance": 120.5},
      {"number": 2, "distance": 340.2}
    ],
    "rotation": 92.0
  },
  "laps": [
    {
      "driver": "VER",
      "lapNumber": 10,
      "lapTime": 83.456,
      "sector1Time": 28.1,
      "sector2Time": 35.2,
      "sector3Time": 20.156,
      "compound": "SOFT",
      "isPersonalBest": true,
      "telemetry": {
        "time": [100.0, 100.5, 101.0, 101.5, 102.0],
        "channels": {
          "Distance": [0, 50, 100, 150, 200],
          "Speed": [200, 250, 300, 280, 260],
          "Throttle": [100, 100, 80, 60, 100],
          "Brake": [0, 0, 20, 40, 0],
          "nGear": [6, 7, 8, 7, 7],
          "RPM": [11000, 11500, 12000, 11800, 11600],
          "DRS": [0, 0, 12, 12, 0]
        }
      }
    },
    {
      "driver": "VER",
      "lapNumber": 11,
      "lapTime": 84.012,
      "sector1Time": 28.3,
      "sector2Time": null,
      "sector3Time": null,
      "compound": "SOFT",
      "isPersonalBest": false,
      "telemetry": null
    },
    {
      "driver": "LEC",
      "lapNumber": 10,
      "lapTime": 83.901,
      "sector1Time": 28.2,
      "sector2Time": 35.4,
      "sector3Time": 20.301,
      "compound": "MEDIUM",
      "isPersonalBest": true,
      "telemetry": {
        "time": [200.0, 200.5, 201.0, 201.5, 202.0],
        "channels": {
          "Distance": [0, 45, 90, 135, 180],
          "Speed": [195, 240, 290, 275, 255],
          "Throttle": [100, 95, 80, 70, 100],
          "Brake": [0, 0, 25, 35, 0],
          "nGear": [6, 7, 8, 7, 7]
        }
      }
    }
  ]
}`)
}
