//nolint:funlen // ok for tests
package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

func TestSelectLap(t *testing.T) {
	laps := []model.Lap{
		{Driver: "VER", LapNumber: 3, LapTime: durPtrSecs(84.5)},
		{Driver: "VER", LapNumber: 4},
		{Driver: "VER", LapNumber: 5, LapTime: durPtrSecs(83.2)},
		{Driver: "VER", LapNumber: 6, LapTime: durPtrSecs(85.0)},
	}
	lapFive := 5
	lapNine := 9

	tests := []struct {
		name      string
		laps      []model.Lap
		lapNumber *int
		mode      SelectionMode
		wantLap   int
		wantOk    bool
	}{
		{
			name:    "fastest picks lowest timed lap",
			laps:    laps,
			mode:    SelectFastest,
			wantLap: 5,
			wantOk:  true,
		},
		{
			name:      "explicit lap number wins over mode",
			laps:      laps,
			lapNumber: &lapFive,
			mode:      SelectFastest,
			wantLap:   5,
			wantOk:    true,
		},
		{
			name:      "explicit lap number not present",
			laps:      laps,
			lapNumber: &lapNine,
			mode:      SelectSpecific,
			wantOk:    false,
		},
		{
			name:    "first mode takes the leading lap",
			laps:    laps,
			mode:    SelectFirst,
			wantLap: 3,
			wantOk:  true,
		},
		{
			name:    "unknown mode falls back to first",
			laps:    laps,
			mode:    SelectionMode("bogus"),
			wantLap: 3,
			wantOk:  true,
		},
		{
			name:   "no laps at all",
			laps:   []model.Lap{},
			mode:   SelectFastest,
			wantOk: false,
		},
		{
			name:   "fastest with only untimed laps",
			laps:   []model.Lap{{Driver: "VER", LapNumber: 1}},
			mode:   SelectFastest,
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectLap(tt.laps, tt.lapNumber, tt.mode)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.wantLap, got.LapNumber)
			}
		})
	}
}
