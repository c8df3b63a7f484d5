package telemetry

import (
	"github.com/samber/lo"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// SelectionMode controls which lap represents a driver when no explicit
// lap number is given.
type SelectionMode string

const (
	// SelectFastest picks the lap with the lowest non-missing lap time.
	SelectFastest SelectionMode = "fastest"
	// SelectSpecific expects an explicit lap number.
	SelectSpecific SelectionMode = "specific"
	// SelectFirst falls back to the first lap in the driver's list,
	// regardless of time validity. Default for unknown modes.
	SelectFirst SelectionMode = "first"
)

// SelectLap chooses exactly one lap out of a driver's lap list.
// An explicit lapNumber always wins over the mode. The second return
// value is false when no lap qualifies.
func SelectLap(laps []model.Lap, lapNumber *int, mode SelectionMode) (*model.Lap, bool) {
	if len(laps) == 0 {
		return nil, false
	}
	if lapNumber != nil {
		for i := range laps {
			if laps[i].LapNumber == *lapNumber {
				return &laps[i], true
			}
		}
		return nil, false
	}
	if mode == SelectFastest {
		timed := lo.Filter(laps, func(l model.Lap, _ int) bool {
			return l.LapTime != nil
		})
		if len(timed) == 0 {
			return nil, false
		}
		// MinBy keeps the first occurrence on equal times, which is the
		// documented tie-break (unreachable in practice since lap
		// numbers are unique, but it must not fail).
		fastest := lo.MinBy(timed, func(a, b model.Lap) bool {
			return *a.LapTime < *b.LapTime
		})
		return &fastest, true
	}
	return &laps[0], true
}
