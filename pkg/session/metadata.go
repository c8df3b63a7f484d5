package session

import (
	"sort"

	"github.com/samber/lo"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// Metadata derives the client-facing description of a loaded session:
// sorted distinct driver codes and the highest lap number seen.
func Metadata(sess *model.Session) *model.SessionMetadata {
	drivers := lo.Uniq(lo.FilterMap(sess.Laps, func(l model.Lap, _ int) (string, bool) {
		return l.Driver, l.Driver != ""
	}))
	sort.Strings(drivers)

	totalLaps := 0
	for i := range sess.Laps {
		if sess.Laps[i].LapNumber > totalLaps {
			totalLaps = sess.Laps[i].LapNumber
		}
	}
	return &model.SessionMetadata{
		Year:        sess.Year,
		GP:          sess.EventName,
		Session:     sess.Name,
		Drivers:     drivers,
		TotalLaps:   totalLaps,
		SessionName: sess.Name,
		EventName:   sess.EventName,
		// reaching this point means the session is loaded, possibly
		// from cache
		Cached: true,
	}
}
