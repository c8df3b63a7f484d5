package telemetry

import (
	"errors"
	"math"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

func durPtrSecs(secs float64) *time.Duration {
	d := time.Duration(secs * float64(time.Second))
	return &d
}

func durations(secs ...float64) []time.Duration {
	out := make([]time.Duration, len(secs))
	for i, s := range secs {
		out[i] = time.Duration(s * float64(time.Second))
	}
	return out
}

func approxFloats() cmp.Option {
	return cmpopts.EquateApprox(0, 1e-6)
}

// fakeProvider serves laps straight from a session value, mirroring the
// production provider's lookup semantics.
type fakeProvider struct {
	sess *model.Session
}

func (f *fakeProvider) LapsForDriver(sess *model.Session, driver string) []model.Lap {
	return lo.Filter(sess.Laps, func(l model.Lap, _ int) bool {
		return l.Driver == driver
	})
}

func (f *fakeProvider) TelemetryForLap(lap *model.Lap) (*model.RawTelemetry, error) {
	if lap.Telemetry == nil || lap.Telemetry.Len() == 0 {
		return nil, ErrNoTelemetry
	}
	return lap.Telemetry, nil
}

func (f *fakeProvider) TeamNameForDriver(sess *model.Session, driver string) string {
	if team, ok := sess.Teams[driver]; ok && team != "" {
		return team
	}
	return "Unknown"
}

func (f *fakeProvider) CircuitInfo(sess *model.Session) (*model.CircuitInfo, error) {
	if sess.Circuit == nil {
		return nil, errors.New("no circuit info")
	}
	return sess.Circuit, nil
}

func testProcessor(sess *model.Session) *Processor {
	return NewProcessor(WithProvider(&fakeProvider{sess: sess}))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
