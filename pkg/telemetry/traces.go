package telemetry

import (
	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// SpeedTraces extracts distance-indexed speed/throttle/brake traces for
// an arbitrary set of drivers. Each driver is processed independently:
// a failing driver is logged and skipped, never aborting the batch.
// With exactly two resulting traces a distance-resampled speed delta is
// attached; for any other count the delta is omitted. Zero usable
// traces yield an explicit empty result with an error message, which is
// a normal "no data" outcome.
//
//nolint:whitespace // can't make both editor and linter happy
func (p *Processor) SpeedTraces(
	sess *model.Session, drivers []string, lapNumber *int, mode SelectionMode,
) *model.SpeedTraceResult {
	ret := &model.SpeedTraceResult{
		Traces:      []model.SpeedTrace{},
		SessionInfo: sess.Info(),
	}
	maxDistance := 0.0
	for _, driver := range drivers {
		trace, dist, err := p.buildTrace(sess, driver, lapNumber, mode)
		if err != nil {
			p.l.Error("failed to extract trace",
				log.String("driver", driver), log.ErrorField(err))
			continue
		}
		if trace == nil {
			continue
		}
		if dist > maxDistance {
			maxDistance = dist
		}
		ret.Traces = append(ret.Traces, *trace)
	}
	if len(ret.Traces) == 0 {
		ret.Error = "No telemetry data available for selected drivers"
		return ret
	}
	ret.MaxDistance = maxDistance
	if len(ret.Traces) == 2 {
		ret.Delta = ComputeDelta(&ret.Traces[0], &ret.Traces[1], maxDistance)
	}
	if circuit, err := p.provider.CircuitInfo(sess); err == nil {
		ret.CircuitInfo = circuit
	} else {
		p.l.Warn("failed to get circuit info", log.ErrorField(err))
	}
	return ret
}

// buildTrace selects and extracts one driver's trace. A nil trace with
// nil error means "nothing usable for this driver" (already logged).
//
//nolint:whitespace // can't make both editor and linter happy
func (p *Processor) buildTrace(
	sess *model.Session, driver string, lapNumber *int, mode SelectionMode,
) (*model.SpeedTrace, float64, error) {
	laps := p.provider.LapsForDriver(sess, driver)
	if len(laps) == 0 {
		p.l.Warn("no laps found for driver", log.String("driver", driver))
		return nil, 0, nil
	}
	lap, ok := SelectLap(laps, lapNumber, mode)
	if !ok {
		p.l.Warn("no valid lap found for driver",
			log.String("driver", driver), log.String("mode", string(mode)))
		return nil, 0, nil
	}
	p.l.Debug("getting telemetry",
		log.String("driver", driver), log.Int("lap", lap.LapNumber))
	tab, err := p.provider.TelemetryForLap(lap)
	if err != nil {
		return nil, 0, err
	}
	if tab.Len() == 0 {
		p.l.Warn("no telemetry data for driver", log.String("driver", driver))
		return nil, 0, nil
	}
	distance := FloatSeries(tab, model.ChannelDistance)
	if len(distance) == 0 {
		distance = DeriveDistance(tab)
	}
	var lapTime *float64
	if lap.LapTime != nil {
		secs := lap.LapTime.Seconds()
		lapTime = &secs
	}
	team := p.provider.TeamNameForDriver(sess, driver)
	trace := &model.SpeedTrace{
		Driver:    driver,
		Team:      team,
		LapNumber: lap.LapNumber,
		LapTime:   lapTime,
		Distance:  distance,
		Speed:     FloatSeries(tab, model.ChannelSpeed),
		Throttle:  FloatSeries(tab, model.ChannelThrottle),
		Brake:     FloatSeries(tab, model.ChannelBrake),
		Color:     TraceColor(team, driver),
	}
	dist := 0.0
	if len(distance) > 0 {
		dist = distance[len(distance)-1]
	}
	return trace, dist, nil
}
