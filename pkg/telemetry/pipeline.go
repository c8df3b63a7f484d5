package telemetry

import (
	"errors"
	"fmt"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// SessionProvider is the external collaborator owning session retrieval.
// The processor only reads through it; all methods are best-effort
// lookups against an already-loaded session.
type SessionProvider interface {
	// LapsForDriver returns the driver's laps in timing order, empty if none.
	LapsForDriver(sess *model.Session, driver string) []model.Lap
	// TelemetryForLap returns the lap's raw table, or ErrNoTelemetry.
	TelemetryForLap(lap *model.Lap) (*model.RawTelemetry, error)
	// TeamNameForDriver resolves the driver's team, "Unknown" if unresolvable.
	TeamNameForDriver(sess *model.Session, driver string) string
	// CircuitInfo returns static circuit geometry, or an error when
	// unavailable (non-fatal for all consumers).
	CircuitInfo(sess *model.Session) (*model.CircuitInfo, error)
}

type Option func(*Processor)

func WithProvider(p SessionProvider) Option {
	return func(proc *Processor) {
		proc.provider = p
	}
}

func WithLogger(l *log.Logger) Option {
	return func(proc *Processor) {
		proc.l = l
	}
}

// Processor is the telemetry normalization and comparison engine. It is
// stateless apart from its collaborators and safe for concurrent use.
type Processor struct {
	provider SessionProvider
	l        *log.Logger
}

func NewProcessor(opts ...Option) *Processor {
	ret := &Processor{l: log.Default().Named("telemetry")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// LapTelemetry extracts summary and normalized telemetry for one
// driver/lap. Both return values are nil when the driver or lap is not
// found (a normal empty result). The summary may be present with nil
// telemetry when no table was recorded for the lap.
//
//nolint:whitespace // can't make both editor and linter happy
func (p *Processor) LapTelemetry(
	sess *model.Session, driver string, lapNumber int,
) (*model.LapSummary, *model.NormalizedTelemetry, error) {
	laps := p.provider.LapsForDriver(sess, driver)
	if len(laps) == 0 {
		p.l.Warn("no laps found for driver", log.String("driver", driver))
		return nil, nil, nil
	}
	var lap *model.Lap
	for i := range laps {
		if laps[i].LapNumber == lapNumber {
			lap = &laps[i]
			break
		}
	}
	if lap == nil {
		p.l.Warn("lap not found for driver",
			log.String("driver", driver), log.Int("lap", lapNumber))
		return nil, nil, nil
	}
	summary, err := ExtractLapSummary(lap, driver)
	if err != nil {
		return nil, nil, err
	}
	tab, err := p.provider.TelemetryForLap(lap)
	if err != nil || tab.Len() == 0 {
		p.l.Warn("no telemetry for lap",
			log.String("driver", driver), log.Int("lap", lapNumber),
			log.ErrorField(err))
		return summary, nil, nil
	}
	norm, err := Normalize(tab)
	if err != nil {
		return summary, nil, &TelemetryProcessingError{
			Driver: driver, LapNumber: lapNumber, Err: err,
		}
	}
	return summary, norm, nil
}

// LapMetadata is the metadata-only variant of LapTelemetry: it never
// touches the telemetry table.
//
//nolint:whitespace // can't make both editor and linter happy
func (p *Processor) LapMetadata(
	sess *model.Session, driver string, lapNumber int,
) (*model.LapSummary, error) {
	laps := p.provider.LapsForDriver(sess, driver)
	for i := range laps {
		if laps[i].LapNumber == lapNumber {
			return ExtractLapSummary(&laps[i], driver)
		}
	}
	return nil, nil
}

// CompareDrivers runs the single-lap pipeline for two drivers on the
// same lap number. One driver failing does not block the other; typed
// failures are joined into the returned error while the partial result
// is still populated. DeltaSeconds is Driver1 minus Driver2 (positive:
// Driver1 slower), present only when both lap times are known.
//
//nolint:whitespace // can't make both editor and linter happy
func (p *Processor) CompareDrivers(
	sess *model.Session, driver1, driver2 string, lapNumber int,
) (*model.Comparison, error) {
	ret := &model.Comparison{
		Driver1:   driver1,
		Driver2:   driver2,
		LapNumber: lapNumber,
	}
	var err1, err2 error
	ret.Lap1, ret.Telemetry1, err1 = p.LapTelemetry(sess, driver1, lapNumber)
	ret.Lap2, ret.Telemetry2, err2 = p.LapTelemetry(sess, driver2, lapNumber)

	if ret.Lap1 != nil && ret.Lap2 != nil &&
		ret.Lap1.LapTimeSeconds != nil && ret.Lap2.LapTimeSeconds != nil {
		delta := *ret.Lap1.LapTimeSeconds - *ret.Lap2.LapTimeSeconds
		ret.DeltaSeconds = &delta
	}
	return ret, errors.Join(err1, err2)
}

// FastestLapNumber returns the driver's fastest lap number, false when
// the driver has no timed laps.
func (p *Processor) FastestLapNumber(sess *model.Session, driver string) (int, bool) {
	laps := p.provider.LapsForDriver(sess, driver)
	lap, ok := SelectLap(laps, nil, SelectFastest)
	if !ok {
		return 0, false
	}
	return lap.LapNumber, true
}

// Normalize converts a raw telemetry table into the client-ready form.
// The time sequence is re-based so the first sample is exactly 0: raw
// timestamps are session-relative, consumers require lap-relative time.
func Normalize(tab *model.RawTelemetry) (*model.NormalizedTelemetry, error) {
	for name, col := range tab.Columns {
		if len(col) != tab.Len() {
			return nil, fmt.Errorf("channel %s has %d samples, expected %d",
				name, len(col), tab.Len())
		}
	}
	times := tab.TimeSeconds()
	if len(times) > 0 {
		base := times[0]
		for i := range times {
			times[i] -= base
		}
	}
	ret := &model.NormalizedTelemetry{
		Time:     times,
		Distance: FloatSeries(tab, model.ChannelDistance),
		Speed:    FloatSeries(tab, model.ChannelSpeed),
		Throttle: FloatSeries(tab, model.ChannelThrottle),
		Brake:    FloatSeries(tab, model.ChannelBrake),
		Gear:     IntSeries(tab, model.ChannelGear),
	}
	// optional channels stay nil when absent instead of being
	// zero-filled to the table length
	if _, ok := tab.Column(model.ChannelRPM); ok {
		ret.RPM = FloatSeries(tab, model.ChannelRPM)
	}
	if _, ok := tab.Column(model.ChannelDRS); ok {
		ret.DRS = IntSeries(tab, model.ChannelDRS)
	}
	return ret, nil
}
