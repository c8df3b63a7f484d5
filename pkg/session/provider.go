package session

import (
	"errors"

	"github.com/samber/lo"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
	"github.com/apexview/f1telemetry-service-go/pkg/telemetry"
)

var ErrNoCircuitInfo = errors.New("no circuit info available for session")

// Provider implements telemetry.SessionProvider on top of loaded
// session documents. All lookups are read-only.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) LapsForDriver(sess *model.Session, driver string) []model.Lap {
	return lo.Filter(sess.Laps, func(l model.Lap, _ int) bool {
		return l.Driver == driver
	})
}

// TelemetryForLap returns the lap's raw table. The table was fetched
// with the session document; a lap without one yields ErrNoTelemetry.
func (p *Provider) TelemetryForLap(lap *model.Lap) (*model.RawTelemetry, error) {
	if lap.Telemetry == nil || lap.Telemetry.Len() == 0 {
		return nil, telemetry.ErrNoTelemetry
	}
	return lap.Telemetry, nil
}

func (p *Provider) TeamNameForDriver(sess *model.Session, driver string) string {
	if team, ok := sess.Teams[driver]; ok && team != "" {
		return team
	}
	return "Unknown"
}

func (p *Provider) CircuitInfo(sess *model.Session) (*model.CircuitInfo, error) {
	if sess.Circuit == nil {
		return nil, ErrNoCircuitInfo
	}
	return sess.Circuit, nil
}
