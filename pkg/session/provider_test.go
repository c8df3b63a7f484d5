package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
	"github.com/apexview/f1telemetry-service-go/pkg/telemetry"
	"github.com/apexview/f1telemetry-service-go/testsupport/sampledata"
)

func TestProviderLapsForDriver(t *testing.T) {
	sess := sampledata.SampleSession()
	p := NewProvider()

	assert.Len(t, p.LapsForDriver(sess, "VER"), 2)
	assert.Len(t, p.LapsForDriver(sess, "LEC"), 1)
	assert.Empty(t, p.LapsForDriver(sess, "HAM"))
}

func TestProviderTelemetryForLap(t *testing.T) {
	sess := sampledata.SampleSession()
	p := NewProvider()

	tab, err := p.TelemetryForLap(&sess.Laps[0])
	assert.NoError(t, err)
	assert.Equal(t, 5, tab.Len())

	_, err = p.TelemetryForLap(&sess.Laps[1])
	assert.ErrorIs(t, err, telemetry.ErrNoTelemetry)
}

func TestProviderTeamNameForDriver(t *testing.T) {
	sess := sampledata.SampleSession()
	p := NewProvider()

	assert.Equal(t, "Red Bull Racing Honda RBPT", p.TeamNameForDriver(sess, "VER"))
	assert.Equal(t, "Unknown", p.TeamNameForDriver(sess, "HAM"))
}

func TestProviderCircuitInfo(t *testing.T) {
	sess := sampledata.SampleSession()
	p := NewProvider()

	circuit, err := p.CircuitInfo(sess)
	assert.NoError(t, err)
	assert.Len(t, circuit.Corners, 2)

	_, err = p.CircuitInfo(&model.Session{})
	assert.ErrorIs(t, err, ErrNoCircuitInfo)
}
