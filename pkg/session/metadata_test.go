package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexview/f1telemetry-service-go/testsupport/sampledata"
)

func TestMetadata(t *testing.T) {
	got := Metadata(sampledata.SampleSession())

	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, "Bahrain Grand Prix", got.GP)
	assert.Equal(t, "Q", got.Session)
	// distinct and sorted
	assert.Equal(t, []string{"LEC", "VER"}, got.Drivers)
	assert.Equal(t, 11, got.TotalLaps)
	assert.True(t, got.Cached)
}
