//nolint:funlen // ok for tests
package telemetry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/apexview/f1telemetry-service-go/pkg/model"
	"github.com/apexview/f1telemetry-service-go/testsupport/sampledata"
)

func TestNormalize(t *testing.T) {
	t.Run("time is re-based to lap start", func(t *testing.T) {
		got, err := Normalize(sampledata.VerTelemetry())
		assert.NoError(t, err)
		want := []float64{0, 0.5, 1.0, 1.5, 2.0}
		if diff := cmp.Diff(want, got.Time, approxFloats()); diff != "" {
			t.Errorf("Time mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 0.0, got.Time[0])
	})

	t.Run("all channels present", func(t *testing.T) {
		got, err := Normalize(sampledata.VerTelemetry())
		assert.NoError(t, err)
		assert.Equal(t, []int{6, 7, 8, 7, 7}, got.Gear)
		assert.Equal(t, []int{0, 0, 12, 12, 0}, got.DRS)
		assert.Len(t, got.RPM, 5)
		assert.Len(t, got.Distance, 5)
	})

	t.Run("optional channels stay nil when absent", func(t *testing.T) {
		got, err := Normalize(sampledata.LecTelemetry())
		assert.NoError(t, err)
		assert.Nil(t, got.RPM)
		assert.Nil(t, got.DRS)
		assert.Len(t, got.Speed, 5)
	})

	t.Run("ragged column is rejected", func(t *testing.T) {
		tab := &model.RawTelemetry{
			Time: durations(0, 1, 2),
			Columns: map[string][]float64{
				model.ChannelSpeed: {200, 210},
			},
		}
		got, err := Normalize(tab)
		assert.Nil(t, got)
		assert.Error(t, err)
	})
}

func TestProcessorLapTelemetry(t *testing.T) {
	sess := sampledata.SampleSession()
	proc := testProcessor(sess)

	t.Run("lap with telemetry", func(t *testing.T) {
		summary, telemetry, err := proc.LapTelemetry(sess, "VER", 10)
		assert.NoError(t, err)
		assert.NotNil(t, summary)
		assert.NotNil(t, telemetry)
		assert.Equal(t, 10, summary.LapNumber)
		assert.Equal(t, 0.0, telemetry.Time[0])
	})

	t.Run("lap without telemetry keeps the summary", func(t *testing.T) {
		summary, telemetry, err := proc.LapTelemetry(sess, "VER", 11)
		assert.NoError(t, err)
		assert.NotNil(t, summary)
		assert.Nil(t, telemetry)
	})

	t.Run("unknown driver is a normal empty result", func(t *testing.T) {
		summary, telemetry, err := proc.LapTelemetry(sess, "HAM", 10)
		assert.NoError(t, err)
		assert.Nil(t, summary)
		assert.Nil(t, telemetry)
	})

	t.Run("unknown lap is a normal empty result", func(t *testing.T) {
		summary, telemetry, err := proc.LapTelemetry(sess, "VER", 99)
		assert.NoError(t, err)
		assert.Nil(t, summary)
		assert.Nil(t, telemetry)
	})
}

func TestProcessorLapMetadata(t *testing.T) {
	sess := sampledata.SampleSession()
	proc := testProcessor(sess)

	summary, err := proc.LapMetadata(sess, "LEC", 10)
	assert.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, "LEC", summary.Driver)
	assert.NotNil(t, summary.LapTimeStr)
	assert.Equal(t, "1:23.901", *summary.LapTimeStr)

	summary, err = proc.LapMetadata(sess, "LEC", 99)
	assert.NoError(t, err)
	assert.Nil(t, summary)
}

func TestProcessorCompareDrivers(t *testing.T) {
	sess := sampledata.SampleSession()
	proc := testProcessor(sess)

	t.Run("both drivers present", func(t *testing.T) {
		got, err := proc.CompareDrivers(sess, "VER", "LEC", 10)
		assert.NoError(t, err)
		assert.NotNil(t, got.Lap1)
		assert.NotNil(t, got.Lap2)
		assert.NotNil(t, got.Telemetry1)
		assert.NotNil(t, got.Telemetry2)
		assert.NotNil(t, got.DeltaSeconds)
		// VER is faster, so the delta is negative
		assert.True(t, almostEqual(*got.DeltaSeconds, 83.456-83.901))
	})

	t.Run("one driver missing keeps the other", func(t *testing.T) {
		got, err := proc.CompareDrivers(sess, "VER", "HAM", 10)
		assert.NoError(t, err)
		assert.NotNil(t, got.Lap1)
		assert.Nil(t, got.Lap2)
		assert.Nil(t, got.DeltaSeconds)
	})
}

func TestProcessorFastestLapNumber(t *testing.T) {
	sess := sampledata.SampleSession()
	proc := testProcessor(sess)

	lap, found := proc.FastestLapNumber(sess, "VER")
	assert.True(t, found)
	assert.Equal(t, 10, lap)

	_, found = proc.FastestLapNumber(sess, "HAM")
	assert.False(t, found)
}
