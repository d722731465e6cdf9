package sampler

import (
	"io/ioutil"
	"math/rand"
	"os"
	"testing"

	"github.com/daniil11ru/testdata-gen/libs/telemetry"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

func generate(t *testing.T, seed int64, steps int) []telemetry.Record {
	t.Helper()
	s := New(DefaultSettings(), seed)
	return s.Sequence(steps, InitialState(DefaultInitialCoordinate))
}

func TestSequenceLength(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		want  int
	}{
		{name: "Zero steps", steps: 0, want: 0},
		{name: "Negative steps", steps: -5, want: 0},
		{name: "One step", steps: 1, want: 1},
		{name: "Default step count", steps: DefaultStepCount, want: DefaultStepCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := generate(t, 42, tt.steps)
			require.NotNil(t, records)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestSequenceProperties(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		records := generate(t, seed, DefaultStepCount)

		for i, r := range records {
			assert.InDelta(t, r.ExpectedChecksum(), r.Checksum, 1e-6, "checksum mismatch at %d", i)
			assert.LessOrEqual(t, r.CurrentSpeed, MaxSpeed, "speed exceeds limit at %d", i)
			assert.GreaterOrEqual(t, r.CurrentSpeed, 0.0)
			assert.GreaterOrEqual(t, r.CurrentTemperature, MinTemperature)
			assert.LessOrEqual(t, r.CurrentTemperature, MaxTemperature)
			for _, acc := range []float64{r.PeakAccelerationX, r.PeakAccelerationY, r.PeakAccelerationZ} {
				assert.GreaterOrEqual(t, acc, -MaxAcceleration)
				assert.LessOrEqual(t, acc, MaxAcceleration)
			}
			assert.Equal(t, DefaultInitialCoordinate.Longitude, r.CurrentCoordinates.Longitude, "longitude changed at %d", i)

			if i > 0 {
				assert.GreaterOrEqual(t, r.CurrentCoordinates.Latitude, records[i-1].CurrentCoordinates.Latitude,
					"latitude decreased at %d", i)
			}
		}
	}
}

func TestPositionUpdateInterval(t *testing.T) {
	records := generate(t, 99, 2000)

	var changes []int
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		if prev.CurrentCoordinates != cur.CurrentCoordinates {
			changes = append(changes, i)
			continue
		}
		assert.Equal(t, prev.CurrentSpeed, cur.CurrentSpeed, "speed changed without position update at %d", i)
	}

	require.NotEmpty(t, changes)
	for i := 1; i < len(changes); i++ {
		gap := changes[i] - changes[i-1]
		assert.GreaterOrEqual(t, gap, 5, "countdown of at least 4 means 5 steps between updates")
		assert.LessOrEqual(t, gap, 16)
	}
}

func TestHeightChangesByAtMostOne(t *testing.T) {
	records := generate(t, 5, 3000)

	prev := DefaultInitialCoordinate
	for _, r := range records {
		diff := r.CurrentCoordinates.Height - prev.Height
		assert.True(t, diff >= -1 && diff <= 1, "height jumped by %d", diff)
		prev = r.CurrentCoordinates
	}
}

func TestFirstStepFromInitialState(t *testing.T) {
	s := NewWithRand(DefaultSettings(), rand.New(rand.NewSource(12345)))

	record, state := s.Step(InitialState(DefaultInitialCoordinate))

	assert.Greater(t, record.CurrentCoordinates.Latitude, DefaultInitialCoordinate.Latitude)
	assert.Equal(t, record.ExpectedChecksum(), record.Checksum)
	assert.Equal(t, record.CurrentCoordinates, state.LastCoordinate)
	assert.Equal(t, record.CurrentSpeed, state.LastSpeed)
	assert.GreaterOrEqual(t, state.UpdateCountdown, 4)
	assert.LessOrEqual(t, state.UpdateCountdown, 15)

	distance := DefaultInitialCoordinate.DistanceTo(record.CurrentCoordinates)
	expectedSpeed := telemetry.Round(distance/(float64(state.UpdateCountdown)*StepDuration), 2)
	if expectedSpeed > MaxSpeed {
		expectedSpeed = MaxSpeed
	}
	assert.Equal(t, expectedSpeed, record.CurrentSpeed)
}

func TestStepWithoutUpdate(t *testing.T) {
	s := New(DefaultSettings(), 3)
	state := State{
		LastCoordinate:  telemetry.Coordinate{Latitude: 50, Longitude: 8, Height: 100},
		UpdateCountdown: 3,
		LastSpeed:       1.5,
	}

	record, next := s.Step(state)

	assert.Equal(t, state.LastCoordinate, record.CurrentCoordinates)
	assert.Equal(t, 1.5, record.CurrentSpeed)
	assert.Equal(t, State{LastCoordinate: state.LastCoordinate, UpdateCountdown: 2, LastSpeed: 1.5}, next)
}

func TestSpeedIsClamped(t *testing.T) {
	settings := Settings{CountdownMin: 1, CountdownMax: 1, DeltaLatitudeMin: 0.01, DeltaLatitudeMax: 0.01}
	s := New(settings, 8)

	record, _ := s.Step(InitialState(DefaultInitialCoordinate))
	assert.Equal(t, MaxSpeed, record.CurrentSpeed)
}

func TestSameSeedSameSequence(t *testing.T) {
	assert.Equal(t, generate(t, 77, 500), generate(t, 77, 500))
	assert.NotEqual(t, generate(t, 77, 500), generate(t, 78, 500))
}
