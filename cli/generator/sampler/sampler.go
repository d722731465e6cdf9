package sampler

/*
Генератор синтетической телеметрии.

Каждый шаг соответствует 200 мс (5 Гц). Координата обновляется раз в
countdown шагов, между обновлениями координата и скорость сохраняются.
*/

import (
	"math"
	"math/rand"

	"github.com/daniil11ru/testdata-gen/libs/telemetry"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultStepCount = 9000 // 30 минут при 5 Гц

	StepDuration = 0.2   // секунды
	MaxSpeed     = 11.11 // м/с, 40 км/ч

	MinTemperature  = 20.0
	MaxTemperature  = 30.0
	MaxAcceleration = 5.0
)

var DefaultInitialCoordinate = telemetry.Coordinate{Latitude: 51.123456, Longitude: 8.123456, Height: 455}

// State состояние между шагами генерации
type State struct {
	LastCoordinate  telemetry.Coordinate
	UpdateCountdown int
	LastSpeed       float64
}

func InitialState(coordinate telemetry.Coordinate) State {
	return State{LastCoordinate: coordinate}
}

// Settings границы случайных величин при обновлении координаты
type Settings struct {
	CountdownMin     int
	CountdownMax     int
	DeltaLatitudeMin float64
	DeltaLatitudeMax float64
}

func DefaultSettings() Settings {
	return Settings{
		CountdownMin:     4,
		CountdownMax:     15,
		DeltaLatitudeMin: 0.00001,
		DeltaLatitudeMax: 0.0001,
	}
}

type Sampler struct {
	settings Settings
	rnd      random
}

// New создает генератор; при seed == 0 используется текущее время
func New(settings Settings, seed int64) *Sampler {
	return &Sampler{settings: settings, rnd: newRandom(seed)}
}

// NewWithRand создает генератор с внешним источником случайных чисел
func NewWithRand(settings Settings, r *rand.Rand) *Sampler {
	return &Sampler{settings: settings, rnd: random{r: r}}
}

// Step выполняет один шаг генерации и возвращает запись и новое состояние
func (s *Sampler) Step(state State) (telemetry.Record, State) {
	temperature := telemetry.Round(s.rnd.u(MinTemperature, MaxTemperature), 1)

	var acc [3]float64
	for i := range acc {
		acc[i] = telemetry.Round(s.rnd.u(-MaxAcceleration, MaxAcceleration), 2)
	}

	coordinate := state.LastCoordinate
	countdown := state.UpdateCountdown - 1
	speed := state.LastSpeed

	if state.UpdateCountdown <= 0 {
		deltaLat := s.rnd.u(s.settings.DeltaLatitudeMin, s.settings.DeltaLatitudeMax)
		coordinate = telemetry.Coordinate{
			Latitude:  telemetry.Round(state.LastCoordinate.Latitude+deltaLat, 6),
			Longitude: state.LastCoordinate.Longitude,
			Height:    state.LastCoordinate.Height + s.rnd.intn(-1, 1),
		}
		countdown = s.rnd.intn(s.settings.CountdownMin, s.settings.CountdownMax)

		distance := state.LastCoordinate.DistanceTo(coordinate)
		speed = math.Min(telemetry.Round(distance/(float64(countdown)*StepDuration), 2), MaxSpeed)

		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithFields(log.Fields{
				"latitude":  coordinate.Latitude,
				"height":    coordinate.Height,
				"distance":  distance,
				"speed":     speed,
				"countdown": countdown,
			}).Debug("Обновление координаты")
		}
	}

	record := telemetry.Record{
		CurrentTemperature: temperature,
		CurrentSpeed:       speed,
		CurrentCoordinates: coordinate,
		PeakAccelerationX:  acc[0],
		PeakAccelerationY:  acc[1],
		PeakAccelerationZ:  acc[2],
	}
	record.Checksum = record.ExpectedChecksum()

	return record, State{LastCoordinate: coordinate, UpdateCountdown: countdown, LastSpeed: speed}
}

// Sequence генерирует stepCount записей начиная с состояния initial
func (s *Sampler) Sequence(stepCount int, initial State) []telemetry.Record {
	if stepCount < 0 {
		stepCount = 0
	}

	records := make([]telemetry.Record, 0, stepCount)
	state := initial
	for i := 0; i < stepCount; i++ {
		var record telemetry.Record
		record, state = s.Step(state)
		records = append(records, record)
	}

	return records
}
