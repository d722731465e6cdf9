package sampler

import (
	"math"

	"github.com/daniil11ru/testdata-gen/libs/telemetry"
	log "github.com/sirupsen/logrus"
)

type Summary struct {
	RecordCount         int
	PositionUpdates     int
	Distance            float64 // метры
	MaxSpeed            float64
	MaxPeakAcceleration float64
	LatitudeStart       float64
	LatitudeEnd         float64
	DurationSeconds     float64
}

// Summarize собирает сводку по сгенерированной последовательности.
// Обновлением координаты считается любая смена координаты относительно начальной точки или предыдущей записи.
func Summarize(initial telemetry.Coordinate, records []telemetry.Record) Summary {
	summary := Summary{
		RecordCount:     len(records),
		LatitudeStart:   initial.Latitude,
		LatitudeEnd:     initial.Latitude,
		DurationSeconds: float64(len(records)) * StepDuration,
	}

	last := initial
	for i := range records {
		current := records[i].CurrentCoordinates
		if current != last {
			summary.PositionUpdates++
			summary.Distance += last.DistanceTo(current)
			last = current
		}

		summary.MaxSpeed = math.Max(summary.MaxSpeed, records[i].CurrentSpeed)
		summary.MaxPeakAcceleration = math.Max(summary.MaxPeakAcceleration, records[i].TotalPeakAcceleration())
		summary.LatitudeEnd = current.Latitude
	}

	return summary
}

func (s Summary) Fields() log.Fields {
	return log.Fields{
		"records":               s.RecordCount,
		"position_updates":      s.PositionUpdates,
		"distance_m":            telemetry.Round(s.Distance, 2),
		"max_speed":             s.MaxSpeed,
		"max_peak_acceleration": telemetry.Round(s.MaxPeakAcceleration, 2),
		"latitude_start":        s.LatitudeStart,
		"latitude_end":          s.LatitudeEnd,
		"duration_s":            s.DurationSeconds,
	}
}
