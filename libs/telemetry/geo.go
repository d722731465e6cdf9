package telemetry

import "math"

// EarthRadius средний радиус Земли в метрах
const EarthRadius = 6371000.0

// DistanceTo расстояние по дуге большого круга (формула гаверсинусов) в метрах, высота не учитывается
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - c.Latitude) * math.Pi / 180
	dLon := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	cc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadius * cc
}

func (c Coordinate) EqualsTo(other Coordinate, accuracyMeters float64) bool {
	horiz := c.DistanceTo(other)
	heightDiff := math.Abs(float64(c.Height - other.Height))
	return math.Sqrt(horiz*horiz+heightDiff*heightDiff) <= accuracyMeters
}
