package engine

import (
	"math"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
)

// EarthRadiusKm is the mean earth radius used by Distance
const EarthRadiusKm = 6371.0

// Distance returns metres between two points: the haversine surface
// distance combined with the elevation change.
func Distance(from, to dungeon.Point) float64 {
	latDistance := toRadians(to.Latitude - from.Latitude)
	lonDistance := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(latDistance/2)*math.Sin(latDistance/2) +
		math.Cos(toRadians(from.Latitude))*math.Cos(toRadians(to.Latitude))*
			math.Sin(lonDistance/2)*math.Sin(lonDistance/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	surface := EarthRadiusKm * c * 1000

	height := from.Elevation - to.Elevation
	return math.Sqrt(surface*surface + height*height)
}

// TraceDistance sums a run's segments in whole metres. A segment starting
// at an index in skips spans a pause and is not counted.
func TraceDistance(points []dungeon.Point, skips []int) int {
	skipped := make(map[int]struct{}, len(skips))
	for _, idx := range skips {
		skipped[idx] = struct{}{}
	}

	var total float64
	for i := 1; i < len(points); i++ {
		if _, ok := skipped[i-1]; ok {
			continue
		}
		total += Distance(points[i-1], points[i])
	}
	return int(math.RoundToEven(total))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
