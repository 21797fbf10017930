package engine

import (
	"math"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
)

// NoTemperature is the legacy "lookup failed" reading. Anything at or above
// it is treated as absent.
const NoTemperature = 10000.0

// weatherBand is a lower bound in Fahrenheit, inclusive
type weatherBand struct {
	min     float64
	weather dungeon.Weather
}

// Hottest first. Readings below the last bound are Glacial.
var weatherBands = []weatherBand{
	{95, dungeon.WeatherScorching},
	{86, dungeon.WeatherHot},
	{77, dungeon.WeatherWarm},
	{59, dungeon.WeatherFine},
	{50, dungeon.WeatherCold},
	{41, dungeon.WeatherFrosty},
}

// MapWeather maps a Fahrenheit reading to its band and multiplier.
// nil, NaN, infinities and the sentinel collapse to Unavailable.
func MapWeather(fahrenheit *float64) (dungeon.Weather, float64) {
	if fahrenheit == nil {
		return dungeon.WeatherUnavailable, dungeon.WeatherUnavailable.Multiplier()
	}

	t := *fahrenheit
	if math.IsNaN(t) || math.IsInf(t, 0) || t >= NoTemperature {
		return dungeon.WeatherUnavailable, dungeon.WeatherUnavailable.Multiplier()
	}

	for _, band := range weatherBands {
		if t >= band.min {
			return band.weather, band.weather.Multiplier()
		}
	}
	return dungeon.WeatherGlacial, dungeon.WeatherGlacial.Multiplier()
}
