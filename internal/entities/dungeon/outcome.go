package dungeon

// Outcome is the result of a run against its level
type Outcome string

// Outcomes
const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// Weather is the categorical temperature band a run happened in
type Weather string

// Weather bands
const (
	WeatherScorching   Weather = "Scorching"
	WeatherHot         Weather = "Hot"
	WeatherWarm        Weather = "Warm"
	WeatherFine        Weather = "Fine"
	WeatherCold        Weather = "Cold"
	WeatherFrosty      Weather = "Frosty"
	WeatherGlacial     Weather = "Glacial"
	WeatherUnavailable Weather = "Unavailable"
)

var weatherMultipliers = map[Weather]float64{
	WeatherScorching:   1.3,
	WeatherHot:         1.2,
	WeatherWarm:        1.1,
	WeatherFine:        1.0,
	WeatherCold:        1.1,
	WeatherFrosty:      1.2,
	WeatherGlacial:     1.3,
	WeatherUnavailable: 1.0,
}

// Multiplier returns the fixed reward multiplier for the band.
// Unknown values are neutral.
func (w Weather) Multiplier() float64 {
	if m, ok := weatherMultipliers[w]; ok {
		return m
	}
	return neutralMultiplier
}

// String returns the string representation of the weather band
func (w Weather) String() string {
	return string(w)
}
