package weather

import (
	"context"
	"log/slog"
)

// Lookup asks c for a reading and swallows failures. A nil result means
// the weather is unavailable.
func Lookup(ctx context.Context, c Client, lat, lon float64) *float64 {
	if c == nil {
		return nil
	}

	reading, err := c.CurrentTemperature(ctx, lat, lon)
	if err != nil {
		slog.Warn("weather lookup failed", "lat", lat, "lon", lon, "error", err)
		return nil
	}
	return reading
}
