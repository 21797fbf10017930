package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// ParseElapsed reads a stopwatch reading, "mm:ss" or "hh:mm:ss", as seconds
func ParseElapsed(display string) (int, error) {
	parts := strings.Split(strings.TrimSpace(display), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errors.InvalidArgumentf("elapsed %q must be mm:ss or hh:mm:ss", display)
	}

	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, errors.InvalidArgumentf("elapsed %q has a bad component %q", display, part)
		}
		// only the leading field may exceed 59
		if i > 0 && n >= 60 {
			return 0, errors.InvalidArgumentf("elapsed %q has a component over 59", display)
		}
		total = total*60 + n
	}
	return total, nil
}

// FormatElapsed renders seconds as "mm:ss", or "h:mm:ss" past an hour
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds/60)%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
