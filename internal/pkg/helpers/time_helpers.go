package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// FormDateLayout is the value format of an HTML date input.
const FormDateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseFormDate parses a date input value. A blank value yields nil.
func ParseFormDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(FormDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
