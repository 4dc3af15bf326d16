package config

import (
	"fmt"
	"time"
)

// zapcore level numbering
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("invalid LOG_LEVEL %d, must be between %d and %d", c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("LOG_TIME_FORMAT must not be empty")
	}
	// layouts without any reference component format every instant the same way
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400+3661, 0).UTC().Format(c.TimeFormat) {
		return fmt.Errorf("LOG_TIME_FORMAT %q is not a time layout", c.TimeFormat)
	}
	return nil
}
