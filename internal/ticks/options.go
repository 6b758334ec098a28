package ticks

import "time"

// Option configures time tick computation.
type Option func(*config)

// config is resolved once per call and never changes afterwards.
type config struct {
	utc         bool
	location    *time.Location
	startOfWeek time.Weekday
	units       []TimeUnit
	timeFactor  float64
}

// WithUTC selects UTC calendar arithmetic. Local-time axes step days and weeks on
// wall-clock midnights instead of fixed durations.
func WithUTC(utc bool) Option {
	return func(c *config) {
		c.utc = utc
	}
}

// WithLocation sets the zone used for local-time axes. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithStartOfWeek sets the weekday week ticks align to. Defaults to Monday.
func WithStartOfWeek(day time.Weekday) Option {
	return func(c *config) {
		c.startOfWeek = day
	}
}

// WithUnits replaces the default unit table.
func WithUnits(units []TimeUnit) Option {
	return func(c *config) {
		c.units = units
	}
}

// WithTimeFactor sets the number of milliseconds per axis value unit.
func WithTimeFactor(factor float64) Option {
	return func(c *config) {
		c.timeFactor = factor
	}
}

func newConfig(opts []Option) config {
	c := config{
		location:    time.Local,
		startOfWeek: time.Monday,
		timeFactor:  1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.units == nil {
		c.units = DefaultUnits()
	}
	if c.utc {
		c.location = time.UTC
	}
	return c
}
