package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Context carries the resolved global flags into every command.
type Context struct {
	Timeout time.Duration
	Logger  *logrus.Logger
	Out     io.Writer

	UTC        bool
	Location   *time.Location
	WeekStart  time.Weekday
	TimeFactor float64
	Units      []ticks.TimeUnit
}

// TickOptions returns the tick options matching the global flags.
func (c *Context) TickOptions() []ticks.Option {
	opts := []ticks.Option{
		ticks.WithUTC(c.UTC),
		ticks.WithLocation(c.Location),
		ticks.WithStartOfWeek(c.WeekStart),
	}
	if c.TimeFactor != 0 {
		opts = append(opts, ticks.WithTimeFactor(c.TimeFactor))
	}
	if c.Units != nil {
		opts = append(opts, ticks.WithUnits(c.Units))
	}
	return opts
}

// location is the zone dates on the command line are read in.
func (c *Context) location() *time.Location {
	switch {
	case c.UTC:
		return time.UTC
	case c.Location == nil:
		return time.Local
	default:
		return c.Location
	}
}

type CLI struct {
	Timeout    time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	LogLevel   string        `name:"log-level" help:"Log level." default:"warn" enum:"debug,info,warn,error"`
	UTC        bool          `name:"utc" help:"Compute time ticks in UTC."`
	Timezone   string        `name:"timezone" help:"IANA zone for local time ticks." env:"NICETICKS_TIMEZONE"`
	WeekStart  string        `name:"week-start" help:"Weekday that week ticks align to." default:"monday"`
	TimeFactor float64       `name:"time-factor" help:"Milliseconds per axis value unit." default:"1"`
	UnitsFile  string        `name:"units-file" help:"YAML file replacing the default unit table." type:"existingfile"`

	Normalize   NormalizeCmd   `cmd:"" help:"Normalize an interval to a nice number."`
	Linear      LinearCmd      `cmd:"" help:"Ticks for a numeric axis."`
	Time        TimeCmd        `cmd:"" help:"Ticks for a time axis."`
	Explore     ExploreCmd     `cmd:"" help:"Explore time ticks interactively."`
	QueryRange  QueryRangeCmd  `cmd:"" help:"Range Query with a nice step."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}

// NewContext resolves the global flags.
func (c *CLI) NewContext() (*Context, error) {
	logger, err := newLogger(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if c.Timezone != "" {
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading timezone: %w", err)
		}
	}

	weekStart, err := parseWeekday(c.WeekStart)
	if err != nil {
		return nil, err
	}

	var units []ticks.TimeUnit
	if c.UnitsFile != "" {
		units, err = loadUnits(c.UnitsFile)
		if err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{
		"utc":        c.UTC,
		"location":   loc.String(),
		"weekStart":  weekStart,
		"timeFactor": c.TimeFactor,
	}).Debug("resolved tick settings")

	return &Context{
		Timeout:    c.Timeout,
		Logger:     logger,
		Out:        os.Stdout,
		UTC:        c.UTC,
		Location:   loc,
		WeekStart:  weekStart,
		TimeFactor: c.TimeFactor,
		Units:      units,
	}, nil
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func loadUnits(path string) ([]ticks.TimeUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading units file: %w", err)
	}
	var units []ticks.TimeUnit
	if err := yaml.Unmarshal(data, &units); err != nil {
		return nil, fmt.Errorf("parsing units file: %w", err)
	}
	if err := ticks.ValidateUnits(units); err != nil {
		return nil, fmt.Errorf("units file %s: %w", path, err)
	}
	return units, nil
}
