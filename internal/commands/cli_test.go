package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/akasprzok/niceticks/internal/ticks"
)

func newTestContext(out io.Writer) *Context {
	logger, _ := newLogger("error", io.Discard)
	return &Context{
		Timeout:    time.Second,
		Logger:     logger,
		Out:        out,
		Location:   time.UTC,
		WeekStart:  time.Monday,
		TimeFactor: 1,
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{"monday", time.Monday, false},
		{"Sunday", time.Sunday, false},
		{" sat ", time.Saturday, false},
		{"WED", time.Wednesday, false},
		{"someday", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseWeekday(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWeekday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("info", &buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("hidden")
	logger.WithField("unit", "hour").Info("shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug entry logged at info level: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "unit=hour") {
		t.Errorf("log output = %q, want info entry with fields", got)
	}

	if _, err := newLogger("loud", io.Discard); err == nil {
		t.Error("newLogger(\"loud\") error = nil, want error")
	}
}

func TestTickOptions(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	day := float64(24 * time.Hour / time.Millisecond)

	t.Run("location is used for local ticks", func(t *testing.T) {
		ctx := newTestContext(io.Discard)
		ctx.Location = berlin
		seq, err := ticks.ComputeTimeTicks(day, 0, 3*day, ctx.TickOptions()...)
		if err != nil {
			t.Fatalf("ComputeTimeTicks() error = %v", err)
		}
		if seq.Location() != berlin {
			t.Errorf("Location() = %v, want %v", seq.Location(), berlin)
		}
	})

	t.Run("utc wins over location", func(t *testing.T) {
		ctx := newTestContext(io.Discard)
		ctx.Location = berlin
		ctx.UTC = true
		seq, err := ticks.ComputeTimeTicks(day, 0, 3*day, ctx.TickOptions()...)
		if err != nil {
			t.Fatalf("ComputeTimeTicks() error = %v", err)
		}
		if seq.Location() != time.UTC {
			t.Errorf("Location() = %v, want UTC", seq.Location())
		}
		if seq.Positions[0] != 0 {
			t.Errorf("first tick = %v, want 0", seq.Positions[0])
		}
	})

	t.Run("time factor scales values", func(t *testing.T) {
		ctx := newTestContext(io.Discard)
		ctx.TimeFactor = 1000
		seq, err := ticks.ComputeTimeTicks(3600, 0, 7200, ctx.TickOptions()...)
		if err != nil {
			t.Fatalf("ComputeTimeTicks() error = %v", err)
		}
		if seq.Unit.Unit != ticks.Hour {
			t.Errorf("unit = %v, want hour", seq.Unit.Unit)
		}
	})
}

func TestLoadUnits(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte(`
- unit: hour
  multiples: [1, 6, 12]
- unit: day
  multiples: [1, 7]
- unit: year
`), 0o600); err != nil {
		t.Fatal(err)
	}

	units, err := loadUnits(valid)
	if err != nil {
		t.Fatalf("loadUnits() error = %v", err)
	}
	if len(units) != 3 {
		t.Fatalf("len(units) = %d, want 3", len(units))
	}
	if units[1].Unit != ticks.Day || len(units[1].Multiples) != 2 {
		t.Errorf("units[1] = %+v, want day with 2 multiples", units[1])
	}
	if units[2].Multiples != nil {
		t.Errorf("units[2].Multiples = %v, want nil", units[2].Multiples)
	}

	unordered := filepath.Join(dir, "unordered.yaml")
	if err := os.WriteFile(unordered, []byte(`
- unit: day
  multiples: [1]
- unit: hour
  multiples: [1]
- unit: year
`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadUnits(unordered); !errors.Is(err, ticks.ErrInvalidUnitTable) {
		t.Errorf("loadUnits() error = %v, want ErrInvalidUnitTable", err)
	}

	if _, err := loadUnits(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("loadUnits() error = nil for missing file")
	}
}

func TestNewContext(t *testing.T) {
	cli := CLI{
		LogLevel:   "warn",
		Timezone:   "Europe/Berlin",
		WeekStart:  "sunday",
		TimeFactor: 1,
		Timeout:    5 * time.Second,
	}
	ctx, err := cli.NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if ctx.Location.String() != "Europe/Berlin" {
		t.Errorf("Location = %v, want Europe/Berlin", ctx.Location)
	}
	if ctx.WeekStart != time.Sunday {
		t.Errorf("WeekStart = %v, want Sunday", ctx.WeekStart)
	}
	if ctx.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", ctx.Timeout)
	}

	cli.Timezone = "Mars/Olympus"
	if _, err := cli.NewContext(); err == nil {
		t.Error("NewContext() error = nil for unknown timezone")
	}
}
