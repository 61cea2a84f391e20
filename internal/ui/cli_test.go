package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/dayplan/internal/config"
	"github.com/javiermolinar/dayplan/internal/schedule"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Log.File = filepath.Join(t.TempDir(), "dayplan.log")
	app := NewApp(cfg)
	var out bytes.Buffer
	app.SetOutput(&out, &out)
	t.Cleanup(app.Close)
	return app, &out
}

func run(t *testing.T, app *App, args ...string) error {
	t.Helper()
	app.SetArgs(args...)
	return app.Execute()
}

func writeSchedule(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}
	return path
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func overlappingConfig() *config.Config {
	cfg := config.Default()
	cfg.Schedule.Activities = []config.ActivityConfig{
		{Time: "09:00", Duration: 60, Activity: "Deep work", Category: []string{"Career"}},
		{Time: "09:30", Duration: 30, Activity: "Walk", Category: []string{"Health"}, Important: true},
	}
	return cfg
}

func TestShow(t *testing.T) {
	app, out := newTestApp(t, overlappingConfig())
	if err := run(t, app, "show", "--no-color"); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out.String(),
		"Schedule (24h)",
		"09:00-10:00",
		"10:00-10:30",
		"Total scheduled: 1.5 hours",
		"Career 1.0h",
		"Health 0.5h",
		"Resolved 1 overlap:",
		"Walk (09:30) overlapped Deep work (09:00), moved to 10:00",
	)
}

func TestShow_12Hour(t *testing.T) {
	app, out := newTestApp(t, overlappingConfig())
	if err := run(t, app, "show", "--12h"); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out.String(), "Schedule (12h)", "9:00 AM-10:00 AM", "moved to 10:00 AM")
}

func TestShow_Empty(t *testing.T) {
	app, out := newTestApp(t, nil)
	if err := run(t, app, "show"); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	assertContains(t, out.String(), "No activities scheduled.")
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "day.toml",
			content: `
[[activities]]
time = "09:00"
duration = 60
activity = "Deep work"
category = ["Career"]

[[activities]]
time = "09:30"
duration = 30
activity = "Walk"
category = ["Health"]
`,
		},
		{
			name: "yaml",
			file: "day.yml",
			content: `
activities:
  - time: "09:00"
    duration: 60
    activity: Deep work
    category: [Career]
  - time: "09:30"
    duration: 30
    activity: Walk
    category: [Health]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, nil)
			path := writeSchedule(t, tt.file, tt.content)
			if err := run(t, app, "check", path); err != nil {
				t.Fatalf("check failed: %v", err)
			}
			assertContains(t, out.String(),
				"Resolved 1 overlap:",
				"moved to 10:00",
				"10:00-10:30",
				"Total scheduled: 1.5 hours",
			)
		})
	}
}

func TestCheck_Write(t *testing.T) {
	app, out := newTestApp(t, nil)
	path := writeSchedule(t, "day.yaml", `
activities:
  - time: "09:00"
    duration: 60
    activity: Deep work
  - time: "09:15"
    duration: 30
    activity: Walk
`)
	if err := run(t, app, "check", "--write", path); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	assertContains(t, out.String(), "Wrote resolved schedule to")

	sf, err := config.LoadScheduleFile(path)
	if err != nil {
		t.Fatalf("reloading schedule: %v", err)
	}
	if len(sf.Activities) != 2 || sf.Activities[1].Time != "10:00" {
		t.Errorf("rewritten schedule = %+v", sf.Activities)
	}
}

func TestCheck_Errors(t *testing.T) {
	t.Run("overflow", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		path := writeSchedule(t, "late.toml", `
[[activities]]
time = "23:00"
duration = 60
activity = "Late"

[[activities]]
time = "23:30"
duration = 15
activity = "Later"
`)
		err := run(t, app, "check", path)
		if !errors.Is(err, schedule.ErrDayOverflow) {
			t.Errorf("got error %v, want ErrDayOverflow", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		err := run(t, app, "check", writeSchedule(t, "day.json", "{}"))
		if !errors.Is(err, config.ErrUnsupportedFormat) {
			t.Errorf("got error %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		if err := run(t, app, "check"); err == nil {
			t.Error("expected error without a file argument")
		}
	})
}

func TestTime(t *testing.T) {
	tests := []struct {
		args  []string
		wants []string
	}{
		{args: []string{"time", "830"}, wants: []string{"time:     08:30", "display:  08:30"}},
		{args: []string{"time", "14:3"}, wants: []string{"time:     14:30"}},
		{args: []string{"time", "5", "--12h"}, wants: []string{"time:     17:00", "display:  5:00 PM", "meridiem: PM"}},
		{args: []string{"time", "9", "--12h"}, wants: []string{"time:     09:00", "display:  9:00 AM"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			app, out := newTestApp(t, nil)
			if err := run(t, app, tt.args...); err != nil {
				t.Fatalf("time failed: %v", err)
			}
			assertContains(t, out.String(), tt.wants...)
		})
	}

	app, _ := newTestApp(t, nil)
	if err := run(t, app, "time", "abc"); err == nil {
		t.Error("expected error for input without digits")
	}
}

func TestVersion(t *testing.T) {
	app, out := newTestApp(t, nil)
	if err := run(t, app, "version"); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	assertContains(t, out.String(), "dayplan dev")
}

func TestConfigInteractive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	t.Setenv("DAYPLAN_LOG_FILE", filepath.Join(dir, "dayplan.log"))

	app := NewApp(nil)
	t.Cleanup(app.Close)
	var out bytes.Buffer
	app.SetOutput(&out, &out)
	// edit? 24h? day start, categories, theme, highlight, level, log file
	app.SetInput(strings.NewReader("y\nn\n8\n\nlatte\n500\ndebug\n\n"))

	if err := run(t, app, "--config", path, "config"); err != nil {
		t.Fatalf("config failed: %v", err)
	}
	assertContains(t, out.String(), "No config file found.", "Configuration saved!")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if cfg.Display.Use24Hour {
		t.Error("use_24_hour not saved")
	}
	if cfg.Schedule.DayStart != "08:00" {
		t.Errorf("day_start = %q, want 08:00", cfg.Schedule.DayStart)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.HighlightMS != 500 || cfg.Log.Level != "debug" {
		t.Errorf("got ui %+v, log %+v", cfg.UI, cfg.Log)
	}
}

func TestConfigInteractive_NoEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	t.Setenv("DAYPLAN_LOG_FILE", filepath.Join(dir, "dayplan.log"))

	app := NewApp(nil)
	t.Cleanup(app.Close)
	var out bytes.Buffer
	app.SetOutput(&out, &out)
	app.SetInput(strings.NewReader("n\n"))

	if err := run(t, app, "--config", path, "config"); err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
	if strings.Contains(out.String(), "Configuration saved!") {
		t.Error("config saved without editing")
	}
}
