package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for schedule files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported schedule file format")

// ScheduleFile is a standalone schedule, as read by `dayplan check`.
//
// TOML:
//
//	[[activities]]
//	time = "09:00"
//	duration = 60
//	activity = "Deep work"
//	category = ["Career"]
//
// YAML:
//
//	activities:
//	  - time: "09:00"
//	    duration: 60
//	    activity: Deep work
//	    category: [Career]
type ScheduleFile struct {
	Activities []ActivityConfig `toml:"activities" yaml:"activities"`
}

// LoadScheduleFile reads a schedule file. The format is chosen by extension:
// .yaml and .yml are YAML, .toml or no extension is TOML.
func LoadScheduleFile(path string) (*ScheduleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}

	var sf ScheduleFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing YAML schedule: %w", err)
		}
	case ".toml", "":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sf); err != nil {
			return nil, fmt.Errorf("parsing TOML schedule: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &sf, nil
}

// SaveScheduleFile writes sf to path, in the format selected by its extension.
func SaveScheduleFile(path string, sf *ScheduleFile) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(sf)
	case ".toml", "":
		data, err = toml.Marshal(sf)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("marshaling schedule: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schedule file: %w", err)
	}
	return nil
}
