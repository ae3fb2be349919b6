// Package config loads optional run-time overrides from a TOML file for
// the CLI flags defined in cmd/procsim. A non-zero --quantum or
// --calibration-reps flag takes precedence over the file; pin_priority
// and log_level, when present in the file, override their flags.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is the optional override document. Every field is a pointer so
// an absent key leaves the corresponding flag default untouched.
type File struct {
	QuantumUnits    *int    `toml:"rr_quantum_units"`
	CalibrationReps *int    `toml:"calibration_reps"`
	PinPriority     *bool   `toml:"pin_priority"`
	LogLevel        *string `toml:"log_level"`
}

// Load parses path as TOML. A missing file is not an error — it simply
// means no overrides apply — but a present, malformed file is.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &File{}, nil
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &f, nil
}
