// Package config round-trips the visualizer's caller-owned session
// state through JSON. There is no versioning or migration; the format
// is the contract as-is.
package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/louiecai/fretforge/constants"
	"github.com/louiecai/fretforge/model"
	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/scale"
	"github.com/louiecai/fretforge/tuning"
)

// Default is the out-of-the-box visualizer: standard tuning, 22 frets,
// sharp spelling, nothing highlighted.
func Default() model.VisualizerConfig {
	return model.VisualizerConfig{
		Tuning:    []string{"E2", "A2", "D3", "G3", "B3", "E4"},
		FretCount: constants.DefaultFretCount,
	}
}

// Decode reads a config from JSON and validates it.
func Decode(r io.Reader) (model.VisualizerConfig, error) {
	var cfg model.VisualizerConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return model.VisualizerConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return model.VisualizerConfig{}, err
	}
	return cfg, nil
}

// Encode writes a config as indented JSON, the export format the UI
// offers for download.
func Encode(w io.Writer, cfg model.VisualizerConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// Validate pushes every field through the engine's own parsers so a bad
// import is rejected before it reaches a render.
func Validate(cfg model.VisualizerConfig) error {
	if len(cfg.Tuning) == 0 {
		return fmt.Errorf("config has no tuning")
	}
	if _, err := tuning.Parse(cfg.Tuning); err != nil {
		return err
	}
	if cfg.FretCount < 1 {
		return fmt.Errorf("fret count must be at least 1, got %d", cfg.FretCount)
	}
	for _, ov := range cfg.Overlays {
		if _, err := pitch.Parse(ov.Root); err != nil {
			return err
		}
		if _, err := scale.Offsets(ov.Pattern); err != nil {
			return err
		}
	}
	for _, name := range cfg.Selected {
		if _, err := pitch.Parse(name); err != nil {
			return err
		}
	}
	return nil
}
