package model

// Overlay is one user-selected scale or chord, keyed by display color.
// Order matters: earlier overlays win highlight conflicts.
type Overlay struct {
	Root    string `json:"root"`
	Pattern string `json:"pattern"`
	Color   string `json:"color"`
}

// VisualizerConfig is the caller-owned session state the browser UI
// persists and round-trips through JSON import/export. The engine never
// holds it; every entry point takes what it needs explicitly.
type VisualizerConfig struct {
	Tuning     []string  `json:"tuning"`
	FretCount  int       `json:"fretCount"`
	PreferFlat bool      `json:"preferFlat"`
	Overlays   []Overlay `json:"overlays"`
	Selected   []string  `json:"selectedNotes"`
}
