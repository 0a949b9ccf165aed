package model

// GridRequest asks for the full string×fret note grid.
type GridRequest struct {
	Tuning     []string `json:"tuning"`
	FretCount  int      `json:"fretCount"`
	PreferFlat bool     `json:"preferFlat"`
}

// GridCell is one fretboard position as the UI renders it.
type GridCell struct {
	Name      string  `json:"name"`
	Octave    int     `json:"octave"`
	Display   string  `json:"display"`
	Midi      int     `json:"midi"`
	Frequency float64 `json:"frequency"`
}

type GridResponse struct {
	Strings [][]GridCell `json:"strings"`
}

type ResolveRequest struct {
	Root    string `json:"root"`
	Pattern string `json:"pattern"`
}

type ResolveResponse struct {
	Notes []string `json:"notes"`
}

type AnalyzeRequest struct {
	Notes []string `json:"notes"`
}

// PatternsResponse lists the stable pattern-name vocabulary.
type PatternsResponse struct {
	Scales  []string `json:"scales"`
	Chords  []string `json:"chords"`
	Tunings []string `json:"tunings"`
}

type ConfigCreateResponse struct {
	Id string `json:"id"`
}

type ConfigResponse struct {
	Id     string           `json:"id"`
	Config VisualizerConfig `json:"config"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
