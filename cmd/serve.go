package cmd

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/louiecai/fretforge/config"
	"github.com/louiecai/fretforge/constants"
	"github.com/louiecai/fretforge/db"
	"github.com/louiecai/fretforge/fretboard"
	"github.com/louiecai/fretforge/model"
	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/scale"
	"github.com/louiecai/fretforge/theory"
	"github.com/louiecai/fretforge/tuning"
)

var configStore db.Store

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine as a JSON API",
	Long:  `Serves the engine as a JSON API for the browser UI.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// statusFor maps the engine's two typed errors to 400; anything else is
// the server's fault.
func statusFor(err error) int {
	var parseErr *pitch.ParseError
	var patternErr *scale.UnknownPatternError
	if errors.As(err, &parseErr) || errors.As(err, &patternErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func HandleGrid(w http.ResponseWriter, r *http.Request) {
	var req model.GridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.FretCount < 1 {
		req.FretCount = constants.DefaultFretCount
	}

	openStrings, err := tuning.Parse(req.Tuning)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	fb := fretboard.New(openStrings, req.FretCount)
	var res model.GridResponse
	for _, row := range fb.Grid() {
		cells := make([]model.GridCell, len(row))
		for f, n := range row {
			cells[f] = model.GridCell{
				Name:      n.Name(req.PreferFlat),
				Octave:    n.Octave,
				Display:   n.Display(req.PreferFlat),
				Midi:      n.MIDINumber(),
				Frequency: n.Frequency(pitch.ConcertA),
			}
		}
		res.Strings = append(res.Strings, cells)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req model.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	names, err := scale.ResolveNames(req.Root, req.Pattern)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ResolveResponse{Notes: names})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// analysis is total: bad tokens degrade, they don't 400
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(theory.Analyze(req.Notes))
}

func HandlePatterns(w http.ResponseWriter, r *http.Request) {
	res := model.PatternsResponse{
		Scales:  scale.ScaleNames(),
		Chords:  scale.ChordNames(),
		Tunings: tuning.PresetNames(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleConfigCreate(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id := uuid.New().String()
	if err := configStore.Put(id, cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	slog.Info("config stored", "id", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ConfigCreateResponse{Id: id})
}

func HandleConfigGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cfg, ok, err := configStore.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no config with id "+id))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ConfigResponse{Id: id, Config: cfg})
}

// NewRouter wires every endpoint; exported so tests can hit the full
// router through httptest.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/grid", HandleGrid).Methods("POST")
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/patterns", HandlePatterns).Methods("GET")
	router.HandleFunc("/config", HandleConfigCreate).Methods("POST")
	router.HandleFunc("/config/{id}", HandleConfigGet).Methods("GET")
	return router
}

// InitStore opens the config store; split out so the e2e tests can set
// it up without starting a listener.
func InitStore() {
	store, err := db.Open()
	if err != nil {
		panic("Could not open config store: " + err.Error())
	}
	configStore = store
}

func serve() {
	InitStore()

	// the collaborator is a browser app on another origin
	handler := cors.AllowAll().Handler(NewRouter())

	addr := constants.GetListenAddr()
	slog.Info("fretforge API listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server stopped", "err", err)
	}
}
