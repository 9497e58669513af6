package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/hupe1980/phonogo"
	"github.com/hupe1980/phonogo/corpus"
	"github.com/hupe1980/phonogo/ipa"
	"github.com/hupe1980/phonogo/search"
)

// ---- JSON response types ------------------------------------------------

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type exactResponse struct {
	Glyph     string   `json:"glyph"`
	Languages []string `json:"languages"`
}

type queryResponse struct {
	Glyph   string          `json:"glyph"`
	Matches []phonogo.Match `json:"matches"`
}

type termsResponse struct {
	Terms     []string `json:"terms"`
	Languages []string `json:"languages"`
}

type ratingResponse struct {
	Feature string           `json:"feature"`
	Ratings []phonogo.Rating `json:"ratings"`
}

type tabulateRequest struct {
	Name     string `json:"name"`
	Phonemes string `json:"phonemes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

const requestIDHeader = "X-Request-ID"

type server struct {
	pg       *phonogo.Phonogo
	logger   *phonogo.Logger
	phonemes map[string][]string
}

// newServer builds the HTTP API over an already loaded Phonogo. records
// back the inventory endpoint.
func newServer(pg *phonogo.Phonogo, records []corpus.Record, logger *phonogo.Logger, cfg ServerConfig) http.Handler {
	s := &server{
		pg:       pg,
		logger:   logger,
		phonemes: make(map[string][]string, len(records)),
	}
	for _, r := range records {
		s.phonemes[r.Name] = r.Phonemes
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/languages", s.handleLanguages)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/exact", s.handleExact)
	mux.HandleFunc("GET /api/query", s.handleQuery)
	mux.HandleFunc("GET /api/multi", s.handleTerms(pg.QueryMultiple))
	mux.HandleFunc("GET /api/features", s.handleTerms(pg.FeaturesQuery))
	mux.HandleFunc("GET /api/rating", s.handleRating)
	mux.HandleFunc("GET /api/inventory/{language}", s.handleInventory)
	mux.HandleFunc("POST /api/tabulate", s.handleTabulate)

	var h http.Handler = mux
	if cfg.RateLimit > 0 {
		h = rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1)), h)
	}
	h = s.requestLog(h)
	h = cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(h)
	return gzhttp.GzipHandler(h)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// statusFor maps query errors caused by the request to 400.
func statusFor(err error) int {
	var symErr *ipa.SymbolError
	switch {
	case errors.As(err, &symErr),
		errors.Is(err, phonogo.ErrNoTerms),
		errors.Is(err, phonogo.ErrNegatedRating),
		errors.Is(err, phonogo.ErrUnknownFeature),
		errors.Is(err, phonogo.ErrUnrecognizedPhoneme),
		errors.Is(err, phonogo.ErrAmbiguousPhoneme),
		errors.Is(err, phonogo.ErrUnclassified),
		errors.Is(err, phonogo.ErrTableCoverage),
		errors.Is(err, phonogo.ErrAmbiguousCell):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) fail(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Languages: nonNil(s.pg.Languages())})
}

func (s *server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.pg.Stats())
}

func (s *server) handleExact(w http.ResponseWriter, r *http.Request) {
	glyph := r.URL.Query().Get("glyph")
	if glyph == "" {
		writeError(w, http.StatusBadRequest, "missing 'glyph' query parameter")
		return
	}
	langs, err := s.pg.ExactQuery(r.Context(), glyph)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exactResponse{Glyph: glyph, Languages: nonNil(langs)})
}

func (s *server) handleQuery(w http.ResponseWriter, r *http.Request) {
	glyph := r.URL.Query().Get("glyph")
	if glyph == "" {
		writeError(w, http.StatusBadRequest, "missing 'glyph' query parameter")
		return
	}
	matches, err := s.pg.Query(r.Context(), glyph)
	if err != nil {
		s.fail(w, err)
		return
	}
	if matches == nil {
		matches = []phonogo.Match{}
	}
	writeJSON(w, http.StatusOK, queryResponse{Glyph: glyph, Matches: matches})
}

func (s *server) handleTerms(query func(context.Context, ...string) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms, err := search.ParseTerms(r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		langs, err := query(r.Context(), terms...)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, termsResponse{Terms: nonNil(terms), Languages: nonNil(langs)})
	}
}

func (s *server) handleRating(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("feature"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing 'feature' query parameter")
		return
	}
	ratings, err := s.pg.FeatureRating(r.Context(), name)
	if err != nil {
		s.fail(w, err)
		return
	}
	if ratings == nil {
		ratings = []phonogo.Rating{}
	}
	writeJSON(w, http.StatusOK, ratingResponse{Feature: name, Ratings: ratings})
}

func (s *server) handleInventory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("language")
	tokens, ok := s.phonemes[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown language "+name)
		return
	}
	s.tabulate(w, r, name, strings.Join(tokens, ", "))
}

func (s *server) handleTabulate(w http.ResponseWriter, r *http.Request) {
	var body tabulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Phonemes == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'phonemes' field")
		return
	}
	s.tabulate(w, r, body.Name, body.Phonemes)
}

func (s *server) tabulate(w http.ResponseWriter, r *http.Request, name, phonoString string) {
	inv, err := s.pg.Tabulate(r.Context(), name, phonoString)
	if err != nil {
		s.fail(w, err)
		return
	}
	var buf bytes.Buffer
	if err := s.pg.RenderHTML(&buf, inv); err != nil {
		s.fail(w, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ---- middleware ---------------------------------------------------------

func rateLimit(l *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.WithRequestID(id).InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}
