package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/definition"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodySize bounds request bodies (definitions and inputs).
const MaxBodySize = 1 << 20

// Engine defines the subset of automata.Engine served over HTTP.
type Engine interface {
	Register(ctx context.Context, def *definition.Definition) error
	Definition(ctx context.Context, name string) (*definition.Definition, error)
	Automaton(ctx context.Context, name string) (*automaton.DFA, error)
	List(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, name string) error
	Evaluate(ctx context.Context, name string, input string) (*automata.Result, error)
	Minimize(ctx context.Context, name string, opts ...automaton.Option) (*automata.Minimization, error)
}

// Server holds the HTTP handlers.
type Server struct {
	Engine   Engine
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the logger used for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer exposes the gatherer's metrics on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// EvaluateRequest is the body of POST /automata/{name}/evaluate.
type EvaluateRequest struct {
	Input string `json:"input"`
}

// MinimizeResponse is returned by POST /automata/{name}/minimize.
type MinimizeResponse struct {
	Definition   *definition.Definition `json:"definition"`
	Strategy     string                 `json:"strategy"`
	Groups       [][]string             `json:"groups"`
	Rounds       int                    `json:"rounds"`
	Splits       int                    `json:"splits"`
	ShortCircuit bool                   `json:"short_circuit"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", server.ListAutomata)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", server.GetAutomaton)
			r.Put("/", server.PutAutomaton)
			r.Delete("/", server.DeleteAutomaton)
			r.Post("/evaluate", server.Evaluate)
			r.Post("/minimize", server.Minimize)
			r.Get("/graph", server.GetGraph)
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "automata-http",
		"version": strings.TrimSpace(automata.Version),
	})
}

// ListAutomata handles the GET /automata request.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.List(r.Context())
	if err != nil {
		s.fail(w, "List", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"automata": names})
}

// GetAutomaton handles the GET /automata/{name} request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	def, err := s.Engine.Definition(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, "GetAutomaton", err)
		return
	}
	s.writeJSON(w, http.StatusOK, def)
}

// PutAutomaton handles the PUT /automata/{name} request.
// The body is a YAML or JSON definition; the name in the path wins over the one in the body.
func (s *Server) PutAutomaton(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("PutAutomaton: Invalid request body", "error", err)
		return
	}

	def, err := definition.Parse(data)
	if err != nil {
		s.fail(w, "PutAutomaton", err)
		return
	}
	def.Name = chi.URLParam(r, "name")

	if err := s.Engine.Register(r.Context(), def); err != nil {
		s.fail(w, "PutAutomaton", err)
		return
	}
	s.writeJSON(w, http.StatusOK, def)
}

// DeleteAutomaton handles the DELETE /automata/{name} request.
func (s *Server) DeleteAutomaton(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Remove(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, "DeleteAutomaton", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Evaluate handles the POST /automata/{name}/evaluate request.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Evaluate: Invalid request body", "error", err)
		return
	}

	res, err := s.Engine.Evaluate(r.Context(), chi.URLParam(r, "name"), body.Input)
	if err != nil {
		s.fail(w, "Evaluate", err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// Minimize handles the POST /automata/{name}/minimize request.
// The optional strategy query parameter selects "closure" or "symbol".
func (s *Server) Minimize(w http.ResponseWriter, r *http.Request) {
	var opts []automaton.Option
	if name := r.URL.Query().Get("strategy"); name != "" {
		strategy, err := automaton.ParseStrategy(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts = append(opts, automaton.WithStrategy(strategy))
	}

	m, err := s.Engine.Minimize(r.Context(), chi.URLParam(r, "name"), opts...)
	if err != nil {
		s.fail(w, "Minimize", err)
		return
	}

	groups := make([][]string, 0, len(m.Report.Groups))
	for _, g := range m.Report.Groups {
		labels := make([]string, 0, len(g))
		for _, st := range g {
			labels = append(labels, st.Label)
		}
		groups = append(groups, labels)
	}

	s.writeJSON(w, http.StatusOK, MinimizeResponse{
		Definition:   m.Definition,
		Strategy:     m.Report.Strategy.String(),
		Groups:       groups,
		Rounds:       m.Report.Rounds,
		Splits:       m.Report.Splits,
		ShortCircuit: m.Report.ShortCircuit,
	})
}

// GetGraph handles the GET /automata/{name}/graph request.
// format is "mermaid" (default) or "dot"; input overlays an evaluation trace on Mermaid output.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	query := r.URL.Query()

	dfa, err := s.Engine.Automaton(r.Context(), name)
	if err != nil {
		s.fail(w, "GetGraph", err)
		return
	}

	var out string
	switch format := query.Get("format"); format {
	case "", "mermaid":
		var overlay *graph.GraphOverlay
		if query.Has("input") {
			res, err := automata.Trace(r.Context(), dfa, query.Get("input"))
			if err != nil {
				s.fail(w, "GetGraph", err)
				return
			}
			overlay = graph.NewOverlay(res.Trace, res.Evaluation)
		}
		out = graph.GenerateMermaid(dfa, overlay)
	case "dot":
		out = graph.GenerateDOT(dfa)
	default:
		http.Error(w, fmt.Sprintf("unknown graph format %q", format), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, out)
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAutomatonNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDefinition):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error(op+" failed", "error", err)
	} else {
		s.logger.Debug(op+" rejected", "error", err, "status", status)
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
}
