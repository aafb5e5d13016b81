//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package server exposes ROUGE scoring over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"trpc.group/trpc-go/trpc-rouge-go/config"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

const defaultMaxBodyBytes = 8 << 20

// Server serves ROUGE scores. The tokenizer and sentence splitter are built
// once from the configuration and shared by every request.
type Server struct {
	router         *mux.Router
	tokenizer      rouge.Tokenizer
	splitter       rouge.SentenceSplitter
	defaultMetrics []string
	workers        int

	allowedOrigins []string
	maxBodyBytes   int64
}

// Option configures the Server instance.
type Option func(*Server)

// WithAllowedOrigins restricts CORS to the given origins. All origins are
// allowed by default.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.allowedOrigins = append([]string(nil), origins...) }
}

// WithMaxBodyBytes limits the request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// New creates a server from cfg.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tok, err := cfg.NewTokenizer()
	if err != nil {
		return nil, err
	}
	splitter, err := cfg.NewSplitter()
	if err != nil {
		return nil, err
	}
	s := &Server{
		router:         mux.NewRouter(),
		tokenizer:      tok,
		splitter:       splitter,
		defaultMetrics: append([]string(nil), cfg.Metrics...),
		workers:        cfg.Workers,
		allowedOrigins: []string{"*"},
		maxBodyBytes:   defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length", "Content-Type"},
	})
	s.router.Use(c.Handler)
	s.registerRoutes()
	return s, nil
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/score", s.handleScore).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/score/batch", s.handleScoreBatch).Methods(http.MethodPost)

	preflight := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	s.router.HandleFunc("/v1/score", preflight).Methods(http.MethodOptions)
	s.router.HandleFunc("/v1/score/batch", preflight).Methods(http.MethodOptions)
}

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	// Metrics overrides the configured metrics when not empty.
	Metrics   []string `json:"metrics,omitempty"`
	Reference string   `json:"reference"`
	Candidate string   `json:"candidate"`
}

// ScoreResponse is the body returned by POST /v1/score.
type ScoreResponse struct {
	Scores *rouge.ResultMap `json:"scores"`
}

// BatchPair is one pair of a batch request.
type BatchPair struct {
	// ID identifies the pair in the response and is generated when empty.
	ID        string `json:"id,omitempty"`
	Reference string `json:"reference"`
	Candidate string `json:"candidate"`
}

// BatchRequest is the body of POST /v1/score/batch.
type BatchRequest struct {
	Metrics []string    `json:"metrics,omitempty"`
	Pairs   []BatchPair `json:"pairs"`
}

// BatchResult holds the outcome of one pair.
type BatchResult struct {
	ID     string           `json:"id"`
	Scores *rouge.ResultMap `json:"scores,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// BatchResponse is the body returned by POST /v1/score/batch.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	log.Infof("handleScore called: path=%s", r.URL.Path)
	defer r.Body.Close()

	var req ScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	scorer, err := s.scorer(req.Metrics)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	scores, err := scorer.Score(r.Context(), req.Reference, req.Candidate)
	if err != nil {
		log.Errorf("handleScore: %v", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.writeJSON(w, ScoreResponse{Scores: scores})
}

func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	log.Infof("handleScoreBatch called: path=%s", r.URL.Path)
	defer r.Body.Close()

	var req BatchRequest
	if err := s.decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	scorer, err := s.scorer(req.Metrics)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	pairs := make([]rouge.Pair, len(req.Pairs))
	resp := BatchResponse{Results: make([]BatchResult, len(req.Pairs))}
	for i, p := range req.Pairs {
		pairs[i] = rouge.Pair{Reference: p.Reference, Candidate: p.Candidate}
		resp.Results[i].ID = p.ID
		if resp.Results[i].ID == "" {
			resp.Results[i].ID = uuid.NewString()
		}
	}
	results, err := scorer.ScoreBatch(r.Context(), pairs)
	if err != nil {
		log.Warnf("handleScoreBatch: %v", err)
	}
	pairErrs := rouge.PairErrors(err, len(resp.Results))
	for i := range resp.Results {
		if i < len(results) && results[i] != nil {
			resp.Results[i].Scores = results[i]
			continue
		}
		resp.Results[i].Error = "not scored"
		if pairErrs[i] != nil {
			resp.Results[i].Error = pairErrs[i].Error()
		}
	}
	s.writeJSON(w, resp)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) scorer(metrics []string) (*rouge.Scorer, error) {
	if len(metrics) == 0 {
		metrics = s.defaultMetrics
	}
	return rouge.New(s.tokenizer,
		rouge.WithRougeTypes(metrics...),
		rouge.WithSentenceSplitter(s.splitter),
		rouge.WithWorkers(s.workers),
	)
}

func statusFor(err error) int {
	if errors.Is(err, rouge.ErrInvalidMetricLabel) || errors.Is(err, rouge.ErrInvalidNgramOrder) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
