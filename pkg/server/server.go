// Package server serves a dictionary over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/khalid-nowaf/lextrie/pkg/dictionary"
	"go.uber.org/zap"
)

// Server exposes a dictionary over HTTP.
// The dictionary itself is not safe for concurrent use, so every handler goes through mu.
type Server struct {
	mu     sync.RWMutex
	dict   *dictionary.Dictionary
	logger *zap.Logger
	router *mux.Router
}

// EntryResponse is the JSON form of a dictionary entry
type EntryResponse struct {
	Word        string            `json:"word"`
	Translation string            `json:"translation"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// PutRequest is the body of PUT /api/entries/{word}
type PutRequest struct {
	Translation *string           `json:"translation"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// PutResponse reports what a PUT did
type PutResponse struct {
	EntryResponse
	Action   string `json:"action"`
	Previous string `json:"previous,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a server over dict.
func New(dict *dictionary.Dictionary, logger *zap.Logger) *Server {
	s := &Server{
		dict:   dict,
		logger: logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.healthz).Methods("GET")
	r.HandleFunc("/api/tree", s.tree).Methods("GET")
	r.HandleFunc("/api/entries", s.listEntries).Methods("GET")
	r.HandleFunc("/api/entries/{word:.+}", s.getEntry).Methods("GET")
	r.HandleFunc("/api/entries/{word:.+}", s.putEntry).Methods("PUT")
	r.HandleFunc("/api/entries/{word:.+}", s.deleteEntry).Methods("DELETE")
	s.router = r

	return s
}

// Handler returns the router wrapped with the middleware chain.
func (s *Server) Handler() http.Handler {
	return alice.New(s.recoverer, s.requestLogger).Then(s.router)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) tree(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.dict.Print(w); err != nil {
		s.logger.Error("failed to print dictionary", zap.Error(err))
	}
}

func (s *Server) listEntries(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	entries := s.dict.Entries()
	s.mu.RUnlock()

	response := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toResponse(entry.Word, entry.Metadata))
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.RLock()
	entry, found := s.dict.LookupEntry(word)
	s.mu.RUnlock()

	if !found {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "word not found"})
		return
	}
	s.writeJSON(w, http.StatusOK, toResponse(entry.Word, entry.Metadata))
}

func (s *Server) putEntry(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	request := PutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Translation == nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be a JSON object with a translation"})
		return
	}

	metadata := dictionary.NewMetadata(*request.Translation)
	for key, value := range request.Attributes {
		metadata.Attributes[key] = value
	}

	s.mu.Lock()
	result, err := s.dict.InsertMetadata(word, metadata)
	s.mu.Unlock()

	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	response := PutResponse{
		EntryResponse: toResponse(result.Word, result.Current),
		Action:        "inserted",
	}
	if result.Replaced() {
		response.Action = "replaced"
		response.Previous = result.Previous.Translation
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	removed := s.dict.Remove(word)
	s.mu.Unlock()

	if !removed {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "word not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toResponse(word string, metadata *dictionary.Metadata) EntryResponse {
	response := EntryResponse{Word: word, Translation: metadata.Translation}
	if len(metadata.Attributes) > 0 {
		response.Attributes = metadata.Attributes
	}
	return response
}
