// Copyright 2025 The prrecord Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/mikelane/prrecord/internal/pullrequest"
)

// maxPayloadBytes matches GitHub's cap on webhook payloads
const maxPayloadBytes = 25 << 20

// Server handles GitHub webhook requests
type Server struct {
	addr    string
	port    int
	handler Handler
	opts    []pullrequest.Option
	server  *http.Server
}

// NewServer creates a new webhook server. opts are applied to every record
// built from a delivery.
func NewServer(addr string, port int, handler Handler, opts ...pullrequest.Option) *Server {
	return &Server{
		addr:    addr,
		port:    port,
		handler: handler,
		opts:    opts,
	}
}

// Start starts the webhook server
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.addr, s.port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		log.Log.Info("Starting webhook server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Log.Info("Shutting down webhook server")
	return s.server.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleWebhook handles GitHub webhook requests
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context()).WithValues("delivery", r.Header.Get("X-GitHub-Delivery"))
	ctx := log.IntoContext(r.Context(), logger)

	// Only accept POST requests
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Read body
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		logger.Error(err, "Failed to read request body")
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Check event type
	eventType := r.Header.Get("X-GitHub-Event")
	if eventType != "pull_request" {
		logger.V(1).Info("Ignoring non-PR event", "event", eventType)
		w.WriteHeader(http.StatusOK)
		return
	}

	// Parse event
	record, err := pullrequest.FromJSON(payload, s.opts...)
	if err != nil {
		logger.Error(err, "Failed to parse JSON payload")
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	logger.V(1).Info("Received pull request event",
		"action", record.GetAction(),
		"repository", record.GetRepoName(),
		"number", record.GetNumber())

	if err := s.handler.HandlePullRequest(ctx, record); err != nil {
		logger.Error(err, "Failed to handle pull request event", "action", record.GetAction())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
