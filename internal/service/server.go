package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/fnlab/domainfn"
	"github.com/fnlab/domainfn/pkg/log"
)

// Server maps HTTP requests onto the account domain functions: the
// JSON body becomes the input value and request headers become the
// environment value. Result failures translate to status codes by
// channel: input errors 422, environment errors 403, generic 500.
type Server struct {
	svc    *Service
	logger log.Logger
	cfg    atomic.Pointer[Config]
	mux    *http.ServeMux
}

// NewServer creates a Server around svc.
func NewServer(cfg Config, svc *Service, logger log.Logger) *Server {
	s := &Server{svc: svc, logger: logger}
	s.cfg.Store(&cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/accounts", s.handleSignup)
	mux.HandleFunc("GET /v1/accounts", s.handleList)
	mux.HandleFunc("GET /v1/overview", s.handleOverview)
	s.mux = mux
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.mux }

// UpdateConfig swaps the live configuration. Used by the config
// watcher; only request-scoped settings such as the default locale
// take effect without a restart.
func (s *Server) UpdateConfig(cfg Config) {
	s.cfg.Store(&cfg)
	s.logger.Info("configuration reloaded",
		log.String("default_locale", cfg.DefaultLocale))
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "malformed JSON body"})
		return
	}
	result := s.svc.CreateAccount()(r.Context(), input, s.environment(r))
	writeResult(w, result, http.StatusCreated)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	result := s.svc.ListAccounts()(r.Context(), nil, s.environment(r))
	writeResult(w, result, http.StatusOK)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	result := s.svc.Overview()(r.Context(), nil, s.environment(r))
	writeResult(w, result, http.StatusOK)
}

// environment builds the untrusted environment value from request
// headers, falling back to the configured default locale.
func (s *Server) environment(r *http.Request) map[string]any {
	locale := primaryLanguage(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = s.cfg.Load().DefaultLocale
	}
	return map[string]any{
		"locale": locale,
		"role":   r.Header.Get("X-Role"),
	}
}

// primaryLanguage extracts the first language tag from an
// Accept-Language header, without quality ordering.
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(strings.TrimSpace(first), ";")
	if tag == "*" {
		return ""
	}
	return tag
}

// decodeBody reads the JSON body into an untrusted value. An empty
// body yields nil so validation reports the missing fields instead of
// a decode failure.
func decodeBody(r *http.Request) (any, error) {
	defer r.Body.Close()
	var input any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return input, nil
}

func writeResult[T any](w http.ResponseWriter, result domainfn.Result[T], successStatus int) {
	status := successStatus
	if !result.Success {
		switch {
		case len(result.InputErrors) > 0:
			status = http.StatusUnprocessableEntity
		case len(result.EnvironmentErrors) > 0:
			status = http.StatusForbidden
		default:
			status = http.StatusInternalServerError
		}
	}
	writeJSON(w, status, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
