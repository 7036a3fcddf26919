// Package apitest runs an in-process fake of the SellHub REST API for tests.
//
// It implements the three auth endpoints and the health check with the same
// status codes and body shapes as the real backend, issues HS256 JWTs, and
// records every request it sees. Individual routes can be overridden to
// inject failures.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	BadCredentialsMessage = "Nieprawidłowa nazwa użytkownika lub hasło"
	UserExistsMessage     = "Użytkownik o podanej nazwie już istnieje"

	TokenTTL = time.Hour
)

var signingKey = []byte("apitest-secret")

// Request is one recorded call.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type account struct {
	id       int
	username string
	password string
	email    string
	name     string
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	accounts  map[string]*account
	tokens    map[string]string
	overrides map[string]http.HandlerFunc
	requests  []Request
	nextID    int
}

// New starts a fake API and closes it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		accounts:  make(map[string]*account),
		tokens:    make(map[string]string),
		overrides: make(map[string]http.HandlerFunc),
		nextID:    1,
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.overridable(http.MethodGet, "/api/v1/health", s.health))
		r.Post("/auth/register", s.overridable(http.MethodPost, "/api/v1/auth/register", s.register))
		r.Post("/auth/login", s.overridable(http.MethodPost, "/api/v1/auth/login", s.login))
		r.Get("/authorized/user", s.overridable(http.MethodGet, "/api/v1/authorized/user", s.user))
	})
	return r
}

// AddUser registers an account directly, bypassing the API.
func (s *Server) AddUser(username, password, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(username, password, username+"@example.com", name)
}

// Override replaces the handler for method+path until the server stops.
func (s *Server) Override(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = h
}

// RevokeTokens invalidates every issued token.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests hit method+path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) overridable(method, path string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		o, ok := s.overrides[method+" "+path]
		s.mu.Unlock()
		if ok {
			o(w, r)
			return
		}
		h(w, r)
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "OK", "message": "Health check successful"})
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("malformed request", http.StatusBadRequest))
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("username, password and email are required", http.StatusBadRequest))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[req.Username]; ok {
		writeJSON(w, http.StatusConflict, errorBody(UserExistsMessage, http.StatusConflict))
		return
	}
	s.addLocked(req.Username, req.Password, req.Email, "")
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Użytkownik " + req.Username + " został zarejestrowany pomyślnie"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("malformed request", http.StatusBadRequest))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[req.Username]
	if !ok || acc.password != req.Password {
		writeJSON(w, http.StatusUnauthorized, errorBody(BadCredentialsMessage, http.StatusUnauthorized))
		return
	}

	token, err := IssueToken(acc.username, TokenTTL)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error(), http.StatusInternalServerError))
		return
	}
	s.tokens[token] = acc.username
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "expiresIn": TokenTTL.Milliseconds(), "username": acc.username})
}

func (s *Server) user(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.tokens[token]
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	acc := s.accounts[username]
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       acc.id,
		"username": acc.username,
		"name":     acc.name,
	})
}

// IssueToken signs a JWT for subject the same way the backend does.
func IssueToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return t.SignedString(signingKey)
}

func (s *Server) addLocked(username, password, email, name string) {
	if name == "" {
		name = username
	}
	s.accounts[username] = &account{
		id:       s.nextID,
		username: username,
		password: password,
		email:    email,
		name:     name,
	}
	s.nextID++
}

// Respond is a handler that always answers with status and body.
func Respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if strings.HasPrefix(strings.TrimSpace(body), "{") {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func errorBody(message string, status int) map[string]any {
	return map[string]any{"message": message, "error": status, "status": strconv.Itoa(status)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
