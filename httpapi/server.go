// Package httpapi exposes the locate pipeline over HTTP.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	tothepoint "github.com/drivernf/to-the-point"
	gq "github.com/drivernf/to-the-point/goquery"
)

// maxRequestBytes caps the request body; documents larger than this are
// rejected rather than parsed.
const maxRequestBytes = 10 << 20

// Server handles HTTP requests for the locate API.
type Server struct {
	locator tothepoint.Locator
	logger  *slog.Logger
	router  chi.Router
}

// NewServer creates a Server wrapping the given Locator.
func NewServer(locator tothepoint.Locator, logger *slog.Logger) *Server {
	s := &Server{
		locator: locator,
		logger:  logger,
		router:  chi.NewRouter(),
	}
	s.router.Use(s.logRequests)
	s.router.Post("/v1/locate", s.handleLocate)
	s.router.Get("/healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type locateRequest struct {
	HTML  string `json:"html"`
	Title string `json:"title"`
}

type locateResponse struct {
	IsArticle bool                      `json:"isArticle"`
	Title     string                    `json:"title"`
	Body      tothepoint.BodyExtraction `json:"body"`
	Ranking   tothepoint.RankingResult  `json:"ranking"`
}

func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req locateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.error(w, tothepoint.Errorf(tothepoint.EINVALID, "invalid request body: %v", err))
		return
	}

	page, err := gq.Parse(req.HTML)
	if err != nil {
		s.error(w, err)
		return
	}

	title := req.Title
	if title == "" {
		title = page.Headline()
	}

	loc, err := s.locator.Locate(page.Root(), page.Metadata(), title)
	if err != nil {
		s.error(w, err)
		return
	}

	s.respond(w, http.StatusOK, locateResponse{
		IsArticle: page.IsArticle(),
		Title:     title,
		Body:      loc.Body,
		Ranking:   loc.Ranking,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// error writes an application error as JSON, mapping domain error codes to
// HTTP status codes. Internal errors are logged and masked.
func (s *Server) error(w http.ResponseWriter, err error) {
	code := tothepoint.ErrorCode(err)
	if code == tothepoint.EINTERNAL {
		s.logger.Error("internal error", "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromCode(code))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": tothepoint.ErrorMessage(err),
		"code":  code,
	})
}

func statusFromCode(code string) int {
	switch code {
	case tothepoint.EINVALID:
		return http.StatusBadRequest
	case tothepoint.ENOTFOUND:
		return http.StatusNotFound
	case tothepoint.EUNPROCESSABLE:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
		)
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
