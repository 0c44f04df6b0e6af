package network

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luca-patrignani/pokerhand/domain/hand"
)

// maxBodySize bounds the request body; a hand is a few dozen bytes.
const maxBodySize = 4096

// HandRequest is the body of POST /api/hands.
type HandRequest struct {
	Cards string `json:"cards"`
}

// HandResponse reports the outcome of evaluating one hand.
type HandResponse struct {
	Cards       string         `json:"cards"`
	Valid       bool           `json:"valid"`
	Category    *hand.Category `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	Errors      []string       `json:"errors,omitempty"`
}

// ErrorResponse is returned for requests that could not be read.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type handHandler struct {
	logger *slog.Logger
}

// NewRouter returns the HTTP API of the evaluator.
func NewRouter(logger *slog.Logger) http.Handler {
	h := handHandler{logger: logger.With(slog.String("component", "hand_handler"))}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/hands", h.evaluate)
		r.Get("/categories", h.categories)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})
	return r
}

// Evaluate builds the response for a raw hand.
func Evaluate(cards string) HandResponse {
	h := hand.New(cards)
	resp := HandResponse{Cards: cards, Valid: h.Valid()}
	category, err := h.Classify()
	if err != nil {
		resp.Errors = h.Errors()
		return resp
	}
	resp.Category = &category
	if d, err := h.Describe(); err == nil {
		resp.Description = d
	}
	return resp
}

func (h handHandler) evaluate(w http.ResponseWriter, r *http.Request) {
	var req HandRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Debug("undecodable hand request", "error", err, "request_id", middleware.GetReqID(r.Context()))
		respondWithJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{
			Error:     "request body must be a JSON object with a \"cards\" string",
			RequestID: middleware.GetReqID(r.Context()),
		})
		return
	}

	resp := Evaluate(req.Cards)
	if !resp.Valid {
		h.logger.Debug("invalid hand", "cards", req.Cards, "errors", resp.Errors)
		respondWithJSON(w, h.logger, http.StatusUnprocessableEntity, resp)
		return
	}
	h.logger.Debug("hand classified", "cards", req.Cards, "category", resp.Category.String())
	respondWithJSON(w, h.logger, http.StatusOK, resp)
}

func (h handHandler) categories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, h.logger, http.StatusOK, hand.Categories())
}

func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
