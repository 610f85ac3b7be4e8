package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/internal/history/store"
	"github.com/msto63/sigfig/internal/precision/service"
	"github.com/msto63/sigfig/pkg/core/health"
	"github.com/msto63/sigfig/pkg/core/logging"
	"github.com/msto63/sigfig/pkg/core/version"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 64 * 1024

// RequestIDHeader carries the request id on requests and responses
const RequestIDHeader = "X-Request-ID"

// CountRequest is the body of POST /api/v1/count and /api/v1/places
type CountRequest struct {
	Input string `json:"input"`
}

// RoundRequest is the body of POST /api/v1/round. Exactly one of Figures
// and Places must be set.
type RoundRequest struct {
	Input   string `json:"input"`
	Figures int    `json:"figures,omitempty"`
	Places  *int   `json:"places,omitempty"`
}

// EvaluateRequest is the body of POST /api/v1/evaluate
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// CombineRequest is the body of POST /api/v1/combine
type CombineRequest struct {
	A  string `json:"a"`
	B  string `json:"b"`
	Op string `json:"op"`
}

// HistoryResponse lists history entries
type HistoryResponse struct {
	Entries []*store.Entry `json:"entries"`
	Total   int            `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Handler serves the JSON API under /api/v1
type Handler struct {
	svc            *service.Service
	health         *health.Registry
	logger         *logging.Logger
	allowedOrigins []string
}

// NewHandler creates a new API handler
func NewHandler(svc *service.Service, registry *health.Registry, allowedOrigins []string) *Handler {
	return &Handler{
		svc:            svc,
		health:         registry,
		logger:         logging.New("sigfig-http"),
		allowedOrigins: allowedOrigins,
	}
}

// ServeHTTP routes API requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" && originAllowed(h.allowedOrigins, origin) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		w.Header().Add("Vary", "Origin")
	}

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.Trim(path, "/")

	switch path {
	case "":
		h.handleRoot(w, r)
	case "health":
		h.handleHealth(w, r)
	case "count":
		h.handleCount(w, r)
	case "places":
		h.handlePlaces(w, r)
	case "round":
		h.handleRound(w, r)
	case "evaluate":
		h.handleEvaluate(w, r)
	case "combine":
		h.handleCombine(w, r)
	case "history":
		h.handleHistory(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Unknown endpoint: "+r.URL.Path, "")
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}
	info := version.Get()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "sigfig",
		"version": info.Version,
		"api":     info.API,
		"endpoints": []string{
			"GET /api/v1/health",
			"POST /api/v1/count",
			"POST /api/v1/places",
			"POST /api/v1/round",
			"POST /api/v1/evaluate",
			"POST /api/v1/combine",
			"GET|DELETE /api/v1/history",
			"GET /api/v1/ws",
		},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	report := h.health.Check(ctx)
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	var req CountRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Count(r.Context(), req.Input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handlePlaces(w http.ResponseWriter, r *http.Request) {
	var req CountRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Places(r.Context(), req.Input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleRound(w http.ResponseWriter, r *http.Request) {
	var req RoundRequest
	if !h.decode(w, r, &req) {
		return
	}

	var (
		res *service.RoundResult
		err error
	)
	switch {
	case req.Places != nil && req.Figures != 0:
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Set either figures or places, not both", "")
		return
	case req.Places != nil:
		res, err = h.svc.RoundDecimals(r.Context(), req.Input, *req.Places)
	default:
		res, err = h.svc.Round(r.Context(), req.Input, req.Figures)
	}
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Evaluate(r.Context(), req.Expression)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCombine(w http.ResponseWriter, r *http.Request) {
	var req CombineRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Combine(r.Context(), req.A, req.B, req.Op)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				h.writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer", v)
				return
			}
			limit = n
		}
		entries, err := h.svc.History(r.Context(), limit)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, HistoryResponse{Entries: entries, Total: len(entries)})

	case http.MethodDelete:
		if err := h.svc.ClearHistory(r.Context()); err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET or DELETE", "")
	}
}

// decode reads a JSON body from a POST request
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return false
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body", err.Error())
		return false
	}
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.requestLogger(r).LogError(err, "path", r.URL.Path)
	var coded *mdwerror.Error
	if stderrors.As(err, &coded) {
		h.writeError(w, coded.Code().HTTPStatus(), coded.Code().String(), coded.Message(), "")
		return
	}
	h.writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error", "")
}

// requestLogger tags the handler logger with the id set by the server middleware
func (h *Handler) requestLogger(r *http.Request) *logging.Logger {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		return h.logger.WithRequestID(id)
	}
	return h.logger
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// originAllowed matches origin against the allow list; "*" allows any
func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}

// errorText returns the message of a coded error without its chain
func errorText(err error) string {
	var coded *mdwerror.Error
	if stderrors.As(err, &coded) {
		return coded.Message()
	}
	return err.Error()
}
