package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/talentdock/search-core/internal/core/domain"
)

const (
	defaultQuickSearchLimit = 10
	defaultSuggestionLimit  = 5
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"query must contain at least one valid search term"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns readiness, verifying database and cache connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A dependency is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Search endpoints

// handleSearch godoc
// @Summary      Search document content
// @Description  Execute a ranked full-text search over extracted document text. Supports quoted phrases, word terms and -word exclusions.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SearchRequest  true  "Search parameters"
// @Success      200      {object}  domain.SearchResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request or query"
// @Failure      404      {object}  ErrorResponse  "Candidate not found"
// @Failure      500      {object}  ErrorResponse  "Search failed"
// @Router       /search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	// Decode over the defaults so omitted fields keep them
	req := domain.DefaultSearchRequest("")
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Validate(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.searchService.Search(r.Context(), req)
	if err != nil {
		s.writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleQuickSearch godoc
// @Summary      Quick search
// @Description  Lightweight search returning slim results without highlights or pagination
// @Tags         Search
// @Produce      json
// @Param        q             query     string  true   "Search query"
// @Param        candidate_id  query     int     false  "Restrict to one candidate"
// @Param        limit         query     int     false  "Maximum results"  default(10)
// @Success      200  {array}   domain.QuickSearchResult
// @Failure      400  {object}  ErrorResponse  "Missing or invalid parameters"
// @Failure      404  {object}  ErrorResponse  "Candidate not found"
// @Failure      500  {object}  ErrorResponse  "Search failed"
// @Router       /search/quick [get]
func (s *Server) handleQuickSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	candidateID, err := queryInt64Ptr(r, "candidate_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate_id")
		return
	}

	limit, err := queryInt(r, "limit", defaultQuickSearchLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	results, err := s.searchService.QuickSearch(r.Context(), query, candidateID, limit)
	if err != nil {
		s.writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// handleSuggestions godoc
// @Summary      Query suggestions
// @Description  Returns past queries similar to the given prefix, most used first
// @Tags         Search
// @Produce      json
// @Param        q      query     string  true   "Partial query"
// @Param        limit  query     int     false  "Maximum suggestions"  default(5)
// @Success      200  {array}   string
// @Failure      400  {object}  ErrorResponse  "Missing or invalid parameters"
// @Failure      500  {object}  ErrorResponse  "Lookup failed"
// @Router       /search/suggestions [get]
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	limit, err := queryInt(r, "limit", defaultSuggestionLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	suggestions, err := s.searchService.Suggest(r.Context(), query, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch suggestions")
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

// handleHistory godoc
// @Summary      Search history
// @Description  Lists recent searches, newest first, optionally scoped to a candidate
// @Tags         Search
// @Produce      json
// @Param        candidate_id  query     int  false  "Restrict to one candidate"
// @Param        limit         query     int  false  "Maximum entries"  default(50)
// @Success      200  {array}   domain.SearchHistoryEntry
// @Failure      400  {object}  ErrorResponse  "Invalid parameters"
// @Failure      500  {object}  ErrorResponse  "Lookup failed"
// @Router       /search/history [get]
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	candidateID, err := queryInt64Ptr(r, "candidate_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate_id")
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	entries, err := s.searchService.History(r.Context(), candidateID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch history")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleStatistics godoc
// @Summary      Search statistics
// @Description  Aggregated search usage: totals, popular queries and daily trends
// @Tags         Search
// @Produce      json
// @Success      200  {object}  domain.SearchStatistics
// @Failure      500  {object}  ErrorResponse  "Aggregation failed"
// @Router       /search/statistics [get]
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.searchService.Statistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// writeSearchError maps pipeline errors to HTTP status codes.
// Internal failures are never echoed back to clients.
func (s *Server) writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "candidate not found")
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("search failed", "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
	}
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
