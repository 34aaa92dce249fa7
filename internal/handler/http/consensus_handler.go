package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
	"github.com/cypherlabdev/consensus-odds-service/internal/service"
)

// ConsensusHandler handles HTTP requests for fixture resolution and
// consensus records
type ConsensusHandler struct {
	service *service.ResolutionService
	logger  zerolog.Logger
}

// NewConsensusHandler creates a new consensus HTTP handler
func NewConsensusHandler(service *service.ResolutionService, logger zerolog.Logger) *ConsensusHandler {
	return &ConsensusHandler{
		service: service,
		logger:  logger.With().Str("component", "consensus_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *ConsensusHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/consensus - Resolve a fixture and assemble its record
	mux.HandleFunc("/api/v1/consensus", h.handleResolveConsensus)

	// GET /api/v1/leagues - List supported leagues and their rosters
	mux.HandleFunc("/api/v1/leagues", h.handleListLeagues)
}

// ConsensusRequest is the API request for fixture resolution
type ConsensusRequest struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	League   string `json:"league"`
	GameDate string `json:"game_date"` // DD/MM/YYYY or YYYY-MM-DD
	Season   int    `json:"season,omitempty"`
	EventID  string `json:"event_id,omitempty"` // explicit pick after an ambiguous response
}

// CandidateResponse is one option in an ambiguous resolution response
type CandidateResponse struct {
	EventID      string `json:"event_id"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	CommenceTime string `json:"commence_time"`
}

// handleResolveConsensus handles POST /api/v1/consensus
func (h *ConsensusHandler) handleResolveConsensus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var apiReq ConsensusRequest
	if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if apiReq.HomeTeam == "" || apiReq.AwayTeam == "" || apiReq.League == "" {
		h.errorResponse(w, http.StatusBadRequest, "home_team, away_team, and league are required")
		return
	}

	targetDate, err := parseGameDate(apiReq.GameDate)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "game_date must be DD/MM/YYYY or YYYY-MM-DD")
		return
	}

	req := models.ResolutionRequest{
		HomeTeam:        apiReq.HomeTeam,
		AwayTeam:        apiReq.AwayTeam,
		League:          apiReq.League,
		TargetDate:      targetDate,
		SeasonStartYear: apiReq.Season,
		EventID:         apiReq.EventID,
	}

	result, err := h.service.Resolve(r.Context(), req)
	if err != nil {
		h.resolveErrorResponse(w, req, err)
		return
	}

	if result.Outcome.Status == models.StatusAmbiguous {
		candidates := make([]CandidateResponse, len(result.Outcome.Candidates))
		for i, c := range result.Outcome.Candidates {
			candidates[i] = CandidateResponse{
				EventID:      c.EventID,
				HomeTeam:     c.HomeTeam,
				AwayTeam:     c.AwayTeam,
				CommenceTime: c.CommenceTime.Format(time.RFC3339),
			}
		}
		h.jsonResponse(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"status":     "ambiguous",
			"message":    "multiple fixtures match; resubmit with event_id",
			"candidates": candidates,
		})
		return
	}

	h.jsonResponse(w, http.StatusOK, result.Record)
}

// resolveErrorResponse maps pipeline errors to HTTP statuses
func (h *ConsensusHandler) resolveErrorResponse(w http.ResponseWriter, req models.ResolutionRequest, err error) {
	switch {
	case errors.Is(err, models.ErrLeagueNotSupported):
		h.errorResponse(w, http.StatusBadRequest, "league not supported")

	case errors.Is(err, models.ErrNoCandidatesInWindow):
		h.logger.Debug().
			Str("home_team", req.HomeTeam).
			Str("away_team", req.AwayTeam).
			Str("league", req.League).
			Msg("no fixture found")
		h.errorResponse(w, http.StatusNotFound, "no matching fixture found")

	case errors.Is(err, models.ErrProviderUnavailable):
		h.logger.Error().Err(err).Str("league", req.League).Msg("odds provider unavailable")
		h.errorResponse(w, http.StatusBadGateway, "odds provider unavailable")

	default:
		h.logger.Error().Err(err).Msg("resolution failed")
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

// handleListLeagues handles GET /api/v1/leagues
func (h *ConsensusHandler) handleListLeagues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	leagues := h.service.Leagues()

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":   len(leagues),
		"leagues": leagues,
	})
}

// parseGameDate accepts the legacy DD/MM/YYYY form and ISO dates
func parseGameDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("game_date is required")
	}
	if t, err := time.Parse("02/01/2006", raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// jsonResponse writes a JSON response
func (h *ConsensusHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *ConsensusHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
