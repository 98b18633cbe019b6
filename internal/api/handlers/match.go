package handlers

import (
	"net/http"

	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for match scoring
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match scoring handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// Record handles POST /sessions/:sessionID/matches
// @Summary Record a match score
// @Description Record one observation of a team's match performance. Every submission is a new row; re-scouting the same match and team is allowed and produces multiple records.
// @Tags matches
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body service.RecordMatchRequest true "Match observation"
// @Success 201 {object} service.MatchResponse "Recorded score"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/matches [post]
func (h *MatchHandler) Record(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req service.RecordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.matchService.Record(sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /sessions/:sessionID/matches
// @Summary List match scores
// @Tags matches
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} service.MatchResponse "Match scores"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.matchService.List(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
