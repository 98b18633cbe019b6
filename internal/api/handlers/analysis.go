package handlers

import (
	"net/http"
	"strings"

	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles the dashboard, search and comparison views
type AnalysisHandler struct {
	analysisService service.AnalysisServiceInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService service.AnalysisServiceInterface) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Dashboard handles GET /sessions/:sessionID/dashboard
// @Summary Session dashboard
// @Description Summary metrics plus both collections for the session
// @Tags analysis
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} service.DashboardResponse "Dashboard"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/dashboard [get]
func (h *AnalysisHandler) Dashboard(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.analysisService.Dashboard(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Search handles GET /sessions/:sessionID/search?team=...
// @Summary Search by team number
// @Description Substring match of the query against frc_team in pit and match collections
// @Tags analysis
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param team query string true "Team number fragment"
// @Success 200 {object} service.SearchResponse "Search results"
// @Failure 400 {object} ErrorResponse "Empty query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/search [get]
func (h *AnalysisHandler) Search(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.analysisService.SearchByTeam(sessionID, c.Query("team"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FilterByCapability handles GET /sessions/:sessionID/search/capability?capability=can_climb
// @Summary Quick capability filter
// @Description List pit entries whose named boolean capability flag is set
// @Tags analysis
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param capability query string true "Capability column (e.g. can_climb, has_vision)"
// @Success 200 {array} service.PitResponse "Matching pit entries"
// @Failure 400 {object} ErrorResponse "Unknown capability"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/search/capability [get]
func (h *AnalysisHandler) FilterByCapability(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.analysisService.FilterByCapability(sessionID, c.Query("capability"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Compare handles GET /sessions/:sessionID/compare?teams=254,1678
// @Summary Side-by-side team comparison
// @Description Compare 2-4 distinct teams. A single selection returns a need_more_selections payload; more than 4 is rejected.
// @Tags analysis
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param teams query string true "Comma-separated team numbers"
// @Success 200 {object} service.ComparisonResponse "Comparison"
// @Failure 400 {object} ErrorResponse "Selection out of bounds"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/compare [get]
func (h *AnalysisHandler) Compare(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var teams []string
	for _, v := range c.QueryArray("teams") {
		teams = append(teams, strings.Split(v, ",")...)
	}

	resp, err := h.analysisService.Compare(sessionID, teams)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
