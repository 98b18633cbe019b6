package handlers

import (
	"net/http"

	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for joining scouting sessions
type SessionHandler struct {
	sessionService service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// JoinSessionRequest is the join form payload
type JoinSessionRequest struct {
	TeamCode string `json:"team_code"`
}

// Join handles POST /sessions/join
// @Summary Join a scouting session
// @Description Resolve a team code to its session, creating the session on first use. Codes are trimmed and lowercased, so "6619A" and " 6619a " join the same session.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body JoinSessionRequest true "Team code"
// @Success 200 {object} service.SessionResponse "Resolved session"
// @Failure 400 {object} ErrorResponse "Empty team code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/join [post]
func (h *SessionHandler) Join(c *gin.Context) {
	var req JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.sessionService.Join(req.TeamCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /sessions/:sessionID
// @Summary Get session details
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} service.SessionResponse "Session"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.sessionService.Get(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
