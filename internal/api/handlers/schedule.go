package handlers

import (
	"net/http"

	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for the match schedule
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// Add handles POST /sessions/:sessionID/schedule
// @Summary Add a match to the schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body service.AddScheduleRequest true "Scheduled match"
// @Success 201 {object} service.ScheduleResponse "Added entry"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/schedule [post]
func (h *ScheduleHandler) Add(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req service.AddScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.scheduleService.Add(sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /sessions/:sessionID/schedule
// @Summary List the match schedule
// @Description List scheduled matches ordered ascending by match number
// @Tags schedule
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} service.ScheduleResponse "Schedule"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.scheduleService.List(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkCompleted handles POST /sessions/:sessionID/schedule/:matchID/complete
// @Summary Mark a scheduled match completed
// @Description Idempotent; marking an already-completed or unknown match is a no-op
// @Tags schedule
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param matchID path string true "Schedule entry ID"
// @Success 200 {object} map[string]interface{} "Marked"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/schedule/{matchID}/complete [post]
func (h *ScheduleHandler) MarkCompleted(c *gin.Context) {
	if _, ok := sessionIDParam(c); !ok {
		return
	}

	matchID, err := uuid.Parse(c.Param("matchID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	if err := h.scheduleService.MarkCompleted(matchID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": true})
}
