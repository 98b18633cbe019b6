package handlers

import (
	"io"
	"net/http"

	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PitHandler handles HTTP requests for pit scouting
type PitHandler struct {
	pitService service.PitServiceInterface
}

// NewPitHandler creates a new pit scouting handler
func NewPitHandler(pitService service.PitServiceInterface) *PitHandler {
	return &PitHandler{
		pitService: pitService,
	}
}

// Upsert handles POST /sessions/:sessionID/pit
// @Summary Save a pit scouting entry
// @Description Save a robot profile. A second submission for the same team number updates the existing row. The optional "photo" file replaces the stored photo; omitting it keeps the previous one.
// @Tags pit
// @Accept multipart/form-data
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param frc_team formData string true "FRC team number"
// @Param photo formData file false "Robot photo (PNG/JPEG)"
// @Success 200 {object} service.PitResponse "Saved entry"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/pit [post]
func (h *PitHandler) Upsert(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req service.UpsertPitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form data: " + err.Error()})
		return
	}

	// Photo is optional; only read it when the form carries one
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open uploaded photo: " + err.Error()})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded photo: " + err.Error()})
			return
		}
		req.Photo = data
		req.PhotoFilename = file.Filename
	}

	resp, err := h.pitService.Upsert(sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /sessions/:sessionID/pit
// @Summary List pit scouting entries
// @Tags pit
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} service.PitResponse "Pit entries"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/pit [get]
func (h *PitHandler) List(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	resp, err := h.pitService.List(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPhoto handles GET /sessions/:sessionID/pit/:team/photo
// @Summary Get a robot photo
// @Description Serve the stored robot photo bytes for a team
// @Tags pit
// @Produce image/png
// @Param sessionID path string true "Session ID"
// @Param team path string true "FRC team number"
// @Success 200 {file} binary "Photo bytes"
// @Failure 404 {object} ErrorResponse "No photo stored"
// @Router /sessions/{sessionID}/pit/{team}/photo [get]
func (h *PitHandler) GetPhoto(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	data, filename, err := h.pitService.GetPhoto(sessionID, c.Param("team"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
