package handlers

import (
	"net/http"

	"frc-scout-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles CSV and workbook downloads
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// PitCSV handles GET /sessions/:sessionID/export/pit.csv
// @Summary Export pit scouting data as CSV
// @Tags export
// @Produce text/csv
// @Param sessionID path string true "Session ID"
// @Success 200 {file} binary "CSV file"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/export/pit.csv [get]
func (h *ExportHandler) PitCSV(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	data, err := h.exportService.PitCSV(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pit_scouting_data.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// MatchCSV handles GET /sessions/:sessionID/export/matches.csv
// @Summary Export match scores as CSV
// @Tags export
// @Produce text/csv
// @Param sessionID path string true "Session ID"
// @Success 200 {file} binary "CSV file"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/export/matches.csv [get]
func (h *ExportHandler) MatchCSV(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	data, err := h.exportService.MatchCSV(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="match_scores_data.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ReportXLSX handles GET /sessions/:sessionID/export/report.xlsx
// @Summary Export the combined scouting report workbook
// @Description One workbook with a pit scouting sheet and a match scores sheet
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param sessionID path string true "Session ID"
// @Success 200 {file} binary "XLSX workbook"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/{sessionID}/export/report.xlsx [get]
func (h *ExportHandler) ReportXLSX(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	data, err := h.exportService.ReportXLSX(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="frc_scouting_report.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
