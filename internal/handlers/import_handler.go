package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sinansouth/EnglishNet/internal/services"
)

type ImportHandler struct {
	svc *services.ImportService
}

func NewImportHandler(svc *services.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

type ImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// @Summary Import a pasted roster
// @Tags import
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Lines of Name Surname ClassName"
// @Success 200 {object} importer.Summary
// @Router /api/v1/import/roster [post]
func (h *ImportHandler) Roster(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.svc.ImportRoster(req.Text)
	if err != nil {
		log.Printf("Error importing roster: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Import pasted exam results
// @Tags import
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Lines of ExamName StudentName Correct Incorrect"
// @Success 200 {object} importer.Summary
// @Router /api/v1/import/results [post]
func (h *ImportHandler) Results(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.svc.ImportResults(req.Text)
	if err != nil {
		log.Printf("Error importing results: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Import pasted class reassignments
// @Tags import
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Lines of Name Surname NewClassName"
// @Success 200 {object} importer.Summary
// @Router /api/v1/import/class-changes [post]
func (h *ImportHandler) ClassChanges(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.svc.ImportClassChanges(req.Text)
	if err != nil {
		log.Printf("Error importing class changes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
