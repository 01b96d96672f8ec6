package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercopilot/backend/models"
	"github.com/careercopilot/backend/report"
)

// CoverLetter generates a cover letter from the session's resume
// @Summary Generate a cover letter
// @Description Generate a personalized cover letter for a company and position from the uploaded resume
// @Tags CoverLetter
// @Accept json
// @Produce json
// @Param request body models.CoverLetterRequest true "Cover letter request"
// @Success 200 {object} models.CoverLetterResponse "Generated cover letter"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "No session"
// @Router /cover-letter [post]
func (h *AnalyzeHandler) CoverLetter(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req models.CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	letter := h.analyzer.GenerateCoverLetter(c.Request.Context(), sess.ResumeText, req)

	sess.CoverLetter = letter
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		log.Printf("[AnalyzeHandler] Failed to save cover letter to session: %v", err)
	}

	c.JSON(http.StatusOK, models.CoverLetterResponse{CoverLetter: *letter})
}

// CoverLetterPDF downloads the last generated cover letter as PDF
// @Summary Download cover letter PDF
// @Description Download the most recently generated cover letter as a PDF
// @Tags CoverLetter
// @Produce application/pdf
// @Success 200 {string} string "PDF content"
// @Failure 404 {object} models.ErrorResponse "No cover letter generated yet"
// @Router /cover-letter/pdf [get]
func (h *AnalyzeHandler) CoverLetterPDF(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	if sess.CoverLetter == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No cover letter generated yet",
			Code:  http.StatusNotFound,
		})
		return
	}

	data, err := report.CoverLetterPDF(sess.CoverLetter)
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to render cover letter: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate PDF",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	filename := fmt.Sprintf("cover_letter_%s.pdf", sess.CoverLetter.Company)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
