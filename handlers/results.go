package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercopilot/backend/interview"
	"github.com/careercopilot/backend/jobsearch"
	"github.com/careercopilot/backend/models"
	"github.com/careercopilot/backend/report"
	"github.com/careercopilot/backend/session"
)

// currentSession loads the session referenced by the request cookie.
func (h *AnalyzeHandler) currentSession(c *gin.Context) (*session.Session, bool) {
	id, err := c.Cookie(session.CookieName)
	if err != nil || id == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No active session. Upload a resume first.",
			Code:  http.StatusNotFound,
		})
		return nil, false
	}

	sess, err := h.sessions.Get(c.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Session expired. Upload a resume first.",
			Code:  http.StatusNotFound,
		})
		return nil, false
	}
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to load session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load session",
			Code:  http.StatusInternalServerError,
		})
		return nil, false
	}
	return sess, true
}

// analyzedSession is currentSession plus the requirement that an analysis
// has already run.
func (h *AnalyzeHandler) analyzedSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := h.currentSession(c)
	if !ok {
		return nil, false
	}
	if sess.Analysis == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No analysis available for this session",
			Code:  http.StatusNotFound,
		})
		return nil, false
	}
	return sess, true
}

// Results returns the stored analysis for the current session
// @Summary Get analysis results
// @Description Return the analysis stored in the current session
// @Tags Analysis
// @Produce json
// @Success 200 {object} models.AnalyzeResponse "Stored analysis"
// @Failure 404 {object} models.ErrorResponse "No session or analysis"
// @Router /results [get]
func (h *AnalyzeHandler) Results(c *gin.Context) {
	sess, ok := h.analyzedSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.buildResponse(sess, sess.Analysis))
}

// Jobs returns job search links and tips for the session's target role
// @Summary Get job search links
// @Description Job board links, tips and alternative titles for the analyzed role
// @Tags Resources
// @Produce json
// @Success 200 {object} models.JobsResponse "Job search resources"
// @Failure 404 {object} models.ErrorResponse "No session"
// @Router /jobs [get]
func (h *AnalyzeHandler) Jobs(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}

	role := sess.TargetRole
	if q := c.Query("role"); q != "" {
		role = q
	}
	if role == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No target role set for this session",
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusOK, models.JobsResponse{
		Role:              role,
		Links:             jobsearch.Links(role),
		Tips:              jobsearch.Tips(role),
		AlternativeTitles: jobsearch.AlternativeTitles(role),
	})
}

// Interview returns interview preparation material for the session
// @Summary Get interview preparation
// @Description Curated and resume-personalized interview questions plus general tips
// @Tags Resources
// @Produce json
// @Success 200 {object} models.InterviewResponse "Interview material"
// @Failure 404 {object} models.ErrorResponse "No session or analysis"
// @Router /interview [get]
func (h *AnalyzeHandler) Interview(c *gin.Context) {
	sess, ok := h.analyzedSession(c)
	if !ok {
		return
	}

	personalized := h.analyzer.PersonalizedQuestions(
		c.Request.Context(), sess.ResumeText, sess.TargetRole,
		sess.Analysis.Strengths, sess.Analysis.SkillGaps)

	c.JSON(http.StatusOK, models.InterviewResponse{
		Role:         sess.TargetRole,
		Questions:    interview.Questions(sess.TargetRole),
		Personalized: personalized,
		Tips:         interview.Tips(),
	})
}

// ExportTSV downloads the analysis as a tab-separated file
// @Summary Export analysis as TSV
// @Description Download the stored analysis as a spreadsheet-friendly TSV file
// @Tags Analysis
// @Produce text/tab-separated-values
// @Success 200 {string} string "TSV content"
// @Failure 404 {object} models.ErrorResponse "No session or analysis"
// @Router /export/tsv [get]
func (h *AnalyzeHandler) ExportTSV(c *gin.Context) {
	sess, ok := h.analyzedSession(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("analysis_%s.tsv", sess.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/tab-separated-values", []byte(sess.Analysis.TSV()))
}

// ReportPDF downloads the analysis as a PDF report
// @Summary Export analysis as PDF
// @Description Download the stored analysis as a formatted PDF report
// @Tags Analysis
// @Produce application/pdf
// @Success 200 {string} string "PDF content"
// @Failure 404 {object} models.ErrorResponse "No session or analysis"
// @Router /report/pdf [get]
func (h *AnalyzeHandler) ReportPDF(c *gin.Context) {
	sess, ok := h.analyzedSession(c)
	if !ok {
		return
	}

	data, err := report.AnalysisPDF(sess.Analysis)
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to render report: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate PDF report",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	filename := fmt.Sprintf("analysis_%s.pdf", sess.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
