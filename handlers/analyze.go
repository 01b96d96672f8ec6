package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careercopilot/backend/analyzer"
	"github.com/careercopilot/backend/auth"
	"github.com/careercopilot/backend/config"
	"github.com/careercopilot/backend/interview"
	"github.com/careercopilot/backend/jobsearch"
	"github.com/careercopilot/backend/models"
	"github.com/careercopilot/backend/session"
	"github.com/careercopilot/backend/storage"
	"github.com/careercopilot/backend/utils"
)

// AnalyzeHandler handles resume upload and analysis requests
type AnalyzeHandler struct {
	cfg             *config.Config
	analyzer        *analyzer.Analyzer
	sessions        session.Store
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
}

// NewAnalyzeHandler creates a new analyze handler. The Firestore and Cloud
// Storage clients are optional; without them results live only in the session.
func NewAnalyzeHandler(
	cfg *config.Config,
	an *analyzer.Analyzer,
	sessions session.Store,
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:             cfg,
		analyzer:        an,
		sessions:        sessions,
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
	}
}

// Analyze handles resume upload and runs the analysis pipeline
// @Summary Analyze a resume against a target role
// @Description Upload a resume (PDF or plain text) and get a full analysis with skill gaps, roadmap, job links and interview prep
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF or TXT)"
// @Param target_role formData string true "Target job role"
// @Success 200 {object} models.AnalyzeResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid upload"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	targetRole := strings.TrimSpace(c.PostForm("target_role"))
	if targetRole == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "target_role is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Resume file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	maxBytes := int64(h.cfg.MaxResumeSizeMB) << 20
	if header.Size > maxBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Resume file too large",
			Code:  http.StatusBadRequest,
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to read resume file",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	resumeText, err := extractResumeText(data, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Could not extract text from resume",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	// Create the session before the (slow) analysis so a retry after a
	// timeout can reuse its cookie.
	sess, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create session",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	result := h.analyzer.Analyze(c.Request.Context(), resumeText, targetRole)

	sess.ResumeText = resumeText
	sess.TargetRole = targetRole
	sess.Analysis = result
	if claims := auth.GetAuthClaims(c); claims != nil {
		sess.UserID = claims.Email
	}
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		log.Printf("[AnalyzeHandler] Failed to save session: %v", err)
	}

	h.setSessionCookie(c, sess.ID)
	h.persist(c, sess, data, header.Filename)

	c.JSON(http.StatusOK, h.buildResponse(sess, result))
}

// buildResponse enriches the analysis with job links, videos and interview
// questions for the target role.
func (h *AnalyzeHandler) buildResponse(sess *session.Session, result *models.Analysis) models.AnalyzeResponse {
	var gapSkills []string
	gapSkills = append(gapSkills, result.SkillGaps.Core...)
	gapSkills = append(gapSkills, result.SkillGaps.Supporting...)

	questions := interview.ResumeQuestions(sess.ResumeText, result.Strengths, result.SkillGaps)

	return models.AnalyzeResponse{
		SessionID:  sess.ID,
		TargetRole: sess.TargetRole,
		Analysis:   *result,
		JobLinks:   jobsearch.Links(sess.TargetRole),
		JobTips:    jobsearch.Tips(sess.TargetRole),
		Videos:     jobsearch.VideoRecommendations(gapSkills),
		Questions:  questions,
		DemoMode:   result.DemoMode,
	}
}

// persist uploads the resume and records the analysis when storage is
// configured. Failures are logged, never surfaced to the client.
func (h *AnalyzeHandler) persist(c *gin.Context, sess *session.Session, data []byte, filename string) {
	ctx := c.Request.Context()

	if h.firestoreClient != nil {
		if err := h.firestoreClient.SaveAnalysis(ctx, sess.ID, sess.UserID, sess.Analysis); err != nil {
			log.Printf("[AnalyzeHandler] Failed to persist analysis: %v", err)
		}
	}

	if sess.UserID == "" {
		return
	}

	if h.storageClient != nil {
		url, err := h.storageClient.UploadResumeFromBytes(ctx, sess.UserID, data, filename)
		if err != nil {
			log.Printf("[AnalyzeHandler] Failed to upload resume: %v", err)
			return
		}
		if h.firestoreClient != nil {
			record := &models.FileRecord{
				UID:        sess.UserID,
				FileName:   filename,
				FileURL:    url,
				TargetRole: sess.TargetRole,
				SizeKB:     float64(len(data)) / 1024,
			}
			if err := h.firestoreClient.SaveFileRecord(ctx, record); err != nil {
				log.Printf("[AnalyzeHandler] Failed to save file record: %v", err)
			}
			if err := h.firestoreClient.UpdateUserResumeURL(ctx, sess.UserID, url); err != nil {
				log.Printf("[AnalyzeHandler] Failed to update resume URL: %v", err)
			}
			audit := &models.AuditLog{UID: sess.UserID, Action: models.AuditUploadResume, Details: filename}
			if err := h.firestoreClient.LogAudit(ctx, audit); err != nil {
				log.Printf("[AnalyzeHandler] Failed to write audit log: %v", err)
			}
		}
	}
}

func (h *AnalyzeHandler) setSessionCookie(c *gin.Context, sessionID string) {
	maxAge := h.cfg.SessionTTLHours * 3600
	secure := !h.cfg.Debug
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, sessionID, maxAge, "/", "", secure, true)
}

// extractResumeText pulls plain text out of the uploaded file. PDFs go
// through the PDF extractor; anything else is treated as UTF-8 text.
func extractResumeText(data []byte, filename string) (string, error) {
	if utils.IsPDF(data) || strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		text, err := utils.ExtractPDFText(data)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", errors.New("no extractable text in PDF")
		}
		return text, nil
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("empty resume")
	}
	return text, nil
}
