package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"target_role is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	DemoMode  bool   `json:"demo_mode" example:"false"` // True when no API keys are configured
}

// AnalyzeResponse represents the full resume analysis result
// @Description Resume analysis with role fit, roadmap and supporting resources
type AnalyzeResponse struct {
	SessionID  string              `json:"session_id" example:"8f14e45f-ceea-467f-a1de-91b1c4f6a0d2"`
	TargetRole string              `json:"target_role" example:"Backend Developer"`
	Analysis   Analysis            `json:"analysis"`
	JobLinks   []JobLink           `json:"job_links,omitempty"`
	JobTips    []string            `json:"job_tips,omitempty"`
	Videos     []VideoRec          `json:"videos,omitempty"`
	Questions  []PersonalizedQuestion `json:"questions,omitempty"`
	DemoMode   bool                `json:"demo_mode" example:"false"`
}

// CoverLetterRequest represents a cover letter generation request
// @Description Cover letter generation request
type CoverLetterRequest struct {
	CandidateName  string `json:"candidate_name" binding:"required" example:"Jane Doe"`
	CompanyName    string `json:"company_name" binding:"required" example:"Acme Corp"`
	Position       string `json:"position" binding:"required" example:"Backend Developer"`
	JobDescription string `json:"job_description,omitempty" example:"We are looking for a Go engineer..."`
}

// CoverLetterResponse represents a generated cover letter
// @Description Generated cover letter text
type CoverLetterResponse struct {
	CoverLetter CoverLetter `json:"cover_letter"`
}

// InterviewResponse represents interview preparation material for a role
// @Description Interview questions and preparation tips
type InterviewResponse struct {
	Role         string              `json:"role" example:"Data Scientist"`
	Questions    QuestionSet         `json:"questions"`
	Personalized []PersonalizedQuestion `json:"personalized,omitempty"` // Generated from the session's resume
	Tips         []string            `json:"tips,omitempty"`
}

// JobsResponse represents job search links and tips for a role
// @Description Job board links, search tips and alternative titles
type JobsResponse struct {
	Role              string    `json:"role" example:"DevOps Engineer"`
	Links             []JobLink `json:"links"`
	Tips              []string  `json:"tips,omitempty"`
	AlternativeTitles []string  `json:"alternative_titles,omitempty"`
}

// HistoryResponse lists a user's saved analyses, newest first
type HistoryResponse struct {
	Count    int         `json:"count"`
	Analyses []*Analysis `json:"analyses"`
}

// PoolStatsResponse represents API key pool status
// @Description Key pool availability counters
type PoolStatsResponse struct {
	TotalKeys     int `json:"total_keys" example:"3"`
	AvailableKeys int `json:"available_keys" example:"2"`
	RateLimited   int `json:"rate_limited" example:"1"`
	TotalCalls    int `json:"total_calls" example:"42"`
}
