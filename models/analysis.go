package models

import (
	"fmt"
	"strings"
)

// Analysis is the combined result of the four-step resume analysis chain.
// @Description Resume analysis result for a target role
type Analysis struct {
	RoleFitScore  int           `json:"role_fit_score" firestore:"roleFitScore" example:"72"`
	Strengths     []string      `json:"strengths" firestore:"strengths"`
	SkillGaps     SkillGaps     `json:"skill_gaps" firestore:"skillGaps"`
	Roadmap       []RoadmapItem `json:"roadmap" firestore:"roadmap"`
	AnalysisNotes string        `json:"analysis_notes" firestore:"analysisNotes"`
	Reflection    Reflection    `json:"reflection" firestore:"reflection"`
	TargetRole    string        `json:"target_role" firestore:"targetRole" example:"Backend Developer"`

	// DemoMode marks a degraded-fidelity result produced offline when the
	// upstream LLM was unavailable.
	DemoMode bool `json:"demo_mode,omitempty" firestore:"demoMode"`
}

// SkillGaps separates missing skills by how essential they are for the role
type SkillGaps struct {
	Core       []string `json:"core" firestore:"core"`
	Supporting []string `json:"supporting" firestore:"supporting"`
}

// RoadmapItem is one step of the learning roadmap
type RoadmapItem struct {
	Skill           string `json:"skill" firestore:"skill" example:"Docker"`
	Priority        string `json:"priority" firestore:"priority" example:"High"`
	EstimatedTime   string `json:"estimated_time" firestore:"estimatedTime" example:"2 weeks"`
	ExpectedOutcome string `json:"expected_outcome" firestore:"expectedOutcome"`
}

// Reflection is the agent's self-check on whether the guidance is sufficient
type Reflection struct {
	Status string `json:"status" firestore:"status" example:"sufficient"`
	Reason string `json:"reason" firestore:"reason"`
}

// TSV renders the analysis as tab-separated rows for clipboard export into a
// spreadsheet.
func (a *Analysis) TSV() string {
	var b strings.Builder

	b.WriteString("Section\tDetail\n")
	fmt.Fprintf(&b, "Target Role\t%s\n", a.TargetRole)
	fmt.Fprintf(&b, "Role Fit Score\t%d\n", a.RoleFitScore)

	for _, s := range a.Strengths {
		fmt.Fprintf(&b, "Strength\t%s\n", sanitizeTSV(s))
	}
	for _, s := range a.SkillGaps.Core {
		fmt.Fprintf(&b, "Missing Core Skill\t%s\n", sanitizeTSV(s))
	}
	for _, s := range a.SkillGaps.Supporting {
		fmt.Fprintf(&b, "Missing Supporting Skill\t%s\n", sanitizeTSV(s))
	}

	b.WriteString("\nSkill\tPriority\tEstimated Time\tExpected Outcome\n")
	for _, item := range a.Roadmap {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n",
			sanitizeTSV(item.Skill), sanitizeTSV(item.Priority),
			sanitizeTSV(item.EstimatedTime), sanitizeTSV(item.ExpectedOutcome))
	}

	if a.AnalysisNotes != "" {
		fmt.Fprintf(&b, "\nNotes\t%s\n", sanitizeTSV(a.AnalysisNotes))
	}

	return b.String()
}

func sanitizeTSV(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// CoverLetter is a generated cover letter with its request context
// @Description Generated cover letter
type CoverLetter struct {
	Text          string `json:"cover_letter"`
	Company       string `json:"company" example:"Acme Corp"`
	Position      string `json:"position" example:"Backend Developer"`
	CandidateName string `json:"candidate_name" example:"John Doe"`
	Model         string `json:"llm_model,omitempty" example:"llama-3.3-70b-versatile"`
	DemoMode      bool   `json:"demo_mode,omitempty"`
}

// PersonalizedQuestion is an interview question generated from the resume
type PersonalizedQuestion struct {
	Question string `json:"question"`
	Category string `json:"category" example:"Project Experience"`
	Source   string `json:"source,omitempty"`
	Tip      string `json:"tip,omitempty"`
}
