package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/models"
)

func sampleAnalysis() *models.Analysis {
	return &models.Analysis{
		RoleFitScore: 68,
		Strengths:    []string{"API design", "SQL"},
		SkillGaps: models.SkillGaps{
			Core:       []string{"kubernetes"},
			Supporting: []string{"terraform"},
		},
		Roadmap: []models.RoadmapItem{
			{Skill: "Kubernetes", Priority: "High", EstimatedTime: "4 weeks", ExpectedOutcome: "Deploy and operate services"},
		},
		AnalysisNotes: "Solid backend foundation.",
		TargetRole:    "Backend Developer",
	}
}

func TestAnalysisPDF(t *testing.T) {
	data, err := AnalysisPDF(sampleAnalysis())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestAnalysisPDFDemoMode(t *testing.T) {
	a := sampleAnalysis()
	a.DemoMode = true
	data, err := AnalysisPDF(a)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCoverLetterPDF(t *testing.T) {
	letter := &models.CoverLetter{
		Text:          "Dear Hiring Manager,\n\nI am excited to apply.\n\nSincerely,\nJane",
		Company:       "Acme Corp",
		Position:      "Backend Developer",
		CandidateName: "Jane",
	}
	data, err := CoverLetterPDF(letter)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
