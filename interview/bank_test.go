package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/models"
)

func TestQuestionsKnownRole(t *testing.T) {
	qs := Questions("Backend Developer")
	require.Len(t, qs.Technical, 5)
	require.Len(t, qs.Behavioral, 2)
	assert.Contains(t, qs.Technical[0].Question, "RESTful")
}

func TestQuestionsUnknownRoleGetsDefaults(t *testing.T) {
	qs := Questions("Space Pirate")
	require.Len(t, qs.Technical, 3)
	assert.Contains(t, qs.Technical[0].Question, "technical background")
}

func TestTips(t *testing.T) {
	tips := Tips()
	require.Len(t, tips, 5)
	assert.Contains(t, tips[2], "STAR method")
}

func TestResumeQuestionsMatchesTech(t *testing.T) {
	resume := "Built React dashboards, Python ETL pipelines, deployed on AWS with Docker."
	qs := ResumeQuestions(resume, nil, models.SkillGaps{})

	require.NotEmpty(t, qs)
	assert.Equal(t, "react", qs[0].Source)
	assert.Contains(t, qs[0].Question, "React")
	assert.LessOrEqual(t, len(qs), 6)
}

func TestResumeQuestionsDeterministic(t *testing.T) {
	resume := "Python and Docker projects with Git."
	first := ResumeQuestions(resume, []string{"API design"}, models.SkillGaps{Core: []string{"Kubernetes"}})
	second := ResumeQuestions(resume, []string{"API design"}, models.SkillGaps{Core: []string{"Kubernetes"}})
	assert.Equal(t, first, second)
}

func TestResumeQuestionsUsesStrengthsAndGaps(t *testing.T) {
	qs := ResumeQuestions("", []string{"Leadership", "Communication"}, models.SkillGaps{Core: []string{"Terraform"}})

	var categories []string
	for _, q := range qs {
		categories = append(categories, q.Category)
	}
	assert.Contains(t, categories, "Strength")
	assert.Contains(t, categories, "Skill Gap")
}

func TestResumeQuestionsGenericFallback(t *testing.T) {
	qs := ResumeQuestions("", nil, models.SkillGaps{})
	require.Len(t, qs, 3)
	assert.Contains(t, qs[0].Question, "career story")
}
