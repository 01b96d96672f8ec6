package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/models"
)

func TestPersonalizedQuestionsFromLLM(t *testing.T) {
	exec := &fakeExecutor{responses: []string{
		`{"questions": [
			{"question": "Walk me through your largest Go service.", "category": "Resume", "source": "Go", "tip": "Lead with scale numbers."},
			{"question": "How would you close your Kubernetes gap?", "category": "Skill Gap", "source": "Kubernetes", "tip": "Mention a concrete plan."}
		]}`,
	}}
	a := NewAnalyzer(exec)

	qs := a.PersonalizedQuestions(context.Background(), "Go developer resume", "Backend Developer",
		[]string{"API design"}, models.SkillGaps{Core: []string{"Kubernetes"}})

	require.Len(t, qs, 2)
	assert.Equal(t, "Resume", qs[0].Category)
	assert.Equal(t, "Skill Gap", qs[1].Category)

	require.Len(t, exec.prompts, 1)
	assert.Contains(t, exec.prompts[0], "Backend Developer")
	assert.Contains(t, exec.prompts[0], "API design")
	assert.Contains(t, exec.prompts[0], "Kubernetes")
}

func TestPersonalizedQuestionsCapped(t *testing.T) {
	resp := `{"questions": [`
	for i := 0; i < 10; i++ {
		if i > 0 {
			resp += ","
		}
		resp += `{"question": "q", "category": "Resume"}`
	}
	resp += `]}`

	a := NewAnalyzer(&fakeExecutor{responses: []string{resp}})
	qs := a.PersonalizedQuestions(context.Background(), "resume", "Backend Developer", nil, models.SkillGaps{})
	assert.Len(t, qs, 8)
}

func TestPersonalizedQuestionsFallsBackOnError(t *testing.T) {
	a := NewAnalyzer(&fakeExecutor{errs: []error{errors.New("upstream down")}})

	qs := a.PersonalizedQuestions(context.Background(), "I used Python and Docker daily.", "Backend Developer",
		nil, models.SkillGaps{})

	require.NotEmpty(t, qs)
	for _, q := range qs {
		assert.NotEmpty(t, q.Question)
	}
}

func TestPersonalizedQuestionsFallsBackOnBadJSON(t *testing.T) {
	a := NewAnalyzer(&fakeExecutor{responses: []string{"not json at all"}})

	qs := a.PersonalizedQuestions(context.Background(), "React and AWS experience.", "Frontend Developer",
		nil, models.SkillGaps{})
	require.NotEmpty(t, qs)
}

func TestPersonalizedQuestionsNilExecutor(t *testing.T) {
	a := NewAnalyzer(nil)

	qs := a.PersonalizedQuestions(context.Background(), "", "Backend Developer",
		[]string{"Leadership"}, models.SkillGaps{})
	require.NotEmpty(t, qs)
}
