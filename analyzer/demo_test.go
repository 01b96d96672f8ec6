package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoAnalysisDeterministic(t *testing.T) {
	resume := "Experienced engineer with Python, React, SQL and Docker. Led agile projects."

	first := DemoAnalysis(resume, "Full Stack Developer")
	second := DemoAnalysis(resume, "Full Stack Developer")

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestDemoAnalysisKeywordMatchingRaisesScore(t *testing.T) {
	matching := DemoAnalysis("Skills: Python, React, SQL, JavaScript, Node.js", "Full Stack Developer")
	empty := DemoAnalysis("", "Full Stack Developer")

	assert.Greater(t, matching.RoleFitScore, empty.RoleFitScore)
	assert.True(t, matching.DemoMode)
}

func TestDemoAnalysisScoreBounds(t *testing.T) {
	// An empty resume still scores at least 25.
	low := DemoAnalysis("", "Backend Developer")
	assert.GreaterOrEqual(t, low.RoleFitScore, 25)
	assert.LessOrEqual(t, low.RoleFitScore, 95)

	// A resume covering every requirement caps at 95.
	full := DemoAnalysis("docker kubernetes aws ci/cd linux python terraform monitoring security", "DevOps Engineer")
	assert.Equal(t, 95, full.RoleFitScore)
}

func TestDemoAnalysisUnknownRoleFallsBack(t *testing.T) {
	got := DemoAnalysis("react javascript html css", "Quantum Astronaut")

	// Unknown roles are scored against the Frontend Developer requirements.
	frontend := DemoAnalysis("react javascript html css", "Frontend Developer")
	assert.Equal(t, frontend.RoleFitScore, got.RoleFitScore)
	assert.Equal(t, "Quantum Astronaut", got.TargetRole)
}

func TestDemoAnalysisGapsAndRoadmap(t *testing.T) {
	got := DemoAnalysis("python java sql", "Backend Developer")

	assert.NotContains(t, got.SkillGaps.Core, "python")
	assert.Contains(t, got.SkillGaps.Core, "database design")
	require.NotEmpty(t, got.Roadmap)
	assert.Equal(t, "High", got.Roadmap[0].Priority)
	assert.LessOrEqual(t, len(got.SkillGaps.Core), 4)
	assert.LessOrEqual(t, len(got.SkillGaps.Supporting), 3)
}

func TestDemoAnalysisEmptyResumeStrengths(t *testing.T) {
	got := DemoAnalysis("", "Data Analyst")
	assert.Equal(t, []string{"Foundational knowledge present", "Enthusiasm for learning"}, got.Strengths)
}

func TestDemoAnalysisRoadmapNeverEmpty(t *testing.T) {
	// Covering every requirement leaves no gaps, so the roadmap falls back
	// to deepening an existing skill.
	got := DemoAnalysis("figma user research wireframing prototyping html css usability testing design systems", "UX Designer")
	require.Len(t, got.Roadmap, 1)
	assert.Contains(t, got.Roadmap[0].Skill, "Advanced")
}
