package jobsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinksEncodeRole(t *testing.T) {
	links := Links("DevOps Engineer")
	require.Len(t, links, 5)

	byName := map[string]string{}
	for _, l := range links {
		byName[l.Name] = l.URL
	}
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=DevOps+Engineer", byName["LinkedIn Jobs"])
	assert.Equal(t, "https://www.indeed.com/jobs?q=DevOps+Engineer", byName["Indeed"])
	assert.Equal(t, "https://www.naukri.com/devops-engineer-jobs", byName["Naukri"])
}

func TestTipsKnownAndUnknownRole(t *testing.T) {
	known := Tips("Backend Developer")
	assert.Contains(t, known[0], "API design")

	unknown := Tips("Circus Performer")
	assert.Contains(t, unknown[0], "Tailor your resume")
}

func TestAlternativeTitles(t *testing.T) {
	assert.Contains(t, AlternativeTitles("Frontend Developer"), "React Developer")

	generic := AlternativeTitles("Chief Vibes Officer")
	assert.Equal(t, []string{"Junior Chief Vibes Officer", "Associate Chief Vibes Officer"}, generic)
}

func TestVideoRecommendationsCurated(t *testing.T) {
	recs := VideoRecommendations([]string{"Docker"})
	require.Len(t, recs, 2)
	assert.Equal(t, "Docker", recs[0].Skill)
	assert.Equal(t, "https://www.youtube.com/watch?v=pTFZFxd4hOI", recs[0].URL)
	assert.Equal(t, "Programming with Mosh", recs[0].Channel)
}

func TestVideoRecommendationsPartialMatch(t *testing.T) {
	recs := VideoRecommendations([]string{"Advanced Kubernetes with Docker"})
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0].Title, "Docker")
}

func TestVideoRecommendationsSearchFallback(t *testing.T) {
	recs := VideoRecommendations([]string{"Underwater Basket Weaving"})
	require.Len(t, recs, 1)
	assert.Equal(t, "YouTube Search", recs[0].Channel)
	assert.Contains(t, recs[0].URL, "search_query=Underwater+Basket+Weaving+tutorial")
}

func TestVideoRecommendationsSkipsEmptySkills(t *testing.T) {
	recs := VideoRecommendations([]string{"", "git"})
	require.Len(t, recs, 2)
	assert.Equal(t, "git", recs[0].Skill)
}
