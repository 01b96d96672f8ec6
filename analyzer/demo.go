package analyzer

import (
	"fmt"
	"strings"

	"github.com/careercopilot/backend/models"
)

// allSkills is the keyword vocabulary scanned for in demo mode.
var allSkills = []string{
	"python", "javascript", "react", "node.js", "sql", "html", "css",
	"java", "c++", "git", "docker", "aws", "azure", "machine learning",
	"data analysis", "excel", "tableau", "power bi", "pandas", "numpy",
	"tensorflow", "pytorch", "api", "rest", "mongodb", "postgresql",
	"agile", "scrum", "leadership", "communication", "problem solving",
}

type roleRequirement struct {
	Core       []string
	Supporting []string
}

var roleRequirements = map[string]roleRequirement{
	"Frontend Developer": {
		Core:       []string{"react", "javascript", "html", "css", "typescript", "vue.js"},
		Supporting: []string{"git", "testing", "responsive design", "api integration"},
	},
	"Data Analyst": {
		Core:       []string{"sql", "python", "excel", "data visualization", "statistics"},
		Supporting: []string{"tableau", "power bi", "pandas", "machine learning basics"},
	},
	"Backend Developer": {
		Core:       []string{"python", "java", "sql", "api", "database design"},
		Supporting: []string{"docker", "aws", "microservices", "security"},
	},
	"Full Stack Developer": {
		Core:       []string{"javascript", "react", "node.js", "sql", "api"},
		Supporting: []string{"docker", "git", "cloud services", "devops"},
	},
	"Machine Learning Engineer": {
		Core:       []string{"python", "machine learning", "tensorflow", "pandas"},
		Supporting: []string{"docker", "aws", "mlops", "statistics"},
	},
	"DevOps Engineer": {
		Core:       []string{"docker", "kubernetes", "aws", "ci/cd", "linux"},
		Supporting: []string{"python", "terraform", "monitoring", "security"},
	},
	"Product Manager": {
		Core:       []string{"product strategy", "user research", "roadmapping", "agile"},
		Supporting: []string{"sql", "analytics", "communication", "leadership"},
	},
	"UX Designer": {
		Core:       []string{"figma", "user research", "wireframing", "prototyping"},
		Supporting: []string{"html", "css", "usability testing", "design systems"},
	},
}

// DemoAnalysis builds a deterministic analysis from keyword matching. It is
// used when no API keys are configured or every LLM attempt failed; identical
// inputs always produce identical output.
func DemoAnalysis(resumeText, targetRole string) *models.Analysis {
	resumeLower := strings.ToLower(resumeText)

	var foundSkills []string
	for _, skill := range allSkills {
		if strings.Contains(resumeLower, skill) {
			foundSkills = append(foundSkills, skill)
		}
	}

	reqs, ok := roleRequirements[targetRole]
	if !ok {
		reqs = roleRequirements["Frontend Developer"]
	}

	var coreMatch, supportingMatch int
	var missingCore, missingSupporting []string
	for _, s := range reqs.Core {
		if strings.Contains(resumeLower, s) {
			coreMatch++
		} else {
			missingCore = append(missingCore, s)
		}
	}
	for _, s := range reqs.Supporting {
		if strings.Contains(resumeLower, s) {
			supportingMatch++
		} else {
			missingSupporting = append(missingSupporting, s)
		}
	}

	score := int(float64(coreMatch)/float64(len(reqs.Core))*70 +
		float64(supportingMatch)/float64(len(reqs.Supporting))*30)
	score = clamp(25, 95, score+20)

	strengths := demoStrengths(resumeLower, foundSkills)
	roadmap := demoRoadmap(missingCore, missingSupporting, foundSkills, targetRole)

	return &models.Analysis{
		RoleFitScore: score,
		Strengths:    capSlice(strengths, 4),
		SkillGaps: models.SkillGaps{
			Core:       capSlice(missingCore, 4),
			Supporting: capSlice(missingSupporting, 3),
		},
		Roadmap: roadmap,
		AnalysisNotes: fmt.Sprintf(
			"Based on resume analysis, you show %d%% alignment with the %s role. Focus on the identified skill gaps to improve your candidacy.",
			score, targetRole),
		Reflection: models.Reflection{
			Status: "sufficient",
			Reason: fmt.Sprintf("This roadmap addresses the key gaps for %s. Following it will significantly improve your role fit.", targetRole),
		},
		TargetRole: targetRole,
		DemoMode:   true,
	}
}

func demoStrengths(resumeLower string, foundSkills []string) []string {
	var strengths []string
	if len(foundSkills) > 0 {
		strengths = append(strengths, "Technical proficiency in "+strings.Join(capSlice(foundSkills, 3), ", "))
	}
	if strings.Contains(resumeLower, "leadership") || strings.Contains(resumeLower, "led") || strings.Contains(resumeLower, "managed") {
		strengths = append(strengths, "Leadership and team management experience")
	}
	if strings.Contains(resumeLower, "project") {
		strengths = append(strengths, "Project delivery experience")
	}
	if len(foundSkills) > 5 {
		strengths = append(strengths, "Diverse technical skill set")
	}
	if strings.Contains(resumeLower, "agile") || strings.Contains(resumeLower, "scrum") {
		strengths = append(strengths, "Agile methodology experience")
	}
	if len(strengths) == 0 {
		strengths = []string{"Foundational knowledge present", "Enthusiasm for learning"}
	}
	return strengths
}

func demoRoadmap(missingCore, missingSupporting, foundSkills []string, targetRole string) []models.RoadmapItem {
	var roadmap []models.RoadmapItem
	for i, skill := range capSlice(missingCore, 3) {
		roadmap = append(roadmap, models.RoadmapItem{
			Skill:           titleCase(skill),
			Priority:        "High",
			EstimatedTime:   fmt.Sprintf("%d weeks", (i+1)*2),
			ExpectedOutcome: fmt.Sprintf("Become proficient in %s for %s role", skill, targetRole),
		})
	}
	for i, skill := range capSlice(missingSupporting, 2) {
		roadmap = append(roadmap, models.RoadmapItem{
			Skill:           titleCase(skill),
			Priority:        "Medium",
			EstimatedTime:   fmt.Sprintf("%d week", i+1),
			ExpectedOutcome: fmt.Sprintf("Add %s as a supporting skill", skill),
		})
	}
	if len(roadmap) == 0 {
		base := "Programming"
		if len(foundSkills) > 0 {
			base = foundSkills[0]
		}
		roadmap = []models.RoadmapItem{{
			Skill:           "Advanced " + titleCase(base),
			Priority:        "Medium",
			EstimatedTime:   "3 weeks",
			ExpectedOutcome: "Deepen existing expertise",
		}}
	}
	return roadmap
}

func clamp(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
