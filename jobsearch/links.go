// Package jobsearch builds job board search links, role-specific search tips
// and curated learning video recommendations.
package jobsearch

import (
	"net/url"
	"strings"

	"github.com/careercopilot/backend/models"
)

// Links generates prebuilt search URLs on the major job boards for a role.
func Links(targetRole string) []models.JobLink {
	roleEncoded := url.QueryEscape(targetRole)
	naukriSlug := strings.ReplaceAll(strings.ToLower(targetRole), " ", "-")

	return []models.JobLink{
		{Name: "LinkedIn Jobs", URL: "https://www.linkedin.com/jobs/search/?keywords=" + roleEncoded, Icon: "linkedin", Color: "blue"},
		{Name: "Indeed", URL: "https://www.indeed.com/jobs?q=" + roleEncoded, Icon: "briefcase", Color: "indigo"},
		{Name: "Google Jobs", URL: "https://www.google.com/search?q=" + roleEncoded + "+jobs&ibp=htl;jobs", Icon: "search", Color: "red"},
		{Name: "Glassdoor", URL: "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=" + roleEncoded, Icon: "door", Color: "green"},
		{Name: "Naukri", URL: "https://www.naukri.com/" + naukriSlug + "-jobs", Icon: "briefcase", Color: "blue"},
	}
}

var roleTips = map[string][]string{
	"Frontend Developer": {
		"Highlight React/Vue/Angular projects in your portfolio",
		"Include GitHub profile with active contributions",
		"Mention responsive design and accessibility experience",
	},
	"Backend Developer": {
		"Showcase API design and database experience",
		"Mention scalability and performance optimizations",
		"Include cloud platform experience (AWS/GCP/Azure)",
	},
	"Data Analyst": {
		"Highlight SQL and visualization tool proficiency",
		"Include data storytelling examples",
		"Mention business impact of your analyses",
	},
	"Full Stack Developer": {
		"Show end-to-end project experience",
		"Highlight both frontend and backend technologies",
		"Include deployment and DevOps experience",
	},
	"Machine Learning Engineer": {
		"Showcase ML projects with measurable results",
		"Mention production ML system experience",
		"Include research papers or Kaggle rankings",
	},
	"DevOps Engineer": {
		"Highlight CI/CD pipeline experience",
		"Mention infrastructure-as-code tools",
		"Include monitoring and incident response experience",
	},
	"Product Manager": {
		"Showcase product launches and metrics",
		"Highlight cross-functional collaboration",
		"Include user research experience",
	},
	"UX Designer": {
		"Include portfolio with case studies",
		"Show user research methodology",
		"Mention design system experience",
	},
}

// Tips returns search advice for the role, with generic advice for roles
// outside the curated set.
func Tips(targetRole string) []string {
	if tips, ok := roleTips[targetRole]; ok {
		return tips
	}
	return []string{
		"Tailor your resume for each application",
		"Research the company before applying",
		"Follow up after submitting your application",
	}
}

var roleTitles = map[string][]string{
	"Frontend Developer":        {"UI Developer", "React Developer", "Web Developer", "JavaScript Developer", "UI Engineer"},
	"Backend Developer":         {"Server-Side Developer", "API Developer", "Python Developer", "Java Developer", "Software Engineer"},
	"Full Stack Developer":      {"Web Developer", "Software Engineer", "MERN Stack Developer", "Full Stack Engineer", "Application Developer"},
	"Data Analyst":              {"Business Analyst", "Data Scientist (Junior)", "Analytics Engineer", "BI Analyst", "Reporting Analyst"},
	"Machine Learning Engineer": {"AI Engineer", "Data Scientist", "Deep Learning Engineer", "NLP Engineer", "ML Ops Engineer"},
	"DevOps Engineer":           {"Site Reliability Engineer", "Cloud Engineer", "Platform Engineer", "Infrastructure Engineer", "Build Engineer"},
	"Product Manager":           {"Associate PM", "Technical PM", "Product Owner", "Growth PM", "Digital Product Manager"},
	"UX Designer":               {"UI/UX Designer", "Product Designer", "Interaction Designer", "Visual Designer", "Design Researcher"},
}

// AlternativeTitles lists related job titles worth searching alongside the
// target role.
func AlternativeTitles(targetRole string) []string {
	if titles, ok := roleTitles[targetRole]; ok {
		return titles
	}
	return []string{"Junior " + targetRole, "Associate " + targetRole}
}
