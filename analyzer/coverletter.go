package analyzer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/careercopilot/backend/models"
)

const coverLetterSystemPrompt = `You are an expert cover letter writer. Write compelling, personalized cover letters
that highlight specific projects, skills, and achievements from the candidate's resume.
Be professional but engaging. Always reference specific details from the resume.`

const coverLetterPromptTemplate = `Write a detailed cover letter for %s applying to %s for the %s role.

RESUME:
%s

JOB DESCRIPTION:
%s

Write a 4-5 paragraph cover letter that:
1. Opens with enthusiasm for the %s role at %s
2. Highlights 2-3 SPECIFIC projects by name with technologies used
3. Mentions relevant technical skills and experience
4. References any notable achievements
5. Closes with a call to action

IMPORTANT:
- Use ONLY information from the resume above
- Mention specific project names
- Include specific technologies
- Do NOT use placeholder text

Write the cover letter now:`

// coverLetterSkills is the small vocabulary used by the offline fallback.
var coverLetterSkills = []string{"python", "java", "javascript", "react", "machine learning", "sql", "aws"}

// GenerateCoverLetter produces a cover letter for the candidate. LLM output
// is preferred; any failure falls back to a deterministic template.
func (a *Analyzer) GenerateCoverLetter(ctx context.Context, resumeText string, req models.CoverLetterRequest) *models.CoverLetter {
	name := req.CandidateName
	if name == "" {
		name = "Candidate"
	}

	if a.executor != nil {
		prompt := fmt.Sprintf(coverLetterPromptTemplate,
			name, req.CompanyName, req.Position,
			truncate(resumeText, 5000),
			truncate(req.JobDescription, 2500),
			req.Position, req.CompanyName,
		)
		text, err := a.executor.Execute(ctx, coverLetterSystemPrompt, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return &models.CoverLetter{
				Text:          strings.TrimSpace(text),
				Company:       req.CompanyName,
				Position:      req.Position,
				CandidateName: name,
				Model:         "llama-3.3-70b-versatile",
			}
		}
		log.Printf("[Analyzer] Cover letter generation failed (%v), using demo template", err)
	}

	return demoCoverLetter(resumeText, req.CompanyName, req.Position, name)
}

func demoCoverLetter(resumeText, companyName, position, candidateName string) *models.CoverLetter {
	resumeLower := strings.ToLower(resumeText)

	var skills []string
	for _, skill := range coverLetterSkills {
		if strings.Contains(resumeLower, skill) {
			skills = append(skills, titleCase(skill))
		}
	}
	skillsText := "relevant technical skills"
	if len(skills) > 0 {
		skillsText = strings.Join(capSlice(skills, 4), ", ")
	}

	text := fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %[1]s position at %[2]s. With my background in %[3]s, I am excited about the opportunity to contribute to your team.

Throughout my career, I have developed expertise in areas that align closely with this role's requirements. My project experience has equipped me with the skills necessary to make an immediate impact, and I am eager to bring my knowledge to %[2]s.

I am particularly drawn to this opportunity because it allows me to leverage my technical abilities while continuing to grow professionally. I am confident that my combination of skills and enthusiasm makes me a strong candidate for this position.

I would welcome the opportunity to discuss how my experience can contribute to %[2]s's success. Thank you for considering my application.

Sincerely,
%[4]s`, position, companyName, skillsText, candidateName)

	return &models.CoverLetter{
		Text:          text,
		Company:       companyName,
		Position:      position,
		CandidateName: candidateName,
		DemoMode:      true,
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
