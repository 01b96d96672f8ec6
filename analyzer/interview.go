package analyzer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/careercopilot/backend/groq"
	"github.com/careercopilot/backend/interview"
	"github.com/careercopilot/backend/models"
)

const interviewSystemPrompt = `You are an experienced technical interviewer.
You generate interview questions tailored to a specific candidate's resume.
You respond ONLY with valid JSON, no markdown, no explanation.`

const interviewPromptTemplate = `Based on this candidate's resume, generate personalized interview questions for the role of %s.

RESUME:
%s

KNOWN STRENGTHS: %s
SKILL GAPS: %s

Generate 5 to 8 questions an interviewer would actually ask this candidate:
questions probing claimed experience, questions letting them show their strengths,
and one or two about how they would handle their skill gaps.

Respond with JSON in exactly this format:
{
  "questions": [
    {
      "question": "the question text",
      "category": "Resume" or "Strength" or "Skill Gap",
      "source": "the resume item, strength or gap that prompted it",
      "tip": "one sentence of advice for answering"
    }
  ]
}`

type personalizedQuestions struct {
	Questions []models.PersonalizedQuestion `json:"questions"`
}

// PersonalizedQuestions generates interview questions tailored to the
// candidate's resume. It asks the LLM first and falls back to the
// deterministic resume-keyword questions when no executor is available or the
// call fails.
func (a *Analyzer) PersonalizedQuestions(ctx context.Context, resumeText, targetRole string, strengths []string, gaps models.SkillGaps) []models.PersonalizedQuestion {
	if a.executor == nil {
		return interview.ResumeQuestions(resumeText, strengths, gaps)
	}

	prompt := fmt.Sprintf(interviewPromptTemplate,
		targetRole,
		truncate(resumeText, 4000),
		orNone(strengths),
		orNone(append(append([]string{}, gaps.Core...), gaps.Supporting...)),
	)

	text, err := a.executor.Execute(ctx, interviewSystemPrompt, prompt)
	if err != nil {
		log.Printf("[Analyzer] Personalized questions failed (%v), using resume-based questions", err)
		return interview.ResumeQuestions(resumeText, strengths, gaps)
	}

	var parsed personalizedQuestions
	if err := groq.DecodeInto(text, &parsed); err != nil || len(parsed.Questions) == 0 {
		log.Printf("[Analyzer] Personalized questions response invalid, using resume-based questions")
		return interview.ResumeQuestions(resumeText, strengths, gaps)
	}

	if len(parsed.Questions) > 8 {
		parsed.Questions = parsed.Questions[:8]
	}
	return parsed.Questions
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "None listed"
	}
	return strings.Join(items, ", ")
}
