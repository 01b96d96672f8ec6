package analyzer

import (
	"fmt"
	"strings"
)

// systemPrompt frames every LLM call in the analysis pipeline.
const systemPrompt = `You are an autonomous career analysis agent.
Analyze a resume against a target job role.
Identify strengths, skill gaps, and generate a realistic learning roadmap.
Do NOT rewrite the resume.
Do NOT invent experience.
Return clean JSON only.`

const promptResumeUnderstanding = `Analyze the following resume and extract key information.

RESUME:
%s

Return a JSON object with the following structure (no markdown, just raw JSON):
{
  "skills": ["list of technical and soft skills found"],
  "education_level": "highest education level (e.g., Bachelor's, Master's, PhD, High School)",
  "experience_level": "entry/junior/mid/senior based on years and roles",
  "strengths": ["key strengths identified from the resume"]
}`

const promptRoleFit = `Based on the resume summary and target job role, analyze the candidate's fit.

RESUME SUMMARY:
Skills: %s
Education: %s
Experience Level: %s
Strengths: %s

TARGET ROLE: %s

Return a JSON object with the following structure (no markdown, just raw JSON):
{
  "role_fit_score": <number from 0-100>,
  "missing_core_skills": ["essential skills for this role that are missing"],
  "missing_supporting_skills": ["nice-to-have skills that are missing"],
  "analysis_notes": "brief explanation of the score and fit assessment"
}`

const promptRoadmap = `Create a personalized learning roadmap based on the missing skills.

MISSING CORE SKILLS: %s
MISSING SUPPORTING SKILLS: %s
TARGET ROLE: %s

Return a JSON object with the following structure (no markdown, just raw JSON):
{
  "roadmap": [
    {
      "skill": "skill name",
      "priority": "High | Medium | Low",
      "estimated_time": "e.g., 2 weeks, 1 month",
      "expected_outcome": "what the candidate will be able to do after learning this"
    }
  ]
}

Order the roadmap by priority (High first, then Medium, then Low).
Include 3-6 items maximum.`

const promptReflection = `Review the analysis and roadmap to determine if the guidance is sufficient.

ROLE FIT SCORE: %d
LEARNING ROADMAP ITEMS: %d
TARGET ROLE: %s

Return a JSON object with the following structure (no markdown, just raw JSON):
{
  "status": "sufficient",
  "reason": "brief explanation of why this guidance is enough for the candidate"
}`

func resumeUnderstandingPrompt(resumeText string) string {
	return fmt.Sprintf(promptResumeUnderstanding, resumeText)
}

func roleFitPrompt(u resumeUnderstanding, targetRole string) string {
	return fmt.Sprintf(promptRoleFit,
		strings.Join(u.Skills, ", "),
		orUnknown(u.EducationLevel),
		orUnknown(u.ExperienceLevel),
		strings.Join(u.Strengths, ", "),
		targetRole,
	)
}

func roadmapPrompt(fit roleFitAnalysis, targetRole string) string {
	return fmt.Sprintf(promptRoadmap,
		strings.Join(fit.MissingCoreSkills, ", "),
		strings.Join(fit.MissingSupportingSkills, ", "),
		targetRole,
	)
}

func reflectionPrompt(score, roadmapCount int, targetRole string) string {
	return fmt.Sprintf(promptReflection, score, roadmapCount, targetRole)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
