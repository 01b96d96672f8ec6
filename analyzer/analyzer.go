// Package analyzer runs the multi-step resume analysis pipeline against the
// LLM and falls back to a deterministic offline analysis when the API is
// unavailable.
package analyzer

import (
	"context"
	"log"

	"github.com/careercopilot/backend/groq"
	"github.com/careercopilot/backend/models"
)

// Executor abstracts the rate-limit-aware LLM call loop so tests can
// script responses.
type Executor interface {
	Execute(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Analyzer orchestrates the four analysis steps: resume understanding,
// role fit, learning roadmap and reflection.
type Analyzer struct {
	executor Executor
}

// NewAnalyzer creates an analyzer backed by the given executor. A nil
// executor means no API keys are configured; every analysis then runs in
// demo mode.
func NewAnalyzer(executor Executor) *Analyzer {
	return &Analyzer{executor: executor}
}

// Intermediate shapes returned by the individual LLM steps.
type resumeUnderstanding struct {
	Skills          []string `json:"skills"`
	EducationLevel  string   `json:"education_level"`
	ExperienceLevel string   `json:"experience_level"`
	Strengths       []string `json:"strengths"`
}

type roleFitAnalysis struct {
	RoleFitScore            int      `json:"role_fit_score"`
	MissingCoreSkills       []string `json:"missing_core_skills"`
	MissingSupportingSkills []string `json:"missing_supporting_skills"`
	AnalysisNotes           string   `json:"analysis_notes"`
}

type learningRoadmap struct {
	Roadmap []models.RoadmapItem `json:"roadmap"`
}

// Analyze runs the full pipeline for a resume and target role. It never
// returns an error: any LLM or decoding failure degrades to the
// deterministic demo analysis so the caller always gets a usable result.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, targetRole string) *models.Analysis {
	if a.executor == nil {
		log.Printf("[Analyzer] No LLM executor configured, using demo analysis")
		return DemoAnalysis(resumeText, targetRole)
	}

	result, err := a.runPipeline(ctx, resumeText, targetRole)
	if err != nil {
		log.Printf("[Analyzer] LLM pipeline failed (%v), using demo analysis", err)
		return DemoAnalysis(resumeText, targetRole)
	}
	return result
}

func (a *Analyzer) runPipeline(ctx context.Context, resumeText, targetRole string) (*models.Analysis, error) {
	// Step 1: understand the resume.
	log.Printf("[Analyzer] Step 1: resume understanding")
	text, err := a.executor.Execute(ctx, systemPrompt, resumeUnderstandingPrompt(resumeText))
	if err != nil {
		return nil, err
	}
	var understanding resumeUnderstanding
	if err := groq.DecodeInto(text, &understanding); err != nil {
		return nil, err
	}

	// Step 2: role fit against the target role.
	log.Printf("[Analyzer] Step 2: role fit analysis")
	text, err = a.executor.Execute(ctx, systemPrompt, roleFitPrompt(understanding, targetRole))
	if err != nil {
		return nil, err
	}
	var fit roleFitAnalysis
	if err := groq.DecodeInto(text, &fit); err != nil {
		return nil, err
	}

	// Step 3: learning roadmap for the missing skills.
	log.Printf("[Analyzer] Step 3: learning roadmap")
	text, err = a.executor.Execute(ctx, systemPrompt, roadmapPrompt(fit, targetRole))
	if err != nil {
		return nil, err
	}
	var roadmap learningRoadmap
	if err := groq.DecodeInto(text, &roadmap); err != nil {
		return nil, err
	}

	// Step 4: reflection over the combined result.
	log.Printf("[Analyzer] Step 4: reflection")
	text, err = a.executor.Execute(ctx, systemPrompt, reflectionPrompt(fit.RoleFitScore, len(roadmap.Roadmap), targetRole))
	if err != nil {
		return nil, err
	}
	var reflection models.Reflection
	if err := groq.DecodeInto(text, &reflection); err != nil {
		return nil, err
	}

	log.Printf("[Analyzer] Analysis complete for role %q (score %d)", targetRole, fit.RoleFitScore)

	return &models.Analysis{
		RoleFitScore: fit.RoleFitScore,
		Strengths:    understanding.Strengths,
		SkillGaps: models.SkillGaps{
			Core:       fit.MissingCoreSkills,
			Supporting: fit.MissingSupportingSkills,
		},
		Roadmap:       roadmap.Roadmap,
		AnalysisNotes: fit.AnalysisNotes,
		Reflection:    reflection,
		TargetRole:    targetRole,
	}, nil
}
