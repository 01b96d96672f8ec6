// Package interview serves curated interview questions and preparation tips
// per target role, plus questions generated from the resume itself.
package interview

import (
	"fmt"
	"strings"

	"github.com/careercopilot/backend/models"
)

var questionBank = map[string]models.QuestionSet{
	"Frontend Developer": {
		Technical: []models.InterviewQuestion{
			{Question: "Explain the difference between var, let, and const in JavaScript.", Tip: "Focus on scope (function vs block), hoisting, and reassignment rules.", Difficulty: "Easy"},
			{Question: "What is the Virtual DOM and how does React use it?", Tip: "Explain the diffing algorithm and why it improves performance.", Difficulty: "Medium"},
			{Question: "How would you optimize a slow-loading web page?", Tip: "Mention lazy loading, code splitting, image optimization, caching, and CDNs.", Difficulty: "Medium"},
			{Question: "Explain CSS Flexbox vs Grid. When would you use each?", Tip: "Flexbox for 1D layouts, Grid for 2D. Give specific use cases.", Difficulty: "Easy"},
			{Question: "What are React Hooks? Explain useState and useEffect.", Tip: "Describe how they replace class lifecycle methods with examples.", Difficulty: "Medium"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Tell me about a challenging UI bug you fixed.", Tip: "Use STAR method: Situation, Task, Action, Result.", Difficulty: "Medium"},
			{Question: "How do you stay updated with frontend technologies?", Tip: "Mention blogs, conferences, side projects, Twitter/X follows.", Difficulty: "Easy"},
		},
	},
	"Backend Developer": {
		Technical: []models.InterviewQuestion{
			{Question: "Explain RESTful API design principles.", Tip: "Cover HTTP methods, status codes, statelessness, and resource naming.", Difficulty: "Medium"},
			{Question: "How do you handle database optimization?", Tip: "Discuss indexing, query optimization, caching, and denormalization.", Difficulty: "Medium"},
			{Question: "What is the difference between SQL and NoSQL databases?", Tip: "Compare structure, scalability, ACID vs BASE, and use cases.", Difficulty: "Easy"},
			{Question: "Explain microservices architecture vs monolithic.", Tip: "Discuss pros/cons, when to use each, and communication patterns.", Difficulty: "Hard"},
			{Question: "How would you design a rate limiter?", Tip: "Mention token bucket, sliding window, and distributed considerations.", Difficulty: "Hard"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Describe a time you improved system performance.", Tip: "Quantify the improvement with metrics (e.g., 50% faster).", Difficulty: "Medium"},
			{Question: "How do you handle production incidents?", Tip: "Discuss monitoring, alerting, debugging, and post-mortems.", Difficulty: "Medium"},
		},
	},
	"Data Analyst": {
		Technical: []models.InterviewQuestion{
			{Question: "Write a SQL query to find the second highest salary.", Tip: "Use subquery, LIMIT OFFSET, or window functions (DENSE_RANK).", Difficulty: "Medium"},
			{Question: "How do you handle missing data in a dataset?", Tip: "Discuss deletion, imputation, and when to use each approach.", Difficulty: "Medium"},
			{Question: "Explain the difference between correlation and causation.", Tip: "Use a real-world example like ice cream sales and drowning.", Difficulty: "Easy"},
			{Question: "What metrics would you track for an e-commerce website?", Tip: "Mention conversion rate, AOV, cart abandonment, and customer lifetime value.", Difficulty: "Medium"},
			{Question: "How do you present data findings to non-technical stakeholders?", Tip: "Focus on storytelling, visualizations, and actionable insights.", Difficulty: "Easy"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Tell me about an analysis that drove a business decision.", Tip: "Quantify the business impact (revenue, cost savings, efficiency).", Difficulty: "Medium"},
			{Question: "How do you prioritize multiple data requests?", Tip: "Discuss stakeholder alignment, impact assessment, and deadlines.", Difficulty: "Easy"},
		},
	},
	"Full Stack Developer": {
		Technical: []models.InterviewQuestion{
			{Question: "Design the architecture for a social media app.", Tip: "Cover frontend, backend, database, caching, and CDN layers.", Difficulty: "Hard"},
			{Question: "How do you ensure security in a web application?", Tip: "Mention HTTPS, input validation, CSRF, XSS, and authentication.", Difficulty: "Medium"},
			{Question: "Explain the request-response cycle in a web app.", Tip: "Walk through DNS, server, routing, controller, view, and response.", Difficulty: "Medium"},
			{Question: "What is the difference between authentication and authorization?", Tip: "Auth = who you are, Authz = what you can do. Give JWT/OAuth examples.", Difficulty: "Easy"},
			{Question: "How would you implement real-time features?", Tip: "Discuss WebSockets, Server-Sent Events, and polling trade-offs.", Difficulty: "Medium"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Describe a project where you worked on both frontend and backend.", Tip: "Highlight your ability to understand the full system.", Difficulty: "Easy"},
			{Question: "How do you decide between building vs buying a solution?", Tip: "Discuss time, cost, maintenance, and customization needs.", Difficulty: "Medium"},
		},
	},
	"Machine Learning Engineer": {
		Technical: []models.InterviewQuestion{
			{Question: "Explain the bias-variance tradeoff.", Tip: "Use graphs and examples of underfitting vs overfitting.", Difficulty: "Medium"},
			{Question: "How do you handle imbalanced datasets?", Tip: "Mention oversampling, undersampling, SMOTE, and class weights.", Difficulty: "Medium"},
			{Question: "Explain the difference between bagging and boosting.", Tip: "Bagging = parallel (Random Forest), Boosting = sequential (XGBoost).", Difficulty: "Medium"},
			{Question: "How would you deploy an ML model to production?", Tip: "Cover containerization, serving, monitoring, and A/B testing.", Difficulty: "Hard"},
			{Question: "What is gradient descent and how does it work?", Tip: "Explain learning rate, local minima, and variants (SGD, Adam).", Difficulty: "Medium"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Tell me about a model that didn't perform well. What did you do?", Tip: "Show debugging skills: data quality, features, model selection.", Difficulty: "Medium"},
			{Question: "How do you explain ML concepts to non-technical stakeholders?", Tip: "Use analogies and focus on business impact, not math.", Difficulty: "Easy"},
		},
	},
	"DevOps Engineer": {
		Technical: []models.InterviewQuestion{
			{Question: "Explain CI/CD pipeline. What tools have you used?", Tip: "Cover stages, automation, testing, and deployment strategies.", Difficulty: "Medium"},
			{Question: "What is Infrastructure as Code? Which tools do you prefer?", Tip: "Explain Terraform, CloudFormation, or Pulumi with examples.", Difficulty: "Medium"},
			{Question: "How do you monitor application health?", Tip: "Mention metrics, logs, traces, and tools (Prometheus, Grafana, ELK).", Difficulty: "Medium"},
			{Question: "Explain containerization vs virtualization.", Tip: "Discuss resource efficiency, isolation, and use cases.", Difficulty: "Easy"},
			{Question: "How would you handle a production outage?", Tip: "Walk through incident response: detect, mitigate, communicate, post-mortem.", Difficulty: "Hard"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Describe a time you automated a manual process.", Tip: "Quantify time saved and error reduction.", Difficulty: "Easy"},
			{Question: "How do you balance speed vs reliability?", Tip: "Discuss SLOs, error budgets, and progressive rollouts.", Difficulty: "Medium"},
		},
	},
	"Product Manager": {
		Technical: []models.InterviewQuestion{
			{Question: "How do you prioritize features on a product roadmap?", Tip: "Mention frameworks like RICE, MoSCoW, or value vs effort.", Difficulty: "Medium"},
			{Question: "How would you measure the success of a new feature?", Tip: "Define success metrics before launch, track leading/lagging indicators.", Difficulty: "Medium"},
			{Question: "Walk me through how you would launch a new product.", Tip: "Cover research, MVP, testing, launch, and iteration.", Difficulty: "Hard"},
			{Question: "How do you handle conflicting stakeholder priorities?", Tip: "Discuss data-driven decisions, alignment sessions, and tradeoffs.", Difficulty: "Medium"},
			{Question: "Describe your approach to user research.", Tip: "Cover qualitative (interviews) and quantitative (surveys, analytics).", Difficulty: "Medium"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Tell me about a product you launched. What was the result?", Tip: "Use metrics: user adoption, revenue, retention improvements.", Difficulty: "Medium"},
			{Question: "Describe a time you had to say no to a stakeholder.", Tip: "Focus on how you communicated the tradeoff.", Difficulty: "Medium"},
		},
	},
	"UX Designer": {
		Technical: []models.InterviewQuestion{
			{Question: "Walk me through your design process.", Tip: "Cover research, ideation, prototyping, testing, and iteration.", Difficulty: "Medium"},
			{Question: "How do you validate design decisions?", Tip: "Discuss user testing, A/B tests, analytics, and heuristic evaluation.", Difficulty: "Medium"},
			{Question: "Explain the difference between UX and UI.", Tip: "UX = overall experience, UI = visual interface. They overlap.", Difficulty: "Easy"},
			{Question: "How do you design for accessibility?", Tip: "Mention WCAG guidelines, color contrast, screen readers, and keyboard nav.", Difficulty: "Medium"},
			{Question: "How do you handle design critique?", Tip: "Show openness to feedback while defending user-backed decisions.", Difficulty: "Easy"},
		},
		Behavioral: []models.InterviewQuestion{
			{Question: "Tell me about a design that didn't work. What did you learn?", Tip: "Be honest about failure and show growth.", Difficulty: "Medium"},
			{Question: "How do you collaborate with developers?", Tip: "Discuss handoff, design systems, and iterative feedback.", Difficulty: "Easy"},
		},
	},
}

var defaultQuestions = models.QuestionSet{
	Technical: []models.InterviewQuestion{
		{Question: "Tell me about your technical background.", Tip: "Highlight relevant skills and projects.", Difficulty: "Easy"},
		{Question: "How do you approach learning new technologies?", Tip: "Show curiosity and self-learning ability.", Difficulty: "Easy"},
		{Question: "Describe a challenging project you worked on.", Tip: "Use STAR method and highlight your contributions.", Difficulty: "Medium"},
	},
	Behavioral: []models.InterviewQuestion{
		{Question: "Why are you interested in this role?", Tip: "Connect your skills to the job requirements.", Difficulty: "Easy"},
		{Question: "Where do you see yourself in 5 years?", Tip: "Show ambition while being realistic.", Difficulty: "Easy"},
	},
}

// Questions returns the curated question set for a role, or a generic set
// for unknown roles.
func Questions(targetRole string) models.QuestionSet {
	if qs, ok := questionBank[targetRole]; ok {
		return qs
	}
	return defaultQuestions
}

// Tips returns general interview preparation advice.
func Tips() []string {
	return []string{
		"Research the company before the interview",
		"Prepare questions to ask the interviewer",
		"Use the STAR method for behavioral questions",
		"Practice coding problems if it's a technical role",
		"Follow up with a thank-you email within 24 hours",
	}
}

// techPattern pairs a resume keyword with the question it triggers.
type techPattern struct {
	keyword  string
	question string
	tip      string
}

// Ordered so the generated question list is stable for a given resume.
var techPatterns = []techPattern{
	{"react", "I see you have experience with React. Can you walk me through a complex component you built?", "Describe the component's purpose, state management, and any performance optimizations you made."},
	{"python", "Tell me about a Python project you're most proud of.", "Focus on the problem it solved, architecture decisions, and any libraries you used."},
	{"machine learning", "What ML model did you build and how did you evaluate its performance?", "Discuss metrics, validation approach, and how you handled overfitting."},
	{"aws", "Describe your experience with AWS. What services have you used?", "Mention specific services, infrastructure setup, and cost optimization if applicable."},
	{"docker", "How have you used Docker in your projects?", "Explain containerization benefits, Dockerfile structure, and orchestration if any."},
	{"api", "Tell me about an API you designed or worked with.", "Discuss endpoints, authentication, error handling, and documentation."},
	{"database", "What databases have you worked with? How did you optimize queries?", "Mention specific databases, indexing strategies, and query optimization techniques."},
	{"team", "Describe a successful team project. What was your role?", "Highlight collaboration, communication, and your specific contributions."},
	{"lead", "Tell me about your leadership experience.", "Discuss team size, challenges you faced, and how you motivated your team."},
	{"intern", "What did you learn during your internship?", "Focus on technical skills gained, projects completed, and professional growth."},
	{"project", "Walk me through the most challenging project on your resume.", "Use STAR method: explain the challenge, your approach, and the outcome."},
	{"agile", "How do you work in an Agile environment?", "Discuss sprints, standups, retrospectives, and how you adapt to changing requirements."},
	{"git", "Describe your Git workflow and collaboration practices.", "Mention branching strategy, code reviews, and handling merge conflicts."},
}

// ResumeQuestions generates personalized questions from the resume text,
// the identified strengths and the core skill gaps. Output is deterministic
// for a given input.
func ResumeQuestions(resumeText string, strengths []string, gaps models.SkillGaps) []models.PersonalizedQuestion {
	var questions []models.PersonalizedQuestion
	resumeLower := strings.ToLower(resumeText)

	for _, p := range techPatterns {
		if !strings.Contains(resumeLower, p.keyword) {
			continue
		}
		questions = append(questions, models.PersonalizedQuestion{
			Question: p.question,
			Category: "Resume",
			Source:   p.keyword,
			Tip:      p.tip,
		})
		if len(questions) >= 5 {
			break
		}
	}

	if len(questions) < 5 {
		for i, strength := range strengths {
			if i >= 2 {
				break
			}
			questions = append(questions, models.PersonalizedQuestion{
				Question: fmt.Sprintf("Your resume mentions '%s'. Can you give me a specific example of this?", strength),
				Category: "Strength",
				Tip:      "Prepare a concrete story that demonstrates this strength with measurable results.",
			})
		}
	}

	if len(questions) < 6 && len(gaps.Core) > 0 {
		gap := gaps.Core[0]
		questions = append(questions, models.PersonalizedQuestion{
			Question: fmt.Sprintf("This role requires %s. How do you plan to develop this skill?", gap),
			Category: "Skill Gap",
			Tip:      "Show initiative by mentioning courses, projects, or self-study plans you've started.",
		})
	}

	if len(questions) == 0 {
		questions = []models.PersonalizedQuestion{
			{Question: "Walk me through your resume. What's your career story?", Category: "Resume", Tip: "Create a narrative that connects your experiences to this role."},
			{Question: "What's the most impactful project you've worked on?", Category: "Resume", Tip: "Choose a project relevant to the role and quantify your impact."},
			{Question: "What technical skills are you currently developing?", Category: "Resume", Tip: "Show continuous learning and mention specific resources you're using."},
		}
	}

	return questions
}
