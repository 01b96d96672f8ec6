package models

// JobLink is a prebuilt search URL on a job board
// @Description Job board search link
type JobLink struct {
	Name  string `json:"name" example:"LinkedIn Jobs"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty" example:"linkedin"`
	Color string `json:"color,omitempty" example:"blue"`
}

// VideoRec is a curated learning video for a roadmap skill
// @Description Curated learning video
type VideoRec struct {
	Skill   string `json:"skill" example:"Docker"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Channel string `json:"channel,omitempty" example:"freeCodeCamp"`
}

// InterviewQuestion is one curated interview question with a preparation tip
// @Description Curated interview question
type InterviewQuestion struct {
	Question   string `json:"question"`
	Tip        string `json:"tip"`
	Difficulty string `json:"difficulty" example:"Medium"`
}

// QuestionSet groups curated questions for a role
type QuestionSet struct {
	Technical  []InterviewQuestion `json:"technical"`
	Behavioral []InterviewQuestion `json:"behavioral"`
}
