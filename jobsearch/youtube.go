package jobsearch

import (
	"net/url"
	"sort"
	"strings"

	"github.com/careercopilot/backend/models"
)

type curatedVideo struct {
	title   string
	id      string
	channel string
}

// skillVideos maps lower-case skill names to hand-picked tutorials.
var skillVideos = map[string][]curatedVideo{
	"react": {
		{"React Tutorial for Beginners", "SqcY0GlETPk", "Programming with Mosh"},
		{"React Full Course 2024", "CgkZ7MvWUAA", "freeCodeCamp"},
	},
	"javascript": {
		{"JavaScript Tutorial Full Course", "EfAl9bwzVZk", "Bro Code"},
		{"JavaScript Crash Course", "hdI2bqOjy3c", "Traversy Media"},
	},
	"html": {
		{"HTML Full Course", "kUMe1FH4CHE", "freeCodeCamp"},
		{"HTML Tutorial for Beginners", "qz0aGYrrlhU", "Programming with Mosh"},
	},
	"css": {
		{"CSS Tutorial Full Course", "n4R2E7O-Ngo", "Bro Code"},
		{"CSS Crash Course", "yfoY53QXEnI", "Traversy Media"},
	},
	"typescript": {
		{"TypeScript Full Course", "30LWjhZzg50", "freeCodeCamp"},
		{"TypeScript Tutorial", "BCg4U1FzODs", "Traversy Media"},
	},
	"vue": {
		{"Vue.js Course for Beginners", "FXpIoQ_rT_c", "freeCodeCamp"},
		{"Vue 3 Crash Course", "ZqgiuPt5QZo", "Traversy Media"},
	},
	"responsive design": {
		{"Responsive Web Design", "srvUrASNj0s", "freeCodeCamp"},
	},
	"python": {
		{"Python Tutorial for Beginners", "_uQrJ0TkZlc", "Programming with Mosh"},
		{"Python Full Course", "XKHEtdqhLK8", "Bro Code"},
	},
	"sql": {
		{"SQL Tutorial Full Course", "HXV3zeQKqGY", "freeCodeCamp"},
		{"SQL for Beginners", "7S_tz1z_5bA", "Programming with Mosh"},
	},
	"excel": {
		{"Excel Tutorial for Beginners", "Vl0H-qTclOg", "Kevin Stratvert"},
		{"Excel Full Course", "27dxBp0EgCc", "Simplilearn"},
	},
	"tableau": {
		{"Tableau Full Course", "aHaOIvR00So", "Simplilearn"},
		{"Tableau Tutorial for Beginners", "jEgVto5QME8", "freeCodeCamp"},
	},
	"power bi": {
		{"Power BI Full Course", "3u7MQz1EyPY", "Simplilearn"},
		{"Power BI Tutorial", "AGrl-H87pRU", "Kevin Stratvert"},
	},
	"pandas": {
		{"Pandas Tutorial", "vmEHCJofslg", "Keith Galli"},
		{"Pandas Full Course", "PcvsOaixUh8", "freeCodeCamp"},
	},
	"statistics": {
		{"Statistics Full Course", "xxpc-HPKN28", "freeCodeCamp"},
		{"Statistics Fundamentals", "qBigTkBLU6g", "StatQuest"},
	},
	"data visualization": {
		{"Data Visualization with Python", "r-uOLxNrNk8", "freeCodeCamp"},
	},
	"node.js": {
		{"Node.js Tutorial", "TlB_eWDSMt4", "Programming with Mosh"},
		{"Node.js Full Course", "Oe421EPjeBE", "freeCodeCamp"},
	},
	"docker": {
		{"Docker Tutorial for Beginners", "pTFZFxd4hOI", "Programming with Mosh"},
		{"Docker Full Course", "fqMOX6JJhGo", "freeCodeCamp"},
	},
	"aws": {
		{"AWS Tutorial for Beginners", "k1RI5locZE4", "freeCodeCamp"},
		{"AWS Certified Cloud Practitioner", "SOTamWNgDKc", "freeCodeCamp"},
	},
	"git": {
		{"Git and GitHub for Beginners", "RGOj5yH7evk", "freeCodeCamp"},
		{"Git Tutorial", "8JJ101D3knE", "Programming with Mosh"},
	},
	"api": {
		{"APIs for Beginners", "GZvSYJDk-us", "freeCodeCamp"},
		{"REST API Tutorial", "lsMQRaeKNDk", "freeCodeCamp"},
	},
	"database design": {
		{"Database Design Course", "ztHopE5Wnpc", "freeCodeCamp"},
	},
	"machine learning": {
		{"Machine Learning Course", "NWONeJKn6kc", "freeCodeCamp"},
		{"Machine Learning Tutorial", "7eh4d6sabA0", "Programming with Mosh"},
	},
	"tensorflow": {
		{"TensorFlow 2.0 Complete Course", "tPYj3fFJGjk", "freeCodeCamp"},
	},
	"pytorch": {
		{"PyTorch Full Course", "V_xro1bcAuA", "freeCodeCamp"},
	},
	"agile": {
		{"Agile Project Management", "Z9QbYZh1YXY", "Google Career Certificates"},
	},
	"communication": {
		{"Communication Skills", "HAnw168huqA", "TED"},
	},
	"leadership": {
		{"Leadership Skills", "18UVXW-x2_8", "Simon Sinek"},
	},
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func searchURL(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}

// matchingVideos finds curated videos for a skill, falling back to partial
// matches against the known skill names. Partial matches scan in sorted key
// order so the same input always picks the same videos.
func matchingVideos(skillName string) []curatedVideo {
	skillLower := strings.ToLower(skillName)
	if videos, ok := skillVideos[skillLower]; ok {
		return videos
	}
	known := make([]string, 0, len(skillVideos))
	for k := range skillVideos {
		known = append(known, k)
	}
	sort.Strings(known)
	for _, k := range known {
		if strings.Contains(skillLower, k) || strings.Contains(k, skillLower) {
			return skillVideos[k]
		}
	}
	return nil
}

// VideoRecommendations returns up to two curated videos per skill, with a
// YouTube search link for skills outside the curated set.
func VideoRecommendations(skills []string) []models.VideoRec {
	var recs []models.VideoRec
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		videos := matchingVideos(skill)
		if len(videos) == 0 {
			recs = append(recs, models.VideoRec{
				Skill:   skill,
				Title:   "Search: " + skill + " tutorial",
				URL:     searchURL(skill + " tutorial for beginners"),
				Channel: "YouTube Search",
			})
			continue
		}
		for i, v := range videos {
			if i >= 2 {
				break
			}
			recs = append(recs, models.VideoRec{
				Skill:   skill,
				Title:   v.title,
				URL:     watchURL(v.id),
				Channel: v.channel,
			})
		}
	}
	return recs
}
