package pages

import (
	"strconv"

	"github.com/signaura/signaura/internal/session"
)

const studyStreak = "7 days"

func (s *Service) renderDashboard(st *session.State, v *View) {
	sum := st.Progress.Summary()
	v.Dashboard = &DashboardView{
		Welcome: "Welcome back, " + st.Username + "!",
		Metrics: []Metric{
			{Label: "Letters Learned", Value: strconv.Itoa(sum.Letters), Delta: "2"},
			{Label: "Numbers Learned", Value: strconv.Itoa(sum.Numbers), Delta: "1"},
			{Label: "Words Learned", Value: strconv.Itoa(sum.Words), Delta: "3"},
			{Label: "Study Streak", Value: studyStreak, Delta: "1"},
		},
		Features: []FeatureCard{
			{
				Title:       "Learn Sign Language",
				Description: "Start with alphabets, numbers, and basic words",
				Action:      "Start Learning",
				Target:      session.PageLearning,
			},
			{
				Title:       "Translator",
				Description: "Convert signs to text and speech",
				Action:      "Open Translator",
				Target:      session.PageTranslator,
			},
			{
				Title:       "AI Assistant",
				Description: "Get help with your learning journey",
				Action:      "Chat with AI",
				Target:      session.PageChatbot,
			},
		},
	}
}
