package pages

import (
	"github.com/signaura/signaura/internal/session"
)

type renderFunc func(s *Service, st *session.State, v *View)

// renderers is the page dispatch table.
var renderers = map[session.Page]renderFunc{
	session.PageLogin:      (*Service).renderLogin,
	session.PageDashboard:  (*Service).renderDashboard,
	session.PageLearning:   (*Service).renderLearning,
	session.PageTranslator: (*Service).renderTranslator,
	session.PageChatbot:    (*Service).renderChatbot,
	session.PageDictionary: (*Service).renderDictionary,
	session.PageProfile:    (*Service).renderProfile,
}

var titles = map[session.Page]string{
	session.PageLogin:      "Welcome to Signaura",
	session.PageDashboard:  "Signaura Dashboard",
	session.PageLearning:   "Learn Sign Language",
	session.PageTranslator: "Sign Language Translator",
	session.PageChatbot:    "AI Learning Assistant",
	session.PageDictionary: "Sign Language Dictionary",
	session.PageProfile:    "Profile & Settings",
}

// Route resolves a page identifier. Empty or unknown identifiers resolve to
// the dashboard.
func Route(id string) session.Page {
	p, ok := session.ParsePage(id)
	if !ok {
		return session.PageDashboard
	}
	return p
}

// resolve picks the page to render for st. Unauthenticated sessions always
// see the login page.
func resolve(st *session.State) session.Page {
	if !st.Authenticated {
		return session.PageLogin
	}
	if _, ok := renderers[st.Page]; !ok || st.Page == session.PageLogin {
		return session.PageDashboard
	}
	return st.Page
}

// Render renders the session's current page.
func (s *Service) Render(st *session.State) View {
	p := resolve(st)
	v := View{
		Page:    p,
		Title:   titles[p],
		Sidebar: s.sidebar(st, p),
		Footer:  Footer,
	}
	renderers[p](s, st, &v)
	return v
}

// render is Render with notices attached.
func (s *Service) render(st *session.State, notices ...Notice) View {
	v := s.Render(st)
	v.Notices = append(v.Notices, notices...)
	return v
}

func (s *Service) sidebar(st *session.State, active session.Page) Sidebar {
	if !st.Authenticated {
		return Sidebar{Hint: MsgDemoHint}
	}
	sb := Sidebar{
		Welcome:      "Welcome, " + st.Username + "!",
		SignsLearned: st.Progress.Summary().Total(),
		StudyStreak:  studyStreak,
	}
	for _, p := range session.NavPages() {
		sb.Nav = append(sb.Nav, NavItem{Page: p, Label: p.NavLabel(), Active: p == active})
	}
	return sb
}

// SidebarFor returns the sidebar of the page st would render next.
func (s *Service) SidebarFor(st *session.State) Sidebar {
	return s.sidebar(st, resolve(st))
}
