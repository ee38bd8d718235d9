package session

import "strings"

// Page identifies a top-level page of the app.
type Page string

const (
	PageLogin      Page = "Login"
	PageDashboard  Page = "Dashboard"
	PageLearning   Page = "Learning"
	PageTranslator Page = "Translator"
	PageChatbot    Page = "Chatbot"
	PageDictionary Page = "Dictionary"
	PageProfile    Page = "Profile"
)

// NavPages returns the pages reachable from the sidebar, in menu order.
func NavPages() []Page {
	return []Page{
		PageDashboard,
		PageLearning,
		PageTranslator,
		PageChatbot,
		PageDictionary,
		PageProfile,
	}
}

// NavLabel returns the sidebar label for a page.
func (p Page) NavLabel() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageLearning:
		return "Learn"
	case PageTranslator:
		return "Translator"
	case PageChatbot:
		return "AI Assistant"
	case PageDictionary:
		return "Dictionary"
	case PageProfile:
		return "Profile"
	default:
		return string(p)
	}
}

// ParsePage matches a page identifier case-insensitively.
// The second result is false for unknown identifiers.
func ParsePage(s string) (Page, bool) {
	s = strings.TrimSpace(s)
	for _, p := range append(NavPages(), PageLogin) {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}
