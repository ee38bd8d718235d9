package chat

import (
	"fmt"
	"strings"

	"github.com/signaura/signaura/internal/progress"
)

// Canned replies.
const (
	ReplyHello = "To sign 'hello', wave your hand with your palm facing outward, similar to a regular wave! " +
		"You can practice this in the Words section of our learning module."
	ReplyAlphabet = "The sign language alphabet uses different hand shapes for each letter. " +
		"You can learn all 26 letters in our Alphabets learning section. Would you like me to show you a specific letter?"
	ReplyNumber = "Numbers in sign language are formed using specific finger configurations. " +
		"Numbers 1-5 use your fingers naturally, while 6-9 have special hand positions. Check out our Numbers learning section!"
	ReplyPhrase = "Some common phrases include 'Hello', 'Thank you', 'Please', and 'Nice to meet you'. " +
		"You can find these in our Words section or use the Text-to-Sign translator!"
	ReplyFallback = "I'm here to help you learn sign language! You can ask me about letters, numbers, words, " +
		"or your learning progress. You can also use our learning modules and translator tools."
)

// rule maps a keyword to a reply. Rules are evaluated in order.
type rule struct {
	keyword string
	reply   func(progress.Summary) string
}

func fixed(s string) func(progress.Summary) string {
	return func(progress.Summary) string { return s }
}

var rules = []rule{
	{keyword: "hello", reply: fixed(ReplyHello)},
	{keyword: "alphabet", reply: fixed(ReplyAlphabet)},
	{keyword: "progress", reply: progressReply},
	{keyword: "number", reply: fixed(ReplyNumber)},
	{keyword: "phrase", reply: fixed(ReplyPhrase)},
}

func progressReply(s progress.Summary) string {
	return fmt.Sprintf(
		"Great question! Here's your progress: Letters: %d completed, Numbers: %d completed, Words: %d completed. Keep up the good work!",
		s.Letters, s.Numbers, s.Words,
	)
}

// Respond returns the canned reply for input. The first rule whose keyword
// appears in the lower-cased input wins.
func Respond(input string, summary progress.Summary) string {
	lower := strings.ToLower(input)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.reply(summary)
		}
	}
	return ReplyFallback
}

// QuickQuestions are the one-click prompts shown beside the chat.
func QuickQuestions() []string {
	return []string{
		"How do I sign 'hello'?",
		"Show me the alphabet",
		"What's my progress?",
		"Practice numbers",
		"Common phrases",
	}
}
