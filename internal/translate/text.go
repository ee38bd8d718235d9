package translate

import (
	"strings"

	"github.com/signaura/signaura/internal/catalog"
)

// Segment is the sign rendering of one input word.
type Segment struct {
	Word    string          `json:"word"`
	Sign    *catalog.Entry  `json:"sign,omitempty"`    // set when the word is in the words category
	Letters []catalog.Entry `json:"letters,omitempty"` // fingerspelling when Sign is nil
}

// Matched reports whether the word has its own sign.
func (s Segment) Matched() bool {
	return s.Sign != nil
}

// TextToSigns splits text into lower-case words and looks each one up in the
// words category. Words without a sign are spelled letter by letter using
// the alphabets category; characters with no letter sign are dropped.
func TextToSigns(c *catalog.Catalog, text string) []Segment {
	words := strings.Fields(strings.ToLower(text))
	segments := make([]Segment, 0, len(words))
	for _, w := range words {
		if e, ok := c.Lookup(catalog.CategoryWords, w); ok {
			segments = append(segments, Segment{Word: w, Sign: &e})
			continue
		}
		segments = append(segments, Segment{Word: w, Letters: spell(c, w)})
	}
	return segments
}

func spell(c *catalog.Catalog, word string) []catalog.Entry {
	var letters []catalog.Entry
	for _, r := range word {
		if e, ok := c.Lookup(catalog.CategoryAlphabets, strings.ToUpper(string(r))); ok {
			letters = append(letters, e)
		}
	}
	return letters
}

// QuickPhrases are the one-click phrases on the text-to-sign tab.
func QuickPhrases() []string {
	return []string{"Hello", "Thank you", "Please", "Good morning", "How are you?", "Nice to meet you"}
}

// IsQuickPhrase reports whether phrase is one of QuickPhrases, ignoring case.
func IsQuickPhrase(phrase string) bool {
	for _, p := range QuickPhrases() {
		if strings.EqualFold(p, phrase) {
			return true
		}
	}
	return false
}

// Voice and camera capture are not implemented; these are the notices shown instead.
const (
	VoiceInputNotice   = "Voice input would be integrated here using speech recognition"
	VoiceRecordingNote = "Recording... (This would use speech-to-text API)"
	CameraNotice       = "Camera integration would be implemented here using webcam capture"
)
