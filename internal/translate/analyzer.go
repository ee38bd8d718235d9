package translate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DefaultAnalysisDelay stands in for model inference time.
const DefaultAnalysisDelay = 2 * time.Second

// ErrUnsupportedImage is returned for uploads that are not PNG or JPEG.
var ErrUnsupportedImage = errors.New("unsupported image type")

// PlaceholderAudio is the embedded audio payload played after a detection.
// It is not tied to the detected sign.
const PlaceholderAudio = "data:audio/wav;base64,UklGRnABAABXQVZFZm10IBAAAAABAAEAQB8AAEAfAAABAAgAZGF0YUwBAABBhAr//39/f39/f39/f39/f39/f3..."

// Source identifies how the sign was captured.
type Source string

const (
	SourceUpload Source = "upload"
	SourceCamera Source = "camera"
)

// Prediction is the output of a sign analysis.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // percent, 0-100
	Source     Source  `json:"source"`
	Audio      string  `json:"audio,omitempty"`
}

var allowedExtensions = []string{".png", ".jpg", ".jpeg"}

// ValidateImageName checks the upload's file extension. The content is
// never inspected.
func ValidateImageName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want png, jpg or jpeg)", ErrUnsupportedImage, name)
}

// Analyzer returns fixed predictions after a fixed delay.
type Analyzer struct {
	Delay time.Duration
}

// NewAnalyzer creates an analyzer. A negative delay is treated as zero.
func NewAnalyzer(delay time.Duration) *Analyzer {
	if delay < 0 {
		delay = 0
	}
	return &Analyzer{Delay: delay}
}

// AnalyzeImage "recognizes" the sign in an uploaded image.
func (a *Analyzer) AnalyzeImage(ctx context.Context, filename string) (Prediction, error) {
	if err := ValidateImageName(filename); err != nil {
		return Prediction{}, err
	}
	if err := a.wait(ctx); err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: "Hello", Confidence: 95.2, Source: SourceUpload, Audio: PlaceholderAudio}, nil
}

// CaptureCamera "captures and recognizes" a sign from the camera.
func (a *Analyzer) CaptureCamera(ctx context.Context) (Prediction, error) {
	if err := a.wait(ctx); err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: "Thank you", Confidence: 89.7, Source: SourceCamera}, nil
}

func (a *Analyzer) wait(ctx context.Context) error {
	if a.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("analysis interrupted: %w", ctx.Err())
	}
}

// HistoryItem is one row of the translation history panel.
type HistoryItem struct {
	Ago        string `json:"ago"`
	Sign       string `json:"sign"`
	Confidence string `json:"confidence"`
}

// SampleHistory is the fixed history shown on the translator page.
func SampleHistory() []HistoryItem {
	return []HistoryItem{
		{Ago: "2 min ago", Sign: "Hello", Confidence: "95.2%"},
		{Ago: "5 min ago", Sign: "Thank you", Confidence: "89.7%"},
		{Ago: "8 min ago", Sign: "Please", Confidence: "92.1%"},
	}
}
