package translate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaura/signaura/internal/catalog"
)

func TestValidateImageName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"sign.png", false},
		{"sign.JPG", false},
		{"photo.jpeg", false},
		{"clip.gif", true},
		{"noext", true},
		{"archive.png.zip", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedImage)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAnalyzeImage_ReturnsFixedPrediction(t *testing.T) {
	a := NewAnalyzer(0)

	p, err := a.AnalyzeImage(context.Background(), "hand.png")

	require.NoError(t, err)
	assert.Equal(t, "Hello", p.Label)
	assert.Equal(t, 95.2, p.Confidence)
	assert.Equal(t, SourceUpload, p.Source)
	assert.Equal(t, PlaceholderAudio, p.Audio)
}

func TestAnalyzeImage_RejectsExtension(t *testing.T) {
	a := NewAnalyzer(0)

	_, err := a.AnalyzeImage(context.Background(), "hand.bmp")

	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestCaptureCamera(t *testing.T) {
	a := NewAnalyzer(0)

	p, err := a.CaptureCamera(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Thank you", p.Label)
	assert.Equal(t, 89.7, p.Confidence)
}

func TestAnalyzer_DelayHonoursCancellation(t *testing.T) {
	a := NewAnalyzer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.CaptureCamera(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzer_WaitsForDelay(t *testing.T) {
	a := NewAnalyzer(20 * time.Millisecond)

	start := time.Now()
	_, err := a.AnalyzeImage(context.Background(), "x.jpg")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNewAnalyzer_NegativeDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewAnalyzer(-time.Second).Delay)
}

func TestTextToSigns_HelloZzz(t *testing.T) {
	c := catalog.Default()

	segs := TextToSigns(c, "hello zzz")

	require.Len(t, segs, 2)
	assert.True(t, segs[0].Matched())
	assert.Equal(t, "placeholder_hello.mp4", segs[0].Sign.MediaRef)

	assert.False(t, segs[1].Matched())
	assert.Equal(t, "zzz", segs[1].Word)
	assert.Empty(t, segs[1].Letters, "z has no letter sign, so nothing is spelled")
}

func TestTextToSigns_SpellsKnownLetters(t *testing.T) {
	c := catalog.Default()

	segs := TextToSigns(c, "  CAB  ")

	require.Len(t, segs, 1)
	require.Len(t, segs[0].Letters, 3)
	assert.Equal(t, "C", segs[0].Letters[0].Label)
	assert.Equal(t, "A", segs[0].Letters[1].Label)
	assert.Equal(t, "B", segs[0].Letters[2].Label)
}

func TestTextToSigns_MultiWordEntryNotMatchedAcrossWords(t *testing.T) {
	c := catalog.Default()

	// "thank you" is a single catalog label, but input is split per word.
	segs := TextToSigns(c, "thank you")

	require.Len(t, segs, 2)
	assert.False(t, segs[0].Matched())
	assert.False(t, segs[1].Matched())
	// "thank" spells A (t,h,n,k have no sign); "you" spells nothing.
	assert.Len(t, segs[0].Letters, 1)
	assert.Empty(t, segs[1].Letters)
}

func TestTextToSigns_Empty(t *testing.T) {
	assert.Empty(t, TextToSigns(catalog.Default(), "   "))
}

func TestIsQuickPhrase(t *testing.T) {
	assert.True(t, IsQuickPhrase("good morning"))
	assert.False(t, IsQuickPhrase("good night"))
}

func TestSampleHistory(t *testing.T) {
	h := SampleHistory()

	require.Len(t, h, 3)
	assert.Equal(t, "Please", h[2].Sign)
}
