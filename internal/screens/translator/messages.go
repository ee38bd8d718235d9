package translator

import (
	"time"

	"github.com/signaura/signaura/internal/translate"
)

// analysisDoneMsg is sent when a background sign analysis finishes.
type analysisDoneMsg struct {
	Prediction translate.Prediction
	Err        error
}

// spinnerTickMsg is sent at short intervals to animate the analysis spinner.
type spinnerTickMsg time.Time
