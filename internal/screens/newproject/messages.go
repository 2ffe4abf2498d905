package newproject

import (
	"time"

	"github.com/abhisek/autodidact/internal/clarify"
	"github.com/abhisek/autodidact/internal/research"
)

// analysisDoneMsg is sent when topic analysis completes.
type analysisDoneMsg struct {
	State *clarify.State
	Err   error
}

// researchDoneMsg is sent when the deep-research run completes.
type researchDoneMsg struct {
	Result *research.Result
	Err    error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
