package analysis

import (
	"sync/atomic"

	"github.com/google/uuid"

	"noteflow/pkg/models"
)

// Submission is one in-flight "create note" flow. Its token identifies the
// flow so a result arriving after the submission was discarded is dropped
// instead of resurfacing through an orphaned callback.
type Submission struct {
	id       string
	content  string
	progress chan int
	done     chan struct{}
	result   *models.AnalysisResult
	dropped  atomic.Bool
}

func newSubmission(content string) *Submission {
	return &Submission{
		id:      uuid.NewString(),
		content: content,
		// buffered past the milestone count so an absent consumer never
		// stalls the simulation
		progress: make(chan int, len(progressSteps)+2),
		done:     make(chan struct{}),
	}
}

func (s *Submission) Content() string {
	return s.content
}

// Progress yields the milestone sequence. The channel closes once the
// analysis has settled and 100 was forced.
func (s *Submission) Progress() <-chan int {
	return s.progress
}

// Done closes when the submission reaches confirmation, after both the
// classification call and the progress simulation have settled.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Result is valid once Done is closed; nil before that.
func (s *Submission) Result() *models.AnalysisResult {
	return s.result
}
