package analysis

import "time"

// progressSteps are the UI-facing milestones. They advance on a fixed
// cadence regardless of how long the real classification call takes.
var progressSteps = []int{0, 25, 50, 75, 100}

const (
	defaultProgressCadence = 600 * time.Millisecond
	defaultSettleDelay     = 500 * time.Millisecond
)

// simulateProgress emits the milestones into out, one per cadence tick,
// and closes done once the final milestone is reached. It deliberately
// says nothing about the real call; the orchestrator joins both.
func simulateProgress(cadence time.Duration, out chan<- int, done chan<- struct{}) {
	out <- progressSteps[0]

	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for _, step := range progressSteps[1:] {
		<-ticker.C
		out <- step
	}

	close(done)
}
