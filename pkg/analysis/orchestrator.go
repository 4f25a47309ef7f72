package analysis

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"noteflow/pkg/log"
	"noteflow/pkg/models"
	"noteflow/pkg/notify"
)

// manualTitleLength caps the generated title on the manual path, where no
// classifier supplies one.
const manualTitleLength = 50

// Classifier is the classification capability the orchestrator drives.
type Classifier interface {
	Classify(text string) (*models.AnalysisResult, error)
	HasValidCredential() bool
}

// Store is the slice of the record store the orchestrator writes through.
type Store interface {
	CreateNote(note *models.Note) (*models.Note, error)
}

type State int

const (
	StateIdle State = iota
	StateAnalyzing
	StateAwaitingConfirmation
	StateSaving
)

// Orchestrator drives a single "create note" submission end to end:
// validate, classify with a concurrent progress simulation, hold for the
// user's confirmation, persist. One submission is in flight at a time;
// a second submit is rejected rather than interleaved.
type Orchestrator struct {
	classifier Classifier
	store      Store
	notifier   notify.Notifier

	cadence     time.Duration
	settleDelay time.Duration

	mu      sync.Mutex
	state   State
	current *Submission
	onSaved func()
}

func NewOrchestrator(classifier Classifier, store Store, notifier notify.Notifier) *Orchestrator {
	return &Orchestrator{
		classifier:  classifier,
		store:       store,
		notifier:    notifier,
		cadence:     defaultProgressCadence,
		settleDelay: defaultSettleDelay,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// OnSaved registers the refresh signal fired after every successful save.
func (o *Orchestrator) OnSaved(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onSaved = fn
}

// Submit starts the AI-assisted path. It validates before any network
// call: empty content and a missing credential each abort with a
// notification and leave the orchestrator idle.
func (o *Orchestrator) Submit(content string) (*Submission, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle {
		return nil, models.ErrBusy
	}

	if strings.TrimSpace(content) == "" {
		o.notifier.Notify(notify.KindWarning, "메모 내용을 입력해주세요")
		return nil, models.ErrEmptyContent
	}

	if !o.classifier.HasValidCredential() {
		o.notifier.Notify(notify.KindError, "Gemini API 키가 설정되지 않았습니다")
		return nil, models.ErrMissingCredential
	}

	sub := newSubmission(content)
	o.state = StateAnalyzing
	o.current = sub

	go o.analyze(sub)

	return sub, nil
}

// analyze runs classification and the progress simulation concurrently and
// joins them: confirmation is reachable only after both have settled.
func (o *Orchestrator) analyze(sub *Submission) {
	logger := log.Logger()

	results := make(chan *models.AnalysisResult, 1)
	go func() {
		result, err := o.classifier.Classify(sub.content)
		if err != nil {
			// the classifier degrades instead of failing; a hard error here
			// still must not strand the flow
			result = models.FallbackResult(sub.content, err)
		}
		results <- result
	}()

	simDone := make(chan struct{})
	go simulateProgress(o.cadence, sub.progress, simDone)

	result := <-results
	<-simDone

	// analysis has settled; force the bar to 100 before the handoff
	sub.progress <- 100
	close(sub.progress)

	time.Sleep(o.settleDelay)

	o.mu.Lock()
	defer o.mu.Unlock()

	if sub.dropped.Load() || o.current != sub {
		// the submission was discarded mid-flight; Discard already reset
		// the state, so the late result is simply dropped
		logger.Debugf("dropping analysis result for discarded submission %s", sub.id)
		close(sub.done)
		return
	}

	if result.Degraded() {
		logger.Warningf("classification degraded, %s", result.Err)
	}

	sub.result = result
	o.state = StateAwaitingConfirmation
	close(sub.done)
}

// Confirm builds a note from the submission's content plus the analysis
// fields and persists it. On store failure the flow returns to idle with
// a notification; the content is not recovered.
func (o *Orchestrator) Confirm(sub *Submission) (*models.Note, error) {
	o.mu.Lock()

	if o.current != sub || o.state != StateAwaitingConfirmation {
		o.mu.Unlock()
		return nil, fmt.Errorf("submission is not awaiting confirmation")
	}

	result := sub.result
	o.state = StateSaving
	o.mu.Unlock()

	note := models.NewNote(result.Title, sub.content, result.Category, result.Tags, result.Summary)
	return o.save(note)
}

// Reanalyze classifies an edited note's content outside the submission
// flow: no progress simulation, no confirmation hold, and the orchestrator
// state is untouched. The caller decides which result fields to apply.
func (o *Orchestrator) Reanalyze(content string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(content) == "" {
		o.notifier.Notify(notify.KindWarning, "메모 내용을 입력해주세요")
		return nil, models.ErrEmptyContent
	}

	if !o.classifier.HasValidCredential() {
		o.notifier.Notify(notify.KindError, "Gemini API 키가 설정되지 않았습니다")
		return nil, models.ErrMissingCredential
	}

	result, err := o.classifier.Classify(content)
	if err != nil {
		o.notifier.Notify(notify.KindError, "AI 분석 중 오류가 발생했습니다")
		return nil, err
	}

	o.notifier.Notify(notify.KindSuccess, "AI 분석이 완료되었습니다!")
	return result, nil
}

// SubmitManual is the AI-disabled path: the user's own category and
// comma-separated tags go straight to saving.
func (o *Orchestrator) SubmitManual(content string, category models.Category, rawTags string) (*models.Note, error) {
	o.mu.Lock()

	if o.state != StateIdle {
		o.mu.Unlock()
		return nil, models.ErrBusy
	}

	if strings.TrimSpace(content) == "" {
		o.mu.Unlock()
		o.notifier.Notify(notify.KindWarning, "메모 내용을 입력해주세요")
		return nil, models.ErrEmptyContent
	}

	o.state = StateSaving
	o.mu.Unlock()

	note := models.NewNote(manualTitle(content), content, models.ParseCategory(string(category)), models.ParseTags(rawTags), "")
	return o.save(note)
}

// Discard abandons the current submission without saving. Mid-analysis the
// in-flight call is not interrupted; its eventual result is dropped by the
// token check in analyze.
func (o *Orchestrator) Discard(sub *Submission) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != sub {
		return
	}

	sub.dropped.Store(true)
	o.current = nil

	if o.state == StateAwaitingConfirmation || o.state == StateAnalyzing {
		o.state = StateIdle
	}
}

func (o *Orchestrator) save(note *models.Note) (*models.Note, error) {
	logger := log.Logger()

	created, err := o.store.CreateNote(note)

	o.mu.Lock()
	o.state = StateIdle
	o.current = nil
	onSaved := o.onSaved
	o.mu.Unlock()

	if err != nil {
		logger.Errorf("error saving note, %s", err)
		o.notifier.Notify(notify.KindError, "메모 저장 중 오류가 발생했습니다")
		return nil, err
	}

	o.notifier.Notify(notify.KindSuccess, "메모가 저장되었습니다!")

	if onSaved != nil {
		onSaved()
	}

	return created, nil
}

func manualTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= manualTitleLength {
		return content
	}
	return string(runes[:manualTitleLength]) + "..."
}
