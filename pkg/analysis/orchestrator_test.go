package analysis

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteflow/pkg/log"
	"noteflow/pkg/models"
	"noteflow/pkg/notify"
)

func TestMain(m *testing.M) {
	log.InitializeStdoutLogger()
	m.Run()
}

type fakeClassifier struct {
	result     *models.AnalysisResult
	err        error
	delay      time.Duration
	credential bool
}

func (c *fakeClassifier) Classify(text string) (*models.AnalysisResult, error) {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	return c.result, c.err
}

func (c *fakeClassifier) HasValidCredential() bool {
	return c.credential
}

type fakeStore struct {
	mu      sync.Mutex
	created []*models.Note
	err     error
}

func (s *fakeStore) CreateNote(note *models.Note) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, note)
	return note, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Notify(kind notify.Kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) Close() error {
	return nil
}

func (n *fakeNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func fastOrchestrator(classifier Classifier, store Store, notifier notify.Notifier) *Orchestrator {
	o := NewOrchestrator(classifier, store, notifier)
	o.cadence = time.Millisecond
	o.settleDelay = time.Millisecond
	return o
}

func classified(category models.Category, title string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Category:     category,
		CategoryName: category.Meta().Label,
		Tags:         []string{"#tag"},
		Title:        title,
	}
}

func TestSubmitEmitsEveryMilestone(t *testing.T) {
	classifier := &fakeClassifier{result: classified(models.CategoryCode, "제목"), credential: true}
	o := fastOrchestrator(classifier, &fakeStore{}, &fakeNotifier{})

	sub, err := o.Submit("def hello(): pass")
	require.NoError(t, err)

	var milestones []int
	for p := range sub.Progress() {
		milestones = append(milestones, p)
	}

	// the forced 100 lands after the ticker's own, so it appears twice
	assert.Equal(t, []int{0, 25, 50, 75, 100, 100}, milestones)

	<-sub.Done()
	assert.Equal(t, StateAwaitingConfirmation, o.State())
}

func TestSubmitWaitsForSlowClassification(t *testing.T) {
	classifier := &fakeClassifier{
		result:     classified(models.CategoryIdea, "아이디어"),
		delay:      30 * time.Millisecond,
		credential: true,
	}
	o := fastOrchestrator(classifier, &fakeStore{}, &fakeNotifier{})

	sub, err := o.Submit("새로운 아이디어")
	require.NoError(t, err)

	<-sub.Done()

	require.NotNil(t, sub.Result())
	assert.Equal(t, "아이디어", sub.Result().Title)
	assert.Equal(t, StateAwaitingConfirmation, o.State())
}

func TestSubmitRejectsEmptyContent(t *testing.T) {
	notifier := &fakeNotifier{}
	o := fastOrchestrator(&fakeClassifier{credential: true}, &fakeStore{}, notifier)

	sub, err := o.Submit("   ")

	assert.ErrorIs(t, err, models.ErrEmptyContent)
	assert.Nil(t, sub)
	assert.Equal(t, StateIdle, o.State())
	assert.Contains(t, notifier.all(), "메모 내용을 입력해주세요")
}

func TestSubmitRejectsMissingCredential(t *testing.T) {
	notifier := &fakeNotifier{}
	o := fastOrchestrator(&fakeClassifier{credential: false}, &fakeStore{}, notifier)

	sub, err := o.Submit("내용")

	assert.ErrorIs(t, err, models.ErrMissingCredential)
	assert.Nil(t, sub)
	assert.Contains(t, notifier.all(), "Gemini API 키가 설정되지 않았습니다")
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	classifier := &fakeClassifier{
		result:     classified(models.CategoryCode, "제목"),
		delay:      50 * time.Millisecond,
		credential: true,
	}
	o := fastOrchestrator(classifier, &fakeStore{}, &fakeNotifier{})

	first, err := o.Submit("첫번째")
	require.NoError(t, err)

	_, err = o.Submit("두번째")
	assert.ErrorIs(t, err, models.ErrBusy)

	<-first.Done()
}

func TestConfirmPersistsDegradedResultAsIs(t *testing.T) {
	// a failed classification still saves with the fallback fields intact
	degraded := &models.AnalysisResult{
		Category:     models.CategoryOther,
		CategoryName: "기타",
		Tags:         []string{"#메모"},
		Title:        "https://example.com/...",
		Err:          "error calling gemini, 500 Internal Server Error",
	}
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	o := fastOrchestrator(&fakeClassifier{result: degraded, credential: true}, store, notifier)

	sub, err := o.Submit("https://example.com/docs")
	require.NoError(t, err)
	<-sub.Done()

	note, err := o.Confirm(sub)
	require.NoError(t, err)

	assert.Equal(t, models.CategoryOther, note.Category)
	assert.Equal(t, []string{"#메모"}, note.Tags)
	assert.Equal(t, "https://example.com/...", note.Title)
	assert.Equal(t, "https://example.com/docs", note.Content)
	require.Len(t, store.created, 1)
	assert.Contains(t, notifier.all(), "메모가 저장되었습니다!")
	assert.Equal(t, StateIdle, o.State())
}

func TestConfirmRequiresAwaitingConfirmation(t *testing.T) {
	o := fastOrchestrator(&fakeClassifier{credential: true}, &fakeStore{}, &fakeNotifier{})

	_, err := o.Confirm(newSubmission("고아가 된 제출"))
	assert.Error(t, err)
}

func TestConfirmSurfacesStoreFailure(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("permission denied")}
	notifier := &fakeNotifier{}
	classifier := &fakeClassifier{result: classified(models.CategoryCode, "제목"), credential: true}
	o := fastOrchestrator(classifier, store, notifier)

	sub, err := o.Submit("내용")
	require.NoError(t, err)
	<-sub.Done()

	_, err = o.Confirm(sub)

	assert.Error(t, err)
	assert.Contains(t, notifier.all(), "메모 저장 중 오류가 발생했습니다")
	assert.Equal(t, StateIdle, o.State())
}

func TestDiscardDropsLateResult(t *testing.T) {
	classifier := &fakeClassifier{
		result:     classified(models.CategoryCode, "제목"),
		delay:      50 * time.Millisecond,
		credential: true,
	}
	store := &fakeStore{}
	o := fastOrchestrator(classifier, store, &fakeNotifier{})

	sub, err := o.Submit("곧 버려질 내용")
	require.NoError(t, err)

	o.Discard(sub)
	assert.Equal(t, StateIdle, o.State())

	<-sub.Done()

	// the late result never surfaces and never reaches the store
	assert.Nil(t, sub.Result())
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, store.created)
}

func TestDiscardAfterConfirmationResetsState(t *testing.T) {
	classifier := &fakeClassifier{result: classified(models.CategoryCode, "제목"), credential: true}
	o := fastOrchestrator(classifier, &fakeStore{}, &fakeNotifier{})

	sub, err := o.Submit("내용")
	require.NoError(t, err)
	<-sub.Done()
	require.Equal(t, StateAwaitingConfirmation, o.State())

	o.Discard(sub)

	assert.Equal(t, StateIdle, o.State())
	_, err = o.Confirm(sub)
	assert.Error(t, err)
}

func TestSubmitFallsBackOnClassifierError(t *testing.T) {
	// a hard classifier error degrades like a service failure would:
	// fallback category and tag, truncated title
	classifier := &fakeClassifier{err: fmt.Errorf("connection reset"), credential: true}
	o := fastOrchestrator(classifier, &fakeStore{}, &fakeNotifier{})

	sub, err := o.Submit("아주 길고 장황한 메모 내용이 계속해서 이어지는 경우입니다")
	require.NoError(t, err)
	<-sub.Done()

	result := sub.Result()
	require.NotNil(t, result)
	assert.True(t, result.Degraded())
	assert.Equal(t, models.CategoryOther, result.Category)
	assert.Equal(t, []string{models.FallbackTag}, result.Tags)
	assert.Len(t, []rune(result.Title), 23)
	assert.Equal(t, StateAwaitingConfirmation, o.State())
}

func TestReanalyze(t *testing.T) {
	classifier := &fakeClassifier{result: classified(models.CategoryReference, "정리된 제목"), credential: true}
	notifier := &fakeNotifier{}
	o := fastOrchestrator(classifier, &fakeStore{}, notifier)

	result, err := o.Reanalyze("수정된 내용")

	require.NoError(t, err)
	assert.Equal(t, "정리된 제목", result.Title)
	assert.Equal(t, models.CategoryReference, result.Category)
	assert.Contains(t, notifier.all(), "AI 분석이 완료되었습니다!")
	assert.Equal(t, StateIdle, o.State())
}

func TestReanalyzeRejectsEmptyContent(t *testing.T) {
	notifier := &fakeNotifier{}
	o := fastOrchestrator(&fakeClassifier{credential: true}, &fakeStore{}, notifier)

	_, err := o.Reanalyze("   ")

	assert.ErrorIs(t, err, models.ErrEmptyContent)
	assert.Contains(t, notifier.all(), "메모 내용을 입력해주세요")
}

func TestReanalyzeRejectsMissingCredential(t *testing.T) {
	notifier := &fakeNotifier{}
	o := fastOrchestrator(&fakeClassifier{credential: false}, &fakeStore{}, notifier)

	_, err := o.Reanalyze("내용")

	assert.ErrorIs(t, err, models.ErrMissingCredential)
	assert.Contains(t, notifier.all(), "Gemini API 키가 설정되지 않았습니다")
}

func TestReanalyzeSurfacesClassifierError(t *testing.T) {
	notifier := &fakeNotifier{}
	o := fastOrchestrator(&fakeClassifier{err: fmt.Errorf("connection reset"), credential: true}, &fakeStore{}, notifier)

	_, err := o.Reanalyze("내용")

	assert.Error(t, err)
	assert.Contains(t, notifier.all(), "AI 분석 중 오류가 발생했습니다")
}

func TestSubmitManual(t *testing.T) {
	store := &fakeStore{}
	o := fastOrchestrator(&fakeClassifier{credential: false}, store, &fakeNotifier{})

	note, err := o.SubmitManual("수동으로 작성한 메모", models.CategoryTodo, "급함, 오늘")

	require.NoError(t, err)
	assert.Equal(t, models.CategoryTodo, note.Category)
	assert.Equal(t, []string{"#급함", "#오늘"}, note.Tags)
	assert.Equal(t, "수동으로 작성한 메모", note.Title)
	require.Len(t, store.created, 1)
}

func TestSubmitManualTruncatesTitle(t *testing.T) {
	o := fastOrchestrator(&fakeClassifier{}, &fakeStore{}, &fakeNotifier{})

	content := ""
	for i := 0; i < 60; i++ {
		content += "가"
	}

	note, err := o.SubmitManual(content, models.CategoryOther, "")

	require.NoError(t, err)
	assert.Len(t, []rune(note.Title), manualTitleLength+3)
	assert.Equal(t, content, note.Content)
}

func TestSubmitManualRejectsEmptyContent(t *testing.T) {
	o := fastOrchestrator(&fakeClassifier{}, &fakeStore{}, &fakeNotifier{})

	_, err := o.SubmitManual("", models.CategoryOther, "")
	assert.ErrorIs(t, err, models.ErrEmptyContent)
	assert.Equal(t, StateIdle, o.State())
}

func TestSubmitManualInvalidCategoryFallsBack(t *testing.T) {
	store := &fakeStore{}
	o := fastOrchestrator(&fakeClassifier{}, store, &fakeNotifier{})

	note, err := o.SubmitManual("내용", models.Category("bogus"), "")

	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, note.Category)
}

func TestOnSavedFiresAfterSave(t *testing.T) {
	saved := 0
	o := fastOrchestrator(&fakeClassifier{}, &fakeStore{}, &fakeNotifier{})
	o.OnSaved(func() { saved++ })

	_, err := o.SubmitManual("내용", models.CategoryOther, "")
	require.NoError(t, err)

	assert.Equal(t, 1, saved)
}
