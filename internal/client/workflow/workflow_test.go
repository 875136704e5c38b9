package workflow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/futig/interview-assistant/internal/client/apiclient"
	"github.com/futig/interview-assistant/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAPI struct {
	mu            sync.Mutex
	analyzeCalls  int32
	questions     []string
	createCalls   int
	block         chan struct{}
	entered       chan struct{}
	createBlock   chan struct{}
	createEntered chan struct{}
	analyzeErr    error
	createErr     error
	listErr       error
	submissionID  string
	listItems     []*entity.Submission
	lastListLimit int
}

func (s *stubAPI) Analyze(_ context.Context, question string) (*entity.AnalyzeResponse, error) {
	atomic.AddInt32(&s.analyzeCalls, 1)
	s.mu.Lock()
	s.questions = append(s.questions, question)
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return &entity.AnalyzeResponse{
		Analysis:     &entity.Analysis{Explanation: "plan for " + question},
		SubmissionID: s.submissionID,
	}, nil
}

func (s *stubAPI) ListSubmissions(_ context.Context, limit int) ([]*entity.Submission, error) {
	s.lastListLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listItems, nil
}

func (s *stubAPI) CreateSubmission(_ context.Context, q, e string) (*entity.Submission, error) {
	s.mu.Lock()
	s.createCalls++
	s.mu.Unlock()

	if s.createEntered != nil {
		s.createEntered <- struct{}{}
	}
	if s.createBlock != nil {
		<-s.createBlock
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entity.Submission{ID: "saved-1", Question: q, Explanation: e, CreatedAt: time.Now()}, nil
}

func newWorkflow(api API, opts Options) *Workflow {
	return New(api, opts, zap.NewNop())
}

func TestSetQuestion_Transitions(t *testing.T) {
	w := newWorkflow(&stubAPI{}, Options{})
	require.Equal(t, StateIdle, w.Snapshot().State)

	w.SetQuestion("Two")
	require.Equal(t, StateComposing, w.Snapshot().State)

	w.SetQuestion("   ")
	require.Equal(t, StateIdle, w.Snapshot().State)
}

func TestSubmit_Success(t *testing.T) {
	api := &stubAPI{}
	w := newWorkflow(api, Options{})

	w.SetQuestion("  Two Sum  ")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	snap := w.Snapshot()
	require.Equal(t, StateResult, snap.State)
	require.Equal(t, "plan for Two Sum", snap.Explanation)
	require.Empty(t, snap.ErrorMessage)
	require.Empty(t, snap.History)
	require.Equal(t, []string{"Two Sum"}, api.questions)

	// Editing keeps the result on screen.
	w.SetQuestion("Three Sum")
	require.Equal(t, StateResult, w.Snapshot().State)
}

func TestSubmit_EmptyQuestion(t *testing.T) {
	api := &stubAPI{}
	w := newWorkflow(api, Options{})

	w.SetQuestion("   ")
	err := w.Submit(context.Background(), TriggerShortcut)
	require.ErrorIs(t, err, ErrEmptyQuestion)

	snap := w.Snapshot()
	require.Equal(t, StateError, snap.State)
	require.Equal(t, msgEmptyQuestion, snap.ErrorMessage)
	require.Zero(t, api.analyzeCalls)
}

func TestSubmit_FailureKeepsQuestion(t *testing.T) {
	api := &stubAPI{analyzeErr: &apiclient.APIError{StatusCode: 500, Message: "Failed to analyze question. Please try again."}}
	w := newWorkflow(api, Options{})

	w.SetQuestion("Two Sum")
	require.Error(t, w.Submit(context.Background(), TriggerButton))

	snap := w.Snapshot()
	require.Equal(t, StateError, snap.State)
	require.Equal(t, "Failed to analyze question. Please try again.", snap.ErrorMessage)
	require.Equal(t, "Two Sum", snap.Question)

	// A retry from the error state is allowed.
	api.analyzeErr = nil
	require.NoError(t, w.Submit(context.Background(), TriggerButton))
	require.Equal(t, StateResult, w.Snapshot().State)
}

func TestSubmit_SingleFlightAcrossTriggers(t *testing.T) {
	const callers = 20
	api := &stubAPI{block: make(chan struct{}), entered: make(chan struct{}, callers)}
	w := newWorkflow(api, Options{})
	w.SetQuestion("Two Sum")

	triggers := []Trigger{TriggerButton, TriggerShortcut, TriggerVoice}
	results := make(chan error, callers)
	for i := range callers {
		go func() {
			results <- w.Submit(context.Background(), triggers[i%len(triggers)])
		}()
	}

	<-api.entered
	for range callers - 1 {
		require.ErrorIs(t, <-results, ErrAlreadyAnalyzing)
	}
	require.Equal(t, StateAnalyzing, w.Snapshot().State)

	close(api.block)
	require.NoError(t, <-results)
	require.EqualValues(t, 1, atomic.LoadInt32(&api.analyzeCalls))
}

func TestSubmit_IgnoresEditsAndResetWhileAnalyzing(t *testing.T) {
	api := &stubAPI{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	w := newWorkflow(api, Options{})
	w.SetQuestion("Two Sum")

	done := make(chan error, 1)
	go func() { done <- w.Submit(context.Background(), TriggerButton) }()
	<-api.entered

	w.SetQuestion("changed")
	w.Reset()
	require.Equal(t, "Two Sum", w.Snapshot().Question)
	require.Equal(t, StateAnalyzing, w.Snapshot().State)

	close(api.block)
	require.NoError(t, <-done)
}

func TestSubmit_AutoSavePrependsCreatedRecord(t *testing.T) {
	api := &stubAPI{}
	w := newWorkflow(api, Options{AutoSave: true})
	w.SetQuestion("Two Sum")

	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	snap := w.Snapshot()
	require.Equal(t, 1, api.createCalls)
	require.Equal(t, "saved-1", snap.SubmissionID)
	require.Len(t, snap.History, 1)
	require.Equal(t, "Two Sum", snap.History[0].Question)
}

func TestSubmit_ResponseSubmissionIDIsHonoured(t *testing.T) {
	api := &stubAPI{submissionID: "server-1"}
	w := newWorkflow(api, Options{AutoSave: true})
	w.SetQuestion("Two Sum")

	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	snap := w.Snapshot()
	require.Zero(t, api.createCalls)
	require.Len(t, snap.History, 1)
	require.Equal(t, "server-1", snap.History[0].ID)
}

func TestSave(t *testing.T) {
	api := &stubAPI{}
	w := newWorkflow(api, Options{})

	require.ErrorIs(t, w.Save(context.Background()), ErrNothingToSave)

	w.SetQuestion("Two Sum")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))
	require.NoError(t, w.Save(context.Background()))
	require.ErrorIs(t, w.Save(context.Background()), ErrAlreadySaved)

	snap := w.Snapshot()
	require.Equal(t, 1, api.createCalls)
	require.Len(t, snap.History, 1)
	require.Equal(t, "saved-1", snap.History[0].ID)
}

func TestSave_ConcurrentCallsCreateOneRecord(t *testing.T) {
	api := &stubAPI{}
	w := newWorkflow(api, Options{})
	w.SetQuestion("Two Sum")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	api.createBlock = make(chan struct{})
	api.createEntered = make(chan struct{}, 1)

	first := make(chan error, 1)
	go func() { first <- w.Save(context.Background()) }()
	<-api.createEntered

	require.ErrorIs(t, w.Save(context.Background()), ErrSaveInProgress)

	close(api.createBlock)
	require.NoError(t, <-first)

	snap := w.Snapshot()
	require.Equal(t, 1, api.createCalls)
	require.Len(t, snap.History, 1)
	require.Equal(t, "saved-1", snap.SubmissionID)
	require.ErrorIs(t, w.Save(context.Background()), ErrAlreadySaved)
}

func TestSave_RetryAfterFailure(t *testing.T) {
	api := &stubAPI{createErr: errors.New("down")}
	w := newWorkflow(api, Options{})
	w.SetQuestion("Two Sum")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	require.Error(t, w.Save(context.Background()))

	api.createErr = nil
	require.NoError(t, w.Save(context.Background()))
	require.Len(t, w.Snapshot().History, 1)
}

func TestSave_Failure(t *testing.T) {
	api := &stubAPI{createErr: errors.New("down")}
	w := newWorkflow(api, Options{})
	w.SetQuestion("Two Sum")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	require.Error(t, w.Save(context.Background()))
	snap := w.Snapshot()
	require.Equal(t, msgSaveFailed, snap.ErrorMessage)
	require.Equal(t, StateResult, snap.State)
	require.Empty(t, snap.History)
}

func TestReset(t *testing.T) {
	w := newWorkflow(&stubAPI{}, Options{})
	w.SetQuestion("Two Sum")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	w.Reset()
	snap := w.Snapshot()
	require.Equal(t, StateIdle, snap.State)
	require.Empty(t, snap.Question)
	require.Empty(t, snap.Explanation)

	w.SetQuestion("x")
	require.Equal(t, StateComposing, w.Snapshot().State)
}

func TestHistory(t *testing.T) {
	api := &stubAPI{listItems: []*entity.Submission{
		{ID: "b", Question: "newer", Explanation: "eb"},
		{ID: "a", Question: "older", Explanation: "ea"},
	}}
	w := newWorkflow(api, Options{HistoryLimit: 30})

	require.NoError(t, w.OpenHistory(context.Background()))
	snap := w.Snapshot()
	require.Equal(t, ViewHistory, snap.View)
	require.False(t, snap.HistoryLoading)
	require.Len(t, snap.History, 2)
	require.Equal(t, 30, api.lastListLimit)

	require.ErrorIs(t, w.SelectHistory("zzz"), ErrHistoryItemNotFound)

	require.NoError(t, w.SelectHistory("a"))
	snap = w.Snapshot()
	require.Equal(t, StateResult, snap.State)
	require.Equal(t, ViewAnalyze, snap.View)
	require.Equal(t, "older", snap.Question)
	require.Equal(t, "ea", snap.Explanation)
	require.ErrorIs(t, w.Save(context.Background()), ErrAlreadySaved)

	// A refetch replaces the list wholesale.
	api.listItems = []*entity.Submission{{ID: "c"}}
	require.NoError(t, w.OpenHistory(context.Background()))
	require.Len(t, w.Snapshot().History, 1)

	api.listErr = errors.New("down")
	require.Error(t, w.OpenHistory(context.Background()))
	snap = w.Snapshot()
	require.Equal(t, msgHistoryFailed, snap.HistoryError)
	require.Len(t, snap.History, 1)

	w.ShowAnalyze()
	require.Equal(t, ViewAnalyze, w.Snapshot().View)
}

func TestOnChange(t *testing.T) {
	w := newWorkflow(&stubAPI{}, Options{})

	var states []State
	w.OnChange(func(s Snapshot) { states = append(states, s.State) })

	w.SetQuestion("Two Sum")
	require.NoError(t, w.Submit(context.Background(), TriggerButton))

	require.Equal(t, []State{StateComposing, StateAnalyzing, StateResult}, states)
}
