package workflow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/futig/interview-assistant/internal/client/apiclient"
	"github.com/futig/interview-assistant/internal/entity"
	"go.uber.org/zap"
)

// API is the part of the assistant API the workflow drives.
type API interface {
	Analyze(ctx context.Context, question string) (*entity.AnalyzeResponse, error)
	ListSubmissions(ctx context.Context, limit int) ([]*entity.Submission, error)
	CreateSubmission(ctx context.Context, question, explanation string) (*entity.Submission, error)
}

type Options struct {
	AutoSave      bool
	TriggerPhrase string
	HistoryLimit  int
}

// Workflow owns the client state. Every mutation goes through its methods
// under one mutex; network calls run outside the lock, with StateAnalyzing
// acting as the single-flight guard for analyses.
type Workflow struct {
	api      API
	opts     Options
	detector *TriggerDetector
	logger   *zap.Logger
	now      func() time.Time

	mu             sync.Mutex
	state          State
	view           View
	question       string
	explanation    string
	errMsg         string
	submissionID   string
	saving         bool
	listening      bool
	history        []HistoryItem
	historyLoading bool
	historyErr     string
	onChange       func(Snapshot)
}

func New(api API, opts Options, logger *zap.Logger) *Workflow {
	if opts.TriggerPhrase == "" {
		opts.TriggerPhrase = "let me think"
	}
	return &Workflow{
		api:      api,
		opts:     opts,
		detector: NewTriggerDetector(opts.TriggerPhrase),
		logger:   logger,
		now:      time.Now,
	}
}

// OnChange registers fn to receive a snapshot after every state change. fn
// runs outside the workflow lock.
func (w *Workflow) OnChange(fn func(Snapshot)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workflow) snapshotLocked() Snapshot {
	history := make([]HistoryItem, len(w.history))
	copy(history, w.history)

	return Snapshot{
		State:          w.state,
		View:           w.view,
		Question:       w.question,
		Explanation:    w.explanation,
		ErrorMessage:   w.errMsg,
		SubmissionID:   w.submissionID,
		Listening:      w.listening,
		History:        history,
		HistoryLoading: w.historyLoading,
		HistoryError:   w.historyErr,
	}
}

// unlockAndNotify releases the lock and publishes the resulting state.
func (w *Workflow) unlockAndNotify() {
	snap := w.snapshotLocked()
	fn := w.onChange
	w.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

func (w *Workflow) SetQuestion(text string) {
	w.mu.Lock()
	if w.state == StateAnalyzing {
		w.mu.Unlock()
		return
	}
	w.setQuestionLocked(text)
	w.unlockAndNotify()
}

func (w *Workflow) setQuestionLocked(text string) {
	w.question = text

	switch w.state {
	case StateIdle, StateComposing:
		if strings.TrimSpace(text) == "" {
			w.state = StateIdle
		} else {
			w.state = StateComposing
		}
	}
}

func (w *Workflow) appendQuestionLocked(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if strings.TrimSpace(w.question) == "" {
		w.setQuestionLocked(text)
		return
	}
	w.setQuestionLocked(strings.TrimRight(w.question, " \t\n") + " " + text)
}

// Submit analyzes the current question. At most one analysis is in flight
// regardless of how many triggers fire.
func (w *Workflow) Submit(ctx context.Context, trigger Trigger) error {
	w.mu.Lock()
	if w.state == StateAnalyzing {
		w.mu.Unlock()
		return ErrAlreadyAnalyzing
	}

	question := strings.TrimSpace(w.question)
	if question == "" {
		w.state = StateError
		w.errMsg = msgEmptyQuestion
		w.unlockAndNotify()
		return ErrEmptyQuestion
	}

	w.state = StateAnalyzing
	w.view = ViewAnalyze
	w.explanation = ""
	w.errMsg = ""
	w.submissionID = ""
	w.unlockAndNotify()

	w.logger.Debug("submitting question", zap.String("trigger", string(trigger)), zap.Int("length", len(question)))

	resp, err := w.api.Analyze(ctx, question)

	w.mu.Lock()
	if err != nil {
		w.state = StateError
		w.errMsg = apiclient.UserMessage(err, msgAnalyzeFailed)
		w.unlockAndNotify()
		return err
	}

	w.state = StateResult
	w.explanation = resp.Analysis.Explanation
	if resp.SubmissionID != "" {
		w.submissionID = resp.SubmissionID
		w.prependLocked(HistoryItem{
			ID:          resp.SubmissionID,
			Question:    question,
			Explanation: resp.Analysis.Explanation,
			CreatedAt:   w.now(),
		})
	}
	autoSave := w.opts.AutoSave && w.submissionID == ""
	w.unlockAndNotify()

	if autoSave {
		if err := w.Save(ctx); err != nil {
			w.logger.Warn("auto-save failed", zap.Error(err))
		}
	}

	return nil
}

// Save persists the current result and prepends it to the history without
// refetching.
func (w *Workflow) Save(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StateResult {
		w.mu.Unlock()
		return ErrNothingToSave
	}
	if w.submissionID != "" {
		w.mu.Unlock()
		return ErrAlreadySaved
	}
	if w.saving {
		w.mu.Unlock()
		return ErrSaveInProgress
	}
	w.saving = true
	question, explanation := strings.TrimSpace(w.question), w.explanation
	w.mu.Unlock()

	sub, err := w.api.CreateSubmission(ctx, question, explanation)

	w.mu.Lock()
	w.saving = false
	if err != nil {
		w.errMsg = apiclient.UserMessage(err, msgSaveFailed)
		w.unlockAndNotify()
		return err
	}

	// Only link the record if the result on screen is still the one saved.
	if w.state == StateResult && w.explanation == explanation {
		w.submissionID = sub.ID
		w.errMsg = ""
	}
	w.prependLocked(historyItemFrom(sub))
	w.unlockAndNotify()
	return nil
}

func (w *Workflow) prependLocked(item HistoryItem) {
	for i, existing := range w.history {
		if existing.ID == item.ID {
			w.history = append(w.history[:i], w.history[i+1:]...)
			break
		}
	}
	w.history = append([]HistoryItem{item}, w.history...)
}

// Reset clears the composed question and any result or error.
func (w *Workflow) Reset() {
	w.mu.Lock()
	if w.state == StateAnalyzing {
		w.mu.Unlock()
		return
	}
	w.state = StateIdle
	w.question = ""
	w.explanation = ""
	w.errMsg = ""
	w.submissionID = ""
	w.unlockAndNotify()
}

// OpenHistory switches to the history view and replaces the list with the
// most recent submissions.
func (w *Workflow) OpenHistory(ctx context.Context) error {
	w.mu.Lock()
	w.view = ViewHistory
	w.historyLoading = true
	w.historyErr = ""
	limit := w.opts.HistoryLimit
	w.unlockAndNotify()

	items, err := w.api.ListSubmissions(ctx, limit)

	w.mu.Lock()
	w.historyLoading = false
	if err != nil {
		w.historyErr = apiclient.UserMessage(err, msgHistoryFailed)
		w.unlockAndNotify()
		return err
	}

	history := make([]HistoryItem, 0, len(items))
	for _, s := range items {
		history = append(history, historyItemFrom(s))
	}
	w.history = history
	w.unlockAndNotify()
	return nil
}

// SelectHistory shows a saved submission as the current result.
func (w *Workflow) SelectHistory(id string) error {
	w.mu.Lock()
	if w.state == StateAnalyzing {
		w.mu.Unlock()
		return ErrAlreadyAnalyzing
	}

	for _, item := range w.history {
		if item.ID != id {
			continue
		}
		w.question = item.Question
		w.explanation = item.Explanation
		w.submissionID = item.ID
		w.errMsg = ""
		w.state = StateResult
		w.view = ViewAnalyze
		w.unlockAndNotify()
		return nil
	}

	w.mu.Unlock()
	return ErrHistoryItemNotFound
}

func (w *Workflow) ShowAnalyze() {
	w.mu.Lock()
	w.view = ViewAnalyze
	w.unlockAndNotify()
}
