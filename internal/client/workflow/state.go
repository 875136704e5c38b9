package workflow

import (
	"errors"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
)

type State int

const (
	StateIdle State = iota
	StateComposing
	StateAnalyzing
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	case StateAnalyzing:
		return "analyzing"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

type View int

const (
	ViewAnalyze View = iota
	ViewHistory
)

// Trigger names what started an analysis.
type Trigger string

const (
	TriggerButton   Trigger = "button"
	TriggerShortcut Trigger = "shortcut"
	TriggerVoice    Trigger = "voice"
)

var (
	ErrAlreadyAnalyzing    = errors.New("an analysis is already in progress")
	ErrEmptyQuestion       = errors.New("question is empty")
	ErrHistoryItemNotFound = errors.New("history item not found")
	ErrNothingToSave       = errors.New("no analysis to save")
	ErrAlreadySaved        = errors.New("analysis is already saved")
	ErrSaveInProgress      = errors.New("save already in progress")
	ErrAlreadyListening    = errors.New("already listening")
)

const (
	msgEmptyQuestion   = "Please enter a question to analyze"
	msgAnalyzeFailed   = "Failed to analyze question. Please try again."
	msgSaveFailed      = "Failed to save submission"
	msgHistoryFailed   = "Failed to load history"
	msgMicrophoneError = "Speech recognition error"
)

// HistoryItem is one previously saved submission.
type HistoryItem struct {
	ID          string
	Question    string
	Explanation string
	CreatedAt   time.Time
}

func historyItemFrom(s *entity.Submission) HistoryItem {
	return HistoryItem{
		ID:          s.ID,
		Question:    s.Question,
		Explanation: s.Explanation,
		CreatedAt:   s.CreatedAt,
	}
}

// Snapshot is a point-in-time copy of the workflow state for rendering.
type Snapshot struct {
	State          State
	View           View
	Question       string
	Explanation    string
	ErrorMessage   string
	SubmissionID   string
	Listening      bool
	History        []HistoryItem
	HistoryLoading bool
	HistoryError   string
}
