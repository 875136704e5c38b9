package workflow

import (
	"context"
	"errors"
	"strings"
)

// Transcript is one chunk of recognised speech. A chunk with Err set ends the
// stream.
type Transcript struct {
	Text  string
	Final bool
	Err   error
}

// VoiceSource produces transcripts until ctx is cancelled or the source is
// exhausted, then closes the channel.
type VoiceSource interface {
	Stream(ctx context.Context) (<-chan Transcript, error)
}

// Listen dictates into the question. Final chunks are appended; a chunk
// containing the trigger phrase stops listening and submits, unless the
// question is still empty.
func (w *Workflow) Listen(ctx context.Context, source VoiceSource) error {
	w.mu.Lock()
	if w.listening {
		w.mu.Unlock()
		return ErrAlreadyListening
	}
	w.listening = true
	w.unlockAndNotify()

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := source.Stream(streamCtx)
	if err != nil {
		w.stopListening(err)
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.stopListening(nil)
			return ctx.Err()
		case chunk, ok := <-stream:
			if !ok {
				w.stopListening(nil)
				return nil
			}

			if chunk.Err != nil {
				w.stopListening(chunk.Err)
				return chunk.Err
			}

			remainder, triggered := w.detector.Detect(chunk.Text)
			if triggered {
				w.mu.Lock()
				if w.state != StateAnalyzing {
					w.appendQuestionLocked(remainder)
				}
				w.listening = false
				empty := strings.TrimSpace(w.question) == ""
				w.unlockAndNotify()
				cancel()

				// Nothing dictated yet: the phrase alone ends listening.
				if empty {
					return nil
				}

				err := w.Submit(ctx, TriggerVoice)
				if errors.Is(err, ErrAlreadyAnalyzing) {
					return nil
				}
				return err
			}

			if chunk.Final {
				w.mu.Lock()
				if w.state != StateAnalyzing {
					w.appendQuestionLocked(chunk.Text)
				}
				w.unlockAndNotify()
			}
		}
	}
}

func (w *Workflow) stopListening(cause error) {
	w.mu.Lock()
	w.listening = false
	if cause != nil {
		w.errMsg = msgMicrophoneError + ": " + cause.Error()
	}
	w.unlockAndNotify()
}
