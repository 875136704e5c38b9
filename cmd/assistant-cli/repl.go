package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/futig/interview-assistant/internal/client/render"
	"github.com/futig/interview-assistant/internal/client/workflow"
)

const helpText = `Type your question; lines are appended to it.
  .            analyze (shortcut)
  /send        analyze
  /save        save the current analysis
  /reset       clear question and result
  /history     list saved analyses
  /open N      show history item N
  /show        show the current question and result
  /voice       dictate; say the trigger phrase to analyze, /stop to end
  /quit        exit`

type repl struct {
	wf          *workflow.Workflow
	render      *render.Renderer
	out         io.Writer
	lines       <-chan string
	interactive bool
	trigger     string
}

func (r *repl) run(ctx context.Context) {
	r.wf.OnChange(func(s workflow.Snapshot) {
		if s.State == workflow.StateAnalyzing {
			fmt.Fprint(r.out, r.render.Snapshot(s))
		}
	})

	fmt.Fprintln(r.out, helpText)

	for {
		r.prompt()

		select {
		case <-ctx.Done():
			return
		case line, ok := <-r.lines:
			if !ok {
				return
			}
			if quit := r.handle(ctx, line); quit {
				return
			}
		}
	}
}

func (r *repl) prompt() {
	if r.interactive {
		fmt.Fprint(r.out, "> ")
	}
}

func (r *repl) handle(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Fprintln(r.out, helpText)
	case ".":
		r.submit(ctx, workflow.TriggerShortcut)
	case "/send":
		r.submit(ctx, workflow.TriggerButton)
	case "/save":
		if err := r.wf.Save(ctx); err != nil && !isReported(err) {
			fmt.Fprintln(r.out, err)
		}
		r.show()
	case "/reset":
		r.wf.Reset()
		fmt.Fprintln(r.out, "Cleared.")
	case "/history":
		_ = r.wf.OpenHistory(ctx)
		fmt.Fprint(r.out, r.render.History(r.wf.Snapshot()))
	case "/open":
		r.open(arg)
	case "/show":
		r.wf.ShowAnalyze()
		s := r.wf.Snapshot()
		if s.Question != "" {
			fmt.Fprintf(r.out, "Question: %s\n", s.Question)
		}
		r.show()
	case "/voice":
		r.listen(ctx)
	default:
		s := r.wf.Snapshot()
		if s.Question == "" {
			r.wf.SetQuestion(line)
		} else {
			r.wf.SetQuestion(s.Question + "\n" + line)
		}
	}

	return false
}

func (r *repl) submit(ctx context.Context, trigger workflow.Trigger) {
	_ = r.wf.Submit(ctx, trigger)
	r.show()
}

func (r *repl) open(arg string) {
	n, err := strconv.Atoi(arg)
	history := r.wf.Snapshot().History
	if err != nil || n < 1 || n > len(history) {
		fmt.Fprintln(r.out, "Usage: /open N, where N is a number from /history")
		return
	}

	if err := r.wf.SelectHistory(history[n-1].ID); err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	s := r.wf.Snapshot()
	fmt.Fprintf(r.out, "Question: %s\n", s.Question)
	r.show()
}

func (r *repl) listen(ctx context.Context) {
	fmt.Fprintf(r.out, "Dictating. Say %q to analyze, /stop to finish.\n", r.trigger)
	_ = r.wf.Listen(ctx, &lineVoice{lines: r.lines})
	r.show()
}

func (r *repl) show() {
	fmt.Fprint(r.out, r.render.Snapshot(r.wf.Snapshot()))
}

// isReported tells whether the workflow already put err into the snapshot.
func isReported(err error) bool {
	return !errors.Is(err, workflow.ErrNothingToSave) &&
		!errors.Is(err, workflow.ErrAlreadySaved) &&
		!errors.Is(err, workflow.ErrSaveInProgress)
}

// lineVoice treats each typed line as a final transcript.
type lineVoice struct {
	lines <-chan string
}

func (v *lineVoice) Stream(ctx context.Context) (<-chan workflow.Transcript, error) {
	out := make(chan workflow.Transcript)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case line, ok := <-v.lines:
				if !ok || strings.TrimSpace(line) == "/stop" {
					return
				}
				select {
				case out <- workflow.Transcript{Text: line, Final: true}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
