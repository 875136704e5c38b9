package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/futig/interview-assistant/internal/builder"
	"github.com/futig/interview-assistant/internal/client/render"
	"github.com/futig/interview-assistant/internal/client/workflow"
	pkglogger "github.com/futig/interview-assistant/internal/pkg/logger"
	"golang.org/x/term"
)

const historyLimit = 30

func main() {
	cfg, client, logger, err := builder.BuildClient()
	if err != nil {
		log.Fatal("Failed to build client:", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = pkglogger.WithLogger(ctx, logger)

	wf := workflow.New(client, workflow.Options{
		AutoSave:      cfg.AutoSave,
		TriggerPhrase: cfg.TriggerPhrase,
		HistoryLimit:  historyLimit,
	}, logger)

	r := &repl{
		wf:          wf,
		render:      render.New(term.IsTerminal(int(os.Stdout.Fd())), cfg.TriggerPhrase),
		out:         os.Stdout,
		lines:       readLines(ctx, os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		trigger:     cfg.TriggerPhrase,
	}

	r.run(ctx)
}
