package render

import (
	"strings"
	"testing"
	"time"

	"github.com/futig/interview-assistant/internal/client/workflow"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_StripsHTMLOutsideCode(t *testing.T) {
	r := New(false, "let me think")

	in := strings.Join([]string{
		"## Approach <script>alert(1)</script>",
		"Compare `a<b && c>d` in the loop & return.",
		"```",
		"if a<b { return <nil> }",
		"```",
		"<b>bold</b> text",
	}, "\n")

	out := r.Markdown(in)
	require.Contains(t, out, "## Approach")
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "`a<b && c>d`")
	require.Contains(t, out, "in the loop & return.")
	require.Contains(t, out, "if a<b { return <nil> }")
	require.Contains(t, out, "bold text")
	require.NotContains(t, out, "<b>")
}

func TestMarkdown_KeepsComparisonsInProse(t *testing.T) {
	r := New(false, "let me think")

	for _, line := range []string{
		"Compare a<b then swap.",
		"Loop while i<n and j>0, then return the answer.",
		"Use x <= y && y >= z to bound the window.",
		"Results are stored as map<string, int>.",
	} {
		require.Equal(t, line, r.Markdown(line))
	}
}

func TestMarkdown_StripsTagsWithAttributes(t *testing.T) {
	out := New(false, "let me think").Markdown(`See <a href="https://x.test" target='_blank'>docs</a><br/> now`)
	require.Equal(t, "See docs now", out)
}

func TestMarkdown_ColorHeadings(t *testing.T) {
	out := New(true, "let me think").Markdown("# Title\nbody")
	require.True(t, strings.HasPrefix(out, ansiBold+"# Title"+ansiReset))
	require.True(t, strings.HasSuffix(out, "\nbody"))
}

func TestSnapshot(t *testing.T) {
	r := New(false, "let me think")

	out := r.Snapshot(workflow.Snapshot{State: workflow.StateError, ErrorMessage: "Question cannot be empty"})
	require.Equal(t, "Error: Question cannot be empty\n", out)

	out = r.Snapshot(workflow.Snapshot{State: workflow.StateResult, Explanation: "# Plan", SubmissionID: "abc"})
	require.Contains(t, out, "# Plan")
	require.Contains(t, out, "saved as abc")

	require.Contains(t, r.Snapshot(workflow.Snapshot{State: workflow.StateAnalyzing}), "Analyzing")
}

func TestSnapshot_ListeningShowsConfiguredPhrase(t *testing.T) {
	out := New(false, "over to you").Snapshot(workflow.Snapshot{State: workflow.StateIdle, Listening: true})
	require.Equal(t, "Listening... say \"over to you\" to analyze\n", out)
	require.NotContains(t, out, "let me think")
}

func TestHistory(t *testing.T) {
	r := New(false, "let me think")

	require.Equal(t, "No saved analyses yet.\n", r.History(workflow.Snapshot{}))
	require.Contains(t, r.History(workflow.Snapshot{HistoryLoading: true}), "Loading")

	long := strings.Repeat("word ", 30)
	out := r.History(workflow.Snapshot{History: []workflow.HistoryItem{
		{ID: "a", Question: "Two\nSum", CreatedAt: time.Now()},
		{ID: "b", Question: long, CreatedAt: time.Now()},
	}})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "  1. "))
	require.True(t, strings.HasSuffix(lines[0], "Two Sum"))
	require.True(t, strings.HasSuffix(lines[1], "…"))
}
