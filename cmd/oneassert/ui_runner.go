package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"oneassert/internal/driver"
	"oneassert/internal/ui"
)

type expandOutcome struct {
	results []*driver.ExpandResult
	written int
	err     error
}

// runExpandDirWithUI drives a directory expansion behind a Bubble Tea
// progress view. Outputs are written as part of the same run so the
// write stage shows up in the UI.
func runExpandDirWithUI(ctx context.Context, title string, files []string, dir string, opts driver.ExpandOptions, jobs int) ([]*driver.ExpandResult, int, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	go func() {
		results, err := driver.ExpandDir(ctx, dir, opts, jobs, events)
		written := 0
		if err == nil {
			written = driver.WriteOutputs(results, events)
		}
		outcomeCh <- expandOutcome{results: results, written: written, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, outcome.written, uiErr
	}
	return outcome.results, outcome.written, outcome.err
}
