// Package studio implements the interactive creative studio: a form
// for campaign inputs, one generation request per submit, and a
// rendered result view, looping until the user quits.
package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"

	"adcraft/internal/engine"
	"adcraft/internal/history"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)

// Generator produces a creative for a generation request.
type Generator interface {
	Generate(ctx context.Context, req engine.GenerateRequest) (*engine.GenerateResponse, error)
}

// Runner drives the studio loop against a generator. A nil journal
// disables history.
type Runner struct {
	client  Generator
	journal *history.Journal[history.Record]
}

func NewRunner(client Generator, journal *history.Journal[history.Record]) *Runner {
	return &Runner{client: client, journal: journal}
}

// Run loops form, submit, render until the user declines another
// round or aborts the form.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Println(headerStyle.Render("🎨 AdCraft Creative Studio"))

	state := State{}
	for {
		inputs := state.Inputs
		if err := newForm(&inputs).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		state = Reduce(state, InputChanged{Inputs: inputs})

		seq := state.Seq + 1
		state = Reduce(state, SubmitStarted{Seq: seq})

		var (
			res    *engine.GenerateResponse
			genErr error
		)
		_ = spinner.New().
			Title("Generating creative...").
			Action(func() {
				res, genErr = r.client.Generate(ctx, engine.GenerateRequest{
					ProgramName:    inputs.ProgramName,
					TargetAudience: inputs.TargetAudience,
					Localize:       inputs.Localize,
				})
			}).
			Run()

		if genErr != nil {
			state = Reduce(state, SubmitFailed{Seq: seq, Msg: genErr.Error()})
		} else {
			state = Reduce(state, SubmitSucceeded{Seq: seq, Result: res})
		}

		switch state.Phase {
		case PhaseSucceeded:
			fmt.Println(RenderResult(state.Result))
			r.record(state)
		case PhaseFailed:
			fmt.Println(RenderError(state.Err))
		}

		var again bool
		if err := huh.NewConfirm().
			Title("Generate another?").
			Value(&again).
			Run(); err != nil || !again {
			return nil
		}
		fmt.Println()
	}
}

func (r *Runner) record(s State) {
	if r.journal == nil {
		return
	}
	rec := history.Record{
		Timestamp:        time.Now(),
		ProgramName:      s.Inputs.ProgramName,
		TargetAudience:   s.Inputs.TargetAudience,
		Localized:        s.Inputs.Localize,
		AdCopy1:          s.Result.AdCopy1,
		AdCopy2:          s.Result.AdCopy2,
		CreativeBrief:    s.Result.CreativeBrief,
		PerformanceScore: s.Result.PerformanceScore,
	}
	if err := r.journal.Append(rec); err != nil {
		slog.Warn("Failed to record history", "error", err)
	}
}
