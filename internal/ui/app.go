package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ebrowse/internal/logic"
)

// Run browses source in the terminal until the user quits. It returns the
// error that stopped the browser, if any.
func Run(ctx context.Context, source logic.PackageSource, opts ...tea.ProgramOption) error {
	log.Info("setting up terminal interface")

	model, err := NewModel(source)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	log.Debug("entering terminal loop")
	final, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) || (errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		log.Info("interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if m, ok := final.(*Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
