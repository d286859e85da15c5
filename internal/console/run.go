package console

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/logging"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("console requires an interactive terminal")

// IsTerminal reports whether both files are attached to a terminal.
func IsTerminal(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// Run shows the operator console until the user quits or ctx is done.
func Run(ctx context.Context, store access.OperatorStore, refresh time.Duration, in io.Reader, out io.Writer) error {
	log := logging.FromContext(ctx)
	p := tea.NewProgram(newModel(store, refresh),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	log.Debug("console started", "refresh", refresh)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
