package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"goline/internal/clock"
	"goline/internal/document"
	"goline/internal/watcher"
)

// Init returns the initial command: waiting for external file changes when
// a watcher could be started.
func (m model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return watchFileCmd(m.watcher)
}

// Run opens the interactive editor on the file at path. Every change goes
// through the same document splices the one-shot commands use; nothing
// reaches disk until the session saves.
func Run(path string, store document.Store) error {
	doc, err := document.Load(store, path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	clk := clock.RealClock{}
	// A file that cannot be watched is still editable; the session just
	// loses the changed-on-disk warning.
	w, err := watcher.New(path, clk)
	if err == nil {
		if startErr := w.Start(); startErr != nil {
			w = nil
		}
	} else {
		w = nil
	}

	m := InitialModel(doc, store, clk, w)
	p := tea.NewProgram(&teaModelAdapter{m})

	_, err = p.Run()
	if w != nil {
		w.Stop()
	}
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update
// and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
