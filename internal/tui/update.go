package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"goline/internal/document"
	"goline/internal/outline"
	"goline/internal/span"
	"goline/internal/watcher"
)

// Message types for the Bubbletea update loop
type fileChangedMsg watcher.Event
type watchErrMsg struct{ err error }

// watchFileCmd returns a Bubbletea command that waits for the next external
// change to the open file.
func watchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			return fileChangedMsg(ev)
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case fileChangedMsg:
		return handleFileChanged(m, msg)
	case watchErrMsg:
		m.status = fmt.Sprintf("watch error: %v", msg.err)
		return m, rearmWatch(m)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	default:
		var cmd tea.Cmd
		switch m.ActiveView {
		case ViewGoto:
			m.gotoIn, cmd = m.gotoIn.Update(msg)
		case ViewInsert:
			m.textIn, cmd = m.textIn.Update(msg)
		case ViewOutline:
			m.outline, cmd = m.outline.Update(msg)
		default:
			m.vp, cmd = m.vp.Update(msg)
		}
		return m, cmd
	}
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	k := msg.String()

	switch m.ActiveView {
	case ViewQuitting:
		// If quitting, ignore further input
		return m, nil

	case ViewBrowse:
		return handleBrowseKey(m, k)

	case ViewGoto:
		switch k {
		case "esc":
			m.gotoIn.Blur()
			m.gotoIn.SetValue("")
			m.ActiveView = ViewBrowse
			return m, nil
		case "enter":
			return commitGoto(m)
		}
		var cmd tea.Cmd
		m.gotoIn, cmd = m.gotoIn.Update(msg)
		return m, cmd

	case ViewInsert:
		switch k {
		case "esc":
			m.textIn.Blur()
			m.textIn.Reset()
			m.ActiveView = ViewBrowse
			return m, nil
		case "ctrl+d":
			return commitInsert(m)
		}
		var cmd tea.Cmd
		m.textIn, cmd = m.textIn.Update(msg)
		return m, cmd

	case ViewConfirmDelete:
		switch k {
		case "y", "enter":
			return commitDelete(m)
		case "n", "esc":
			m.ActiveView = ViewBrowse
			m.status = ""
		}
		return m, nil

	case ViewConfirmQuit:
		switch k {
		case "y":
			m.ActiveView = ViewQuitting
			return m, tea.Quit
		case "s":
			m2, _ := saveDocument(m)
			m2.ActiveView = ViewQuitting
			return m2, tea.Quit
		case "n", "esc":
			m.ActiveView = ViewBrowse
			m.status = ""
		}
		return m, nil

	case ViewOutline:
		switch k {
		case "esc":
			m.ActiveView = ViewBrowse
			return m, nil
		case "enter":
			return jumpToHeading(m)
		}
		var cmd tea.Cmd
		m.outline, cmd = m.outline.Update(msg)
		return m, cmd
	}
	return m, nil
}

func handleBrowseKey(m model, k string) (model, tea.Cmd) {
	switch k {
	case "ctrl+c":
		m.ActiveView = ViewQuitting
		return m, tea.Quit
	case "q":
		if m.dirty {
			m.ActiveView = ViewConfirmQuit
			return m, nil
		}
		m.ActiveView = ViewQuitting
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return syncViewport(m), nil
	case "down", "j":
		if m.cursor < m.doc.Len()-1 {
			m.cursor++
		}
		return syncViewport(m), nil
	case "g":
		m.ActiveView = ViewGoto
		m.gotoIn.SetValue("")
		return m, m.gotoIn.Focus()
	case "G":
		m.cursor = m.doc.Len() - 1
		return syncViewport(clampCursor(m)), nil
	case "i": // insert after the cursor line
		anchor := m.cursor + 1
		if m.doc.Len() == 0 {
			anchor = 0
		}
		return openInsert(m, anchor)
	case "I": // insert before the cursor line
		return openInsert(m, m.cursor)
	case "A": // insert after the last line
		return openInsert(m, m.doc.Len())
	case "d":
		if m.doc.Len() == 0 {
			m.status = "nothing to delete"
			return m, nil
		}
		m.ActiveView = ViewConfirmDelete
		return m, nil
	case "o":
		return openOutline(m)
	case "s":
		return saveDocument(m)
	case "r":
		return reloadDocument(m)
	}
	return m, nil
}

func openInsert(m model, anchor int) (model, tea.Cmd) {
	if anchor > m.doc.Len() {
		anchor = m.doc.Len()
	}
	m.insertAt = anchor
	m.ActiveView = ViewInsert
	m.textIn.Reset()
	return m, m.textIn.Focus()
}

func commitGoto(m model) (model, tea.Cmd) {
	raw := m.gotoIn.Value()
	m.gotoIn.Blur()
	m.gotoIn.SetValue("")
	m.ActiveView = ViewBrowse

	n, err := span.ParseLineNumber(raw)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if n > m.doc.Len() {
		n = m.doc.Len()
	}
	if n > 0 {
		m.cursor = n - 1
	}
	m.status = ""
	return syncViewport(m), nil
}

// commitInsert splices the typed lines at the anchor captured when the
// insert view opened. Typed text gets a final newline so a mid-document
// insert cannot glue itself onto the following line.
func commitInsert(m model) (model, tea.Cmd) {
	text := m.textIn.Value()
	m.textIn.Blur()
	m.textIn.Reset()
	m.ActiveView = ViewBrowse
	if text == "" {
		m.status = ""
		return m, nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	lines := document.SplitText(text)
	m.doc.Insert(m.insertAt, lines)
	m.dirty = true
	m.cursor = m.insertAt + len(lines) - 1
	m.status = fmt.Sprintf("inserted %d lines after line %d", len(lines), m.insertAt)
	return syncViewport(clampCursor(m)), nil
}

func commitDelete(m model) (model, tea.Cmd) {
	r := span.New(m.cursor+1, m.cursor+1)
	m.doc.Delete(r)
	m.dirty = true
	m.ActiveView = ViewBrowse
	m.status = fmt.Sprintf("deleted %s", r)
	return syncViewport(clampCursor(m)), nil
}

func saveDocument(m model) (model, tea.Cmd) {
	if err := m.doc.Save(m.store); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.dirty = false
	m.externalEdit = false
	m.lastSave = m.clk.Now()
	m.status = fmt.Sprintf("saved at %s", m.lastSave.Format("15:04:05"))
	return m, nil
}

func reloadDocument(m model) (model, tea.Cmd) {
	doc, err := document.Load(m.store, m.doc.Path())
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return m, nil
	}
	m.doc = doc
	m.dirty = false
	m.externalEdit = false
	m.status = "reloaded from disk"
	return syncViewport(clampCursor(m)), nil
}

func openOutline(m model) (model, tea.Cmd) {
	headings := outline.Scan(m.doc.Content())
	if len(headings) == 0 {
		m.status = "no headings found"
		return m, nil
	}
	items := make([]list.Item, len(headings))
	for i, h := range headings {
		items[i] = headingItem{heading: h}
	}
	m.outline.SetItems(items)
	m.outline.Select(0)
	m.ActiveView = ViewOutline
	return m, nil
}

func jumpToHeading(m model) (model, tea.Cmd) {
	item, ok := m.outline.SelectedItem().(headingItem)
	m.ActiveView = ViewBrowse
	if !ok {
		return m, nil
	}
	m.cursor = item.heading.Line - 1
	m.status = ""
	return syncViewport(clampCursor(m)), nil
}

func handleFileChanged(m model, msg fileChangedMsg) (model, tea.Cmd) {
	cmd := rearmWatch(m)
	// Our own save lands here too; ignore the echo.
	if !m.lastSave.IsZero() && msg.At.Sub(m.lastSave) < time.Second {
		return m, cmd
	}
	m.externalEdit = true
	m.status = "changed on disk (r reloads, s overwrites)"
	return m, cmd
}

func rearmWatch(m model) tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return watchFileCmd(m.watcher)
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.vp.Width = msg.Width
	m.vp.Height = max(msg.Height-3, 3)
	m.textIn.SetWidth(max(msg.Width-4, 10))
	m.outline.SetSize(msg.Width, max(msg.Height-4, 5))
	return syncViewport(m), nil
}
