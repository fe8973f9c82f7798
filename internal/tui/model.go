package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"goline/internal/clock"
	"goline/internal/document"
	"goline/internal/outline"
	"goline/internal/watcher"
)

// View identifies which screen owns the keyboard.
type View int

const (
	ViewBrowse View = iota
	ViewGoto
	ViewInsert
	ViewConfirmDelete
	ViewConfirmQuit
	ViewOutline
	ViewQuitting
)

// headingItem adapts an outline heading for the list widget.
type headingItem struct {
	heading outline.Heading
}

func (h headingItem) Title() string {
	indent := strings.Repeat("  ", h.heading.Level-1)
	return fmt.Sprintf("%4d: %s%s", h.heading.Line, indent, h.heading.Title)
}
func (h headingItem) Description() string { return "" }
func (h headingItem) FilterValue() string { return h.heading.Title }

// model is the Bubbletea model for the interactive line editor.
type model struct {
	ActiveView View

	doc    *document.Document
	store  document.Store
	cursor int // 0-based index of the selected line

	vp       viewport.Model
	gotoIn   textinput.Model
	textIn   textarea.Model
	outline  list.Model
	insertAt int // anchor captured when the insert view opens

	dirty        bool
	externalEdit bool
	lastSave     time.Time
	status       string

	clk     clock.Clock
	watcher *watcher.Watcher
	height  int // terminal height for dynamic resizing
	width   int // terminal width for dynamic resizing
}

// InitialModel creates the initial TUI model around a loaded document.
func InitialModel(doc *document.Document, store document.Store, clk clock.Clock, w *watcher.Watcher) model {
	defaultWidth := 80
	defaultHeight := 24

	vp := viewport.New(defaultWidth, defaultHeight-3)

	gotoIn := textinput.New()
	gotoIn.Prompt = "go to line: "
	gotoIn.CharLimit = 10

	textIn := textarea.New()
	textIn.Placeholder = "new lines"
	textIn.SetWidth(defaultWidth - 4)
	textIn.SetHeight(6)

	listDelegate := list.NewDefaultDelegate()
	listDelegate.ShowDescription = false
	headings := list.New(nil, listDelegate, defaultWidth, defaultHeight-4)
	headings.Title = "Headings"
	headings.SetShowStatusBar(false)

	m := model{
		ActiveView: ViewBrowse,
		doc:        doc,
		store:      store,
		vp:         vp,
		gotoIn:     gotoIn,
		textIn:     textIn,
		outline:    headings,
		clk:        clk,
		watcher:    w,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	return syncViewport(m)
}

// clampCursor keeps the cursor on an existing line after edits shrink the
// document.
func clampCursor(m model) model {
	if m.doc.Len() == 0 {
		m.cursor = 0
		return m
	}
	if m.cursor > m.doc.Len()-1 {
		m.cursor = m.doc.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// syncViewport rebuilds the rendered document and keeps the cursor line in
// the visible window.
func syncViewport(m model) model {
	m.vp.SetContent(renderDocument(m))
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	}
	if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
	return m
}
