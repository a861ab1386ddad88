// docpane - a documentation popup engine for completion menus.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/jeranaias/docpane/internal/config"
	"github.com/jeranaias/docpane/internal/popup"
	"github.com/jeranaias/docpane/internal/ui/components"
	"github.com/jeranaias/docpane/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async config reloads
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docpane: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	m := newModel(cfg, width, height)
	p := tea.NewProgram(m, tea.WithAltScreen())

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	if watcher := startConfigWatcher(); watcher != nil {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "docpane: %v\n", err)
		os.Exit(1)
	}
}

// startConfigWatcher reloads style changes into the running program.
func startConfigWatcher() *config.Watcher {
	path, err := config.ConfigPath()
	if err != nil {
		return nil
	}
	watcher, err := config.NewWatcher(path, 250*time.Millisecond, func(cfg *config.Config) {
		programMu.Lock()
		defer programMu.Unlock()
		if programRef != nil {
			programRef.Send(configReloadedMsg{cfg: cfg})
		}
	})
	if err != nil {
		return nil
	}
	if err := watcher.Watch(); err != nil {
		watcher.Close()
		return nil
	}
	return watcher
}

// configReloadedMsg carries a freshly loaded config into Update.
type configReloadedMsg struct {
	cfg *config.Config
}

// =============================================================================
// KEY BINDINGS
// =============================================================================

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Close      key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Next:       key.NewBinding(key.WithKeys("down", "tab")),
	Prev:       key.NewBinding(key.WithKeys("up", "shift+tab")),
	ScrollDown: key.NewBinding(key.WithKeys("ctrl+d")),
	ScrollUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	Close:      key.NewBinding(key.WithKeys("esc")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// =============================================================================
// DEMO MODEL
// =============================================================================

type model struct {
	cfg        *config.Config
	theme      *styles.Theme
	menu       *components.CompletionMenu
	surface    *components.TermSurface
	controller *popup.Controller
	queue      *popup.Queue

	width  int
	height int
}

func newModel(cfg *config.Config, width, height int) *model {
	theme := styles.NewTheme()
	surface := components.NewTermSurface(theme)
	surface.SetScreenSize(width, height)
	queue := popup.NewQueue()

	m := &model{
		cfg:     cfg,
		theme:   theme,
		menu:    components.NewCompletionMenu(theme, cfg.Menu),
		surface: surface,
		queue:   queue,
		width:   width,
		height:  height,
	}
	m.controller = popup.NewController(surface, queue, func() *config.Style {
		return m.cfg.Doc
	})

	m.menu.SetItems(sampleItems())
	m.menu.SetPosition(2, width/2-cfg.Menu.Width/2)
	return m
}

func (m *model) Init() tea.Cmd {
	m.openDocs()
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.SetScreenSize(msg.Width, msg.Height)
		m.menu.SetPosition(2, msg.Width/2-m.cfg.Menu.Width/2)
		m.openDocs()

	case configReloadedMsg:
		m.cfg = msg.cfg
		m.openDocs()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.menu.Next()
			m.openDocs()
		case key.Matches(msg, keys.Prev):
			m.menu.Prev()
			m.openDocs()
		case key.Matches(msg, keys.ScrollDown):
			m.controller.Scroll(4)
		case key.Matches(msg, keys.ScrollUp):
			m.controller.Scroll(-4)
		case key.Matches(msg, keys.Close):
			m.controller.Close()
		}
	}

	// End of this event-loop turn: run deferred work after all surface
	// mutations above have landed.
	m.queue.Drain()
	return m, nil
}

// openDocs points the documentation popup at the current selection.
func (m *model) openDocs() {
	selected := m.menu.Selected()
	if selected == nil {
		m.controller.Close()
		return
	}
	anchor := m.menu.Anchor()
	m.controller.Open(selected, &anchor)
}

func (m *model) View() string {
	menuView := m.menu.View()
	docView := m.surface.View()

	var body string
	switch {
	case docView == "":
		body = menuView
	case m.surface.Col() >= m.menu.Anchor().Col:
		body = lipgloss.JoinHorizontal(lipgloss.Top, menuView, docView)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, docView, menuView)
	}

	hint := m.theme.MenuHint.Render("up/down: select   ctrl+d/u: scroll docs   esc: close   q: quit")
	return strings.Repeat("\n", 2) + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body) + "\n\n" + hint
}

// =============================================================================
// SAMPLE DATA
// =============================================================================

// sampleItems builds a handful of entries with Markdown documentation the
// sanitizer gets to chew on.
func sampleItems() []*components.Item {
	samples := []struct {
		label string
		kind  string
		docs  []string
	}{
		{"open", "command", []string{
			"**open** shows the documentation popup for an entry.",
			"",
			"```go\ncontroller.Open(entry, &anchor)\n```",
			"Reuses the buffer when the *entry identity* is unchanged.",
		}},
		{"close", "command", []string{
			"**close** hides the popup and clears the cached entry.",
			"> Idempotent: closing twice is fine.",
		}},
		{"scroll", "command", []string{
			"**scroll** moves the popup viewport by a line delta.",
			"- clamps to the content",
			"- runs on the next event-loop turn",
			"See [the scheduler](https://example.com/docs) for details.",
		}},
		{"visible", "query", []string{
			"**visible** reports whether the popup is shown \\(pure query\\).",
		}},
	}

	items := make([]*components.Item, len(samples))
	for i, s := range samples {
		items[i] = &components.Item{
			Identity: uuid.NewString(),
			Label:    s.label,
			Kind:     s.kind,
			Docs:     s.docs,
		}
	}
	return items
}
