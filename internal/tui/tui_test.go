package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tatianab/escape-room/internal/engine"
)

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return got
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func enter(t *testing.T, m model) model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// submit types text, presses Enter and dismisses every modal that follows.
func submit(t *testing.T, m model, text string) model {
	t.Helper()
	m = enter(t, typeText(t, m, text))
	for len(m.ui.modals) > 0 {
		m = enter(t, m)
	}
	return m
}

func TestWelcomeScreen(t *testing.T) {
	m := NewModel(zerolog.Nop())

	view := m.View()
	if !strings.Contains(view, "Welcome to the Escape Room!") {
		t.Fatalf("expected welcome title, got %q", view)
	}
	if !strings.Contains(view, "Start Game") {
		t.Fatalf("expected start button, got %q", view)
	}
	if len(m.inputs) != 0 {
		t.Fatalf("expected no inputs on welcome screen, got %d", len(m.inputs))
	}
}

func TestPlayThroughToEscape(t *testing.T) {
	m := enter(t, NewModel(zerolog.Nop()))
	if !strings.Contains(m.View(), "Room 1") {
		t.Fatalf("expected room 1, got %q", m.View())
	}

	for _, a := range []string{"bank", "32", "yellow red green blue", "key", "carrot"} {
		m = submit(t, m, a)
	}
	if m.ctrl.Phase() != engine.PhaseFinal {
		t.Fatalf("expected final door, got %s", m.ctrl.Phase())
	}
	if !strings.Contains(m.View(), "- key") {
		t.Errorf("expected key in inventory panel, got %q", m.View())
	}

	m = submit(t, m, "Freedom")
	view := m.View()
	if !strings.Contains(view, "Score: 5 out of 5") || !strings.Contains(view, "You escaped!") {
		t.Fatalf("expected escaped end screen, got %q", view)
	}
	if !strings.Contains(view, "Play Again") {
		t.Fatalf("expected play again button, got %q", view)
	}
}

func TestHintModalBlocksInput(t *testing.T) {
	m := enter(t, NewModel(zerolog.Nop()))

	m = enter(t, typeText(t, m, "tree"))
	if len(m.ui.modals) != 1 {
		t.Fatalf("expected hint modal, got %d modals", len(m.ui.modals))
	}
	if !strings.Contains(m.View(), "Hint: It's a place, not a plant.") {
		t.Fatalf("expected hint text, got %q", m.View())
	}

	m = typeText(t, m, "ignored")
	m = enter(t, m)
	if len(m.ui.modals) != 0 {
		t.Fatalf("expected modal to be dismissed, got %d", len(m.ui.modals))
	}
	if got := m.inputs[0].Value(); got != "" {
		t.Fatalf("expected input to be reset and typing ignored, got %q", got)
	}
	if !strings.Contains(m.View(), "Room 1") {
		t.Fatalf("expected to stay in room 1, got %q", m.View())
	}
}

func TestEliminatedThenPlayAgain(t *testing.T) {
	m := enter(t, NewModel(zerolog.Nop()))
	m = submit(t, m, "tree")
	m = submit(t, m, "forest")

	view := m.View()
	if !strings.Contains(view, "Score: 0 out of 5") || !strings.Contains(view, "You got trapped!") {
		t.Fatalf("expected trapped end screen, got %q", view)
	}

	m = enter(t, m)
	if !strings.Contains(m.View(), "Room 1") {
		t.Fatalf("expected restart into room 1, got %q", m.View())
	}
	if s := m.ctrl.Session(); s.Score != 0 || len(s.Inventory) != 0 {
		t.Fatalf("expected fresh session, got %+v", s)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(zerolog.Nop())
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("expected quit command for %v", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %v", k)
		}
	}
}

func TestWindowResize(t *testing.T) {
	m := update(t, NewModel(zerolog.Nop()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.viewport.Width != 90 || m.viewport.Height != 32 {
		t.Fatalf("expected 90x32 viewport, got %dx%d", m.viewport.Width, m.viewport.Height)
	}
}

func TestScreenBuffer(t *testing.T) {
	b := &screenBuffer{}
	b.PresentScreen(engine.Screen{Title: "a"})
	b.PresentScreen(engine.Screen{Title: "b"})
	b.PresentModal(engine.Modal{Title: "m"})

	if b.version != 2 || b.screen.Title != "b" || len(b.modals) != 1 {
		t.Fatalf("unexpected buffer state %+v", b)
	}
}
