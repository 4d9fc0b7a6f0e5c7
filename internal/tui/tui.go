package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tatianab/escape-room/internal/engine"
	"github.com/tatianab/escape-room/internal/models"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// screenBuffer is the engine.Presenter the controller draws into. The model
// renders whatever it holds on the next View.
type screenBuffer struct {
	screen  engine.Screen
	version int
	modals  []engine.Modal
}

func (b *screenBuffer) PresentScreen(s engine.Screen) {
	b.screen = s
	b.version++
}

func (b *screenBuffer) PresentModal(m engine.Modal) {
	b.modals = append(b.modals, m)
}

type model struct {
	ctrl     *engine.Controller
	ui       *screenBuffer
	log      zerolog.Logger
	version  int // screen version the inputs were built for
	inputs   []textinput.Model
	focus    int
	selected int
	viewport viewport.Model
	width    int
	height   int
}

var (
	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 2)

	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EEEEEE")).
				Background(lipgloss.Color("#5F5F87")).
				Bold(true).
				Padding(0, 2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)

	modalColors = map[engine.ModalKind]lipgloss.Color{
		engine.ModalInfo:    lipgloss.Color("#04B575"),
		engine.ModalWarning: lipgloss.Color("#FFA500"),
		engine.ModalError:   lipgloss.Color("#FF5F87"),
	}
)

// NewModel builds the controller and shows its welcome screen.
func NewModel(log zerolog.Logger) model {
	ui := &screenBuffer{}
	ctrl := engine.NewController(ui, log)
	ctrl.Start()

	m := model{
		ctrl:     ctrl,
		ui:       ui,
		log:      log,
		width:    defaultWidth,
		height:   defaultHeight,
		viewport: viewport.New(logWidth(defaultWidth), defaultHeight-8),
	}
	m.sync()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.ui.modals) > 0 {
				m.ui.modals = m.ui.modals[1:]
				return m, nil
			}
			m.runAction()
			return m, m.sync()

		case tea.KeyTab, tea.KeyShiftTab:
			if len(m.ui.modals) == 0 && len(m.inputs) > 1 {
				step := 1
				if msg.Type == tea.KeyShiftTab {
					step = len(m.inputs) - 1
				}
				return m, m.focusInput((m.focus + step) % len(m.inputs))
			}
			return m, nil

		case tea.KeyLeft, tea.KeyRight:
			if n := len(m.ui.screen.Actions); len(m.ui.modals) == 0 && n > 1 {
				if msg.Type == tea.KeyLeft {
					m.selected = (m.selected + n - 1) % n
				} else {
					m.selected = (m.selected + 1) % n
				}
				return m, nil
			}
		}

		if len(m.ui.modals) > 0 {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = logWidth(msg.Width)
		m.viewport.Height = max(msg.Height-8, 3)
		m.viewport.SetContent(m.renderScreen())
		return m, nil
	}

	if len(m.inputs) > 0 {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

// runAction invokes the selected action with the current input values.
func (m *model) runAction() {
	actions := m.ui.screen.Actions
	if len(actions) == 0 {
		return
	}
	values := make(map[string]string, len(m.inputs))
	for i, in := range m.ui.screen.Inputs {
		values[in.Name] = m.inputs[i].Value()
	}

	action := actions[m.selected]
	m.log.Debug().Str("screen", m.ui.screen.Title).Str("action", action.Label).Msg("action invoked")
	action.Run(values)

	// A hint keeps the player on the same screen with a fresh input.
	if m.ui.version == m.version {
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
	}
}

// sync rebuilds inputs when the controller has presented a new screen.
func (m *model) sync() tea.Cmd {
	if m.version == m.ui.version {
		return nil
	}
	m.version = m.ui.version
	m.selected = 0
	m.focus = 0

	m.inputs = nil
	for _, in := range m.ui.screen.Inputs {
		ti := textinput.New()
		ti.Placeholder = in.Placeholder
		ti.CharLimit = 156
		ti.Width = 40
		m.inputs = append(m.inputs, ti)
	}

	m.viewport.SetContent(m.renderScreen())
	m.viewport.GotoTop()

	if len(m.inputs) == 0 {
		return nil
	}
	return m.focusInput(0)
}

func (m *model) focusInput(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m model) View() string {
	if len(m.ui.modals) > 0 {
		return m.renderModal(m.ui.modals[0])
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	parts := []string{mainView}
	for _, in := range m.inputs {
		parts = append(parts, "\n"+in.View())
	}
	parts = append(parts,
		"\n"+m.renderActions(),
		"\n"+helpStyle.Render("Enter to choose, Esc to quit."),
	)

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m model) renderScreen() string {
	s := m.ui.screen
	return titleStyle.Render(s.Title) + "\n\n" + gameStyle.Width(logWidth(m.width)).Render(s.Body)
}

func (m model) renderActions() string {
	var buttons []string
	for i, a := range m.ui.screen.Actions {
		style := buttonStyle
		if i == m.selected {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(a.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m model) renderState() string {
	session := m.ctrl.Session()

	room := "-"
	if r, ok := m.ctrl.ActiveRoom(); ok {
		room = fmt.Sprintf("%d of %d", r.Index, models.RoomCount)
	} else if m.ctrl.Phase() == engine.PhaseFinal || m.ctrl.Phase() == engine.PhaseFinalLocked {
		room = "Final door"
	}
	location := titleStyle.Render("ROOM") + "\n" + room + "\n\n"

	score := titleStyle.Render("SCORE") + "\n" + fmt.Sprintf("%d / %d", session.Score, models.RoomCount) + "\n\n"

	inventory := titleStyle.Render("INVENTORY") + "\n"
	if len(session.Inventory) == 0 {
		inventory += "(empty)"
	} else {
		for _, item := range session.Inventory {
			inventory += "- " + item + "\n"
		}
	}

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(location + score + inventory)
}

func (m model) renderModal(md engine.Modal) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(md.Title))
	b.WriteString("\n\n")
	b.WriteString(gameStyle.Render(md.Message))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Press Enter to continue"))

	box := modalStyle.BorderForeground(modalColors[md.Kind]).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func logWidth(width int) int {
	return int(float64(width) * 0.75)
}

// Run plays the game in the terminal until the player quits.
func Run(log zerolog.Logger, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(NewModel(log), opts...)
	_, err := p.Run()
	return err
}
