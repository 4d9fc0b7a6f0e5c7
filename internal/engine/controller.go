package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tatianab/escape-room/internal/models"
)

// Passphrase opens the final door.
const Passphrase = "freedom"

// Input names used on the room and final door screens.
const (
	InputAnswer     = "answer"
	InputPassphrase = "passphrase"
)

var ErrWrongPhase = errors.New("action not available in the current phase")

// Phase is the screen the controller is on.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseRoom
	PhaseFinalLocked // final door reached without the key
	PhaseFinal
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseRoom:
		return "room"
	case PhaseFinalLocked:
		return "final-locked"
	case PhaseFinal:
		return "final"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Controller owns the session and sequences the screens:
// welcome, rooms 1..5, final door, end.
type Controller struct {
	ui      Presenter
	log     zerolog.Logger
	rooms   *RoomEngine
	session *models.GameSession
	phase   Phase
	result  *models.Result
}

// NewController returns a controller over the built-in rooms. Nothing is
// presented until Start is called.
func NewController(ui Presenter, log zerolog.Logger) *Controller {
	return &Controller{
		ui:      ui,
		log:     log,
		rooms:   NewRoomEngine(models.Rooms()),
		session: models.NewGameSession(),
	}
}

// Start presents the welcome screen.
func (c *Controller) Start() {
	c.phase = PhaseWelcome
	c.ui.PresentScreen(Screen{
		Title: "Welcome to the Escape Room!",
		Body: fmt.Sprintf("Solve %d puzzles to escape.\nWrong once = hint, wrong twice = game over!",
			models.RoomCount),
		Actions: []Action{{Label: "Start Game", Run: func(map[string]string) { c.StartSession() }}},
	})
}

// StartSession throws away any previous session and enters room 1.
func (c *Controller) StartSession() {
	c.session = models.NewGameSession()
	c.result = nil
	c.log.Info().Msg("session started")
	c.advanceRoom()
}

// Phase reports the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns a snapshot of the session.
func (c *Controller) Session() models.GameSession {
	return c.session.Clone()
}

// Result returns the frozen result once the session has ended.
func (c *Controller) Result() (models.Result, bool) {
	if c.result == nil {
		return models.Result{}, false
	}
	return *c.result, true
}

// ActiveRoom returns the room being played, if any.
func (c *Controller) ActiveRoom() (models.RoomDefinition, bool) {
	if c.phase != PhaseRoom {
		return models.RoomDefinition{}, false
	}
	a, ok := c.rooms.Active()
	return a.Room, ok
}

// SubmitAnswer evaluates text against the active room and applies the
// outcome.
func (c *Controller) SubmitAnswer(text string) (Outcome, error) {
	if c.phase != PhaseRoom {
		return Outcome{}, fmt.Errorf("submit answer in %s: %w", c.phase, ErrWrongPhase)
	}
	out, err := c.rooms.SubmitAnswer(text)
	if err != nil {
		return Outcome{}, err
	}

	room, _ := c.rooms.Active()
	c.log.Debug().
		Int("room", room.Room.Index).
		Str("outcome", out.Kind.String()).
		Int("attempts", room.Attempts).
		Msg("answer submitted")

	switch out.Kind {
	case OutcomeSolved:
		c.ui.PresentModal(Modal{Kind: ModalInfo, Title: "Correct!", Message: "Well done!"})
		c.onRoomSolved(out.Item)
	case OutcomeHint:
		c.ui.PresentModal(Modal{Kind: ModalWarning, Title: "Incorrect", Message: "Hint: " + out.Hint})
	case OutcomeEliminated:
		c.ui.PresentModal(Modal{Kind: ModalError, Title: "Game Over", Message: "Wrong again. You're trapped!"})
		c.onRoomFailedTerminal()
	}
	return out, nil
}

// SubmitPassphrase makes the single attempt at the final door.
func (c *Controller) SubmitPassphrase(text string) (bool, error) {
	if c.phase != PhaseFinal {
		return false, fmt.Errorf("submit passphrase in %s: %w", c.phase, ErrWrongPhase)
	}
	escaped := normalize(text) == Passphrase
	if escaped {
		c.ui.PresentModal(Modal{Kind: ModalInfo, Title: "Success", Message: "You escaped the room!"})
	} else {
		c.ui.PresentModal(Modal{Kind: ModalError, Title: "Locked", Message: "Wrong passphrase. You're still trapped."})
	}
	c.endSession(escaped)
	return escaped, nil
}

// LeaveFinalDoor acknowledges the locked final door and ends the session.
func (c *Controller) LeaveFinalDoor() error {
	if c.phase != PhaseFinalLocked {
		return fmt.Errorf("leave final door in %s: %w", c.phase, ErrWrongPhase)
	}
	c.endSession(false)
	return nil
}

func (c *Controller) advanceRoom() {
	if c.session.CurrentRoom >= models.RoomCount {
		c.enterFinalChallenge()
		return
	}

	room := c.rooms.StartRoom(c.session.CurrentRoom)
	c.session.CurrentRoom++
	c.phase = PhaseRoom
	c.log.Debug().Int("room", room.Index).Msg("room started")

	c.ui.PresentScreen(Screen{
		Title:  fmt.Sprintf("Room %d", room.Index),
		Body:   room.Question,
		Inputs: []Input{{Name: InputAnswer, Placeholder: "Your answer..."}},
		Actions: []Action{{Label: "Submit", Run: func(v map[string]string) {
			if _, err := c.SubmitAnswer(v[InputAnswer]); err != nil {
				c.log.Error().Err(err).Msg("submit answer")
			}
		}}},
	})
}

func (c *Controller) enterFinalChallenge() {
	if !c.session.HasItem(models.ItemKey) {
		c.phase = PhaseFinalLocked
		c.log.Debug().Msg("final door reached without key")
		c.ui.PresentScreen(Screen{
			Title: "Final Lock",
			Body:  "You reached the final door, but you don't have the key!",
			Actions: []Action{{Label: "End Game", Run: func(map[string]string) {
				if err := c.LeaveFinalDoor(); err != nil {
					c.log.Error().Err(err).Msg("leave final door")
				}
			}}},
		})
		return
	}

	c.phase = PhaseFinal
	c.log.Debug().Msg("final door reached")
	c.ui.PresentScreen(Screen{
		Title:  "Final Lock",
		Body:   "Enter the secret passphrase to escape:",
		Inputs: []Input{{Name: InputPassphrase, Placeholder: "Passphrase..."}},
		Actions: []Action{{Label: "Submit", Run: func(v map[string]string) {
			if _, err := c.SubmitPassphrase(v[InputPassphrase]); err != nil {
				c.log.Error().Err(err).Msg("submit passphrase")
			}
		}}},
	})
}

func (c *Controller) onRoomSolved(item string) {
	if item != "" {
		c.session.AddItem(item)
		c.ui.PresentModal(Modal{Kind: ModalInfo, Title: "Inventory", Message: fmt.Sprintf("You found a %s!", item)})
	}
	c.session.Score++
	c.advanceRoom()
}

func (c *Controller) onRoomFailedTerminal() {
	c.endSession(false)
}

func (c *Controller) endSession(escaped bool) {
	s := c.session.Clone()
	c.result = &models.Result{Score: s.Score, Escaped: escaped, Inventory: s.Inventory}
	c.phase = PhaseEnded
	c.log.Info().Int("score", s.Score).Bool("escaped", escaped).Msg("session ended")

	verdict := "You got trapped!"
	if escaped {
		verdict = "You escaped!"
	}
	c.ui.PresentScreen(Screen{
		Title:   "Game Over!",
		Body:    fmt.Sprintf("Score: %d out of %d\n%s", s.Score, models.RoomCount, verdict),
		Actions: []Action{{Label: "Play Again", Run: func(map[string]string) { c.StartSession() }}},
	})
}
