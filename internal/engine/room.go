package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/escape-room/internal/models"
)

var (
	ErrNoActiveRoom = errors.New("no room has been started")
	ErrRoomClosed   = errors.New("room is already solved or lost")
)

// maxStrikes is the number of wrong answers that ends a session.
const maxStrikes = 2

// RoomState is where the active room stands.
type RoomState int

const (
	RoomFresh RoomState = iota
	RoomOneStrike
	RoomEliminated
	RoomSolved
)

func (s RoomState) String() string {
	switch s {
	case RoomFresh:
		return "fresh"
	case RoomOneStrike:
		return "one-strike"
	case RoomEliminated:
		return "eliminated"
	case RoomSolved:
		return "solved"
	}
	return fmt.Sprintf("RoomState(%d)", int(s))
}

// OutcomeKind classifies a submitted answer.
type OutcomeKind int

const (
	OutcomeSolved OutcomeKind = iota
	OutcomeHint
	OutcomeEliminated
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSolved:
		return "solved"
	case OutcomeHint:
		return "hint"
	case OutcomeEliminated:
		return "eliminated"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of one submission. Item is set only for a solved room
// that grants one; Hint only for OutcomeHint.
type Outcome struct {
	Kind OutcomeKind
	Item string
	Hint string
}

// RoomAttempt is the per-room state, replaced on every StartRoom.
type RoomAttempt struct {
	Room     models.RoomDefinition
	Attempts int
	State    RoomState
}

// RoomEngine evaluates answers against the active room. It never touches the
// session; everything it decides is reported through the Outcome.
type RoomEngine struct {
	rooms  [models.RoomCount]models.RoomDefinition
	active *RoomAttempt
}

// NewRoomEngine returns an engine over the given room table.
func NewRoomEngine(rooms [models.RoomCount]models.RoomDefinition) *RoomEngine {
	return &RoomEngine{rooms: rooms}
}

// StartRoom activates room index (0-based) with a clean attempt counter.
// An index outside the table is a programming error and panics.
func (e *RoomEngine) StartRoom(index int) models.RoomDefinition {
	if index < 0 || index >= len(e.rooms) {
		panic(fmt.Sprintf("engine: room index %d out of range [0,%d)", index, len(e.rooms)))
	}
	e.active = &RoomAttempt{Room: e.rooms[index]}
	return e.active.Room
}

// Active returns a copy of the active room attempt, if any.
func (e *RoomEngine) Active() (RoomAttempt, bool) {
	if e.active == nil {
		return RoomAttempt{}, false
	}
	return *e.active, true
}

// SubmitAnswer classifies text against the active room.
func (e *RoomEngine) SubmitAnswer(text string) (Outcome, error) {
	a := e.active
	if a == nil {
		return Outcome{}, ErrNoActiveRoom
	}
	if a.State == RoomSolved || a.State == RoomEliminated {
		return Outcome{}, ErrRoomClosed
	}

	if normalize(text) == normalize(a.Room.Answer) {
		a.State = RoomSolved
		return Outcome{Kind: OutcomeSolved, Item: a.Room.Item}, nil
	}

	a.Attempts++
	if a.Attempts < maxStrikes {
		a.State = RoomOneStrike
		return Outcome{Kind: OutcomeHint, Hint: a.Room.Hint}, nil
	}
	a.State = RoomEliminated
	return Outcome{Kind: OutcomeEliminated}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
