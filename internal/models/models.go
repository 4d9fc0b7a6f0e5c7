package models

import "slices"

// ItemKey is the only item a room can grant. It unlocks the final door.
const ItemKey = "key"

// RoomCount is the number of rooms a session walks through before the final door.
const RoomCount = 5

// RoomDefinition is one fixed question of the escape room.
type RoomDefinition struct {
	Index    int    `yaml:"room"` // display ordinal, 1..5
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Hint     string `yaml:"hint"`
	Item     string `yaml:"item,omitempty"` // granted on a correct answer, if set
}

// GameSession is the state of one playthrough.
type GameSession struct {
	Inventory   []string `yaml:"inventory"`
	Score       int      `yaml:"score"`
	CurrentRoom int      `yaml:"current_room"` // next room to enter; RoomCount means all cleared
}

// NewGameSession returns an empty session positioned before the first room.
func NewGameSession() *GameSession {
	return &GameSession{Inventory: []string{}}
}

// HasItem reports whether item has been collected.
func (s *GameSession) HasItem(item string) bool {
	return slices.Contains(s.Inventory, item)
}

// AddItem collects item. Items are a set, so adding twice is a no-op.
func (s *GameSession) AddItem(item string) {
	if item == "" || s.HasItem(item) {
		return
	}
	s.Inventory = append(s.Inventory, item)
}

// Clone returns a copy that shares no memory with s.
func (s *GameSession) Clone() GameSession {
	c := *s
	c.Inventory = slices.Clone(s.Inventory)
	if c.Inventory == nil {
		c.Inventory = []string{}
	}
	return c
}

// Result is the frozen outcome of a finished session.
type Result struct {
	Score     int      `yaml:"score"`
	Escaped   bool     `yaml:"escaped"`
	Inventory []string `yaml:"inventory"`
}

// Step records a single submission during a playthrough.
type Step struct {
	Room    int    `yaml:"room,omitempty"` // 0 for the final door
	Input   string `yaml:"input"`
	Outcome string `yaml:"outcome"` // "solved", "hint", "eliminated", "escaped", "trapped"
}

// Report is what the simulator prints once a playthrough ends.
type Report struct {
	Player string `yaml:"player"`
	Result Result `yaml:"result"`
	Steps  []Step `yaml:"steps"`
}
