package models

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rooms.yaml
var roomsYAML []byte

// ParseRooms decodes and validates a room table.
func ParseRooms(data []byte) ([RoomCount]RoomDefinition, error) {
	var table [RoomCount]RoomDefinition

	var rooms []RoomDefinition
	if err := yaml.Unmarshal(data, &rooms); err != nil {
		return table, fmt.Errorf("failed to parse rooms: %w", err)
	}
	if len(rooms) != RoomCount {
		return table, fmt.Errorf("expected %d rooms, got %d", RoomCount, len(rooms))
	}
	for i, r := range rooms {
		if r.Index != i+1 {
			return table, fmt.Errorf("room %d: expected ordinal %d", r.Index, i+1)
		}
		if r.Question == "" || r.Answer == "" || r.Hint == "" {
			return table, fmt.Errorf("room %d: question, answer and hint are required", r.Index)
		}
		table[i] = r
	}
	return table, nil
}

var loadRooms = sync.OnceValue(func() [RoomCount]RoomDefinition {
	table, err := ParseRooms(roomsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded room table: %v", err))
	}
	return table
})

// Rooms returns the built-in room table. The array is returned by value so
// callers cannot mutate the shared copy.
func Rooms() [RoomCount]RoomDefinition {
	return loadRooms()
}
