package player

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/escape-room/internal/models"
	"gopkg.in/yaml.v3"
)

// Script replays fixed answers in order. A wrong answer consumes an entry, so
// the script lists every submission, not one per room.
type Script struct {
	Answers []string `yaml:"answers"`
	Pass    string   `yaml:"passphrase"`
	next    int
}

// LoadScript reads a YAML script such as:
//
//	answers: [bank, "32", yellow red green blue, key, carrot]
//	passphrase: freedom
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

func (s *Script) Name() string { return "script" }

func (s *Script) Answer(_ context.Context, room models.RoomDefinition, _ string) (string, error) {
	if s.next >= len(s.Answers) {
		return "", fmt.Errorf("script ran out of answers in room %d", room.Index)
	}
	a := s.Answers[s.next]
	s.next++
	return a, nil
}

func (s *Script) Passphrase(context.Context) (string, error) {
	return s.Pass, nil
}
