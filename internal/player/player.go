// Package player provides the non-human players the simulator can seat in
// front of the escape room.
package player

import (
	"context"

	"github.com/tatianab/escape-room/internal/models"
)

// Player answers room questions and guesses the passphrase.
type Player interface {
	Name() string
	// Answer returns an answer for room. hint is empty on the first attempt.
	Answer(ctx context.Context, room models.RoomDefinition, hint string) (string, error)
	Passphrase(ctx context.Context) (string, error)
}
