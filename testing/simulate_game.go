package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tatianab/escape-room/internal/config"
	"github.com/tatianab/escape-room/internal/engine"
	"github.com/tatianab/escape-room/internal/logging"
	"github.com/tatianab/escape-room/internal/models"
	"github.com/tatianab/escape-room/internal/player"
	"gopkg.in/yaml.v3"
)

// Two strikes in each room plus the final door is the longest possible game.
const maxTurns = 2*models.RoomCount + 2

func main() {
	scriptPath := flag.String("script", "", "YAML file with scripted answers; uses Gemini when empty")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	var p player.Player
	if *scriptPath != "" {
		s, err := player.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		p = s
	} else {
		if err := cfg.RequireGemini(); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		g, err := player.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create player: %v", err)
		}
		defer g.Close()
		p = g
	}

	ctrl := engine.NewController(&console{w: os.Stdout}, logger)
	report, err := play(ctx, ctrl, p)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Println("--- Report ---")
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

// play runs one session from room 1 to the end screen.
func play(ctx context.Context, ctrl *engine.Controller, p player.Player) (models.Report, error) {
	report := models.Report{Player: p.Name()}
	ctrl.StartSession()

	hint := ""
	for turn := 1; turn <= maxTurns; turn++ {
		switch ctrl.Phase() {
		case engine.PhaseRoom:
			room, _ := ctrl.ActiveRoom()
			answer, err := p.Answer(ctx, room, hint)
			if err != nil {
				return report, fmt.Errorf("room %d: %w", room.Index, err)
			}
			out, err := ctrl.SubmitAnswer(answer)
			if err != nil {
				return report, err
			}
			hint = out.Hint
			report.Steps = append(report.Steps, models.Step{Room: room.Index, Input: answer, Outcome: out.Kind.String()})

		case engine.PhaseFinal:
			pass, err := p.Passphrase(ctx)
			if err != nil {
				return report, fmt.Errorf("passphrase: %w", err)
			}
			escaped, err := ctrl.SubmitPassphrase(pass)
			if err != nil {
				return report, err
			}
			report.Steps = append(report.Steps, models.Step{Input: pass, Outcome: verdict(escaped)})

		case engine.PhaseFinalLocked:
			if err := ctrl.LeaveFinalDoor(); err != nil {
				return report, err
			}
			report.Steps = append(report.Steps, models.Step{Outcome: verdict(false)})

		case engine.PhaseEnded:
			res, _ := ctrl.Result()
			report.Result = res
			return report, nil

		default:
			return report, fmt.Errorf("unexpected phase %s", ctrl.Phase())
		}
	}

	if res, ok := ctrl.Result(); ok {
		report.Result = res
		return report, nil
	}
	return report, fmt.Errorf("no result after %d turns", maxTurns)
}

func verdict(escaped bool) string {
	if escaped {
		return "escaped"
	}
	return "trapped"
}

// console prints screens and modals as plain text.
type console struct {
	w io.Writer
}

func (c *console) PresentScreen(s engine.Screen) {
	fmt.Fprintf(c.w, "--- %s ---\n%s\n", s.Title, s.Body)
}

func (c *console) PresentModal(m engine.Modal) {
	fmt.Fprintf(c.w, "[%s] %s: %s\n", m.Kind, m.Title, m.Message)
}
