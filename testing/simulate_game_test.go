package main

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tatianab/escape-room/internal/engine"
	"github.com/tatianab/escape-room/internal/models"
	"github.com/tatianab/escape-room/internal/player"
)

func simulate(t *testing.T, answers []string, pass string) (models.Report, string, error) {
	t.Helper()
	var out bytes.Buffer
	ctrl := engine.NewController(&console{w: &out}, zerolog.Nop())
	report, err := play(context.Background(), ctrl, &player.Script{Answers: answers, Pass: pass})
	return report, out.String(), err
}

func TestPlayEscape(t *testing.T) {
	report, out, err := simulate(t, []string{"bank", "32", "yellow red green blue", "key", "carrot"}, "freedom")
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	res := report.Result
	if res.Score != 5 || !res.Escaped || !slices.Equal(res.Inventory, []string{models.ItemKey}) {
		t.Errorf("Expected score 5, escaped, [key]; got %+v", res)
	}
	if len(report.Steps) != 6 || report.Steps[5].Outcome != "escaped" {
		t.Errorf("Expected 6 steps ending in escape, got %+v", report.Steps)
	}
	if !strings.Contains(out, "[info] Inventory: You found a key!") {
		t.Errorf("Expected inventory notice in output, got %q", out)
	}
}

func TestPlayHintThenSolve(t *testing.T) {
	report, out, err := simulate(t, []string{"tree", "bank", "32", "yellow red green blue", "key", "carrot"}, "nope")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if report.Steps[0].Outcome != "hint" || report.Steps[1].Outcome != "solved" {
		t.Errorf("Expected hint then solved, got %+v", report.Steps[:2])
	}
	if report.Result.Escaped || report.Result.Score != 5 {
		t.Errorf("Expected trapped with score 5, got %+v", report.Result)
	}
	if !strings.Contains(out, "[warning] Incorrect: Hint: It's a place, not a plant.") {
		t.Errorf("Expected hint in output, got %q", out)
	}
}

func TestPlayEliminated(t *testing.T) {
	report, out, err := simulate(t, []string{"wrong", "wrong"}, "freedom")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if report.Result.Score != 0 || report.Result.Escaped {
		t.Errorf("Expected score 0 and trapped, got %+v", report.Result)
	}
	if strings.Contains(out, "Final Lock") {
		t.Errorf("Expected final door never shown, got %q", out)
	}
}

func TestPlayScriptRunsOut(t *testing.T) {
	_, _, err := simulate(t, []string{"bank"}, "")
	if err == nil || !strings.Contains(err.Error(), "room 2") {
		t.Fatalf("Expected error in room 2, got %v", err)
	}
}
