package player

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/escape-room/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/answer_room.txt
var answerRoomPrompt string

//go:embed prompts/guess_passphrase.txt
var guessPassphrasePrompt string

var (
	answerTmpl     = template.Must(template.New("answer_room").Parse(answerRoomPrompt))
	passphraseTmpl = template.Must(template.New("guess_passphrase").Parse(guessPassphrasePrompt))
)

// Gemini asks a Gemini model to play.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Answer(ctx context.Context, room models.RoomDefinition, hint string) (string, error) {
	prompt, err := render(answerTmpl, struct {
		Room     int
		Question string
		Hint     string
	}{room.Index, room.Question, hint})
	if err != nil {
		return "", err
	}
	return g.ask(ctx, prompt)
}

func (g *Gemini) Passphrase(ctx context.Context) (string, error) {
	prompt, err := render(passphraseTmpl, nil)
	if err != nil {
		return "", err
	}
	return g.ask(ctx, prompt)
}

func (g *Gemini) ask(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return cleanReply(string(text)), nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cleanReply strips code fences and quotes the model likes to add.
func cleanReply(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
