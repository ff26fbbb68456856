package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// narrativeSampleSize caps how many question/answer pairs go into the prompt.
const narrativeSampleSize = 10

var ErrNarrativeUnavailable = errors.New("narrative generator is not configured")

// NarrativeInput is everything the generator may see about a result.
type NarrativeInput struct {
	TestTitle    string
	TestCategory string
	Score        int
	MaxScore     int
	Band         scoring.Band
	Answers      []scoring.ScoredAnswer
}

// NarrativeService writes the personalised recommendations shown with a result.
// Callers fall back to static text on any error.
type NarrativeService interface {
	Generate(ctx context.Context, in NarrativeInput) (string, error)
}

// contentGenerator is the part of *genai.GenerativeModel we use.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiNarrativeService struct {
	model   contentGenerator
	timeout time.Duration
}

func NewNarrativeService(lc fx.Lifecycle, cfg *config.Config) (NarrativeService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Results will carry the static band recommendation.")
		return &geminiNarrativeService{timeout: cfg.Gemini.NarrativeTimeout}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(0.4)
	return newGeminiNarrativeService(model, cfg.Gemini.NarrativeTimeout), nil
}

func newGeminiNarrativeService(model contentGenerator, timeout time.Duration) *geminiNarrativeService {
	return &geminiNarrativeService{model: model, timeout: timeout}
}

func (s *geminiNarrativeService) Generate(ctx context.Context, in NarrativeInput) (string, error) {
	if s.model == nil {
		return "", ErrNarrativeUnavailable
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildNarrativePrompt(in)))
	if err != nil {
		return "", fmt.Errorf("gemini narrative request failed: %w", err)
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		return "", errors.New("gemini returned no text content")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

func buildNarrativePrompt(in NarrativeInput) string {
	var sb strings.Builder
	sb.WriteString("You are a supportive mental health educator writing feedback for someone who just completed a self-assessment questionnaire.\n")
	sb.WriteString("The questionnaire is a screening aid, not a diagnosis. Never diagnose, never prescribe medication.\n\n")

	sb.WriteString(fmt.Sprintf("Questionnaire: %s\n", in.TestTitle))
	if in.TestCategory != "" {
		sb.WriteString(fmt.Sprintf("Area: %s\n", in.TestCategory))
	}
	sb.WriteString(fmt.Sprintf("Score: %d out of %d\n", in.Score, in.MaxScore))
	sb.WriteString(fmt.Sprintf("Result category: %s\n", in.Band.Label))
	if in.Band.Interpretation != "" {
		sb.WriteString(fmt.Sprintf("Category meaning: %s\n", in.Band.Interpretation))
	}

	sample := in.Answers
	if len(sample) > narrativeSampleSize {
		sample = sample[:narrativeSampleSize]
	}
	if len(sample) > 0 {
		sb.WriteString("\nSome of the answers given:\n")
		for _, a := range sample {
			answer := a.Label
			if answer == "" {
				answer = a.Value
			}
			sb.WriteString(fmt.Sprintf("- Q: %s\n  A: %s\n", a.Prompt, answer))
		}
	}

	sb.WriteString(`
Write 2 to 4 short paragraphs of plain text (no markdown, under 250 words) that:
- acknowledge the result in warm, non-alarming language;
- suggest concrete self-care steps that fit this category;
- say clearly when talking to a qualified professional is advisable, and that anyone in crisis should contact local emergency services.
`)
	return sb.String()
}
