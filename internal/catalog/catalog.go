package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/lshigami/selfcheck/internal/validation"
	"gopkg.in/yaml.v3"
)

// File is a seed catalog: questionnaires plus the accounts that manage them.
type File struct {
	Users []User `yaml:"users" validate:"dive"`
	Tests []Test `yaml:"tests" validate:"dive"`
}

type User struct {
	Email string `yaml:"email" validate:"required,email"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role" validate:"required,user_role"`
	// PasswordEnv names the environment variable holding the initial password.
	PasswordEnv string `yaml:"password_env" validate:"required"`
}

type Option struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Score int    `yaml:"score" validate:"min=0"`
}

type Question struct {
	Prompt string `yaml:"prompt" validate:"required"`
	Type   string `yaml:"type" validate:"required,question_type"`
	// Options overrides the test's default_options.
	Options []Option `yaml:"options" validate:"dive"`
}

type Band struct {
	Min            int    `yaml:"min" validate:"min=0"`
	Max            int    `yaml:"max" validate:"min=0"`
	Label          string `yaml:"label" validate:"required"`
	Interpretation string `yaml:"interpretation"`
	Recommendation string `yaml:"recommendation"`
}

type Test struct {
	Title            string     `yaml:"title" validate:"required"`
	Slug             string     `yaml:"slug"`
	Category         string     `yaml:"category" validate:"required,test_category"`
	Instructions     string     `yaml:"instructions"`
	TimeLimitMinutes *int       `yaml:"time_limit_minutes" validate:"omitempty,min=1"`
	DefaultOptions   []Option   `yaml:"default_options" validate:"dive"`
	Questions        []Question `yaml:"questions" validate:"required,min=1,dive"`
	Bands            []Band     `yaml:"bands" validate:"required,min=1,dive"`
}

func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a catalog. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validation.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	for _, t := range file.Tests {
		m := t.Model()
		if err := scoring.ValidateBands(model.Bands(m.ScoreBands), scoring.MaxPossible(model.Catalog(m.Questions))); err != nil {
			return nil, fmt.Errorf("test %q: %w", t.Title, err)
		}
	}
	return &file, nil
}

// Model builds the test rows. Questions are ordered 1..n in file order and
// bands keep file order as their sort order. Slug is left to the caller.
func (t Test) Model() model.Test {
	m := model.Test{
		Title:            t.Title,
		Category:         model.TestCategory(t.Category),
		Instructions:     t.Instructions,
		TimeLimitMinutes: t.TimeLimitMinutes,
		IsActive:         true,
	}
	for i, q := range t.Questions {
		question := model.Question{
			Prompt:      q.Prompt,
			Type:        scoring.QuestionType(q.Type),
			OrderInTest: i + 1,
		}
		opts := q.Options
		if len(opts) == 0 && question.Type != scoring.Text {
			opts = t.DefaultOptions
		}
		for _, o := range opts {
			question.Options = append(question.Options, model.AnswerOption{Label: o.Label, Value: o.Value, Score: o.Score})
		}
		m.Questions = append(m.Questions, question)
	}
	for i, b := range t.Bands {
		m.ScoreBands = append(m.ScoreBands, model.ScoreBand{
			MinScore:       b.Min,
			MaxScore:       b.Max,
			Label:          b.Label,
			Interpretation: b.Interpretation,
			Recommendation: b.Recommendation,
			SortOrder:      i + 1,
		})
	}
	return m
}
