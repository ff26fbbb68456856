// Package scoring turns a set of submitted answers into a total score and a
// severity band. It has no storage dependencies; callers map their models
// into the types declared here.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/selfcheck/internal/apperror"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	LikertScale    QuestionType = "LIKERT_SCALE"
	YesNo          QuestionType = "YES_NO"
	Text           QuestionType = "TEXT"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, LikertScale, YesNo, Text:
		return true
	}
	return false
}

// Option is one selectable answer and the points it is worth.
type Option struct {
	Label string
	Value string
	Score int
}

// Question is the catalog entry the scorer resolves answers against.
type Question struct {
	ID      uint
	Type    QuestionType
	Order   int
	Prompt  string
	Options []Option
}

// SubmittedAnswer is one answer as sent by the test-taker. Score is optional;
// when present it must agree with the catalog.
type SubmittedAnswer struct {
	QuestionID uint
	Value      string
	Score      *int
}

// ScoredAnswer is an answer whose points were resolved from the catalog.
type ScoredAnswer struct {
	QuestionID uint
	Prompt     string
	Value      string
	Label      string
	Score      int
}

// Scored is the scorer output. Answers are in catalog order.
type Scored struct {
	Total       int
	MaxPossible int
	Answers     []ScoredAnswer
}

// MaxScore is the best achievable score for a question; TEXT questions
// and questions without options are worth nothing.
func (q Question) MaxScore() int {
	if q.Type == Text {
		return 0
	}
	best := 0
	for _, o := range q.Options {
		if o.Score > best {
			best = o.Score
		}
	}
	return best
}

func (q Question) resolve(value string) (Option, bool) {
	if q.Type == Text {
		return Option{Value: value}, true
	}
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// MaxPossible sums MaxScore over a catalog.
func MaxPossible(catalog []Question) int {
	total := 0
	for _, q := range catalog {
		total += q.MaxScore()
	}
	return total
}

// Score sums the catalog points of every answer. Questions without an answer
// contribute zero. Answers for unknown questions, repeated answers, values
// outside the option set and client scores that disagree with the catalog are
// all rejected together as a single validation error.
func Score(catalog []Question, answers []SubmittedAnswer) (Scored, error) {
	byID := make(map[uint]Question, len(catalog))
	for _, q := range catalog {
		byID[q.ID] = q
	}

	var problems []string
	seen := make(map[uint]bool, len(answers))
	scored := make([]ScoredAnswer, 0, len(answers))
	total := 0

	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			problems = append(problems, fmt.Sprintf("question %d does not belong to this test", a.QuestionID))
			continue
		}
		if seen[a.QuestionID] {
			problems = append(problems, fmt.Sprintf("question %d was answered more than once", a.QuestionID))
			continue
		}
		seen[a.QuestionID] = true

		value := strings.TrimSpace(a.Value)
		opt, ok := q.resolve(value)
		if !ok {
			problems = append(problems, fmt.Sprintf("value %q is not an option of question %d", value, q.ID))
			continue
		}
		if a.Score != nil && *a.Score != opt.Score {
			problems = append(problems, fmt.Sprintf("score for question %d does not match the selected option", q.ID))
			continue
		}

		scored = append(scored, ScoredAnswer{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Value:      value,
			Label:      opt.Label,
			Score:      opt.Score,
		})
		total += opt.Score
	}

	if len(problems) > 0 {
		return Scored{}, apperror.Validation("Submission contains invalid answers").WithDetails(problems...)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		qi, qj := byID[scored[i].QuestionID], byID[scored[j].QuestionID]
		if qi.Order != qj.Order {
			return qi.Order < qj.Order
		}
		return qi.ID < qj.ID
	})

	return Scored{Total: total, MaxPossible: MaxPossible(catalog), Answers: scored}, nil
}
