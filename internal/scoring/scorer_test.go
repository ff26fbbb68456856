package scoring

import (
	"fmt"
	"testing"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phq9Catalog() []Question {
	opts := []Option{
		{Label: "Not at all", Value: "0", Score: 0},
		{Label: "Several days", Value: "1", Score: 1},
		{Label: "More than half the days", Value: "2", Score: 2},
		{Label: "Nearly every day", Value: "3", Score: 3},
	}
	catalog := make([]Question, 0, 9)
	for i := 1; i <= 9; i++ {
		catalog = append(catalog, Question{
			ID:      uint(100 + i),
			Type:    LikertScale,
			Order:   i * 10,
			Prompt:  fmt.Sprintf("PHQ item %d", i),
			Options: opts,
		})
	}
	return catalog
}

func answerAll(catalog []Question, value string) []SubmittedAnswer {
	answers := make([]SubmittedAnswer, 0, len(catalog))
	for _, q := range catalog {
		answers = append(answers, SubmittedAnswer{QuestionID: q.ID, Value: value})
	}
	return answers
}

func intPtr(v int) *int { return &v }

func TestScore_AllTwosOnPHQ9(t *testing.T) {
	catalog := phq9Catalog()

	got, err := Score(catalog, answerAll(catalog, "2"))
	require.NoError(t, err)

	assert.Equal(t, 18, got.Total)
	assert.Equal(t, 27, got.MaxPossible)
	assert.Len(t, got.Answers, 9)
}

func TestScore_TotalIsSumOfAnswerScores(t *testing.T) {
	catalog := phq9Catalog()
	values := []string{"0", "3", "1", "2", "2", "0", "3", "1", "1"}
	answers := make([]SubmittedAnswer, len(values))
	for i, v := range values {
		answers[i] = SubmittedAnswer{QuestionID: catalog[i].ID, Value: v}
	}

	got, err := Score(catalog, answers)
	require.NoError(t, err)

	sum := 0
	for _, a := range got.Answers {
		sum += a.Score
	}
	assert.Equal(t, sum, got.Total)
	assert.Equal(t, 13, got.Total)
}

func TestScore_ZeroAnswersScoresZero(t *testing.T) {
	got, err := Score(phq9Catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total)
	assert.Empty(t, got.Answers)
}

func TestScore_UnansweredQuestionsContributeNothing(t *testing.T) {
	catalog := phq9Catalog()
	got, err := Score(catalog, []SubmittedAnswer{{QuestionID: catalog[0].ID, Value: "3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
}

func TestScore_AnswersComeBackInCatalogOrder(t *testing.T) {
	catalog := phq9Catalog()
	answers := []SubmittedAnswer{
		{QuestionID: catalog[8].ID, Value: "1"},
		{QuestionID: catalog[0].ID, Value: "2"},
		{QuestionID: catalog[4].ID, Value: "3"},
	}

	got, err := Score(catalog, answers)
	require.NoError(t, err)
	require.Len(t, got.Answers, 3)
	assert.Equal(t, catalog[0].ID, got.Answers[0].QuestionID)
	assert.Equal(t, catalog[4].ID, got.Answers[1].QuestionID)
	assert.Equal(t, catalog[8].ID, got.Answers[2].QuestionID)
	assert.Equal(t, "More than half the days", got.Answers[0].Label)
}

func TestScore_Rejections(t *testing.T) {
	catalog := phq9Catalog()
	first := catalog[0].ID

	cases := []struct {
		name    string
		answers []SubmittedAnswer
		detail  string
	}{
		{
			name:    "question outside catalog",
			answers: []SubmittedAnswer{{QuestionID: 9999, Value: "1"}},
			detail:  "question 9999 does not belong to this test",
		},
		{
			name:    "value outside option set",
			answers: []SubmittedAnswer{{QuestionID: first, Value: "7"}},
			detail:  fmt.Sprintf("value \"7\" is not an option of question %d", first),
		},
		{
			name: "duplicate answer",
			answers: []SubmittedAnswer{
				{QuestionID: first, Value: "1"},
				{QuestionID: first, Value: "2"},
			},
			detail: fmt.Sprintf("question %d was answered more than once", first),
		},
		{
			name:    "client score disagrees with catalog",
			answers: []SubmittedAnswer{{QuestionID: first, Value: "1", Score: intPtr(3)}},
			detail:  fmt.Sprintf("score for question %d does not match the selected option", first),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Score(catalog, tc.answers)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details, tc.detail)
		})
	}
}

func TestScore_MatchingClientScoreIsAccepted(t *testing.T) {
	catalog := phq9Catalog()
	got, err := Score(catalog, []SubmittedAnswer{{QuestionID: catalog[0].ID, Value: "3", Score: intPtr(3)}})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
}

func TestScore_TextQuestionsAcceptAnythingForZero(t *testing.T) {
	catalog := []Question{
		{ID: 1, Type: YesNo, Order: 1, Options: []Option{{Label: "Yes", Value: "yes", Score: 1}, {Label: "No", Value: "no", Score: 0}}},
		{ID: 2, Type: Text, Order: 2},
	}

	got, err := Score(catalog, []SubmittedAnswer{
		{QuestionID: 1, Value: "yes"},
		{QuestionID: 2, Value: "I have trouble sleeping since spring"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, 1, got.MaxPossible)
}

func TestQuestionType_Valid(t *testing.T) {
	assert.True(t, LikertScale.Valid())
	assert.True(t, Text.Valid())
	assert.False(t, QuestionType("ESSAY").Valid())
}
