package dbtest

import (
	"fmt"
	"testing"

	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func frequencyOptions() []model.AnswerOption {
	return []model.AnswerOption{
		{Label: "Not at all", Value: "0", Score: 0},
		{Label: "Several days", Value: "1", Score: 1},
		{Label: "More than half the days", Value: "2", Score: 2},
		{Label: "Nearly every day", Value: "3", Score: 3},
	}
}

// PHQ9 builds an unsaved nine-item depression questionnaire with the
// standard severity bands.
func PHQ9() model.Test {
	test := model.Test{
		Title:    "PHQ-9 Depression Screening",
		Slug:     "phq-9",
		Category: model.CategoryDepression,
		IsActive: true,
		ScoreBands: []model.ScoreBand{
			{MinScore: 0, MaxScore: 4, Label: "Minimal", Interpretation: "Minimal symptoms.", Recommendation: "Keep up your routine.", SortOrder: 1},
			{MinScore: 5, MaxScore: 9, Label: "Mild", Interpretation: "Mild symptoms.", Recommendation: "Watch how you feel.", SortOrder: 2},
			{MinScore: 10, MaxScore: 14, Label: "Moderate", Interpretation: "Moderate symptoms.", Recommendation: "Consider talking to a professional.", SortOrder: 3},
			{MinScore: 15, MaxScore: 19, Label: "ModeratelySevere", Interpretation: "Moderately severe symptoms.", Recommendation: "Book an appointment with a professional.", SortOrder: 4},
			{MinScore: 20, MaxScore: 27, Label: "Severe", Interpretation: "Severe symptoms.", Recommendation: "Seek professional support promptly.", SortOrder: 5},
		},
	}
	for i := 1; i <= 9; i++ {
		test.Questions = append(test.Questions, model.Question{
			Prompt:      fmt.Sprintf("PHQ item %d", i),
			Type:        scoring.LikertScale,
			OrderInTest: i,
			Options:     frequencyOptions(),
		})
	}
	return test
}

// CreatePHQ9 stores PHQ9 and returns it with ids assigned.
func CreatePHQ9(t *testing.T, db *gorm.DB) *model.Test {
	t.Helper()
	test := PHQ9()
	require.NoError(t, db.Create(&test).Error)
	return &test
}

// Count returns the number of rows of m's table.
func Count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
