package service

import (
	"testing"

	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelBands(t *testing.T) {
	bands, err := toModelBands([]dto.ScoreBandDTO{
		{MinScore: 0, MaxScore: 4, Label: "Minimal", Interpretation: "Few symptoms.", Recommendation: "Keep going.", SortOrder: 1},
		{MinScore: 5, MaxScore: 27, Label: "Raised", SortOrder: 2},
	})
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.Equal(t, model.ScoreBand{MinScore: 0, MaxScore: 4, Label: "Minimal", Interpretation: "Few symptoms.", Recommendation: "Keep going.", SortOrder: 1}, bands[0])
	assert.Equal(t, 27, bands[1].MaxScore)

	empty, err := toModelBands(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestToTestSummaryDTO(t *testing.T) {
	limit := 15
	item, err := toTestSummaryDTO(model.Test{ID: 7, Title: "GAD-7", Slug: "gad-7", Category: model.CategoryAnxiety, TimeLimitMinutes: &limit, IsActive: true}, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, "ANXIETY", item.Category)
	assert.Equal(t, 7, item.QuestionCount)
	require.NotNil(t, item.TimeLimitMinutes)
	assert.Equal(t, 15, *item.TimeLimitMinutes)
	assert.True(t, item.IsActive)
}
