package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	conv := NewScoreConverterService()

	cases := []struct {
		total, max int
		want       float64
	}{
		{18, 27, 66.7},
		{0, 27, 0},
		{27, 27, 100},
		{0, 0, 0},
		{5, 21, 23.8},
	}
	for _, c := range cases {
		got, err := conv.Percentage(c.total, c.max)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%d/%d", c.total, c.max)
	}

	_, err := conv.Percentage(30, 27)
	assert.Error(t, err)
}
