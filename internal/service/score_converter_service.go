package service

import (
	"fmt"
	"math"
)

// ScoreConverterService turns a raw total into display figures. Nothing it
// returns feeds back into classification.
type ScoreConverterService interface {
	Percentage(total, maxScore int) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// Percentage returns total as a share of maxScore, rounded to one decimal.
// A test with no scored questions reports 0.
func (s *scoreConverterServiceImpl) Percentage(total, maxScore int) (float64, error) {
	if maxScore <= 0 {
		return 0, nil
	}
	if total < 0 || total > maxScore {
		return 0, fmt.Errorf("raw score %d is out of valid range (0-%d)", total, maxScore)
	}
	pct := float64(total) / float64(maxScore) * 100
	return math.Round(pct*10) / 10, nil
}
