package model

import (
	"time"

	"github.com/lshigami/selfcheck/internal/scoring"
)

// ScoreBand is one inclusive [MinScore, MaxScore] row of a test's severity table.
type ScoreBand struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestID         uint      `json:"test_id" gorm:"not null;index"`
	MinScore       int       `json:"min_score" gorm:"not null"`
	MaxScore       int       `json:"max_score" gorm:"not null"`
	Label          string    `json:"label" gorm:"not null"`
	Interpretation string    `json:"interpretation" gorm:"type:text"`
	Recommendation string    `json:"recommendation" gorm:"type:text"`
	SortOrder      int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (b ScoreBand) ToScoring() scoring.Band {
	return scoring.Band{
		Min:            b.MinScore,
		Max:            b.MaxScore,
		Label:          b.Label,
		Interpretation: b.Interpretation,
		Recommendation: b.Recommendation,
		SortOrder:      b.SortOrder,
	}
}

func Bands(rows []ScoreBand) []scoring.Band {
	out := make([]scoring.Band, 0, len(rows))
	for _, b := range rows {
		out = append(out, b.ToScoring())
	}
	return out
}
