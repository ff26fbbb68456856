package model

import (
	"time"

	"gorm.io/gorm"
)

type TestCategory string

const (
	CategoryDepression TestCategory = "DEPRESSION"
	CategoryAnxiety    TestCategory = "ANXIETY"
	CategoryBurnout    TestCategory = "BURNOUT"
	CategoryADHD       TestCategory = "ADHD"
	CategoryOCD        TestCategory = "OCD"
	CategoryStress     TestCategory = "STRESS"
	CategorySleep      TestCategory = "SLEEP"
	CategorySelfEsteem TestCategory = "SELF_ESTEEM"
)

var TestCategories = []TestCategory{
	CategoryDepression, CategoryAnxiety, CategoryBurnout, CategoryADHD,
	CategoryOCD, CategoryStress, CategorySleep, CategorySelfEsteem,
}

func (c TestCategory) Valid() bool {
	for _, known := range TestCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Test is an administrator-authored questionnaire. Category is the
// diagnostic domain; the severity label of a result comes from ScoreBands.
type Test struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Title            string         `json:"title" gorm:"not null"`
	Slug             string         `json:"slug" gorm:"not null;uniqueIndex"`
	Category         TestCategory   `json:"category" gorm:"type:varchar(32);not null;index"`
	Instructions     string         `json:"instructions,omitempty" gorm:"type:text"`
	TimeLimitMinutes *int           `json:"time_limit_minutes,omitempty"`
	IsActive         bool           `json:"is_active" gorm:"not null;default:true"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	ScoreBands       []ScoreBand    `json:"score_bands,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
