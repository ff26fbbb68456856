package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/selfcheck/internal/apperror"
)

// Band is one inclusive [Min, Max] score range of a test's severity table.
type Band struct {
	Min            int
	Max            int
	Label          string
	Interpretation string
	Recommendation string
	SortOrder      int
}

// Contains reports whether score falls inside the band, bounds included.
func (b Band) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

func ordered(bands []Band) []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Min < out[j].Min
	})
	return out
}

// Classify returns the band containing score. A score that no band covers is
// a configuration defect of the test and is reported as such; there is no
// fallback category.
func Classify(bands []Band, score int) (Band, error) {
	for _, b := range ordered(bands) {
		if b.Contains(score) {
			return b, nil
		}
	}
	return Band{}, apperror.Configuration("no score band covers score %d", score)
}

// ValidateBands checks a band table while it is being authored: every band is
// labelled and well formed, and sorted by Min they tile [0, maxScore] without
// gaps or overlaps.
func ValidateBands(bands []Band, maxScore int) error {
	if len(bands) == 0 {
		return apperror.Validation("At least one score band is required")
	}

	var problems []string
	byMin := make([]Band, len(bands))
	copy(byMin, bands)
	sort.SliceStable(byMin, func(i, j int) bool { return byMin[i].Min < byMin[j].Min })

	for i, b := range byMin {
		if strings.TrimSpace(b.Label) == "" {
			problems = append(problems, fmt.Sprintf("band [%d-%d] has no label", b.Min, b.Max))
		}
		if b.Min > b.Max {
			problems = append(problems, fmt.Sprintf("band %q has min %d greater than max %d", b.Label, b.Min, b.Max))
			continue
		}
		if i == 0 {
			if b.Min != 0 {
				problems = append(problems, fmt.Sprintf("lowest band %q starts at %d, want 0", b.Label, b.Min))
			}
			continue
		}
		prev := byMin[i-1]
		switch {
		case b.Min <= prev.Max:
			problems = append(problems, fmt.Sprintf("bands %q and %q overlap", prev.Label, b.Label))
		case b.Min > prev.Max+1:
			problems = append(problems, fmt.Sprintf("scores %d-%d are not covered by any band", prev.Max+1, b.Min-1))
		}
	}

	if last := byMin[len(byMin)-1]; last.Max < maxScore {
		problems = append(problems, fmt.Sprintf("scores %d-%d are not covered by any band", last.Max+1, maxScore))
	}

	if len(problems) > 0 {
		return apperror.Validation("Score bands are invalid").WithDetails(problems...)
	}
	return nil
}
