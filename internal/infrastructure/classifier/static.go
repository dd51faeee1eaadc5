package classifier

import (
	"context"
	"strings"

	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
)

// categoryKeywords drives the static classifier. First category with a
// matching keyword wins; the match count scales confidence.
var categoryKeywords = []struct {
	category vo.Category
	keywords []string
}{
	{vo.CategoryRagging, []string{"ragging", "bullying", "harass", "senior"}},
	{vo.CategoryNetwork, []string{"wifi", "internet", "network", "connection", "lan"}},
	{vo.CategoryMess, []string{"mess", "food", "canteen", "meal", "hygiene"}},
	{vo.CategoryHostel, []string{"hostel", "room", "warden", "dorm", "roommate"}},
	{vo.CategoryAcademic, []string{"exam", "lecture", "class", "marks", "timetable", "professor", "assignment"}},
	{vo.CategoryInfrastructure, []string{"projector", "bench", "fan", "light", "lab", "building", "toilet", "water"}},
}

// StaticClassifier is the deterministic drop-in used when no external
// classification service is configured. Same text always yields the same
// result, which keeps reclassification idempotent.
type StaticClassifier struct{}

var _ issue.Classifier = (*StaticClassifier)(nil)

func NewStaticClassifier() *StaticClassifier {
	return &StaticClassifier{}
}

func (c *StaticClassifier) Classify(_ context.Context, text string) (issue.Classification, error) {
	lowered := strings.ToLower(text)

	for _, entry := range categoryKeywords {
		matches := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		confidence := 0.5 + 0.1*float64(matches)
		if confidence > 0.9 {
			confidence = 0.9
		}

		return issue.Classification{
			Category:   entry.category.String(),
			Confidence: confidence,
			Source:     "static",
		}, nil
	}

	return issue.Classification{
		Category:   vo.CategoryOther.String(),
		Confidence: 0.0,
		Source:     "static",
	}, nil
}
