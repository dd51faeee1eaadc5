package issue

import (
	"context"
	"strings"

	vo "campusmind/internal/domain/issue/valueobjects"
)

// Classification is the outcome of one classifier run, kept on the issue for
// observability of the priority heuristic.
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// Classifier is the external text-classification capability. It is optional:
// a failing or absent classifier degrades to FallbackClassification, never an
// error surfaced to the caller.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// FallbackClassification applies when no classifier is available or the call
// fails.
func FallbackClassification() Classification {
	return Classification{
		Category:   vo.CategoryOther.String(),
		Confidence: 0.0,
		Source:     "fallback",
	}
}

// hazardKeywords force critical priority regardless of classifier output.
var hazardKeywords = []string{"fire", "sparking", "danger", "broken", "injury", "accident"}

// urgencyKeywords force high priority when no hazard keyword matched.
var urgencyKeywords = []string{"urgent", "asap", "soon", "today"}

// lowConfidenceThreshold is the classifier confidence below which an issue is
// bumped to medium rather than low.
const lowConfidenceThreshold = 0.45

// PriorityFor derives an issue priority from its description and the
// classifier confidence. Precedence: hazard keywords, urgency keywords,
// low confidence, low. Pure, so reclassification with identical input is
// idempotent.
func PriorityFor(description string, confidence float64) vo.Priority {
	text := strings.ToLower(description)

	for _, k := range hazardKeywords {
		if strings.Contains(text, k) {
			return vo.PriorityCritical
		}
	}

	for _, k := range urgencyKeywords {
		if strings.Contains(text, k) {
			return vo.PriorityHigh
		}
	}

	if confidence < lowConfidenceThreshold {
		return vo.PriorityMedium
	}

	return vo.PriorityLow
}

// Classify runs the classifier (nil-safe) and folds the result through the
// priority heuristic.
func Classify(ctx context.Context, classifier Classifier, description string) (Classification, vo.Category, vo.Priority) {
	classification := FallbackClassification()
	if classifier != nil {
		if result, err := classifier.Classify(ctx, description); err == nil {
			classification = result
		}
	}

	category := vo.NormalizeCategory(classification.Category)
	priority := PriorityFor(description, classification.Confidence)
	return classification, category, priority
}
