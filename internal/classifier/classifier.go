// Package classifier assigns free-text object labels to a category using a
// static keyword table.
package classifier

import (
	"strings"

	"microcat/internal/models"
)

// Fallback values returned when no keyword matches.
const (
	DefaultCategory   = models.CategoryTechnology
	DefaultConfidence = 0.3
)

// Classify returns the category and confidence for object.
//
// Matching is case-insensitive substring containment, so "Classic" matches
// "class". Rules are tried in table order and the first hit wins. Inputs with
// no known keyword, including the empty string, get DefaultCategory and
// DefaultConfidence.
func Classify(object string) (models.Category, float64) {
	normalized := strings.ToLower(object)
	for _, r := range rules {
		if strings.Contains(normalized, r.Keyword) {
			return r.Category, r.Confidence
		}
	}
	return DefaultCategory, DefaultConfidence
}

// Result classifies object and packages it with the echoed input.
func Result(object string) models.ClassificationResult {
	category, confidence := Classify(object)
	return models.ClassificationResult{
		Object:     object,
		Category:   category,
		Confidence: confidence,
	}
}

// Rules returns a copy of the keyword table in match order.
func Rules() []models.KeywordRule {
	out := make([]models.KeywordRule, len(rules))
	copy(out, rules)
	return out
}
