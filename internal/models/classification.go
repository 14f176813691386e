package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Category is one of the eight fixed labels a classification may receive.
type Category int

// Category variants. The zero value is Technology, which is also the
// fallback when no keyword matches.
const (
	CategoryTechnology Category = iota
	CategoryEntertainment
	CategoryEducation
	CategorySports
	CategoryFood
	CategoryFashion
	CategoryHealth
	CategoryTravel
)

var categoryNames = [...]string{
	CategoryTechnology:    "Technology",
	CategoryEntertainment: "Entertainment",
	CategoryEducation:     "Education",
	CategorySports:        "Sports",
	CategoryFood:          "Food",
	CategoryFashion:       "Fashion",
	CategoryHealth:        "Health",
	CategoryTravel:        "Travel",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// String returns the canonical name used in API responses and stored records.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the eight defined categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// ParseCategory returns the category with the given canonical name.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// MarshalText renders the canonical name, so JSON encodes categories as strings.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a canonical name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return &UnknownCategoryError{Name: string(text)}
	}
	*c = parsed
	return nil
}

// UnknownCategoryError is returned when a name does not match any category.
type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Name)
}

// KeywordRule maps a lowercase text fragment to a category and confidence.
type KeywordRule struct {
	Keyword    string
	Category   Category
	Confidence float64
}

// ClassificationRequest is the body accepted by POST /categorize.
type ClassificationRequest struct {
	Object string `json:"object"`
}

// ClassificationResult is the outcome of classifying one object.
type ClassificationResult struct {
	Object     string   `json:"object"`
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

// ClassificationRecord is the persisted trace of one classification.
type ClassificationRecord struct {
	ID         uuid.UUID `json:"id"`
	Object     string    `json:"object"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewClassificationRecord builds the record for a result. ID and CreatedAt are
// filled in by the store on insert.
func NewClassificationRecord(r ClassificationResult) *ClassificationRecord {
	return &ClassificationRecord{
		Object:     r.Object,
		Category:   r.Category.String(),
		Confidence: r.Confidence,
	}
}

// CategoryCount is the number of stored records for one category.
type CategoryCount struct {
	Category string
	Count    int64
}
