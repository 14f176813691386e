package classifier

import "microcat/internal/models"

// rules is the keyword table, matched top to bottom. Order is part of the
// contract: when an input contains several keywords, the earliest row wins.
var rules = []models.KeywordRule{
	// Technology
	{Keyword: "computer", Category: models.CategoryTechnology, Confidence: 0.9},
	{Keyword: "laptop", Category: models.CategoryTechnology, Confidence: 0.8},
	{Keyword: "smartphone", Category: models.CategoryTechnology, Confidence: 0.9},
	{Keyword: "tablet", Category: models.CategoryTechnology, Confidence: 0.7},

	// Entertainment
	{Keyword: "movie", Category: models.CategoryEntertainment, Confidence: 0.9},
	{Keyword: "film", Category: models.CategoryEntertainment, Confidence: 0.8},
	{Keyword: "series", Category: models.CategoryEntertainment, Confidence: 0.7},
	{Keyword: "concert", Category: models.CategoryEntertainment, Confidence: 0.8},
	{Keyword: "game", Category: models.CategoryEntertainment, Confidence: 0.7},

	// Education
	{Keyword: "book", Category: models.CategoryEducation, Confidence: 0.8},
	{Keyword: "course", Category: models.CategoryEducation, Confidence: 0.7},
	{Keyword: "class", Category: models.CategoryEducation, Confidence: 0.6},
	{Keyword: "lecture", Category: models.CategoryEducation, Confidence: 0.7},

	// Sports
	{Keyword: "ball", Category: models.CategorySports, Confidence: 0.6},
	{Keyword: "racket", Category: models.CategorySports, Confidence: 0.7},
	{Keyword: "jersey", Category: models.CategorySports, Confidence: 0.6},
	{Keyword: "equipment", Category: models.CategorySports, Confidence: 0.5},

	// Food
	{Keyword: "recipe", Category: models.CategoryFood, Confidence: 0.8},
	{Keyword: "kitchen", Category: models.CategoryFood, Confidence: 0.6},
	{Keyword: "cuisine", Category: models.CategoryFood, Confidence: 0.7},

	// Fashion
	{Keyword: "dress", Category: models.CategoryFashion, Confidence: 0.8},
	{Keyword: "shoes", Category: models.CategoryFashion, Confidence: 0.7},
	{Keyword: "accessory", Category: models.CategoryFashion, Confidence: 0.6},

	// Health
	{Keyword: "fitness", Category: models.CategoryHealth, Confidence: 0.8},
	{Keyword: "medicine", Category: models.CategoryHealth, Confidence: 0.7},
	{Keyword: "wellness", Category: models.CategoryHealth, Confidence: 0.6},

	// Travel
	{Keyword: "passport", Category: models.CategoryTravel, Confidence: 0.7},
	{Keyword: "luggage", Category: models.CategoryTravel, Confidence: 0.6},
	{Keyword: "destination", Category: models.CategoryTravel, Confidence: 0.5},
}
