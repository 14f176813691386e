package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrInsertClassification = errors.New("failed to insert classification")
	ErrUnknownCategory      = errors.New("record category is not a known category name")
)
