package db

import (
	"context"
	"fmt"

	"microcat/internal/models"
)

// InsertClassification appends a classification record. The store assigns ID
// and CreatedAt, which are written back into rec.
func (d *DB) InsertClassification(ctx context.Context, rec *models.ClassificationRecord) error {
	if _, ok := models.ParseCategory(rec.Category); !ok {
		return fmt.Errorf("%w: %w: %q", ErrInsertClassification, ErrUnknownCategory, rec.Category)
	}

	err := d.Pool.QueryRow(ctx, `
		INSERT INTO classifications (object, category, confidence)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, rec.Object, rec.Category, rec.Confidence).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInsertClassification, err)
	}
	return nil
}

// CountClassificationsByCategory returns the number of stored records per
// category. Categories with no records are omitted.
func (d *DB) CountClassificationsByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT category, COUNT(*)
		FROM classifications
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
