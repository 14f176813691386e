package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"microcat/internal/db"
	"microcat/internal/models"
	"microcat/internal/testutil"
)

func TestInsertClassification(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	rec := &models.ClassificationRecord{
		Object:     "computer",
		Category:   "Technology",
		Confidence: 0.9,
	}
	if err := database.InsertClassification(ctx, rec); err != nil {
		t.Fatalf("InsertClassification() error = %v", err)
	}

	if rec.ID == uuid.Nil {
		t.Error("expected store-assigned ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected store-assigned CreatedAt")
	}

	var object, category string
	var confidence float64
	err := database.Pool.QueryRow(ctx,
		`SELECT object, category, confidence FROM classifications WHERE id = $1`, rec.ID,
	).Scan(&object, &category, &confidence)
	if err != nil {
		t.Fatalf("failed to read back record: %v", err)
	}
	if object != "computer" || category != "Technology" || confidence != 0.9 {
		t.Errorf("stored (%q, %q, %v), want (computer, Technology, 0.9)", object, category, confidence)
	}
}

func TestInsertClassification_EmptyObject(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	rec := &models.ClassificationRecord{Object: "", Category: "Technology", Confidence: 0.3}
	if err := database.InsertClassification(context.Background(), rec); err != nil {
		t.Fatalf("InsertClassification() error = %v", err)
	}
}

func TestInsertClassification_UnknownCategory(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	rec := &models.ClassificationRecord{Object: "x", Category: "Gardening", Confidence: 0.5}
	err := database.InsertClassification(context.Background(), rec)
	if !errors.Is(err, db.ErrInsertClassification) {
		t.Errorf("InsertClassification() error = %v, want ErrInsertClassification", err)
	}
	if !errors.Is(err, db.ErrUnknownCategory) {
		t.Errorf("InsertClassification() error = %v, want ErrUnknownCategory", err)
	}
}

func TestInsertClassification_ConstraintViolation(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	rec := &models.ClassificationRecord{Object: "x", Category: "Food", Confidence: 1.5}
	if err := database.InsertClassification(context.Background(), rec); !errors.Is(err, db.ErrInsertClassification) {
		t.Errorf("InsertClassification() error = %v, want ErrInsertClassification", err)
	}
}

func TestCountClassificationsByCategory(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	for _, rec := range []models.ClassificationRecord{
		{Object: "computer", Category: "Technology", Confidence: 0.9},
		{Object: "unknown", Category: "Technology", Confidence: 0.3},
		{Object: "recipe", Category: "Food", Confidence: 0.8},
	} {
		rec := rec
		if err := database.InsertClassification(ctx, &rec); err != nil {
			t.Fatalf("InsertClassification() error = %v", err)
		}
	}

	counts, err := database.CountClassificationsByCategory(ctx)
	if err != nil {
		t.Fatalf("CountClassificationsByCategory() error = %v", err)
	}

	got := make(map[string]int64)
	for _, c := range counts {
		got[c.Category] = c.Count
	}
	if got["Technology"] != 2 || got["Food"] != 1 || len(got) != 2 {
		t.Errorf("CountClassificationsByCategory() = %v, want Technology=2 Food=1", got)
	}
}

func TestPing(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	if err := database.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
