package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DemoSubjects are inserted by SeedDemoData.
var DemoSubjects = []string{
	"Математика",
	"Физика",
	"Информатика",
	"История",
	"Литература",
	"Химия",
	"Биология",
	"География",
	"Английский язык",
	"Физкультура",
}

// DemoRooms are inserted by SeedDemoData.
var DemoRooms = []string{
	"Ауд. 101",
	"Ауд. 102",
	"Ауд. 103",
	"Ауд. 201",
	"Ауд. 202",
	"Ауд. 203",
	"Ауд. 301",
	"Ауд. 302",
	"Ауд. 303",
	"Ауд. 401",
}

// SeedRepository resets the catalogs to demo data.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository creates a new repository instance.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// SeedDemoData deletes every lesson, subject and room, then inserts the demo
// catalogs. It runs in one transaction.
func (r *SeedRepository) SeedDemoData(ctx context.Context) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"lessons", "subjects", "rooms"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for _, name := range DemoSubjects {
		if _, err = tx.ExecContext(ctx, `INSERT INTO subjects (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("insert subject %s: %w", name, err)
		}
	}
	for _, name := range DemoRooms {
		if _, err = tx.ExecContext(ctx, `INSERT INTO rooms (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("insert room %s: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
