package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"NewsMap/internal/domain"
	"NewsMap/internal/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository records section run outcomes into Postgres.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.RunRepository = (*PostgresRepository)(nil)

// Open dials Postgres with the lib/pq driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveRun appends one run snapshot to the history table.
func (r *PostgresRepository) SaveRun(ctx context.Context, rec domain.RunRecord) error {
	if r == nil || r.db == nil {
		return nil
	}

	query, args, err := psql.
		Insert("newsmap_runs").
		Columns("section", "page_file", "image_file", "theme", "story_count", "located_count", "status").
		Values(rec.Section, rec.PageFile, rec.ImageFile, rec.Theme, rec.StoryCount, rec.LocatedCount, string(rec.Status)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	return nil
}

// RecentRuns returns the latest run snapshots, newest first.
func (r *PostgresRepository) RecentRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if r == nil || r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query, args, err := psql.
		Select("section", "page_file", "image_file", "theme", "story_count", "located_count", "status").
		From("newsmap_runs").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var status string
		if err := rows.Scan(&rec.Section, &rec.PageFile, &rec.ImageFile, &rec.Theme,
			&rec.StoryCount, &rec.LocatedCount, &status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Status = domain.RunStatus(status)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return records, nil
}
