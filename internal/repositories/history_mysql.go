package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"touristguide/internal/domain/models"
)

const historyTable = "trip_history"

type MySQLHistoryRepository struct {
	DB    *sql.DB
	Limit int
}

// EnsureSchema creates trip_history when the database does not have it yet.
func (r MySQLHistoryRepository) EnsureSchema(ctx context.Context) error {
	ok, err := hasTable(ctx, r.DB, historyTable)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err = r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS trip_history (
			id         VARCHAR(36)  NOT NULL PRIMARY KEY,
			place      VARCHAR(255) NOT NULL,
			days       INT          NOT NULL,
			budget     DOUBLE       NOT NULL,
			summary    JSON         NOT NULL,
			created_at DATETIME(6)  NOT NULL,
			KEY idx_trip_history_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`)
	if err != nil {
		return fmt.Errorf("create %s: %w", historyTable, err)
	}
	return nil
}

func (r MySQLHistoryRepository) Append(ctx context.Context, entry models.HistoryEntry) error {
	summary, err := json.Marshal(entry.Summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO trip_history (id, place, days, budget, summary, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Place, entry.Days, entry.Budget, summary, entry.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func (r MySQLHistoryRepository) List(ctx context.Context) ([]models.HistoryEntry, error) {
	query := `SELECT id, place, days, budget, summary, created_at FROM trip_history ORDER BY created_at DESC, id DESC`
	args := []any{}
	if r.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, r.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := []models.HistoryEntry{}
	for rows.Next() {
		var (
			e       models.HistoryEntry
			summary []byte
		)
		if err := rows.Scan(&e.ID, &e.Place, &e.Days, &e.Budget, &summary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if err := json.Unmarshal(summary, &e.Summary); err != nil {
			return nil, fmt.Errorf("decode summary of %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	slices.Reverse(out)
	return out, nil
}

func (r MySQLHistoryRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r MySQLHistoryRepository) Name() string { return "mysql" }

func hasTable(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var name sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe table %s: %w", table, err)
	}
	return name.Valid && name.String != "", nil
}
