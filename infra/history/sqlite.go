package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	corehistory "github.com/kilianp07/taskalloc/core/history"
)

// SQLiteStore persists run records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS optimization_runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT NOT NULL UNIQUE,
        ts INTEGER NOT NULL,
        task_count INTEGER,
        employee_count INTEGER,
        generations INTEGER,
        execution_ns INTEGER,
        best_fitness REAL,
        total_cost REAL,
        total_duration_days INTEGER,
        avg_efficiency REAL,
        interrupted INTEGER
    );`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Append inserts the record. Run ids are unique.
func (s *SQLiteStore) Append(ctx context.Context, rec corehistory.Record) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO optimization_runs (run_id, ts, task_count, employee_count,
        generations, execution_ns, best_fitness, total_cost, total_duration_days, avg_efficiency, interrupted)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Timestamp.UnixNano(), rec.TaskCount, rec.EmployeeCount, rec.Generations,
		int64(rec.ExecutionTime), rec.BestFitness, rec.TotalCost, rec.TotalDurationDays,
		rec.AvgEfficiency, rec.Interrupted)
	return err
}

// List returns the newest records first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]corehistory.Record, error) {
	query := `SELECT run_id, ts, task_count, employee_count, generations, execution_ns,
        best_fitness, total_cost, total_duration_days, avg_efficiency, interrupted
        FROM optimization_runs ORDER BY ts DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []corehistory.Record
	for rows.Next() {
		var r corehistory.Record
		var ts, execNS int64
		if err := rows.Scan(&r.RunID, &ts, &r.TaskCount, &r.EmployeeCount, &r.Generations, &execNS,
			&r.BestFitness, &r.TotalCost, &r.TotalDurationDays, &r.AvgEfficiency, &r.Interrupted); err != nil {
			return nil, err
		}
		r.Timestamp = time.Unix(0, ts).UTC()
		r.ExecutionTime = time.Duration(execNS)
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
