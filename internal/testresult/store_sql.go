package testresult

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

const resultCols = `id,student_id,score,time_spent_sec,completed_at`

func (s *SQLStore) Add(ctx context.Context, r TestResult) (TestResult, error) {
	if err := r.Validate(); err != nil {
		return TestResult{}, err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CompletedAt == 0 {
		r.CompletedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO test_results (`+resultCols+`)
		VALUES ($1,$2,$3,$4,$5)`,
		r.ID, r.StudentID, r.Score, r.TimeSpentSec, r.CompletedAt)
	if err != nil {
		return TestResult{}, err
	}
	return r, nil
}

func (s *SQLStore) ListByStudent(ctx context.Context, studentID string) ([]TestResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+resultCols+` FROM test_results
		WHERE student_id=$1 ORDER BY completed_at DESC, id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (s *SQLStore) Latest(ctx context.Context, studentID string) (TestResult, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+resultCols+` FROM test_results
		WHERE student_id=$1 ORDER BY completed_at DESC, id LIMIT 1`, studentID)
	var r TestResult
	err := row.Scan(&r.ID, &r.StudentID, &r.Score, &r.TimeSpentSec, &r.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return TestResult{}, ErrNotFound
	}
	if err != nil {
		return TestResult{}, err
	}
	return r, nil
}

func (s *SQLStore) List(ctx context.Context) ([]TestResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+resultCols+` FROM test_results
		ORDER BY completed_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows *sql.Rows) ([]TestResult, error) {
	var out []TestResult
	for rows.Next() {
		var r TestResult
		if err := rows.Scan(&r.ID, &r.StudentID, &r.Score, &r.TimeSpentSec, &r.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
