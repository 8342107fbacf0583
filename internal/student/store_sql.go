package student

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Upsert(ctx context.Context, st Student) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if st.Plan == "" {
		st.Plan = PlanFree
	}
	if st.CreatedAt == 0 {
		st.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO students (id,first_name,last_name,email,plan,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			first_name=EXCLUDED.first_name,
			last_name=EXCLUDED.last_name,
			email=EXCLUDED.email,
			plan=EXCLUDED.plan`,
		st.ID, st.FirstName, st.LastName, st.Email, st.Plan, st.CreatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Student, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,first_name,last_name,email,plan,created_at
		FROM students WHERE id=$1`, id)
	var st Student
	err := row.Scan(&st.ID, &st.FirstName, &st.LastName, &st.Email, &st.Plan, &st.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Student{}, ErrNotFound
	}
	if err != nil {
		return Student{}, err
	}
	return st, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,first_name,last_name,email,plan,created_at
		FROM students ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.FirstName, &st.LastName, &st.Email, &st.Plan, &st.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
