package course

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("course not found")

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Put(ctx context.Context, c Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	wj, err := json.Marshal(c.Weeks)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO courses
		(name,display_name,description,duration_weeks,weekly_effort,live_classes_per_week,weeks_json,active,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (name) DO UPDATE SET
			display_name=EXCLUDED.display_name,
			description=EXCLUDED.description,
			duration_weeks=EXCLUDED.duration_weeks,
			weekly_effort=EXCLUDED.weekly_effort,
			live_classes_per_week=EXCLUDED.live_classes_per_week,
			weeks_json=EXCLUDED.weeks_json,
			active=EXCLUDED.active`,
		c.Name, c.DisplayName, c.Description, c.DurationWeeks, c.WeeklyEffort,
		c.LiveClassesPerWeek, string(wj), c.Active, time.Now().Unix())
	return err
}

func (s *SQLStore) Get(ctx context.Context, name string) (Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT name,display_name,description,duration_weeks,weekly_effort,live_classes_per_week,weeks_json,active,created_at
		FROM courses WHERE name=$1`, name)
	return scanCourse(row)
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Course, error) {
	q := `SELECT name,display_name,description,duration_weeks,weekly_effort,live_classes_per_week,weeks_json,active,created_at
		FROM courses WHERE 1=1`
	args := []any{}
	if opts.ActiveOnly {
		q += ` AND active=` + boolLit(s.driver, true)
	}
	if opts.Q != "" {
		args = append(args, "%"+opts.Q+"%")
		q += fmt.Sprintf(` AND (name LIKE $%d OR display_name LIKE $%d)`, len(args), len(args))
	}
	q += ` ORDER BY created_at DESC, name`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
		if opts.Offset > 0 {
			args = append(args, opts.Offset)
			q += fmt.Sprintf(` OFFSET $%d`, len(args))
		}
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE name=$1`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface{ Scan(dest ...any) error }

func scanCourse(row scanner) (Course, error) {
	var c Course
	var wjson string
	err := row.Scan(&c.Name, &c.DisplayName, &c.Description, &c.DurationWeeks,
		&c.WeeklyEffort, &c.LiveClassesPerWeek, &wjson, &c.Active, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	if err != nil {
		return Course{}, err
	}
	if err := json.Unmarshal([]byte(wjson), &c.Weeks); err != nil {
		return Course{}, err
	}
	return c, nil
}

func boolLit(driver string, v bool) string {
	if driver == "sqlite" {
		if v {
			return "1"
		}
		return "0"
	}
	if v {
		return "TRUE"
	}
	return "FALSE"
}
