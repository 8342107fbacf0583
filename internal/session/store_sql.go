package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db     *sql.DB
	driver string
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Create(ctx context.Context, us UpcomingSession) (UpcomingSession, error) {
	if err := us.Validate(); err != nil {
		return UpcomingSession{}, err
	}
	if us.ID == "" {
		us.ID = uuid.NewString()
	}
	if us.CreatedAt == 0 {
		us.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions (id,title,description,date,time,link,active,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		us.ID, us.Title, us.Description, us.Date, us.Time, us.Link, us.Active, us.CreatedAt)
	if err != nil {
		return UpcomingSession{}, err
	}
	return us, nil
}

func (s *SQLStore) List(ctx context.Context, activeOnly bool) ([]UpcomingSession, error) {
	q := `SELECT id,title,description,date,time,link,active,created_at FROM sessions`
	if activeOnly {
		if s.driver == "sqlite" {
			q += ` WHERE active=1`
		} else {
			q += ` WHERE active=TRUE`
		}
	}
	q += ` ORDER BY date, time, id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UpcomingSession
	for rows.Next() {
		var us UpcomingSession
		if err := rows.Scan(&us.ID, &us.Title, &us.Description, &us.Date, &us.Time, &us.Link, &us.Active, &us.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
