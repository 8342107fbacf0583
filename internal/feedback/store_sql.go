package feedback

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

func (s *SQLStore) Put(ctx context.Context, f StudentFeedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.UpdatedAt == 0 {
		f.UpdatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO feedback
		(student_id,communication_rating,technical_rating,problem_solving_rating,strengths,improvements,recommended_path,notes,updated_by,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (student_id) DO UPDATE SET
			communication_rating=EXCLUDED.communication_rating,
			technical_rating=EXCLUDED.technical_rating,
			problem_solving_rating=EXCLUDED.problem_solving_rating,
			strengths=EXCLUDED.strengths,
			improvements=EXCLUDED.improvements,
			recommended_path=EXCLUDED.recommended_path,
			notes=EXCLUDED.notes,
			updated_by=EXCLUDED.updated_by,
			updated_at=EXCLUDED.updated_at`,
		f.StudentID, f.CommunicationRating, f.TechnicalRating, f.ProblemSolvingRating,
		f.Strengths, f.Improvements, f.RecommendedPath, f.Notes, f.UpdatedBy, f.UpdatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, studentID string) (StudentFeedback, error) {
	row := s.db.QueryRowContext(ctx, `SELECT student_id,communication_rating,technical_rating,problem_solving_rating,strengths,improvements,recommended_path,notes,updated_by,updated_at
		FROM feedback WHERE student_id=$1`, studentID)
	var f StudentFeedback
	err := row.Scan(&f.StudentID, &f.CommunicationRating, &f.TechnicalRating, &f.ProblemSolvingRating,
		&f.Strengths, &f.Improvements, &f.RecommendedPath, &f.Notes, &f.UpdatedBy, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StudentFeedback{}, ErrNotFound
	}
	if err != nil {
		return StudentFeedback{}, err
	}
	return f, nil
}

func (s *SQLStore) Delete(ctx context.Context, studentID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE student_id=$1`, studentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
