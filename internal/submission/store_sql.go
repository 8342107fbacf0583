package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

func (s *SQLStore) Create(ctx context.Context, sub Submission) (Submission, error) {
	if err := sub.Validate(); err != nil {
		return Submission{}, err
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.Status = StatusPending
	if sub.SubmittedAt == 0 {
		sub.SubmittedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO submissions
		(id,student_id,course_name,week,module,link,submitted_at,status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		sub.ID, sub.StudentID, sub.CourseName, sub.Week, sub.Module, sub.Link, sub.SubmittedAt, sub.Status)
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Submission, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,student_id,course_name,week,module,link,submitted_at,status,score,max_score,feedback,graded_by,graded_at
		FROM submissions WHERE id=$1`, id)
	return scanSubmission(row)
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Submission, error) {
	q := `SELECT id,student_id,course_name,week,module,link,submitted_at,status,score,max_score,feedback,graded_by,graded_at
		FROM submissions WHERE 1=1`
	args := []any{}
	add := func(cond, val string) {
		args = append(args, val)
		q += fmt.Sprintf(` AND %s=$%d`, cond, len(args))
	}
	if opts.StudentID != "" {
		add("student_id", opts.StudentID)
	}
	if opts.CourseName != "" {
		add("course_name", opts.CourseName)
	}
	if opts.Status != "" {
		add("status", opts.Status)
	}
	q += ` ORDER BY submitted_at ASC, id`
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
	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// Grade flips exactly one pending row; the status guard in the WHERE clause
// makes the transition atomic under concurrent graders.
func (s *SQLStore) Grade(ctx context.Context, id string, in GradeInput, gradedBy string) (Submission, error) {
	if err := in.Validate(); err != nil {
		return Submission{}, err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE submissions
		SET status=$1, score=$2, max_score=$3, feedback=$4, graded_by=$5, graded_at=$6
		WHERE id=$7 AND status=$8`,
		StatusGraded, in.Score, in.MaxScore, in.Feedback, gradedBy, time.Now().Unix(), id, StatusPending)
	if err != nil {
		return Submission{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// distinguish missing from already graded
		if _, gerr := s.Get(ctx, id); gerr != nil {
			return Submission{}, gerr
		}
		return Submission{}, ErrAlreadyGraded
	}
	return s.Get(ctx, id)
}

type scanner interface{ Scan(dest ...any) error }

func scanSubmission(row scanner) (Submission, error) {
	var sub Submission
	var score, maxScore sql.NullFloat64
	var feedback, gradedBy sql.NullString
	var gradedAt sql.NullInt64
	err := row.Scan(&sub.ID, &sub.StudentID, &sub.CourseName, &sub.Week, &sub.Module,
		&sub.Link, &sub.SubmittedAt, &sub.Status, &score, &maxScore, &feedback, &gradedBy, &gradedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, ErrNotFound
	}
	if err != nil {
		return Submission{}, err
	}
	if score.Valid {
		v := score.Float64
		sub.Score = &v
	}
	if maxScore.Valid {
		v := maxScore.Float64
		sub.MaxScore = &v
	}
	sub.Feedback = feedback.String
	sub.GradedBy = gradedBy.String
	sub.GradedAt = gradedAt.Int64
	return sub, nil
}
