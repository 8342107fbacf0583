// Package audit records admin mutations in an append-only event log so the
// dashboard's destructive actions (course/session deletes, grading, feedback
// edits) stay traceable.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"
)

// Event types appended by the admin handlers.
const (
	TypeCourseSaved      = "CourseSaved"
	TypeCourseDeleted    = "CourseDeleted"
	TypeSessionCreated   = "SessionCreated"
	TypeSessionDeleted   = "SessionDeleted"
	TypeSubmissionGraded = "SubmissionGraded"
	TypeFeedbackSaved    = "FeedbackSaved"
)

type Event struct {
	Offset    int64
	Actor     string // admin user id
	Type      string
	Key       string // natural key: course name, session id, submission id
	DataJSON  string
	CreatedAt int64
}

type Log struct{ db *sql.DB }

func NewLog(db *sql.DB) *Log { return &Log{db: db} }

func (l *Log) Append(ctx context.Context, e Event) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO event_log (actor, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.Actor, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// Record marshals payload and appends; audit failures are logged, never
// propagated; the mutation itself already succeeded.
func (l *Log) Record(ctx context.Context, actor, typ, key string, payload any) {
	if l == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte("{}")
	}
	if err := l.Append(ctx, Event{Actor: actor, Type: typ, Key: key, DataJSON: string(data)}); err != nil {
		log.Printf("audit: append %s %s: %v", typ, key, err)
	}
}
