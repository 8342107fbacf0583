package student

import (
	"context"
	"errors"
	"strings"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

var ErrNotFound = errors.New("student not found")

// Student is the profile synced from the identity provider. This service
// never creates students on its own; records arrive through webhooks and are
// read-only everywhere else.
type Student struct {
	ID        string `json:"id"` // identity-provider user id
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Plan      string `json:"plan"` // free|premium
	CreatedAt int64  `json:"created_at"`
}

// FullName joins the name parts, tolerating a missing half.
func (s Student) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
}

func (s Student) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("student id required")
	}
	if s.Plan != "" && s.Plan != PlanFree && s.Plan != PlanPremium {
		return errors.New("plan must be free or premium")
	}
	return nil
}

type Store interface {
	Upsert(ctx context.Context, s Student) error
	Get(ctx context.Context, id string) (Student, error)
	List(ctx context.Context) ([]Student, error)
	Delete(ctx context.Context, id string) error
}
