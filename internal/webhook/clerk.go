// Package webhook ingests identity-provider events. Payloads are accepted
// only after svix signature verification: verify-or-reject, never
// verify-or-ignore.
package webhook

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
)

type clerkEvent struct {
	Type string `json:"type"` // user.created | user.updated | user.deleted
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		PublicMetadata struct {
			Plan string `json:"plan"`
		} `json:"public_metadata"`
	} `json:"data"`
}

// ClerkHandler verifies the svix-id/svix-timestamp/svix-signature headers
// against the raw body, then syncs the student record.
func ClerkHandler(secret string, students student.Store) http.HandlerFunc {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		log.Printf("webhook: bad secret: %v", err)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if wh == nil {
			http.Error(w, "webhook not configured", http.StatusServiceUnavailable)
			return
		}
		payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		if err := wh.Verify(payload, r.Header); err != nil {
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}

		var ev clerkEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		if ev.Data.ID == "" {
			http.Error(w, "missing user id", http.StatusBadRequest)
			return
		}

		switch ev.Type {
		case "user.created", "user.updated":
			// unknown plan metadata must not poison the event: the provider
			// retries non-2xx responses forever
			plan := ev.Data.PublicMetadata.Plan
			if plan != "" && plan != student.PlanFree && plan != student.PlanPremium {
				log.Printf("webhook: user %s: unknown plan %q, defaulting to %s", ev.Data.ID, plan, student.PlanFree)
				plan = student.PlanFree
			}
			st := student.Student{
				ID:        ev.Data.ID,
				FirstName: ev.Data.FirstName,
				LastName:  ev.Data.LastName,
				Plan:      plan,
			}
			if len(ev.Data.EmailAddresses) > 0 {
				st.Email = ev.Data.EmailAddresses[0].EmailAddress
			}
			if err := students.Upsert(r.Context(), st); err != nil {
				log.Printf("webhook: upsert student %s: %v", st.ID, err)
				http.Error(w, "sync failed", http.StatusInternalServerError)
				return
			}
		case "user.deleted":
			if err := students.Delete(r.Context(), ev.Data.ID); err != nil && err != student.ErrNotFound {
				log.Printf("webhook: delete student %s: %v", ev.Data.ID, err)
				http.Error(w, "sync failed", http.StatusInternalServerError)
				return
			}
		default:
			// other event types are acknowledged and skipped
		}
		w.WriteHeader(http.StatusOK)
	}
}
