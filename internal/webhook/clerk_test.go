package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/Untraddgit/untraddcareer-sub001/internal/student"
)

const testSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func signedRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	wh, err := svix.NewWebhook(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	ts := time.Now()
	sig, err := wh.Sign("msg_test", ts, []byte(body))
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/clerk", strings.NewReader(body))
	req.Header.Set("svix-id", "msg_test")
	req.Header.Set("svix-timestamp", strconv.FormatInt(ts.Unix(), 10))
	req.Header.Set("svix-signature", sig)
	return req
}

func TestClerkHandlerUpsertsOnValidSignature(t *testing.T) {
	students := student.NewInMemoryStore()
	h := ClerkHandler(testSecret, students)

	body := `{"type":"user.created","data":{"id":"user_1","first_name":"Asha","last_name":"Verma","email_addresses":[{"email_address":"asha@example.com"}],"public_metadata":{"plan":"premium"}}}`
	rec := httptest.NewRecorder()
	h(rec, signedRequest(t, body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	st, err := students.Get(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("student not synced: %v", err)
	}
	if st.Email != "asha@example.com" || st.Plan != "premium" {
		t.Fatalf("unexpected student: %+v", st)
	}
}

func TestClerkHandlerCoercesUnknownPlan(t *testing.T) {
	students := student.NewInMemoryStore()
	h := ClerkHandler(testSecret, students)

	body := `{"type":"user.created","data":{"id":"user_4","public_metadata":{"plan":"vip"}}}`
	rec := httptest.NewRecorder()
	h(rec, signedRequest(t, body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unknown plan must not fail the event)", rec.Code)
	}
	st, err := students.Get(context.Background(), "user_4")
	if err != nil {
		t.Fatalf("student not synced: %v", err)
	}
	if st.Plan != student.PlanFree {
		t.Fatalf("plan = %q, want %q", st.Plan, student.PlanFree)
	}
}

func TestClerkHandlerRejectsTamperedPayload(t *testing.T) {
	students := student.NewInMemoryStore()
	h := ClerkHandler(testSecret, students)

	req := signedRequest(t, `{"type":"user.created","data":{"id":"user_2"}}`)
	// swap the body after signing
	req.Body = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"user.created","data":{"id":"user_evil"}}`)).Body

	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if _, err := students.Get(context.Background(), "user_evil"); err == nil {
		t.Fatal("tampered event must not sync")
	}
}

func TestClerkHandlerDeletesStudent(t *testing.T) {
	students := student.NewInMemoryStore()
	if err := students.Upsert(context.Background(), student.Student{ID: "user_3"}); err != nil {
		t.Fatal(err)
	}
	h := ClerkHandler(testSecret, students)

	rec := httptest.NewRecorder()
	h(rec, signedRequest(t, `{"type":"user.deleted","data":{"id":"user_3"}}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, err := students.Get(context.Background(), "user_3"); err != student.ErrNotFound {
		t.Fatalf("student still present after delete, err=%v", err)
	}
}
