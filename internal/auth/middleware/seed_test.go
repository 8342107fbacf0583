package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Untraddgit/untraddcareer-sub001/internal/db"
	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	h, err := db.Open(context.Background(), db.DriverSQLite,
		"file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestEnsureAdminLoginOnFreshDB(t *testing.T) {
	dbh := openTestDB(t, "seed_fresh")
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := EnsureAdmin(context.Background(), dbh, "admin", string(hash)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewAuthService("test-hmac")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	LoginHandler(svc, dbh)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(out.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != rbac.RoleAdmin {
		t.Fatalf("role = %q, want %q", claims.Role, rbac.RoleAdmin)
	}
}

func TestEnsureAdminIdempotentAndRotatesHash(t *testing.T) {
	dbh := openTestDB(t, "seed_rotate")
	h1, _ := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.MinCost)
	h2, _ := bcrypt.GenerateFromPassword([]byte("new"), bcrypt.MinCost)

	if err := EnsureAdmin(context.Background(), dbh, "admin", string(h1)); err != nil {
		t.Fatal(err)
	}
	if err := EnsureAdmin(context.Background(), dbh, "admin", string(h2)); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	var n int
	if err := dbh.QueryRow(`SELECT COUNT(*) FROM users WHERE username='admin'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("admin rows = %d, want 1", n)
	}
	var stored string
	if err := dbh.QueryRow(`SELECT password_hash FROM users WHERE username='admin'`).Scan(&stored); err != nil {
		t.Fatal(err)
	}
	if stored != string(h2) {
		t.Fatal("hash not rotated on re-seed")
	}
}

func TestEnsureAdminNoopWithoutHash(t *testing.T) {
	dbh := openTestDB(t, "seed_noop")
	if err := EnsureAdmin(context.Background(), dbh, "admin", ""); err != nil {
		t.Fatalf("noop seed: %v", err)
	}
	var n int
	if err := dbh.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("users rows = %d, want 0", n)
	}
}
