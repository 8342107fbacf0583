package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/Untraddgit/untraddcareer-sub001/internal/rbac"
)

// EnsureAdmin upserts the bootstrap admin account so a fresh database can
// serve /auth/login without out-of-band SQL. No-op when the hash is unset;
// re-running updates the hash in place.
func EnsureAdmin(ctx context.Context, db *sql.DB, username, passHash string) error {
	if username == "" || passHash == "" {
		return nil
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (username) DO UPDATE SET password_hash=excluded.password_hash, role=excluded.role`,
		username, username, passHash, rbac.RoleAdmin, time.Now().Unix())
	return err
}
