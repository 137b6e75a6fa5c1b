package contracts

import (
	"context"

	"medibook-client/internal/app/models"
)

// SessionStore persists the single local session. Writes come only from the
// session manager's serialized operation sequence; Save replaces the whole
// document atomically.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// IdentityRevoker ends the third-party identity-provider session on logout.
// Revocation is best effort; failures are logged, never surfaced.
type IdentityRevoker interface {
	Revoke(ctx context.Context) error
}
