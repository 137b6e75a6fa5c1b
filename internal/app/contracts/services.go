package contracts

import (
	"context"

	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/dto/requests"
)

// SessionState is the manager's lifecycle state for the logical session.
type SessionState string

const (
	SessionStateLoggedOut      SessionState = "logged_out"
	SessionStateAuthenticating SessionState = "authenticating"
	SessionStateLoggedIn       SessionState = "logged_in"
)

// SessionSnapshot is the observable surface of the session: whether a user is
// logged in and as what role. Published once per completed transition, after
// the store write.
type SessionSnapshot struct {
	LoggedIn    bool
	AccountKind models.AccountKind
}

// SessionInfo is the result of a successful login.
type SessionInfo struct {
	Token       string
	AccountKind models.AccountKind
}

// SessionManager is the sole authority over login, signup and logout, and
// over the persisted session.
type SessionManager interface {
	Login(ctx context.Context, email, password string) (*SessionInfo, error)
	LoginWithIdentity(ctx context.Context, rawIdentityToken string) (*SessionInfo, error)
	SignupPatient(ctx context.Context, request *requests.SignupPatient) error
	SignupDoctor(ctx context.Context, request *requests.SignupDoctor) error
	Logout(ctx context.Context) error

	Snapshot() SessionSnapshot
	Subscribe() (id int, updates <-chan SessionSnapshot)
	Unsubscribe(id int)

	Token() string
	AccountKind() models.AccountKind
	Email() string
	CachedNames() (first, last string)
	RefreshCachedNames(ctx context.Context, first, last string) error
}

// ProfileSynchronizer runs the read-modify-write cycle for the authenticated
// user's profile.
type ProfileSynchronizer interface {
	// FetchCurrentProfile returns nil when no profile is available, fetch and
	// decode failures included; only a missing session is an error.
	FetchCurrentProfile(ctx context.Context) (*models.Profile, error)
	// SaveProfile reports success; it never panics on failure.
	SaveProfile(ctx context.Context, profile *models.Profile) bool
	DoctorWorkingHours(ctx context.Context, doctorID int) (*models.WorkingHours, error)
}
