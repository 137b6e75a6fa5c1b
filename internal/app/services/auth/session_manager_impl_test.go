package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/sessions"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccount struct {
	password string
	kind     models.AccountKind
}

// fakeGateway emulates the platform API against an in-memory account table.
type fakeGateway struct {
	accounts map[string]fakeAccount
	netDown  bool

	loginAttempts      []models.AccountKind
	signupPatientCalls int
	signupDoctorCalls  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{accounts: make(map[string]fakeAccount)}
}

func (g *fakeGateway) Login(ctx context.Context, kind models.AccountKind, email, password string) (*responses.Token, error) {
	if g.netDown {
		return nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
	}
	g.loginAttempts = append(g.loginAttempts, kind)
	account, ok := g.accounts[email]
	if !ok || account.password != password || account.kind != kind {
		return nil, exceptions.ErrAuthRejected(401)
	}
	return &responses.Token{AccessToken: "tok-" + email, IsPatient: account.kind.IsPatient()}, nil
}

func (g *fakeGateway) SignupPatient(ctx context.Context, request *requests.SignupPatient) error {
	if g.netDown {
		return exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
	}
	g.signupPatientCalls++
	if _, exists := g.accounts[request.Email]; exists {
		return exceptions.ErrSignupRejected(400)
	}
	g.accounts[request.Email] = fakeAccount{password: request.Password, kind: models.AccountKindPatient}
	return nil
}

func (g *fakeGateway) SignupDoctor(ctx context.Context, request *requests.SignupDoctor) error {
	if g.netDown {
		return exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
	}
	g.signupDoctorCalls++
	if _, exists := g.accounts[request.Email]; exists {
		return exceptions.ErrSignupRejected(400)
	}
	g.accounts[request.Email] = fakeAccount{password: request.Password, kind: models.AccountKindDoctor}
	return nil
}

func (g *fakeGateway) FetchProfile(ctx context.Context, token string) (*responses.ProfileEnvelope, error) {
	return nil, exceptions.ErrUnexpectedStatusCode(404, "/auth/me")
}

func (g *fakeGateway) UpdatePatientProfile(ctx context.Context, token string, request *requests.UpdatePatientProfile) error {
	return nil
}

func (g *fakeGateway) UpdateDoctorProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) error {
	return nil
}

func (g *fakeGateway) FetchDoctorWorkingHours(ctx context.Context, doctorID int) ([]responses.WorkingHour, error) {
	return nil, nil
}

type fakeRevoker struct {
	calls int
	fail  bool
}

func (r *fakeRevoker) Revoke(ctx context.Context) error {
	r.calls++
	if r.fail {
		return errors.New("provider unavailable")
	}
	return nil
}

func newTestManager(t *testing.T, gateway contracts.AuthGateway, revoker contracts.IdentityRevoker) (contracts.SessionManager, contracts.SessionStore) {
	t.Helper()
	store := sessions.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
	manager, err := NewSessionManager(context.Background(), gateway, store, revoker, zap.NewNop())
	require.NoError(t, err)
	return manager, store
}

func signedIdentityToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return raw
}

func TestLoginProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Resolved On First Attempt", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["jane@example.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindPatient}
		manager, _ := newTestManager(t, gw, nil)

		info, err := manager.Login(ctx, "jane@example.com", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, models.AccountKindPatient, info.AccountKind)
		assert.Equal(t, []models.AccountKind{models.AccountKindPatient}, gw.loginAttempts)
	})

	t.Run("Doctor Resolved On Second Attempt", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["doc@x.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindDoctor}
		manager, store := newTestManager(t, gw, nil)

		info, err := manager.Login(ctx, "doc@x.com", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, models.AccountKindDoctor, info.AccountKind)
		assert.Equal(t, []models.AccountKind{models.AccountKindPatient, models.AccountKindDoctor}, gw.loginAttempts)

		persisted, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.AccountKindDoctor, persisted.AccountKind)
		assert.Equal(t, "doc@x.com", persisted.Email)
	})

	t.Run("Email Sanitized Before Probe", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["jane@example.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindPatient}
		manager, _ := newTestManager(t, gw, nil)

		_, err := manager.Login(ctx, "  Jane@Example.COM ", "pw123456")
		assert.NoError(t, err)
	})

	t.Run("Network Fault Aborts Without Second Probe", func(t *testing.T) {
		gw := newFakeGateway()
		gw.netDown = true
		manager, store := newTestManager(t, gw, nil)

		_, err := manager.Login(ctx, "jane@example.com", "pw123456")
		require.Error(t, err)
		assert.True(t, exceptions.IsNetwork(err))
		assert.Empty(t, gw.loginAttempts)

		persisted, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, persisted.LoggedIn())
		assert.False(t, manager.Snapshot().LoggedIn)
	})

	t.Run("Both Roles Rejected Leaves No Session", func(t *testing.T) {
		gw := newFakeGateway()
		manager, store := newTestManager(t, gw, nil)

		_, err := manager.Login(ctx, "nobody@example.com", "pw123456")
		require.Error(t, err)
		assert.True(t, exceptions.IsAuthRejected(err))
		assert.Len(t, gw.loginAttempts, 2)

		persisted, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, persisted.LoggedIn())
		snapshot := manager.Snapshot()
		assert.False(t, snapshot.LoggedIn)
	})
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Password Of Seven Never Reaches The Network", func(t *testing.T) {
		gw := newFakeGateway()
		manager, _ := newTestManager(t, gw, nil)

		err := manager.SignupPatient(ctx, &requests.SignupPatient{
			FirstName:      "Jane",
			LastName:       "Doe",
			Email:          "jane@example.com",
			Password:       "1234567",
			RetypePassword: "1234567",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsValidation(err))
		assert.Zero(t, gw.signupPatientCalls)
	})

	t.Run("Password Of Eight Accepted", func(t *testing.T) {
		gw := newFakeGateway()
		manager, _ := newTestManager(t, gw, nil)

		err := manager.SignupPatient(ctx, &requests.SignupPatient{
			FirstName:      "Jane",
			LastName:       "Doe",
			Email:          "jane@example.com",
			Password:       "12345678",
			RetypePassword: "12345678",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, gw.signupPatientCalls)
	})

	t.Run("Confirmation Mismatch Rejected Locally", func(t *testing.T) {
		gw := newFakeGateway()
		manager, _ := newTestManager(t, gw, nil)

		err := manager.SignupPatient(ctx, &requests.SignupPatient{
			FirstName:      "Jane",
			LastName:       "Doe",
			Email:          "jane@example.com",
			Password:       "12345678",
			RetypePassword: "87654321",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsValidation(err))
		assert.Zero(t, gw.signupPatientCalls)
	})

	t.Run("Doctor Requires Clinic Address And Specialty", func(t *testing.T) {
		gw := newFakeGateway()
		manager, _ := newTestManager(t, gw, nil)

		err := manager.SignupDoctor(ctx, &requests.SignupDoctor{
			FirstName:      "Greg",
			LastName:       "House",
			Email:          "doc@x.com",
			Password:       "12345678",
			RetypePassword: "12345678",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsValidation(err))
		assert.Zero(t, gw.signupDoctorCalls)
	})

	t.Run("Signup Does Not Log The User In", func(t *testing.T) {
		gw := newFakeGateway()
		manager, _ := newTestManager(t, gw, nil)

		err := manager.SignupPatient(ctx, &requests.SignupPatient{
			FirstName:      "Jane",
			LastName:       "Doe",
			Email:          "jane@example.com",
			Password:       "12345678",
			RetypePassword: "12345678",
		})
		require.NoError(t, err)
		assert.False(t, manager.Snapshot().LoggedIn)
		assert.Empty(t, manager.Token())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["jane@example.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindPatient}
		manager, _ := newTestManager(t, gw, nil)

		_, err := manager.Login(ctx, "jane@example.com", "pw123456")
		require.NoError(t, err)

		require.NoError(t, manager.Logout(ctx))
		assert.False(t, manager.Snapshot().LoggedIn)
		require.NoError(t, manager.Logout(ctx))
		assert.False(t, manager.Snapshot().LoggedIn)
	})

	t.Run("Revoke Failure Swallowed", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["jane@example.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindPatient}
		revoker := &fakeRevoker{fail: true}
		manager, store := newTestManager(t, gw, revoker)

		_, err := manager.Login(ctx, "jane@example.com", "pw123456")
		require.NoError(t, err)

		require.NoError(t, manager.Logout(ctx))
		assert.Equal(t, 1, revoker.calls)

		persisted, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, persisted.LoggedIn())
	})
}

func TestLoginWithIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing Account Logs Straight In", func(t *testing.T) {
		gw := newFakeGateway()
		raw := signedIdentityToken(t, jwt.MapClaims{"email": "jane@example.com", "given_name": "Jane", "family_name": "Doe"})
		gw.accounts["jane@example.com"] = fakeAccount{password: raw, kind: models.AccountKindDoctor}
		manager, _ := newTestManager(t, gw, nil)

		info, err := manager.LoginWithIdentity(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, models.AccountKindDoctor, info.AccountKind)
		assert.Zero(t, gw.signupPatientCalls)
	})

	t.Run("Unknown Identity Falls Back To Patient Signup", func(t *testing.T) {
		gw := newFakeGateway()
		raw := signedIdentityToken(t, jwt.MapClaims{"email": "new@example.com", "given_name": "New", "family_name": "User"})
		manager, store := newTestManager(t, gw, nil)

		info, err := manager.LoginWithIdentity(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, models.AccountKindPatient, info.AccountKind)
		assert.Equal(t, 1, gw.signupPatientCalls)

		persisted, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, persisted.IdentityLinked)
		assert.Equal(t, "new@example.com", persisted.Email)
	})

	t.Run("Retry After Signup Creates No Duplicate", func(t *testing.T) {
		gw := newFakeGateway()
		raw := signedIdentityToken(t, jwt.MapClaims{"email": "new@example.com", "given_name": "New", "family_name": "User"})
		manager, _ := newTestManager(t, gw, nil)

		_, err := manager.LoginWithIdentity(ctx, raw)
		require.NoError(t, err)
		_, err = manager.LoginWithIdentity(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, 1, gw.signupPatientCalls)
	})

	t.Run("Network Fault Does Not Trigger Signup", func(t *testing.T) {
		gw := newFakeGateway()
		gw.netDown = true
		raw := signedIdentityToken(t, jwt.MapClaims{"email": "new@example.com"})
		manager, _ := newTestManager(t, gw, nil)

		_, err := manager.LoginWithIdentity(ctx, raw)
		require.Error(t, err)
		assert.True(t, exceptions.IsNetwork(err))
		assert.Zero(t, gw.signupPatientCalls)
	})
}

func TestObservableState(t *testing.T) {
	ctx := context.Background()

	t.Run("Subscribers See Transitions", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["doc@x.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindDoctor}
		manager, _ := newTestManager(t, gw, nil)

		id, updates := manager.Subscribe()
		defer manager.Unsubscribe(id)

		_, err := manager.Login(ctx, "doc@x.com", "pw123456")
		require.NoError(t, err)

		snapshot := <-updates
		assert.True(t, snapshot.LoggedIn)
		assert.Equal(t, models.AccountKindDoctor, snapshot.AccountKind)

		require.NoError(t, manager.Logout(ctx))
		snapshot = <-updates
		assert.False(t, snapshot.LoggedIn)
	})

	t.Run("Slow Subscriber Sees Latest State Only", func(t *testing.T) {
		gw := newFakeGateway()
		gw.accounts["jane@example.com"] = fakeAccount{password: "pw123456", kind: models.AccountKindPatient}
		manager, _ := newTestManager(t, gw, nil)

		id, updates := manager.Subscribe()
		defer manager.Unsubscribe(id)

		_, err := manager.Login(ctx, "jane@example.com", "pw123456")
		require.NoError(t, err)
		require.NoError(t, manager.Logout(ctx))

		snapshot := <-updates
		assert.False(t, snapshot.LoggedIn)
	})

	t.Run("Restored Session Reports LoggedIn", func(t *testing.T) {
		gw := newFakeGateway()
		store := sessions.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
		require.NoError(t, store.Save(ctx, &models.Session{Token: "tok", AccountKind: models.AccountKindDoctor}))

		manager, err := NewSessionManager(ctx, gw, store, nil, zap.NewNop())
		require.NoError(t, err)
		snapshot := manager.Snapshot()
		assert.True(t, snapshot.LoggedIn)
		assert.Equal(t, models.AccountKindDoctor, snapshot.AccountKind)
	})
}
