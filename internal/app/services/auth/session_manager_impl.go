package auth

import (
	"context"
	"strings"
	"sync"

	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionManager struct {
	Gateway contracts.AuthGateway
	Store   contracts.SessionStore
	Revoker contracts.IdentityRevoker
	Log     *zap.Logger

	mu      sync.Mutex
	state   contracts.SessionState
	current models.Session

	subMu   sync.Mutex
	subs    map[int]chan contracts.SessionSnapshot
	nextSub int
}

// NewSessionManager restores the last persisted session and derives the
// initial state from it: a stored token means LoggedIn, anything else means
// LoggedOut. revoker may be nil when no identity provider is wired.
func NewSessionManager(
	ctx context.Context,
	authGateway contracts.AuthGateway,
	sessionStore contracts.SessionStore,
	identityRevoker contracts.IdentityRevoker,
	logger *zap.Logger,
) (contracts.SessionManager, error) {
	stored, err := sessionStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	m := &sessionManager{
		Gateway: authGateway,
		Store:   sessionStore,
		Revoker: identityRevoker,
		Log:     logger,
		current: *stored,
		state:   contracts.SessionStateLoggedOut,
		subs:    make(map[int]chan contracts.SessionSnapshot),
	}
	if stored.LoggedIn() {
		m.state = contracts.SessionStateLoggedIn
	}
	logger.Info("sessionManager restored",
		zap.Bool("logged_in", stored.LoggedIn()),
		zap.String(constvars.LoggingAccountKindKey, string(stored.AccountKind)),
	)
	return m, nil
}

// probeOrder is the fixed sequence of role endpoints a unified login form is
// resolved against. Auth rejection moves on to the next role; a network
// fault aborts the whole attempt.
var probeOrder = []models.AccountKind{models.AccountKindPatient, models.AccountKindDoctor}

func (m *sessionManager) Login(ctx context.Context, email, password string) (*contracts.SessionInfo, error) {
	email = sanitizeEmail(email)
	info, err := m.probeLogin(ctx, email, password, false)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (m *sessionManager) probeLogin(ctx context.Context, email, password string, identityLinked bool) (*contracts.SessionInfo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	m.mu.Lock()
	m.state = contracts.SessionStateAuthenticating
	m.mu.Unlock()

	var lastErr error
	for _, kind := range probeOrder {
		token, err := m.Gateway.Login(ctx, kind, email, password)
		if err == nil {
			// The server-confirmed role wins over the probed one.
			confirmed := models.AccountKindFromIsPatient(token.IsPatient)
			return m.completeLogin(ctx, token.AccessToken, confirmed, email, identityLinked)
		}
		if exceptions.IsAuthRejected(err) {
			m.Log.Debug("sessionManager.probeLogin role rejected, trying next",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAccountKindKey, string(kind)),
			)
			lastErr = err
			continue
		}
		// Network or server fault: abort without probing the other role.
		m.failLogin()
		return nil, err
	}

	m.failLogin()
	m.Log.Warn("sessionManager.probeLogin rejected for every role",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return nil, lastErr
}

func (m *sessionManager) completeLogin(ctx context.Context, token string, kind models.AccountKind, email string, identityLinked bool) (*contracts.SessionInfo, error) {
	session := models.Session{
		Token:          token,
		AccountKind:    kind,
		Email:          email,
		IdentityLinked: identityLinked,
	}
	if err := m.Store.Save(ctx, &session); err != nil {
		m.failLogin()
		return nil, err
	}

	m.mu.Lock()
	m.current = session
	m.state = contracts.SessionStateLoggedIn
	m.mu.Unlock()
	m.publish()

	m.Log.Info("sessionManager login completed",
		zap.String(constvars.LoggingAccountKindKey, string(kind)),
	)
	return &contracts.SessionInfo{Token: token, AccountKind: kind}, nil
}

// failLogin returns the machine to LoggedOut after a failed attempt without
// touching the persisted session.
func (m *sessionManager) failLogin() {
	m.mu.Lock()
	m.state = contracts.SessionStateLoggedOut
	m.mu.Unlock()
}

func (m *sessionManager) LoginWithIdentity(ctx context.Context, rawIdentityToken string) (*contracts.SessionInfo, error) {
	claims, err := utils.ParseIdentityClaims(rawIdentityToken)
	if err != nil {
		return nil, err
	}

	// The identity token stands in for the password on both probes.
	info, err := m.probeLogin(ctx, claims.Email, rawIdentityToken, true)
	if err == nil {
		return info, nil
	}
	if !exceptions.IsAuthRejected(err) {
		return nil, err
	}

	// No account under that identity yet: register a patient from the
	// provider's claims, then log in. A retry after a successful signup
	// lands in the probe above instead, so no duplicate is created.
	m.Log.Info("sessionManager.LoginWithIdentity no existing account, registering patient",
		zap.String(constvars.LoggingEmailKey, claims.Email),
	)
	signup := &requests.SignupPatient{
		FirstName:      claims.FirstName,
		LastName:       claims.LastName,
		Email:          claims.Email,
		Password:       rawIdentityToken,
		RetypePassword: rawIdentityToken,
	}
	if signup.FirstName == "" {
		signup.FirstName = claims.Email
	}
	if signup.LastName == "" {
		signup.LastName = claims.Email
	}
	if err := m.Gateway.SignupPatient(ctx, signup); err != nil {
		m.failLogin()
		return nil, err
	}
	return m.probeLogin(ctx, claims.Email, rawIdentityToken, true)
}

func (m *sessionManager) SignupPatient(ctx context.Context, request *requests.SignupPatient) error {
	sanitizeSignupPatient(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	// Signup never mutates the session; the caller logs in explicitly.
	return m.Gateway.SignupPatient(ctx, request)
}

func (m *sessionManager) SignupDoctor(ctx context.Context, request *requests.SignupDoctor) error {
	sanitizeSignupDoctor(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return m.Gateway.SignupDoctor(ctx, request)
}

// Logout clears the local session unconditionally. The identity-provider
// revoke is best effort; its failure is logged and swallowed.
func (m *sessionManager) Logout(ctx context.Context) error {
	if err := m.Store.Clear(ctx); err != nil {
		m.Log.Error("sessionManager.Logout failed to clear the session store", zap.Error(err))
	}

	if m.Revoker != nil {
		if err := m.Revoker.Revoke(ctx); err != nil {
			m.Log.Warn("sessionManager.Logout identity revoke failed", zap.Error(err))
		}
	}

	m.mu.Lock()
	m.current = models.Session{}
	m.state = contracts.SessionStateLoggedOut
	m.mu.Unlock()
	m.publish()

	m.Log.Info("sessionManager logged out")
	return nil
}

func (m *sessionManager) Snapshot() contracts.SessionSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return contracts.SessionSnapshot{
		LoggedIn:    m.state == contracts.SessionStateLoggedIn,
		AccountKind: m.current.AccountKind,
	}
}

// Subscribe registers an observer of the session snapshot. The channel holds
// the latest value only; a slow reader sees the newest state, not a backlog.
func (m *sessionManager) Subscribe() (int, <-chan contracts.SessionSnapshot) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan contracts.SessionSnapshot, 1)
	m.subs[id] = ch
	return id, ch
}

func (m *sessionManager) Unsubscribe(id int) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	if ch, ok := m.subs[id]; ok {
		close(ch)
		delete(m.subs, id)
	}
}

func (m *sessionManager) publish() {
	snapshot := m.Snapshot()
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}

func (m *sessionManager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Token
}

func (m *sessionManager) AccountKind() models.AccountKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.AccountKind
}

func (m *sessionManager) Email() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Email
}

func (m *sessionManager) CachedNames() (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.FirstName, m.current.LastName
}

// RefreshCachedNames updates the cached name fields after a profile save.
// Token and account kind stay as they are.
func (m *sessionManager) RefreshCachedNames(ctx context.Context, first, last string) error {
	m.mu.Lock()
	m.current.FirstName = first
	m.current.LastName = last
	session := m.current
	m.mu.Unlock()
	return m.Store.Save(ctx, &session)
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeSignupPatient(request *requests.SignupPatient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = sanitizeEmail(request.Email)
}

func sanitizeSignupDoctor(request *requests.SignupDoctor) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = sanitizeEmail(request.Email)
	request.Address = strings.TrimSpace(request.Address)
}
