package models

import "medibook-client/internal/pkg/constvars"

// AccountKind discriminates the two account variants the platform serves.
// The wire uses the isPatient boolean; conversion happens at the gateway edge.
type AccountKind string

const (
	AccountKindPatient AccountKind = constvars.AccountKindPatient
	AccountKindDoctor  AccountKind = constvars.AccountKindDoctor
)

func AccountKindFromIsPatient(isPatient bool) AccountKind {
	if isPatient {
		return AccountKindPatient
	}
	return AccountKindDoctor
}

func (k AccountKind) IsPatient() bool {
	return k != AccountKindDoctor
}

// Session is the locally persisted authentication state. A non-empty Token
// means the user is logged in; AccountKind is meaningful only then.
type Session struct {
	Token          string      `json:"token,omitempty"`
	AccountKind    AccountKind `json:"account_kind,omitempty"`
	Email          string      `json:"email,omitempty"`
	FirstName      string      `json:"first_name,omitempty"`
	LastName       string      `json:"last_name,omitempty"`
	IdentityLinked bool        `json:"identity_linked,omitempty"`
}

func (s *Session) LoggedIn() bool {
	return s.Token != ""
}

// Credentials are ephemeral and never persisted.
type Credentials struct {
	Email    string
	Password string
}
