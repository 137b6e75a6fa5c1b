package utils

import (
	"strings"

	"medibook-client/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// IdentityClaims are the profile fields the client needs from a third-party
// identity token: an address to log in with and name fields for the signup
// fallback.
type IdentityClaims struct {
	Email     string
	FirstName string
	LastName  string
}

// ParseIdentityClaims extracts claims from an identity-provider ID token.
// The provider SDK already validated the token, so the signature is not
// re-checked here; the token is otherwise opaque to this client.
func ParseIdentityClaims(rawToken string) (*IdentityClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return nil, exceptions.ErrIdentityTokenParse(err)
	}

	email, _ := claims["email"].(string)
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, exceptions.ErrIdentityTokenMissingEmail()
	}

	identity := &IdentityClaims{Email: email}
	if given, ok := claims["given_name"].(string); ok {
		identity.FirstName = strings.TrimSpace(given)
	}
	if family, ok := claims["family_name"].(string); ok {
		identity.LastName = strings.TrimSpace(family)
	}
	if identity.FirstName == "" {
		if name, ok := claims["name"].(string); ok {
			fields := strings.Fields(name)
			if len(fields) > 0 {
				identity.FirstName = fields[0]
			}
			if len(fields) > 1 && identity.LastName == "" {
				identity.LastName = strings.Join(fields[1:], " ")
			}
		}
	}
	return identity, nil
}
