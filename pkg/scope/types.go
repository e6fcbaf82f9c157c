package scope

import "github.com/golang-jwt/jwt/v5"

// PayloadVersion is the claims layout this build issues. Tokens carrying a
// newer version are rejected.
const PayloadVersion = 1

// Payload is the verified identity attached to a request. Role is empty and
// Scopes is nil when the token did not carry them. An empty but present
// scope list survives the round trip as a non-nil slice.
type Payload struct {
	UserID  string   `json:"user_id"`
	Role    string   `json:"role,omitempty"`
	Scopes  []string `json:"scopes"`
	Version int      `json:"ver"`
	jwt.RegisteredClaims
}

// HasRole reports whether the payload role is one of roles.
func (p Payload) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// HasAnyScope reports whether the payload and scopes share at least one entry.
func (p Payload) HasAnyScope(scopes ...string) bool {
	for _, have := range p.Scopes {
		for _, want := range scopes {
			if have == want {
				return true
			}
		}
	}
	return false
}
