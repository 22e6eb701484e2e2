package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// DefaultRoleClaim is the claim key the back office puts the role under.
const DefaultRoleClaim = "role"

// RoleFromToken extracts the role claim from a bearer token's payload
// segment. The token is treated as opaque except for display purposes:
// the middle segment is base64url-decoded and parsed as JSON, and the
// named claim is read as a string. The boolean result is false when the
// token is malformed or the claim is absent; callers are expected to
// degrade to an empty role rather than fail the login.
func RoleFromToken(token, claim string) (Role, bool) {
	if claim == "" {
		claim = DefaultRoleClaim
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad their segments; try the padded alphabet too.
		payload, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return "", false
		}
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	v, ok := claims[claim].(string)
	if !ok || v == "" {
		return "", false
	}
	return Role(v), true
}
