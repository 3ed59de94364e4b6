package portfolio

import (
	"crypto/subtle"
	"time"
)

const (
	// sessionName is the cookie holding the admin session.
	sessionName = "admin_session"
	// sessionKeyExpiry is the single key kept in the session's value map.
	sessionKeyExpiry = "expiry"
	// sessionTTL is how long a successful login stays valid.
	sessionTTL = 24 * time.Hour
)

// Gate is the admin authorization check. It compares a submitted password
// against the single configured secret and tracks an expiring flag in the
// visitor's cookie-backed session. The value map it operates on lives
// client-side, so this is a convenience gate for a single operator, not a
// hardened boundary.
type Gate struct {
	password string
	ttl      time.Duration
	now      func() time.Time
}

// NewGate returns a Gate for the configured admin password.
func NewGate(password string) *Gate {
	return &Gate{password: password, ttl: sessionTTL, now: time.Now}
}

// Authenticate verifies password and, on a match, stores an expiry 24 hours
// out in values. A mismatch leaves values untouched and returns false.
// There is deliberately no lockout or backoff here.
func (g *Gate) Authenticate(values map[interface{}]interface{}, password string) bool {
	if g.password == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return false
	}
	values[sessionKeyExpiry] = g.now().Add(g.ttl).Format(time.RFC3339)
	return true
}

// IsAuthenticated reports whether values holds a parseable, unexpired
// session. Anything malformed fails closed. Callers re-check on every
// protected request; expiry is time-dependent and never cached.
func (g *Gate) IsAuthenticated(values map[interface{}]interface{}) bool {
	raw, ok := values[sessionKeyExpiry].(string)
	if !ok {
		return false
	}
	expiry, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false
	}
	return g.now().Before(expiry)
}

// Logout removes the session entry. Idempotent; an expired or absent
// session logs out the same as a live one.
func (g *Gate) Logout(values map[interface{}]interface{}) {
	delete(values, sessionKeyExpiry)
}
