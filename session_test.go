package portfolio

import (
	"testing"
	"time"
)

func testGate(password string, now time.Time) *Gate {
	g := NewGate(password)
	g.now = func() time.Time { return now }
	return g
}

func TestGateAuthenticate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	g := testGate("secret", now)
	values := map[interface{}]interface{}{}

	if g.Authenticate(values, "wrong") {
		t.Fatal("expected wrong password to be rejected")
	}
	if len(values) != 0 {
		t.Fatal("failed login must not touch the session")
	}

	if !g.Authenticate(values, "secret") {
		t.Fatal("expected correct password to be accepted")
	}
	raw, ok := values[sessionKeyExpiry].(string)
	if !ok {
		t.Fatal("expected expiry to be stored as a string")
	}
	expiry, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t.Fatalf("stored expiry is not RFC 3339: %v", err)
	}
	if want := now.Add(24 * time.Hour); !expiry.Equal(want) {
		t.Errorf("expiry = %v, want %v", expiry, want)
	}
}

func TestGateEmptyPasswordNeverAuthenticates(t *testing.T) {
	g := testGate("", time.Now())
	values := map[interface{}]interface{}{}

	if g.Authenticate(values, "") {
		t.Fatal("empty configured password must reject all logins")
	}
}

func TestGateExpiry(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	current := start
	g := NewGate("secret")
	g.now = func() time.Time { return current }

	values := map[interface{}]interface{}{}
	if !g.Authenticate(values, "secret") {
		t.Fatal("login failed")
	}
	if !g.IsAuthenticated(values) {
		t.Fatal("expected fresh session to be authenticated")
	}

	current = start.Add(23 * time.Hour)
	if !g.IsAuthenticated(values) {
		t.Error("expected session to survive 23 hours")
	}

	current = start.Add(25 * time.Hour)
	if g.IsAuthenticated(values) {
		t.Error("expected session to expire after 24 hours")
	}
}

func TestGateMalformedSessionFailsClosed(t *testing.T) {
	g := testGate("secret", time.Now())

	cases := []map[interface{}]interface{}{
		{},
		{sessionKeyExpiry: "not a timestamp"},
		{sessionKeyExpiry: 12345},
		{sessionKeyExpiry: nil},
	}
	for i, values := range cases {
		if g.IsAuthenticated(values) {
			t.Errorf("case %d: malformed session must not authenticate", i)
		}
	}
}

func TestGateLogout(t *testing.T) {
	g := testGate("secret", time.Now())
	values := map[interface{}]interface{}{}
	if !g.Authenticate(values, "secret") {
		t.Fatal("login failed")
	}

	g.Logout(values)
	if g.IsAuthenticated(values) {
		t.Fatal("expected logout to end the session")
	}

	// Logging out again is a no-op.
	g.Logout(values)
	if _, ok := values[sessionKeyExpiry]; ok {
		t.Fatal("expected expiry key to stay removed")
	}
}
