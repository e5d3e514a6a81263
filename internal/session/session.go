// Package session owns the authenticated identity for the current login and
// persists it across invocations in the config directory.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ErrMalformedToken indicates the server returned a token that cannot be
// decoded as a JWT.
var ErrMalformedToken = errors.New("malformed token")

// Session is the persisted authentication state: the bearer token plus the
// identity extracted from it. A non-empty token counts as authenticated;
// expiry and signature are the server's problem; an invalid token is
// discovered when the API rejects a request.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// New builds a session from a freshly issued token. The token payload is
// decoded without verification to extract the user id claim.
func New(token, username string) (Session, error) {
	if token == "" {
		return Session{}, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}
	uid, err := decodeUserID(token)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, UserID: uid, Username: username}, nil
}

// IsAuthenticated reports whether a token is present. No local expiry check.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// TokenSource adapts the session for the gateway's bearer transport.
// An empty token yields an empty credential; the call is still attempted.
func (s Session) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.Token})
}

// Load reads a persisted session. A missing file is not an error; it loads
// as a logged-out session.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("invalid session file: %w", err)
	}
	return s, nil
}

// Save persists the session with mode 0600.
func (s Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func Clear(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// decodeUserID pulls the user id out of the JWT payload without verifying
// the signature. The server emits the claim as UserId; userId is accepted
// too. A token without the claim still yields a session; the id is simply
// unknown until the server says otherwise.
func decodeUserID(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	for _, key := range []string{"UserId", "userId"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", nil
}
