// Package auth exchanges Outseta credentials for access keys and tracks
// their expiry.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister  = errors.New("no config persister configured")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrEmptyAccessToken   = errors.New("token response did not contain an access token")
)

// ExpirySkew is how long before its reported expiry an access key is
// treated as expired.
const ExpirySkew = 30 * time.Second

// ConfigPersister stores the access key obtained by a login.
type ConfigPersister interface {
	UpdateAccessKey(username, accessKey string, expiresAt time.Time) error
}

// Session logs a person in and persists the resulting access key.
type Session struct {
	auth      outseta.AuthClient
	persister ConfigPersister
	now       func() time.Time

	mutex     sync.RWMutex
	accessKey string
	expiresAt time.Time
}

// NewSession creates a session that exchanges credentials through authClient.
func NewSession(authClient outseta.AuthClient, persister ConfigPersister) *Session {
	return &Session{
		auth:      authClient,
		persister: persister,
		now:       time.Now,
	}
}

// Login exchanges username and password for an access key and persists it.
func (s *Session) Login(ctx context.Context, username, password string) (*outseta.AuthToken, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if s.persister == nil {
		return nil, ErrNoConfigPersister
	}

	token, err := s.auth.GetToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	expiresAt := ExpiresAt(s.now(), token)

	err = s.persister.UpdateAccessKey(username, token.AccessToken, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to persist access key: %w", err)
	}

	s.SetAccessKey(token.AccessToken, expiresAt)

	return token, nil
}

// SetAccessKey records an access key obtained elsewhere.
func (s *Session) SetAccessKey(accessKey string, expiresAt time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.accessKey = accessKey
	s.expiresAt = expiresAt
}

// AccessKey returns the current access key and its expiry.
func (s *Session) AccessKey() (string, time.Time) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.accessKey, s.expiresAt
}

// IsExpiringSoon reports whether the access key expires within the given
// duration. A key without a known expiry never expires.
func (s *Session) IsExpiringSoon(within time.Duration) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.accessKey == "" {
		return true
	}

	return Expired(s.expiresAt, s.now().Add(within))
}

// ExpiresAt returns when token expires, or the zero time when the response
// carried no lifetime.
func ExpiresAt(issued time.Time, token *outseta.AuthToken) time.Time {
	if token == nil || token.ExpiresIn <= 0 {
		return time.Time{}
	}

	return issued.Add(time.Duration(token.ExpiresIn) * time.Second)
}

// Expired reports whether expiresAt has passed at now, allowing for ExpirySkew.
func Expired(expiresAt, now time.Time) bool {
	if expiresAt.IsZero() {
		return false
	}

	return !now.Add(ExpirySkew).Before(expiresAt)
}
