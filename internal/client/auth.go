package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// AuthClient implements outseta.AuthClient.
type AuthClient struct {
	base *Base
}

// NewAuthClient creates a new authentication client.
func NewAuthClient(base *Base) *AuthClient {
	return &AuthClient{
		base: base,
	}
}

// GetToken exchanges a username and password for an access token.
func (c *AuthClient) GetToken(ctx context.Context, username, password string) (*outseta.AuthToken, error) {
	if strings.TrimSpace(username) == "" {
		return nil, outseta.InvalidArgument("username")
	}

	if password == "" {
		return nil, outseta.InvalidArgument("password")
	}

	request := &outseta.AuthTokenRequest{Username: username, Password: password}

	return sendObject[outseta.AuthToken](ctx, c.base, c.base.Post, "/tokens", outseta.Params{}, request)
}
