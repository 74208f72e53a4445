package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// ProfileClient implements outseta.ProfileClient. It must be built with an
// access key since every call acts on the token's owner.
type ProfileClient struct {
	base *Base
}

// NewProfileClient creates a new profile client.
func NewProfileClient(base *Base) *ProfileClient {
	return &ProfileClient{
		base: base,
	}
}

// Get implements outseta.ProfileClient.Get.
func (c *ProfileClient) Get(ctx context.Context) (*outseta.Person, error) {
	return getObject[outseta.Person](ctx, c.base, "/profile", outseta.Params{})
}

// Update implements outseta.ProfileClient.Update.
func (c *ProfileClient) Update(ctx context.Context, person *outseta.Person) (*outseta.Person, error) {
	err := requireValue("profile", person)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Person](ctx, c.base, c.base.Put, "/profile", outseta.Params{}, person)
}

// UpdatePassword implements outseta.ProfileClient.UpdatePassword.
func (c *ProfileClient) UpdatePassword(ctx context.Context, request *outseta.UpdatePasswordRequest) error {
	err := requireValue("password request", request)
	if err != nil {
		return err
	}

	return sendVoid(ctx, c.base, c.base.Put, "/profile/password", outseta.Params{}, request)
}
