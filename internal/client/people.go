package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// PeopleClient implements outseta.PeopleClient.
type PeopleClient struct {
	base *Base
}

// NewPeopleClient creates a new people client.
func NewPeopleClient(base *Base) *PeopleClient {
	return &PeopleClient{
		base: base,
	}
}

// Get implements outseta.PeopleClient.Get.
func (c *PeopleClient) Get(ctx context.Context, id string) (*outseta.Person, error) {
	err := requireID("person id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.Person](ctx, c.base, "/crm/people/"+segment(id), outseta.Params{})
}

// List implements outseta.PeopleClient.List.
func (c *PeopleClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Person], error) {
	return getPage[outseta.Person](ctx, c.base, "/crm/people", page)
}

// Create implements outseta.PeopleClient.Create.
func (c *PeopleClient) Create(ctx context.Context, person *outseta.Person) (*outseta.Person, error) {
	err := requireValue("person", person)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Person](ctx, c.base, c.base.Post, "/crm/people", outseta.Params{}, person)
}

// Update implements outseta.PeopleClient.Update.
func (c *PeopleClient) Update(ctx context.Context, id string, person *outseta.Person) (*outseta.Person, error) {
	err := requireID("person id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("person", person)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Person](ctx, c.base, c.base.Put, "/crm/people/"+segment(id), outseta.Params{}, person)
}

// Delete implements outseta.PeopleClient.Delete.
func (c *PeopleClient) Delete(ctx context.Context, id string) error {
	err := requireID("person id", id)
	if err != nil {
		return err
	}

	_, err = c.base.Delete(ctx, "/crm/people/"+segment(id), outseta.Params{})

	return err
}

// SetTemporaryPassword sets a one-time password the person must change at
// next login.
func (c *PeopleClient) SetTemporaryPassword(ctx context.Context, id, password string) error {
	err := requireID("person id", id)
	if err != nil {
		return err
	}

	if password == "" {
		return outseta.InvalidArgument("temporary password")
	}

	request := &outseta.TemporaryPasswordRequest{TemporaryPassword: password}

	return sendVoid(ctx, c.base, c.base.Put, "/crm/people/"+segment(id)+"/setTemporaryPassword", outseta.Params{}, request)
}
