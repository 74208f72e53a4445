package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// AddOnsClient implements outseta.AddOnsClient.
type AddOnsClient struct {
	base *Base
}

// NewAddOnsClient creates a new add-ons client.
func NewAddOnsClient(base *Base) *AddOnsClient {
	return &AddOnsClient{
		base: base,
	}
}

// Get implements outseta.AddOnsClient.Get.
func (c *AddOnsClient) Get(ctx context.Context, id string) (*outseta.AddOn, error) {
	err := requireID("add-on id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.AddOn](ctx, c.base, "/billing/addons/"+segment(id), outseta.Params{})
}

// List implements outseta.AddOnsClient.List.
func (c *AddOnsClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.AddOn], error) {
	return getPage[outseta.AddOn](ctx, c.base, "/billing/addons", page)
}

// AddUsage implements outseta.AddOnsClient.AddUsage.
func (c *AddOnsClient) AddUsage(ctx context.Context, usage *outseta.AddOnUsageRequest) error {
	err := requireValue("usage request", usage)
	if err != nil {
		return err
	}

	return sendVoid(ctx, c.base, c.base.Post, "/billing/usage", outseta.Params{}, usage)
}
