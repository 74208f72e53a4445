package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// DealsClient implements outseta.DealsClient.
type DealsClient struct {
	base *Base
}

// NewDealsClient creates a new deals client.
func NewDealsClient(base *Base) *DealsClient {
	return &DealsClient{
		base: base,
	}
}

// Get implements outseta.DealsClient.Get.
func (c *DealsClient) Get(ctx context.Context, id string) (*outseta.Deal, error) {
	err := requireID("deal id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.Deal](ctx, c.base, "/crm/deals/"+segment(id), outseta.Params{})
}

// List implements outseta.DealsClient.List.
func (c *DealsClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Deal], error) {
	return getPage[outseta.Deal](ctx, c.base, "/crm/deals", page)
}

// Create implements outseta.DealsClient.Create.
func (c *DealsClient) Create(ctx context.Context, deal *outseta.Deal) (*outseta.Deal, error) {
	err := requireValue("deal", deal)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Deal](ctx, c.base, c.base.Post, "/crm/deals", outseta.Params{}, deal)
}

// Update implements outseta.DealsClient.Update.
func (c *DealsClient) Update(ctx context.Context, id string, deal *outseta.Deal) (*outseta.Deal, error) {
	err := requireID("deal id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("deal", deal)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Deal](ctx, c.base, c.base.Put, "/crm/deals/"+segment(id), outseta.Params{}, deal)
}

// Delete implements outseta.DealsClient.Delete.
func (c *DealsClient) Delete(ctx context.Context, id string) error {
	err := requireID("deal id", id)
	if err != nil {
		return err
	}

	_, err = c.base.Delete(ctx, "/crm/deals/"+segment(id), outseta.Params{})

	return err
}
