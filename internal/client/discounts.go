package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// DiscountsClient implements outseta.DiscountsClient.
type DiscountsClient struct {
	base *Base
}

// NewDiscountsClient creates a new discounts client.
func NewDiscountsClient(base *Base) *DiscountsClient {
	return &DiscountsClient{
		base: base,
	}
}

// Create implements outseta.DiscountsClient.Create.
func (c *DiscountsClient) Create(ctx context.Context, discount *outseta.Discount) (*outseta.Discount, error) {
	err := requireValue("discount", discount)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Discount](ctx, c.base, c.base.Post, "/billing/discountcoupons", outseta.Params{}, discount)
}
