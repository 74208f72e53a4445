package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// MarketingClient implements outseta.MarketingClient.
type MarketingClient struct {
	base *Base
}

// NewMarketingClient creates a new marketing client.
func NewMarketingClient(base *Base) *MarketingClient {
	return &MarketingClient{
		base: base,
	}
}

// GetList implements outseta.MarketingClient.GetList.
func (c *MarketingClient) GetList(ctx context.Context, id string) (*outseta.EmailList, error) {
	err := requireID("email list id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.EmailList](ctx, c.base, listPath(id), outseta.Params{})
}

// Lists implements outseta.MarketingClient.Lists.
func (c *MarketingClient) Lists(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.EmailList], error) {
	return getPage[outseta.EmailList](ctx, c.base, "/email/lists", page)
}

// Subscriptions implements outseta.MarketingClient.Subscriptions.
func (c *MarketingClient) Subscriptions(ctx context.Context, listID string, page *outseta.PageRequest) (*outseta.ItemPage[outseta.MarketingSubscription], error) {
	err := requireID("email list id", listID)
	if err != nil {
		return nil, err
	}

	return getPage[outseta.MarketingSubscription](ctx, c.base, listPath(listID)+"/subscriptions", page)
}

// Subscribe implements outseta.MarketingClient.Subscribe.
func (c *MarketingClient) Subscribe(ctx context.Context, listID string, subscription *outseta.MarketingSubscription) (*outseta.MarketingSubscription, error) {
	err := requireID("email list id", listID)
	if err != nil {
		return nil, err
	}

	err = requireValue("subscription", subscription)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.MarketingSubscription](ctx, c.base, c.base.Post, listPath(listID)+"/subscriptions", outseta.Params{}, subscription)
}

// Unsubscribe implements outseta.MarketingClient.Unsubscribe.
func (c *MarketingClient) Unsubscribe(ctx context.Context, listID, subscriptionID string) error {
	err := requireID("email list id", listID)
	if err != nil {
		return err
	}

	err = requireID("subscription id", subscriptionID)
	if err != nil {
		return err
	}

	_, err = c.base.Delete(ctx, listPath(listID)+"/subscriptions/"+segment(subscriptionID), outseta.Params{})

	return err
}

func listPath(id string) string {
	return "/email/lists/" + segment(id)
}
