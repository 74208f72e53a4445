package client

import (
	"context"
	"time"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// SubscriptionsClient implements outseta.SubscriptionsClient.
type SubscriptionsClient struct {
	base *Base
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(base *Base) *SubscriptionsClient {
	return &SubscriptionsClient{
		base: base,
	}
}

// Get implements outseta.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string) (*outseta.Subscription, error) {
	err := requireID("subscription id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.Subscription](ctx, c.base, "/billing/subscriptions/"+segment(id), outseta.Params{})
}

// List implements outseta.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Subscription], error) {
	return getPage[outseta.Subscription](ctx, c.base, "/billing/subscriptions", page)
}

// ComputeChargeSummary previews the invoice a first-time subscription would
// produce. An empty asOf leaves the reference point to the server.
func (c *SubscriptionsClient) ComputeChargeSummary(ctx context.Context, asOf outseta.ChargeAsOf, change *outseta.SubscriptionChangeRequest) (*outseta.Invoice, error) {
	err := requireValue("subscription request", change)
	if err != nil {
		return nil, err
	}

	params := outseta.Params{}
	if asOf != "" {
		params["asOf"] = string(asOf)
	}

	return sendObject[outseta.Invoice](ctx, c.base, c.base.Post, "/billing/subscriptions/compute-charge-summary", params, change)
}

// SetFirstSubscription adds the first subscription to an account.
func (c *SubscriptionsClient) SetFirstSubscription(ctx context.Context, change *outseta.SubscriptionChangeRequest) (*outseta.Subscription, error) {
	err := requireValue("subscription request", change)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Subscription](ctx, c.base, c.base.Put, "/billing/subscriptions/firsttimesubscription", outseta.Params{}, change)
}

// PreviewChange returns the invoice a subscription change would produce
// without committing it.
func (c *SubscriptionsClient) PreviewChange(ctx context.Context, id string, change *outseta.SubscriptionChangeRequest) (*outseta.Invoice, error) {
	err := requireID("subscription id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("subscription request", change)
	if err != nil {
		return nil, err
	}

	path := "/billing/subscriptions/" + segment(id) + "/changesubscriptionpreview"

	return sendObject[outseta.Invoice](ctx, c.base, c.base.Put, path, outseta.Params{}, change)
}

// Change implements outseta.SubscriptionsClient.Change.
func (c *SubscriptionsClient) Change(ctx context.Context, id string, change *outseta.SubscriptionChangeRequest) (*outseta.Subscription, error) {
	err := requireID("subscription id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("subscription request", change)
	if err != nil {
		return nil, err
	}

	path := "/billing/subscriptions/" + segment(id) + "/changesubscription"

	return sendObject[outseta.Subscription](ctx, c.base, c.base.Put, path, outseta.Params{}, change)
}

// SetUpgradeRequired implements outseta.SubscriptionsClient.SetUpgradeRequired.
func (c *SubscriptionsClient) SetUpgradeRequired(ctx context.Context, id string, subscription *outseta.Subscription) (*outseta.Subscription, error) {
	err := requireID("subscription id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("subscription", subscription)
	if err != nil {
		return nil, err
	}

	path := "/billing/subscriptions/" + segment(id) + "/setsubscriptionupgraderequired"

	return sendObject[outseta.Subscription](ctx, c.base, c.base.Put, path, outseta.Params{}, subscription)
}

// ExtendTrial moves the trial expiry of an account to until.
func (c *SubscriptionsClient) ExtendTrial(ctx context.Context, accountID string, until time.Time) error {
	err := requireID("account id", accountID)
	if err != nil {
		return err
	}

	if until.IsZero() {
		return outseta.InvalidArgument("trial end date")
	}

	path := "/crm/accounts/extendtrial/" + segment(accountID) + "/" + until.Format(outseta.DateLayout)

	_, err = c.base.Put(ctx, path, outseta.Params{}, "")

	return err
}

// AddAddOn implements outseta.SubscriptionsClient.AddAddOn.
func (c *SubscriptionsClient) AddAddOn(ctx context.Context, addOn *outseta.SubscriptionAddOn) (*outseta.Subscription, error) {
	err := requireValue("subscription add-on", addOn)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Subscription](ctx, c.base, c.base.Post, "/billing/subscriptionaddons", outseta.Params{}, addOn)
}

// AddDiscount applies a discount coupon to a subscription. The request has
// an empty body.
func (c *SubscriptionsClient) AddDiscount(ctx context.Context, subscriptionID, discountID string) error {
	err := requireID("subscription id", subscriptionID)
	if err != nil {
		return err
	}

	err = requireID("discount id", discountID)
	if err != nil {
		return err
	}

	path := "/billing/subscriptions/" + segment(subscriptionID) + "/discounts/" + segment(discountID)

	return sendVoid(ctx, c.base, c.base.Post, path, outseta.Params{}, nil)
}
