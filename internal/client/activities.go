package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// ActivitiesClient implements outseta.ActivitiesClient.
type ActivitiesClient struct {
	base *Base
}

// NewActivitiesClient creates a new activities client.
func NewActivitiesClient(base *Base) *ActivitiesClient {
	return &ActivitiesClient{
		base: base,
	}
}

// List implements outseta.ActivitiesClient.List.
func (c *ActivitiesClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Activity], error) {
	return getPage[outseta.Activity](ctx, c.base, "/activities", page)
}

// CreateCustom records a custom activity against an account, person or deal.
func (c *ActivitiesClient) CreateCustom(ctx context.Context, activity *outseta.Activity) (*outseta.Activity, error) {
	err := requireValue("activity", activity)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Activity](ctx, c.base, c.base.Post, "/activities/customactivity", outseta.Params{}, activity)
}
