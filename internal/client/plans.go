package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// PlansClient implements outseta.PlansClient.
type PlansClient struct {
	base *Base
}

// NewPlansClient creates a new plans client.
func NewPlansClient(base *Base) *PlansClient {
	return &PlansClient{
		base: base,
	}
}

// Get implements outseta.PlansClient.Get.
func (c *PlansClient) Get(ctx context.Context, id string) (*outseta.Plan, error) {
	err := requireID("plan id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.Plan](ctx, c.base, "/billing/plans/"+segment(id), outseta.Params{})
}

// List implements outseta.PlansClient.List.
func (c *PlansClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Plan], error) {
	return getPage[outseta.Plan](ctx, c.base, "/billing/plans", page)
}

// PlanFamiliesClient implements outseta.PlanFamiliesClient.
type PlanFamiliesClient struct {
	base *Base
}

// NewPlanFamiliesClient creates a new plan families client.
func NewPlanFamiliesClient(base *Base) *PlanFamiliesClient {
	return &PlanFamiliesClient{
		base: base,
	}
}

// Get implements outseta.PlanFamiliesClient.Get.
func (c *PlanFamiliesClient) Get(ctx context.Context, id string) (*outseta.PlanFamily, error) {
	err := requireID("plan family id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.PlanFamily](ctx, c.base, "/billing/planfamilies/"+segment(id), outseta.Params{})
}

// List implements outseta.PlanFamiliesClient.List.
func (c *PlanFamiliesClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.PlanFamily], error) {
	return getPage[outseta.PlanFamily](ctx, c.base, "/billing/planfamilies", page)
}
