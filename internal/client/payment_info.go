package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// PaymentInfoClient implements outseta.PaymentInfoClient.
type PaymentInfoClient struct {
	base *Base
}

// NewPaymentInfoClient creates a new payment information client.
func NewPaymentInfoClient(base *Base) *PaymentInfoClient {
	return &PaymentInfoClient{
		base: base,
	}
}

// Update implements outseta.PaymentInfoClient.Update.
func (c *PaymentInfoClient) Update(ctx context.Context, info *outseta.PaymentInfoRequest) error {
	err := requireValue("payment information", info)
	if err != nil {
		return err
	}

	return sendVoid(ctx, c.base, c.base.Post, "/billing/paymentinformation", outseta.Params{}, info)
}
