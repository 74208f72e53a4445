package client

import (
	"context"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// InvoicesClient implements outseta.InvoicesClient.
type InvoicesClient struct {
	base *Base
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(base *Base) *InvoicesClient {
	return &InvoicesClient{
		base: base,
	}
}

// Create implements outseta.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, invoice *outseta.Invoice) (*outseta.Invoice, error) {
	err := requireValue("invoice", invoice)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Invoice](ctx, c.base, c.base.Post, "/billing/invoices", outseta.Params{}, invoice)
}

// ListTransactions implements outseta.InvoicesClient.ListTransactions.
func (c *InvoicesClient) ListTransactions(ctx context.Context, accountID string, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Transaction], error) {
	err := requireID("account id", accountID)
	if err != nil {
		return nil, err
	}

	return getPage[outseta.Transaction](ctx, c.base, "/billing/transactions/"+segment(accountID), page)
}

// AddPayment implements outseta.InvoicesClient.AddPayment.
func (c *InvoicesClient) AddPayment(ctx context.Context, payment *outseta.AddInvoicePaymentRequest) (*outseta.Transaction, error) {
	err := requireValue("payment request", payment)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Transaction](ctx, c.base, c.base.Post, "/billing/transactions/payment", outseta.Params{}, payment)
}
