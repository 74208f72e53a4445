package client

import (
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// Client implements the outseta.Client interface.
type Client struct {
	base *Base

	// Resource clients
	addOns        outseta.AddOnsClient
	discounts     outseta.DiscountsClient
	invoices      outseta.InvoicesClient
	plans         outseta.PlansClient
	planFamilies  outseta.PlanFamiliesClient
	subscriptions outseta.SubscriptionsClient
	paymentInfo   outseta.PaymentInfoClient
	accounts      outseta.AccountsClient
	activities    outseta.ActivitiesClient
	deals         outseta.DealsClient
	people        outseta.PeopleClient
	auth          outseta.AuthClient
	marketing     outseta.MarketingClient
	support       outseta.SupportClient
}

var _ outseta.Client = (*Client)(nil)

// New creates a client over a validated configuration. Every endpoint client
// shares one Base, so header changes apply to all of them.
func New(config Configuration) *Client {
	client := &Client{
		base: NewBase(config),
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// NewProfile creates a profile client over a validated configuration.
func NewProfile(config Configuration) *ProfileClient {
	return NewProfileClient(NewBase(config))
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.addOns = NewAddOnsClient(c.base)
	c.discounts = NewDiscountsClient(c.base)
	c.invoices = NewInvoicesClient(c.base)
	c.plans = NewPlansClient(c.base)
	c.planFamilies = NewPlanFamiliesClient(c.base)
	c.subscriptions = NewSubscriptionsClient(c.base)
	c.paymentInfo = NewPaymentInfoClient(c.base)
	c.accounts = NewAccountsClient(c.base)
	c.activities = NewActivitiesClient(c.base)
	c.deals = NewDealsClient(c.base)
	c.people = NewPeopleClient(c.base)
	c.auth = NewAuthClient(c.base)
	c.marketing = NewMarketingClient(c.base)
	c.support = NewSupportClient(c.base)
}

// AddOns implements outseta.Client.AddOns.
func (c *Client) AddOns() outseta.AddOnsClient {
	return c.addOns
}

// Discounts implements outseta.Client.Discounts.
func (c *Client) Discounts() outseta.DiscountsClient {
	return c.discounts
}

// Invoices implements outseta.Client.Invoices.
func (c *Client) Invoices() outseta.InvoicesClient {
	return c.invoices
}

// Plans implements outseta.Client.Plans.
func (c *Client) Plans() outseta.PlansClient {
	return c.plans
}

// PlanFamilies implements outseta.Client.PlanFamilies.
func (c *Client) PlanFamilies() outseta.PlanFamiliesClient {
	return c.planFamilies
}

// Subscriptions implements outseta.Client.Subscriptions.
func (c *Client) Subscriptions() outseta.SubscriptionsClient {
	return c.subscriptions
}

// PaymentInfo implements outseta.Client.PaymentInfo.
func (c *Client) PaymentInfo() outseta.PaymentInfoClient {
	return c.paymentInfo
}

// Accounts implements outseta.Client.Accounts.
func (c *Client) Accounts() outseta.AccountsClient {
	return c.accounts
}

// Activities implements outseta.Client.Activities.
func (c *Client) Activities() outseta.ActivitiesClient {
	return c.activities
}

// Deals implements outseta.Client.Deals.
func (c *Client) Deals() outseta.DealsClient {
	return c.deals
}

// People implements outseta.Client.People.
func (c *Client) People() outseta.PeopleClient {
	return c.people
}

// Auth implements outseta.Client.Auth.
func (c *Client) Auth() outseta.AuthClient {
	return c.auth
}

// Marketing implements outseta.Client.Marketing.
func (c *Client) Marketing() outseta.MarketingClient {
	return c.marketing
}

// Support implements outseta.Client.Support.
func (c *Client) Support() outseta.SupportClient {
	return c.support
}

// Headers implements outseta.Client.Headers.
func (c *Client) Headers() outseta.HeaderMutator {
	return c.base
}
