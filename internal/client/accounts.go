package client

import (
	"context"
	"strconv"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// AccountsClient implements outseta.AccountsClient.
type AccountsClient struct {
	base *Base
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(base *Base) *AccountsClient {
	return &AccountsClient{
		base: base,
	}
}

// Get implements outseta.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, id string) (*outseta.Account, error) {
	err := requireID("account id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.Account](ctx, c.base, accountPath(id), outseta.Params{})
}

// List implements outseta.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Account], error) {
	return getPage[outseta.Account](ctx, c.base, "/crm/accounts", page)
}

// Create adds an account whose people already exist.
func (c *AccountsClient) Create(ctx context.Context, account *outseta.Account) (*outseta.Account, error) {
	err := requireValue("account", account)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Account](ctx, c.base, c.base.Post, "/crm/accounts", outseta.Params{}, account)
}

// Register adds an account together with new people, optionally sending
// them a confirmation email.
func (c *AccountsClient) Register(ctx context.Context, account *outseta.Account, sendConfirmationEmail bool) (*outseta.Account, error) {
	err := requireValue("account", account)
	if err != nil {
		return nil, err
	}

	params := outseta.Params{"sendConfirmationEmail": strconv.FormatBool(sendConfirmationEmail)}

	return sendObject[outseta.Account](ctx, c.base, c.base.Post, "/crm/accounts", params, account)
}

// Update implements outseta.AccountsClient.Update.
func (c *AccountsClient) Update(ctx context.Context, id string, account *outseta.Account) (*outseta.Account, error) {
	err := requireID("account id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("account", account)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Account](ctx, c.base, c.base.Put, accountPath(id), outseta.Params{}, account)
}

// Delete implements outseta.AccountsClient.Delete.
func (c *AccountsClient) Delete(ctx context.Context, id string) error {
	err := requireID("account id", id)
	if err != nil {
		return err
	}

	_, err = c.base.Delete(ctx, accountPath(id), outseta.Params{})

	return err
}

// Cancel implements outseta.AccountsClient.Cancel.
func (c *AccountsClient) Cancel(ctx context.Context, id string, cancellation *outseta.CancelAccountRequest) error {
	err := requireID("account id", id)
	if err != nil {
		return err
	}

	err = requireValue("cancellation request", cancellation)
	if err != nil {
		return err
	}

	return sendVoid(ctx, c.base, c.base.Put, "/crm/accounts/cancellation/"+segment(id), outseta.Params{}, cancellation)
}

// RemoveCancellation implements outseta.AccountsClient.RemoveCancellation.
func (c *AccountsClient) RemoveCancellation(ctx context.Context, id string) error {
	err := requireID("account id", id)
	if err != nil {
		return err
	}

	_, err = c.base.Put(ctx, "/crm/accounts/removecancellation/"+segment(id), outseta.Params{}, "")

	return err
}

// AddPerson adds a membership to an account. A nil sendWelcomeEmail attaches
// an existing person; a non-nil value registers a new person and controls the
// welcome email.
func (c *AccountsClient) AddPerson(ctx context.Context, id string, membership *outseta.PersonAccount, sendWelcomeEmail *bool) (*outseta.PersonAccount, error) {
	err := requireID("account id", id)
	if err != nil {
		return nil, err
	}

	err = requireValue("membership", membership)
	if err != nil {
		return nil, err
	}

	params := outseta.Params{}
	if sendWelcomeEmail != nil {
		params["sendWelcomeEmail"] = strconv.FormatBool(*sendWelcomeEmail)
	}

	return sendObject[outseta.PersonAccount](ctx, c.base, c.base.Post, accountPath(id)+"/memberships", params, membership)
}

// UpdateMembership implements outseta.AccountsClient.UpdateMembership.
func (c *AccountsClient) UpdateMembership(ctx context.Context, id, membershipID string, membership *outseta.PersonAccount) error {
	err := requireID("account id", id)
	if err != nil {
		return err
	}

	err = requireID("membership id", membershipID)
	if err != nil {
		return err
	}

	err = requireValue("membership", membership)
	if err != nil {
		return err
	}

	return sendVoid(ctx, c.base, c.base.Put, membershipPath(id, membershipID), outseta.Params{}, membership)
}

// RemoveMembership implements outseta.AccountsClient.RemoveMembership.
func (c *AccountsClient) RemoveMembership(ctx context.Context, id, membershipID string) error {
	err := requireID("account id", id)
	if err != nil {
		return err
	}

	err = requireID("membership id", membershipID)
	if err != nil {
		return err
	}

	_, err = c.base.Delete(ctx, membershipPath(id, membershipID), outseta.Params{})

	return err
}

func accountPath(id string) string {
	return "/crm/accounts/" + segment(id)
}

func membershipPath(id, membershipID string) string {
	return accountPath(id) + "/memberships/" + segment(membershipID)
}
