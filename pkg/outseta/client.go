package outseta

import (
	"context"
	"time"
)

// Client is the main interface for the Outseta API.
type Client interface {
	BillingClients
	CRMClients

	Auth() AuthClient
	Marketing() MarketingClient
	Support() SupportClient

	// Headers exposes the header set sent with every request.
	Headers() HeaderMutator
}

// BillingClients provides access to the billing endpoint groups.
type BillingClients interface {
	AddOns() AddOnsClient
	Discounts() DiscountsClient
	Invoices() InvoicesClient
	Plans() PlansClient
	PlanFamilies() PlanFamiliesClient
	Subscriptions() SubscriptionsClient
	PaymentInfo() PaymentInfoClient
}

// CRMClients provides access to the CRM endpoint groups.
type CRMClients interface {
	Accounts() AccountsClient
	Activities() ActivitiesClient
	Deals() DealsClient
	People() PeopleClient
}

// HeaderMutator changes the headers a client sends. It is not safe for use
// concurrently with requests on the same client; callers must synchronize.
type HeaderMutator interface {
	Snapshot() map[string]string
	Update(headers map[string]string)
	Replace(headers map[string]string)
}

// AddOnsClient defines operations for add-ons.
type AddOnsClient interface {
	Get(ctx context.Context, id string) (*AddOn, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[AddOn], error)
	AddUsage(ctx context.Context, usage *AddOnUsageRequest) error
}

// DiscountsClient defines operations for discount coupons.
type DiscountsClient interface {
	Create(ctx context.Context, discount *Discount) (*Discount, error)
}

// InvoicesClient defines operations for invoices and billing transactions.
type InvoicesClient interface {
	Create(ctx context.Context, invoice *Invoice) (*Invoice, error)
	ListTransactions(ctx context.Context, accountID string, page *PageRequest) (*ItemPage[Transaction], error)
	AddPayment(ctx context.Context, payment *AddInvoicePaymentRequest) (*Transaction, error)
}

// PlansClient defines operations for plans.
type PlansClient interface {
	Get(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[Plan], error)
}

// PlanFamiliesClient defines operations for plan families.
type PlanFamiliesClient interface {
	Get(ctx context.Context, id string) (*PlanFamily, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[PlanFamily], error)
}

// SubscriptionsClient defines operations for subscriptions.
type SubscriptionsClient interface {
	Get(ctx context.Context, id string) (*Subscription, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[Subscription], error)
	ComputeChargeSummary(ctx context.Context, asOf ChargeAsOf, change *SubscriptionChangeRequest) (*Invoice, error)
	SetFirstSubscription(ctx context.Context, change *SubscriptionChangeRequest) (*Subscription, error)
	PreviewChange(ctx context.Context, id string, change *SubscriptionChangeRequest) (*Invoice, error)
	Change(ctx context.Context, id string, change *SubscriptionChangeRequest) (*Subscription, error)
	SetUpgradeRequired(ctx context.Context, id string, subscription *Subscription) (*Subscription, error)
	ExtendTrial(ctx context.Context, accountID string, until time.Time) error
	AddAddOn(ctx context.Context, addOn *SubscriptionAddOn) (*Subscription, error)
	AddDiscount(ctx context.Context, subscriptionID, discountID string) error
}

// PaymentInfoClient defines operations for account payment information.
type PaymentInfoClient interface {
	Update(ctx context.Context, info *PaymentInfoRequest) error
}

// AccountsClient defines operations for accounts and their memberships.
type AccountsClient interface {
	Get(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[Account], error)
	Create(ctx context.Context, account *Account) (*Account, error)
	Register(ctx context.Context, account *Account, sendConfirmationEmail bool) (*Account, error)
	Update(ctx context.Context, id string, account *Account) (*Account, error)
	Delete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, cancellation *CancelAccountRequest) error
	RemoveCancellation(ctx context.Context, id string) error
	AddPerson(ctx context.Context, id string, membership *PersonAccount, sendWelcomeEmail *bool) (*PersonAccount, error)
	UpdateMembership(ctx context.Context, id, membershipID string, membership *PersonAccount) error
	RemoveMembership(ctx context.Context, id, membershipID string) error
}

// ActivitiesClient defines operations for activities.
type ActivitiesClient interface {
	List(ctx context.Context, page *PageRequest) (*ItemPage[Activity], error)
	CreateCustom(ctx context.Context, activity *Activity) (*Activity, error)
}

// DealsClient defines operations for deals.
type DealsClient interface {
	Get(ctx context.Context, id string) (*Deal, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[Deal], error)
	Create(ctx context.Context, deal *Deal) (*Deal, error)
	Update(ctx context.Context, id string, deal *Deal) (*Deal, error)
	Delete(ctx context.Context, id string) error
}

// PeopleClient defines operations for people.
type PeopleClient interface {
	Get(ctx context.Context, id string) (*Person, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[Person], error)
	Create(ctx context.Context, person *Person) (*Person, error)
	Update(ctx context.Context, id string, person *Person) (*Person, error)
	Delete(ctx context.Context, id string) error
	SetTemporaryPassword(ctx context.Context, id, password string) error
}

// AuthClient exchanges credentials for access tokens.
type AuthClient interface {
	GetToken(ctx context.Context, username, password string) (*AuthToken, error)
}

// MarketingClient defines operations for email lists and their subscriptions.
type MarketingClient interface {
	GetList(ctx context.Context, id string) (*EmailList, error)
	Lists(ctx context.Context, page *PageRequest) (*ItemPage[EmailList], error)
	Subscriptions(ctx context.Context, listID string, page *PageRequest) (*ItemPage[MarketingSubscription], error)
	Subscribe(ctx context.Context, listID string, subscription *MarketingSubscription) (*MarketingSubscription, error)
	Unsubscribe(ctx context.Context, listID, subscriptionID string) error
}

// ProfileClient acts on the person the access key belongs to.
type ProfileClient interface {
	Get(ctx context.Context) (*Person, error)
	Update(ctx context.Context, person *Person) (*Person, error)
	UpdatePassword(ctx context.Context, request *UpdatePasswordRequest) error
}

// SupportClient defines operations for support cases.
type SupportClient interface {
	Get(ctx context.Context, id string) (*Case, error)
	List(ctx context.Context, page *PageRequest) (*ItemPage[Case], error)
	Create(ctx context.Context, supportCase *Case, sendAutoResponder bool) (*Case, error)
	AddClientResponse(ctx context.Context, caseID, comment string) error
	AddReply(ctx context.Context, caseID string, reply *CaseReply) (*Case, error)
}

// Logger is the logging interface used by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
