package outseta

// AddInvoicePaymentRequest records a payment against an invoice.
type AddInvoicePaymentRequest struct {
	Account *Account `json:"Account,omitempty"`
	Invoice *Invoice `json:"Invoice,omitempty"`
	Amount  *float64 `json:"Amount,omitempty"`
}

// AddOnUsageRequest reports metered usage of a subscription add-on.
type AddOnUsageRequest struct {
	UsageDate         *Timestamp         `json:"UsageDate,omitempty"`
	Amount            *int               `json:"Amount,omitempty"`
	SubscriptionAddOn *SubscriptionAddOn `json:"SubscriptionAddOn,omitempty"`
}

// CancelAccountRequest asks for an account to be cancelled.
type CancelAccountRequest struct {
	CancellationReason string   `json:"CancelationReason,omitempty"`
	Comment            string   `json:"Comment,omitempty"`
	Account            *Account `json:"Account,omitempty"`
}

// SubscriptionChangeRequest describes a new or changed subscription.
type SubscriptionChangeRequest struct {
	Plan               *Plan               `json:"Plan,omitempty"`
	BillingRenewalTerm *BillingRenewalTerm `json:"BillingRenewalTerm,omitempty"`
	SubscriptionAddOns []SubscriptionAddOn `json:"SubscriptionAddOns,omitempty"`
	Account            *Account            `json:"Account,omitempty"`
}

// AuthTokenRequest exchanges a username and password for an access token.
type AuthTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TemporaryPasswordRequest sets a one-time password for a person.
type TemporaryPasswordRequest struct {
	TemporaryPassword string `json:"temporaryPassword"`
}

// UpdatePasswordRequest changes the logged in person's password.
type UpdatePasswordRequest struct {
	ExistingPassword string `json:"ExistingPassword"`
	NewPassword      string `json:"NewPassword"`
}

// PaymentInfoRequest replaces the payment method on an account.
type PaymentInfoRequest struct {
	Account       *Account `json:"Account,omitempty"`
	CustomerToken string   `json:"CustomerToken,omitempty"`
	NameOnCard    string   `json:"NameOnCard,omitempty"`
	PaymentToken  string   `json:"PaymentToken,omitempty"`
}
