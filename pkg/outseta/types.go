package outseta

import "encoding/json"

// Entity holds the fields every Outseta record carries. The UID is the only
// field that identifies a record.
type Entity struct {
	UID     string     `json:"Uid,omitempty"     yaml:"uid,omitempty"`
	Created *Timestamp `json:"Created,omitempty" yaml:"created,omitempty"`
	Updated *Timestamp `json:"Updated,omitempty" yaml:"updated,omitempty"`
}

// Identity returns the record UID.
func (e Entity) Identity() string {
	return e.UID
}

// Identifiable is implemented by every type that embeds Entity.
type Identifiable interface {
	Identity() string
}

// SameEntity reports whether a and b refer to the same record.
func SameEntity(a, b Identifiable) bool {
	return a.Identity() != "" && a.Identity() == b.Identity()
}

// Metadata describes a page returned by a list endpoint.
type Metadata struct {
	Limit  int `json:"limit"  yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
	Total  int `json:"total"  yaml:"total"`
}

// ItemPage is one page of a list endpoint.
type ItemPage[T any] struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Items    []T      `json:"items"    yaml:"items"`
}

// HasMore reports whether records remain after seen items have been read.
func (p *ItemPage[T]) HasMore(seen int) bool {
	return seen < p.Metadata.Total
}

// Address is a postal address attached to an account.
type Address struct {
	Entity `yaml:",inline"`

	AddressLine1      string          `json:"AddressLine1,omitempty"      yaml:"address_line1,omitempty"`
	AddressLine2      string          `json:"AddressLine2,omitempty"      yaml:"address_line2,omitempty"`
	AddressLine3      string          `json:"AddressLine3,omitempty"      yaml:"address_line3,omitempty"`
	City              string          `json:"City,omitempty"              yaml:"city,omitempty"`
	State             string          `json:"State,omitempty"             yaml:"state,omitempty"`
	PostalCode        string          `json:"PostalCode,omitempty"        yaml:"postal_code,omitempty"`
	Country           string          `json:"Country,omitempty"           yaml:"country,omitempty"`
	GeoLocation       json.RawMessage `json:"GeoLocation,omitempty"       yaml:"-"`
	ActivityEventData json.RawMessage `json:"ActivityEventData,omitempty" yaml:"-"`
}

// MailingAddress is a postal address attached to a person.
type MailingAddress = Address

// Account is a customer account.
type Account struct {
	Entity `yaml:",inline"`

	Name               string          `json:"Name,omitempty"               yaml:"name,omitempty"`
	ClientIdentifier   string          `json:"ClientIdentifier,omitempty"   yaml:"client_identifier,omitempty"`
	BillingAddress     *Address        `json:"BillingAddress,omitempty"     yaml:"billing_address,omitempty"`
	MailingAddress     *Address        `json:"MailingAddress,omitempty"     yaml:"mailing_address,omitempty"`
	AccountStage       *AccountStage   `json:"AccountStage,omitempty"       yaml:"account_stage,omitempty"`
	PaymentInformation string          `json:"PaymentInformation,omitempty" yaml:"payment_information,omitempty"`
	PersonAccount      []PersonAccount `json:"PersonAccount,omitempty"      yaml:"person_account,omitempty"`
	Subscriptions      []Subscription  `json:"Subscriptions,omitempty"      yaml:"subscriptions,omitempty"`
}

// Person is a contact in the CRM.
type Person struct {
	Entity `yaml:",inline"`

	Email                      string          `json:"Email,omitempty"                      yaml:"email,omitempty"`
	FirstName                  string          `json:"FirstName,omitempty"                  yaml:"first_name,omitempty"`
	LastName                   string          `json:"LastName,omitempty"                   yaml:"last_name,omitempty"`
	FullName                   string          `json:"FullName,omitempty"                   yaml:"full_name,omitempty"`
	MailingAddress             *MailingAddress `json:"MailingAddress,omitempty"             yaml:"mailing_address,omitempty"`
	PasswordLastUpdated        *Timestamp      `json:"PasswordLastUpdated,omitempty"        yaml:"password_last_updated,omitempty"`
	PasswordMustChange         *bool           `json:"PasswordMustChange,omitempty"         yaml:"password_must_change,omitempty"`
	PhoneMobile                string          `json:"PhoneMobile,omitempty"                yaml:"phone_mobile,omitempty"`
	PhoneWork                  string          `json:"PhoneWork,omitempty"                  yaml:"phone_work,omitempty"`
	ProfileImageS3URL          string          `json:"ProfileImageS3Url,omitempty"          yaml:"profile_image_s3_url,omitempty"`
	Title                      string          `json:"Title,omitempty"                      yaml:"title,omitempty"`
	Timezone                   string          `json:"Timezone,omitempty"                   yaml:"timezone,omitempty"`
	Language                   string          `json:"Language,omitempty"                   yaml:"language,omitempty"`
	IPAddress                  string          `json:"IPAddress,omitempty"                  yaml:"ip_address,omitempty"`
	Referer                    string          `json:"Referer,omitempty"                    yaml:"referer,omitempty"`
	UserAgent                  string          `json:"UserAgent,omitempty"                  yaml:"user_agent,omitempty"`
	LastLoginDateTime          *Timestamp      `json:"LastLoginDateTime,omitempty"          yaml:"last_login,omitempty"`
	OAuthGoogleProfileID       string          `json:"OAuthGoogleProfileId,omitempty"       yaml:"oauth_google_profile_id,omitempty"`
	PersonAccount              []PersonAccount `json:"PersonAccount,omitempty"              yaml:"person_account,omitempty"`
	EmailBounceDateTime        *Timestamp      `json:"EmailBounceDateTime,omitempty"        yaml:"email_bounce,omitempty"`
	EmailSpamDateTime          *Timestamp      `json:"EmailSpamDateTime,omitempty"          yaml:"email_spam,omitempty"`
	EmailUnsubscribeDateTime   *Timestamp      `json:"EmailUnsubscribeDateTime,omitempty"   yaml:"email_unsubscribe,omitempty"`
	EmailLastDeliveredDateTime *Timestamp      `json:"EmailLastDeliveredDateTime,omitempty" yaml:"email_last_delivered,omitempty"`
}

// PersonAccount links a person to an account. Account is kept as raw JSON
// because the API returns differently shaped account objects here.
type PersonAccount struct {
	Entity `yaml:",inline"`

	Person            *Person         `json:"Person,omitempty"            yaml:"person,omitempty"`
	Account           json.RawMessage `json:"Account,omitempty"           yaml:"-"`
	IsPrimary         *bool           `json:"IsPrimary,omitempty"         yaml:"is_primary,omitempty"`
	ReceiveInvoices   *bool           `json:"ReceiveInvoices,omitempty"   yaml:"receive_invoices,omitempty"`
	ActivityEventData json.RawMessage `json:"ActivityEventData,omitempty" yaml:"-"`
}

// DecodeAccount decodes the raw account payload, returning nil when absent.
func (pa *PersonAccount) DecodeAccount() (*Account, error) {
	if len(pa.Account) == 0 || string(pa.Account) == "null" {
		return nil, nil //nolint:nilnil // absent account is not an error
	}

	var account Account

	err := json.Unmarshal(pa.Account, &account)
	if err != nil {
		return nil, ParseError("decoding person account", err)
	}

	return &account, nil
}

// Activity is a timeline event recorded against an account, person or deal.
type Activity struct {
	Entity `yaml:",inline"`

	Title            string       `json:"Title,omitempty"            yaml:"title,omitempty"`
	Description      string       `json:"Description,omitempty"      yaml:"description,omitempty"`
	ActivityData     string       `json:"ActivityData,omitempty"     yaml:"activity_data,omitempty"`
	ActivityDateTime *Timestamp   `json:"ActivityDateTime,omitempty" yaml:"activity_date_time,omitempty"`
	ActivityType     ActivityType `json:"ActivityType,omitempty"     yaml:"activity_type,omitempty"`
	EntityType       EntityType   `json:"EntityType,omitempty"       yaml:"entity_type,omitempty"`
	EntityUID        string       `json:"EntityUid,omitempty"        yaml:"entity_uid,omitempty"`
}

// DealPipelineStage is a stage in a deal pipeline.
type DealPipelineStage struct {
	Entity `yaml:",inline"`
}

// DealPerson links a person to a deal.
type DealPerson struct {
	Entity `yaml:",inline"`

	Person *Person `json:"Person,omitempty" yaml:"person,omitempty"`
}

// Deal is a sales opportunity.
type Deal struct {
	Entity `yaml:",inline"`

	Name                             string             `json:"Name,omitempty"                             yaml:"name,omitempty"`
	DealPipelineStage                *DealPipelineStage `json:"DealPipelineStage,omitempty"                yaml:"deal_pipeline_stage,omitempty"`
	Amount                           *float64           `json:"Amount,omitempty"                           yaml:"amount,omitempty"`
	AssignedToPersonClientIdentifier string             `json:"AssignedToPersonClientIdentifier,omitempty" yaml:"assigned_to,omitempty"`
	Account                          *PersonAccount     `json:"Account,omitempty"                          yaml:"account,omitempty"`
	DealPeople                       []DealPerson       `json:"DealPeople,omitempty"                       yaml:"deal_people,omitempty"`
}

// PlanFamily groups related plans.
type PlanFamily struct {
	Entity `yaml:",inline"`

	Name              string          `json:"Name,omitempty"              yaml:"name,omitempty"`
	IsActive          *bool           `json:"IsActive,omitempty"          yaml:"is_active,omitempty"`
	IsDefault         *bool           `json:"IsDefault,omitempty"         yaml:"is_default,omitempty"`
	Plans             []Plan          `json:"Plans,omitempty"             yaml:"plans,omitempty"`
	ActivityEventData json.RawMessage `json:"ActivityEventData,omitempty" yaml:"-"`
}

// Plan is a subscription plan.
type Plan struct {
	Entity `yaml:",inline"`

	Name                      string          `json:"Name,omitempty"                      yaml:"name,omitempty"`
	Description               string          `json:"Description,omitempty"               yaml:"description,omitempty"`
	PlanFamily                *PlanFamily     `json:"PlanFamily,omitempty"                yaml:"plan_family,omitempty"`
	AccountRegistrationMode   *int            `json:"AccountRegistrationMode,omitempty"   yaml:"account_registration_mode,omitempty"`
	IsQuantityEditable        *bool           `json:"IsQuantityEditable,omitempty"        yaml:"is_quantity_editable,omitempty"`
	MinimumQuantity           *int            `json:"MinimumQuantity,omitempty"           yaml:"minimum_quantity,omitempty"`
	MaximumPeople             *int            `json:"MaximumPeople,omitempty"             yaml:"maximum_people,omitempty"`
	MonthlyRate               *float64        `json:"MonthlyRate,omitempty"               yaml:"monthly_rate,omitempty"`
	AnnualRate                *float64        `json:"AnnualRate,omitempty"                yaml:"annual_rate,omitempty"`
	QuarterlyRate             *float64        `json:"QuarterlyRate,omitempty"             yaml:"quarterly_rate,omitempty"`
	OneTimeRate               *float64        `json:"OneTimeRate,omitempty"               yaml:"one_time_rate,omitempty"`
	SetupFee                  *float64        `json:"SetupFee,omitempty"                  yaml:"setup_fee,omitempty"`
	IsTaxable                 *bool           `json:"IsTaxable,omitempty"                 yaml:"is_taxable,omitempty"`
	IsActive                  *bool           `json:"IsActive,omitempty"                  yaml:"is_active,omitempty"`
	IsPerUser                 *bool           `json:"IsPerUser,omitempty"                 yaml:"is_per_user,omitempty"`
	RequirePaymentInformation *bool           `json:"RequirePaymentInformation,omitempty" yaml:"require_payment_information,omitempty"`
	TrialPeriodDays           *int            `json:"TrialPeriodDays,omitempty"           yaml:"trial_period_days,omitempty"`
	TrialUntilDate            *Timestamp      `json:"TrialUntilDate,omitempty"            yaml:"trial_until_date,omitempty"`
	ExpiresAfterMonths        *int            `json:"ExpiresAfterMonths,omitempty"        yaml:"expires_after_months,omitempty"`
	ExpirationDate            *Timestamp      `json:"ExpirationDate,omitempty"            yaml:"expiration_date,omitempty"`
	PostLoginPath             string          `json:"PostLoginPath,omitempty"             yaml:"post_login_path,omitempty"`
	StripeTaxCodeID           string          `json:"StripeTaxCodeId,omitempty"           yaml:"stripe_tax_code_id,omitempty"`
	UnitOfMeasure             string          `json:"UnitOfMeasure,omitempty"             yaml:"unit_of_measure,omitempty"`
	PlanAddOns                []PlanAddOn     `json:"PlanAddOns,omitempty"                yaml:"plan_add_ons,omitempty"`
	ContentGroups             []string        `json:"ContentGroups,omitempty"             yaml:"content_groups,omitempty"`
	NumberOfSubscriptions     *int            `json:"NumberOfSubscriptions,omitempty"     yaml:"number_of_subscriptions,omitempty"`
	ActivityEventData         json.RawMessage `json:"ActivityEventData,omitempty"         yaml:"-"`
}

// AddOn is an optional extra billed on top of a plan.
type AddOn struct {
	Entity `yaml:",inline"`

	Name                string          `json:"Name,omitempty"                yaml:"name,omitempty"`
	BillingAddOnType    *int            `json:"BillingAddOnType,omitempty"    yaml:"billing_add_on_type,omitempty"`
	IsQuantityEditable  *bool           `json:"IsQuantityEditable,omitempty"  yaml:"is_quantity_editable,omitempty"`
	MinimumQuantity     *int            `json:"MinimumQuantity,omitempty"     yaml:"minimum_quantity,omitempty"`
	MonthlyRate         *float64        `json:"MonthlyRate,omitempty"         yaml:"monthly_rate,omitempty"`
	AnnualRate          *float64        `json:"AnnualRate,omitempty"          yaml:"annual_rate,omitempty"`
	SetupFee            *float64        `json:"SetupFee,omitempty"            yaml:"setup_fee,omitempty"`
	UnitOfMeasure       string          `json:"UnitOfMeasure,omitempty"       yaml:"unit_of_measure,omitempty"`
	IsTaxable           *bool           `json:"IsTaxable,omitempty"           yaml:"is_taxable,omitempty"`
	IsBilledDuringTrial *bool           `json:"IsBilledDuringTrial,omitempty" yaml:"is_billed_during_trial,omitempty"`
	StripeTaxCodeID     string          `json:"StripeTaxCodeId,omitempty"     yaml:"stripe_tax_code_id,omitempty"`
	PlanAddOns          []PlanAddOn     `json:"PlanAddOns,omitempty"          yaml:"plan_add_ons,omitempty"`
	ContentGroups       []string        `json:"ContentGroups,omitempty"       yaml:"content_groups,omitempty"`
	SubscriptionCount   *int            `json:"SubscriptionCount,omitempty"   yaml:"subscription_count,omitempty"`
	Quantity            *int            `json:"Quantity,omitempty"            yaml:"quantity,omitempty"`
	ActivityEventData   json.RawMessage `json:"ActivityEventData,omitempty"   yaml:"-"`
}

// PlanAddOn links an add-on to a plan.
type PlanAddOn struct {
	Entity `yaml:",inline"`

	Plan              *Plan           `json:"Plan,omitempty"              yaml:"plan,omitempty"`
	AddOn             *AddOn          `json:"AddOn,omitempty"             yaml:"add_on,omitempty"`
	IsUserSelectable  *bool           `json:"IsUserSelectable,omitempty"  yaml:"is_user_selectable,omitempty"`
	ActivityEventData json.RawMessage `json:"ActivityEventData,omitempty" yaml:"-"`
}

// Subscription is an account's subscription to a plan.
type Subscription struct {
	Entity `yaml:",inline"`

	BillingRenewalTerm         *BillingRenewalTerm `json:"BillingRenewalTerm,omitempty"         yaml:"billing_renewal_term,omitempty"`
	Account                    *Account            `json:"Account,omitempty"                    yaml:"account,omitempty"`
	Plan                       *Plan               `json:"Plan,omitempty"                       yaml:"plan,omitempty"`
	Quantity                   *int                `json:"Quantity,omitempty"                   yaml:"quantity,omitempty"`
	StartDate                  *Timestamp          `json:"StartDate,omitempty"                  yaml:"start_date,omitempty"`
	EndDate                    *Timestamp          `json:"EndDate,omitempty"                    yaml:"end_date,omitempty"`
	RenewalDate                *Timestamp          `json:"RenewalDate,omitempty"                yaml:"renewal_date,omitempty"`
	NewRequiredQuantity        *int                `json:"NewRequiredQuantity,omitempty"        yaml:"new_required_quantity,omitempty"`
	IsPlanUpgradeRequired      *bool               `json:"IsPlanUpgradeRequired,omitempty"      yaml:"is_plan_upgrade_required,omitempty"`
	PlanUpgradeRequiredMessage string              `json:"PlanUpgradeRequiredMessage,omitempty" yaml:"plan_upgrade_required_message,omitempty"`
	SubscriptionAddOns         []SubscriptionAddOn `json:"SubscriptionAddOns,omitempty"         yaml:"subscription_add_ons,omitempty"`
}

// SubscriptionAddOn is an add-on attached to a subscription.
type SubscriptionAddOn struct {
	Entity `yaml:",inline"`

	BillingRenewalTerm  *BillingRenewalTerm `json:"BillingRenewalTerm,omitempty"  yaml:"billing_renewal_term,omitempty"`
	Subscription        *Subscription       `json:"Subscription,omitempty"        yaml:"subscription,omitempty"`
	AddOn               *AddOn              `json:"AddOn,omitempty"               yaml:"add_on,omitempty"`
	Quantity            *int                `json:"Quantity,omitempty"            yaml:"quantity,omitempty"`
	StartDate           *Timestamp          `json:"StartDate,omitempty"           yaml:"start_date,omitempty"`
	EndDate             *Timestamp          `json:"EndDate,omitempty"             yaml:"end_date,omitempty"`
	RenewalDate         *Timestamp          `json:"RenewalDate,omitempty"         yaml:"renewal_date,omitempty"`
	NewRequiredQuantity *int                `json:"NewRequiredQuantity,omitempty" yaml:"new_required_quantity,omitempty"`
}

// Discount is a discount coupon.
type Discount struct {
	Entity `yaml:",inline"`

	UniqueIdentifier    string            `json:"UniqueIdentifier,omitempty"    yaml:"unique_identifier,omitempty"`
	Name                string            `json:"Name,omitempty"                yaml:"name,omitempty"`
	IsActive            *bool             `json:"IsActive,omitempty"            yaml:"is_active,omitempty"`
	AmountOff           *float64          `json:"AmountOff,omitempty"           yaml:"amount_off,omitempty"`
	PercentOff          *int              `json:"PercentOff,omitempty"          yaml:"percent_off,omitempty"`
	Duration            *DiscountDuration `json:"Duration,omitempty"            yaml:"duration,omitempty"`
	DurationInMonths    *int              `json:"DurationInMonths,omitempty"    yaml:"duration_in_months,omitempty"`
	MaxRedemptions      *int              `json:"MaxRedemptions,omitempty"      yaml:"max_redemptions,omitempty"`
	RedeemBy            *Timestamp        `json:"RedeemBy,omitempty"            yaml:"redeem_by,omitempty"`
	DiscountCouponPlans []Plan            `json:"DiscountCouponPlans,omitempty" yaml:"discount_coupon_plans,omitempty"`
}

// Invoice is a bill issued against a subscription.
type Invoice struct {
	Entity `yaml:",inline"`

	InvoiceDate          *Timestamp           `json:"InvoiceDate,omitempty"          yaml:"invoice_date,omitempty"`
	Number               *int                 `json:"Number,omitempty"               yaml:"number,omitempty"`
	BillingInvoiceStatus *int                 `json:"BillingInvoiceStatus,omitempty" yaml:"billing_invoice_status,omitempty"`
	Subscription         *Subscription        `json:"Subscription,omitempty"         yaml:"subscription,omitempty"`
	Amount               *float64             `json:"Amount,omitempty"               yaml:"amount,omitempty"`
	AmountOutstanding    *float64             `json:"AmountOutstanding,omitempty"    yaml:"amount_outstanding,omitempty"`
	InvoiceLineItems     []InvoiceLineItem    `json:"InvoiceLineItems,omitempty"     yaml:"invoice_line_items,omitempty"`
	IsUserGenerated      *bool                `json:"IsUserGenerated,omitempty"      yaml:"is_user_generated,omitempty"`
	Subtotal             *float64             `json:"Subtotal,omitempty"             yaml:"subtotal,omitempty"`
	Tax                  *float64             `json:"Tax,omitempty"                  yaml:"tax,omitempty"`
	TaxBehaviour         string               `json:"TaxBehaviour,omitempty"         yaml:"tax_behaviour,omitempty"`
	Paid                 *float64             `json:"Paid,omitempty"                 yaml:"paid,omitempty"`
	InvoiceDisplayItems  []InvoiceDisplayItem `json:"InvoiceDisplayItems,omitempty"  yaml:"invoice_display_items,omitempty"`
	Total                *float64             `json:"Total,omitempty"                yaml:"total,omitempty"`
	Balance              *float64             `json:"Balance,omitempty"              yaml:"balance,omitempty"`
}

// InvoiceLineItem is a billed line on an invoice.
type InvoiceLineItem struct {
	Entity `yaml:",inline"`

	StartDate     *Timestamp `json:"StartDate,omitempty"     yaml:"start_date,omitempty"`
	EndDate       *Timestamp `json:"EndDate,omitempty"       yaml:"end_date,omitempty"`
	Description   string     `json:"Description,omitempty"   yaml:"description,omitempty"`
	UnitOfMeasure string     `json:"UnitOfMeasure,omitempty" yaml:"unit_of_measure,omitempty"`
	Quantity      *int       `json:"Quantity,omitempty"      yaml:"quantity,omitempty"`
	Rate          *float64   `json:"Rate,omitempty"          yaml:"rate,omitempty"`
	Amount        *float64   `json:"Amount,omitempty"        yaml:"amount,omitempty"`
	Tax           *float64   `json:"Tax,omitempty"           yaml:"tax,omitempty"`
	Invoice       *Invoice   `json:"Invoice,omitempty"       yaml:"invoice,omitempty"`
}

// InvoiceDisplayItem is a presentation line of an invoice. It has no UID.
type InvoiceDisplayItem struct {
	Date                *Timestamp `json:"Date,omitempty"                yaml:"date,omitempty"`
	StartDate           *Timestamp `json:"StartDate,omitempty"           yaml:"start_date,omitempty"`
	EndDate             *Timestamp `json:"EndDate,omitempty"             yaml:"end_date,omitempty"`
	Type                string     `json:"Type,omitempty"                yaml:"type,omitempty"`
	Description         string     `json:"Description,omitempty"         yaml:"description,omitempty"`
	OriginalDescription string     `json:"OriginalDescription,omitempty" yaml:"original_description,omitempty"`
	Amount              *float64   `json:"Amount,omitempty"              yaml:"amount,omitempty"`
	Tax                 *float64   `json:"Tax,omitempty"                 yaml:"tax,omitempty"`
	Total               *float64   `json:"Total,omitempty"               yaml:"total,omitempty"`
	Quantity            *int       `json:"Quantity,omitempty"            yaml:"quantity,omitempty"`
	Units               string     `json:"Units,omitempty"               yaml:"units,omitempty"`
	QuantityAndUnits    string     `json:"QuantityAndUnits,omitempty"    yaml:"quantity_and_units,omitempty"`
	LineItemType        *int       `json:"LineItemType,omitempty"        yaml:"line_item_type,omitempty"`
	LineItemEntityUID   string     `json:"LineItemEntityUid,omitempty"   yaml:"line_item_entity_uid,omitempty"`
}

// Transaction is a billing ledger entry.
type Transaction struct {
	Entity `yaml:",inline"`

	TransactionDate        *Timestamp              `json:"TransactionDate,omitempty"        yaml:"transaction_date,omitempty"`
	BillingTransactionType *BillingTransactionType `json:"BillingTransactionType,omitempty" yaml:"billing_transaction_type,omitempty"`
	Account                *Account                `json:"Account,omitempty"                yaml:"account,omitempty"`
	Invoice                *Invoice                `json:"Invoice,omitempty"                yaml:"invoice,omitempty"`
	Amount                 *float64                `json:"Amount,omitempty"                 yaml:"amount,omitempty"`
}

// EmailList is a marketing email list.
type EmailList struct {
	Entity `yaml:",inline"`

	Name                           string   `json:"Name,omitempty"                           yaml:"name,omitempty"`
	WelcomeSubject                 string   `json:"WelcomeSubject,omitempty"                 yaml:"welcome_subject,omitempty"`
	WelcomeBody                    string   `json:"WelcomeBody,omitempty"                    yaml:"welcome_body,omitempty"`
	WelcomeFromName                string   `json:"WelcomeFromName,omitempty"                yaml:"welcome_from_name,omitempty"`
	WelcomeFromEmail               string   `json:"WelcomeFromEmail,omitempty"               yaml:"welcome_from_email,omitempty"`
	EmailListPerson                []Person `json:"EmailListPerson,omitempty"                yaml:"email_list_person,omitempty"`
	CountSubscriptionsActive       *int     `json:"CountSubscriptionsActive,omitempty"       yaml:"count_active,omitempty"`
	CountSubscriptionsBounce       *int     `json:"CountSubscriptionsBounce,omitempty"       yaml:"count_bounce,omitempty"`
	CountSubscriptionsSpam         *int     `json:"CountSubscriptionsSpam,omitempty"         yaml:"count_spam,omitempty"`
	CountSubscriptionsUnsubscribed *int     `json:"CountSubscriptionsUnsubscribed,omitempty" yaml:"count_unsubscribed,omitempty"`
}

// MarketingSubscription is a person's subscription to an email list.
type MarketingSubscription struct {
	Entity `yaml:",inline"`

	Person                      *Person    `json:"Person,omitempty"                      yaml:"person,omitempty"`
	EmailList                   *EmailList `json:"EmailList,omitempty"                   yaml:"email_list,omitempty"`
	EmailListSubscriberStatus   *int       `json:"EmailListSubscriberStatus,omitempty"   yaml:"subscriber_status,omitempty"`
	SubscribedDate              *Timestamp `json:"SubscribedDate,omitempty"              yaml:"subscribed_date,omitempty"`
	ConfirmedDate               *Timestamp `json:"ConfirmedDate,omitempty"               yaml:"confirmed_date,omitempty"`
	UnsubscribedDate            *Timestamp `json:"UnsubscribedDate,omitempty"            yaml:"unsubscribed_date,omitempty"`
	CleanedDate                 *Timestamp `json:"CleanedDate,omitempty"                 yaml:"cleaned_date,omitempty"`
	WelcomeEmailDeliverDateTime *Timestamp `json:"WelcomeEmailDeliverDateTime,omitempty" yaml:"welcome_email_delivered,omitempty"`
	WelcomeEmailOpenDateTime    *Timestamp `json:"WelcomeEmailOpenDateTime,omitempty"    yaml:"welcome_email_opened,omitempty"`
	UnsubscribeReason           string     `json:"UnsubscribeReason,omitempty"           yaml:"unsubscribe_reason,omitempty"`
	UnsubscribeReasonOther      string     `json:"UnsubscribeReasonOther,omitempty"      yaml:"unsubscribe_reason_other,omitempty"`
	SendWelcomeEmail            *bool      `json:"SendWelcomeEmail,omitempty"            yaml:"send_welcome_email,omitempty"`
}

// Case is a support ticket.
type Case struct {
	Entity `yaml:",inline"`

	SubmittedDateTime                *Timestamp    `json:"SubmittedDateTime,omitempty"                yaml:"submitted,omitempty"`
	FromPerson                       *Person       `json:"FromPerson,omitempty"                       yaml:"from_person,omitempty"`
	AssignedToPersonClientIdentifier string        `json:"AssignedToPersonClientIdentifier,omitempty" yaml:"assigned_to,omitempty"`
	Subject                          string        `json:"Subject,omitempty"                          yaml:"subject,omitempty"`
	Body                             string        `json:"Body,omitempty"                             yaml:"body,omitempty"`
	UserAgent                        string        `json:"UserAgent,omitempty"                        yaml:"user_agent,omitempty"`
	Status                           *CaseStatus   `json:"Status,omitempty"                           yaml:"status,omitempty"`
	Source                           *CaseSource   `json:"Source,omitempty"                           yaml:"source,omitempty"`
	CaseHistories                    []CaseHistory `json:"CaseHistories,omitempty"                    yaml:"case_histories,omitempty"`
}

// CaseHistory is one entry in a support case thread.
type CaseHistory struct {
	Entity `yaml:",inline"`

	HistoryDateTime *Timestamp `json:"HistoryDateTime,omitempty" yaml:"history_date_time,omitempty"`
	Case            *Case      `json:"Case,omitempty"            yaml:"case,omitempty"`
	AgentName       string     `json:"AgentName,omitempty"       yaml:"agent_name,omitempty"`
	Comment         string     `json:"Comment,omitempty"         yaml:"comment,omitempty"`
	Type            *int       `json:"Type,omitempty"            yaml:"type,omitempty"`
	SeenDateTime    *Timestamp `json:"SeenDateTime,omitempty"    yaml:"seen,omitempty"`
	ClickDateTime   *Timestamp `json:"ClickDateTime,omitempty"   yaml:"clicked,omitempty"`
}

// CaseReply is an agent reply posted to a support case.
type CaseReply struct {
	AgentName string `json:"AgentName,omitempty" yaml:"agent_name,omitempty"`
	Case      *Case  `json:"Case,omitempty"      yaml:"case,omitempty"`
	Comment   string `json:"Comment,omitempty"   yaml:"comment,omitempty"`
}

// AuthToken is returned by the token endpoint.
type AuthToken struct {
	AccessToken string `json:"access_token"         yaml:"access_token"`
	TokenType   string `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty" yaml:"expires_in,omitempty"`
}

// Ptr returns a pointer to v. It is convenient for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
