package outseta

import "strconv"

// AccountStage is the lifecycle stage of an account.
type AccountStage int

// Account stages.
const (
	AccountStageTrialing     AccountStage = 2
	AccountStageSubscribing  AccountStage = 3
	AccountStageCancelling   AccountStage = 4
	AccountStageExpired      AccountStage = 5
	AccountStageTrialExpired AccountStage = 6
	AccountStagePastDue      AccountStage = 7
)

var accountStageNames = map[AccountStage]string{
	AccountStageTrialing:     "Trialing",
	AccountStageSubscribing:  "Subscribing",
	AccountStageCancelling:   "Cancelling",
	AccountStageExpired:      "Expired",
	AccountStageTrialExpired: "TrialExpired",
	AccountStagePastDue:      "PastDue",
}

func (s AccountStage) String() string {
	return enumName(accountStageNames, s)
}

// ActivityType identifies what happened in an activity record.
type ActivityType int

// Activity types.
const (
	ActivityTypeCustom                           ActivityType = 10
	ActivityTypeNote                             ActivityType = 50
	ActivityTypeEmail                            ActivityType = 51
	ActivityTypePhoneCall                        ActivityType = 52
	ActivityTypeMeeting                          ActivityType = 53
	ActivityTypeAccountCreated                   ActivityType = 100
	ActivityTypeAccountUpdated                   ActivityType = 101
	ActivityTypeAccountAddPerson                 ActivityType = 102
	ActivityTypeAccountStageUpdated              ActivityType = 103
	ActivityTypeAccountDeleted                   ActivityType = 104
	ActivityTypeAccountBillingInformationUpdated ActivityType = 105
	ActivityTypePersonCreated                    ActivityType = 200
	ActivityTypePersonUpdated                    ActivityType = 201
	ActivityTypePersonDeleted                    ActivityType = 202
	ActivityTypePersonLogin                      ActivityType = 203
	ActivityTypePersonListSubscribed             ActivityType = 204
	ActivityTypePersonListUnsubscribed           ActivityType = 205
	ActivityTypePersonSegmentAdded               ActivityType = 206
	ActivityTypePersonSegmentRemoved             ActivityType = 207
	ActivityTypePersonEmailOpened                ActivityType = 208
	ActivityTypePersonEmailClicked               ActivityType = 209
	ActivityTypePersonEmailBounce                ActivityType = 210
	ActivityTypePersonEmailSpam                  ActivityType = 211
	ActivityTypePersonSupportTicketCreated       ActivityType = 212
	ActivityTypePersonSupportTicketUpdated       ActivityType = 213
	ActivityTypeDealCreated                      ActivityType = 300
	ActivityTypeDealUpdated                      ActivityType = 301
	ActivityTypeDealAddPerson                    ActivityType = 302
	ActivityTypeDealAddAccount                   ActivityType = 303
)

var activityTypeNames = map[ActivityType]string{
	ActivityTypeCustom:                           "Custom",
	ActivityTypeNote:                             "Note",
	ActivityTypeEmail:                            "Email",
	ActivityTypePhoneCall:                        "PhoneCall",
	ActivityTypeMeeting:                          "Meeting",
	ActivityTypeAccountCreated:                   "AccountCreated",
	ActivityTypeAccountUpdated:                   "AccountUpdated",
	ActivityTypeAccountAddPerson:                 "AccountAddPerson",
	ActivityTypeAccountStageUpdated:              "AccountStageUpdated",
	ActivityTypeAccountDeleted:                   "AccountDeleted",
	ActivityTypeAccountBillingInformationUpdated: "AccountBillingInformationUpdated",
	ActivityTypePersonCreated:                    "PersonCreated",
	ActivityTypePersonUpdated:                    "PersonUpdated",
	ActivityTypePersonDeleted:                    "PersonDeleted",
	ActivityTypePersonLogin:                      "PersonLogin",
	ActivityTypePersonListSubscribed:             "PersonListSubscribed",
	ActivityTypePersonListUnsubscribed:           "PersonListUnsubscribed",
	ActivityTypePersonSegmentAdded:               "PersonSegmentAdded",
	ActivityTypePersonSegmentRemoved:             "PersonSegmentRemoved",
	ActivityTypePersonEmailOpened:                "PersonEmailOpened",
	ActivityTypePersonEmailClicked:               "PersonEmailClicked",
	ActivityTypePersonEmailBounce:                "PersonEmailBounce",
	ActivityTypePersonEmailSpam:                  "PersonEmailSpam",
	ActivityTypePersonSupportTicketCreated:       "PersonSupportTicketCreated",
	ActivityTypePersonSupportTicketUpdated:       "PersonSupportTicketUpdated",
	ActivityTypeDealCreated:                      "DealCreated",
	ActivityTypeDealUpdated:                      "DealUpdated",
	ActivityTypeDealAddPerson:                    "DealAddPerson",
	ActivityTypeDealAddAccount:                   "DealAddAccount",
}

func (t ActivityType) String() string {
	return enumName(activityTypeNames, t)
}

// BillingRenewalTerm is how often a subscription renews.
type BillingRenewalTerm int

// Billing renewal terms.
const (
	BillingRenewalTermMonthly   BillingRenewalTerm = 1
	BillingRenewalTermYearly    BillingRenewalTerm = 2
	BillingRenewalTermQuarterly BillingRenewalTerm = 3
	BillingRenewalTermOneTime   BillingRenewalTerm = 4
)

var billingRenewalTermNames = map[BillingRenewalTerm]string{
	BillingRenewalTermMonthly:   "Monthly",
	BillingRenewalTermYearly:    "Yearly",
	BillingRenewalTermQuarterly: "Quarterly",
	BillingRenewalTermOneTime:   "OneTime",
}

func (t BillingRenewalTerm) String() string {
	return enumName(billingRenewalTermNames, t)
}

// BillingTransactionType classifies a billing transaction.
type BillingTransactionType int

// Billing transaction types.
const (
	BillingTransactionTypeInvoice    BillingTransactionType = 1
	BillingTransactionTypePayment    BillingTransactionType = 2
	BillingTransactionTypeCredit     BillingTransactionType = 3
	BillingTransactionTypeRefund     BillingTransactionType = 4
	BillingTransactionTypeChargeback BillingTransactionType = 5
)

var billingTransactionTypeNames = map[BillingTransactionType]string{
	BillingTransactionTypeInvoice:    "Invoice",
	BillingTransactionTypePayment:    "Payment",
	BillingTransactionTypeCredit:     "Credit",
	BillingTransactionTypeRefund:     "Refund",
	BillingTransactionTypeChargeback: "Chargeback",
}

func (t BillingTransactionType) String() string {
	return enumName(billingTransactionTypeNames, t)
}

// CaseSource is the channel a support case arrived through.
type CaseSource int

// Case sources.
const (
	CaseSourceWebsite  CaseSource = 1
	CaseSourceEmail    CaseSource = 2
	CaseSourceFacebook CaseSource = 3
	CaseSourceTwitter  CaseSource = 4
)

var caseSourceNames = map[CaseSource]string{
	CaseSourceWebsite:  "Website",
	CaseSourceEmail:    "Email",
	CaseSourceFacebook: "Facebook",
	CaseSourceTwitter:  "Twitter",
}

func (s CaseSource) String() string {
	return enumName(caseSourceNames, s)
}

// CaseStatus is whether a support case is open.
type CaseStatus int

// Case statuses.
const (
	CaseStatusOpen   CaseStatus = 1
	CaseStatusClosed CaseStatus = 2
)

var caseStatusNames = map[CaseStatus]string{
	CaseStatusOpen:   "Open",
	CaseStatusClosed: "Closed",
}

func (s CaseStatus) String() string {
	return enumName(caseStatusNames, s)
}

// DiscountDuration is how long a discount coupon applies.
type DiscountDuration int

// Discount durations.
const (
	DiscountDurationForever   DiscountDuration = 1
	DiscountDurationOnce      DiscountDuration = 2
	DiscountDurationRepeating DiscountDuration = 3
)

var discountDurationNames = map[DiscountDuration]string{
	DiscountDurationForever:   "Forever",
	DiscountDurationOnce:      "Once",
	DiscountDurationRepeating: "Repeating",
}

func (d DiscountDuration) String() string {
	return enumName(discountDurationNames, d)
}

// EntityType is the kind of record an activity refers to.
type EntityType int

// Entity types.
const (
	EntityTypeAccount EntityType = 1
	EntityTypePerson  EntityType = 2
	EntityTypeDeal    EntityType = 3
)

var entityTypeNames = map[EntityType]string{
	EntityTypeAccount: "Account",
	EntityTypePerson:  "Person",
	EntityTypeDeal:    "Deal",
}

func (t EntityType) String() string {
	return enumName(entityTypeNames, t)
}

// Sort is a list ordering direction.
type Sort string

// Sort directions.
const (
	SortAsc  Sort = "ASC"
	SortDesc Sort = "DESC"
)

func enumName[K ~int](names map[K]string, value K) string {
	if name, ok := names[value]; ok {
		return name
	}

	return strconv.Itoa(int(value))
}

// ChargeAsOf selects when a charge summary is computed. The empty value lets
// the server decide.
type ChargeAsOf string

// Charge summary reference points.
const (
	ChargeAsOfNow     ChargeAsOf = "now"
	ChargeAsOfRenewal ChargeAsOf = "renewal"
)
