package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var planColumns = []column[outseta.Plan]{
	{Header: "UID", Value: func(p outseta.Plan) string { return p.UID }},
	{Header: "Name", Value: func(p outseta.Plan) string { return orNA(p.Name) }},
	{Header: "Monthly", Value: func(p outseta.Plan) string { return formatFloat(p.MonthlyRate) }},
	{Header: "Annual", Value: func(p outseta.Plan) string { return formatFloat(p.AnnualRate) }},
	{Header: "Active", Value: func(p outseta.Plan) string { return formatBool(p.IsActive) }},
}

var planFamilyColumns = []column[outseta.PlanFamily]{
	{Header: "UID", Value: func(f outseta.PlanFamily) string { return f.UID }},
	{Header: "Name", Value: func(f outseta.PlanFamily) string { return orNA(f.Name) }},
	{Header: "Plans", Value: func(f outseta.PlanFamily) string { return strconv.Itoa(len(f.Plans)) }},
	{Header: "Default", Value: func(f outseta.PlanFamily) string { return formatBool(f.IsDefault) }},
	{Header: "Active", Value: func(f outseta.PlanFamily) string { return formatBool(f.IsActive) }},
}

var subscriptionColumns = []column[outseta.Subscription]{
	{Header: "UID", Value: func(s outseta.Subscription) string { return s.UID }},
	{Header: "Plan", Value: func(s outseta.Subscription) string { return planName(s.Plan) }},
	{Header: "Term", Value: func(s outseta.Subscription) string { return enumValue(s.BillingRenewalTerm) }},
	{Header: "Start", Value: func(s outseta.Subscription) string { return formatTimestamp(s.StartDate) }},
	{Header: "Renewal", Value: func(s outseta.Subscription) string { return formatTimestamp(s.RenewalDate) }},
}

var addOnColumns = []column[outseta.AddOn]{
	{Header: "UID", Value: func(a outseta.AddOn) string { return a.UID }},
	{Header: "Name", Value: func(a outseta.AddOn) string { return orNA(a.Name) }},
	{Header: "Unit", Value: func(a outseta.AddOn) string { return orNA(a.UnitOfMeasure) }},
	{Header: "Monthly", Value: func(a outseta.AddOn) string { return formatFloat(a.MonthlyRate) }},
	{Header: "Annual", Value: func(a outseta.AddOn) string { return formatFloat(a.AnnualRate) }},
}

var transactionColumns = []column[outseta.Transaction]{
	{Header: "UID", Value: func(t outseta.Transaction) string { return t.UID }},
	{Header: "Date", Value: func(t outseta.Transaction) string { return formatTimestamp(t.TransactionDate) }},
	{Header: "Type", Value: func(t outseta.Transaction) string { return enumValue(t.BillingTransactionType) }},
	{Header: "Amount", Value: func(t outseta.Transaction) string { return formatFloat(t.Amount) }},
}

var transactionTypes = []outseta.BillingTransactionType{
	outseta.BillingTransactionTypeInvoice,
	outseta.BillingTransactionTypePayment,
	outseta.BillingTransactionTypeCredit,
	outseta.BillingTransactionTypeRefund,
	outseta.BillingTransactionTypeChargeback,
}

func planName(plan *outseta.Plan) string {
	if plan == nil {
		return constants.NotAvailable
	}

	if plan.Name != "" {
		return plan.Name
	}

	return orNA(plan.UID)
}

func billingClient() (outseta.BillingClients, error) {
	return CreateClient()
}

func planRows(plan *outseta.Plan) [][]string {
	rows := entityRows(plan.Entity)

	return append(rows,
		[]string{"Name", orNA(plan.Name)},
		[]string{"Description", orNA(plan.Description)},
		[]string{"Monthly Rate", formatFloat(plan.MonthlyRate)},
		[]string{"Quarterly Rate", formatFloat(plan.QuarterlyRate)},
		[]string{"Annual Rate", formatFloat(plan.AnnualRate)},
		[]string{"One-time Rate", formatFloat(plan.OneTimeRate)},
		[]string{"Setup Fee", formatFloat(plan.SetupFee)},
		[]string{"Trial Days", formatInt(plan.TrialPeriodDays)},
		[]string{"Per User", formatBool(plan.IsPerUser)},
		[]string{"Active", formatBool(plan.IsActive)},
		[]string{"Add-ons", strconv.Itoa(len(plan.PlanAddOns))},
	)
}

func planFamilyRows(family *outseta.PlanFamily) [][]string {
	rows := entityRows(family.Entity)
	rows = append(rows,
		[]string{"Name", orNA(family.Name)},
		[]string{"Default", formatBool(family.IsDefault)},
		[]string{"Active", formatBool(family.IsActive)},
	)

	for _, plan := range family.Plans {
		rows = append(rows, []string{"Plan", planName(&plan)})
	}

	return rows
}

func subscriptionRows(subscription *outseta.Subscription) [][]string {
	account := constants.NotAvailable
	if subscription.Account != nil {
		account = orNA(subscription.Account.UID)
	}

	rows := entityRows(subscription.Entity)

	return append(rows,
		[]string{"Account", account},
		[]string{"Plan", planName(subscription.Plan)},
		[]string{"Term", enumValue(subscription.BillingRenewalTerm)},
		[]string{"Quantity", formatInt(subscription.Quantity)},
		[]string{"Start", formatTimestamp(subscription.StartDate)},
		[]string{"End", formatTimestamp(subscription.EndDate)},
		[]string{"Renewal", formatTimestamp(subscription.RenewalDate)},
		[]string{"Upgrade Required", formatBool(subscription.IsPlanUpgradeRequired)},
		[]string{"Add-ons", strconv.Itoa(len(subscription.SubscriptionAddOns))},
	)
}

func addOnRows(addOn *outseta.AddOn) [][]string {
	rows := entityRows(addOn.Entity)

	return append(rows,
		[]string{"Name", orNA(addOn.Name)},
		[]string{"Unit", orNA(addOn.UnitOfMeasure)},
		[]string{"Monthly Rate", formatFloat(addOn.MonthlyRate)},
		[]string{"Annual Rate", formatFloat(addOn.AnnualRate)},
		[]string{"Setup Fee", formatFloat(addOn.SetupFee)},
		[]string{"Quantity Editable", formatBool(addOn.IsQuantityEditable)},
		[]string{"Billed During Trial", formatBool(addOn.IsBilledDuringTrial)},
	)
}

// NewPlansCommand creates the plans command group.
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "Manage plans",
		Long:    "List and inspect billing plans",
	}

	cmd.AddCommand(newListCommand("List plans", func() (listFunc[outseta.Plan], error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.Plans().List, nil
	}, planColumns))
	cmd.AddCommand(newGetCommand("get PLAN_ID", "Get plan details", func() (func(context.Context, string) (*outseta.Plan, error), error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.Plans().Get, nil
	}, planRows))

	return cmd
}

// NewPlanFamiliesCommand creates the plan-families command group.
func NewPlanFamiliesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan-families",
		Aliases: []string{"plan-family"},
		Short:   "Manage plan families",
		Long:    "List and inspect billing plan families",
	}

	cmd.AddCommand(newListCommand("List plan families", func() (listFunc[outseta.PlanFamily], error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.PlanFamilies().List, nil
	}, planFamilyColumns))
	cmd.AddCommand(newGetCommand("get FAMILY_ID", "Get plan family details", func() (func(context.Context, string) (*outseta.PlanFamily, error), error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.PlanFamilies().Get, nil
	}, planFamilyRows))

	return cmd
}

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "List and manage account subscriptions",
	}

	cmd.AddCommand(newListCommand("List subscriptions", func() (listFunc[outseta.Subscription], error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.Subscriptions().List, nil
	}, subscriptionColumns))
	cmd.AddCommand(newGetCommand("get SUBSCRIPTION_ID", "Get subscription details", func() (func(context.Context, string) (*outseta.Subscription, error), error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.Subscriptions().Get, nil
	}, subscriptionRows))
	cmd.AddCommand(newSubscriptionsAddDiscountCommand())
	cmd.AddCommand(newSubscriptionsUpgradeRequiredCommand())

	return cmd
}

func newSubscriptionsAddDiscountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-discount SUBSCRIPTION_ID DISCOUNT_ID",
		Short: "Apply a discount coupon to a subscription",
		Args:  cobra.ExactArgs(2), //nolint:mnd // subscription and discount
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := billingClient()
			if err != nil {
				return err
			}

			err = client.Subscriptions().AddDiscount(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add discount %s: %w", args[1], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied discount %s to subscription %s\n", args[1], args[0])

			return nil
		},
	}
}

func newSubscriptionsUpgradeRequiredCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "require-upgrade SUBSCRIPTION_ID",
		Short: "Flag a subscription as requiring a plan upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := billingClient()
			if err != nil {
				return err
			}

			updated, err := client.Subscriptions().SetUpgradeRequired(cmd.Context(), args[0], &outseta.Subscription{
				IsPlanUpgradeRequired:      outseta.Ptr(true),
				PlanUpgradeRequiredMessage: message,
			})
			if err != nil {
				return fmt.Errorf("failed to update subscription %s: %w", args[0], err)
			}

			return renderDetails(cmd.OutOrStdout(), updated, subscriptionRows)
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "message shown to the account")

	return cmd
}

// NewAddOnsCommand creates the addons command group.
func NewAddOnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addons",
		Aliases: []string{"addon", "add-ons"},
		Short:   "Manage add-ons",
		Long:    "List and inspect billing add-ons",
	}

	cmd.AddCommand(newListCommand("List add-ons", func() (listFunc[outseta.AddOn], error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.AddOns().List, nil
	}, addOnColumns))
	cmd.AddCommand(newGetCommand("get ADDON_ID", "Get add-on details", func() (func(context.Context, string) (*outseta.AddOn, error), error) {
		client, err := billingClient()
		if err != nil {
			return nil, err
		}

		return client.AddOns().Get, nil
	}, addOnRows))

	return cmd
}

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Inspect invoices and transactions",
	}

	cmd.AddCommand(newInvoicesTransactionsCommand())

	return cmd
}

func newInvoicesTransactionsCommand() *cobra.Command {
	flags := &listFlags{}

	var transactionType string

	cmd := &cobra.Command{
		Use:   "transactions ACCOUNT_ID",
		Short: "List billing transactions of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra func(*outseta.PageRequestBuilder)

			if transactionType != "" {
				kind, err := parseEnum("type", transactionType, transactionTypes...)
				if err != nil {
					return err
				}

				extra = func(builder *outseta.PageRequestBuilder) {
					builder.TransactionType(kind)
				}
			}

			client, err := billingClient()
			if err != nil {
				return err
			}

			list := func(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Transaction], error) {
				return client.Invoices().ListTransactions(ctx, args[0], page)
			}

			return runList(cmd, flags, list, transactionColumns, extra)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&transactionType, "type", "", "filter by transaction type (invoice, payment, credit, refund, chargeback)")

	return cmd
}
