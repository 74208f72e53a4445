package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var emailListColumns = []column[outseta.EmailList]{
	{Header: "UID", Value: func(l outseta.EmailList) string { return l.UID }},
	{Header: "Name", Value: func(l outseta.EmailList) string { return orNA(l.Name) }},
	{Header: "Active", Value: func(l outseta.EmailList) string { return formatInt(l.CountSubscriptionsActive) }},
	{Header: "Unsubscribed", Value: func(l outseta.EmailList) string { return formatInt(l.CountSubscriptionsUnsubscribed) }},
}

var marketingSubscriptionColumns = []column[outseta.MarketingSubscription]{
	{Header: "UID", Value: func(s outseta.MarketingSubscription) string { return s.UID }},
	{Header: "Email", Value: func(s outseta.MarketingSubscription) string { return subscriberEmail(s.Person) }},
	{Header: "Subscribed", Value: func(s outseta.MarketingSubscription) string { return formatTimestamp(s.SubscribedDate) }},
	{Header: "Unsubscribed", Value: func(s outseta.MarketingSubscription) string { return formatTimestamp(s.UnsubscribedDate) }},
}

func subscriberEmail(person *outseta.Person) string {
	if person == nil {
		return constants.NotAvailable
	}

	return orNA(person.Email)
}

func emailListRows(list *outseta.EmailList) [][]string {
	rows := entityRows(list.Entity)

	return append(rows,
		[]string{"Name", orNA(list.Name)},
		[]string{"Welcome Subject", orNA(list.WelcomeSubject)},
		[]string{"Welcome From", orNA(list.WelcomeFromEmail)},
		[]string{"Active", formatInt(list.CountSubscriptionsActive)},
		[]string{"Bounced", formatInt(list.CountSubscriptionsBounce)},
		[]string{"Spam", formatInt(list.CountSubscriptionsSpam)},
		[]string{"Unsubscribed", formatInt(list.CountSubscriptionsUnsubscribed)},
	)
}

func marketingClient() (outseta.MarketingClient, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	return client.Marketing(), nil
}

// NewMarketingCommand creates the marketing command group.
func NewMarketingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketing",
		Short: "Manage email lists",
		Long:  "Inspect email lists and manage their subscriptions",
	}

	cmd.AddCommand(newListCommand("List email lists", func() (listFunc[outseta.EmailList], error) {
		marketing, err := marketingClient()
		if err != nil {
			return nil, err
		}

		return marketing.Lists, nil
	}, emailListColumns))
	cmd.AddCommand(newGetCommand("get LIST_ID", "Get email list details", func() (func(context.Context, string) (*outseta.EmailList, error), error) {
		marketing, err := marketingClient()
		if err != nil {
			return nil, err
		}

		return marketing.GetList, nil
	}, emailListRows))
	cmd.AddCommand(newMarketingSubscriptionsCommand())
	cmd.AddCommand(newMarketingSubscribeCommand())
	cmd.AddCommand(newMarketingUnsubscribeCommand())

	return cmd
}

func newMarketingSubscriptionsCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "subscriptions LIST_ID",
		Short: "List the subscriptions of an email list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marketing, err := marketingClient()
			if err != nil {
				return err
			}

			list := func(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.MarketingSubscription], error) {
				return marketing.Subscriptions(ctx, args[0], page)
			}

			return runList(cmd, flags, list, marketingSubscriptionColumns, nil)
		},
	}

	flags.register(cmd)

	return cmd
}

func newMarketingSubscribeCommand() *cobra.Command {
	var (
		email   string
		welcome bool
	)

	cmd := &cobra.Command{
		Use:   "subscribe LIST_ID",
		Short: "Subscribe a person to an email list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return constants.ErrEmailRequired
			}

			marketing, err := marketingClient()
			if err != nil {
				return err
			}

			subscription, err := marketing.Subscribe(cmd.Context(), args[0], &outseta.MarketingSubscription{
				EmailList:        &outseta.EmailList{Entity: outseta.Entity{UID: args[0]}},
				Person:           &outseta.Person{Email: email},
				SendWelcomeEmail: outseta.Ptr(welcome),
			})
			if err != nil {
				return fmt.Errorf("failed to subscribe %s: %w", email, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Subscribed %s to list %s (%s)\n", email, args[0], orNA(subscription.UID))

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "subscriber email (required)")
	cmd.Flags().BoolVar(&welcome, "send-welcome", false, "send the list welcome email")

	return cmd
}

func newMarketingUnsubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe LIST_ID SUBSCRIPTION_ID",
		Short: "Remove a subscription from an email list",
		Args:  cobra.ExactArgs(2), //nolint:mnd // list and subscription
		RunE: func(cmd *cobra.Command, args []string) error {
			marketing, err := marketingClient()
			if err != nil {
				return err
			}

			err = marketing.Unsubscribe(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to unsubscribe %s: %w", args[1], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed subscription %s from list %s\n", args[1], args[0])

			return nil
		},
	}
}
