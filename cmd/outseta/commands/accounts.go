package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var accountColumns = []column[outseta.Account]{
	{Header: "UID", Value: func(a outseta.Account) string { return a.UID }},
	{Header: "Name", Value: func(a outseta.Account) string { return orNA(a.Name) }},
	{Header: "Stage", Value: func(a outseta.Account) string { return enumValue(a.AccountStage) }},
	{Header: "People", Value: func(a outseta.Account) string { return strconv.Itoa(len(a.PersonAccount)) }},
	{Header: "Created", Value: func(a outseta.Account) string { return formatTimestamp(a.Created) }},
}

var accountStages = []outseta.AccountStage{
	outseta.AccountStageTrialing,
	outseta.AccountStageSubscribing,
	outseta.AccountStageCancelling,
	outseta.AccountStageExpired,
	outseta.AccountStageTrialExpired,
	outseta.AccountStagePastDue,
}

func accountsClient() (outseta.AccountsClient, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	return client.Accounts(), nil
}

func accountRows(account *outseta.Account) [][]string {
	rows := entityRows(account.Entity)
	rows = append(rows,
		[]string{"Name", orNA(account.Name)},
		[]string{"Client Identifier", orNA(account.ClientIdentifier)},
		[]string{"Stage", enumValue(account.AccountStage)},
		[]string{"People", strconv.Itoa(len(account.PersonAccount))},
		[]string{"Subscriptions", strconv.Itoa(len(account.Subscriptions))},
	)

	for _, membership := range account.PersonAccount {
		if membership.Person != nil {
			rows = append(rows, []string{"Member", orNA(membership.Person.Email)})
		}
	}

	return rows
}

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage accounts",
		Long:    "List and manage Outseta CRM accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newGetCommand("get ACCOUNT_ID", "Get account details", func() (func(context.Context, string) (*outseta.Account, error), error) {
		accounts, err := accountsClient()
		if err != nil {
			return nil, err
		}

		return accounts.Get, nil
	}, accountRows))
	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newDeleteCommand("Delete an account", func() (func(context.Context, string) error, error) {
		accounts, err := accountsClient()
		if err != nil {
			return nil, err
		}

		return accounts.Delete, nil
	}))
	cmd.AddCommand(newAccountsCancelCommand())
	cmd.AddCommand(newAccountsRemoveCancellationCommand())
	cmd.AddCommand(newAccountsExtendTrialCommand())
	cmd.AddCommand(newAccountsAddPersonCommand())
	cmd.AddCommand(newAccountsRemovePersonCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	flags := &listFlags{}

	var stage string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "List accounts, optionally restricted to one account stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var extra func(*outseta.PageRequestBuilder)

			if stage != "" {
				accountStage, err := parseEnum("stage", stage, accountStages...)
				if err != nil {
					return err
				}

				extra = func(builder *outseta.PageRequestBuilder) {
					builder.AccountStage(accountStage)
				}
			}

			accounts, err := accountsClient()
			if err != nil {
				return err
			}

			return runList(cmd, flags, accounts.List, accountColumns, extra)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&stage, "stage", "", "filter by account stage (trialing, subscribing, cancelling, expired, trial-expired, past-due)")

	return cmd
}

func newAccountsCreateCommand() *cobra.Command {
	var (
		name     string
		clientID string
		register bool
		confirm  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long:  "Create an account, or register it to also start its subscription flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return constants.ErrNameRequired
			}

			accounts, err := accountsClient()
			if err != nil {
				return err
			}

			account := &outseta.Account{Name: name, ClientIdentifier: clientID}

			var created *outseta.Account
			if register {
				created, err = accounts.Register(cmd.Context(), account, confirm)
			} else {
				created, err = accounts.Create(cmd.Context(), account)
			}

			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), created, accountRows)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "account name (required)")
	cmd.Flags().StringVar(&clientID, "client-identifier", "", "external identifier for the account")
	cmd.Flags().BoolVar(&register, "register", false, "use the registration endpoint")
	cmd.Flags().BoolVar(&confirm, "send-confirmation", true, "send a confirmation email when registering")

	return cmd
}

func newAccountsCancelCommand() *cobra.Command {
	var (
		reason  string
		comment string
	)

	cmd := &cobra.Command{
		Use:   "cancel ACCOUNT_ID",
		Short: "Cancel an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := accountsClient()
			if err != nil {
				return err
			}

			err = accounts.Cancel(cmd.Context(), args[0], &outseta.CancelAccountRequest{
				CancellationReason: reason,
				Comment:            comment,
				Account:            &outseta.Account{Entity: outseta.Entity{UID: args[0]}},
			})
			if err != nil {
				return fmt.Errorf("failed to cancel account %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cancelled account %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form comment")

	return cmd
}

func newAccountsRemoveCancellationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-cancellation ACCOUNT_ID",
		Short: "Undo a pending account cancellation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := accountsClient()
			if err != nil {
				return err
			}

			err = accounts.RemoveCancellation(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove cancellation for %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed cancellation for account %s\n", args[0])

			return nil
		},
	}
}

func newAccountsExtendTrialCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extend-trial ACCOUNT_ID YYYY-MM-DD",
		Short: "Extend the trial of an account",
		Args:  cobra.ExactArgs(2), //nolint:mnd // account and date
		RunE: func(cmd *cobra.Command, args []string) error {
			until, err := time.Parse(dateFormat, args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Subscriptions().ExtendTrial(cmd.Context(), args[0], until)
			if err != nil {
				return fmt.Errorf("failed to extend trial for %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Extended trial for account %s until %s\n", args[0], until.Format(dateFormat))

			return nil
		},
	}
}

func newAccountsAddPersonCommand() *cobra.Command {
	var (
		personID string
		email    string
		primary  bool
		welcome  bool
	)

	cmd := &cobra.Command{
		Use:   "add-person ACCOUNT_ID",
		Short: "Add a person to an account",
		Long:  "Add an existing person (--person) or a new person (--email) to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if personID == "" && email == "" {
				return constants.ErrEmailRequired
			}

			accounts, err := accountsClient()
			if err != nil {
				return err
			}

			membership := &outseta.PersonAccount{
				Person:    &outseta.Person{Entity: outseta.Entity{UID: personID}, Email: email},
				IsPrimary: outseta.Ptr(primary),
			}

			var sendWelcome *bool
			if personID == "" {
				sendWelcome = outseta.Ptr(welcome)
			}

			added, err := accounts.AddPerson(cmd.Context(), args[0], membership, sendWelcome)
			if err != nil {
				return fmt.Errorf("failed to add person to %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added membership %s to account %s\n", orNA(added.UID), args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&personID, "person", "", "UID of an existing person")
	cmd.Flags().StringVar(&email, "email", "", "email of a new person")
	cmd.Flags().BoolVar(&primary, "primary", false, "make the person the primary contact")
	cmd.Flags().BoolVar(&welcome, "send-welcome", false, "send a welcome email to a new person")

	return cmd
}

func newAccountsRemovePersonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-person ACCOUNT_ID MEMBERSHIP_ID",
		Short: "Remove a membership from an account",
		Args:  cobra.ExactArgs(2), //nolint:mnd // account and membership
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := accountsClient()
			if err != nil {
				return err
			}

			err = accounts.RemoveMembership(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to remove membership %s: %w", args[1], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed membership %s from account %s\n", args[1], args[0])

			return nil
		},
	}
}
