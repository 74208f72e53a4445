package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var caseColumns = []column[outseta.Case]{
	{Header: "UID", Value: func(c outseta.Case) string { return c.UID }},
	{Header: "Subject", Value: func(c outseta.Case) string { return orNA(c.Subject) }},
	{Header: "From", Value: func(c outseta.Case) string { return subscriberEmail(c.FromPerson) }},
	{Header: "Status", Value: func(c outseta.Case) string { return enumValue(c.Status) }},
	{Header: "Submitted", Value: func(c outseta.Case) string { return formatTimestamp(c.SubmittedDateTime) }},
}

func caseRows(supportCase *outseta.Case) [][]string {
	rows := entityRows(supportCase.Entity)

	return append(rows,
		[]string{"Subject", orNA(supportCase.Subject)},
		[]string{"From", subscriberEmail(supportCase.FromPerson)},
		[]string{"Assigned To", orNA(supportCase.AssignedToPersonClientIdentifier)},
		[]string{"Status", enumValue(supportCase.Status)},
		[]string{"Source", enumValue(supportCase.Source)},
		[]string{"Submitted", formatTimestamp(supportCase.SubmittedDateTime)},
		[]string{"History", strconv.Itoa(len(supportCase.CaseHistories))},
	)
}

func supportClient() (outseta.SupportClient, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	return client.Support(), nil
}

// NewSupportCommand creates the support command group.
func NewSupportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "support",
		Aliases: []string{"cases"},
		Short:   "Manage support cases",
		Long:    "List, open and reply to support cases",
	}

	cmd.AddCommand(newListCommand("List support cases", func() (listFunc[outseta.Case], error) {
		support, err := supportClient()
		if err != nil {
			return nil, err
		}

		return support.List, nil
	}, caseColumns))
	cmd.AddCommand(newGetCommand("get CASE_ID", "Get support case details", func() (func(context.Context, string) (*outseta.Case, error), error) {
		support, err := supportClient()
		if err != nil {
			return nil, err
		}

		return support.Get, nil
	}, caseRows))
	cmd.AddCommand(newSupportCreateCommand())
	cmd.AddCommand(newSupportRespondCommand())
	cmd.AddCommand(newSupportReplyCommand())

	return cmd
}

func newSupportCreateCommand() *cobra.Command {
	var (
		subject       string
		body          string
		email         string
		autoResponder bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a support case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subject == "" {
				return constants.ErrSubjectRequired
			}

			if email == "" {
				return constants.ErrEmailRequired
			}

			support, err := supportClient()
			if err != nil {
				return err
			}

			created, err := support.Create(cmd.Context(), &outseta.Case{
				Subject:    subject,
				Body:       body,
				FromPerson: &outseta.Person{Email: email},
			}, autoResponder)
			if err != nil {
				return fmt.Errorf("failed to create support case: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), created, caseRows)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "case subject (required)")
	cmd.Flags().StringVar(&body, "body", "", "case body")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email of the person opening the case (required)")
	cmd.Flags().BoolVar(&autoResponder, "auto-responder", false, "send the auto responder email")

	return cmd
}

func newSupportRespondCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "respond CASE_ID COMMENT",
		Short: "Add a client response to a case",
		Args:  cobra.ExactArgs(2), //nolint:mnd // case and comment
		RunE: func(cmd *cobra.Command, args []string) error {
			support, err := supportClient()
			if err != nil {
				return err
			}

			err = support.AddClientResponse(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to respond to case %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added response to case %s\n", args[0])

			return nil
		},
	}
}

func newSupportReplyCommand() *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:   "reply CASE_ID COMMENT",
		Short: "Post an agent reply to a case",
		Args:  cobra.ExactArgs(2), //nolint:mnd // case and comment
		RunE: func(cmd *cobra.Command, args []string) error {
			support, err := supportClient()
			if err != nil {
				return err
			}

			updated, err := support.AddReply(cmd.Context(), args[0], &outseta.CaseReply{
				AgentName: agent,
				Comment:   args[1],
				Case:      &outseta.Case{Entity: outseta.Entity{UID: args[0]}},
			})
			if err != nil {
				return fmt.Errorf("failed to reply to case %s: %w", args[0], err)
			}

			return renderDetails(cmd.OutOrStdout(), updated, caseRows)
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "agent name shown on the reply")

	return cmd
}
