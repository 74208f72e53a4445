package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var personColumns = []column[outseta.Person]{
	{Header: "UID", Value: func(p outseta.Person) string { return p.UID }},
	{Header: "Email", Value: func(p outseta.Person) string { return orNA(p.Email) }},
	{Header: "Name", Value: func(p outseta.Person) string { return orNA(p.FullName) }},
	{Header: "Last Login", Value: func(p outseta.Person) string { return formatTimestamp(p.LastLoginDateTime) }},
	{Header: "Created", Value: func(p outseta.Person) string { return formatTimestamp(p.Created) }},
}

func peopleClient() (outseta.PeopleClient, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	return client.People(), nil
}

func personRows(person *outseta.Person) [][]string {
	rows := entityRows(person.Entity)

	return append(rows,
		[]string{"Email", orNA(person.Email)},
		[]string{"First Name", orNA(person.FirstName)},
		[]string{"Last Name", orNA(person.LastName)},
		[]string{"Title", orNA(person.Title)},
		[]string{"Phone", orNA(person.PhoneMobile)},
		[]string{"Timezone", orNA(person.Timezone)},
		[]string{"Last Login", formatTimestamp(person.LastLoginDateTime)},
		[]string{"Password Must Change", formatBool(person.PasswordMustChange)},
	)
}

// NewPeopleCommand creates the people command group.
func NewPeopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person"},
		Short:   "Manage people",
		Long:    "List and manage Outseta CRM people",
	}

	cmd.AddCommand(newListCommand("List people", func() (listFunc[outseta.Person], error) {
		people, err := peopleClient()
		if err != nil {
			return nil, err
		}

		return people.List, nil
	}, personColumns))
	cmd.AddCommand(newGetCommand("get PERSON_ID", "Get person details", func() (func(context.Context, string) (*outseta.Person, error), error) {
		people, err := peopleClient()
		if err != nil {
			return nil, err
		}

		return people.Get, nil
	}, personRows))
	cmd.AddCommand(newPeopleCreateCommand())
	cmd.AddCommand(newDeleteCommand("Delete a person", func() (func(context.Context, string) error, error) {
		people, err := peopleClient()
		if err != nil {
			return nil, err
		}

		return people.Delete, nil
	}))
	cmd.AddCommand(newPeopleSetPasswordCommand())

	return cmd
}

func newPeopleCreateCommand() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return constants.ErrEmailRequired
			}

			people, err := peopleClient()
			if err != nil {
				return err
			}

			created, err := people.Create(cmd.Context(), &outseta.Person{
				Email:     email,
				FirstName: firstName,
				LastName:  lastName,
			})
			if err != nil {
				return fmt.Errorf("failed to create person: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), created, personRows)
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")

	return cmd
}

func newPeopleSetPasswordCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password PERSON_ID",
		Short: "Set a temporary password",
		Long:  "Set a one-time password the person must change at next login",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return constants.ErrEmptyPassword
			}

			people, err := peopleClient()
			if err != nil {
				return err
			}

			err = people.SetTemporaryPassword(cmd.Context(), args[0], password)
			if err != nil {
				return fmt.Errorf("failed to set password for %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Temporary password set for %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "temporary password (required)")

	return cmd
}
