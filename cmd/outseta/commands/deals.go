package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var dealColumns = []column[outseta.Deal]{
	{Header: "UID", Value: func(d outseta.Deal) string { return d.UID }},
	{Header: "Name", Value: func(d outseta.Deal) string { return orNA(d.Name) }},
	{Header: "Amount", Value: func(d outseta.Deal) string { return formatFloat(d.Amount) }},
	{Header: "Assigned To", Value: func(d outseta.Deal) string { return orNA(d.AssignedToPersonClientIdentifier) }},
	{Header: "Created", Value: func(d outseta.Deal) string { return formatTimestamp(d.Created) }},
}

func dealsClient() (outseta.DealsClient, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	return client.Deals(), nil
}

func dealRows(deal *outseta.Deal) [][]string {
	stage := constants.NotAvailable
	if deal.DealPipelineStage != nil {
		stage = orNA(deal.DealPipelineStage.UID)
	}

	rows := entityRows(deal.Entity)

	return append(rows,
		[]string{"Name", orNA(deal.Name)},
		[]string{"Amount", formatFloat(deal.Amount)},
		[]string{"Pipeline Stage", stage},
		[]string{"Assigned To", orNA(deal.AssignedToPersonClientIdentifier)},
		[]string{"People", strconv.Itoa(len(deal.DealPeople))},
	)
}

// NewDealsCommand creates the deals command group.
func NewDealsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deals",
		Aliases: []string{"deal"},
		Short:   "Manage deals",
		Long:    "List and manage Outseta CRM deals",
	}

	cmd.AddCommand(newListCommand("List deals", func() (listFunc[outseta.Deal], error) {
		deals, err := dealsClient()
		if err != nil {
			return nil, err
		}

		return deals.List, nil
	}, dealColumns))
	cmd.AddCommand(newGetCommand("get DEAL_ID", "Get deal details", func() (func(context.Context, string) (*outseta.Deal, error), error) {
		deals, err := dealsClient()
		if err != nil {
			return nil, err
		}

		return deals.Get, nil
	}, dealRows))
	cmd.AddCommand(newDealsCreateCommand())
	cmd.AddCommand(newDeleteCommand("Delete a deal", func() (func(context.Context, string) error, error) {
		deals, err := dealsClient()
		if err != nil {
			return nil, err
		}

		return deals.Delete, nil
	}))

	return cmd
}

func newDealsCreateCommand() *cobra.Command {
	var (
		name   string
		amount float64
		stage  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a deal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return constants.ErrNameRequired
			}

			deals, err := dealsClient()
			if err != nil {
				return err
			}

			deal := &outseta.Deal{Name: name}
			if cmd.Flags().Changed("amount") {
				deal.Amount = outseta.Ptr(amount)
			}

			if stage != "" {
				deal.DealPipelineStage = &outseta.DealPipelineStage{Entity: outseta.Entity{UID: stage}}
			}

			created, err := deals.Create(cmd.Context(), deal)
			if err != nil {
				return fmt.Errorf("failed to create deal: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), created, dealRows)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "deal name (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "deal amount")
	cmd.Flags().StringVar(&stage, "stage", "", "UID of the pipeline stage")

	return cmd
}
