package commands

import (
	"fmt"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/cobra"
)

var activityColumns = []column[outseta.Activity]{
	{Header: "UID", Value: func(a outseta.Activity) string { return a.UID }},
	{Header: "Date", Value: func(a outseta.Activity) string { return formatTimestamp(a.ActivityDateTime) }},
	{Header: "Type", Value: func(a outseta.Activity) string { return enumLabel(a.ActivityType) }},
	{Header: "Entity", Value: func(a outseta.Activity) string { return enumLabel(a.EntityType) }},
	{Header: "Title", Value: func(a outseta.Activity) string { return orNA(a.Title) }},
}

var entityTypes = []outseta.EntityType{
	outseta.EntityTypeAccount,
	outseta.EntityTypePerson,
	outseta.EntityTypeDeal,
}

var activityTypes = []outseta.ActivityType{
	outseta.ActivityTypeCustom,
	outseta.ActivityTypeNote,
	outseta.ActivityTypeEmail,
	outseta.ActivityTypePhoneCall,
	outseta.ActivityTypeMeeting,
	outseta.ActivityTypeAccountCreated,
	outseta.ActivityTypeAccountUpdated,
	outseta.ActivityTypeAccountAddPerson,
	outseta.ActivityTypeAccountStageUpdated,
	outseta.ActivityTypeAccountDeleted,
	outseta.ActivityTypeAccountBillingInformationUpdated,
	outseta.ActivityTypePersonCreated,
	outseta.ActivityTypePersonUpdated,
	outseta.ActivityTypePersonDeleted,
	outseta.ActivityTypePersonLogin,
	outseta.ActivityTypePersonListSubscribed,
	outseta.ActivityTypePersonListUnsubscribed,
	outseta.ActivityTypePersonSegmentAdded,
	outseta.ActivityTypePersonSegmentRemoved,
	outseta.ActivityTypePersonEmailOpened,
	outseta.ActivityTypePersonEmailClicked,
	outseta.ActivityTypePersonEmailBounce,
	outseta.ActivityTypePersonEmailSpam,
	outseta.ActivityTypePersonSupportTicketCreated,
	outseta.ActivityTypePersonSupportTicketUpdated,
	outseta.ActivityTypeDealCreated,
	outseta.ActivityTypeDealUpdated,
	outseta.ActivityTypeDealAddPerson,
	outseta.ActivityTypeDealAddAccount,
}

func activityRows(activity *outseta.Activity) [][]string {
	rows := entityRows(activity.Entity)

	return append(rows,
		[]string{"Title", orNA(activity.Title)},
		[]string{"Description", orNA(activity.Description)},
		[]string{"Type", enumLabel(activity.ActivityType)},
		[]string{"Entity Type", enumLabel(activity.EntityType)},
		[]string{"Entity", orNA(activity.EntityUID)},
		[]string{"Date", formatTimestamp(activity.ActivityDateTime)},
	)
}

// NewActivitiesCommand creates the activities command group.
func NewActivitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity"},
		Short:   "Manage activities",
		Long:    "List the CRM activity timeline and record custom activities",
	}

	cmd.AddCommand(newActivitiesListCommand())
	cmd.AddCommand(newActivitiesCreateCommand())

	return cmd
}

func newActivitiesListCommand() *cobra.Command {
	flags := &listFlags{}

	var (
		entityType   string
		activityType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				filters []func(*outseta.PageRequestBuilder)
				err     error
			)

			if entityType != "" {
				var kind outseta.EntityType

				kind, err = parseEnum("entity-type", entityType, entityTypes...)
				if err != nil {
					return err
				}

				filters = append(filters, func(builder *outseta.PageRequestBuilder) { builder.ActivityEntityType(kind) })
			}

			if activityType != "" {
				var kind outseta.ActivityType

				kind, err = parseEnum("type", activityType, activityTypes...)
				if err != nil {
					return err
				}

				filters = append(filters, func(builder *outseta.PageRequestBuilder) { builder.ActivityType(kind) })
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runList(cmd, flags, client.Activities().List, activityColumns, func(builder *outseta.PageRequestBuilder) {
				for _, apply := range filters {
					apply(builder)
				}
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&entityType, "entity-type", "", "filter by entity type (account, person, deal)")
	cmd.Flags().StringVar(&activityType, "type", "", "filter by activity type name or number")

	return cmd
}

func newActivitiesCreateCommand() *cobra.Command {
	var (
		title       string
		description string
		entityType  string
		entityUID   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a custom activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" {
				return constants.ErrTitleRequired
			}

			kind, err := parseEnum("entity-type", entityType, entityTypes...)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Activities().CreateCustom(cmd.Context(), &outseta.Activity{
				Title:        title,
				Description:  description,
				ActivityType: outseta.ActivityTypeCustom,
				EntityType:   kind,
				EntityUID:    entityUID,
			})
			if err != nil {
				return fmt.Errorf("failed to create activity: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), created, activityRows)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "activity title (required)")
	cmd.Flags().StringVar(&description, "description", "", "activity description")
	cmd.Flags().StringVar(&entityType, "entity-type", "account", "entity type (account, person, deal)")
	cmd.Flags().StringVar(&entityUID, "entity", "", "UID of the entity the activity belongs to")

	return cmd
}
