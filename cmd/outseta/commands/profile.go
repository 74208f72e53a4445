package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCommand creates the profile command group. Profile commands act
// on the person the stored access key belongs to.
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the logged in person",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile of the logged in person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := CreateProfileClient()
			if err != nil {
				return err
			}

			person, err := profile.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), person, personRows)
		},
	})

	return cmd
}
