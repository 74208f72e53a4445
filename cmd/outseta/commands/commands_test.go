package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	return names
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}

	return nil
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{
			name:        "accounts",
			cmd:         NewAccountsCommand(),
			use:         "accounts",
			subcommands: []string{"list", "get", "create", "delete", "cancel", "remove-cancellation", "extend-trial", "add-person", "remove-person"},
		},
		{
			name:        "people",
			cmd:         NewPeopleCommand(),
			use:         "people",
			subcommands: []string{"list", "get", "create", "delete", "set-password"},
		},
		{
			name:        "deals",
			cmd:         NewDealsCommand(),
			use:         "deals",
			subcommands: []string{"list", "get", "create", "delete"},
		},
		{
			name:        "activities",
			cmd:         NewActivitiesCommand(),
			use:         "activities",
			subcommands: []string{"list", "create"},
		},
		{
			name:        "plans",
			cmd:         NewPlansCommand(),
			use:         "plans",
			subcommands: []string{"list", "get"},
		},
		{
			name:        "plan families",
			cmd:         NewPlanFamiliesCommand(),
			use:         "plan-families",
			subcommands: []string{"list", "get"},
		},
		{
			name:        "subscriptions",
			cmd:         NewSubscriptionsCommand(),
			use:         "subscriptions",
			subcommands: []string{"list", "get", "add-discount", "require-upgrade"},
		},
		{
			name:        "addons",
			cmd:         NewAddOnsCommand(),
			use:         "addons",
			subcommands: []string{"list", "get"},
		},
		{
			name:        "invoices",
			cmd:         NewInvoicesCommand(),
			use:         "invoices",
			subcommands: []string{"transactions"},
		},
		{
			name:        "marketing",
			cmd:         NewMarketingCommand(),
			use:         "marketing",
			subcommands: []string{"list", "get", "subscriptions", "subscribe", "unsubscribe"},
		},
		{
			name:        "support",
			cmd:         NewSupportCommand(),
			use:         "support",
			subcommands: []string{"list", "get", "create", "respond", "reply"},
		},
		{
			name:        "profile",
			cmd:         NewProfileCommand(),
			use:         "profile",
			subcommands: []string{"show"},
		},
		{
			name:        "config",
			cmd:         NewConfigCommand(),
			use:         "config",
			subcommands: []string{"show", "set", "unset", "clear"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.use, testCase.cmd.Use)
			assert.NotEmpty(t, testCase.cmd.Short)
			assert.ElementsMatch(t, testCase.subcommands, subcommandNames(testCase.cmd))

			for _, sub := range testCase.cmd.Commands() {
				assert.NotNil(t, sub.RunE, "%s %s should be runnable", testCase.use, sub.Name())
				assert.NotNil(t, sub.Args, "%s %s should validate arguments", testCase.use, sub.Name())
			}
		})
	}
}

func TestListCommandsRegisterPagingFlags(t *testing.T) {
	t.Parallel()

	commands := []*cobra.Command{
		findSubcommand(NewAccountsCommand(), "list"),
		findSubcommand(NewPeopleCommand(), "list"),
		findSubcommand(NewActivitiesCommand(), "list"),
		findSubcommand(NewInvoicesCommand(), "transactions"),
		findSubcommand(NewMarketingCommand(), "subscriptions"),
	}

	for _, cmd := range commands {
		require.NotNil(t, cmd)

		for _, flag := range []string{"page", "page-size", "all", "order-by", "desc", "filter"} {
			assert.NotNil(t, cmd.Flags().Lookup(flag), "%s should have --%s", cmd.Name(), flag)
		}
	}

	pageSize := findSubcommand(NewPlansCommand(), "list").Flags().Lookup("page-size")
	require.NotNil(t, pageSize)
	assert.Equal(t, "25", pageSize.DefValue)
	assert.Equal(t, "f", findSubcommand(NewDealsCommand(), "list").Flags().Lookup("filter").Shorthand)
}

func TestEndpointFilterFlags(t *testing.T) {
	t.Parallel()

	accounts := findSubcommand(NewAccountsCommand(), "list")
	require.NotNil(t, accounts)
	assert.NotNil(t, accounts.Flags().Lookup("stage"))

	activities := findSubcommand(NewActivitiesCommand(), "list")
	require.NotNil(t, activities)
	assert.NotNil(t, activities.Flags().Lookup("entity-type"))
	assert.NotNil(t, activities.Flags().Lookup("type"))

	transactions := findSubcommand(NewInvoicesCommand(), "transactions")
	require.NotNil(t, transactions)
	assert.Equal(t, "transactions ACCOUNT_ID", transactions.Use)
	assert.NotNil(t, transactions.Flags().Lookup("type"))
}

func TestCommandArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     *cobra.Command
		args    []string
		wantErr bool
	}{
		{name: "get needs an id", cmd: findSubcommand(NewAccountsCommand(), "get"), args: nil, wantErr: true},
		{name: "get takes one id", cmd: findSubcommand(NewAccountsCommand(), "get"), args: []string{"acc-1"}},
		{name: "list takes no args", cmd: findSubcommand(NewPeopleCommand(), "list"), args: []string{"extra"}, wantErr: true},
		{name: "extend trial takes account and date", cmd: findSubcommand(NewAccountsCommand(), "extend-trial"), args: []string{"acc-1", "2024-07-04"}},
		{name: "extend trial needs a date", cmd: findSubcommand(NewAccountsCommand(), "extend-trial"), args: []string{"acc-1"}, wantErr: true},
		{name: "add discount takes two ids", cmd: findSubcommand(NewSubscriptionsCommand(), "add-discount"), args: []string{"sub-1", "disc-1"}},
		{name: "config set takes key and value", cmd: findSubcommand(NewConfigCommand(), "set"), args: []string{"base-url"}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.NotNil(t, testCase.cmd)

			err := testCase.cmd.Args(testCase.cmd, testCase.args)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)
	assert.Equal(t, "u", cmd.Flags().Lookup("username").Shorthand)
	assert.Equal(t, "p", cmd.Flags().Lookup("password").Shorthand)

	logout := NewLogoutCommand()
	assert.Equal(t, "logout", logout.Use)
	assert.NotNil(t, logout.RunE)
}

func TestNewStatsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewStatsCommand()
	assert.Equal(t, "stats", cmd.Use)

	flag := cmd.Flags().Lookup("concurrency")
	require.NotNil(t, flag)
	assert.Equal(t, "4", flag.DefValue)
}
