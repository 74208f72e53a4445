package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/outseta-client/internal/auth"
	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Outseta",
		Long:  "Exchange a username and password for an access key and store it in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				_, _ = io.WriteString(cmd.ErrOrStderr(), "Username: ")

				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read username: %w", err)
				}

				username = strings.TrimSpace(line)
			}

			if username == "" {
				return constants.ErrUsernameRequired
			}

			if password == "" {
				value, err := readPassword(cmd, reader)
				if err != nil {
					return err
				}

				password = value
			}

			if password == "" {
				return constants.ErrEmptyPassword
			}

			client, err := CreateAPIKeyClient()
			if err != nil {
				return err
			}

			session := auth.NewSession(client.Auth(), newConfigFilePersister())

			token, err := session.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}

			currentLogger().Info("stored access key", map[string]interface{}{"username": username})
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)

			if expiresAt := auth.ExpiresAt(time.Now(), token); !expiresAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Access key expires %s\n", expiresAt.Local().Format(time.RFC1123))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (email address)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Outseta",
		Long:  "Remove the stored access key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := readConfigFile(configPath())
			if err != nil {
				return err
			}

			config.AccessKey = ""
			config.AccessKeyExpires = ""

			err = writeConfigFile(configPath(), config)
			if err != nil {
				return err
			}

			_, _ = io.WriteString(cmd.OutOrStdout(), "Logged out\n")

			return nil
		},
	}
}

// readPassword reads without echo from a terminal, or a line otherwise.
func readPassword(cmd *cobra.Command, reader *bufio.Reader) (string, error) {
	_, _ = io.WriteString(cmd.ErrOrStderr(), "Password: ")

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		bytePassword, err := term.ReadPassword(int(file.Fd()))

		_, _ = io.WriteString(cmd.ErrOrStderr(), "\n")

		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return string(bytePassword), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
