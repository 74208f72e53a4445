package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	BaseURL          string `json:"base_url,omitempty"           yaml:"base_url,omitempty"`
	APIKey           string `json:"api_key,omitempty"            yaml:"api_key,omitempty"`
	AccessKey        string `json:"access_key,omitempty"         yaml:"access_key,omitempty"`
	AccessKeyExpires string `json:"access_key_expires,omitempty" yaml:"access_key_expires,omitempty"`
	Username         string `json:"username,omitempty"           yaml:"username,omitempty"`
	RequestMaker     string `json:"request_maker,omitempty"      yaml:"request_maker,omitempty"`
	Output           string `json:"output,omitempty"             yaml:"output,omitempty"`
	LogLevel         string `json:"log_level,omitempty"          yaml:"log_level,omitempty"`
	LogFormat        string `json:"log_format,omitempty"         yaml:"log_format,omitempty"`
}

// configFields maps every settable key to its field.
func configFields(config *Config) map[string]*string {
	return map[string]*string{
		"base_url":           &config.BaseURL,
		"api_key":            &config.APIKey,
		"access_key":         &config.AccessKey,
		"access_key_expires": &config.AccessKeyExpires,
		"username":           &config.Username,
		"request_maker":      &config.RequestMaker,
		"output":             &config.Output,
		"log_level":          &config.LogLevel,
		"log_format":         &config.LogFormat,
	}
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

func isSecretKey(key string) bool {
	return key == "api_key" || key == "access_key"
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.outseta/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration, with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := loadConfig()
			if !showSecrets {
				config.APIKey = maskSecret(config.APIKey)
				config.AccessKey = maskSecret(config.AccessKey)
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			switch format {
			case constants.FormatJSON:
				return StandardJSONRenderer(cmd.OutOrStdout(), config)
			case constants.FormatYAML:
				return StandardYAMLRenderer(cmd.OutOrStdout(), config)
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print API and access keys in full")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: base-url, api-key, access-key, username, request-maker, output, log-level, log-format",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key := normalizeKey(args[0])

			config, err := readConfigFile(configPath())
			if err != nil {
				return err
			}

			field, ok := configFields(config)[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfig, args[0])
			}

			*field = args[1]

			err = writeConfigFile(configPath(), config)
			if err != nil {
				return err
			}

			value := args[1]
			if isSecretKey(key) {
				value = maskSecret(value)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := normalizeKey(args[0])

			config, err := readConfigFile(configPath())
			if err != nil {
				return err
			}

			field, ok := configFields(config)[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfig, args[0])
			}

			*field = ""

			err = writeConfigFile(configPath(), config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all configuration",
		Long:  "Remove every value from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := writeConfigFile(configPath(), &Config{})
			if err != nil {
				return err
			}

			_, _ = io.WriteString(cmd.OutOrStdout(), "Configuration cleared\n")

			return nil
		},
	}
}

// loadConfig resolves the effective configuration from flags, environment
// and the config file through viper.
func loadConfig() *Config {
	return &Config{
		BaseURL:          viper.GetString("base_url"),
		APIKey:           viper.GetString("api_key"),
		AccessKey:        viper.GetString("access_key"),
		AccessKeyExpires: viper.GetString("access_key_expires"),
		Username:         viper.GetString("username"),
		RequestMaker:     viper.GetString("request_maker"),
		Output:           viper.GetString("output"),
		LogLevel:         viper.GetString("log_level"),
		LogFormat:        viper.GetString("log_format"),
	}
}

// configPath returns the config file in use, or the default location.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType)
}

// readConfigFile reads only what is stored in path. A missing file is an
// empty configuration.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// writeConfigFile stores config at path with owner-only permissions.
func writeConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// configFilePersister implements auth.ConfigPersister on top of the config file.
type configFilePersister struct {
	mutex sync.Mutex
	path  string
}

func newConfigFilePersister() *configFilePersister {
	return &configFilePersister{path: configPath()}
}

// UpdateAccessKey stores the access key, its expiry and the username.
func (p *configFilePersister) UpdateAccessKey(username, accessKey string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config, err := readConfigFile(p.path)
	if err != nil {
		return err
	}

	config.Username = username
	config.AccessKey = accessKey
	config.AccessKeyExpires = ""

	if !expiresAt.IsZero() {
		config.AccessKeyExpires = expiresAt.UTC().Format(time.RFC3339)
	}

	return writeConfigFile(p.path, config)
}

// accessKeyExpiry parses the stored expiry. Unknown or malformed values
// yield the zero time.
func (c *Config) accessKeyExpiry() time.Time {
	if c.AccessKeyExpires == "" {
		return time.Time{}
	}

	expiresAt, err := time.Parse(time.RFC3339, c.AccessKeyExpires)
	if err != nil {
		return time.Time{}
	}

	return expiresAt
}

// maskSecret keeps the first few characters of a secret.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.SecretVisibleChars {
		return constants.MaskedSecret
	}

	return secret[:constants.SecretVisibleChars] + constants.MaskedSecret
}

func displayConfigTable(out io.Writer, config *Config) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	fields := configFields(config)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		value := *fields[key]
		if value == "" {
			value = constants.None
		}

		_ = table.Append([]string{key, value})
	}

	_, _ = fmt.Fprintf(out, "Config file: %s\n", configPath())

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
