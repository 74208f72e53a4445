package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfigFile points viper at a fresh config file and resets viper afterwards.
func useConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), constants.ConfigDirName, "config.yml")
	viper.SetConfigFile(path)
	t.Cleanup(viper.Reset)

	return path
}

func TestReadConfigFileMissing(t *testing.T) {
	t.Parallel()

	config, err := readConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)
}

func TestReadConfigFileInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0o600))

	_, err := readConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	config := &Config{BaseURL: "https://demo.outseta.com/api/v1", APIKey: "key:secret", Output: "json"}

	require.NoError(t, writeConfigFile(path, config))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: https://demo.outseta.com/api/v1")
	assert.NotContains(t, string(data), "access_key")

	loaded, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "base_url", normalizeKey("base-url"))
	assert.Equal(t, "api_key", normalizeKey(" API_KEY "))
	assert.True(t, isSecretKey("access_key"))
	assert.False(t, isSecretKey("output"))
}

func TestConfigSetAndUnset(t *testing.T) { //nolint:paralleltest // mutates viper state
	path := useConfigFile(t)

	var out bytes.Buffer

	set := newConfigSetCommand()
	set.SetOut(&out)
	set.SetArgs([]string{"api-key", "abcdefgh:secret"})
	require.NoError(t, set.Execute())
	assert.Equal(t, "Set api_key = abcd***\n", out.String())

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh:secret", config.APIKey)

	out.Reset()

	unset := newConfigUnsetCommand()
	unset.SetOut(&out)
	unset.SetArgs([]string{"api_key"})
	require.NoError(t, unset.Execute())
	assert.Equal(t, "Unset api_key\n", out.String())

	config, err = readConfigFile(path)
	require.NoError(t, err)
	assert.Empty(t, config.APIKey)
}

func TestConfigSetUnknownKey(t *testing.T) { //nolint:paralleltest // mutates viper state
	useConfigFile(t)

	set := newConfigSetCommand()
	set.SetOut(&bytes.Buffer{})
	set.SetErr(&bytes.Buffer{})
	set.SetArgs([]string{"colour", "blue"})

	err := set.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrUnknownConfig)
}

func TestConfigClear(t *testing.T) { //nolint:paralleltest // mutates viper state
	path := useConfigFile(t)
	require.NoError(t, writeConfigFile(path, &Config{BaseURL: "https://x", AccessKey: "token"}))

	clearCmd := newConfigClearCommand()
	clearCmd.SetOut(&bytes.Buffer{})
	clearCmd.SetArgs([]string{})
	require.NoError(t, clearCmd.Execute())

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)
}

func TestConfigShowMasksSecrets(t *testing.T) { //nolint:paralleltest // mutates viper state
	useConfigFile(t)
	viper.Set("base_url", "https://demo.outseta.com/api/v1")
	viper.Set("api_key", "abcdefgh:secret")
	viper.Set("output", "json")

	var out bytes.Buffer

	show := newConfigShowCommand()
	show.SetOut(&out)
	show.SetArgs([]string{})
	require.NoError(t, show.Execute())

	assert.JSONEq(t, `{"base_url":"https://demo.outseta.com/api/v1","api_key":"abcd***","output":"json"}`, out.String())
}

func TestLogoutClearsAccessKey(t *testing.T) { //nolint:paralleltest // mutates viper state
	path := useConfigFile(t)
	require.NoError(t, writeConfigFile(path, &Config{BaseURL: "https://x", AccessKey: "token", Username: "jane@example.com"}))

	logout := NewLogoutCommand()
	logout.SetOut(&bytes.Buffer{})
	logout.SetArgs([]string{})
	require.NoError(t, logout.Execute())

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Empty(t, config.AccessKey)
	assert.Equal(t, "jane@example.com", config.Username)
}

func TestConfigFilePersister(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, writeConfigFile(path, &Config{BaseURL: "https://x", APIKey: "key:secret"}))

	persister := &configFilePersister{path: path}
	expiresAt := time.Date(2024, time.July, 4, 13, 0, 0, 0, time.UTC)

	require.NoError(t, persister.UpdateAccessKey("jane@example.com", "jwt", expiresAt))

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://x", config.BaseURL)
	assert.Equal(t, "key:secret", config.APIKey)
	assert.Equal(t, "jwt", config.AccessKey)
	assert.Equal(t, "jane@example.com", config.Username)
	assert.Equal(t, "2024-07-04T13:00:00Z", config.AccessKeyExpires)
	assert.True(t, config.accessKeyExpiry().Equal(expiresAt))

	require.NoError(t, persister.UpdateAccessKey("jane@example.com", "jwt2", time.Time{}))

	config, err = readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jwt2", config.AccessKey)
	assert.Empty(t, config.AccessKeyExpires)
	assert.True(t, config.accessKeyExpiry().IsZero())
}

func TestAccessKeyExpiryMalformed(t *testing.T) {
	t.Parallel()

	config := &Config{AccessKeyExpires: "tomorrow"}
	assert.True(t, config.accessKeyExpiry().IsZero())
}
