//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	BaseURL     string
	APIKey      string
	Username    string
	Password    string
	OutsetaPath string
	AllowWrites bool
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:     os.Getenv("OUTSETA_BASE_URL"),
		APIKey:      os.Getenv("OUTSETA_API_KEY"),
		Username:    os.Getenv("OUTSETA_TEST_USERNAME"),
		Password:    os.Getenv("OUTSETA_TEST_PASSWORD"),
		OutsetaPath: getOutsetaPath(),
		AllowWrites: os.Getenv("OUTSETA_TEST_WRITES") == "true",
		Verbose:     os.Getenv("OUTSETA_VERBOSE") == "true",
	}
}

// getOutsetaPath determines the path to the outseta binary.
func getOutsetaPath() string {
	if path := os.Getenv("OUTSETA_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../outseta", "./outseta", "../outseta"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "outseta"
}

// SkipIfMissingConfig skips the test if required config is missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.BaseURL == "" || config.APIKey == "" {
		t.Skip("OUTSETA_BASE_URL or OUTSETA_API_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.OutsetaPath); err != nil {
		t.Skipf("outseta binary not found at %s, skipping integration test", config.OutsetaPath)
	}
}

// SkipUnlessWritesAllowed skips tests that create or delete records.
func (config *TestConfig) SkipUnlessWritesAllowed(t *testing.T) {
	t.Helper()

	if !config.AllowWrites {
		t.Skip("OUTSETA_TEST_WRITES not set to true, skipping test that modifies data")
	}
}

// CommandRunner runs the outseta binary against an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes an outseta command and returns its output.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes an outseta command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (string, string, error) {
	fullArgs := append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.OutsetaPath, fullArgs...)
	cmd.Env = append(os.Environ(),
		"OUTSETA_BASE_URL="+runner.config.BaseURL,
		"OUTSETA_API_KEY="+runner.config.APIKey,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.OutsetaPath, strings.Join(args, " "))
	}

	err := cmd.Run()
	stdout := stdoutBuf.String()
	stderr := stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupResource attempts to delete a test record.
func (runner *CommandRunner) CleanupResource(resourceType, uid string) {
	if uid == "" {
		return
	}

	stdout, stderr, err := runner.Run(resourceType, "delete", uid)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, uid, stdout, stderr)
	}
}

// DecodeJSON decodes command output produced with --output json.
func DecodeJSON[T any](t *testing.T, output string) T {
	t.Helper()

	var value T

	err := json.Unmarshal([]byte(strings.TrimSpace(output)), &value)
	if err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}

	return value
}

// AssertYAMLOutput verifies command output looks like YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if output == "[]" || strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
