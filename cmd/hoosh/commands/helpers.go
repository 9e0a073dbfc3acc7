// Package commands implements the hoosh CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hooshpro/hoosh-client-go/internal/constants"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/hooshpro/hoosh-client-go/pkg/hooshclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrNoEndpointConfigured = errors.New("no API endpoint configured (use --api or 'hoosh config set api <url>')")
	ErrNotLoggedIn          = errors.New("not logged in (use 'hoosh login')")
	ErrEmailRequired        = errors.New("email is required")
	ErrTitleRequired        = errors.New("title is required (--title)")
	ErrSlugRequired         = errors.New("slug is required (--slug)")
	ErrNameRequired         = errors.New("name is required (--name)")
	ErrTypeRequired         = errors.New("type is required (--type)")
	ErrFileRequired         = errors.New("file is required (--file)")
	ErrNothingToUpdate      = errors.New("nothing to update: no flags set")
)

// stderrLogger writes structured log lines to stderr, used with --verbose.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

// newClientConfig builds the base client config, wiring request/response
// logging to stderr when --verbose is set.
func newClientConfig(endpoint string) *hoosh.Config {
	config := &hoosh.Config{Endpoint: endpoint}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	return config
}

// createClient builds a CMS client from the current configuration:
// a static token wins, then a persisted login session, else unauthenticated.
func createClient() (hoosh.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrNoEndpointConfigured
	}

	config := newClientConfig(endpoint)

	if token := viper.GetString("token"); token != "" {
		config.AccessToken = token
	} else if session := viper.GetString("session_token"); session != "" {
		config.SessionToken = session
		config.CSRFToken = viper.GetString("csrf_token")
	}

	return hooshclient.New(config)
}

// createAuthenticatedClient is createClient plus a local credentials check,
// for commands that are pointless without a session or token.
func createAuthenticatedClient() (hoosh.Client, error) {
	if viper.GetString("token") == "" && viper.GetString("session_token") == "" {
		return nil, ErrNotLoggedIn
	}

	return createClient()
}

// configFilePath resolves the config file to write credentials into.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".hoosh")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// persistedConfig is the on-disk shape of ~/.hoosh/config.yml.
type persistedConfig struct {
	API          string `yaml:"api,omitempty"`
	Output       string `yaml:"output,omitempty"`
	SessionToken string `yaml:"session_token,omitempty"`
	CSRFToken    string `yaml:"csrf_token,omitempty"`
}

// saveConfig writes the current viper state back to the config file. The
// session cookie is a credential, so the file is written 0600.
func saveConfig() error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	cfg := persistedConfig{
		API:          viper.GetString("api"),
		Output:       viper.GetString("output"),
		SessionToken: viper.GetString("session_token"),
		CSRFToken:    viper.GetString("csrf_token"),
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// encodeYAML writes v to stdout as YAML.
func encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// formatTimestamp renders a timestamp for table output, blank when zero.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(constants.TimestampFormat)
}

// strValue dereferences an optional string for table output.
func strValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// strPtr returns a pointer for optional request fields.
func strPtr(s string) *string {
	return &s
}
