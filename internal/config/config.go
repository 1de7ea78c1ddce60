package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name in the user's home directory, without extension
const FileName = ".kioskctl"

// EnvPrefix prefixes every environment override, e.g. KIOSKCTL_SERVER_URL
const EnvPrefix = "KIOSKCTL"

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Auth      AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Format    FormatConfig    `yaml:"format" mapstructure:"format"`
	Notify    NotifyConfig    `yaml:"notify" mapstructure:"notify"`
	Mock      MockConfig      `yaml:"mock" mapstructure:"mock"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ServerConfig contains API connection settings
type ServerConfig struct {
	URL     string `yaml:"url" mapstructure:"url"`
	Timeout string `yaml:"timeout" mapstructure:"timeout"`
}

// AuthConfig contains the current session
type AuthConfig struct {
	Email        string `yaml:"email" mapstructure:"email"`
	SessionToken string `yaml:"session_token" mapstructure:"session_token"`
	TenantID     string `yaml:"tenant_id" mapstructure:"tenant_id"`
}

// FormatConfig contains output formatting settings
type FormatConfig struct {
	Default    string `yaml:"default" mapstructure:"default"`
	Colors     bool   `yaml:"colors" mapstructure:"colors"`
	Timestamps bool   `yaml:"timestamps" mapstructure:"timestamps"`
	PageSize   int    `yaml:"page_size" mapstructure:"page_size"`
	ExportDir  string `yaml:"export_dir" mapstructure:"export_dir"`
}

// NotifyConfig contains toast settings
type NotifyConfig struct {
	ToastTTL string `yaml:"toast_ttl" mapstructure:"toast_ttl"`
}

// MockConfig contains the local mock backend settings
type MockConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// TelemetryConfig contains tracing settings
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure" mapstructure:"insecure"`
}

var (
	globalConfig *Config
	debug        bool
	outputFormat string
	tenant       string
)

// Initialize loads the configuration from file, .env and environment
func Initialize(configFile string) error {
	// A missing .env is normal; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(FileName)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}
		path, err := createDefaultConfig()
		if err != nil {
			return fmt.Errorf("could not create default config: %w", err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	return load()
}

func load() error {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}
	globalConfig = cfg
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	for key, value := range Defaults() {
		viper.SetDefault(key, value)
	}
}

// Defaults returns every known key with its default value
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.url":              "http://localhost:8080",
		"server.timeout":          "30s",
		"auth.email":              "",
		"auth.session_token":      "",
		"auth.tenant_id":          "",
		"format.default":          "table",
		"format.colors":           true,
		"format.timestamps":       true,
		"format.page_size":        10,
		"format.export_dir":       ".",
		"notify.toast_ttl":        "5s",
		"mock.addr":               ":8080",
		"telemetry.otlp_endpoint": "",
		"telemetry.insecure":      false,
	}
}

// Keys lists every known configuration key, sorted
func Keys() []string {
	keys := make([]string, 0, len(Defaults()))
	for k := range Defaults() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:     "http://localhost:8080",
			Timeout: "30s",
		},
		Auth: AuthConfig{},
		Format: FormatConfig{
			Default:    "table",
			Colors:     true,
			Timestamps: true,
			PageSize:   10,
			ExportDir:  ".",
		},
		Notify: NotifyConfig{ToastTTL: "5s"},
		Mock:   MockConfig{Addr: ":8080"},
	}
}

// createDefaultConfig writes a default configuration file and returns its path
func createDefaultConfig() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(home, FileName+".yaml")

	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return "", err
	}

	return configPath, os.WriteFile(configPath, data, 0600)
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg := defaultConfig()
		globalConfig = &cfg
	}
	return globalConfig
}

// Set stores a single key and persists the config file
func Set(key string, value interface{}) error {
	if _, ok := Defaults()[key]; !ok {
		return fmt.Errorf("unknown configuration key %q", key)
	}
	viper.Set(key, value)
	if err := load(); err != nil {
		return err
	}
	return viper.WriteConfig()
}

// Lookup returns the effective value of a key
func Lookup(key string) (interface{}, error) {
	if _, ok := Defaults()[key]; !ok {
		return nil, fmt.Errorf("unknown configuration key %q", key)
	}
	return viper.Get(key), nil
}

// FileUsed returns the path of the loaded config file
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// SetDebug sets the debug mode
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug
}

// SetOutputFormat sets the output format
func SetOutputFormat(format string) {
	outputFormat = format
}

// GetOutputFormat returns the current output format
func GetOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	if globalConfig != nil && globalConfig.Format.Default != "" {
		return globalConfig.Format.Default
	}
	return "table"
}

// SetTenant overrides the tenant for this invocation
func SetTenant(id string) {
	tenant = id
}

// TenantID returns the tenant requests are scoped to
func TenantID() string {
	if tenant != "" {
		return tenant
	}
	return Get().Auth.TenantID
}

// ServerTimeout parses server.timeout, falling back to 30s
func (c *Config) ServerTimeout() time.Duration {
	return parseDuration(c.Server.Timeout, 30*time.Second)
}

// ToastTTL parses notify.toast_ttl, falling back to 5s
func (c *Config) ToastTTL() time.Duration {
	return parseDuration(c.Notify.ToastTTL, 5*time.Second)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// UpdateAuth stores a new session and persists it
func UpdateAuth(email, sessionToken, tenantID string) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	viper.Set("auth.email", email)
	viper.Set("auth.session_token", sessionToken)
	viper.Set("auth.tenant_id", tenantID)

	globalConfig.Auth.Email = email
	globalConfig.Auth.SessionToken = sessionToken
	globalConfig.Auth.TenantID = tenantID

	return viper.WriteConfig()
}

// ClearAuth clears the session and persists the change
func ClearAuth() error {
	return UpdateAuth("", "", "")
}
