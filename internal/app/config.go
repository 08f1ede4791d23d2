package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "MWTRACK"
	configFileEnvName = "MWTRACK_CONFIG_FILE"

	defaultAPIURL        = "https://muitowork.com/api-tracking"
	defaultWebURL        = "https://mwt.one"
	defaultHTTPTimeout   = 15 * time.Second
	defaultPollInterval  = 15 * time.Minute
	defaultCheckInterval = 30 * time.Second
	defaultLogLevel      = "warn"
	defaultExchange      = "tracking_exchange"
)

// AMQPConfig configures the optional notification broker.
type AMQPConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string        `mapstructure:"home"` // state directory, e.g. $HOME/.mwtrack
	APIURL        string        `mapstructure:"api_url"`
	WebURL        string        `mapstructure:"web_url"`
	KeyHash       string        `mapstructure:"key_hash"`
	Passphrase    string        `mapstructure:"passphrase"` // seals the stored session when set
	LogLevel      string        `mapstructure:"log_level"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	CheckInterval time.Duration `mapstructure:"check_interval"`
	SystemTheme   string        `mapstructure:"system_theme"`
	Locale        string        `mapstructure:"locale"`
	AMQP          AMQPConfig    `mapstructure:"amqp"`

	HTTP *http.Client `mapstructure:"-"` // optional; built from HTTPTimeout when nil
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"home":       "home",
	"api-url":    "api_url",
	"key-hash":   "key_hash",
	"passphrase": "passphrase",
	"log-level":  "log_level",
	"locale":     "locale",
	"amqp-url":   "amqp.url",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML config file (env "+configFileEnvName+")")
	fs.String("home", "", "state directory (default ~/.mwtrack)")
	fs.String("api-url", defaultAPIURL, "storefront API base URL")
	fs.String("key-hash", "", "application key sent with every request")
	fs.StringP("passphrase", "p", "", "passphrase sealing the stored session")
	fs.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	fs.String("locale", "", "device locale used for the first language choice")
	fs.String("amqp-url", "", "AMQP broker URL for tracking notifications")
}

// LoadConfig resolves the configuration from defaults, the optional config
// file, MWTRACK_* environment variables and the flags set on fs, in
// increasing order of precedence.
func LoadConfig(fs *pflag.FlagSet) (Config, error) {
	const op = "app.LoadConfig"

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("%s: %w", op, err)
				}
			}
		}
	}

	if path := configFilepath(fs); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: read %s: %w", op, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	home := ""
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".mwtrack")
	}
	v.SetDefault("home", home)
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("web_url", defaultWebURL)
	v.SetDefault("key_hash", "")
	v.SetDefault("passphrase", "")
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("http_timeout", defaultHTTPTimeout)
	v.SetDefault("poll_interval", defaultPollInterval)
	v.SetDefault("check_interval", defaultCheckInterval)
	v.SetDefault("system_theme", "light")
	v.SetDefault("locale", deviceLocale())
	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.exchange", defaultExchange)
}

func configFilepath(fs *pflag.FlagSet) string {
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	return os.Getenv(configFileEnvName)
}

// deviceLocale reads the POSIX locale variables in their usual precedence.
func deviceLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func (c Config) validate() error {
	var errs []error
	if c.Home == "" {
		errs = append(errs, errors.New("home directory is not set"))
	}
	if c.APIURL == "" {
		errs = append(errs, errors.New("api_url is empty"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("http_timeout must be positive"))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, errors.New("poll_interval must be positive"))
	}
	if c.CheckInterval <= 0 {
		errs = append(errs, errors.New("check_interval must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
