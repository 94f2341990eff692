package configuration

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

var (
	ErrMissingDatabaseConfig = errors.New("database configuration is missing: set APP_DB__DSN or APP_DB__HOST, APP_DB__NAME and APP_DB__USERNAME")
	ErrInvalidPort           = errors.New("port must be between 1 and 65535")
)

type AppConfig struct {
	AppName        string
	AppVersion     string
	AppRevision    string
	AppBuiltAt     string
	Env            string
	RestConfig     *RestConfig
	LogConfig      *LogConfig
	DatabaseConfig *DatabaseConfig
}

type RestConfig struct {
	Host string
	Port int
}

// Addr is the listen address handed to the HTTP server.
func (r *RestConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // json | text
}

type DatabaseConfig struct {
	DSN      string
	Name     string
	Host     string
	Port     int
	Username string
	Password string
	SSL      string // disable | require | verify-ca | verify-full
	Addr     string
}

// ConnString returns DSN when set, otherwise a postgresql:// URL built from
// the discrete fields. A nil config yields an empty string.
func (d *DatabaseConfig) ConnString() string {
	if d == nil {
		return ""
	}
	if d.DSN != "" {
		return d.DSN
	}
	ssl := d.SSL
	if ssl == "" {
		ssl = "disable"
	}
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{ssl}}.Encode(),
	}
	return u.String()
}

// CompleteDSN reports whether the settings are enough to log in: an explicit
// DSN, or host, port, name, username and password all set. Otherwise only
// TCP reachability of TCPAddr can be checked.
func (d *DatabaseConfig) CompleteDSN() (string, bool) {
	if d == nil {
		return "", false
	}
	if d.DSN != "" {
		return d.DSN, true
	}
	if d.Host == "" || d.Port == 0 || d.Name == "" || d.Username == "" || d.Password == "" {
		return "", false
	}
	return d.ConnString(), true
}

// TCPAddr is the host:port dialled when only reachability can be checked.
func (d *DatabaseConfig) TCPAddr() string {
	if d == nil {
		return ""
	}
	if d.Addr != "" {
		return d.Addr
	}
	if d.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// Load reads the configuration once from the environment and, when
// APP_CONFIG_FILE is set, from that file. Environment values win.
func Load() (*AppConfig, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*AppConfig, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("APP_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", file, err)
		}
	}

	cfg := &AppConfig{
		AppName:     v.GetString("APP_NAME"),
		AppVersion:  v.GetString("APP_VERSION"),
		AppRevision: v.GetString("APP_REVISION"),
		AppBuiltAt:  v.GetString("APP_BUILT_AT"),
		Env:         v.GetString("APP_ENV"),
		RestConfig: &RestConfig{
			Host: v.GetString("APP_REST_HOST"),
			Port: v.GetInt("APP_REST_PORT"),
		},
		LogConfig: &LogConfig{
			Level:  v.GetString("APP_LOG_LEVEL"),
			Format: v.GetString("APP_LOG_FORMAT"),
		},
		DatabaseConfig: &DatabaseConfig{
			DSN:      v.GetString("APP_DB__DSN"),
			Name:     v.GetString("APP_DB__NAME"),
			Host:     v.GetString("APP_DB__HOST"),
			Port:     v.GetInt("APP_DB__PORT"),
			Username: v.GetString("APP_DB__USERNAME"),
			Password: v.GetString("APP_DB__PASSWORD"),
			SSL:      v.GetString("APP_DB_SSL"),
			Addr:     v.GetString("APP_DB_ADDR"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "kingdom-dashboard")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("APP_REVISION", "unknown")
	v.SetDefault("APP_BUILT_AT", "unknown")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_REST_HOST", "")
	v.SetDefault("APP_REST_PORT", 8080)
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("APP_LOG_FORMAT", "json")
	v.SetDefault("APP_DB__HOST", "localhost")
	v.SetDefault("APP_DB__PORT", 5432)
	v.SetDefault("APP_DB__NAME", "mykingdom")
	v.SetDefault("APP_DB__USERNAME", "postgres")
	v.SetDefault("APP_DB_SSL", "disable")
}

// Validate reports the first configuration problem found.
func (c *AppConfig) Validate() error {
	if c.RestConfig == nil || c.RestConfig.Port < 1 || c.RestConfig.Port > 65535 {
		return fmt.Errorf("rest: %w", ErrInvalidPort)
	}
	db := c.DatabaseConfig
	if db == nil {
		return ErrMissingDatabaseConfig
	}
	if db.DSN != "" {
		return nil
	}
	if db.Host == "" || db.Name == "" || db.Username == "" {
		return ErrMissingDatabaseConfig
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("database: %w", ErrInvalidPort)
	}
	return nil
}
