package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName     = "profiler"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultDBDriver        = "postgres"
	defaultDBHost          = "localhost"
	defaultDBPort          = "5432"
	defaultDBUser          = "postgres"
	defaultDBName          = "profiler"
	defaultDBSSLMode       = "disable"
	defaultESURL           = "http://localhost:9200"
	defaultESIndex         = "conversation_analysis"
	defaultESTimeoutSec    = 30
	defaultRedisAddr       = "localhost:6379"
	defaultCacheTTLMinutes = 15
	defaultCatalogURL      = "http://localhost:8090"
	defaultCatalogRPS      = 10
	defaultCategoryLimit   = 5
	defaultProfilePath     = "profile.yaml"
	defaultLogLevel        = "info"
)

// Config holds all configuration for the profiler service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Redis         RedisConfig         `yaml:"redis"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Social        SocialConfig        `yaml:"social"`
	Profile       ProfileConfig       `yaml:"profile"`
	Logging       LoggingConfig       `yaml:"logging"`
	Auth          AuthConfig          `yaml:"auth"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"PROFILER_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"     yaml:"debug"`
}

// DatabaseConfig holds feedback store configuration.
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER"         yaml:"driver"`
	Host     string `env:"POSTGRES_HOST"     yaml:"host"`
	Port     string `env:"POSTGRES_PORT"     yaml:"port"`
	User     string `env:"POSTGRES_USER"     yaml:"user"`
	Password string `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database string `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode  string `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
}

// ElasticsearchConfig holds the conversation analysis store configuration.
type ElasticsearchConfig struct {
	URL               string        `env:"ELASTICSEARCH_URL" yaml:"url"`
	Username          string        `yaml:"username"`
	Password          string        `yaml:"password"`
	ConversationIndex string        `yaml:"conversation_index"`
	Timeout           time.Duration `yaml:"timeout"`
}

// RedisConfig holds profile cache configuration.
type RedisConfig struct {
	Addr            string        `env:"REDIS_ADDR"     yaml:"addr"`
	Password        string        `env:"REDIS_PASSWORD" yaml:"password"`
	Database        int           `yaml:"database"`
	ProfileCacheTTL time.Duration `yaml:"profile_cache_ttl"`
}

// CatalogConfig holds the skill catalog client configuration.
type CatalogConfig struct {
	URL              string `env:"CATALOG_URL" yaml:"url"`
	RequestsPerSec   int    `yaml:"requests_per_sec"`
	PerCategoryLimit int    `yaml:"per_category_limit"`
}

// SocialConfig holds the optional social-graph source configuration.
type SocialConfig struct {
	URL     string `env:"SOCIAL_URL" yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

// ProfileConfig holds profile generation settings. The static profile and
// feedback sources are on unless explicitly disabled.
type ProfileConfig struct {
	DeclaredProfilePath  string `env:"DECLARED_PROFILE_PATH" yaml:"declared_profile_path"`
	DisableStaticProfile bool   `yaml:"disable_static_profile"`
	DisableFeedback      bool   `yaml:"disable_feedback"`
}

// LoggingConfig holds logging configuration. Output is always JSON; Output
// names the destination path, stdout by default.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" yaml:"level"`
	Output string `yaml:"output"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" yaml:"jwt_secret"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return LoadWithDefaults[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setRedisDefaults(&cfg.Redis)
	setCatalogDefaults(&cfg.Catalog)
	setProfileDefaults(&cfg.Profile)
	setLoggingDefaults(&cfg.Logging)
	// Auth and social defaults are handled by env tags.
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == "" {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.URL == "" {
		e.URL = defaultESURL
	}
	if e.ConversationIndex == "" {
		e.ConversationIndex = defaultESIndex
	}
	if e.Timeout == 0 {
		e.Timeout = defaultESTimeoutSec * time.Second
	}
}

func setRedisDefaults(r *RedisConfig) {
	if r.Addr == "" {
		r.Addr = defaultRedisAddr
	}
	if r.ProfileCacheTTL == 0 {
		r.ProfileCacheTTL = defaultCacheTTLMinutes * time.Minute
	}
}

func setCatalogDefaults(c *CatalogConfig) {
	if c.URL == "" {
		c.URL = defaultCatalogURL
	}
	if c.RequestsPerSec == 0 {
		c.RequestsPerSec = defaultCatalogRPS
	}
	if c.PerCategoryLimit == 0 {
		c.PerCategoryLimit = defaultCategoryLimit
	}
}

func setProfileDefaults(p *ProfileConfig) {
	if p.DeclaredProfilePath == "" {
		p.DeclaredProfilePath = defaultProfilePath
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
}
