// Package config reads every Doka service's runtime configuration from
// environment variables, the way the teacher's config.NewProvider() does.
// NewProvider reads environment variables only; pkg/properties can load a
// JSON override file, but no service binary calls it. Every service binary (keymanager, sessionmanager,
// adminserver, documentserver, fileserver) shares this one Configuration
// struct and reads only the sections it needs.
package config

import "time"

type Configuration struct {
	App           AppConfig
	AdminDB       DatabaseConfig
	ContentDB     DatabaseConfig
	FileDB        DatabaseConfig
	Cache         CacheConfig
	AWS           AWSConfig
	Mailgun       MailgunConfig
	Peers         PeersConfig
	Security      SecurityConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
	Logging       LoggingConfig
}

type AppConfig struct {
	Environment     string
	Version         string
	Port            string
	IP              string
	DataDirectory   string
	GeoLiteDBPath   string
	BannedCountries []string
}

// DatabaseConfig describes one PostgreSQL connection pool: AdminDB backs
// the static dokaadmin schema, ContentDB backs the per-tenant cs_<code>
// schemas, FileDB backs the per-tenant fs_<code> schemas. In a small
// deployment all three may point at the same physical server.
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int32
	ConnectTimeout time.Duration
	MigrationsPath string
}

type CacheConfig struct {
	RedisURI string
}

type AWSConfig struct {
	AccessKey  string
	SecretKey  string
	Endpoint   string
	Region     string
	BucketName string
}

type MailgunConfig struct {
	APIKey           string
	Domain           string
	APIBase          string
	SenderEmail      string
	MaintenanceEmail string
	FrontendDomain   string
	BackendDomain    string
}

// PeersConfig is how each service locates the others, per the inter-service
// HTTP contract.
type PeersConfig struct {
	KeyManagerBaseURL     string
	SessionManagerBaseURL string
	DocumentServerBaseURL string
	TikaBaseURL           string
}

type SecurityConfig struct {
	// CEKFilePath points at the file holding the process-wide Common
	// Edible Key. Every service except Session Manager loads it through
	// cek.Module().
	CEKFilePath string
	BCryptCost  int
	// SessionIdleTimeout / SessionAbsoluteTimeout bound how long a Session
	// Manager record stays valid: idle resets on every touch, absolute does
	// not.
	SessionIdleTimeout     time.Duration
	SessionAbsoluteTimeout time.Duration
}

// StorageConfig selects the File Server's PartStore backend.
type StorageConfig struct {
	PartBackend string // "postgres", "s3", or "memory"
}

type ObservabilityConfig struct {
	Enabled            bool
	Port               string
	HealthCheckTimeout time.Duration
}

type LoggingConfig struct {
	Level            string
	Format           string // "json" or "console"
	EnableStacktrace bool
	EnableCaller     bool
}

func NewProvider() *Configuration {
	var c Configuration

	c.App.Environment = getEnv("ENVIRONMENT", false)
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	c.App.Version = getEnv("SERVICE_VERSION", false)
	if c.App.Version == "" {
		c.App.Version = "1.0.0"
	}
	c.App.Port = getEnv("DOKA_PORT", true)
	c.App.IP = getEnv("DOKA_IP", false)
	c.App.DataDirectory = getEnv("DOKA_DATA_DIRECTORY", false)
	c.App.GeoLiteDBPath = getEnv("DOKA_GEOLITE_DB_PATH", false)
	c.App.BannedCountries = getStringsArrEnv("DOKA_BANNED_COUNTRIES", false)

	c.AdminDB = readDatabaseConfig("DOKA_ADMIN_DB")
	c.ContentDB = readDatabaseConfig("DOKA_CONTENT_DB")
	c.FileDB = readDatabaseConfig("DOKA_FILE_DB")

	c.Cache.RedisURI = getEnv("DOKA_CACHE_URI", false)

	c.AWS.AccessKey = getEnv("DOKA_AWS_ACCESS_KEY", false)
	c.AWS.SecretKey = getEnv("DOKA_AWS_SECRET_KEY", false)
	c.AWS.Endpoint = getEnv("DOKA_AWS_ENDPOINT", false)
	c.AWS.Region = getEnv("DOKA_AWS_REGION", false)
	c.AWS.BucketName = getEnv("DOKA_AWS_BUCKET_NAME", false)

	c.Mailgun.APIKey = getEnv("DOKA_MAILGUN_API_KEY", false)
	c.Mailgun.Domain = getEnv("DOKA_MAILGUN_DOMAIN", false)
	c.Mailgun.APIBase = getEnv("DOKA_MAILGUN_API_BASE", false)
	c.Mailgun.SenderEmail = getEnv("DOKA_MAILGUN_SENDER_EMAIL", false)
	c.Mailgun.MaintenanceEmail = getEnv("DOKA_MAILGUN_MAINTENANCE_EMAIL", false)
	c.Mailgun.FrontendDomain = getEnv("DOKA_MAILGUN_FRONTEND_DOMAIN", false)
	c.Mailgun.BackendDomain = getEnv("DOKA_MAILGUN_BACKEND_DOMAIN", false)

	c.Peers.KeyManagerBaseURL = getEnv("DOKA_KM_BASE_URL", true)
	c.Peers.SessionManagerBaseURL = getEnv("DOKA_SM_BASE_URL", true)
	c.Peers.DocumentServerBaseURL = getEnv("DOKA_DS_BASE_URL", false)
	c.Peers.TikaBaseURL = getEnv("DOKA_TIKA_BASE_URL", false)

	c.Security.CEKFilePath = getEnv("DOKA_CEK_FILE_PATH", false)
	c.Security.BCryptCost = int(getInt64Env("DOKA_BCRYPT_COST", false))
	c.Security.SessionIdleTimeout = getEnvDuration("DOKA_SESSION_IDLE_TIMEOUT", false)
	if c.Security.SessionIdleTimeout == 0 {
		c.Security.SessionIdleTimeout = 20 * time.Minute
	}
	c.Security.SessionAbsoluteTimeout = getEnvDuration("DOKA_SESSION_ABSOLUTE_TIMEOUT", false)
	if c.Security.SessionAbsoluteTimeout == 0 {
		c.Security.SessionAbsoluteTimeout = 12 * time.Hour
	}

	c.Storage.PartBackend = getEnv("DOKA_PART_BACKEND", false)
	if c.Storage.PartBackend == "" {
		c.Storage.PartBackend = "postgres"
	}

	c.Observability.Enabled = getEnvBool("DOKA_OBSERVABILITY_ENABLED", false, true)
	c.Observability.Port = getEnv("DOKA_OBSERVABILITY_PORT", false)
	if c.Observability.Port == "" {
		c.Observability.Port = "8081"
	}
	c.Observability.HealthCheckTimeout = getEnvDuration("DOKA_HEALTH_CHECK_TIMEOUT", false)
	if c.Observability.HealthCheckTimeout == 0 {
		c.Observability.HealthCheckTimeout = 30 * time.Second
	}

	c.Logging.Level = getEnv("LOG_LEVEL", false)
	if c.Logging.Level == "" {
		if c.App.Environment == "production" {
			c.Logging.Level = "info"
		} else {
			c.Logging.Level = "debug"
		}
	}
	c.Logging.Format = getEnv("LOG_FORMAT", false)
	if c.Logging.Format == "" {
		if c.App.Environment == "production" {
			c.Logging.Format = "json"
		} else {
			c.Logging.Format = "console"
		}
	}
	c.Logging.EnableStacktrace = getEnvBool("LOG_ENABLE_STACKTRACE", false, c.App.Environment != "production")
	c.Logging.EnableCaller = getEnvBool("LOG_ENABLE_CALLER", false, true)

	return &c
}

func readDatabaseConfig(prefix string) DatabaseConfig {
	return DatabaseConfig{
		Host:           getEnv(prefix+"_HOST", true),
		Port:           getEnv(prefix+"_PORT", false),
		User:           getEnv(prefix+"_USER", true),
		Password:       getEnv(prefix+"_PASSWORD", false),
		Name:           getEnv(prefix+"_NAME", true),
		SSLMode:        getEnv(prefix+"_SSLMODE", false),
		MaxConns:       int32(getInt64Env(prefix+"_MAX_CONNS", false)),
		ConnectTimeout: getEnvDuration(prefix+"_CONNECT_TIMEOUT", false),
		MigrationsPath: getEnv(prefix+"_MIGRATIONS_PATH", false),
	}
}
