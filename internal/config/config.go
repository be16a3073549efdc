package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sendsafe/sendsafe-api/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Generator GeneratorConfig
	Mail      MailConfig
	Storage   StorageConfig
	Secrets   SecretsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
	Plans     PlansConfig
	Autosave  AutosaveConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// AuthConfig holds settings for validating tokens issued by the hosted auth provider
type AuthConfig struct {
	// JWTSecret is the HS256 signing secret of the auth project
	JWTSecret string
	// Audience is the expected "aud" claim (empty disables the check)
	Audience string
	// Issuer is the expected "iss" claim prefix (empty disables the check)
	Issuer string
}

// GeneratorConfig configures the text-generation backend used for personalization and enrichment
type GeneratorConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	// Timeout is the per-request timeout in seconds
	Timeout int
	// Retries is the number of extra attempts per call (0 = no retry)
	Retries                 int
	CircuitFailureThreshold int
	// CircuitReset is the time in seconds before an open circuit half-opens
	CircuitReset int
}

// MailConfig configures the transactional email transport
type MailConfig struct {
	// Mode is "resend" for real delivery or "outbox" to write messages to storage
	Mode   string
	APIKey string
	// OutboxPrefix is the storage folder used in outbox mode
	OutboxPrefix string
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
	MaxUploadSizeMB       int64
	// ArchiveExports keeps a copy of every contact export under exports/<user>/
	ArchiveExports bool
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
	EnableMetrics  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	XSSProtection         string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the limit for unauthenticated requests (per IP)
	RequestsPerMinute int
	// RequestsPerMinuteAuth is the limit for authenticated requests (per user)
	RequestsPerMinuteAuth int
	WhitelistIPs          []string
	WhitelistPaths        []string
}

// JobsConfig holds background housekeeping settings
type JobsConfig struct {
	Enabled bool
	// SendAttemptCleanupCron is the schedule of the send attempt pruning job
	SendAttemptCleanupCron string
	// SendAttemptRetentionDays is how long idempotency keys are kept
	SendAttemptRetentionDays int
}

// PlanLimits holds the monthly allotments of one plan tier
type PlanLimits struct {
	AICredits int
	Sends     int
}

// PlansConfig holds the monthly allotments per plan tier
type PlansConfig struct {
	Free    PlanLimits
	Starter PlanLimits
	Pro     PlanLimits
	// DefaultWarningThreshold is the usage percentage at which a warning is reported
	DefaultWarningThreshold int
}

// Limits returns the allotments for the given plan tier, falling back to the free tier
func (p *PlansConfig) Limits(plan string) PlanLimits {
	switch plan {
	case "starter":
		return p.Starter
	case "pro":
		return p.Pro
	default:
		return p.Free
	}
}

// AutosaveConfig holds the server-side draft autosave settings
type AutosaveConfig struct {
	// QuietPeriodMs is the debounce window after the last edit
	QuietPeriodMs int
}

// QuietPeriod returns the debounce window as a duration
func (a *AutosaveConfig) QuietPeriod() time.Duration {
	return time.Duration(a.QuietPeriodMs) * time.Millisecond
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// TimeoutDuration returns the generator request timeout as duration
func (g *GeneratorConfig) TimeoutDuration() time.Duration {
	return time.Duration(g.Timeout) * time.Second
}

// CircuitResetDuration returns the circuit breaker reset window as duration
func (g *GeneratorConfig) CircuitResetDuration() time.Duration {
	return time.Duration(g.CircuitReset) * time.Second
}

// SendAttemptRetention returns the idempotency key retention as duration
func (j *JobsConfig) SendAttemptRetention() time.Duration {
	return time.Duration(j.SendAttemptRetentionDays) * 24 * time.Hour
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("AUTH_JWT_SECRET")
	}
	if cfg.Mail.APIKey == "" {
		cfg.Mail.APIKey = v.GetString("RESEND_API_KEY")
	}
	if cfg.Generator.APIKey == "" {
		cfg.Generator.APIKey = v.GetString("GENERATOR_API_KEY")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source.
// Key Vault is used when USE_AZURE_KEY_VAULT=true and the environment is staging or production.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	logger.Info("Loading secrets from Azure Key Vault",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	if host, err := provider.GetSecretOrEnv(ctx, "POSTGRES-HOST", "DATABASE_HOST"); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := provider.GetSecretOrEnv(ctx, "POSTGRES-USER", "DATABASE_USER"); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := provider.GetSecretOrEnv(ctx, "POSTGRES-PASSWORD", "DATABASE_PASSWORD"); err == nil && password != "" {
		cfg.Database.Password = password
	}
	if sslMode := os.Getenv("DATABASE_SSLMODE"); sslMode != "" {
		cfg.Database.SSLMode = sslMode
	}

	if secret, err := provider.GetSecretOrEnv(ctx, "auth-jwt-secret", "AUTH_JWT_SECRET"); err == nil && secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if key, err := provider.GetSecretOrEnv(ctx, "resend-api-key", "RESEND_API_KEY"); err == nil && key != "" {
		cfg.Mail.APIKey = key
	}
	if key, err := provider.GetSecretOrEnv(ctx, "generator-api-key", "GENERATOR_API_KEY"); err == nil && key != "" {
		cfg.Generator.APIKey = key
	}
	if connStr, err := provider.GetSecretOrEnv(ctx, "storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING"); err == nil && connStr != "" {
		cfg.Storage.CloudConnectionString = connStr
	}

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "SendSafe API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "sendsafe")
	v.SetDefault("database.user", "sendsafe_user")
	v.SetDefault("database.password", "sendsafe_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	v.SetDefault("auth.audience", "authenticated")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("generator.baseUrl", "http://localhost:11434")
	v.SetDefault("generator.model", "llama3.1")
	v.SetDefault("generator.timeout", 60)
	v.SetDefault("generator.retries", 0)
	v.SetDefault("generator.circuitFailureThreshold", 5)
	v.SetDefault("generator.circuitReset", 30)

	v.SetDefault("mail.mode", "outbox")
	v.SetDefault("mail.outboxPrefix", "outbox")

	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "sendsafe")
	v.SetDefault("storage.maxUploadSizeMB", 20)
	v.SetDefault("storage.archiveExports", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 120)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)
	v.SetDefault("server.enableMetrics", true)

	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID", "Content-Disposition"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.xssProtection", "1; mode=block")
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 60)
	v.SetDefault("rateLimit.requestsPerMinuteAuth", 240)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready", "/metrics"})

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.sendAttemptCleanupCron", "0 0 3 * * *")
	v.SetDefault("jobs.sendAttemptRetentionDays", 30)

	v.SetDefault("plans.free.aiCredits", 25)
	v.SetDefault("plans.free.sends", 100)
	v.SetDefault("plans.starter.aiCredits", 500)
	v.SetDefault("plans.starter.sends", 2000)
	v.SetDefault("plans.pro.aiCredits", 2000)
	v.SetDefault("plans.pro.sends", 10000)
	v.SetDefault("plans.defaultWarningThreshold", 80)

	v.SetDefault("autosave.quietPeriodMs", 1500)
}
