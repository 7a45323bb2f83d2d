package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Drive     DriveConfig     `yaml:"drive"`
	Activity  ActivityConfig  `yaml:"activity"`
	Backup    BackupConfig    `yaml:"backup"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"yarnstash"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// DriveConfig holds Google Drive OAuth and call settings.
type DriveConfig struct {
	ClientID     string        `yaml:"client_id"     env:"DRIVE_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"DRIVE_CLIENT_SECRET"`
	RedirectURI  string        `yaml:"redirect_uri"  env:"DRIVE_REDIRECT_URI"`
	FrontendURL  string        `yaml:"frontend_url"  env:"DRIVE_FRONTEND_URL"  env-default:"http://localhost:3000"`
	CallTimeout  time.Duration `yaml:"call_timeout"  env:"DRIVE_CALL_TIMEOUT"  env-default:"30s"`
	RootFolder   string        `yaml:"root_folder"   env:"DRIVE_ROOT_FOLDER"   env-default:"Yarn Management"`
	// SubfoldersRaw is the comma-separated list created under RootFolder on connect.
	SubfoldersRaw string `yaml:"subfolders" env:"DRIVE_SUBFOLDERS" env-default:"Patterns,Yarn Photos,Project Photos,Backups"`
}

// Enabled reports whether Drive OAuth credentials are configured.
func (c DriveConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

// Subfolders returns the parsed SubfoldersRaw list.
func (c DriveConfig) Subfolders() []string {
	var out []string
	for _, s := range strings.Split(c.SubfoldersRaw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ActivityConfig holds activity feed paging settings.
type ActivityConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"ACTIVITY_DEFAULT_LIMIT" env-default:"20"`
	MaxLimit     int `yaml:"max_limit"     env:"ACTIVITY_MAX_LIMIT"     env-default:"100"`
}

// BackupConfig holds backup and retention settings.
type BackupConfig struct {
	DefaultKeepCount int    `yaml:"default_keep_count" env:"BACKUP_DEFAULT_KEEP_COUNT" env-default:"10"`
	FolderName       string `yaml:"folder_name"        env:"BACKUP_FOLDER_NAME"        env-default:"Backups"`
	PatternsFolder   string `yaml:"patterns_folder"    env:"BACKUP_PATTERNS_FOLDER"    env-default:"Patterns"`
	MaxUploadBytes   int64  `yaml:"max_upload_bytes"   env:"BACKUP_MAX_UPLOAD_BYTES"   env-default:"52428800"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-user request limits.
type RateLimitConfig struct {
	BackupPerMinute int `yaml:"backup_per_minute" env:"RATE_LIMIT_BACKUP_PER_MINUTE" env-default:"6"`
}
