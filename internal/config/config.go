package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ReconcileIntervalSeconds controls how often the background overdue
	// pass runs. Zero selects the built-in default.
	ReconcileIntervalSeconds int `mapstructure:"reconcile_interval_seconds" validate:"gte=0"`
}

// StorageConfig selects and configures the snapshot persistence backend.
type StorageConfig struct {
	// Backend is either "file" or "postgres".
	Backend string `mapstructure:"backend" validate:"required,oneof=file postgres"`

	// FilePath is the snapshot file location for the file backend.
	FilePath string `mapstructure:"file_path" validate:"required_if=Backend file"`

	// DatabaseURL is the connection string for the postgres backend.
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
}

// AuthConfig contains the optional single-user protection settings. When
// PasswordHash is empty the API runs open, which is the expected mode for a
// tracker bound to localhost.
type AuthConfig struct {
	// PasswordHash is the bcrypt hash of the owner's password.
	PasswordHash string `mapstructure:"password_hash"`

	// JWTSecret signs access tokens. Required when PasswordHash is set.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required_with=PasswordHash,omitempty,min=32"`

	// TokenLifetimeMinutes is the access token lifetime.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// AuthEnabled reports whether the API requires authentication.
func (c AuthConfig) AuthEnabled() bool {
	return c.PasswordHash != ""
}
