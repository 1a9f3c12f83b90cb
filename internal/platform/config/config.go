package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SessionCookieName string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	LineClientID       string `mapstructure:"LINE_CLIENT_ID"`
	LineClientSecret   string `mapstructure:"LINE_CLIENT_SECRET"`
	LineRedirectURL    string `mapstructure:"LINE_REDIRECT_URL"`

	// Notification providers
	LineMessagingToken  string `mapstructure:"LINE_MESSAGING_API_TOKEN"`
	LineChannelSecret   string `mapstructure:"LINE_CHANNEL_SECRET"`
	VAPIDPublicKey      string `mapstructure:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey     string `mapstructure:"VAPID_PRIVATE_KEY"`
	VAPIDSubscriber     string `mapstructure:"VAPID_MAILTO"`
	DispatchSendTimeout time.Duration

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "notihub-backend")
	viper.SetDefault("SESSION_COOKIE_NAME", "session")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("LINE_CLIENT_ID", "")
	viper.SetDefault("LINE_CLIENT_SECRET", "")
	viper.SetDefault("LINE_REDIRECT_URL", "")
	viper.SetDefault("LINE_MESSAGING_API_TOKEN", "")
	viper.SetDefault("LINE_CHANNEL_SECRET", "")
	viper.SetDefault("VAPID_PUBLIC_KEY", "")
	viper.SetDefault("VAPID_PRIVATE_KEY", "")
	viper.SetDefault("VAPID_MAILTO", "")
	viper.SetDefault("DISPATCH_SEND_TIMEOUT", "15s")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 7 // one week, matching the session cookie lifetime
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.LineClientID = viper.GetString("LINE_CLIENT_ID")
	cfg.LineClientSecret = viper.GetString("LINE_CLIENT_SECRET")
	cfg.LineRedirectURL = viper.GetString("LINE_REDIRECT_URL")

	cfg.LineMessagingToken = viper.GetString("LINE_MESSAGING_API_TOKEN")
	cfg.LineChannelSecret = viper.GetString("LINE_CHANNEL_SECRET")
	cfg.VAPIDPublicKey = viper.GetString("VAPID_PUBLIC_KEY")
	cfg.VAPIDPrivateKey = viper.GetString("VAPID_PRIVATE_KEY")
	cfg.VAPIDSubscriber = viper.GetString("VAPID_MAILTO")

	sendTimeoutStr := viper.GetString("DISPATCH_SEND_TIMEOUT")
	sendTimeout, err := time.ParseDuration(sendTimeoutStr)
	if err != nil || sendTimeout <= 0 {
		sendTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for DISPATCH_SEND_TIMEOUT ('%s'). Defaulting to %s.\n", sendTimeoutStr, sendTimeout.String())
	}
	cfg.DispatchSendTimeout = sendTimeout

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	// Log warnings for missing critical provider ENV variables
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth is not fully configured. Google login and email sending will not function.")
	}
	if cfg.LineClientID == "" || cfg.LineClientSecret == "" || cfg.LineRedirectURL == "" {
		log.Println("Warning: LINE Login is not fully configured. LINE login will not function.")
	}
	if cfg.LineMessagingToken == "" {
		log.Println("Warning: LINE_MESSAGING_API_TOKEN not set. LINE notifications will not function.")
	}
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		log.Println("Warning: VAPID key pair not set. Browser push notifications will not function.")
	}

	return cfg, nil
}
