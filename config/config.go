package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds every setting the server needs. It is loaded once in main
// and passed down; nothing reads environment variables after startup.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`

	// Resend email notifications. Disabled when the API key is empty.
	ResendAPIKey  string `mapstructure:"RESEND_API_KEY"`
	EmailFrom     string `mapstructure:"EMAIL_FROM"`
	OperatorEmail string `mapstructure:"OPERATOR_EMAIL"`

	// Twilio SMS notifications. Disabled unless both numbers are set.
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `mapstructure:"TWILIO_PHONE_NUMBER"`
	OperatorPhone     string `mapstructure:"OPERATOR_PHONE"`

	// Stripe checkout. The endpoint reports an error when the key is empty.
	StripeKey          string `mapstructure:"STRIPE_SECRET_KEY"`
	CheckoutSuccessURL string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL  string `mapstructure:"CHECKOUT_CANCEL_URL"`
}

// Load reads configuration from the environment (and an optional .env
// already loaded by main) into an immutable Config.
func Load() Config {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("JWT_SECRET", "dev-secret-key-123")
	viper.SetDefault("EMAIL_FROM", "bookings@signatureseal.com")
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/cancel")

	keys := []string{
		"PORT", "ENV", "DATABASE_URL",
		"ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH", "JWT_SECRET",
		"RESEND_API_KEY", "EMAIL_FROM", "OPERATOR_EMAIL",
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER", "OPERATOR_PHONE",
		"STRIPE_SECRET_KEY", "CHECKOUT_SUCCESS_URL", "CHECKOUT_CANCEL_URL",
	}
	for _, k := range keys {
		if err := viper.BindEnv(k); err != nil {
			log.Fatalf("Failed to bind %s: %v", k, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// SMSEnabled reports whether both Twilio numbers are configured.
func (c Config) SMSEnabled() bool {
	return c.TwilioPhoneNumber != "" && c.OperatorPhone != ""
}

// EmailEnabled reports whether Resend notifications are configured.
func (c Config) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.OperatorEmail != ""
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
