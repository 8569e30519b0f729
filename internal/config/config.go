package config

import "os"

// Settings holds the process-wide configuration the registration workflow
// needs: payment details for confirmations and the public site address.
// It is populated once at startup and injected explicitly, never read from
// ambient global state by the services.
type Settings struct {
	Stage        string
	LogLevel     string
	BankAccount  string
	SiteURL      string
	ContactEmail string
}

// Load reads settings from environment variables, applying defaults where
// a variable is unset.
func Load() Settings {
	return Settings{
		Stage:        getEnvWithDefault("STAGE", "local"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		BankAccount:  os.Getenv("BANK_ACCOUNT"),
		SiteURL:      getEnvWithDefault("SITE_URL", "https://www.aikido-dan-bw.de"),
		ContactEmail: getEnvWithDefault("CONTACT_EMAIL", "info@aikido-dan-bw.de"),
	}
}

// getEnvWithDefault returns environment variable value or default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
