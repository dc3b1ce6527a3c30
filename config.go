package telvora

import "github.com/kelseyhightower/envconfig"

// Config holds client construction parameters. BaseURL is required; the
// remaining fields are optional. Config is not mutated after New returns.
type Config struct {
	// BaseURL is the root of the remote API, e.g. "https://api.example.com/".
	BaseURL string `envconfig:"BASE_URL"`

	// APIToken is a long-lived static credential. It is used whenever no
	// session token has been installed with SetAuthToken.
	APIToken string `envconfig:"API_TOKEN"`

	// Email and Password are account credentials for Authenticate. They are
	// carried in config only as a convenience for env-driven setups.
	Email    string `envconfig:"EMAIL"`
	Password string `envconfig:"PASSWORD"`
}

// envPrefix namespaces the SDK's environment variables (TELVORA_BASE_URL,
// TELVORA_API_TOKEN, TELVORA_EMAIL, TELVORA_PASSWORD).
const envPrefix = "TELVORA"

// ConfigFromEnv reads Config from TELVORA_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
