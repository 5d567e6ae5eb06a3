package fapshi

import (
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// Environment selects which Fapshi deployment a client talks to.
type Environment string

const (
	EnvSandbox Environment = "sandbox"
	EnvLive    Environment = "live"
)

const (
	sandboxBaseURL = "https://sandbox.fapshi.com"
	liveBaseURL    = "https://live.fapshi.com"

	sandboxKeyPrefix = "FAK_TEST_"
	liveKeyPrefix    = "FAK_"
)

// Config holds the credentials and deployment target for a Client.
type Config struct {
	// APIUser and APIKey are issued per service on the Fapshi dashboard and
	// ride on every request as the apiuser/apikey headers.
	APIUser string `envconfig:"API_USER"`
	APIKey  string `envconfig:"API_KEY"`

	// Environment selects the sandbox or live deployment. When empty it is
	// inferred from the APIKey prefix; sandbox keys start with FAK_TEST_.
	Environment Environment `envconfig:"ENVIRONMENT"`

	// BaseURL overrides the deployment URL entirely, for tests and proxies.
	// Trailing slashes are stripped.
	BaseURL string `envconfig:"BASE_URL"`
}

// FromEnv creates a Config by parsing environment variables prefixed with
// FAPSHI_: FAPSHI_API_USER, FAPSHI_API_KEY, FAPSHI_ENVIRONMENT,
// FAPSHI_BASE_URL. The library never reads credentials from the environment
// unless the application calls this.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("FAPSHI", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolveBaseURL picks the request base URL with precedence
// BaseURL > Environment > API-key inference.
func (c Config) resolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/"), nil
	}
	env := c.Environment
	if env == "" {
		env = inferEnvironment(c.APIKey)
	}
	switch env {
	case EnvSandbox:
		return sandboxBaseURL, nil
	case EnvLive:
		return liveBaseURL, nil
	default:
		return "", types.NewValidationError("unsupported environment: " + string(env))
	}
}

// inferEnvironment reads the deployment from the API key prefix. Keys
// matching neither prefix resolve to sandbox so a malformed key cannot reach
// the live deployment.
func inferEnvironment(apiKey string) Environment {
	if strings.HasPrefix(apiKey, sandboxKeyPrefix) {
		return EnvSandbox
	}
	if strings.HasPrefix(apiKey, liveKeyPrefix) {
		return EnvLive
	}
	return EnvSandbox
}
