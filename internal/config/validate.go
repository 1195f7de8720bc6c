package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	switch a.Mode {
	case AuthModeRemote:
		u, err := url.Parse(a.UserServiceURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("user_service_url must be an absolute URL (got %q)", a.UserServiceURL)
		}
		if a.RequestTimeout <= 0 {
			return fmt.Errorf("request_timeout must be > 0 (got %v)", a.RequestTimeout)
		}
	case AuthModeJWT:
		if len(a.JWTSecret) < 32 {
			return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
		}
	case AuthModeMock:
	default:
		return fmt.Errorf("mode must be one of remote, mock, jwt (got %q)", a.Mode)
	}
	return nil
}

func (d *DispatchConfig) validate() error {
	if d.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", d.DefaultPageSize)
	}
	if d.MaxPageSize < d.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", d.MaxPageSize, d.DefaultPageSize)
	}
	if d.TopN <= 0 {
		return fmt.Errorf("top_n must be > 0 (got %d)", d.TopN)
	}
	return nil
}
