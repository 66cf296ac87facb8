package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("ratelimit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", a.BaseURL)
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")

	if !strings.HasPrefix(a.BasePath, "/") {
		return fmt.Errorf("base_path must start with '/' (got %q)", a.BasePath)
	}
	a.BasePath = strings.TrimRight(a.BasePath, "/")

	return nil
}

func (s *StudyConfig) validate() error {
	if s.ActivityWindowDays <= 0 {
		return fmt.Errorf("activity_window_days must be > 0 (got %d)", s.ActivityWindowDays)
	}
	if s.QuizSize <= 0 {
		return fmt.Errorf("quiz_size must be > 0 (got %d)", s.QuizSize)
	}
	if s.MasteredLimit <= 0 {
		return fmt.Errorf("mastered_limit must be > 0 (got %d)", s.MasteredLimit)
	}
	if s.MasteredLimitMax < s.MasteredLimit {
		return fmt.Errorf("mastered_limit_max must be >= mastered_limit (got %d < %d)", s.MasteredLimitMax, s.MasteredLimit)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	return nil
}
