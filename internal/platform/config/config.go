// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors. No global variable holds it.
*/
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the showcase server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// ContentBaseURL is where the JSON documents and nav fragment are published.
	ContentBaseURL string `env:"CONTENT_BASE_URL,required"`

	// Document paths, relative to ContentBaseURL
	BlogDataPath     string `env:"BLOG_DATA_PATH"     envDefault:"blog/posts.json"`
	ProjectsDataPath string `env:"PROJECTS_DATA_PATH" envDefault:"projects/content.json"`
	HomeDataPath     string `env:"HOME_DATA_PATH"     envDefault:"homepage/content.json"`
	NavPath          string `env:"NAV_PATH"           envDefault:"nav.html"`

	// Page sizes
	BlogPageSize     int `env:"BLOG_PAGE_SIZE"     envDefault:"6"`
	ProjectsPageSize int `env:"PROJECTS_PAGE_SIZE" envDefault:"9"`

	// Document cache
	CacheTTL  time.Duration `env:"CACHE_TTL"  envDefault:"5m"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"64"`

	// RedisURL switches the document cache to Redis when set.
	RedisURL string `env:"REDIS_URL"`

	// SiteDir serves the static pages when set.
	SiteDir string `env:"SITE_DIR"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	base, err := url.Parse(c.ContentBaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("config: CONTENT_BASE_URL must be an absolute URL, got %q", c.ContentBaseURL)
	}
	if c.BlogPageSize < 1 || c.ProjectsPageSize < 1 {
		return fmt.Errorf("config: page sizes must be positive")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config: CACHE_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowsOrigin reports whether a cross-origin request from origin may be served.
//
// Localhost is always allowed in development. Otherwise the origin host must
// end with AllowedOriginSuffix; an empty suffix allows no cross-origin caller.
func (c *Config) AllowsOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	host := u.Hostname()
	if c.IsDevelopment() && (host == "localhost" || host == "127.0.0.1") {
		return true
	}

	if c.AllowedOriginSuffix == "" {
		return false
	}
	return host == strings.TrimPrefix(c.AllowedOriginSuffix, ".") || strings.HasSuffix(host, "."+strings.TrimPrefix(c.AllowedOriginSuffix, "."))
}
