package module

import (
	"time"

	"dnsguard/internal/platform/config"
)

// Options controls token issuance
type Options struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// FromConfig reads with AUTH_ prefix, the secret is mandatory
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("AUTH_")
	return Options{
		Secret:     c.MustString("SECRET"),
		AccessTTL:  c.MayDuration("ACCESS_TTL", 24*time.Hour),
		RefreshTTL: c.MayDuration("REFRESH_TTL", 7*24*time.Hour),
	}
}
