package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []EndpointRule{
			{Path: "/auth/login", Method: "POST", Limit: 3, Window: time.Minute, Burst: 3},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/auth/login", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 3, info.Limit)
	}
}

func TestLimiter_BlocksOverBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("1.2.3.4", "/auth/login", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("5.6.7.8", "/auth/login", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}
}

func TestConfig_MatchPrefixRule(t *testing.T) {
	cfg := &Config{
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		Rules: []EndpointRule{
			{Path: "/resume/", Method: "GET", Limit: 5, Window: time.Minute},
		},
	}

	rule := cfg.match("/resume/preview", "GET")
	assert.Equal(t, 5, rule.Limit)

	rule = cfg.match("/unmatched", "GET")
	assert.Equal(t, 10, rule.Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
