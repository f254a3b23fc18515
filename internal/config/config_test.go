package config

import (
    "testing"
    "time"
)

func TestLoadDefaults(t *testing.T) {
    t.Setenv("APP_ENV", "")
    t.Setenv("APP_PORT", "")
    t.Setenv("INTEREST_THRESHOLD", "")
    cfg := Load()
    if cfg.Port != "8000" {
        t.Fatalf("Port = %q, want 8000", cfg.Port)
    }
    if cfg.Threshold != 3 {
        t.Fatalf("Threshold = %d, want 3", cfg.Threshold)
    }
    if cfg.Env != "dev" {
        t.Fatalf("Env = %q, want dev", cfg.Env)
    }
}

func TestLoadOverrides(t *testing.T) {
    t.Setenv("APP_PORT", "9090")
    t.Setenv("INTEREST_THRESHOLD", "5")
    cfg := Load()
    if cfg.Port != "9090" || cfg.Threshold != 5 {
        t.Fatalf("cfg = %+v", cfg)
    }
}

func TestThresholdRejectsGarbage(t *testing.T) {
    for _, v := range []string{"0", "-2", "three", ""} {
        t.Setenv("INTEREST_THRESHOLD", v)
        if got := Load().Threshold; got != 3 {
            t.Fatalf("Threshold with %q = %d, want default 3", v, got)
        }
    }
}

func TestRateLimitConfigClamps(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
    t.Setenv("RATE_LIMIT_TTL", "1s")
    cfg := LoadRateLimitConfig()
    if cfg.Capacity != 1 {
        t.Fatalf("Capacity = %d, want clamp to 1", cfg.Capacity)
    }
    if cfg.TTL < 5*cfg.RefillInterval {
        t.Fatalf("TTL = %s, want at least %s", cfg.TTL, 5*cfg.RefillInterval)
    }
}

func TestCacheConfigDefaults(t *testing.T) {
    cfg := LoadCacheConfig()
    if !cfg.Enabled || cfg.TTL != 15*time.Second {
        t.Fatalf("cfg = %+v", cfg)
    }
}
