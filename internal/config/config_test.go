package config

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "storefront",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	for _, part := range []string{"host=db.internal", "port=5433", "user=app", "password=secret", "dbname=storefront", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN missing %q: %s", part, dsn)
		}
	}
}

func TestParseHelpers(t *testing.T) {
	if got := parseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("parseDuration = %v", got)
	}
	if got := parseDuration("junk", time.Hour); got != time.Hour {
		t.Errorf("parseDuration fallback = %v", got)
	}
	if got := parseInt("42", 7); got != 42 {
		t.Errorf("parseInt = %d", got)
	}
	if got := parseInt("junk", 7); got != 7 {
		t.Errorf("parseInt fallback = %d", got)
	}
}

func TestEffectiveBcryptCost(t *testing.T) {
	if got := (&Config{BcryptCost: 12}).EffectiveBcryptCost(); got != 12 {
		t.Errorf("in-range cost = %d", got)
	}
	if got := (&Config{BcryptCost: 99}).EffectiveBcryptCost(); got != bcrypt.DefaultCost {
		t.Errorf("out-of-range cost = %d, want default", got)
	}
	if got := (&Config{BcryptCost: 0}).EffectiveBcryptCost(); got != bcrypt.DefaultCost {
		t.Errorf("zero cost = %d, want default", got)
	}
}
