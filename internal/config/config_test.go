package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "https://api.apify.com/v2", cfg.Apify.BaseURL)
	assert.Equal(t, 2, cfg.Apify.RunsToScan)
	assert.Equal(t, time.Hour, cfg.Schedule.PollInterval)
	assert.InDelta(t, 0.80, cfg.Shipping.RatePerMile, 1e-9)
	assert.Equal(t, 3000, cfg.Recon.StandardCost)
	assert.Len(t, cfg.Pack.Tiers, 11)
	assert.InDelta(t, 0.06, cfg.Margins.ProfitMinPct, 1e-9)
	assert.InDelta(t, 0.03, cfg.Margins.MaybeMinPct, 1e-9)
	assert.Equal(t, 80, cfg.Matching.FuzzyAcceptMin)
	assert.Equal(t, 85, cfg.Matching.CanonicalMinConfidence)
	assert.Equal(t, 88, cfg.Matching.TrimFuzzyMin)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host: "localhost", Port: 5432, Name: "autoprofit",
		User: "app", Password: "secret", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 dbname=autoprofit user=app password=secret sslmode=disable",
		d.DSN(),
	)
}

func TestLoad(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("TEST_DB_PASSWORD", "hunter2")

		path := write(t, `
database:
  host: localhost
  name: autoprofit
  user: app
  password: ${TEST_DB_PASSWORD}
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", cfg.Database.Password)
		assert.Equal(t, 8080, cfg.Server.Port, "defaults still apply")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "reading config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := Load(write(t, "server: [not a map"))
		assert.ErrorContains(t, err, "parsing config YAML")
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		_, err := Load(write(t, "server:\n  port: 9090\n"))
		assert.ErrorContains(t, err, "database.host is required")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := Default()
		cfg.Database.Host = "localhost"
		cfg.Database.Name = "autoprofit"
		cfg.Database.User = "app"
		return cfg
	}

	t.Run("defaults plus database pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Validate(valid()))
	})

	t.Run("missing database fields", func(t *testing.T) {
		t.Parallel()
		err := Validate(Default())
		assert.ErrorContains(t, err, "database.host is required")
		assert.ErrorContains(t, err, "database.name is required")
		assert.ErrorContains(t, err, "database.user is required")
	})

	t.Run("inverted margins", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Margins.ProfitMinPct = 0.02
		cfg.Margins.MaybeMinPct = 0.05
		assert.ErrorContains(t, Validate(cfg), "must not exceed margins.profit_min_pct")
	})

	t.Run("negative shipping rate", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Shipping.RatePerMile = -1
		assert.ErrorContains(t, Validate(cfg), "shipping.rate_per_mile")
	})

	t.Run("pack tiers must start at zero", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Pack.Tiers = []PackTier{{Min: 100, Max: maxPrice, Cost: 500}}
		assert.ErrorContains(t, Validate(cfg), "pack.tiers[0].min must be 0")
	})

	t.Run("pack tiers must be contiguous", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Pack.Tiers = []PackTier{
			{Min: 0, Max: 19999, Cost: 500},
			{Min: 25000, Max: maxPrice, Cost: 800},
		}
		assert.ErrorContains(t, Validate(cfg), "not contiguous with previous max")
	})

	t.Run("pack tiers must cover the top", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Pack.Tiers = []PackTier{{Min: 0, Max: 19999, Cost: 500}}
		assert.ErrorContains(t, Validate(cfg), "leaves prices above it uncovered")
	})

	t.Run("empty pack tiers after explicit clear", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Pack.Tiers = nil
		// Validate does not re-apply defaults; a nil table is an error.
		assert.ErrorContains(t, Validate(cfg), "pack.tiers must not be empty")
	})
}

func TestStore(t *testing.T) {
	t.Parallel()

	seed := Default()
	seed.Database.Host = "localhost"
	seed.Database.Name = "autoprofit"
	seed.Database.User = "app"

	s := NewStore(seed)
	assert.Same(t, seed, s.Current())

	t.Run("replace swaps the snapshot", func(t *testing.T) {
		next := Default()
		next.Database.Host = "db.internal"
		next.Database.Name = "autoprofit"
		next.Database.User = "app"

		require.NoError(t, s.Replace(next))
		assert.Same(t, next, s.Current())
	})

	t.Run("invalid replacement is rejected", func(t *testing.T) {
		before := s.Current()

		bad := Default()
		bad.Database.Host = "db.internal"
		bad.Database.Name = "autoprofit"
		bad.Database.User = "app"
		bad.Margins.ProfitMinPct = 0.01
		bad.Margins.MaybeMinPct = 0.05

		require.Error(t, s.Replace(bad))
		assert.Same(t, before, s.Current(), "snapshot unchanged on failure")
	})
}
