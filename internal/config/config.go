// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Values are immutable
// after Load; runtime reloads go through Store, which swaps whole snapshots.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Apify    ApifyConfig    `yaml:"apify"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Shipping ShippingConfig `yaml:"shipping"`
	Recon    ReconConfig    `yaml:"recon"`
	Pack     PackConfig     `yaml:"pack"`
	Margins  MarginsConfig  `yaml:"margins"`
	Mileage  MileageConfig  `yaml:"mileage"`
	Matching MatchingConfig `yaml:"matching"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ApifyConfig defines the Apify ingestion source.
type ApifyConfig struct {
	Token      string `yaml:"token"`
	ActorID    string `yaml:"actor_id"`
	BaseURL    string `yaml:"base_url"`
	RunsToScan int    `yaml:"runs_to_scan"`
}

// ScheduleConfig defines cron intervals for the background engine.
type ScheduleConfig struct {
	PollEnabled     bool          `yaml:"poll_enabled"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	RescoreInterval time.Duration `yaml:"rescore_interval"`
}

// ShippingConfig defines the shipping cost estimate: destination, rate,
// and geocoding behavior.
type ShippingConfig struct {
	DestLat        float64       `yaml:"dest_lat"`
	DestLon        float64       `yaml:"dest_lon"`
	RatePerMile    float64       `yaml:"rate_per_mile"`
	GeocodeTimeout time.Duration `yaml:"geocode_timeout"`
	ZipLookupURL   string        `yaml:"zip_lookup_url"`
	NominatimURL   string        `yaml:"nominatim_url"`
	UserAgent      string        `yaml:"user_agent"`
	// Nominatim usage policy caps anonymous clients at one request per second.
	GeocodePerSecond float64 `yaml:"geocode_per_second"`
}

// ReconConfig defines the reconditioning cost rule.
type ReconConfig struct {
	NewMilesMax      int `yaml:"new_miles_max"`
	NewCost          int `yaml:"new_cost"`
	OldYearThreshold int `yaml:"old_year_threshold"`
	OldCost          int `yaml:"old_cost"`
	StandardCost     int `yaml:"standard_cost"`
}

// PackTier is one price band of the packing cost table.
type PackTier struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Cost int `yaml:"cost"`
}

// PackConfig defines the ordered packing cost tiers.
type PackConfig struct {
	Tiers []PackTier `yaml:"tiers"`
}

// MarginsConfig defines the category thresholds.
type MarginsConfig struct {
	ProfitMinPct float64 `yaml:"profit_min_pct"`
	MaybeMinPct  float64 `yaml:"maybe_min_pct"`
}

// MileageConfig defines the mileage-based benchmark adjustment per
// vehicle category.
type MileageConfig struct {
	SupercarPriceThreshold int `yaml:"supercar_price_threshold"`
	HighMileThreshold      int `yaml:"high_mile_threshold"`
	SupercarPer5K          int `yaml:"supercar_per_5k"`
	HighMilePer5K          int `yaml:"high_mile_per_5k"`
	SedanPer10K            int `yaml:"sedan_per_10k"`
	SUVPer10K              int `yaml:"suv_per_10k"`
}

// MatchingConfig defines fuzzy-match acceptance thresholds and the trim
// candidate cache TTL.
type MatchingConfig struct {
	// Global fuzzy fallback accepts at or above this score.
	FuzzyAcceptMin int `yaml:"fuzzy_accept_min"`
	// Canonicalized trims feed the matcher only at or above this confidence.
	CanonicalMinConfidence int `yaml:"canonical_min_confidence"`
	// Trim canonicalization fuzzy pass accepts at or above this score.
	// Stricter than the matcher's own threshold: it compares within a single
	// make/model/year, so a high bar avoids weak same-model trim confusions.
	TrimFuzzyMin int           `yaml:"trim_fuzzy_min"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config populated entirely from defaults. Used by tests
// and by one-shot CLI commands that do not need the database section.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with shipped defaults.
func ApplyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyApifyDefaults(&cfg.Apify)
	applyScheduleDefaults(&cfg.Schedule)
	applyShippingDefaults(&cfg.Shipping)
	applyReconDefaults(&cfg.Recon)
	applyPackDefaults(&cfg.Pack)
	applyMarginsDefaults(&cfg.Margins)
	applyMileageDefaults(&cfg.Mileage)
	applyMatchingDefaults(&cfg.Matching)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyApifyDefaults(a *ApifyConfig) {
	if a.BaseURL == "" {
		a.BaseURL = "https://api.apify.com/v2"
	}
	if a.RunsToScan == 0 {
		a.RunsToScan = 2
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.PollInterval == 0 {
		s.PollInterval = time.Hour
	}
	if s.RescoreInterval == 0 {
		s.RescoreInterval = 6 * time.Hour
	}
}

func applyShippingDefaults(s *ShippingConfig) {
	if s.DestLat == 0 {
		s.DestLat = 40.117802
	}
	if s.DestLon == 0 {
		s.DestLon = -83.135870
	}
	if s.RatePerMile == 0 {
		s.RatePerMile = 0.80
	}
	if s.GeocodeTimeout == 0 {
		s.GeocodeTimeout = 10 * time.Second
	}
	if s.ZipLookupURL == "" {
		s.ZipLookupURL = "https://api.zippopotam.us/us"
	}
	if s.NominatimURL == "" {
		s.NominatimURL = "https://nominatim.openstreetmap.org/search"
	}
	if s.UserAgent == "" {
		s.UserAgent = "autoprofit/1.0"
	}
	if s.GeocodePerSecond == 0 {
		s.GeocodePerSecond = 1.0
	}
}

func applyReconDefaults(r *ReconConfig) {
	if r.NewMilesMax == 0 {
		r.NewMilesMax = 5000
	}
	if r.NewCost == 0 {
		r.NewCost = 800
	}
	if r.OldYearThreshold == 0 {
		r.OldYearThreshold = 2012
	}
	if r.OldCost == 0 {
		r.OldCost = 1300
	}
	if r.StandardCost == 0 {
		r.StandardCost = 3000
	}
}

// maxPrice is the effective upper bound of the top packing tier.
const maxPrice = 1_000_000_000

func applyPackDefaults(p *PackConfig) {
	if len(p.Tiers) == 0 {
		p.Tiers = []PackTier{
			{Min: 0, Max: 19999, Cost: 500},
			{Min: 20000, Max: 39999, Cost: 800},
			{Min: 40000, Max: 59999, Cost: 1200},
			{Min: 60000, Max: 79999, Cost: 1500},
			{Min: 80000, Max: 119999, Cost: 1800},
			{Min: 120000, Max: 149999, Cost: 2200},
			{Min: 150000, Max: 179999, Cost: 2800},
			{Min: 180000, Max: 219999, Cost: 3400},
			{Min: 220000, Max: 259999, Cost: 4000},
			{Min: 260000, Max: 299999, Cost: 5000},
			{Min: 300000, Max: maxPrice, Cost: 7000},
		}
	}
}

func applyMarginsDefaults(m *MarginsConfig) {
	if m.ProfitMinPct == 0 {
		m.ProfitMinPct = 0.06
	}
	if m.MaybeMinPct == 0 {
		m.MaybeMinPct = 0.03
	}
}

func applyMileageDefaults(m *MileageConfig) {
	if m.SupercarPriceThreshold == 0 {
		m.SupercarPriceThreshold = 70000
	}
	if m.HighMileThreshold == 0 {
		m.HighMileThreshold = 45000
	}
	if m.SupercarPer5K == 0 {
		m.SupercarPer5K = 3000
	}
	if m.HighMilePer5K == 0 {
		m.HighMilePer5K = 2000
	}
	if m.SedanPer10K == 0 {
		m.SedanPer10K = 2000
	}
	if m.SUVPer10K == 0 {
		m.SUVPer10K = 1500
	}
}

func applyMatchingDefaults(m *MatchingConfig) {
	if m.FuzzyAcceptMin == 0 {
		m.FuzzyAcceptMin = 80
	}
	if m.CanonicalMinConfidence == 0 {
		m.CanonicalMinConfidence = 85
	}
	if m.TrimFuzzyMin == 0 {
		m.TrimFuzzyMin = 88
	}
	if m.CacheTTL == 0 {
		m.CacheTTL = time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// Validate checks configuration shape. Malformed configuration is an
// operator error and fails startup; data-quality problems never reach here.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	errs = append(errs, validatePackTiers(cfg.Pack.Tiers)...)

	if cfg.Margins.MaybeMinPct > cfg.Margins.ProfitMinPct {
		errs = append(errs, fmt.Errorf(
			"margins.maybe_min_pct (%v) must not exceed margins.profit_min_pct (%v)",
			cfg.Margins.MaybeMinPct, cfg.Margins.ProfitMinPct,
		))
	}

	if cfg.Shipping.RatePerMile < 0 {
		errs = append(errs, fmt.Errorf("shipping.rate_per_mile must not be negative"))
	}

	return errors.Join(errs...)
}

// validatePackTiers enforces that the tiers are ordered, contiguous, and
// cover [0, maxPrice]. The cost model itself returns 0 for unmatched
// prices; gaps are a configuration bug, caught here.
func validatePackTiers(tiers []PackTier) []error {
	var errs []error

	if len(tiers) == 0 {
		return []error{fmt.Errorf("pack.tiers must not be empty")}
	}
	if tiers[0].Min != 0 {
		errs = append(errs, fmt.Errorf("pack.tiers[0].min must be 0, got %d", tiers[0].Min))
	}
	for i, t := range tiers {
		if t.Min > t.Max {
			errs = append(errs, fmt.Errorf("pack.tiers[%d]: min %d exceeds max %d", i, t.Min, t.Max))
		}
		if t.Cost < 0 {
			errs = append(errs, fmt.Errorf("pack.tiers[%d]: cost must not be negative", i))
		}
		if i > 0 && t.Min != tiers[i-1].Max+1 {
			errs = append(errs, fmt.Errorf(
				"pack.tiers[%d]: min %d not contiguous with previous max %d",
				i, t.Min, tiers[i-1].Max,
			))
		}
	}
	if last := tiers[len(tiers)-1]; last.Max < maxPrice {
		errs = append(errs, fmt.Errorf(
			"pack.tiers: last tier max %d leaves prices above it uncovered", last.Max,
		))
	}

	return errs
}
