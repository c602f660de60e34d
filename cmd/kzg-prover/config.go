package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/curves"
	"github.com/vocdoni/davinci-kzg/types"
)

const (
	defaultDegree    = 16
	defaultPoints    = 4
	defaultEncoding  = "cbor"
	defaultLogLevel  = "info"
	defaultLogOutput = "stdout"
)

// Version is the build version, set at build time with -ldflags
var Version = "dev"

// Config holds the application configuration
type Config struct {
	Curve      string    `mapstructure:"curve"`
	Degree     int       `mapstructure:"degree"`
	Points     int       `mapstructure:"points"`
	Seed       string    `mapstructure:"seed"`
	Workers    int       `mapstructure:"workers"`
	Encoding   string    `mapstructure:"encoding"`
	Compressed bool      `mapstructure:"compressed"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig(args []string) (*Config, error) {
	v := viper.New()
	defaultCurve := curves.Curves()[0]

	v.SetDefault("curve", defaultCurve)
	v.SetDefault("degree", defaultDegree)
	v.SetDefault("points", defaultPoints)
	v.SetDefault("seed", "")
	v.SetDefault("workers", 0)
	v.SetDefault("encoding", defaultEncoding)
	v.SetDefault("compressed", true)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	fs := flag.NewFlagSet("kzg-prover", flag.ContinueOnError)
	fs.StringP("curve", "c", defaultCurve, fmt.Sprintf("pairing-friendly curve %v", curves.Curves()))
	fs.IntP("degree", "d", defaultDegree, "maximum polynomial degree supported by the SRS")
	fs.IntP("points", "p", defaultPoints, "number of evaluation points of the batch opening")
	fs.StringP("seed", "s", "", "derive the SRS secret from this seed (reproducible, testing only)")
	fs.IntP("workers", "w", 0, "goroutines used by multi-scalar multiplications (0 = GOMAXPROCS)")
	fs.StringP("encoding", "e", defaultEncoding, "artifact encoding (cbor, json)")
	fs.Bool("compressed", true, "use compressed point encodings")
	fs.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "kzg-prover v%s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: kzg-prover [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  except for dots (.) which are replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, KZG_CURVE or KZG_LOG_LEVEL\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Commit, open and verify on BN254 with a degree 32 SRS\n")
		fmt.Fprintf(os.Stderr, "  kzg-prover --curve=bn254 --degree=32\n\n")
		fmt.Fprintf(os.Stderr, "  # Reproducible run with JSON artifacts\n")
		fmt.Fprintf(os.Stderr, "  kzg-prover --seed=test --encoding=json --log.level=debug\n")
	}

	fs.SortFlags = false
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v.SetEnvPrefix("KZG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	if !curves.IsValid(cfg.Curve) {
		return fmt.Errorf("invalid curve %s, available curves: %v", cfg.Curve, curves.Curves())
	}
	if cfg.Degree < 1 {
		return fmt.Errorf("degree must be at least 1, got %d", cfg.Degree)
	}
	if cfg.Points < 1 || cfg.Points > cfg.Degree {
		return fmt.Errorf("points must be between 1 and the degree (%d), got %d", cfg.Degree, cfg.Points)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if _, err := types.ParseArtifactEncoding(cfg.Encoding); err != nil {
		return err
	}
	return nil
}
