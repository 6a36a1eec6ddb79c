// Package config holds the command line configuration of hashira.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/Vinayak2k03/Hashira/internal/params"
	"github.com/Vinayak2k03/Hashira/pkg/math/basen"
	"github.com/rs/zerolog"
)

// Format selects how reconstructed secrets are printed.
type Format string

const (
	// FormatText prints the secret in base 10.
	FormatText Format = "text"
	// FormatJSON prints one JSON object per document.
	FormatJSON Format = "json"
	// FormatCBOR prints the hex encoded CBOR form of each result.
	FormatCBOR Format = "cbor"
)

// Config is the configuration of the recover command.
type Config struct {
	Format   Format
	Workers  int
	LogLevel string
	// Files are the input documents, in the order their results are printed.
	Files []string
}

// Default returns the configuration used when no flag is given.
func Default() Config {
	return Config{
		Format:   FormatText,
		Workers:  runtime.NumCPU(),
		LogLevel: zerolog.LevelWarnValue,
		Files:    []string{params.DefaultInputFile},
	}
}

// Parse reads the flags and file arguments of the recover command.
// Usage and flag errors are written to errOut.
func Parse(args []string, errOut io.Writer) (*Config, error) {
	c := Default()
	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(errOut)
	format := fs.String("format", string(c.Format), "output format: text, json or cbor")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of documents processed concurrently")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.Format = Format(*format)
	if fs.NArg() > 0 {
		c.Files = fs.Args()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatCBOR:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Files) == 0 {
		return errors.New("config: no input file")
	}
	return nil
}

// Logger returns a console logger writing to w at the configured level.
// Writes are serialized, so the logger can be shared between goroutines.
func (c *Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("config: %w", err)
	}
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = zerolog.SyncWriter(w)
		cw.NoColor = true
	})).Level(level).With().Timestamp().Logger(), nil
}

// SplitConfig is the configuration of the split command.
type SplitConfig struct {
	Secret *big.Int
	K, N   int
	Base   int
	// Bits is the size of the random polynomial coefficients.
	Bits int
}

// ParseSplit reads the flags of the split command.
func ParseSplit(args []string, errOut io.Writer) (*SplitConfig, error) {
	var (
		c      SplitConfig
		secret string
	)
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&secret, "secret", "", "secret to share, in base 10")
	fs.IntVar(&c.K, "k", 0, "threshold")
	fs.IntVar(&c.N, "n", 0, "number of shares")
	fs.IntVar(&c.Base, "base", 10, "base of the share values")
	fs.IntVar(&c.Bits, "bits", params.DefaultCoefficientBits, "size in bits of the random coefficients")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments %v", fs.Args())
	}
	if secret == "" {
		return nil, errors.New("config: -secret is required")
	}
	s, ok := new(big.Int).SetString(secret, 10)
	if !ok {
		return nil, fmt.Errorf("config: invalid secret %q", secret)
	}
	c.Secret = s
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the sharing parameters.
func (c *SplitConfig) Validate() error {
	if c.Secret == nil || c.Secret.Sign() < 0 {
		return errors.New("config: secret must be a non-negative integer")
	}
	if c.K < 1 || c.N < c.K {
		return fmt.Errorf("config: need 1 ⩽ k ⩽ n, got k = %d, n = %d", c.K, c.N)
	}
	if err := basen.ValidateBase(c.Base); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Bits < 1 {
		return fmt.Errorf("config: bits must be positive, got %d", c.Bits)
	}
	return nil
}
