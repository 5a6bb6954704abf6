package mcache

import (
	"errors"
	"fmt"

	"github.com/numplan/go-phonemeta/countrycode"
	"github.com/numplan/go-phonemeta/resource"
)

const (
	defaultFilePrefix = "PhoneNumberMetadata"
	defaultBufferSize = 16 * 1024
)

type config struct {
	loader      resource.Loader
	prefix      string
	codeRegions func(int) []string
	bufferSize  int
}

// Option is a function that sets a value in a config.
type Option func(*config) error

// getOpts creates a config and applies Options to it.
func getOpts(opts []Option) (config, error) {
	cfg := config{
		prefix:      defaultFilePrefix,
		codeRegions: countrycode.Regions,
		bufferSize:  defaultBufferSize,
	}
	for i, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, fmt.Errorf("option %d failed: %s", i, err)
		}
	}
	return cfg, nil
}

// WithLoader sets the loader that supplies metadata resources. A loader is
// required.
func WithLoader(l resource.Loader) Option {
	return func(cfg *config) error {
		cfg.loader = l
		return nil
	}
}

// WithFilePrefix sets the prefix used to build resource names. The resource
// for a key is named <prefix>_<key>.
//
// Default is "PhoneNumberMetadata".
func WithFilePrefix(prefix string) Option {
	return func(cfg *config) error {
		if prefix == "" {
			return errors.New("file prefix cannot be empty")
		}
		cfg.prefix = prefix
		return nil
	}
}

// WithRegionClassifier sets the function that maps a country calling code to
// the region codes sharing it. The cache uses it only to decide whether a
// calling code is non-geographic, which is the case when the code maps to
// exactly the region countrycode.NonGeoRegion. A classifier that returns nil
// for unknown codes makes unknown codes indistinguishable from geographic
// ones.
//
// Default is countrycode.Regions.
func WithRegionClassifier(f func(callingCode int) []string) Option {
	return func(cfg *config) error {
		if f != nil {
			cfg.codeRegions = f
		}
		return nil
	}
}

// WithBufferSize sets the size of the read buffer used when decoding a
// metadata resource.
//
// Default is 16 KiB.
func WithBufferSize(size int) Option {
	return func(cfg *config) error {
		if size <= 0 {
			return errors.New("buffer size must be positive")
		}
		cfg.bufferSize = size
		return nil
	}
}
