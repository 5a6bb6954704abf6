package mcache

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"github.com/numplan/go-phonemeta/countrycode"
	"github.com/numplan/go-phonemeta/record"
	"github.com/numplan/go-phonemeta/resource"
)

var log = logging.Logger("mcache")

// MetadataCache is a lazily-populated cache of parsed phone number metadata
// records, keyed by geographic region code or by non-geographic country
// calling code. The two key spaces are cached in separate partitions.
//
// Returned records are shared; callers must not modify them.
type MetadataCache struct {
	loader      resource.Loader
	prefix      string
	codeRegions func(int) []string
	bufferSize  int

	geographic cacheMap[string]
	nonGeo     cacheMap[int]
}

// cacheMap is one cache partition. Entries are written at most once and
// never replaced or removed, so the record stored for a key is the only
// record ever returned for it.
type cacheMap[K comparable] struct {
	entries sync.Map // K -> *record.PhoneMetadata
}

func (cm *cacheMap[K]) get(key K) (*record.PhoneMetadata, bool) {
	v, ok := cm.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*record.PhoneMetadata), true
}

// putIfAbsent stores md under key unless the key already has a record, and
// returns the record that is stored for key after the call.
func (cm *cacheMap[K]) putIfAbsent(key K, md *record.PhoneMetadata) *record.PhoneMetadata {
	v, _ := cm.entries.LoadOrStore(key, md)
	return v.(*record.PhoneMetadata)
}

func (cm *cacheMap[K]) len() int {
	var n int
	cm.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// New creates a new metadata cache. A resource loader must be provided with
// WithLoader.
func New(options ...Option) (*MetadataCache, error) {
	opts, err := getOpts(options)
	if err != nil {
		return nil, err
	}
	if opts.loader == nil {
		return nil, errors.New("no metadata resource loader")
	}
	return &MetadataCache{
		loader:      opts.loader,
		prefix:      opts.prefix,
		codeRegions: opts.codeRegions,
		bufferSize:  opts.bufferSize,
	}, nil
}

// GetForRegion returns the metadata record for a geographic region, loading
// and caching it on first access. A missing, empty, or undecodable resource
// is an error; see MissingResourceError, EmptyResourceError, and
// CorruptResourceError.
func (mc *MetadataCache) GetForRegion(ctx context.Context, regionID string) (*record.PhoneMetadata, error) {
	if md, ok := mc.geographic.get(regionID); ok {
		return md, nil
	}
	return load(ctx, mc, regionID, &mc.geographic)
}

// GetForNonGeoRegion returns the metadata record for a non-geographic
// country calling code, loading and caching it on first access. If the
// calling code is not purely non-geographic, including when the classifier
// does not know the code at all, there is no record and (nil, nil) is
// returned without consulting the loader; the geographic cache is the place
// to ask about such codes, by region.
func (mc *MetadataCache) GetForNonGeoRegion(ctx context.Context, callingCode int) (*record.PhoneMetadata, error) {
	if md, ok := mc.nonGeo.get(callingCode); ok {
		return md, nil
	}
	regions := mc.codeRegions(callingCode)
	if len(regions) != 1 || regions[0] != countrycode.NonGeoRegion {
		return nil, nil
	}
	return load(ctx, mc, callingCode, &mc.nonGeo)
}

// Preload loads the metadata for each given region, so that later lookups
// are served from memory. Failed regions do not stop the remaining ones from
// loading; all failures are returned together.
func (mc *MetadataCache) Preload(ctx context.Context, regionIDs ...string) error {
	var errs error
	for _, regionID := range regionIDs {
		if _, err := mc.GetForRegion(ctx, regionID); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// Len returns the number of cached records across both partitions.
func (mc *MetadataCache) Len() int {
	return mc.geographic.len() + mc.nonGeo.len()
}

// load fetches, decodes, and caches the metadata resource for key. No lock
// is held while loading or decoding; concurrent loads of the same key each
// decode the resource independently, and the insert below picks the single
// record that every caller gets.
func load[K comparable](ctx context.Context, mc *MetadataCache, key K, partition *cacheMap[K]) (*record.PhoneMetadata, error) {
	name := fmt.Sprintf("%s_%v", mc.prefix, key)
	src, err := mc.loader.Load(ctx, name)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, &MissingResourceError{Resource: name}
		}
		return nil, fmt.Errorf("cannot load metadata resource %s: %w", name, err)
	}

	coll, err := decode(src, name, mc.bufferSize)
	if err != nil {
		return nil, err
	}
	if len(coll.Records) == 0 {
		return nil, &EmptyResourceError{Resource: name}
	}
	if len(coll.Records) > 1 {
		log.Warnw("Invalid metadata resource, expected one record", "resource", name, "records", len(coll.Records))
	}

	return partition.putIfAbsent(key, coll.Records[0]), nil
}

// decode reads one record collection from src. The stream is closed on
// every path; a close error is logged and never replaces the decode result.
func decode(src io.ReadCloser, name string, bufferSize int) (*record.Collection, error) {
	defer func() {
		if err := src.Close(); err != nil {
			log.Errorw("Cannot close metadata resource", "resource", name, "err", err)
		}
	}()

	coll, err := record.ReadCollection(bufio.NewReaderSize(src, bufferSize))
	if err != nil {
		return nil, &CorruptResourceError{Resource: name, Err: err}
	}
	return coll, nil
}
